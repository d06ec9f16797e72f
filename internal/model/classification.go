package model

import "github.com/shopspring/decimal"

// ClassifiedTransaction is an income or expense record produced by the import
// pipeline. Immutable after creation.
type ClassifiedTransaction struct {
	// Name is the display name, truncated with a trailing ellipsis when the
	// statement name exceeds the display limit.
	Name string
	// Memo is the original statement memo, untruncated, kept for audit.
	Memo string
	// Date is the posted date in YYYY-MM-DD form.
	Date      string
	Category  Category
	Amount    decimal.Decimal
	Recurring bool
}

// TransferRecord is a transaction identified as money moved between the
// user's own accounts. Excluded from income/expense totals.
type TransferRecord struct {
	Name       string
	Memo       string
	Date       string
	Amount     decimal.Decimal
	IsInternal bool
}

// Summary holds the aggregate totals for one import.
type Summary struct {
	TotalIncome       decimal.Decimal
	TotalExpenses     decimal.Decimal
	RecurringIncome   decimal.Decimal
	RecurringExpenses decimal.Decimal
}

// ImportResult is the pipeline's sole output: classified records in statement
// order plus aggregate totals. Built once per import invocation; the pipeline
// retains no ownership after returning it.
type ImportResult struct {
	Income    []ClassifiedTransaction
	Expenses  []ClassifiedTransaction
	Transfers []TransferRecord
	Summary   Summary
	// DegradedDates counts records whose statement date could not be parsed
	// and were given the processing date instead.
	DegradedDates int
}

// ImportAudit is the persisted audit row recording one import batch.
type ImportAudit struct {
	ID            int64
	FileName      string
	AccountID     string
	AccountType   AccountType
	IncomeCount   int
	ExpenseCount  int
	TransferCount int
	DegradedDates int
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
}

// RecurringIncome returns the income records flagged as recurring, in order.
func (r *ImportResult) RecurringIncome() []ClassifiedTransaction {
	return filterRecurring(r.Income)
}

// RecurringExpenses returns the expense records flagged as recurring, in order.
func (r *ImportResult) RecurringExpenses() []ClassifiedTransaction {
	return filterRecurring(r.Expenses)
}

func filterRecurring(txns []ClassifiedTransaction) []ClassifiedTransaction {
	var out []ClassifiedTransaction
	for _, t := range txns {
		if t.Recurring {
			out = append(out, t)
		}
	}
	return out
}
