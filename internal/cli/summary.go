package cli

import (
	"fmt"
	"strings"

	"github.com/pennywise-fin/pennywise/internal/model"
)

// sampleRows is how many records of each list the preview shows.
const sampleRows = 5

// RenderImportSummary renders the human-reviewable preview for one classified
// statement: totals, recurring subsets, transfer exclusions, and any
// degraded-date warning.
func RenderImportSummary(fileName string, stmt *model.Statement, result *model.ImportResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Account: %s (%s)\n", stmt.AccountID, accountLabel(stmt.AccountType))
	fmt.Fprintf(&b, "Income:    %3d records  $%s (recurring $%s)\n",
		len(result.Income),
		result.Summary.TotalIncome.StringFixed(2),
		result.Summary.RecurringIncome.StringFixed(2))
	fmt.Fprintf(&b, "Expenses:  %3d records  $%s (recurring $%s)\n",
		len(result.Expenses),
		result.Summary.TotalExpenses.StringFixed(2),
		result.Summary.RecurringExpenses.StringFixed(2))
	fmt.Fprintf(&b, "Transfers: %3d records excluded from totals\n", len(result.Transfers))

	if result.DegradedDates > 0 {
		b.WriteString(FormatWarning(fmt.Sprintf(
			"%d record(s) had unreadable dates and use today's date", result.DegradedDates)))
		b.WriteString("\n")
	}

	if len(result.Income) > 0 {
		b.WriteString(SubtleStyle.Render("\nIncome sample:"))
		b.WriteString("\n")
		writeSample(&b, result.Income)
	}
	if len(result.Expenses) > 0 {
		b.WriteString(SubtleStyle.Render("\nExpense sample:"))
		b.WriteString("\n")
		writeSample(&b, result.Expenses)
	}

	return RenderBox(fileName, strings.TrimRight(b.String(), "\n"))
}

func writeSample(b *strings.Builder, txns []model.ClassifiedTransaction) {
	for i, txn := range txns {
		if i >= sampleRows {
			fmt.Fprintf(b, "  ... and %d more\n", len(txns)-sampleRows)
			break
		}
		marker := " "
		if txn.Recurring {
			marker = "↻"
		}
		fmt.Fprintf(b, "  %s %s  $%s  %-14s %s\n",
			marker, txn.Date, txn.Amount.StringFixed(2), txn.Category, txn.Name)
	}
}

func accountLabel(t model.AccountType) string {
	switch t {
	case model.AccountTypeCreditCard:
		return "credit card"
	case model.AccountTypeChecking:
		return "checking"
	default:
		return "unknown"
	}
}
