package classify

import (
	"time"

	"github.com/pennywise-fin/pennywise/internal/model"
)

// MaxDisplayNameLen is the display-name limit; longer names are truncated
// with a trailing ellipsis marker.
const MaxDisplayNameLen = 95

// Classifier turns a parsed statement into an ImportResult. It is stateless
// apart from its clock; concurrent use on different statements is safe.
type Classifier struct {
	now func() time.Time
}

// New creates a Classifier using the wall clock for degraded-date fallbacks.
func New() *Classifier {
	return NewWithClock(time.Now)
}

// NewWithClock creates a Classifier with an explicit clock.
func NewWithClock(now func() time.Time) *Classifier {
	return &Classifier{now: now}
}

// Classify routes every statement record into income, expense, or transfer
// and builds the aggregate summary. Records are processed in statement order
// and each output list preserves that order.
//
// Sign rules: on checking-style accounts a CREDIT kind or positive amount is
// income and everything else is expense. On credit-card accounts a DEBIT kind
// or negative amount is expense; credit-card credits not already excluded as
// transfers are omitted from both lists rather than misclassified as income.
// Unrecognized refunds therefore vanish from the totals — observed behavior,
// kept as is.
func (c *Classifier) Classify(stmt *model.Statement) *model.ImportResult {
	result := &model.ImportResult{}
	now := c.now()

	for _, raw := range stmt.Transactions {
		date, ok := NormalizeDate(raw.RawDate, now)
		if !ok {
			result.DegradedDates++
		}

		name := TruncateName(displayName(raw))
		amount := raw.Amount.Abs()

		// Transfers bypass recurrence and category classification entirely.
		if IsTransfer(raw.Name, raw.Memo) {
			result.Transfers = append(result.Transfers, model.TransferRecord{
				Name:       name,
				Memo:       raw.Memo,
				Date:       date,
				Amount:     amount,
				IsInternal: true,
			})
			continue
		}

		txn := model.ClassifiedTransaction{
			Name:      name,
			Memo:      raw.Memo,
			Date:      date,
			Amount:    amount,
			Recurring: IsRecurring(raw.Name, raw.Memo),
			Category:  Categorize(raw.Name, raw.Memo),
		}

		if stmt.AccountType == model.AccountTypeCreditCard {
			if raw.Kind == model.KindDebit || raw.Amount.IsNegative() {
				result.Expenses = append(result.Expenses, txn)
			}
			// Credit-card credits fall through unrouted; see above.
			continue
		}

		// Checking-style sign convention; unknown account types take this
		// branch too.
		if raw.Kind == model.KindCredit || raw.Amount.IsPositive() {
			result.Income = append(result.Income, txn)
		} else {
			result.Expenses = append(result.Expenses, txn)
		}
	}

	result.Summary = buildSummary(result)

	return result
}

func buildSummary(result *model.ImportResult) model.Summary {
	var s model.Summary
	for _, t := range result.Income {
		s.TotalIncome = s.TotalIncome.Add(t.Amount)
		if t.Recurring {
			s.RecurringIncome = s.RecurringIncome.Add(t.Amount)
		}
	}
	for _, t := range result.Expenses {
		s.TotalExpenses = s.TotalExpenses.Add(t.Amount)
		if t.Recurring {
			s.RecurringExpenses = s.RecurringExpenses.Add(t.Amount)
		}
	}
	return s
}

// displayName picks the record's name, falling back to its memo when the
// statement carried no name element.
func displayName(raw model.RawTransaction) string {
	if raw.Name != "" {
		return raw.Name
	}
	return raw.Memo
}

// TruncateName cuts names longer than MaxDisplayNameLen and appends an
// ellipsis marker. Applies uniformly to income, expense, and transfer records.
func TruncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= MaxDisplayNameLen {
		return name
	}
	return string(runes[:MaxDisplayNameLen]) + "..."
}
