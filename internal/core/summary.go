// Package core holds the domain model and the pure aggregation
// functions derived from it. Nothing in this package touches storage;
// inputs are transaction sequences and scalar parameters, outputs are
// derived figures.
package core

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Mark is a calendar annotation for a single day: the net amount moved
// on that day and whether it was a gain.
type Mark struct {
	Date     Date
	Amount   decimal.Decimal
	Positive bool
}

// TotalBalance sums the signed contributions of the whole sequence.
// Order-independent: income adds, expense subtracts.
func TotalBalance(txns []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		total = total.Add(t.Signed())
	}
	return total
}

// DailyTotals groups transactions by date and sums signed
// contributions per group. Keys are exactly the distinct dates
// present; days without transactions do not appear.
func DailyTotals(txns []Transaction) map[Date]decimal.Decimal {
	totals := make(map[Date]decimal.Decimal)
	for _, t := range txns {
		totals[t.Date] = totals[t.Date].Add(t.Signed())
	}
	return totals
}

// DailyTotalFor returns the net total for one day, zero if the day has
// no transactions. Equals the corresponding DailyTotals entry.
func DailyTotalFor(txns []Transaction, date Date) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.Date == date {
			total = total.Add(t.Signed())
		}
	}
	return total
}

// GoalProgress is the percentage of the goal covered by the current
// balance, clamped at 100 for display. There is no floor clamp: a
// negative balance yields a negative percentage, which renders as an
// empty bar. A goal of zero or less reports no progress.
func GoalProgress(total, goal decimal.Decimal) float64 {
	if goal.Sign() <= 0 {
		return 0
	}
	pct := total.Div(goal).Mul(decimal.NewFromInt(100)).InexactFloat64()
	if pct > 100 {
		return 100
	}
	return pct
}

// MonthTotals restricts DailyTotals to one month given as YYYY-MM.
func MonthTotals(txns []Transaction, month string) map[Date]decimal.Decimal {
	totals := make(map[Date]decimal.Decimal)
	for _, t := range txns {
		if t.Date.Month() != month {
			continue
		}
		totals[t.Date] = totals[t.Date].Add(t.Signed())
	}
	return totals
}

// CalendarMarks turns a month's daily totals into date-ordered marks
// for calendar display.
func CalendarMarks(txns []Transaction, month string) []Mark {
	totals := MonthTotals(txns, month)
	marks := make([]Mark, 0, len(totals))
	for date, amount := range totals {
		marks = append(marks, Mark{
			Date:     date,
			Amount:   amount,
			Positive: amount.Sign() >= 0,
		})
	}
	sort.Slice(marks, func(i, j int) bool { return marks[i].Date < marks[j].Date })
	return marks
}
