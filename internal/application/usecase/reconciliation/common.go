// Package reconciliation matches imported carryover statement lines against
// pending bill payments.
package reconciliation

import (
	"time"

	"github.com/shopspring/decimal"
)

// PreviousMonth returns the billing period immediately before the given date,
// wrapping January into December of the previous year.
func PreviousMonth(date time.Time) (month, year int) {
	month = int(date.Month()) - 1
	year = date.Year()
	if month == 0 {
		month = 12
		year--
	}
	return month, year
}

// CalculateInterest compares the expected carried amount with the amount the
// bank actually charged. Both values are taken absolute because carryover
// lines arrive as negative expenses while bill payments store positive
// amounts. A zero expected amount yields a zero rate; there is no principal
// to express the charge as a percentage of.
func CalculateInterest(expected, charged decimal.Decimal) (rate, amount decimal.Decimal) {
	expected = expected.Abs()
	charged = charged.Abs()

	amount = charged.Sub(expected).Round(2)
	if expected.IsZero() {
		return decimal.Zero, amount
	}

	rate = amount.Div(expected).Mul(decimal.NewFromInt(100)).Round(2)
	return rate, amount
}
