// Package billpayment contains the credit card bill payment use cases.
package billpayment

import (
	"time"

	"github.com/shopspring/decimal"
)

// nextPeriod returns the billing period after the given one, wrapping December
// into January of the next year.
func nextPeriod(month, year int) (int, int) {
	if month == 12 {
		return 1, year + 1
	}
	return month + 1, year
}

// billDate anchors generated transactions to a stable mid-month instant.
// Noon UTC keeps the date on the 15th in every Brazilian timezone.
func billDate(month, year int) time.Time {
	return time.Date(year, time.Month(month), 15, 12, 0, 0, 0, time.UTC)
}

// financingTerms computes the carried total under simple interest and the
// resulting per-installment amount, both rounded to cents.
func financingTerms(principal decimal.Decimal, interestRate *decimal.Decimal, installments int) (total, perInstallment decimal.Decimal) {
	total = principal
	if interestRate != nil && !interestRate.IsZero() {
		factor := decimal.NewFromInt(1).Add(interestRate.Div(decimal.NewFromInt(100)))
		total = principal.Mul(factor)
	}
	total = total.Round(2)
	perInstallment = total.Div(decimal.NewFromInt(int64(installments))).Round(2)
	return total, perInstallment
}
