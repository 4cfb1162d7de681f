package reconciliation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPreviousMonth(t *testing.T) {
	tests := []struct {
		name      string
		date      time.Time
		wantMonth int
		wantYear  int
	}{
		{"mid year", time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC), 6, 2025},
		{"january wraps to december", time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC), 12, 2024},
		{"february", time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), 1, 2025},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			month, year := PreviousMonth(tt.date)
			if month != tt.wantMonth || year != tt.wantYear {
				t.Errorf("PreviousMonth(%s) = %d/%d, want %d/%d",
					tt.date.Format("2006-01-02"), month, year, tt.wantMonth, tt.wantYear)
			}
		})
	}
}

func TestCalculateInterest(t *testing.T) {
	tests := []struct {
		name       string
		expected   string
		charged    string
		wantRate   string
		wantAmount string
	}{
		{"charged more than expected", "1000.00", "1120.00", "12", "120"},
		{"signs ignored", "1000.00", "-1120.00", "12", "120"},
		{"negative expected", "-1000.00", "1120.00", "12", "120"},
		{"exact match", "500.00", "500.00", "0", "0"},
		{"charged less than expected", "1000.00", "900.00", "-10", "-100"},
		{"rate rounded to two places", "300.00", "310.00", "3.33", "10"},
		{"zero expected yields zero rate", "0", "250.00", "0", "250"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, amount := CalculateInterest(dec(tt.expected), dec(tt.charged))
			if !rate.Equal(dec(tt.wantRate)) {
				t.Errorf("rate = %s, want %s", rate, tt.wantRate)
			}
			if !amount.Equal(dec(tt.wantAmount)) {
				t.Errorf("amount = %s, want %s", amount, tt.wantAmount)
			}
		})
	}
}
