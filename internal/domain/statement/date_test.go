package statement

import (
	"testing"
	"time"
)

func TestInferYear(t *testing.T) {
	ref := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		month int
		want  int
	}{
		{"same month keeps reference year", 6, 2025},
		{"earlier month keeps reference year", 2, 2025},
		{"later month rolls back a year", 8, 2024},
		{"december against june rolls back", 12, 2024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferYear(tt.month, ref); got != tt.want {
				t.Errorf("InferYear(%d, %s) = %d, want %d", tt.month, ref.Format("2006-01"), got, tt.want)
			}
		})
	}
}

func TestInferYearForward(t *testing.T) {
	ref := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		month int
		want  int
	}{
		{"same month keeps reference year", 8, 2026},
		{"later month keeps reference year", 9, 2026},
		{"earlier month rolls forward a year", 5, 2027},
		{"january against august rolls forward", 1, 2027},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferYearForward(tt.month, ref); got != tt.want {
				t.Errorf("InferYearForward(%d, %s) = %d, want %d", tt.month, ref.Format("2006-01"), got, tt.want)
			}
		})
	}
}

func TestFindDate(t *testing.T) {
	ref := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		line        string
		allowAbbrev bool
		wantDate    time.Time
		wantOK      bool
	}{
		{
			name:     "full date",
			line:     "15/03/2025 MERCADO 45,00",
			wantDate: time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
			wantOK:   true,
		},
		{
			name:     "short year date",
			line:     "05/12/24 FARMACIA 30,00",
			wantDate: time.Date(2024, time.December, 5, 0, 0, 0, 0, time.UTC),
			wantOK:   true,
		},
		{
			name:     "day month infers current year",
			line:     "20/05 POSTO 200,00",
			wantDate: time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC),
			wantOK:   true,
		},
		{
			name:     "day month after reference rolls back",
			line:     "13/08 LIVRARIA 89,00",
			wantDate: time.Date(2024, time.August, 13, 0, 0, 0, 0, time.UTC),
			wantOK:   true,
		},
		{
			name:        "abbreviated month on invoice",
			line:        "13 ago PADARIA 25,90",
			allowAbbrev: true,
			wantDate:    time.Date(2024, time.August, 13, 0, 0, 0, 0, time.UTC),
			wantOK:      true,
		},
		{
			name:   "abbreviated month rejected on bank statement",
			line:   "13 ago PADARIA 25,90",
			wantOK: false,
		},
		{
			name:   "invalid month rejected",
			line:   "10/13 LOJA 50,00",
			wantOK: false,
		},
		{
			name:   "no date",
			line:   "SALDO DISPONIVEL 1.000,00",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindDate(tt.line, ref, tt.allowAbbrev)
			if ok != tt.wantOK {
				t.Fatalf("FindDate(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if ok && !got.Date.Equal(tt.wantDate) {
				t.Errorf("FindDate(%q) = %s, want %s", tt.line, got.Date, tt.wantDate)
			}
		})
	}
}

func TestFindDateStripSpan(t *testing.T) {
	ref := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	line := "15/03/2025 MERCADO 45,00"

	match, ok := FindDate(line, ref, false)
	if !ok {
		t.Fatal("expected a date match")
	}
	if line[match.Start:match.End] != "15/03/2025" {
		t.Errorf("span = %q, want %q", line[match.Start:match.End], "15/03/2025")
	}
}

func TestParseDate(t *testing.T) {
	ref := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	if _, ok := ParseDate("not a date", ref); ok {
		t.Error("expected ParseDate to fail on garbage input")
	}

	date, ok := ParseDate(" 01/02/2024 ", ref)
	if !ok {
		t.Fatal("expected ParseDate to succeed")
	}
	want := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	if !date.Equal(want) {
		t.Errorf("ParseDate = %s, want %s", date, want)
	}
}
