package statement

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ParsedAmount is a statement amount carried as magnitude plus sign instead of
// a signed decimal. The signed form exists only at the persistence boundary;
// keeping the sign explicit here avoids sign-flip bugs between parsers and the
// bill payment generator.
type ParsedAmount struct {
	Magnitude decimal.Decimal // Always non-negative
	Negative  bool
}

// Signed converts the amount to the signed-decimal convention
// (negative = expense).
func (a ParsedAmount) Signed() decimal.Decimal {
	if a.Negative {
		return a.Magnitude.Neg()
	}
	return a.Magnitude
}

// IsZero reports whether no amount was parsed. Callers must treat a zero
// amount as "skip this line", never as a real transaction value.
func (a ParsedAmount) IsZero() bool {
	return a.Magnitude.IsZero()
}

// currencyTokenPattern matches a Brazilian-formatted currency value inside a
// line, with optional R$ prefix, sign and C/D accounting suffix. OCR output
// often drops the thousands dot, so ungrouped digit runs are accepted too;
// matching only the tail of "1234,56" would silently truncate the amount.
var currencyTokenPattern = regexp.MustCompile(`-?\s*(?:R\$\s*)?-?(?:\d{1,3}(?:\.\d{3})+|\d+),\d{2}(?:\s*[CD])?`)

// ParseBrazilianAmount parses a Brazilian-formatted currency string
// ("R$ 1.234,56", "1.234,56 D", "-150,00") into a ParsedAmount. The dot is a
// thousands separator and the comma the decimal separator. The magnitude is
// positive unless an explicit minus sign or D suffix is present. Unparseable
// input yields a zero magnitude.
func ParseBrazilianAmount(raw string) ParsedAmount {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ParsedAmount{Magnitude: decimal.Zero}
	}

	negative := false

	// Trailing accounting suffix: D marks debit, C credit.
	upper := strings.ToUpper(s)
	if strings.HasSuffix(upper, "D") {
		negative = true
		s = strings.TrimSpace(s[:len(s)-1])
	} else if strings.HasSuffix(upper, "C") {
		s = strings.TrimSpace(s[:len(s)-1])
	}

	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")

	if strings.HasPrefix(s, "-") {
		negative = true
		s = strings.TrimPrefix(s, "-")
	}
	if strings.HasSuffix(s, "-") {
		negative = true
		s = strings.TrimSuffix(s, "-")
	}
	s = strings.TrimPrefix(s, "+")

	// Dot is thousands, comma is decimal.
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	value, err := decimal.NewFromString(s)
	if err != nil {
		return ParsedAmount{Magnitude: decimal.Zero}
	}

	return ParsedAmount{Magnitude: value.Abs(), Negative: negative}
}

// FindLastCurrencyToken returns the last currency-shaped token in the line and
// its position, or ok=false when the line holds none. Statements place the
// amount after the description, so the last token is the transaction amount.
func FindLastCurrencyToken(line string) (token string, start int, ok bool) {
	locs := currencyTokenPattern.FindAllStringIndex(line, -1)
	if len(locs) == 0 {
		return "", 0, false
	}
	last := locs[len(locs)-1]
	return line[last[0]:last[1]], last[0], true
}
