package statement

import (
	"regexp"
	"strings"
	"time"
)

// Date grammars found in Brazilian statements, ordered by specificity:
// DD/MM/YYYY, DD/MM/YY, DD/MM (year inferred from the reference date), and
// "DD <abbreviated month>" which only occurs inside OCR'd credit card
// invoice lines.
var (
	fullDatePattern        = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
	shortYearDatePattern   = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{2})\b`)
	dayMonthDatePattern    = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})\b`)
	abbrevMonthDatePattern = regexp.MustCompile(`(?i)\b(\d{1,2})\s+(jan|fev|mar|abr|mai|jun|jul|ago|set|out|nov|dez)\b`)
)

var abbrevMonths = map[string]int{
	"jan": 1, "fev": 2, "mar": 3, "abr": 4, "mai": 5, "jun": 6,
	"jul": 7, "ago": 8, "set": 9, "out": 10, "nov": 11, "dez": 12,
}

// FullMonthNames maps Portuguese month names to their number, used when
// extracting invoice due dates written out in full.
var FullMonthNames = map[string]int{
	"janeiro": 1, "fevereiro": 2, "março": 3, "marco": 3, "abril": 4,
	"maio": 5, "junho": 6, "julho": 7, "agosto": 8, "setembro": 9,
	"outubro": 10, "novembro": 11, "dezembro": 12,
}

// DateMatch is a date found inside a statement line, with the span of the
// matched text so callers can strip it from the description.
type DateMatch struct {
	Date  time.Time
	Start int
	End   int
}

// InferYear resolves the year of a year-less date token. When the token's
// month is numerically greater than the reference month the transaction is
// assigned to the previous year: a June-due invoice listing an August charge
// is talking about August of last year.
func InferYear(month int, ref time.Time) int {
	if month > int(ref.Month()) {
		return ref.Year() - 1
	}
	return ref.Year()
}

// InferYearForward resolves the year of a year-less date that lies ahead of
// the reference, such as an invoice due date. When the token's month is
// numerically smaller than the reference month the date belongs to the next
// year; a due date is never resolved into the past.
func InferYearForward(month int, ref time.Time) int {
	if month < int(ref.Month()) {
		return ref.Year() + 1
	}
	return ref.Year()
}

// validDayMonth rejects impossible day/month combinations; the caller must
// treat a failed parse as "this line is not a transaction".
func validDayMonth(day, month int) bool {
	return day >= 1 && day <= 31 && month >= 1 && month <= 12
}

func makeDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// FindDate locates the first date in the line, trying the grammars most
// specific first. The abbreviated-month grammar is attempted only when
// allowAbbrev is set (credit card invoice lines). ref disambiguates year-less
// dates.
func FindDate(line string, ref time.Time, allowAbbrev bool) (DateMatch, bool) {
	if loc := fullDatePattern.FindStringSubmatchIndex(line); loc != nil {
		m := fullDatePattern.FindStringSubmatch(line)
		day, month, year := atoiDigits(m[1]), atoiDigits(m[2]), atoiDigits(m[3])
		if validDayMonth(day, month) {
			return DateMatch{Date: makeDate(year, month, day), Start: loc[0], End: loc[1]}, true
		}
		return DateMatch{}, false
	}

	if loc := shortYearDatePattern.FindStringSubmatchIndex(line); loc != nil {
		m := shortYearDatePattern.FindStringSubmatch(line)
		day, month, year := atoiDigits(m[1]), atoiDigits(m[2]), 2000+atoiDigits(m[3])
		if validDayMonth(day, month) {
			return DateMatch{Date: makeDate(year, month, day), Start: loc[0], End: loc[1]}, true
		}
		return DateMatch{}, false
	}

	if loc := dayMonthDatePattern.FindStringSubmatchIndex(line); loc != nil {
		m := dayMonthDatePattern.FindStringSubmatch(line)
		day, month := atoiDigits(m[1]), atoiDigits(m[2])
		if validDayMonth(day, month) {
			return DateMatch{Date: makeDate(InferYear(month, ref), month, day), Start: loc[0], End: loc[1]}, true
		}
		return DateMatch{}, false
	}

	if allowAbbrev {
		return FindAbbrevMonthDate(line, ref)
	}

	return DateMatch{}, false
}

// FindAbbrevMonthDate locates a "13 ago" style date in the line. Used for
// credit card invoice lines, including the nested re-check on leftover
// description text after the primary date extraction.
func FindAbbrevMonthDate(line string, ref time.Time) (DateMatch, bool) {
	loc := abbrevMonthDatePattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return DateMatch{}, false
	}
	m := abbrevMonthDatePattern.FindStringSubmatch(line)
	day := atoiDigits(m[1])
	month := abbrevMonths[strings.ToLower(m[2])]
	if !validDayMonth(day, month) {
		return DateMatch{}, false
	}
	return DateMatch{Date: makeDate(InferYear(month, ref), month, day), Start: loc[0], End: loc[1]}, true
}

// ParseDate parses a standalone date string in any of the numeric grammars.
// Returns false when the string holds no valid date.
func ParseDate(raw string, ref time.Time) (time.Time, bool) {
	match, ok := FindDate(strings.TrimSpace(raw), ref, false)
	if !ok {
		return time.Time{}, false
	}
	return match.Date, true
}
