// Package statement contains statement parsing use cases.
package statement

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/meubolso/backend/internal/domain/entity"
	domainerror "github.com/meubolso/backend/internal/domain/error"
	stmt "github.com/meubolso/backend/internal/domain/statement"
)

// bankSignatures maps a detection pattern to the bank's display name.
// First match wins, so the more specific signatures come first.
var bankSignatures = []struct {
	pattern *regexp.Regexp
	name    string
}{
	{regexp.MustCompile(`(?i)c6\s*bank`), "C6 Bank"},
	{regexp.MustCompile(`(?i)ita[uú]`), "Itaú"},
	{regexp.MustCompile(`(?i)\bbtg\b`), "BTG Pactual"},
	{regexp.MustCompile(`(?i)nubank|nu\s*pagamentos`), "Nubank"},
	{regexp.MustCompile(`(?i)bradesco`), "Bradesco"},
	{regexp.MustCompile(`(?i)santander`), "Santander"},
	{regexp.MustCompile(`(?i)banco\s+do\s+brasil`), "Banco do Brasil"},
	{regexp.MustCompile(`(?i)caixa\s+econ[oô]mica`), "Caixa"},
}

// invoiceMarkers are the vocabulary of a credit card invoice. Two or more
// distinct markers in the text classify it as an invoice rather than a bank
// statement; a single one can appear incidentally in statement lines.
var invoiceMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)vencimento`),
	regexp.MustCompile(`(?i)pagamento\s+m[ií]nimo`),
	regexp.MustCompile(`(?i)total\s+da\s+fatura|valor\s+total`),
	regexp.MustCompile(`(?i)limite\s+de\s+cr[eé]dito`),
	regexp.MustCompile(`(?i)fechamento`),
	regexp.MustCompile(`(?i)melhor\s+dia`),
}

// Due date forms, tried in order: full numeric date, day/month, written-out
// Portuguese month with optional year.
var (
	dueDateFullPattern   = regexp.MustCompile(`(?i)vencimento\D{0,20}?(\d{1,2}/\d{1,2}/\d{4})`)
	dueDateShortPattern  = regexp.MustCompile(`(?i)vencimento\D{0,20}?(\d{1,2})/(\d{1,2})\b`)
	dueDateSpelledFormat = `(?i)vencimento\D{0,20}?(\d{1,2})\s+de\s+(%s)(?:\s+de\s+(\d{4}))?`
)

var dueDateSpelledPattern = regexp.MustCompile(
	fmt.Sprintf(dueDateSpelledFormat, strings.Join(fullMonthAlternatives(), "|")),
)

func fullMonthAlternatives() []string {
	names := make([]string, 0, len(stmt.FullMonthNames))
	for name := range stmt.FullMonthNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var saldoDoDiaPattern = regexp.MustCompile(`(?i)^saldo\s+do\s+dia`)

// ParseOCRInput represents the input for parsing OCR-extracted statement text.
type ParseOCRInput struct {
	UserID     uuid.UUID
	Origin     string
	Text       string
	Confidence float64
}

// ParseOCROutput represents the output of OCR statement parsing.
type ParseOCROutput struct {
	Bank              string
	IsInvoice         bool
	Transactions      []entity.NormalizedTransaction
	AverageConfidence float64
}

// ParseOCRStatementUseCase extracts transaction candidates from the raw text
// of a photographed or scanned statement. OCR text is noisy and layout-free,
// so extraction is line by line through a priority chain of grammars.
type ParseOCRStatementUseCase struct {
	suggester  *CategorySuggester
	extractors []lineExtractor
}

// NewParseOCRStatementUseCase creates a new ParseOCRStatementUseCase instance.
func NewParseOCRStatementUseCase(suggester *CategorySuggester) *ParseOCRStatementUseCase {
	return &ParseOCRStatementUseCase{
		suggester: suggester,
		extractors: []lineExtractor{
			c6TabularExtractor{},
			genericExtractor{},
		},
	}
}

// Execute parses OCR text into normalized transaction candidates.
func (uc *ParseOCRStatementUseCase) Execute(ctx context.Context, input ParseOCRInput) (*ParseOCROutput, error) {
	text := strings.TrimSpace(input.Text)
	if len(text) < 6 {
		return nil, domainerror.NewStatementError(
			domainerror.ErrCodeEmptyStatementText,
			"statement text is empty or too short",
			domainerror.ErrEmptyStatementText,
		)
	}

	ectx := extractionContext{
		bank:      detectBank(text),
		isInvoice: detectInvoice(text),
		reference: time.Now().UTC(),
	}
	if ectx.isInvoice {
		if due, ok := extractDueDate(text, ectx.reference); ok {
			ectx.reference = due
		}
	}

	var transactions []entity.NormalizedTransaction
	seen := make(map[string]bool)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 6 || saldoDoDiaPattern.MatchString(line) {
			continue
		}

		txn, ok := uc.extractLine(line, ectx)
		if !ok {
			continue
		}

		key := dedupeKey(txn)
		if seen[key] {
			continue
		}
		seen[key] = true

		txn.Confidence = &input.Confidence
		if uc.suggester != nil {
			txn.SuggestedCategoryID = uc.suggester.Suggest(ctx, txn.Description, input.UserID)
		}
		transactions = append(transactions, txn)
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.Before(transactions[j].Date)
	})

	avg := 0.0
	if len(transactions) > 0 {
		avg = input.Confidence
	}

	slog.Info("OCR statement parsed",
		"bank", ectx.bank,
		"invoice", ectx.isInvoice,
		"origin", input.Origin,
		"transactions", len(transactions),
	)

	return &ParseOCROutput{
		Bank:              ectx.bank,
		IsInvoice:         ectx.isInvoice,
		Transactions:      transactions,
		AverageConfidence: avg,
	}, nil
}

// extractLine runs the extractor chain, first hit wins.
func (uc *ParseOCRStatementUseCase) extractLine(line string, ectx extractionContext) (entity.NormalizedTransaction, bool) {
	for _, extractor := range uc.extractors {
		if txn, ok := extractor.tryExtract(line, ectx); ok {
			return txn, true
		}
	}
	return entity.NormalizedTransaction{}, false
}

// detectBank returns the bank display name, or a generic label when no
// signature matches.
func detectBank(text string) string {
	for _, sig := range bankSignatures {
		if sig.pattern.MatchString(text) {
			return sig.name
		}
	}
	return "extrato bancário"
}

// detectInvoice counts distinct invoice markers; two or more mean the text is
// a credit card invoice.
func detectInvoice(text string) bool {
	count := 0
	for _, marker := range invoiceMarkers {
		if marker.MatchString(text) {
			count++
			if count >= 2 {
				return true
			}
		}
	}
	return false
}

// extractDueDate finds the invoice due date, which anchors year inference for
// every day/month-only transaction date in the document. Year-less forms
// resolve forward: a due date lies in the near future, never a year in the
// past, and a backward-resolved anchor would shift every transaction in the
// document to the wrong year.
func extractDueDate(text string, now time.Time) (time.Time, bool) {
	if m := dueDateFullPattern.FindStringSubmatch(text); m != nil {
		if date, ok := stmt.ParseDate(m[1], now); ok {
			return date, true
		}
	}
	if m := dueDateShortPattern.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if day >= 1 && day <= 31 && month >= 1 && month <= 12 {
			return time.Date(stmt.InferYearForward(month, now), time.Month(month), day, 0, 0, 0, 0, time.UTC), true
		}
	}
	if m := dueDateSpelledPattern.FindStringSubmatch(text); m != nil {
		day, err := strconv.Atoi(m[1])
		if err != nil || day < 1 || day > 31 {
			return time.Time{}, false
		}
		month, ok := stmt.FullMonthNames[strings.ToLower(m[2])]
		if !ok {
			return time.Time{}, false
		}
		year := stmt.InferYearForward(month, now)
		if m[3] != "" {
			year, err = strconv.Atoi(m[3])
			if err != nil {
				return time.Time{}, false
			}
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// dedupeKey identifies a candidate by date, description and amount. OCR often
// reads the same physical line twice.
func dedupeKey(txn entity.NormalizedTransaction) string {
	return txn.Date.Format("2006-01-02") + "|" + strings.ToLower(txn.Description) + "|" + txn.Amount.String()
}
