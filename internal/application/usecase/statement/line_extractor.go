// Package statement contains statement parsing use cases.
package statement

import (
	"regexp"
	"strings"
	"time"

	"github.com/meubolso/backend/internal/domain/entity"
	stmt "github.com/meubolso/backend/internal/domain/statement"
)

// extractionContext carries the document-level facts a line extractor needs:
// whether the text is a credit card invoice, the reference date for year
// inference, and the detected bank.
type extractionContext struct {
	isInvoice bool
	reference time.Time
	bank      string
}

// lineExtractor turns one statement line into a transaction candidate.
// Implementations are tried in a fixed priority order, bank-specific grammars
// first; adding a new bank format means adding a new implementation, not
// branching deeper into the generic one.
type lineExtractor interface {
	tryExtract(line string, ectx extractionContext) (entity.NormalizedTransaction, bool)
}

// c6TabularPattern matches the C6 bank statement 4-column line format:
// transaction date, accounting date, category, description, amount.
var c6TabularPattern = regexp.MustCompile(`^(\d{2}/\d{2}/\d{4})\s+(\d{2}/\d{2}/\d{4})\s+(.+)$`)

// c6Categories maps the explicit category token at the start of a C6 tabular
// line remainder to the transaction type it implies.
var c6Categories = []struct {
	token   string
	txnType entity.TransactionType
}{
	{"Entrada PIX", entity.TransactionTypeIncome},
	{"Saída PIX", entity.TransactionTypeExpense},
	{"Entrada", entity.TransactionTypeIncome},
	{"Outros gastos", entity.TransactionTypeExpense},
	{"Pagamento de contas", entity.TransactionTypeExpense},
	{"Compra no débito", entity.TransactionTypeExpense},
	{"Transferência", entity.TransactionTypeTransfer},
}

// c6TabularExtractor reads the unambiguous C6 bank statement grammar. The
// second date is the accounting date and is the one that matters; the
// category token decides the transaction type.
type c6TabularExtractor struct{}

func (c6TabularExtractor) tryExtract(line string, ectx extractionContext) (entity.NormalizedTransaction, bool) {
	m := c6TabularPattern.FindStringSubmatch(line)
	if m == nil {
		return entity.NormalizedTransaction{}, false
	}

	date, ok := stmt.ParseDate(m[2], ectx.reference)
	if !ok {
		return entity.NormalizedTransaction{}, false
	}

	remainder := strings.TrimSpace(m[3])

	token, start, ok := stmt.FindLastCurrencyToken(remainder)
	if !ok {
		return entity.NormalizedTransaction{}, false
	}
	amount := stmt.ParseBrazilianAmount(token)
	if amount.IsZero() {
		return entity.NormalizedTransaction{}, false
	}
	remainder = strings.TrimSpace(remainder[:start])

	txnType := entity.TransactionTypeExpense
	description := remainder
	for _, cat := range c6Categories {
		if strings.HasPrefix(strings.ToLower(remainder), strings.ToLower(cat.token)) {
			txnType = cat.txnType
			description = strings.TrimSpace(remainder[len(cat.token):])
			break
		}
	}
	if description == "" {
		description = remainder
	}

	amount.Negative = txnType != entity.TransactionTypeIncome

	return finalizeCandidate(description, amount, date, txnType), true
}

// Keyword lists for the generic extractor's INCOME vs EXPENSE decision.
// The income list applies to bank statements only: on invoices the default is
// always EXPENSE and a stray "depósito" in a merchant name must not flip it.
var (
	incomeKeywords = []string{
		"pix recebido", "recebimento", "depósito", "deposito",
		"rendimento", "salário", "salario", "ted recebida",
		"transferência recebida", "transferencia recebida", "crédito em conta",
	}
	expenseKeywords = []string{
		"pix enviado", "pagamento", "compra", "débito", "debito",
		"saque", "tarifa", "boleto",
	}
)

// genericExtractor is the lossy fallback for unknown statement layouts: find
// a date, take the last currency-shaped token as the amount, and treat what
// is left as the description.
type genericExtractor struct{}

func (genericExtractor) tryExtract(line string, ectx extractionContext) (entity.NormalizedTransaction, bool) {
	// The abbreviated-month grammar ("13 ago") only exists inside credit card
	// invoice lines; allowing it on bank statements produces false dates.
	dateMatch, ok := stmt.FindDate(line, ectx.reference, ectx.isInvoice)
	if !ok {
		return entity.NormalizedTransaction{}, false
	}

	token, start, ok := stmt.FindLastCurrencyToken(line)
	if !ok {
		return entity.NormalizedTransaction{}, false
	}
	amount := stmt.ParseBrazilianAmount(token)
	if amount.IsZero() {
		return entity.NormalizedTransaction{}, false
	}

	description := stripSpans(line, dateMatch.Start, dateMatch.End, start, start+len(token))
	date := dateMatch.Date

	// Nested date handling: when the extracted date was not the line's own
	// date prefix, the transaction's real date may still be embedded in the
	// leftover description as an abbreviated-month token.
	if ectx.isInvoice {
		if nested, ok := stmt.FindAbbrevMonthDate(description, ectx.reference); ok {
			date = nested.Date
			description = strings.TrimSpace(description[:nested.Start] + " " + description[nested.End:])
		}
	}

	description = cleanDescription(description)
	if description == "" {
		return entity.NormalizedTransaction{}, false
	}

	txnType := classifyLineType(description, token, ectx)
	amount.Negative = txnType == entity.TransactionTypeExpense

	return finalizeCandidate(description, amount, date, txnType), true
}

// classifyLineType decides INCOME vs EXPENSE from the explicit C/D accounting
// suffix when present, otherwise from the keyword lists. Invoices default to
// EXPENSE.
func classifyLineType(description, amountToken string, ectx extractionContext) entity.TransactionType {
	trimmed := strings.TrimSpace(amountToken)
	if strings.HasSuffix(trimmed, "D") || strings.HasSuffix(trimmed, "d") || strings.HasPrefix(trimmed, "-") {
		return entity.TransactionTypeExpense
	}
	if strings.HasSuffix(trimmed, "C") || strings.HasSuffix(trimmed, "c") {
		return entity.TransactionTypeIncome
	}

	lower := strings.ToLower(description)
	if !ectx.isInvoice {
		for _, kw := range incomeKeywords {
			if strings.Contains(lower, kw) {
				return entity.TransactionTypeIncome
			}
		}
	}
	for _, kw := range expenseKeywords {
		if strings.Contains(lower, kw) {
			return entity.TransactionTypeExpense
		}
	}

	return entity.TransactionTypeExpense
}

// finalizeCandidate fills in the classifier-derived fields shared by every
// extraction path.
func finalizeCandidate(
	description string,
	amount stmt.ParsedAmount,
	date time.Time,
	txnType entity.TransactionType,
) entity.NormalizedTransaction {
	installment := stmt.DetectInstallment(description)
	recurring := stmt.DetectRecurringTransaction(description)

	return entity.NormalizedTransaction{
		Description:        description,
		Amount:             amount.Signed(),
		Date:               date,
		Type:               txnType,
		IsInstallment:      installment.IsInstallment,
		InstallmentCurrent: installment.Current,
		InstallmentTotal:   installment.Total,
		TransactionKind:    stmt.DetectTransactionKind(description),
		IsRecurring:        recurring.IsRecurring,
		RecurringName:      recurring.Name,
	}
}

// stripSpans removes two half-open spans from a line, keeping the rest.
func stripSpans(line string, aStart, aEnd, bStart, bEnd int) string {
	if aStart > bStart {
		aStart, aEnd, bStart, bEnd = bStart, bEnd, aStart, aEnd
	}
	if bStart < aEnd {
		// Overlapping spans, drop the union.
		if bEnd < aEnd {
			bEnd = aEnd
		}
		return line[:aStart] + " " + line[bEnd:]
	}
	return line[:aStart] + " " + line[aEnd:bStart] + " " + line[bEnd:]
}

// cleanDescription collapses whitespace and strips leftover separators after
// the date and amount substrings are removed.
func cleanDescription(s string) string {
	s = strings.Trim(s, " \t-–|:;,")
	return strings.Join(strings.Fields(s), " ")
}
