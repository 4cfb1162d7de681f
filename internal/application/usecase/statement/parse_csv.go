// Package statement contains statement parsing use cases.
package statement

import (
	"context"
	"encoding/csv"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/meubolso/backend/internal/domain/error"
	"github.com/meubolso/backend/internal/domain/entity"
	stmt "github.com/meubolso/backend/internal/domain/statement"
)

// csvDialect describes how one bank lays out its statement CSV.
type csvDialect struct {
	name            string
	descriptionKeys []string
}

// Known dialects, detected from header tokens. The description column is the
// distinguishing feature; every dialect carries "data" and "valor" columns.
var csvDialects = []csvDialect{
	{name: "c6", descriptionKeys: []string{"descricao", "descrição"}},
	{name: "itau", descriptionKeys: []string{"lancamento", "lançamento"}},
	{name: "btg", descriptionKeys: []string{"historico", "histórico"}},
}

// ParseCSVInput represents the input for parsing a CSV statement.
type ParseCSVInput struct {
	UserID  uuid.UUID
	Origin  string
	Content string
}

// ParseCSVOutput represents the output of CSV statement parsing.
type ParseCSVOutput struct {
	Dialect      string
	Transactions []entity.NormalizedTransaction
	SkippedRows  int
}

// ParseCSVUseCase turns a delimited statement file into normalized transaction
// candidates. Rows with missing fields or unparseable amounts are skipped
// silently; Brazilian statements routinely carry header and footer noise.
type ParseCSVUseCase struct {
	suggester *CategorySuggester
}

// NewParseCSVUseCase creates a new ParseCSVUseCase instance.
func NewParseCSVUseCase(suggester *CategorySuggester) *ParseCSVUseCase {
	return &ParseCSVUseCase{
		suggester: suggester,
	}
}

// Execute parses the CSV content for the detected bank dialect.
func (uc *ParseCSVUseCase) Execute(ctx context.Context, input ParseCSVInput) (*ParseCSVOutput, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, domainerror.NewStatementError(
			domainerror.ErrCodeEmptyStatementFile,
			"statement file is empty",
			domainerror.ErrEmptyStatementFile,
		)
	}

	records, err := readRecords(content)
	if err != nil || len(records) == 0 {
		return nil, domainerror.NewStatementError(
			domainerror.ErrCodeUnrecognizedCSVFormat,
			"could not read statement file as CSV",
			domainerror.ErrUnrecognizedCSVFormat,
		)
	}

	dialect, columns, ok := detectDialect(records[0])
	if !ok {
		return nil, domainerror.NewStatementError(
			domainerror.ErrCodeUnrecognizedCSVFormat,
			"no known bank layout matches the file header",
			domainerror.ErrUnrecognizedCSVFormat,
		)
	}

	now := time.Now().UTC()
	var transactions []entity.NormalizedTransaction
	skipped := 0

	for i, record := range records[1:] {
		txn, ok := uc.parseRow(ctx, record, columns, input.UserID, now)
		if !ok {
			skipped++
			slog.Debug("Skipping statement row", "row", i+1, "fields", len(record))
			continue
		}
		transactions = append(transactions, txn)
	}

	slog.Info("CSV statement parsed",
		"dialect", dialect,
		"origin", input.Origin,
		"rows", len(records)-1,
		"transactions", len(transactions),
		"skipped", skipped,
	)

	return &ParseCSVOutput{
		Dialect:      dialect,
		Transactions: transactions,
		SkippedRows:  skipped,
	}, nil
}

// parseRow converts one data row into a normalized transaction candidate.
// ok is false when the row must be skipped.
func (uc *ParseCSVUseCase) parseRow(
	ctx context.Context,
	record []string,
	columns dialectColumns,
	userID uuid.UUID,
	now time.Time,
) (entity.NormalizedTransaction, bool) {
	maxIdx := columns.date
	if columns.description > maxIdx {
		maxIdx = columns.description
	}
	if columns.amount > maxIdx {
		maxIdx = columns.amount
	}
	if len(record) <= maxIdx {
		return entity.NormalizedTransaction{}, false
	}

	rawDate := strings.TrimSpace(record[columns.date])
	description := strings.TrimSpace(record[columns.description])
	rawAmount := strings.TrimSpace(record[columns.amount])

	if rawDate == "" || description == "" || rawAmount == "" {
		return entity.NormalizedTransaction{}, false
	}

	date, ok := stmt.ParseDate(rawDate, now)
	if !ok {
		return entity.NormalizedTransaction{}, false
	}

	amount := stmt.ParseBrazilianAmount(rawAmount)
	if amount.IsZero() {
		return entity.NormalizedTransaction{}, false
	}

	// At the raw-import stage every credit card statement row is an expense;
	// income/transfer reclassification happens downstream.
	amount.Negative = true

	txnType := entity.TransactionTypeExpense
	if stmt.DetectTransfer(description) {
		txnType = entity.TransactionTypeTransfer
	}

	installment := stmt.DetectInstallment(description)
	recurring := stmt.DetectRecurringTransaction(description)

	txn := entity.NormalizedTransaction{
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

	if uc.suggester != nil {
		txn.SuggestedCategoryID = uc.suggester.Suggest(ctx, description, userID)
	}

	return txn, true
}

// dialectColumns holds the column indexes for a detected dialect.
type dialectColumns struct {
	date        int
	description int
	amount      int
}

// readRecords reads all rows, sniffing the delimiter: C6 exports use
// semicolons, Itaú and BTG use commas.
func readRecords(content string) ([][]string, error) {
	firstLine := content
	if idx := strings.IndexByte(content, '\n'); idx >= 0 {
		firstLine = content[:idx]
	}

	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	if strings.Count(firstLine, ";") > strings.Count(firstLine, ",") {
		reader.Comma = ';'
	}

	return reader.ReadAll()
}

// detectDialect matches header tokens case-insensitively against the known
// dialects. A header with "data" and "valor" but no known description column
// is treated as C6-shaped, using the column between them.
func detectDialect(header []string) (string, dialectColumns, bool) {
	dateIdx, amountIdx := -1, -1
	lowered := make([]string, len(header))
	for i, h := range header {
		lowered[i] = strings.ToLower(strings.TrimSpace(h))
		if dateIdx == -1 && strings.Contains(lowered[i], "data") {
			dateIdx = i
		}
		if amountIdx == -1 && strings.Contains(lowered[i], "valor") {
			amountIdx = i
		}
	}

	if dateIdx == -1 || amountIdx == -1 {
		return "", dialectColumns{}, false
	}

	for _, dialect := range csvDialects {
		for i, col := range lowered {
			for _, key := range dialect.descriptionKeys {
				if strings.Contains(col, key) {
					return dialect.name, dialectColumns{date: dateIdx, description: i, amount: amountIdx}, true
				}
			}
		}
	}

	// Generic data+valor fallback: assume the C6 shape with the description
	// in the column right after the date.
	descIdx := dateIdx + 1
	if descIdx == amountIdx || descIdx >= len(header) {
		return "", dialectColumns{}, false
	}
	return "c6", dialectColumns{date: dateIdx, description: descIdx, amount: amountIdx}, true
}
