// Package transaction contains the transaction import use cases.
package transaction

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/meubolso/backend/internal/application/adapter"
	"github.com/meubolso/backend/internal/application/usecase/reconciliation"
	"github.com/meubolso/backend/internal/domain/entity"
	domainerror "github.com/meubolso/backend/internal/domain/error"
	stmt "github.com/meubolso/backend/internal/domain/statement"
)

// ImportStatementInput represents the input for persisting parsed statement
// candidates.
type ImportStatementInput struct {
	UserID       uuid.UUID
	Origin       string
	Transactions []entity.NormalizedTransaction
}

// ImportStatementOutput summarizes the import.
type ImportStatementOutput struct {
	Imported int
	Linked   int
	Skipped  int
}

// ImportStatementUseCase persists parsed statement candidates as transactions.
// The import is row at a time and best effort: one bad row or one failed
// reconciliation never aborts the rows around it. Carryover lines additionally
// run through the bill payment reconciler.
type ImportStatementUseCase struct {
	transactionRepo adapter.TransactionRepository
	finder          *reconciliation.FindMatchingUseCase
	linker          *reconciliation.LinkCarryoverUseCase
}

// NewImportStatementUseCase creates a new ImportStatementUseCase instance.
func NewImportStatementUseCase(
	transactionRepo adapter.TransactionRepository,
	finder *reconciliation.FindMatchingUseCase,
	linker *reconciliation.LinkCarryoverUseCase,
) *ImportStatementUseCase {
	return &ImportStatementUseCase{
		transactionRepo: transactionRepo,
		finder:          finder,
		linker:          linker,
	}
}

// Execute persists the candidates and reconciles carryover lines.
func (uc *ImportStatementUseCase) Execute(ctx context.Context, input ImportStatementInput) (*ImportStatementOutput, error) {
	if len(input.Transactions) == 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyImport,
			"statement import contains no transactions",
			domainerror.ErrEmptyImport,
		)
	}
	if input.Origin == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingOrigin,
			"statement import requires an origin",
			domainerror.ErrMissingOrigin,
		)
	}

	output := &ImportStatementOutput{}

	for i, candidate := range input.Transactions {
		txn := entity.NewTransaction(
			input.UserID,
			candidate.Date,
			candidate.Description,
			candidate.Amount,
			candidate.Type,
			input.Origin,
		)
		txn.CategoryID = candidate.SuggestedCategoryID
		txn.TransactionKind = candidate.TransactionKind
		txn.IsInstallment = candidate.IsInstallment
		txn.InstallmentCurrent = candidate.InstallmentCurrent
		txn.InstallmentTotal = candidate.InstallmentTotal
		txn.IsRecurring = candidate.IsRecurring
		txn.RecurringName = candidate.RecurringName

		if err := uc.transactionRepo.Create(ctx, txn); err != nil {
			output.Skipped++
			slog.Warn("Failed to persist imported transaction",
				"userID", input.UserID,
				"row", i,
				"description", candidate.Description,
				"error", err,
			)
			continue
		}
		output.Imported++

		if stmt.IsCarryoverTransaction(candidate.Description) {
			if uc.reconcile(ctx, input.UserID, input.Origin, txn) {
				output.Linked++
			}
		}
	}

	slog.Info("Statement imported",
		"userID", input.UserID,
		"origin", input.Origin,
		"imported", output.Imported,
		"linked", output.Linked,
		"skipped", output.Skipped,
	)

	return output, nil
}

// reconcile tries to link one persisted carryover line to a pending bill
// payment. Failures are logged and swallowed; reconciliation must never break
// an import.
func (uc *ImportStatementUseCase) reconcile(ctx context.Context, userID uuid.UUID, origin string, txn *entity.Transaction) bool {
	if uc.finder == nil || uc.linker == nil {
		return false
	}

	payment, err := uc.finder.Execute(ctx, reconciliation.FindMatchingInput{
		UserID:     userID,
		Origin:     origin,
		Amount:     txn.Amount,
		ImportDate: txn.Date,
	})
	if err != nil {
		slog.Warn("Bill payment lookup failed during import",
			"userID", userID,
			"transactionID", txn.ID,
			"error", err,
		)
		return false
	}
	if payment == nil {
		return false
	}

	if _, err := uc.linker.Execute(ctx, reconciliation.LinkCarryoverInput{
		UserID:      userID,
		BillPayment: payment,
		Transaction: txn,
	}); err != nil {
		slog.Warn("Carryover linking failed during import",
			"userID", userID,
			"billPaymentID", payment.ID,
			"transactionID", txn.ID,
			"error", err,
		)
		return false
	}

	return true
}
