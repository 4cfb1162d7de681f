// Package error defines domain-specific errors for the Meu Bolso application.
package error

import "errors"

// Bill payment domain errors.
var (
	// ErrBillPaymentNotFound is returned when a bill payment is not found in the system.
	ErrBillPaymentNotFound = errors.New("bill payment not found")

	// ErrInvalidPaymentType is returned when the payment type is neither partial nor financed.
	ErrInvalidPaymentType = errors.New("invalid payment type")

	// ErrInvalidInstallmentCount is returned when a financed payment has a missing or invalid installment count.
	ErrInvalidInstallmentCount = errors.New("invalid installment count")

	// ErrInvalidBillMonth is returned when the bill month is outside 1-12.
	ErrInvalidBillMonth = errors.New("bill month must be between 1 and 12")

	// ErrAmountPaidExceedsTotal is returned when the amount paid is not smaller than the total bill.
	ErrAmountPaidExceedsTotal = errors.New("amount paid must be smaller than the total bill amount")

	// ErrDuplicateBillPayment is returned when an unlinked payment already exists for the same origin and period.
	ErrDuplicateBillPayment = errors.New("a pending bill payment already exists for this origin and period")

	// ErrBillPaymentLinked is returned when mutating a payment already linked to an imported statement.
	ErrBillPaymentLinked = errors.New("bill payment is already linked to an imported statement")

	// ErrInstallmentNotFound is returned when an installment plan is not found.
	ErrInstallmentNotFound = errors.New("installment plan not found")
)

// BillPaymentErrorCode defines error codes for bill payment errors.
// Format: BPY-XXYYYY where XX is category and YYYY is specific error.
type BillPaymentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPaymentType      BillPaymentErrorCode = "BPY-010001"
	ErrCodeInvalidInstallmentCount BillPaymentErrorCode = "BPY-010002"
	ErrCodeInvalidBillMonth        BillPaymentErrorCode = "BPY-010003"
	ErrCodeAmountPaidExceedsTotal  BillPaymentErrorCode = "BPY-010004"
	ErrCodeDuplicateBillPayment    BillPaymentErrorCode = "BPY-010005"
	ErrCodeBillPaymentLinked       BillPaymentErrorCode = "BPY-010006"

	// Not-found errors (02XXXX)
	ErrCodeBillPaymentNotFound BillPaymentErrorCode = "BPY-020001"
	ErrCodeInstallmentNotFound BillPaymentErrorCode = "BPY-020002"
)

// BillPaymentError represents a bill payment error with code and message.
type BillPaymentError struct {
	Code    BillPaymentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BillPaymentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BillPaymentError) Unwrap() error {
	return e.Err
}

// NewBillPaymentError creates a new BillPaymentError with the given code and message.
func NewBillPaymentError(code BillPaymentErrorCode, message string, err error) *BillPaymentError {
	return &BillPaymentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
