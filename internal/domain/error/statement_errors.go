// Package error defines domain-specific errors for the Meu Bolso application.
package error

import "errors"

// Statement parsing domain errors.
var (
	// ErrUnrecognizedCSVFormat is returned when no known bank dialect matches the CSV header.
	ErrUnrecognizedCSVFormat = errors.New("unrecognized CSV statement format")

	// ErrEmptyStatementText is returned when the OCR text is too short to contain transactions.
	ErrEmptyStatementText = errors.New("statement text is empty")

	// ErrEmptyStatementFile is returned when the uploaded statement file has no content.
	ErrEmptyStatementFile = errors.New("statement file is empty")
)

// StatementErrorCode defines error codes for statement parsing errors.
// Format: STM-XXYYYY where XX is category and YYYY is specific error.
type StatementErrorCode string

const (
	// Format errors (01XXXX)
	ErrCodeUnrecognizedCSVFormat StatementErrorCode = "STM-010001"
	ErrCodeEmptyStatementText    StatementErrorCode = "STM-010002"
	ErrCodeEmptyStatementFile    StatementErrorCode = "STM-010003"
)

// StatementError represents a statement parsing error with code and message.
type StatementError struct {
	Code    StatementErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StatementError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StatementError) Unwrap() error {
	return e.Err
}

// NewStatementError creates a new StatementError with the given code and message.
func NewStatementError(code StatementErrorCode, message string, err error) *StatementError {
	return &StatementError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
