package error

import "errors"

// Ledger (expense and income) domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrIncomeNotFound is returned when an income entry is not found in the system.
	ErrIncomeNotFound = errors.New("income not found")

	// ErrLedgerMissingFields is returned when description, amount or type are absent.
	ErrLedgerMissingFields = errors.New("description, amount, and type are required")

	// ErrLedgerInvalidType is returned when the entry type is not manual or auto.
	ErrLedgerInvalidType = errors.New("invalid entry type")

	// ErrLedgerInvalidAmount is returned when the amount is not strictly positive.
	ErrLedgerInvalidAmount = errors.New("amount must be greater than 0")

	// ErrLedgerInvalidProduct is returned when product_id references no product.
	ErrLedgerInvalidProduct = errors.New("invalid product id")

	// ErrInvalidDateRange is returned when a date filter cannot be parsed or is inverted.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidMonths is returned when a month window is out of range.
	ErrInvalidMonths = errors.New("invalid number of months")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LDG-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeLedgerMissingFields  LedgerErrorCode = "LDG-010001"
	ErrCodeLedgerInvalidType    LedgerErrorCode = "LDG-010002"
	ErrCodeLedgerInvalidAmount  LedgerErrorCode = "LDG-010003"
	ErrCodeLedgerInvalidProduct LedgerErrorCode = "LDG-010004"
	ErrCodeInvalidDateRange     LedgerErrorCode = "LDG-010005"
	ErrCodeInvalidMonths        LedgerErrorCode = "LDG-010006"
	ErrCodeInvalidLedgerID      LedgerErrorCode = "LDG-010007"

	// Lookup errors (02XXXX)
	ErrCodeExpenseNotFound LedgerErrorCode = "LDG-020001"
	ErrCodeIncomeNotFound  LedgerErrorCode = "LDG-020002"

	// Store errors (05XXXX)
	ErrCodeLedgerStore LedgerErrorCode = "LDG-050001"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the error code as a string.
func (e *LedgerError) ErrorCode() string { return string(e.Code) }

// ErrorMessage returns the client facing message.
func (e *LedgerError) ErrorMessage() string { return e.Message }

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
