package error

import "errors"

// Product domain errors.
var (
	// ErrProductNotFound is returned when a product is not found in the system.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductNameRequired is returned when the product name is blank.
	ErrProductNameRequired = errors.New("product name is required")

	// ErrProductNegativeValue is returned when a price or the quantity is negative.
	ErrProductNegativeValue = errors.New("prices and quantity must be non-negative")

	// ErrProductMissingFields is returned when a required product field is absent.
	ErrProductMissingFields = errors.New("all fields are required")

	// ErrSearchQueryRequired is returned when a product search has no query.
	ErrSearchQueryRequired = errors.New("search query is required")
)

// ProductErrorCode defines error codes for product errors.
// Format: PRD-XXYYYY where XX is category and YYYY is specific error.
type ProductErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeProductMissingFields ProductErrorCode = "PRD-010001"
	ErrCodeProductNameRequired  ProductErrorCode = "PRD-010002"
	ErrCodeProductNegativeValue ProductErrorCode = "PRD-010003"
	ErrCodeSearchQueryRequired  ProductErrorCode = "PRD-010004"
	ErrCodeInvalidProductID     ProductErrorCode = "PRD-010005"

	// Lookup errors (02XXXX)
	ErrCodeProductNotFound ProductErrorCode = "PRD-020001"

	// Store errors (05XXXX)
	ErrCodeProductStore ProductErrorCode = "PRD-050001"
)

// ProductError represents a product error with code and message.
type ProductError struct {
	Code    ProductErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProductError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProductError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the error code as a string.
func (e *ProductError) ErrorCode() string { return string(e.Code) }

// ErrorMessage returns the client facing message.
func (e *ProductError) ErrorMessage() string { return e.Message }

// NewProductError creates a new ProductError with the given code and message.
func NewProductError(code ProductErrorCode, message string, err error) *ProductError {
	return &ProductError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
