package error

import "errors"

// Partner domain errors.
var (
	// ErrPartnerNotFound is returned when a partner is not found in the system.
	ErrPartnerNotFound = errors.New("partner not found")

	// ErrPartnerMissingFields is returned when name or share percentage are absent.
	ErrPartnerMissingFields = errors.New("name and share percentage are required")

	// ErrPartnerInvalidShare is returned when a share percentage is outside [0, 100].
	ErrPartnerInvalidShare = errors.New("share percentage must be between 0 and 100")

	// ErrShareTotalExceeded is returned when the sum of all shares would pass 100.
	ErrShareTotalExceeded = errors.New("total share percentage cannot exceed 100")

	// ErrPartnerIDRequired is returned when the profit history is requested without a partner.
	ErrPartnerIDRequired = errors.New("partner id is required")
)

// PartnerErrorCode defines error codes for partner errors.
// Format: PTN-XXYYYY where XX is category and YYYY is specific error.
type PartnerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodePartnerMissingFields PartnerErrorCode = "PTN-010001"
	ErrCodePartnerInvalidShare  PartnerErrorCode = "PTN-010002"
	ErrCodePartnerIDRequired    PartnerErrorCode = "PTN-010003"
	ErrCodeInvalidPartnerID     PartnerErrorCode = "PTN-010004"

	// Lookup errors (02XXXX)
	ErrCodePartnerNotFound PartnerErrorCode = "PTN-020001"

	// Invariant errors (03XXXX)
	ErrCodeShareTotalExceeded PartnerErrorCode = "PTN-030001"

	// Store errors (05XXXX)
	ErrCodePartnerStore PartnerErrorCode = "PTN-050001"
)

// PartnerError represents a partner error with code and message.
type PartnerError struct {
	Code    PartnerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PartnerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PartnerError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the error code as a string.
func (e *PartnerError) ErrorCode() string { return string(e.Code) }

// ErrorMessage returns the client facing message.
func (e *PartnerError) ErrorMessage() string { return e.Message }

// NewPartnerError creates a new PartnerError with the given code and message.
func NewPartnerError(code PartnerErrorCode, message string, err error) *PartnerError {
	return &PartnerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
