package error

import "errors"

// Authentication domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameAlreadyExists is returned when registering a username that is taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrInvalidCredentials is returned when login credentials are invalid.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a token is invalid, malformed or expired.
	ErrInvalidToken = errors.New("invalid token")

	// ErrOwnerLimitReached is returned when registering an owner beyond the cap.
	ErrOwnerLimitReached = errors.New("maximum number of owners already reached")

	// ErrInvalidRole is returned when the role is not owner or staff.
	ErrInvalidRole = errors.New("role must be either owner or staff")

	// ErrCannotDeleteSelf is returned when a user tries to delete their own account.
	ErrCannotDeleteSelf = errors.New("cannot delete your own account")

	// ErrIncorrectPassword is returned when the current password does not match.
	ErrIncorrectPassword = errors.New("current password is incorrect")

	// ErrWeakPassword is returned when the provided password does not meet requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrInvalidUsername is returned when the username is too short.
	ErrInvalidUsername = errors.New("username must be at least 3 characters")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingFields     AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidRole       AuthErrorCode = "AUTH-010002"
	ErrCodeWeakPassword      AuthErrorCode = "AUTH-010003"
	ErrCodeInvalidUsername   AuthErrorCode = "AUTH-010004"
	ErrCodeCannotDeleteSelf  AuthErrorCode = "AUTH-010005"
	ErrCodeIncorrectPassword AuthErrorCode = "AUTH-010006"
	ErrCodeInvalidUserID     AuthErrorCode = "AUTH-010007"

	// Lookup errors (02XXXX)
	ErrCodeUserNotFound AuthErrorCode = "AUTH-020001"

	// Invariant errors (03XXXX)
	ErrCodeUsernameExists    AuthErrorCode = "AUTH-030001"
	ErrCodeOwnerLimitReached AuthErrorCode = "AUTH-030002"

	// Authentication errors (04XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-040001"
	ErrCodeInvalidToken       AuthErrorCode = "AUTH-040002"
	ErrCodeMissingToken       AuthErrorCode = "AUTH-040003"

	// Store errors (05XXXX)
	ErrCodeAuthStore AuthErrorCode = "AUTH-050001"

	// Authorization errors (06XXXX)
	ErrCodeForbidden   AuthErrorCode = "AUTH-060001"
	ErrCodeRateLimited AuthErrorCode = "AUTH-060002"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the error code as a string.
func (e *AuthError) ErrorCode() string { return string(e.Code) }

// ErrorMessage returns the client facing message.
func (e *AuthError) ErrorMessage() string { return e.Message }

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
