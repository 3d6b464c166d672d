// Package error defines domain-specific errors for the Shop Ledger application.
package error

import (
	"errors"
	"strings"
)

// Kind classifies domain errors independently of the area that raised them.
type Kind int

const (
	// KindStore is an unexpected persistence or infrastructure failure.
	KindStore Kind = iota
	// KindValidation is malformed or out-of-range input.
	KindValidation
	// KindNotFound is a referenced entity that does not exist.
	KindNotFound
	// KindConflict is an invariant violation such as a share overflow or a duplicate username.
	KindConflict
	// KindUnauthorized is a missing or rejected identity.
	KindUnauthorized
	// KindForbidden is an identity lacking the required role.
	KindForbidden
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "store"
	}
}

// Coded is implemented by every domain error carrying an AREA-XXYYYY code.
type Coded interface {
	error
	ErrorCode() string
	ErrorMessage() string
}

// KindOf classifies err. Errors that are not domain errors are store failures.
func KindOf(err error) Kind {
	var coded Coded
	if !errors.As(err, &coded) {
		return KindStore
	}
	return kindFromCode(coded.ErrorCode())
}

// kindFromCode reads the XX category out of a code formatted as AREA-XXYYYY.
func kindFromCode(code string) Kind {
	idx := strings.IndexByte(code, '-')
	if idx < 0 || len(code) < idx+3 {
		return KindStore
	}
	switch code[idx+1 : idx+3] {
	case "01":
		return KindValidation
	case "02":
		return KindNotFound
	case "03":
		return KindConflict
	case "04":
		return KindUnauthorized
	case "06":
		return KindForbidden
	default:
		return KindStore
	}
}
