package tracker

import (
	"errors"
	"fmt"
)

// Kind classifies a tracker error so callers can branch on the failure
// category instead of matching message text.
type Kind int

const (
	// KindNetwork means the request could not be completed at all.
	KindNetwork Kind = iota
	// KindNotFound means the backend returned 404 for the target resource.
	KindNotFound
	// KindValidation means the request was rejected locally before any
	// network call was made.
	KindValidation
	// KindServer means the backend returned a non-2xx status other than 404.
	KindServer
)

// String returns a short label for the kind.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindNotFound:
		return "not found"
	case KindValidation:
		return "validation"
	case KindServer:
		return "server"
	}
	return "unknown"
}

// Error is a classified failure from a client operation.
type Error struct {
	Kind       Kind
	Op         string // logical operation, e.g. "list issues"
	StatusCode int    // HTTP status, set for KindServer and KindNotFound
	Message    string // short human-readable detail
	Err        error  // underlying cause, may be nil
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Kind == KindServer && e.Message != "":
		return fmt.Sprintf("%s: server returned %d: %s", e.Op, e.StatusCode, e.Message)
	case e.Kind == KindServer:
		return fmt.Sprintf("%s: server returned %d", e.Op, e.StatusCode)
	case e.Kind == KindNotFound:
		return fmt.Sprintf("%s: not found", e.Op)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err if it is (or wraps) a tracker Error.
// Errors from outside the client report KindNetwork, the most conservative
// category for a caller deciding what to show the user.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return KindNetwork
}

// IsNotFound reports whether err is a tracker not-found error.
func IsNotFound(err error) bool {
	var te *Error
	return errors.As(err, &te) && te.Kind == KindNotFound
}

// IsValidation reports whether err is a local validation error.
func IsValidation(err error) bool {
	var te *Error
	return errors.As(err, &te) && te.Kind == KindValidation
}
