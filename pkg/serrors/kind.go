// Package serrors implements semantic errors: a small set of kinds that callers
// match with errors.Is and that outer layers translate into exit codes or HTTP
// statuses, optionally carrying a message and a wrapped cause.
package serrors

import "errors"

// Kind is a semantic error category. Only values created by NewKind implement it.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind identified by name.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrNotFound indicates the requested entity (chart, body, sign) does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrBadRequest indicates the caller sent malformed input.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrDomain indicates a value outside the domain of a pure function, such as a
	// non-finite longitude handed to the classifier.
	ErrDomain = NewKind("DOMAIN")
	// ErrConflict indicates the operation no longer applies to the current state.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal indicates an unexpected failure.
	ErrInternal = NewKind("INTERNAL")
	// ErrUnavailable indicates a collaborator is closed or temporarily unusable.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrRateLimited indicates an upstream rejected the call for exceeding its budget.
	ErrRateLimited = NewKind("RATE_LIMITED")
)

// KindOf returns the first semantic kind found in err's chain, or nil.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}
