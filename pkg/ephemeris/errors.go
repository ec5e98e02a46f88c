package ephemeris

import "fmt"

// Error is a failure reported by the external ephemeris. It keeps the upstream
// cause intact so its semantic kind still matches with errors.Is.
type Error struct {
	// Body is the body the failure applies to, or -1 for the whole request.
	Body Body
	Err  error
}

// RequestBody marks an Error that concerns the whole request.
const RequestBody Body = -1

func (e *Error) Error() string {
	if e.Body == RequestBody {
		return fmt.Sprintf("ephemeris: %v", e.Err)
	}

	return fmt.Sprintf("ephemeris: %s: %v", e.Body, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError wraps err as an upstream failure for body.
func NewError(body Body, err error) *Error {
	return &Error{Body: body, Err: err}
}
