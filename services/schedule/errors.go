// File: services/schedule/errors.go
package schedule

import "errors"

// ValidationError carries a user-visible rejection message for a submission
// that failed a precondition check. No records are written when one is
// returned.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}

// IsValidation reports whether err is a submission validation failure.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}

// ErrNotFound signals that a plan or record does not exist.
var ErrNotFound = errors.New("not found")

// ErrForbidden signals an attempt to mutate another user's record.
var ErrForbidden = errors.New("forbidden")
