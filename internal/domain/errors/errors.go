package errors

import "errors"

var (
	ErrAlreadyExists   = errors.New("user already exists")
	ErrNotFound        = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)

// ValidationError reports the first rule a credentials payload violated.
// Message is safe to return to clients.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StoreError wraps a credential store fault that is not a domain outcome
// (connectivity, driver or unexpected constraint failures).
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
