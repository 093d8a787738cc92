package kolladm

import (
	"errors"
	"fmt"
)

// ValidationError is returned when a mutation would violate an inventory
// invariant: unknown name, namespace collision, protected group deletion or
// an illegal deploy mode switch. It is never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// PersistenceError is returned when loading or saving the inventory fails.
// It is fatal to the invoking operation, a half-loaded aggregate is never
// accepted as valid.
type PersistenceError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s inventory (%s) failed: %s", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsPersistenceError reports whether err is a PersistenceError.
func IsPersistenceError(err error) bool {
	var p *PersistenceError
	return errors.As(err, &p)
}
