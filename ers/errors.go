package ers

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// New constructs an error object that uses the Error as the
// underlying type.
func New(str string) error { return Error(str) }

// Is returns true if the error is one of the target errors, (or one
// of it's constituent (wrapped) errors is a target error. ers.Is uses
// errors.Is.
func Is(err error, targets ...error) bool {
	for _, target := range targets {
		if err == nil && target != nil {
			continue
		}
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// As is a wrapper around errors.As to allow ers to be a drop in
// replacement for errors.
func As(err error, target any) bool { return errors.As(err, target) }

// Ok returns true when the error is nil, and false otherwise.
func Ok(err error) bool { return err == nil }

// When returns err IF the conditional is true, and nil otherwise.
func When(cond bool, err error) error {
	if !cond {
		return nil
	}
	return err
}

// Whenf constructs an error (using fmt.Errorf) IF the conditional is
// true, and returns nil otherwise.
func Whenf(cond bool, tmpl string, args ...any) error {
	if !cond {
		return nil
	}
	return fmt.Errorf(tmpl, args...)
}

// Wrap annotates err with a message and a stack trace. Wrapping a
// nil error returns nil.
func Wrap(err error, msg string) error { return pkgerrors.Wrap(err, msg) }

// Wrapf annotates err with a formatted message and a stack
// trace. Wrapping a nil error returns nil.
func Wrapf(err error, tmpl string, args ...any) error { return pkgerrors.Wrapf(err, tmpl, args...) }

// Cause returns the innermost error annotated by Wrap or Wrapf.
func Cause(err error) error { return pkgerrors.Cause(err) }
