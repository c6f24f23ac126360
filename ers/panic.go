package ers

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Recover catches a panic, turns it into an error and passes it to
// the provided observer function. It must be called directly by a
// deferred statement.
func Recover(ob func(error)) { ob(ParsePanic(recover())) }

// ParsePanic converts a recovered value to an error rooted in
// ErrRecoveredPanic. If no panic is detected, ParsePanic returns nil.
func ParsePanic(r any) error {
	switch val := r.(type) {
	case nil:
		return nil
	case error:
		return &recovered{err: val}
	case string:
		return &recovered{err: New(val)}
	default:
		return &recovered{err: fmt.Errorf("[%T]: %v", val, val)}
	}
}

// Safe runs the function, converting a panic into an error. The
// panic's value, when it is an error, remains reachable with
// errors.Is alongside ErrRecoveredPanic.
func Safe[T any](fn func() T) (out T, err error) {
	defer Recover(func(rerr error) { err = rerr })
	return fn(), nil
}

// NewInvariantViolation builds the error used as the content of
// panics for container misuse.
func NewInvariantViolation(err error, msg string) error {
	if err == nil {
		return pkgerrors.Wrap(ErrInvariantViolation, msg)
	}
	return &invariant{err: err, msg: msg}
}

type recovered struct{ err error }

func (r *recovered) Error() string   { return fmt.Sprintf("%s: %v", ErrRecoveredPanic, r.err) }
func (r *recovered) Unwrap() []error { return []error{r.err, ErrRecoveredPanic} }

type invariant struct {
	err error
	msg string
}

func (i *invariant) Error() string   { return fmt.Sprintf("%s: %s: %v", ErrInvariantViolation, i.msg, i.err) }
func (i *invariant) Unwrap() []error { return []error{i.err, ErrInvariantViolation} }
