package ers

// ErrOutOfRange is returned (wrapped) by positional operations when
// the index does not address an element of the container.
const ErrOutOfRange Error = Error("index out of range")

// ErrUnderflow is returned (wrapped) by operations that need at
// least one element when the container is empty.
const ErrUnderflow Error = Error("container is empty")

// ErrNotSorted is the precondition violation returned by binary
// search operations when the list is not known to be sorted.
const ErrNotSorted Error = Error("list must be sorted")

// ErrInvariantViolation is the root of errors reporting a broken
// structural invariant, and of the panics raised for misuse.
const ErrInvariantViolation Error = Error("invariant violation")

// ErrRecoveredPanic is at the root of any error produced by
// recovering a panic with Recover or Safe.
const ErrRecoveredPanic Error = Error("recovered panic")

// ErrInvalidInput indicates malformed input, typically
// configuration or scripts. These errors are not retriable.
const ErrInvalidInput Error = Error("invalid input")
