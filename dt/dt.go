// Package dt provides linked container types: an ordered doubly
// linked List that tracks whether its contents are sorted, and
// singly linked Queue and Stack types.
//
// All top level structures in this package are single-owner: they
// are not safe for access from multiple concurrent go routines, and
// callers that share them must serialize access themselves.
package dt

import "github.com/tychoish/chain/ers"

// ErrUninitializedContainer is the content of the panic produced when you
// attempt to perform an operation on a list that has no ordering.
const ErrUninitializedContainer ers.Error = ers.Error("uninitialized container")
