package dt

// Order records what a List knows about the arrangement of its
// values under its default ordering. The tracker is conservative:
// OrderSorted is never reported for a list that is out of order, but
// a sorted list may report OrderUnknown.
type Order int8

const (
	// OrderUnknown means no claim is made about the arrangement.
	OrderUnknown Order = iota
	// OrderSorted means the values are non-decreasing.
	OrderSorted
	// OrderUnsorted means an inversion was observed.
	OrderUnsorted
)

func (o Order) String() string {
	switch o {
	case OrderSorted:
		return "sorted"
	case OrderUnsorted:
		return "unsorted"
	default:
		return "unknown"
	}
}
