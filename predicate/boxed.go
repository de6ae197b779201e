package predicate

// Box wraps a predicate behind one concrete type so that heterogeneous
// predicate expressions can be stored uniformly, e.g. in a []Box[string].
// Eval and String delegate unconditionally to the wrapped predicate, at the
// cost of one indirection per call.
//
// The wrapped predicate must be safe for concurrent use without external
// locking. Box adds no synchronization of its own; this is a precondition on
// construction, not a runtime-enforced property. Every predicate in this
// module satisfies it.
type Box[T any] struct {
	inner Predicate[T]
}

// Boxed creates a new Box around inner.
func Boxed[T any](inner Predicate[T]) Box[T] {
	return Box[T]{
		inner: inner,
	}
}

func (b Box[T]) Eval(item T) bool {
	return b.inner.Eval(item)
}

func (b Box[T]) String() string {
	return b.inner.String()
}

var _ = Predicate[string](Box[string]{})
