package predicate

// Name returns a predicate that evaluates exactly like p but whose
// description is the given label. The inner description is dropped entirely,
// not appended to. Combinator trees produce deep, unreadable descriptions;
// naming collapses a subtree to a short label for diagnostics.
func Name[T any](p Predicate[T], label string) Predicate[T] {
	return &named[T]{
		p:     p,
		label: label,
	}
}

type named[T any] struct {
	p     Predicate[T]
	label string
}

func (n *named[T]) Eval(item T) bool {
	return n.p.Eval(item)
}

func (n *named[T]) String() string {
	return n.label
}

var _ = Predicate[string](&named[string]{})
