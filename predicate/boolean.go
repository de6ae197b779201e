package predicate

import "fmt"

// Note that and/or implement their own Eval methods instead of delegating to
// a shared binary-op type so that we can take advantage of short-circuiting.

// And returns a predicate that's true when both a and b are true. b is not
// evaluated when a is false, and a is always evaluated before b. Callers may
// rely on this left-to-right short-circuit order.
func And[T any](a Predicate[T], b Predicate[T]) Predicate[T] {
	return &and[T]{
		a: a,
		b: b,
	}
}

type and[T any] struct {
	a Predicate[T]
	b Predicate[T]
}

func (p *and[T]) Eval(item T) bool {
	return p.a.Eval(item) && p.b.Eval(item)
}

func (p *and[T]) String() string {
	return fmt.Sprintf("(%v && %v)", p.a, p.b)
}

var _ = Predicate[string](&and[string]{})

// Or returns a predicate that's true when at least one of a and b is true.
// b is not evaluated when a is true.
func Or[T any](a Predicate[T], b Predicate[T]) Predicate[T] {
	return &or[T]{
		a: a,
		b: b,
	}
}

type or[T any] struct {
	a Predicate[T]
	b Predicate[T]
}

func (p *or[T]) Eval(item T) bool {
	return p.a.Eval(item) || p.b.Eval(item)
}

func (p *or[T]) String() string {
	return fmt.Sprintf("(%v || %v)", p.a, p.b)
}

var _ = Predicate[string](&or[string]{})

// Not returns a predicate that negates p.
func Not[T any](p Predicate[T]) Predicate[T] {
	return &not[T]{
		p: p,
	}
}

type not[T any] struct {
	p Predicate[T]
}

func (n *not[T]) Eval(item T) bool {
	return !n.p.Eval(item)
}

func (n *not[T]) String() string {
	return fmt.Sprintf("(!%v)", n.p)
}

var _ = Predicate[string](&not[string]{})

// AllOf folds And over the given predicates, left to right.
func AllOf[T any](first Predicate[T], rest ...Predicate[T]) Predicate[T] {
	p := first
	for _, q := range rest {
		p = And(p, q)
	}
	return p
}

// AnyOf folds Or over the given predicates, left to right.
func AnyOf[T any](first Predicate[T], rest ...Predicate[T]) Predicate[T] {
	p := first
	for _, q := range rest {
		p = Or(p, q)
	}
	return p
}
