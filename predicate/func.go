package predicate

// Func returns a predicate backed by fn. The given description is returned
// verbatim by String. fn must be pure; Func does not (and cannot) enforce
// this.
func Func[T any](fn func(T) bool, description string) Predicate[T] {
	return &funcPredicate[T]{
		fn:          fn,
		description: description,
	}
}

type funcPredicate[T any] struct {
	fn          func(T) bool
	description string
}

func (p *funcPredicate[T]) Eval(item T) bool {
	return p.fn(item)
}

func (p *funcPredicate[T]) String() string {
	return p.description
}

var _ = Predicate[string](&funcPredicate[string]{})

// True returns a predicate that evaluates to true for every input.
func True[T any]() Predicate[T] {
	return truth[T](true)
}

// False returns a predicate that evaluates to false for every input.
func False[T any]() Predicate[T] {
	return truth[T](false)
}

type truth[T any] bool

func (p truth[T]) Eval(T) bool {
	return bool(p)
}

func (p truth[T]) String() string {
	if p {
		return "true"
	}
	return "false"
}

var _ = Predicate[string](truth[string](true))
