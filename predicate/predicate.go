// Package predicate defines a composable boolean predicate over values of a
// single type, together with the combinators used to build predicate
// expressions. Predicates are immutable after construction, so they are safe
// to evaluate from multiple goroutines without any synchronization.
package predicate

import "fmt"

// Predicate is a pure boolean check over values of type T. Eval must be
// deterministic and side-effect free. String returns a human-readable
// rendering of the check; it is meant for diagnostics (e.g. assertion
// failure messages), never for equality or dispatch.
type Predicate[T any] interface {
	Eval(item T) bool
	fmt.Stringer
}
