package predicate

import (
	"github.com/stretchr/testify/suite"
)

// evalSuite contains helpers shared by the predicate test suites.
type evalSuite struct {
	suite.Suite
}

// ETTC => EvalTrueTestCases. Saves some typing
func (s *evalSuite) ETTC(p Predicate[string], values ...string) {
	for _, v := range values {
		s.True(p.Eval(v), "expected %v to match %q", p, v)
	}
}

// EFTC => EvalFalseTestCases
func (s *evalSuite) EFTC(p Predicate[string], values ...string) {
	for _, v := range values {
		s.False(p.Eval(v), "expected %v to not match %q", p, v)
	}
}

// hasPrefix returns a func-based predicate for use as a combinator child.
func hasPrefix(prefix string) Predicate[string] {
	return Func(func(s string) bool {
		return len(s) >= len(prefix) && s[0:len(prefix)] == prefix
	}, "hasPrefix("+prefix+")")
}

// bomb returns a predicate that panics if it is ever evaluated. It's used to
// test the combinators' short-circuit contract.
func bomb() Predicate[string] {
	return Func(func(string) bool {
		panic("bomb predicate was evaluated")
	}, "bomb")
}
