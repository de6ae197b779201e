package strp

import (
	"github.com/sift-tools/sift/predicate"
	"github.com/stretchr/testify/suite"
)

type evalSuite struct {
	suite.Suite
}

// ETTC => EvalTrueTestCases. Saves some typing
func (s *evalSuite) ETTC(p predicate.Predicate[string], values ...string) {
	for _, v := range values {
		s.True(p.Eval(v), "expected %v to match %q", p, v)
	}
}

// EFTC => EvalFalseTestCases
func (s *evalSuite) EFTC(p predicate.Predicate[string], values ...string) {
	for _, v := range values {
		s.False(p.Eval(v), "expected %v to not match %q", p, v)
	}
}
