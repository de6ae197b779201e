package parser

import (
	"github.com/golang-collections/collections/stack"
	"github.com/sift-tools/sift/predicate"
)

type evalStack struct {
	*stack.Stack
	andOp             *binaryOp
	mostRecentOp      *binaryOp
	mostRecentOpToken string
}

func newEvalStack(andOp *binaryOp) *evalStack {
	return &evalStack{
		andOp: andOp,
		Stack: stack.New(),
	}
}

func (s *evalStack) pushBinaryOp(token string, b *binaryOp) {
	// Invariant: s.Peek() returns a predicate
	if s.mostRecentOp != nil {
		if b.precedence <= s.mostRecentOp.precedence {
			s.collapse(b.precedence)
		}
	}
	s.mostRecentOp = b
	s.mostRecentOpToken = token
	s.Push(b)
}

func (s *evalStack) pushPredicate(p predicate.Predicate[string]) {
	if _, ok := s.Peek().(predicate.Predicate[string]); ok {
		// We have p1 p2, where p1 == s.Peek() and p2 == p. Since p1 p2 is
		// semantically p1 -a p2, push andOp before pushing p2.
		s.pushBinaryOp(s.andOp.tokens[0], s.andOp)
	}
	s.Push(p)
}

// collapse evaluates the topmost run of operators whose precedence is at
// least prec. An operator below that run binds more loosely than the
// operator about to be pushed, so it must keep waiting for its right
// operand.
func (s *evalStack) collapse(prec int) {
	// Invariant: s's layout is something like "p (<op> p)*"
	for s.Len() > 1 {
		p2 := s.Pop().(predicate.Predicate[string])
		op := s.Pop().(*binaryOp)
		if op.precedence < prec {
			s.Push(op)
			s.Push(p2)
			return
		}
		p1 := s.Pop().(predicate.Predicate[string])
		s.Push(op.combine(p1, p2))
	}
}

func (s *evalStack) evaluate() {
	s.collapse(0)
}
