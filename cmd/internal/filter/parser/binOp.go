package parser

import "github.com/sift-tools/sift/predicate"

// binaryOp represents a binary operator in a predicate expression
type binaryOp struct {
	tokens     []string
	precedence int
	combine    func(a, b predicate.Predicate[string]) predicate.Predicate[string]
}

var andOp = &binaryOp{
	tokens:     []string{"-a", "-and"},
	precedence: 1,
	combine:    predicate.And[string],
}

var orOp = &binaryOp{
	tokens:     []string{"-o", "-or"},
	precedence: 0,
	combine:    predicate.Or[string],
}
