package parser

import (
	"fmt"

	"github.com/sift-tools/sift/cmd/internal/filter/parser/errz"
	"github.com/sift-tools/sift/predicate"
)

/*
expressionParser parses predicate expressions. Expressions have the
following grammar:
  Expression => Expression (-a|-and) Atom |
                Expression Atom           |
                Expression (-o|-or)  Atom |
                Atom

  Atom       => (!|-not) Atom             |
                '(' Expression ')'        |
                Primary

where 'Expression Atom' is semantically equivalent to 'Expression -a Atom'.

Operator precedence is (from highest to lowest):
  ()
  !
  -a
  -o

The precedence of the () and ! operators is already enforced by the grammar.
Precedence of the binary operators -a and -o is enforced by maintaining an
evaluation stack.
*/
type expressionParser struct {
	binaryOps     map[string]*binaryOp
	atom          *CompositeParser
	stk           *evalStack
	numOpenParens int
}

// NewExpressionParser returns a parser for predicate expressions whose
// primaries are parsed by primaryParser.
func NewExpressionParser(primaryParser Parser) Parser {
	p := &expressionParser{}
	p.binaryOps = make(map[string]*binaryOp)
	for _, op := range []*binaryOp{andOp, orOp} {
		for _, token := range op.tokens {
			p.binaryOps[token] = op
		}
	}
	p.atom = &CompositeParser{
		MatchErrMsg: "expected an atom",
		Parsers: []Parser{
			notOpParser(p),
			parenthesize(p),
			primaryParser,
		},
	}
	return p
}

func (parser *expressionParser) insideParens() bool {
	return parser.numOpenParens > 0
}

/*
Parse parses a predicate expression captured by the given tokens. It
processes tokens until it either exhausts the input, finishes a
parenthesized expression, or finds a syntax error. An expression with no
tokens returns a MatchError so that callers can decide what an empty
expression means (sift's top-level parser treats it as match-everything).
*/
func (parser *expressionParser) Parse(tokens []string) (predicate.Predicate[string], []string, error) {
	// Each (sub)expression gets a fresh evaluation stack. parenthesize
	// saves and restores the enclosing expression's stack.
	parser.stk = newEvalStack(andOp)
	for len(tokens) > 0 {
		token := tokens[0]
		if token == ")" {
			if !parser.insideParens() {
				return nil, nil, errz.NewSyntaxError("): no beginning '('")
			}
			// We've finished parsing a parenthesized expression
			break
		}
		// Try parsing an atom first.
		p, tks, err := parser.atom.Parse(tokens)
		if err == nil {
			parser.stk.pushPredicate(p)
			tokens = tks
			continue
		}
		if !errz.IsMatchError(err) {
			return nil, nil, err
		}
		// Parsing an atom didn't work, so try parsing a binary op
		b, ok := parser.binaryOps[token]
		if !ok {
			return nil, nil, errz.UnknownTokenError{
				Token: token,
				Msg:   fmt.Sprintf("%v: unknown primary or operator", token),
			}
		}
		tokens = tokens[1:]
		if parser.stk.mostRecentOp == nil {
			if _, ok := parser.stk.Peek().(predicate.Predicate[string]); !ok {
				return nil, nil, errz.NewSyntaxError("%v: no expression before %v", token, token)
			}
			parser.stk.pushBinaryOp(token, b)
			continue
		}
		if _, ok := parser.stk.Peek().(*binaryOp); ok {
			// mostRecentOp's on the stack and the parser's asking us to push
			// b, so mostRecentOp did not have an expression after it.
			return nil, nil, errz.NewSyntaxError(
				"%v: no expression after %v",
				parser.stk.mostRecentOpToken,
				parser.stk.mostRecentOpToken,
			)
		}
		parser.stk.pushBinaryOp(token, b)
	}
	// Parsing's finished.
	if parser.stk.Len() <= 0 {
		return nil, tokens, errz.NewMatchError("empty expression")
	}
	if _, ok := parser.stk.Peek().(*binaryOp); ok {
		// This codepath is possible via something like "p1 -a"
		return nil, nil, errz.NewSyntaxError(
			"%v: no expression after %v",
			parser.stk.mostRecentOpToken,
			parser.stk.mostRecentOpToken,
		)
	}
	// Call evaluate() to handle cases like "p1 -a p2"
	parser.stk.evaluate()
	return parser.stk.Pop().(predicate.Predicate[string]), tokens, nil
}

func notOpParser(parser *expressionParser) Parser {
	return ToParser(func(tokens []string) (predicate.Predicate[string], []string, error) {
		notToken := tokens[0]
		if notToken != "!" && notToken != "-not" {
			return nil, nil, errz.NewMatchError("expected ! or -not")
		}
		tokens = tokens[1:]
		if len(tokens) == 0 {
			return nil, nil, errz.NewSyntaxError("%v: no following expression", notToken)
		}
		if tokens[0] == ")" {
			if !parser.insideParens() {
				return nil, nil, errz.NewSyntaxError("): no beginning '('")
			}
			return nil, nil, errz.NewSyntaxError("%v: no following expression", notToken)
		}
		p, tokens, err := parser.atom.Parse(tokens)
		if err != nil {
			if errz.IsMatchError(err) {
				err = errz.NewSyntaxError("%v: no following expression", notToken)
			}
			return nil, nil, err
		}
		return predicate.Not(p), tokens, nil
	})
}

// parenthesize returns a parser that only parses parenthesized expressions.
// The expressions themselves are parsed by the given parser. Note that the
// returned parser mutates the passed-in parser's state.
func parenthesize(parser *expressionParser) Parser {
	return ToParser(func(tokens []string) (predicate.Predicate[string], []string, error) {
		if len(tokens) == 0 {
			return nil, nil, errz.NewMatchError("expected an '('")
		}
		if tokens[0] == ")" {
			return nil, nil, errz.NewSyntaxError("): no beginning '('")
		}
		if tokens[0] != "(" {
			return nil, nil, errz.NewMatchError("expected an '('")
		}
		tokens = tokens[1:]
		parser.numOpenParens++
		// Save the current evaluation stack. We will restore it after
		// parsing the parenthesized expression.
		stk := parser.stk
		defer func() {
			parser.stk = stk
			parser.numOpenParens--
		}()
		p, tokens, err := parser.Parse(tokens)
		emptyExpression := errz.IsMatchError(err)
		if err != nil && !emptyExpression {
			return p, tokens, err
		}
		if len(tokens) == 0 || tokens[0] != ")" {
			return nil, nil, errz.NewSyntaxError("(: missing closing ')'")
		}
		if emptyExpression {
			return nil, nil, errz.NewSyntaxError("(): empty inner expression")
		}
		return p, tokens[1:], nil
	})
}
