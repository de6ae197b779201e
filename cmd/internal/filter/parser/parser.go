// Package parser parses sift's arguments: input paths, tool options and the
// predicate expression.
package parser

import (
	"github.com/sift-tools/sift/cmd/internal/filter/parser/errz"
	"github.com/sift-tools/sift/predicate"
)

// Parser represents a parser that parses a string predicate from a list
// of tokens.
type Parser interface {
	Parse(tokens []string) (predicate.Predicate[string], []string, error)
}

// CompositeParser represents a parser composed of multiple predicate
// parsers. It loops through each of its parsers, returning the result of
// the first parser that matches the input. If no parser matches the input,
// then Parse returns a MatchError containing MatchErrMsg.
type CompositeParser struct {
	MatchErrMsg string
	Parsers     []Parser
}

// Parse implements the Parser interface for a CompositeParser.
func (cp CompositeParser) Parse(tokens []string) (predicate.Predicate[string], []string, error) {
	for _, parser := range cp.Parsers {
		p, tokens, err := parser.Parse(tokens)
		if errz.IsMatchError(err) {
			continue
		}
		return p, tokens, err
	}
	return nil, nil, errz.NewMatchError(cp.MatchErrMsg)
}

// ToParser converts the given parse function to a Parser object
func ToParser(parseFunc func(tokens []string) (predicate.Predicate[string], []string, error)) Parser {
	return predicateParser(parseFunc)
}

type predicateParser func(tokens []string) (predicate.Predicate[string], []string, error)

func (p predicateParser) Parse(tokens []string) (predicate.Predicate[string], []string, error) {
	return p(tokens)
}
