// Package parsertest provides a shared test suite for sift's predicate
// parsers.
package parsertest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sift-tools/sift/cmd/internal/filter/parser/errz"
	"github.com/sift-tools/sift/predicate"
	"github.com/stretchr/testify/suite"
)

// Parser matches parser.Parser. It's declared here structurally so that the
// parser packages and their shared test suite don't import each other.
type Parser interface {
	Parse(tokens []string) (predicate.Predicate[string], []string, error)
}

// Suite represents a type that tests predicate parsers
type Suite struct {
	suite.Suite
	Parser Parser
}

// Case represents a parser test case
type Case struct {
	Input        string
	RemInput     string
	True         []string
	False        []string
	ErrRegex     *regexp.Regexp
	IsMatchError bool
}

// NPTC => NewParserTestCase. Saves some typing
func (suite *Suite) NPTC(input string, remInput string, trueValues ...string) Case {
	return Case{
		Input:    input,
		RemInput: remInput,
		True:     trueValues,
	}
}

// NPNTC => NewParserNegativeTestCase
func (suite *Suite) NPNTC(input string, remInput string, falseValues ...string) Case {
	return Case{
		Input:    input,
		RemInput: remInput,
		False:    falseValues,
	}
}

// NPETC => NewParserErrorTestCase
func (suite *Suite) NPETC(input string, errRegex string, isMatchError bool) Case {
	return Case{
		Input:        input,
		ErrRegex:     regexp.MustCompile(errRegex),
		IsMatchError: isMatchError,
	}
}

// ToTks => ToTokens. Saves some typing
func (suite *Suite) ToTks(s string) []string {
	var tokens = []string{}
	if s != "" {
		tokens = strings.Split(s, " ")
	}
	return tokens
}

// RunTestCases runs the given test cases.
func (suite *Suite) RunTestCases(cases ...Case) {
	var input string
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Panicked on input: %v\n", input)
			panic(r)
		}
	}()
	for _, c := range cases {
		input = c.Input
		p, tokens, err := suite.Parser.Parse(suite.ToTks(input))
		if c.ErrRegex != nil {
			if c.IsMatchError {
				suite.True(errz.IsMatchError(err), "Input %v: expected an errz.MatchError", input)
			} else {
				suite.False(errz.IsMatchError(err), "Input %v: received an unexpected errz.MatchError", input)
			}
			suite.Regexp(c.ErrRegex, err, "Input: %v", input)
			continue
		}
		if suite.NoError(err, "Input: %v", input) {
			suite.Equal(suite.ToTks(c.RemInput), tokens, "Input: %v", input)
			for _, v := range c.True {
				suite.True(p.Eval(v), "Input: %v, Value: %q", input, v)
			}
			for _, v := range c.False {
				suite.False(p.Eval(v), "Input: %v, Value: %q", input, v)
			}
		}
	}
}
