package parser

import (
	"testing"

	"github.com/sift-tools/sift/cmd/internal/filter/parser/errz"
	"github.com/sift-tools/sift/cmd/internal/filter/parser/parsertest"
	"github.com/sift-tools/sift/cmd/internal/filter/primary"
	"github.com/stretchr/testify/suite"
)

type ExpressionTestSuite struct {
	parsertest.Suite
}

func (s *ExpressionTestSuite) SetupTest() {
	s.Parser = NewExpressionParser(primary.Parser)
}

func (s *ExpressionTestSuite) TestAtoms() {
	s.RunTestCases(
		s.NPTC("-empty", "", ""),
		s.NPNTC("-empty", "", "a"),
		s.NPTC("-prefix foo", "", "foobar"),
		s.NPTC("( -empty )", "", ""),
		s.NPTC("! -empty", "", "a"),
		s.NPNTC("! -empty", "", ""),
		s.NPTC("-not -empty", "", "a"),
		s.NPTC("! ! -empty", "", ""),
	)
}

func (s *ExpressionTestSuite) TestBinaryOps() {
	s.RunTestCases(
		// Juxtaposition is -a
		s.NPTC("-prefix foo -suffix bar", "", "foobar", "foo bar"),
		s.NPNTC("-prefix foo -suffix bar", "", "foo", "barfoo"),
		s.NPTC("-prefix foo -a -suffix bar", "", "foobar"),
		s.NPTC("-prefix foo -and -suffix bar", "", "foobar"),
		s.NPTC("-prefix foo -o -prefix bar", "", "foo1", "bar1"),
		s.NPNTC("-prefix foo -o -prefix bar", "", "qux"),
		s.NPTC("-prefix foo -or -prefix bar", "", "foo1"),
	)
}

func (s *ExpressionTestSuite) TestPrecedence() {
	s.RunTestCases(
		// -a binds tighter than -o: a || (b && c)
		s.NPTC("-prefix a -o -prefix b -suffix c", "", "apple", "bc", "b-c"),
		s.NPNTC("-prefix a -o -prefix b -suffix c", "", "b", "cb"),
		// ! binds tighter than -a: (!empty) && prefix
		s.NPTC("! -empty -prefix a", "", "a1"),
		s.NPNTC("! -empty -prefix a", "", "", "b1"),
		// Parens override: (a || b) && suffix z
		s.NPTC("( -prefix a -o -prefix b ) -suffix z", "", "az", "bz"),
		s.NPNTC("( -prefix a -o -prefix b ) -suffix z", "", "a", "cz"),
		// An -a chain after -o stays on the right of the -o:
		// a || (b && c && d)
		s.NPTC("-true -o -true -a -true -a -false", "", "anything"),
		s.NPNTC("-false -o -true -a -true -a -false", "", "anything"),
		s.NPTC("-prefix a -o -prefix b -a -contains c -a -suffix d", "", "apple", "bacod"),
		s.NPNTC("-prefix a -o -prefix b -a -contains c -a -suffix d", "", "bod", "cod"),
	)
}

func (s *ExpressionTestSuite) TestErrors() {
	s.RunTestCases(
		s.NPETC("", "empty expression", true),
		s.NPETC(")", `\): no beginning '\('`, false),
		s.NPETC("( -empty", `\(: missing closing '\)'`, false),
		s.NPETC("( )", `\(\): empty inner expression`, false),
		s.NPETC("-empty -a", `-a: no expression after -a`, false),
		s.NPETC("-a -empty", `-a: no expression before -a`, false),
		s.NPETC("-empty -a -o -empty", `-a: no expression after -a`, false),
		s.NPETC("!", `!: no following expression`, false),
		s.NPETC("! -a", `!: no following expression`, false),
		s.NPETC("-badprimary", `-badprimary: unknown primary or operator`, false),
		s.NPETC("-empty )", `\): no beginning '\('`, false),
	)
}

func (s *ExpressionTestSuite) TestErrorsAreSyntaxErrors() {
	inputs := []string{
		")",
		"( -empty",
		"( )",
		"-empty -a",
		"-a -empty",
		"!",
		"-badprimary",
		"-count foo bar",
	}
	for _, input := range inputs {
		_, _, err := s.Parser.Parse(s.ToTks(input))
		if s.Error(err, "Input: %v", input) {
			s.True(errz.IsSyntaxError(err), "Input: %v, Error: %v", input, err)
		}
	}
}

func (s *ExpressionTestSuite) TestParsedDescriptions() {
	p, _, err := s.Parser.Parse(s.ToTks("-prefix foo -a ! -suffix bar"))
	if s.NoError(err) {
		s.Equal(`(var.starts_with("foo") && (!var.ends_with("bar")))`, p.String())
	}
	p, _, err = s.Parser.Parse(s.ToTks("-true -o -true -a -true -a -false"))
	if s.NoError(err) {
		s.Equal(`(true || ((true && true) && false))`, p.String())
	}
}

func TestExpression(t *testing.T) {
	suite.Run(t, new(ExpressionTestSuite))
}
