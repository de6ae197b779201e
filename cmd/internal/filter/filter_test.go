package filter

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cmdutil "github.com/sift-tools/sift/cmd/util"
	"github.com/sift-tools/sift/predicate/strp"
	"github.com/stretchr/testify/suite"
)

type FilterTestSuite struct {
	suite.Suite
	stdout     *bytes.Buffer
	stderr     *bytes.Buffer
	origStdout io.Writer
	origStderr io.Writer
}

func (s *FilterTestSuite) SetupTest() {
	s.stdout = &bytes.Buffer{}
	s.origStdout = cmdutil.Stdout
	cmdutil.Stdout = s.stdout
	s.stderr = &bytes.Buffer{}
	s.origStderr = cmdutil.ColoredStderr
	cmdutil.ColoredStderr = s.stderr
}

func (s *FilterTestSuite) TearDownTest() {
	cmdutil.Stdout = s.origStdout
	cmdutil.ColoredStderr = s.origStderr
}

func (s *FilterTestSuite) tempFile(content string) string {
	path := filepath.Join(s.T().TempDir(), "input.txt")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0644))
	return path
}

func (s *FilterTestSuite) TestMatchedLinesArePrinted() {
	path := s.tempFile("foo\nbar\nfoobar\n")
	s.Equal(ExitMatched, Main([]string{path, "-contains", "foo"}))
	s.Equal("foo\nfoobar\n", s.stdout.String())
}

func (s *FilterTestSuite) TestNoMatch() {
	path := s.tempFile("foo\nbar\n")
	s.Equal(ExitNoMatch, Main([]string{path, "-contains", "qux"}))
	s.Empty(s.stdout.String())
}

func (s *FilterTestSuite) TestEmptyExpressionMatchesEveryLine() {
	path := s.tempFile("foo\nbar\n")
	s.Equal(ExitMatched, Main([]string{path}))
	s.Equal("foo\nbar\n", s.stdout.String())
}

func (s *FilterTestSuite) TestInvert() {
	path := s.tempFile("foo\nbar\n")
	s.Equal(ExitMatched, Main([]string{path, "-invert", "-contains", "foo"}))
	s.Equal("bar\n", s.stdout.String())
}

func (s *FilterTestSuite) TestTrim() {
	path := s.tempFile("   \n  x \n")
	s.Equal(ExitMatched, Main([]string{path, "-trim", "-empty"}))
	// The original, untrimmed line is printed
	s.Equal("   \n", s.stdout.String())
}

func (s *FilterTestSuite) TestDescribe() {
	s.Equal(ExitMatched, Main([]string{"-describe", "-contains", "foo", "-a", "!", "-empty"}))
	s.Equal("(var.contains(\"foo\") && (!var.is_empty()))\n", s.stdout.String())
}

func (s *FilterTestSuite) TestInvalidUTF8LinesNeverMatch() {
	path := s.tempFile("ok\n\xff\xfe\n")
	s.Equal(ExitMatched, Main([]string{path, "-true"}))
	s.Equal("ok\n", s.stdout.String())
}

func (s *FilterTestSuite) TestMultipleFiles() {
	p1 := s.tempFile("foo\n")
	p2 := filepath.Join(s.T().TempDir(), "other.txt")
	s.Require().NoError(os.WriteFile(p2, []byte("bar\nfoo2\n"), 0644))
	s.Equal(ExitMatched, Main([]string{p1, p2, "-prefix", "foo"}))
	s.Equal("foo\nfoo2\n", s.stdout.String())
}

func (s *FilterTestSuite) TestParseErrors() {
	s.Equal(ExitError, Main([]string{"-badprimary"}))
	s.Equal(ExitError, Main([]string{"-contains"}))
}

func (s *FilterTestSuite) TestParseErrorsPrintASyntaxHint() {
	s.Equal(ExitError, Main([]string{"-contains"}))
	s.Contains(s.stderr.String(), "-contains: requires additional arguments")
	s.Contains(s.stderr.String(), "Run 'sift --help' for the expression syntax")
}

func (s *FilterTestSuite) TestMissingFile() {
	path := filepath.Join(s.T().TempDir(), "does-not-exist")
	s.Equal(ExitError, Main([]string{path, "-true"}))
	s.NotContains(s.stderr.String(), "Run 'sift --help'")
}

func (s *FilterTestSuite) TestFilterLines() {
	matched, err := filterLines(strings.NewReader("a\nbb\nccc\n"), strp.FromUTF8(strp.Contains("b")))
	if s.NoError(err) {
		s.True(matched)
		s.Equal("bb\n", s.stdout.String())
	}
}

func (s *FilterTestSuite) TestFilterLines_NoTrailingNewline() {
	matched, err := filterLines(strings.NewReader("a\nbb"), strp.FromUTF8(strp.Contains("b")))
	if s.NoError(err) {
		s.True(matched)
		s.Equal("bb\n", s.stdout.String())
	}
}

func TestFilter(t *testing.T) {
	suite.Run(t, new(FilterTestSuite))
}
