package parser

import (
	"strings"

	"github.com/sift-tools/sift/cmd/internal/filter/parser/errz"
	"github.com/sift-tools/sift/cmd/internal/filter/primary"
	"github.com/sift-tools/sift/predicate"
)

// Result represents the result of parsing sift's arguments.
type Result struct {
	Paths     []string
	Options   Options
	Predicate predicate.Predicate[string]
}

// Options represents sift's tool options. They appear after the input
// paths and before the expression.
type Options struct {
	// Trim strips leading/trailing whitespace from each line before the
	// expression sees it
	Trim bool
	// Invert negates the whole expression
	Invert bool
	// Describe prints the expression's description instead of filtering
	Describe bool
}

// Parse parses sift's arguments, which are specified as
//
//	[file...] [options] [expression]
//
// An empty expression matches every line.
func Parse(args []string) (Result, error) {
	var result Result
	result.Paths, args = splitPaths(args)
	args = parseOptions(&result.Options, args)
	if len(args) == 0 {
		result.Predicate = predicate.True[string]()
		return result, nil
	}
	p, _, err := NewExpressionParser(primary.Parser).Parse(args)
	if err != nil {
		if errz.IsMatchError(err) {
			// The expression parser returns a MatchError only for an empty
			// expression, and args is non-empty here.
			panic("parser.Parse: the expression parser returned a match error for a non-empty expression")
		}
		return result, err
	}
	result.Predicate = p
	return result, nil
}

// splitPaths splits args into the leading input paths and the remaining
// tokens. A token starts the options/expression part if it begins with a
// '-' or is an expression operator.
func splitPaths(args []string) ([]string, []string) {
	var paths []string
	for len(args) > 0 {
		token := args[0]
		if strings.HasPrefix(token, "-") || token == "(" || token == ")" || token == "!" {
			break
		}
		paths = append(paths, token)
		args = args[1:]
	}
	return paths, args
}

func parseOptions(opts *Options, args []string) []string {
	for len(args) > 0 {
		switch args[0] {
		case "-trim":
			opts.Trim = true
		case "-invert":
			opts.Invert = true
		case "-describe":
			opts.Describe = true
		default:
			return args
		}
		args = args[1:]
	}
	return args
}
