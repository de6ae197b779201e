package primary

import (
	"fmt"
	"regexp"

	"github.com/gobwas/glob"
	"github.com/sift-tools/sift/predicate"
	"github.com/sift-tools/sift/predicate/strp"
)

// Glob is the -glob primary
//
// globPrimary => -glob ShellPattern
var Glob = Parser.add(&primary{
	tokens:      []string{"-glob"},
	args:        "pattern",
	description: "Returns true if the line matches the shell pattern",
	parseFunc: func(tokens []string) (predicate.Predicate[string], []string, error) {
		if len(tokens) == 0 {
			return nil, nil, fmt.Errorf("requires additional arguments")
		}
		g, err := glob.Compile(tokens[0])
		if err != nil {
			return nil, nil, fmt.Errorf("invalid pattern: %v", err)
		}
		return strp.MatchGlob(g, tokens[0]), tokens[1:], nil
	},
})

// Regex is the -regex primary
//
// regexPrimary => -regex Regex
var Regex = Parser.add(&primary{
	tokens:      []string{"-regex"},
	args:        "pattern",
	description: "Returns true if the line matches the regular expression",
	parseFunc: func(tokens []string) (predicate.Predicate[string], []string, error) {
		if len(tokens) == 0 {
			return nil, nil, fmt.Errorf("requires additional arguments")
		}
		r, err := regexp.Compile(tokens[0])
		if err != nil {
			return nil, nil, fmt.Errorf("invalid regex: %v", err)
		}
		return strp.Match(r), tokens[1:], nil
	},
})
