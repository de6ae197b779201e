package primary

import (
	"fmt"
	"strconv"

	"github.com/sift-tools/sift/predicate"
	"github.com/sift-tools/sift/predicate/strp"
)

// Empty is the -empty primary
//
// emptyPrimary => -empty
var Empty = Parser.add(&primary{
	tokens:      []string{"-empty"},
	description: "Returns true if the line is empty",
	parseFunc: func(tokens []string) (predicate.Predicate[string], []string, error) {
		return strp.IsEmpty(), tokens, nil
	},
})

// Prefix is the -prefix primary
//
// prefixPrimary => -prefix pattern
var Prefix = Parser.add(&primary{
	tokens:      []string{"-prefix"},
	args:        "pattern",
	description: "Returns true if the line starts with pattern",
	parseFunc: func(tokens []string) (predicate.Predicate[string], []string, error) {
		if len(tokens) == 0 {
			return nil, nil, fmt.Errorf("requires additional arguments")
		}
		return strp.StartsWith(tokens[0]), tokens[1:], nil
	},
})

// Suffix is the -suffix primary
//
// suffixPrimary => -suffix pattern
var Suffix = Parser.add(&primary{
	tokens:      []string{"-suffix"},
	args:        "pattern",
	description: "Returns true if the line ends with pattern",
	parseFunc: func(tokens []string) (predicate.Predicate[string], []string, error) {
		if len(tokens) == 0 {
			return nil, nil, fmt.Errorf("requires additional arguments")
		}
		return strp.EndsWith(tokens[0]), tokens[1:], nil
	},
})

// Contains is the -contains primary
//
// containsPrimary => -contains pattern
var Contains = Parser.add(&primary{
	tokens:      []string{"-contains"},
	args:        "pattern",
	description: "Returns true if the line contains pattern",
	parseFunc: func(tokens []string) (predicate.Predicate[string], []string, error) {
		if len(tokens) == 0 {
			return nil, nil, fmt.Errorf("requires additional arguments")
		}
		return strp.Contains(tokens[0]), tokens[1:], nil
	},
})

// Count is the -count primary
//
// countPrimary => -count pattern n
var Count = Parser.add(&primary{
	tokens:      []string{"-count"},
	args:        "pattern n",
	description: "Returns true if the line contains exactly n non-overlapping occurrences of pattern",
	parseFunc: func(tokens []string) (predicate.Predicate[string], []string, error) {
		if len(tokens) < 2 {
			return nil, nil, fmt.Errorf("requires additional arguments")
		}
		n, err := strconv.Atoi(tokens[1])
		if err != nil || n < 0 {
			return nil, nil, fmt.Errorf("%v is not a valid count", tokens[1])
		}
		return strp.Contains(tokens[0]).Count(n), tokens[2:], nil
	},
})

// TruePrimary is the -true primary
//
// truePrimary => -true
var TruePrimary = Parser.add(&primary{
	tokens:      []string{"-true"},
	description: "Returns true for every line",
	parseFunc: func(tokens []string) (predicate.Predicate[string], []string, error) {
		return predicate.True[string](), tokens, nil
	},
})

// FalsePrimary is the -false primary
//
// falsePrimary => -false
var FalsePrimary = Parser.add(&primary{
	tokens:      []string{"-false"},
	description: "Returns false for every line",
	parseFunc: func(tokens []string) (predicate.Predicate[string], []string, error) {
		return predicate.False[string](), tokens, nil
	},
})
