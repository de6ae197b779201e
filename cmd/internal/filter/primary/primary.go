// Package primary defines the primaries of sift's expression language. Each
// primary parses its arguments into one of the string predicates from
// predicate/strp.
package primary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sift-tools/sift/cmd/internal/filter/parser/errz"
	"github.com/sift-tools/sift/predicate"
)

// Parser parses sift primaries.
var Parser = &parser{
	primaries: make(map[string]*primary),
}

type parser struct {
	primaries map[string]*primary
}

// IsPrimary returns true if the token is a sift primary
func (parser *parser) IsPrimary(token string) bool {
	_, ok := parser.primaries[token]
	return ok
}

func (parser *parser) Parse(tokens []string) (predicate.Predicate[string], []string, error) {
	if len(tokens) == 0 {
		return nil, nil, errz.NewMatchError("expected a primary")
	}
	token := tokens[0]
	primary, ok := parser.primaries[token]
	if !ok {
		msg := fmt.Sprintf("%v: unknown primary", token)
		return nil, nil, errz.NewMatchError(msg)
	}
	p, tokens, err := primary.parseFunc(tokens[1:])
	if err != nil {
		return nil, nil, errz.NewSyntaxError("%v: %v", token, err)
	}
	return p, tokens, nil
}

// Usage returns a description of every primary, one per line. It's used by
// the command's help text.
func (parser *parser) Usage() string {
	seen := make(map[*primary]struct{})
	var ps []*primary
	for _, p := range parser.primaries {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool {
		return ps[i].tokens[0] < ps[j].tokens[0]
	})
	var b strings.Builder
	for _, p := range ps {
		usage := strings.Join(p.tokens, ", ")
		if p.args != "" {
			usage += " " + p.args
		}
		fmt.Fprintf(&b, "  %-24v %v\n", usage, p.description)
	}
	return b.String()
}

func (parser *parser) add(p *primary) *primary {
	for _, token := range p.tokens {
		parser.primaries[token] = p
	}
	return p
}

// primary represents a sift primary.
type primary struct {
	tokens      []string
	args        string
	description string
	parseFunc   func(tokens []string) (predicate.Predicate[string], []string, error)
}
