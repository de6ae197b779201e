package strp

import (
	"fmt"
	"regexp"

	"github.com/gobwas/glob"
	"github.com/sift-tools/sift/predicate"
)

// These predicates delegate matching to a pre-compiled collaborator. Pattern
// compilation, and any errors it can produce, are the caller's concern;
// construction here cannot fail.

// Match returns a predicate that's true when the regular expression r
// matches the string.
func Match(r *regexp.Regexp) predicate.Predicate[string] {
	return &match{
		r: r,
	}
}

type match struct {
	r *regexp.Regexp
}

func (p *match) Eval(s string) bool {
	return p.r.MatchString(s)
}

func (p *match) String() string {
	return fmt.Sprintf("var.matches(%q)", p.r.String())
}

var _ = predicate.Predicate[string](&match{})

// MatchGlob returns a predicate that's true when g matches the string.
// source is the glob's source text; it is used only for the description
// since glob.Glob does not retain it.
func MatchGlob(g glob.Glob, source string) predicate.Predicate[string] {
	return &matchGlob{
		g:      g,
		source: source,
	}
}

type matchGlob struct {
	g      glob.Glob
	source string
}

func (p *matchGlob) Eval(s string) bool {
	return p.g.Match(s)
}

func (p *matchGlob) String() string {
	return fmt.Sprintf("var.matches_glob(%q)", p.source)
}

var _ = predicate.Predicate[string](&matchGlob{})
