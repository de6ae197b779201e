// Package strp provides string predicates and adapters. The leaf predicates
// check byte-for-byte against a fixed pattern; the adapters transform their
// input before delegating to an inner predicate.
package strp

import (
	"fmt"
	"strings"

	"github.com/sift-tools/sift/predicate"
)

// IsEmpty returns a predicate that's true when the string has zero length.
func IsEmpty() predicate.Predicate[string] {
	return isEmpty{}
}

type isEmpty struct{}

func (isEmpty) Eval(s string) bool {
	return len(s) == 0
}

func (isEmpty) String() string {
	return "var.is_empty()"
}

var _ = predicate.Predicate[string](isEmpty{})

// StartsWith returns a predicate that's true when the string begins with
// pattern. Every string starts with the empty pattern.
func StartsWith(pattern string) predicate.Predicate[string] {
	return &startsWith{
		pattern: pattern,
	}
}

type startsWith struct {
	pattern string
}

func (p *startsWith) Eval(s string) bool {
	return strings.HasPrefix(s, p.pattern)
}

func (p *startsWith) String() string {
	return fmt.Sprintf("var.starts_with(%q)", p.pattern)
}

var _ = predicate.Predicate[string](&startsWith{})

// EndsWith returns a predicate that's true when the string ends with
// pattern. Every string ends with the empty pattern.
func EndsWith(pattern string) predicate.Predicate[string] {
	return &endsWith{
		pattern: pattern,
	}
}

type endsWith struct {
	pattern string
}

func (p *endsWith) Eval(s string) bool {
	return strings.HasSuffix(s, p.pattern)
}

func (p *endsWith) String() string {
	return fmt.Sprintf("var.ends_with(%q)", p.pattern)
}

var _ = predicate.Predicate[string](&endsWith{})

// Contains returns a predicate that's true when the string contains pattern
// as a contiguous substring at least once. Chain Count to require an exact
// number of occurrences instead.
func Contains(pattern string) *ContainsPredicate {
	return &ContainsPredicate{
		pattern: pattern,
	}
}

// ContainsPredicate checks that a string contains a fixed pattern.
type ContainsPredicate struct {
	pattern string
}

func (p *ContainsPredicate) Eval(s string) bool {
	return strings.Contains(s, p.pattern)
}

func (p *ContainsPredicate) String() string {
	return fmt.Sprintf("var.contains(%q)", p.pattern)
}

// Count returns a predicate that's true when the string contains exactly n
// non-overlapping occurrences of the pattern, counted left to right with
// matched text consumed before the scan continues (strings.Count semantics).
// Count(0) is true iff the pattern does not occur at all.
func (p *ContainsPredicate) Count(n int) predicate.Predicate[string] {
	return &matchCount{
		pattern: p.pattern,
		count:   n,
	}
}

var _ = predicate.Predicate[string](&ContainsPredicate{})

type matchCount struct {
	pattern string
	count   int
}

func (p *matchCount) Eval(s string) bool {
	return strings.Count(s, p.pattern) == p.count
}

func (p *matchCount) String() string {
	return fmt.Sprintf("var.contains(%q, %d)", p.pattern, p.count)
}

var _ = predicate.Predicate[string](&matchCount{})
