package strp

import (
	"strings"
	"unicode/utf8"

	"github.com/sift-tools/sift/predicate"
)

// Trim returns a predicate that strips leading and trailing whitespace (per
// unicode.IsSpace) before delegating to p. The inner predicate never
// observes untrimmed input. The description delegates to p.
func Trim(p predicate.Predicate[string]) predicate.Predicate[string] {
	return &trim{
		p: p,
	}
}

type trim struct {
	p predicate.Predicate[string]
}

func (t *trim) Eval(s string) bool {
	return t.p.Eval(strings.TrimSpace(s))
}

func (t *trim) String() string {
	return t.p.String()
}

var _ = predicate.Predicate[string](&trim{})

// FromUTF8 adapts a string predicate to raw byte input. Input that is valid
// UTF-8 is delegated to p; input that is not evaluates to false. No error is
// ever reported, so "not valid text" behaves as "does not match".
func FromUTF8(p predicate.Predicate[string]) predicate.Predicate[[]byte] {
	return &fromUTF8{
		p: p,
	}
}

type fromUTF8 struct {
	p predicate.Predicate[string]
}

func (f *fromUTF8) Eval(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	return f.p.Eval(string(b))
}

func (f *fromUTF8) String() string {
	return f.p.String()
}

var _ = predicate.Predicate[[]byte](&fromUTF8{})
