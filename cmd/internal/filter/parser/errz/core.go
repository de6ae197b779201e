// Package errz defines the error taxonomy of sift's expression language.
// Parsers return a MatchError when the input tokens are not theirs to
// parse, and a SyntaxError when the tokens are theirs but malformed.
package errz

import "fmt"

// MatchError represents the case when the input tokens did not
// match a given parser. Composite parsers treat it as "try the next
// parser", so it never reaches the user.
type MatchError struct {
	reason string
}

func (m MatchError) Error() string {
	return m.reason
}

// NewMatchError creates a new MatchError object
func NewMatchError(reason string) MatchError {
	return MatchError{reason}
}

// IsMatchError returns true if err is a MatchError,
// false otherwise.
func IsMatchError(err error) bool {
	_, ok := err.(MatchError)
	return ok
}

// SyntaxError represents a malformed predicate expression, like a dangling
// operator, an unbalanced parenthesis, or a primary with bad arguments.
type SyntaxError struct {
	msg string
}

func (e SyntaxError) Error() string {
	return e.msg
}

// NewSyntaxError creates a new SyntaxError object
func NewSyntaxError(format string, a ...interface{}) SyntaxError {
	return SyntaxError{fmt.Sprintf(format, a...)}
}

// UnknownTokenError represents a token that is neither a primary nor an
// operator of the expression language.
type UnknownTokenError struct {
	Token string
	Msg   string
}

func (e UnknownTokenError) Error() string {
	return e.Msg
}

// IsSyntaxError returns true if err represents a mistake in the expression
// itself. That's either a SyntaxError or an UnknownTokenError; sift prints
// a hint at the expression syntax for these.
func IsSyntaxError(err error) bool {
	switch err.(type) {
	case SyntaxError:
		return true
	case UnknownTokenError:
		return true
	default:
		return false
	}
}
