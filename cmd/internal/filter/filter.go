// Package filter stores all the logic for the sift command. We make it a
// separate package to decouple it from cmd. This makes testing easier.
package filter

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/sift-tools/sift/cmd/internal/filter/parser"
	"github.com/sift-tools/sift/cmd/internal/filter/parser/errz"
	cmdutil "github.com/sift-tools/sift/cmd/util"
	"github.com/sift-tools/sift/predicate"
	"github.com/sift-tools/sift/predicate/strp"
)

// sift's exit codes follow the grep convention.
const (
	// ExitMatched means at least one line matched
	ExitMatched = 0
	// ExitNoMatch means no line matched
	ExitNoMatch = 1
	// ExitError means the arguments could not be parsed, or the input could
	// not be read
	ExitError = 2
)

// Main is the sift command's main function.
func Main(args []string) int {
	result, err := parser.Parse(args)
	if err != nil {
		cmdutil.ErrPrintf("sift: %v\n", err)
		if errz.IsSyntaxError(err) {
			cmdutil.ErrPrintf("Run 'sift --help' for the expression syntax\n")
		}
		return ExitError
	}
	p := result.Predicate
	if result.Options.Invert {
		p = predicate.Not(p)
	}
	if result.Options.Trim {
		p = strp.Trim(p)
	}
	if result.Options.Describe {
		cmdutil.Println(p.String())
		return ExitMatched
	}
	log.Debugf("filtering with %v", p)

	// Input comes in line by line as raw bytes. Lines that are not valid
	// UTF-8 never match.
	lineP := strp.FromUTF8(p)

	if len(result.Paths) == 0 {
		matched, err := filterLines(os.Stdin, lineP)
		if err != nil {
			cmdutil.ErrPrintf("sift: %v\n", err)
			return ExitError
		}
		if !matched {
			return ExitNoMatch
		}
		return ExitMatched
	}
	matched := false
	for _, path := range result.Paths {
		f, err := os.Open(path)
		if err != nil {
			cmdutil.ErrPrintf("sift: %v\n", err)
			return ExitError
		}
		m, err := filterLines(f, lineP)
		f.Close()
		if err != nil {
			cmdutil.ErrPrintf("sift: %v\n", errors.Wrap(err, path))
			return ExitError
		}
		matched = matched || m
	}
	if !matched {
		return ExitNoMatch
	}
	return ExitMatched
}

func filterLines(r io.Reader, p predicate.Predicate[[]byte]) (bool, error) {
	scanner := bufio.NewScanner(r)
	// Lines can be longer than bufio's default limit
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	matched := false
	for scanner.Scan() {
		line := scanner.Bytes()
		if p.Eval(line) {
			matched = true
			cmdutil.Printf("%s\n", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return matched, errors.Wrap(err, "reading input")
	}
	return matched, nil
}
