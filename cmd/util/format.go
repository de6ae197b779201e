// Package cmdutil provides utilities for formatting CLI output.
package cmdutil

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Stdout represents Stdout. Tests swap it for a buffer.
var Stdout io.Writer = os.Stdout

// Stderr represents Stderr
var Stderr io.Writer = os.Stderr

// ColoredStderr represents a color supporting writer for Stderr
var ColoredStderr io.Writer = color.Error

// ErrPrintf formats and prints the provided format string and args on stderr
// and colors the output red.
func ErrPrintf(msg string, a ...interface{}) {
	_, err := fmt.Fprintf(ColoredStderr, color.RedString(msg), a...)
	if err != nil {
		panic(err)
	}
}

// Printf is a wrapper to fmt.Printf that prints to cmdutil.Stdout
func Printf(msg string, a ...interface{}) {
	_, err := fmt.Fprintf(Stdout, msg, a...)
	if err != nil {
		panic(err)
	}
}

// Println is a wrapper to fmt.Println that prints to cmdutil.Stdout
func Println(a ...interface{}) {
	_, err := fmt.Fprintln(Stdout, a...)
	if err != nil {
		panic(err)
	}
}
