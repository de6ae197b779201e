// Package cmd implements sift's CLI using https://github.com/spf13/cobra.
package cmd

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sift-tools/sift/cmd/internal/filter"
	"github.com/sift-tools/sift/cmd/internal/filter/primary"
	cmdutil "github.com/sift-tools/sift/cmd/util"
	"github.com/sift-tools/sift/config"
)

// cobra.Command.Execute() can only return error objects. Thus, the only way
// for the command to choose its own exit code is to wrap that value in an
// error object.
type exitCode struct {
	value int
}

// Required to implement the error interface
func (e exitCode) Error() string {
	return ""
}

func rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sift [flags] [file...] [options] [expression]",
		Short: "Filters lines of input with a predicate expression",
		Long:  usage(),
		RunE:  rootMain,
		// Need to set these so that Cobra will not output the usage + error
		// object when Execute() returns an error, which will always happen
		// in our case because the exitCode object is technically an error.
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	// Turn off Cobra's flag parsing so that it does not interpret primaries
	// like -contains as single-dash flags. Note that this means we have to
	// handle --loglevel and the help flags ourselves.
	rootCmd.DisableFlagParsing = true
	rootCmd.Flags().String("loglevel", "warn", "Set the logging level")
	return rootCmd
}

func rootMain(cmd *cobra.Command, args []string) error {
	levelStr := config.LogLevel
ArgLoop:
	for len(args) > 0 {
		switch {
		case args[0] == "-h" || args[0] == "--help":
			if err := cmd.Help(); err != nil {
				panic(err.Error())
			}
			return exitCode{0}
		case args[0] == "--loglevel":
			if len(args) < 2 {
				cmdutil.ErrPrintf("sift: --loglevel requires a value\n")
				return exitCode{filter.ExitError}
			}
			levelStr = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--loglevel="):
			levelStr = strings.TrimPrefix(args[0], "--loglevel=")
			args = args[1:]
		default:
			break ArgLoop
		}
	}
	level, err := cmdutil.ParseLevel(levelStr)
	if err != nil {
		cmdutil.ErrPrintf("sift: %v\n", err)
		return exitCode{filter.ExitError}
	}
	log.SetLevel(level)
	log.SetOutput(cmdutil.Stderr)
	return exitCode{filter.Main(args)}
}

func usage() string {
	return fmt.Sprintf(`Reads the given files (stdin when none are given) and prints every line
matching the predicate expression. An empty expression matches every line.
Lines that are not valid UTF-8 never match.

Expressions are built from primaries combined with ! / -not, -a / -and,
-o / -or and parentheses, where juxtaposition means -a. Options appear
before the expression: -trim strips surrounding whitespace from each line
before matching, -invert negates the whole expression, and -describe prints
the expression's description instead of filtering.

Primaries:
%v`, primary.Parser.Usage())
}

// Execute executes the root command, returning the exit code
func Execute() int {
	if err := config.Load(); err != nil {
		cmdutil.ErrPrintf("Failed to load sift's config: %v\n", err)
		return filter.ExitError
	}

	err := rootCommand().Execute()
	if err == nil {
		// This can happen if the user invokes a help command.
		return 0
	}

	ec, ok := err.(exitCode)
	if !ok {
		// err is something Cobra-related, like e.g. a malformed flag.
		// Print the error, then return.
		cmdutil.ErrPrintf("Error: %v\n", err)
		return filter.ExitError
	}

	return ec.value
}
