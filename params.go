package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/launchdarkly/bdd-examples/framework"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	filters  framework.RegexFilters
	debug    bool
	debugAll bool
	noColor  bool
}

func (c *commandParams) Read(args []string, errOut io.Writer) bool {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select examples to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select examples not to run")
	fs.BoolVar(&c.debug, "debug", false, "show debug output for failed examples")
	fs.BoolVar(&c.debugAll, "debug-all", false, "show debug output for all examples")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(errOut, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return false
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand builds a command line that runs only the failed examples.
func rerunCommand(program string, failures []framework.TestResult) string {
	var b commandBuilder
	b.add(program)
	for _, f := range failures {
		b.add("-run", framework.ExactPattern(f.TestID))
	}
	return b.String()
}
