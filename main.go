package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/launchdarkly/bdd-examples/examplesuite"
	"github.com/launchdarkly/bdd-examples/framework"

	"github.com/fatih/color"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, out, errOut io.Writer) int {
	var params commandParams
	if !params.Read(args, errOut) {
		return 2
	}
	if params.noColor {
		color.NoColor = true
	}

	var mainDebugLogger framework.Logger = framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(out, "", log.LstdFlags)
	}

	params.filters.Describe(out)

	suite := examplesuite.NewSuite()
	defer suite.Close()

	mainDebugLogger.Printf("Running example suite")

	testLogger := &ConsoleTestLogger{
		Out:                  out,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := suite.Run(params.filters.AsFilter, testLogger)

	fmt.Fprintln(out)
	framework.PrintResults(out, results)
	if !results.OK() {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "To run only the failed examples:")
		fmt.Fprintf(out, "  %s\n", rerunCommand(args[0], results.Failures))
		return 1
	}
	return 0
}
