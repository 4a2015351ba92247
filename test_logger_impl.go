package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/launchdarkly/bdd-examples/framework"

	"github.com/fatih/color"
)

var (
	failedLabel  = color.New(color.FgRed, color.Bold).SprintFunc()
	passedLabel  = color.New(color.FgGreen).SprintFunc()
	skippedLabel = color.New(color.FgYellow).SprintFunc()
)

type ConsoleTestLogger struct {
	Out                  io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	if len(id.Path) == 1 {
		fmt.Fprintf(c.Out, "[%s]\n", id)
	}
}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(c.Out, "    %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(result framework.TestResult, debugOutput framework.CapturedOutput) {
	id := result.TestID
	failed := result.Outcome == framework.OutcomeFailure
	switch {
	case failed:
		fmt.Fprintf(c.Out, "  %s: %s\n", failedLabel("FAILED"), id)
	case result.Outcome == framework.OutcomePending:
		fmt.Fprintf(c.Out, "  %s: %s (%s)\n", skippedLabel("PENDING"), id, result.Reason)
	case len(id.Path) > 1:
		fmt.Fprintf(c.Out, "  %s: %s\n", passedLabel("PASSED"), id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.Out, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestExcluded(id framework.TestID) {
	fmt.Fprintf(c.Out, "  %s: %s (excluded by filter parameters)\n", skippedLabel("SKIPPED"), id)
}
