package main

import (
	"bytes"
	"testing"

	"github.com/launchdarkly/bdd-examples/framework"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestRunWholeSuite(t *testing.T) {
	var out, errOut bytes.Buffer
	status := run([]string{"examples", "-no-color"}, &out, &errOut)
	assert.Equal(t, 0, status, out.String())
	assert.Contains(t, out.String(), "[MyClass]\n")
	assert.Contains(t, out.String(), "  PASSED: maps/lacks a key\n")
	assert.Contains(t, out.String(), "  PENDING: pending/handles leap years (not implemented yet)\n")
	assert.Contains(t, out.String(), "0 failed, 2 pending")
	assert.Equal(t, "", errOut.String())
}

func TestRunWithFilter(t *testing.T) {
	var out, errOut bytes.Buffer
	status := run([]string{"examples", "-run", "^numbers/", "-skip", "range"}, &out, &errOut)
	assert.Equal(t, 0, status)
	assert.Contains(t, out.String(), `skip any not matching "^numbers/"`)
	assert.Contains(t, out.String(), "  PASSED: numbers/is at least a minimum\n")
	assert.Contains(t, out.String(), "  SKIPPED: numbers/is within an inclusive range (excluded by filter parameters)\n")
	assert.Contains(t, out.String(), "2 examples: 2 passed, 0 failed, 0 pending")
}

func TestRunWithBadParameters(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, 2, run([]string{"examples", "-run", "("}, &out, &errOut))
	assert.Contains(t, errOut.String(), "invalid regex")

	errOut.Reset()
	assert.Equal(t, 2, run([]string{"examples", "extra"}, &out, &errOut))
	assert.Contains(t, errOut.String(), "unexpected arguments: extra")
}

func TestRerunCommand(t *testing.T) {
	failures := []framework.TestResult{
		{TestID: framework.TestID{Path: []string{"maps", "has a key-value pair"}}},
		{TestID: framework.TestID{Path: []string{"numbers", "is greater than a bound"}}},
	}
	assert.Equal(t,
		`./examples -run '^maps/has a key-value pair$' -run '^numbers/is greater than a bound$'`,
		rerunCommand("./examples", failures))
}

func TestConsoleTestLoggerDebugOutput(t *testing.T) {
	var out bytes.Buffer
	logger := &ConsoleTestLogger{Out: &out, DebugOutputOnFailure: true}
	id := framework.TestID{Path: []string{"group", "example"}}
	var captured framework.CapturingLogger
	captured.Printf("wrote record-1")

	logger.TestFinished(framework.TestResult{TestID: id, Outcome: framework.OutcomeSuccess}, captured.Output())
	assert.Equal(t, "  PASSED: group/example\n", out.String())

	out.Reset()
	logger.TestFinished(framework.TestResult{TestID: id, Outcome: framework.OutcomeFailure}, captured.Output())
	assert.Contains(t, out.String(), "  FAILED: group/example\n")
	assert.Contains(t, out.String(), "    DEBUG [")
	assert.Contains(t, out.String(), "wrote record-1")
}

func TestConsoleTestLoggerTellsPendingFromExcluded(t *testing.T) {
	var out bytes.Buffer
	logger := &ConsoleTestLogger{Out: &out}
	id := framework.TestID{Path: []string{"group", "example"}}

	logger.TestFinished(framework.TestResult{
		TestID:  id,
		Outcome: framework.OutcomePending,
		Reason:  "excluded by filter parameters",
	}, nil)
	assert.Equal(t, "  PENDING: group/example (excluded by filter parameters)\n", out.String())

	out.Reset()
	logger.TestExcluded(id)
	assert.Equal(t, "  SKIPPED: group/example (excluded by filter parameters)\n", out.String())
}
