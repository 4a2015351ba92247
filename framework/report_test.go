package framework

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintResults(t *testing.T) {
	failure := TestResult{TestID: makeID("numbers", "range"), Outcome: OutcomeFailure,
		Errors: []error{errors.New("expected 150\nto be between 0 and 100")}}
	pending := TestResult{TestID: makeID("pending", "later"), Outcome: OutcomePending, Reason: "not yet"}
	results := Results{
		Tests: []TestResult{
			{TestID: makeID("numbers", "at least"), Outcome: OutcomeSuccess},
			failure,
			pending,
		},
		Failures: []TestResult{failure},
		Pending:  []TestResult{pending},
	}

	var buf bytes.Buffer
	PrintResults(&buf, results)

	assert.Equal(t, `3 examples: 1 passed, 1 failed, 1 pending

Pending:
  pending/later (not yet)

Failed:
  numbers/range
    expected 150
    to be between 0 and 100
`, buf.String())
}

func TestTestFailureUnwraps(t *testing.T) {
	cause := errors.New("cause")
	err := TestFailure{ID: makeID("a", "b"), Err: cause}
	assert.Equal(t, "[a/b]: cause", err.Error())
	assert.True(t, errors.Is(err, cause))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "success", OutcomeSuccess.String())
	assert.Equal(t, "failure", OutcomeFailure.String())
	assert.Equal(t, "pending", OutcomePending.String())
}

func TestLoggerWithPrefix(t *testing.T) {
	var target CapturingLogger
	LoggerWithPrefix(&target, "[store] ").Printf("wrote %d", 1)
	output := target.Output()
	if assert.Len(t, output, 1) {
		assert.Equal(t, "[store] wrote 1", output[0].Message)
	}

	var buf bytes.Buffer
	output.Dump(&buf, "  DEBUG ")
	assert.Contains(t, buf.String(), "  DEBUG [+0s]")
	assert.Contains(t, buf.String(), "] [store] wrote 1\n")
}
