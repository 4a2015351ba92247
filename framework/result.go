package framework

import (
	"fmt"
	"strings"
)

// Outcome is the final state of a single example.
type Outcome int

const (
	// OutcomeSuccess means the example ran to completion without any recorded errors.
	OutcomeSuccess Outcome = iota
	// OutcomeFailure means an assertion failed or the example panicked.
	OutcomeFailure
	// OutcomePending means the example was explicitly marked as incomplete. It is not a failure.
	OutcomePending
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomePending:
		return "pending"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

type Results struct {
	Tests    []TestResult
	Failures []TestResult
	Pending  []TestResult
}

type TestResult struct {
	TestID  TestID
	Outcome Outcome
	Errors  []error
	Reason  string
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Counts returns the number of successful, failed, and pending examples.
func (r Results) Counts() (passed, failed, pending int) {
	for _, t := range r.Tests {
		switch t.Outcome {
		case OutcomeSuccess:
			passed++
		case OutcomeFailure:
			failed++
		case OutcomePending:
			pending++
		}
	}
	return
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// Plus returns a new TestID with one more path element. The receiver's slice is never shared
// with the result.
func (t TestID) Plus(name string) TestID {
	path := make([]string, 0, len(t.Path)+1)
	path = append(path, t.Path...)
	return TestID{Path: append(path, name)}
}

type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}

func (f TestFailure) Unwrap() error {
	return f.Err
}
