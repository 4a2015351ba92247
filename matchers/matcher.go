package matchers

import (
	"fmt"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/gcustom"
	"github.com/onsi/gomega/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Matcher is a predicate over an actual value.
//
// Every Matcher is also a gomega matcher, so it can be passed to gomega's Expect or combined
// with gomega's own matchers. A Matcher keeps some state between Match and FailureMessage,
// the same as gomega's matchers do, so one instance should not be shared across goroutines.
type Matcher interface {
	types.GomegaMatcher
	// Test checks the actual value.
	Test(actual interface{}) Result
	// Describe returns a phrase that completes the sentence "expected <actual> to ...".
	Describe() string
}

// Result is the verdict from a Matcher. Message is empty if Pass is true.
type Result struct {
	Pass    bool
	Message string
	// Err is non-nil if the value could not be checked at all, for instance because it was
	// the wrong type for the matcher. Negating a matcher never turns this into a pass.
	Err error
}

type gomegaMatcher struct {
	types.GomegaMatcher
	description string
}

func wrap(description string, m types.GomegaMatcher) Matcher {
	return gomegaMatcher{GomegaMatcher: m, description: description}
}

// New creates a Matcher from a description and a test function. The test function should
// return an error, rather than false, if the actual value is not something it can test.
func New(description string, test func(actual interface{}) (bool, error)) Matcher {
	return wrap(description, gcustom.MakeMatcher(test).WithMessage(description))
}

func (m gomegaMatcher) Describe() string { return m.description }

func (m gomegaMatcher) Test(actual interface{}) Result {
	pass, err := m.Match(actual)
	if err != nil {
		return Result{
			Message: fmt.Sprintf("could not check whether %s would %s: %s", describeValue(actual), m.description, err),
			Err:     err,
		}
	}
	if pass {
		return Result{Pass: true}
	}
	return Result{Message: m.FailureMessage(actual)}
}

// Not negates a Matcher. If the actual value cannot be checked by m at all, Not(m) fails too.
func Not(m Matcher) Matcher {
	return wrap("not "+m.Describe(), gomega.Not(m))
}

// AllOf passes only if every one of the matchers passes. The failure message describes the
// first matcher that failed.
func AllOf(ms ...Matcher) Matcher {
	var description string
	gms := make([]types.GomegaMatcher, 0, len(ms))
	for i, m := range ms {
		if i > 0 {
			description += " and "
		}
		description += m.Describe()
		gms = append(gms, m)
	}
	return wrap(description, gomega.SatisfyAll(gms...))
}

type tHelper interface {
	Helper()
}

// AssertThat checks the actual value with the matcher, and if it fails, reports the failure
// with t.Errorf. It returns true if the matcher passed.
//
// The t parameter can be a *testing.T, an *ldtest.T, or anything else that implements
// assert.TestingT.
func AssertThat(t assert.TestingT, actual interface{}, m Matcher, msgAndArgs ...interface{}) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	r := m.Test(actual)
	if r.Pass {
		return true
	}
	return assert.Fail(t, r.Message, msgAndArgs...)
}

// RequireThat is like AssertThat, but also stops the current test if the matcher fails.
func RequireThat(t require.TestingT, actual interface{}, m Matcher, msgAndArgs ...interface{}) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !AssertThat(t, actual, m, msgAndArgs...) {
		t.FailNow()
	}
}

func describeValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case string:
		return fmt.Sprintf("%q", v)
	case fmt.Stringer:
		return fmt.Sprintf("%s (%T)", v, v)
	default:
		return fmt.Sprintf("%v (%T)", v, v)
	}
}
