package ldtest

import (
	"github.com/launchdarkly/bdd-examples/framework"
)

// T represents an example, or a group of examples, while it is running.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that is outside
// of the Go test runner, and with some extra features such as debug logging and pending examples.
// Those features are provided by the lower-level framework package.
//
// To make test assertions, you can use the assert and require packages, passing the *T as if it were
// a *testing.T, or the matchers package's AssertThat and RequireThat.
type T struct {
	context *framework.Context
}

func newT(context *framework.Context) *T {
	return &T{context: context}
}

// ID returns the full path of the current example.
func (t *T) ID() framework.TestID {
	return t.context.ID()
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Fatalf logs a test failure and immediately exits. Together with Helper, this lets gomega.NewWithT
// accept a *T.
func (t *T) Fatalf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
	t.context.FailNow()
}

func (t *T) Helper() {}

// Run runs a nested example. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newT(c))
	})
}

// Pending stops the current example and reports it as pending rather than passed or failed.
func (t *T) Pending(reason string) {
	t.context.Pending(reason)
}

// Defer schedules a function to be called after the current example, however it exits.
func (t *T) Defer(fn func()) {
	t.context.Defer(fn)
}

// Debug logs some debug output for the example. The output will be passed to the test logger at
// the end of the example.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

func (t *T) DebugLogger() framework.Logger {
	return t.context.DebugLogger()
}
