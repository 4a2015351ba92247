package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context tracks the state of one example or group of examples while it is running. It is
// similar to Go's *testing.T, but is used outside of the Go test runner.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
	cleanups    []func()
	hasChildren bool
}

// Run executes the top-level action and returns the results of every example that it ran.
// Examples are run synchronously, in the order in which Context.Run is called.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer c.recordResult()
	defer c.runCleanups()
	defer func() {
		if r := recover(); r != nil {
			if c.skipped {
				return
			}
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
	}()

	action(c)
}

// runCleanups also runs any functions that were deferred by a cleanup function.
func (c *Context) runCleanups() {
	for len(c.cleanups) > 0 {
		last := len(c.cleanups) - 1
		fn := c.cleanups[last]
		c.cleanups = c.cleanups[:last]
		c.runCleanup(fn)
	}
}

func (c *Context) runCleanup(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if r == c {
				c.debugLogger.Printf("cleanup function stopped the example early")
			} else {
				c.debugLogger.Printf("cleanup function panicked: %+v", r)
			}
		}
	}()
	fn()
}

func (c *Context) result() TestResult {
	result := TestResult{TestID: c.id, Errors: c.errors, Reason: c.skipReason}
	switch {
	case c.failed:
		result.Outcome = OutcomeFailure
	case c.skipped:
		result.Outcome = OutcomePending
	default:
		result.Outcome = OutcomeSuccess
	}
	return result
}

func (c *Context) recordResult() {
	if (c.hasChildren || len(c.id.Path) == 0) && !c.failed {
		return // a group's own result is just the sum of its examples
	}
	result := c.result()
	c.env.results.Tests = append(c.env.results.Tests, result)
	switch result.Outcome {
	case OutcomeFailure:
		c.env.results.Failures = append(c.env.results.Failures, result)
	case OutcomePending:
		c.env.results.Pending = append(c.env.results.Pending, result)
	}
}

func (c *Context) ID() TestID {
	return c.id
}

// Run runs a named example, or a group of examples, as a child of this one. The child gets
// its own Context, so failures and cleanup functions in the child never affect siblings.
func (c *Context) Run(name string, action func(*Context)) {
	id := c.id.Plus(name)
	c.hasChildren = true

	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestExcluded(id)
		return
	}
	c.env.testLogger.TestStarted(id)
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.debugLogger.startClock(time.Now())
	c1.run(action)
	c.env.testLogger.TestFinished(c1.result(), c1.debugLogger.Output())
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Pending marks the current example as intentionally incomplete and stops it. A pending
// example is reported separately and is not counted as a failure, unless it had already
// recorded errors before this was called.
func (c *Context) Pending(reason string) {
	if reason == "" {
		reason = "pending"
	}
	c.SkipWithReason(reason)
}

// Defer schedules a function to be called when the current example finishes, whether it
// passed, failed, panicked, or was marked pending. Functions run in last-in-first-out order.
// A panic in a deferred function is written to the debug log and does not change the outcome.
func (c *Context) Defer(fn func()) {
	c.cleanups = append(c.cleanups, fn)
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
