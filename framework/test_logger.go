package framework

// TestLogger receives progress events while examples run. Events arrive in execution order,
// so a group's TestStarted comes before its examples' events and its TestFinished after them.
type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	// TestFinished is called once an example or group has run, including its cleanup functions.
	// For a pending example, result.Reason says why.
	TestFinished(result TestResult, debugOutput CapturedOutput)
	// TestExcluded is called instead of TestStarted and TestFinished for an example that the
	// filter did not select.
	TestExcluded(id TestID)
}

type nullTestLogger struct{}

func (nullTestLogger) TestStarted(TestID)                      {}
func (nullTestLogger) TestError(TestID, error)                 {}
func (nullTestLogger) TestFinished(TestResult, CapturedOutput) {}
func (nullTestLogger) TestExcluded(TestID)                     {}
