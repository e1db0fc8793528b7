package framework

// TestLogger receives progress notifications while tests run.
type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(result TestResult)
	TestSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestID)         {}
func (n nullTestLogger) TestError(TestID, error)    {}
func (n nullTestLogger) TestFinished(TestResult)    {}
func (n nullTestLogger) TestSkipped(TestID, string) {}
