package framework

import (
	"fmt"
	"strings"
	"time"
)

// Phase identifies which part of a test's lifecycle an outcome record describes.
type Phase string

const (
	PhaseSetup    Phase = "setup"
	PhaseCall     Phase = "call"
	PhaseTeardown Phase = "teardown"
)

// Status is the pass/fail/skip status of one phase of a test.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

// TestResult is the outcome record for one phase of one test.
//
// Observers are allowed to add attachments to it through an AttachmentSink before it is
// stored in Results; nothing else about it changes once it has been computed.
type TestResult struct {
	TestID          TestID
	Phase           Phase
	Status          Status
	ExpectedFailure string
	SkipReason      string
	Errors          []error
	Duration        time.Duration
	DebugOutput     CapturedOutput
	Attachments     []Attachment
}

func (r TestResult) Passed() bool  { return r.Status == StatusPassed }
func (r TestResult) Failed() bool  { return r.Status == StatusFailed }
func (r TestResult) Skipped() bool { return r.Status == StatusSkipped }

// WasXFail returns true if the test carried an expected-failure marker.
func (r TestResult) WasXFail() bool {
	return r.ExpectedFailure != ""
}

// Errored returns true for a failure outside of the test body, such as a class fixture that
// could not be set up.
func (r TestResult) Errored() bool {
	return r.Failed() && r.Phase != PhaseCall
}

// Counts tallies the records in Results the way the report header shows them.
type Counts struct {
	Passed  int
	Failed  int
	Skipped int
	XFailed int
	XPassed int
	Errors  int
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

func (r Results) Counts() Counts {
	var c Counts
	for _, t := range r.Tests {
		switch {
		case t.Errored():
			c.Errors++
		case t.Phase != PhaseCall:
			continue
		case t.Skipped() && t.WasXFail():
			c.XFailed++
		case t.Passed() && t.WasXFail():
			c.XPassed++
		case t.Passed():
			c.Passed++
		case t.Failed():
			c.Failed++
		case t.Skipped():
			c.Skipped++
		}
	}
	return c
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// Name returns the last path component.
func (t TestID) Name() string {
	if len(t.Path) == 0 {
		return ""
	}
	return t.Path[len(t.Path)-1]
}

func (t TestID) plus(name string) TestID {
	return TestID{Path: append(append([]string(nil), t.Path...), name)}
}

type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}
