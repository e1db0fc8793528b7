package session

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rcvacademy/browser-test-harness/framework"
	"github.com/rcvacademy/browser-test-harness/report"
)

// ContextualLink is attached to every executed test.
const ContextualLink = "http://www.rcvacademy.com/"

const screenshotFragment = `<div><img src="%s" alt="screenshot" style="width:300px;height:200px" ` +
	`onclick="window.open(this.src)" align="right"/></div>`

// FailureReporter adds diagnostics to the report record of each executed test: a link for every
// test, and a screenshot thumbnail for failures.
type FailureReporter struct {
	reportPath string
	now        func() time.Time
	logger     framework.Logger
}

// NewFailureReporter creates a FailureReporter that saves screenshots in the directory of the
// report file.
func NewFailureReporter(reportPath string, logger framework.Logger) *FailureReporter {
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &FailureReporter{reportPath: reportPath, now: time.Now, logger: logger}
}

// SetClock replaces the clock used to name screenshot files.
func (r *FailureReporter) SetClock(now func() time.Time) {
	r.now = now
}

// ShouldCapture reports whether a call-phase record gets a screenshot. A test that failed as
// expected without being skipped gets none, while an expected failure reported as skipped does.
func ShouldCapture(result framework.TestResult) bool {
	xfail := result.WasXFail()
	return (result.Skipped() && xfail) || (result.Failed() && !xfail)
}

// ObserveOutcome implements framework.OutcomeObserver. Only call-phase records are touched.
//
// If no driver is bound to the scope the screenshot is not taken, but the HTML fragment pointing
// at the file is still attached.
func (r *FailureReporter) ObserveOutcome(
	result framework.TestResult,
	scope *framework.ClassScope,
	sink framework.AttachmentSink,
) {
	if result.Phase != framework.PhaseCall {
		return
	}
	sink.Attach(report.URL(ContextualLink))
	if !ShouldCapture(result) {
		return
	}

	dir := filepath.Dir(r.reportPath)
	fileName := ScreenshotFileName(r.now())
	if d := DriverFrom(scope); d != nil {
		dest := filepath.Join(dir, fileName)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			r.logger.Printf("Could not create screenshot directory %s: %s", dir, err)
		} else if err := d.Screenshot(dest); err != nil {
			r.logger.Printf("Could not save screenshot for %s: %s", result.TestID, err)
		} else {
			r.logger.Printf("Saved screenshot for %s to %s", result.TestID, dest)
		}
	}
	sink.Attach(report.HTML(fmt.Sprintf(screenshotFragment, fileName)))
}

// ScreenshotFileName names a screenshot after the time in milliseconds. Two screenshots taken in
// the same millisecond get the same name.
func ScreenshotFileName(t time.Time) string {
	return fmt.Sprintf("%d.png", t.UnixMilli())
}
