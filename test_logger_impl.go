package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rcvacademy/browser-test-harness/framework"
	"github.com/rcvacademy/browser-test-harness/report"

	"github.com/fatih/color"
)

var (
	failColor = color.New(color.FgRed, color.Bold)
	skipColor = color.New(color.FgYellow)
	passColor = color.New(color.FgGreen)
)

type ConsoleTestLogger struct {
	Out                  io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	fmt.Fprintf(c.Out, "[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(c.Out, "  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(result framework.TestResult) {
	failed := result.Failed()
	label := strings.ToUpper(report.ResultLabel(result))
	switch {
	case failed:
		failColor.Fprintf(c.Out, "  %s: %s\n", label, result.TestID)
	case result.WasXFail():
		skipColor.Fprintf(c.Out, "  %s: %s (%s)\n", label, result.TestID, result.ExpectedFailure)
	case result.Skipped():
		c.TestSkipped(result.TestID, result.SkipReason)
	}
	if len(result.DebugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		result.DebugOutput.Dump(c.Out, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		skipColor.Fprintf(c.Out, "  SKIPPED: %s\n", id)
	} else {
		skipColor.Fprintf(c.Out, "  SKIPPED: %s (%s)\n", id, reason)
	}
}

func printResults(out io.Writer, results framework.Results) {
	counts := results.Counts()
	summary := fmt.Sprintf("%d passed, %d failed, %d skipped, %d xfailed, %d xpassed, %d errors",
		counts.Passed, counts.Failed, counts.Skipped, counts.XFailed, counts.XPassed, counts.Errors)
	if results.OK() {
		passColor.Fprintf(out, "All tests passed: %s\n", summary)
		return
	}
	failColor.Fprintf(out, "FAILED TESTS (%d): %s\n", len(results.Failures), summary)
	for _, f := range results.Failures {
		fmt.Fprintf(out, "  - %s", f.TestID)
		if f.Phase != framework.PhaseCall {
			fmt.Fprintf(out, " (%s)", f.Phase)
		}
		fmt.Fprintln(out)
	}
}
