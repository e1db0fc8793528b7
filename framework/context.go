package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"
)

// Options configures a test run.
type Options struct {
	// Filter, if set, decides which tests are run. Tests it rejects are reported as skipped and
	// do not produce outcome records.
	Filter Filter

	// TestLogger receives progress notifications. If nil, nothing is logged.
	TestLogger TestLogger

	// Observers are notified of every outcome record, in order.
	Observers []OutcomeObserver

	// ClassFixtures are instantiated once for every test class, in order, before the class's
	// own fixtures.
	ClassFixtures []ClassFixtureFactory
}

type environment struct {
	results       Results
	testLogger    TestLogger
	filter        Filter
	observers     []OutcomeObserver
	classFixtures []ClassFixtureFactory
}

// Context is the per-test state passed to test logic. It is similar to Go's *testing.T, and
// implements the interface required by the testify assert and require packages.
type Context struct {
	env         *environment
	id          TestID
	scope       *ClassScope
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	xfailReason string
	errors      []error
	deferred    []func()
	subtests    int
}

// Run executes the action in a root context and returns the accumulated results.
func Run(opts Options, action func(*Context)) Results {
	testLogger := opts.TestLogger
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:        opts.Filter,
		testLogger:    testLogger,
		observers:     opts.Observers,
		classFixtures: opts.ClassFixtures,
	}
	c := &Context{env: env}
	c.run(action)
	if c.failed {
		env.record(TestResult{
			TestID: c.id,
			Phase:  PhaseCall,
			Status: StatusFailed,
			Errors: c.errors,
		}, nil, true)
	}
	return env.results
}

func (c *Context) run(action func(*Context)) {
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
	defer c.runDeferred()

	action(c)
}

func (c *Context) runDeferred() {
	for i := len(c.deferred) - 1; i >= 0; i-- {
		c.deferred[i]()
	}
	c.deferred = nil
}

func (c *Context) ID() TestID {
	return c.id
}

// Scope returns the class scope that this test is running in, or nil if it is not part of a
// test class.
func (c *Context) Scope() *ClassScope {
	return c.scope
}

// Run runs a named subtest or group of subtests. A group that only contains subtests does not
// produce an outcome record of its own unless something fails outside of its subtests.
func (c *Context) Run(name string, action func(*Context)) {
	id := c.id.plus(name)
	c.subtests++

	c.env.testLogger.TestStarted(id)
	if !c.env.selected(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c1 := &Context{
		id:    id,
		env:   c.env,
		scope: c.scope,
	}
	started := time.Now()
	c1.run(action)
	if c1.subtests > 0 && !c1.failed {
		return
	}
	result := c1.result(TestCase{}, time.Since(started))
	c.env.record(result, c.scope, true)
	c.env.testLogger.TestFinished(result)
}

// Defer schedules a function to run when the current test exits, whether it passes or fails.
func (c *Context) Defer(fn func()) {
	c.deferred = append(c.deferred, fn)
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, reformatError(err))
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

// XFail stops the test and reports it as an expected failure.
func (c *Context) XFail(reason string) {
	if reason == "" {
		reason = "expected failure"
	}
	c.xfailReason = reason
	c.Skip()
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}

func (c *Context) result(tc TestCase, duration time.Duration) TestResult {
	r := TestResult{
		TestID:      c.id,
		Phase:       PhaseCall,
		Status:      StatusPassed,
		SkipReason:  c.skipReason,
		Errors:      c.errors,
		Duration:    duration,
		DebugOutput: c.debugLogger.Output(),
	}
	switch {
	case c.xfailReason != "":
		r.Status, r.ExpectedFailure, r.SkipReason = StatusSkipped, c.xfailReason, c.xfailReason
	case c.skipped:
		r.Status = StatusSkipped
	case tc.XFail != "" && c.failed:
		r.Status, r.ExpectedFailure = StatusSkipped, tc.XFail
	case tc.XFail != "" && tc.Strict:
		r.Status, r.ExpectedFailure = StatusFailed, tc.XFail
		r.Errors = append(r.Errors, fmt.Errorf("[XPASS(strict)] %s", tc.XFail))
	case tc.XFail != "":
		r.ExpectedFailure = tc.XFail
	case c.failed:
		r.Status = StatusFailed
	}
	return r
}

func (e *environment) selected(id TestID) bool {
	return e.filter == nil || e.filter(id)
}

// record passes the result through the observers and then stores it. Setup and teardown records
// are only kept if they failed.
func (e *environment) record(result TestResult, scope *ClassScope, keep bool) TestResult {
	sink := &attachmentList{items: result.Attachments}
	for _, o := range e.observers {
		o.ObserveOutcome(result, scope, sink)
	}
	result.Attachments = sink.items
	if keep || result.Failed() {
		e.results.Tests = append(e.results.Tests, result)
	}
	if result.Failed() {
		e.results.Failures = append(e.results.Failures, result)
	}
	return result
}
