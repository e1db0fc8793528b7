package framework

import (
	"fmt"
	"runtime/debug"
	"time"
)

// TestCase is one test method of a test class.
type TestCase struct {
	Name string

	// XFail marks the test as expected to fail; the value is the reason. A failing body is then
	// reported as skipped with the marker, and a passing one as passed with the marker.
	XFail string

	// Strict makes a passing XFail test a failure.
	Strict bool

	Action func(*Context)
}

// TestClass is a group of test methods that share class-scoped fixtures.
type TestClass struct {
	Name     string
	Fixtures []ClassFixture
	Tests    []TestCase
}

// RunClass runs the tests of a class sequentially in a new ClassScope.
//
// Every fixture is set up before the first selected test and torn down after the last one. If a
// fixture fails to set up, none of the tests are run and each of them gets a failed setup record.
// Teardown always happens, in reverse order, for every fixture whose setup was attempted.
func (c *Context) RunClass(class TestClass) {
	classID := c.id.plus(class.Name)
	c.subtests++

	var selected []TestCase
	for _, tc := range class.Tests {
		id := classID.plus(tc.Name)
		if !c.env.selected(id) {
			c.env.testLogger.TestStarted(id)
			c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
			continue
		}
		selected = append(selected, tc)
	}
	if len(selected) == 0 {
		return
	}

	scope := NewClassScope(class.Name)
	var fixtures []ClassFixture
	for _, factory := range c.env.classFixtures {
		fixtures = append(fixtures, factory())
	}
	fixtures = append(fixtures, class.Fixtures...)

	var attempted []ClassFixture
	lastID := classID.plus(selected[len(selected)-1].Name)
	defer func() {
		started := time.Now()
		var errs []error
		for i := len(attempted) - 1; i >= 0; i-- {
			if err := safeFixtureCall(attempted[i].TearDown, scope); err != nil {
				errs = append(errs, err)
			}
		}
		c.env.record(TestResult{
			TestID:   lastID,
			Phase:    PhaseTeardown,
			Status:   statusFor(errs),
			Errors:   errs,
			Duration: time.Since(started),
		}, scope, false)
		for _, err := range errs {
			c.env.testLogger.TestError(lastID, fmt.Errorf("class teardown failed: %w", err))
		}
	}()

	started := time.Now()
	var setupErr error
	for _, f := range fixtures {
		attempted = append(attempted, f)
		if setupErr = safeFixtureCall(f.SetUp, scope); setupErr != nil {
			break
		}
	}
	setupDuration := time.Since(started)

	for i, tc := range selected {
		id := classID.plus(tc.Name)
		c.env.testLogger.TestStarted(id)

		setup := TestResult{TestID: id, Phase: PhaseSetup, Status: StatusPassed}
		if i == 0 {
			setup.Duration = setupDuration
		}
		if setupErr != nil {
			setup.Status = StatusFailed
			setup.Errors = []error{setupErr}
		}
		setup = c.env.record(setup, scope, false)
		if setupErr != nil {
			c.env.testLogger.TestError(id, setupErr)
			c.env.testLogger.TestFinished(setup)
			continue
		}

		c.runCase(id, scope, tc)
	}
}

func (c *Context) runCase(id TestID, scope *ClassScope, tc TestCase) {
	c1 := &Context{
		id:    id,
		env:   c.env,
		scope: scope,
	}
	started := time.Now()
	if tc.Action != nil {
		c1.run(tc.Action)
	}
	result := c.env.record(c1.result(tc, time.Since(started)), scope, true)
	c.env.testLogger.TestFinished(result)
}

func safeFixtureCall(fn func(*ClassScope) error, scope *ClassScope) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected panic in class fixture: %+v\n%s", r, string(debug.Stack()))
		}
	}()
	return fn(scope)
}

func statusFor(errs []error) Status {
	if len(errs) > 0 {
		return StatusFailed
	}
	return StatusPassed
}
