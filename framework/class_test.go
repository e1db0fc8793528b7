package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingFixture struct {
	name     string
	events   *[]string
	setupErr error
	panicky  bool
}

func (f *recordingFixture) SetUp(scope *ClassScope) error {
	*f.events = append(*f.events, f.name+".setup:"+scope.Name())
	if f.panicky {
		panic("fixture exploded")
	}
	if f.setupErr == nil {
		scope.Bind(BindingKey(f.name), f.name+"-value")
	}
	return f.setupErr
}

func (f *recordingFixture) TearDown(scope *ClassScope) error {
	*f.events = append(*f.events, f.name+".teardown:"+scope.Name())
	return nil
}

func runClasses(opts Options, classes ...TestClass) Results {
	return Run(opts, func(c *Context) {
		for _, class := range classes {
			c.RunClass(class)
		}
	})
}

func TestClassFixturesWrapAllTestsOfTheClass(t *testing.T) {
	var events []string
	factory := func() ClassFixture { return &recordingFixture{name: "auto", events: &events} }
	test := func(name string) TestCase {
		return TestCase{Name: name, Action: func(c *Context) {
			events = append(events, name+":"+c.Scope().Value("auto").(string))
		}}
	}

	results := runClasses(Options{ClassFixtures: []ClassFixtureFactory{factory}},
		TestClass{Name: "A", Tests: []TestCase{test("a1"), test("a2")}},
		TestClass{Name: "B", Tests: []TestCase{test("b1")}},
	)

	assert.Equal(t, []string{
		"auto.setup:A", "a1:auto-value", "a2:auto-value", "auto.teardown:A",
		"auto.setup:B", "b1:auto-value", "auto.teardown:B",
	}, events)
	assert.True(t, results.OK())
	assert.Len(t, results.Tests, 3)
}

func TestTeardownRunsAfterFailuresAndPanics(t *testing.T) {
	var events []string
	factory := func() ClassFixture { return &recordingFixture{name: "auto", events: &events} }

	results := runClasses(Options{ClassFixtures: []ClassFixtureFactory{factory}},
		TestClass{Name: "A", Tests: []TestCase{
			{Name: "fails", Action: func(c *Context) { c.Errorf("nope"); c.FailNow() }},
			{Name: "panics", Action: func(c *Context) { panic("boom") }},
			{Name: "skips", Action: func(c *Context) { c.SkipWithReason("not today") }},
		}},
	)

	assert.Equal(t, []string{"auto.setup:A", "auto.teardown:A"}, events)
	require.Len(t, results.Tests, 3)
	assert.True(t, results.Tests[0].Failed())
	assert.True(t, results.Tests[1].Failed())
	assert.Contains(t, results.Tests[1].Errors[0].Error(), "unexpected panic in test: boom")
	assert.True(t, results.Tests[2].Skipped())
	assert.Equal(t, "not today", results.Tests[2].SkipReason)
	assert.Len(t, results.Failures, 2)
}

func TestSetupFailureErrorsEveryTestAndStillTearsDown(t *testing.T) {
	var events []string
	first := &recordingFixture{name: "first", events: &events}
	second := &recordingFixture{name: "second", events: &events, setupErr: errors.New("no browser")}
	third := &recordingFixture{name: "third", events: &events}
	ran := 0

	results := runClasses(Options{},
		TestClass{Name: "A", Fixtures: []ClassFixture{first, second, third}, Tests: []TestCase{
			{Name: "x", Action: func(*Context) { ran++ }},
			{Name: "y", Action: func(*Context) { ran++ }},
		}},
	)

	assert.Zero(t, ran)
	assert.Equal(t, []string{
		"first.setup:A", "second.setup:A",
		"second.teardown:A", "first.teardown:A",
	}, events)
	require.Len(t, results.Tests, 2)
	for _, r := range results.Tests {
		assert.Equal(t, PhaseSetup, r.Phase)
		assert.True(t, r.Errored())
		assert.EqualError(t, r.Errors[0], "no browser")
	}
	assert.Equal(t, Counts{Errors: 2}, results.Counts())
}

func TestFixturePanicIsASetupError(t *testing.T) {
	var events []string
	f := &recordingFixture{name: "f", events: &events, panicky: true}

	results := runClasses(Options{}, TestClass{Name: "A", Fixtures: []ClassFixture{f}, Tests: []TestCase{
		{Name: "x", Action: func(*Context) {}},
	}})

	require.Len(t, results.Tests, 1)
	assert.Contains(t, results.Tests[0].Errors[0].Error(), "unexpected panic in class fixture: fixture exploded")
	assert.Equal(t, []string{"f.setup:A", "f.teardown:A"}, events)
}

func TestDeselectedClassDoesNotSetUpFixtures(t *testing.T) {
	var events []string
	factory := func() ClassFixture { return &recordingFixture{name: "auto", events: &events} }
	filter := func(id TestID) bool { return id.String() != "A/x" }

	results := runClasses(Options{Filter: filter, ClassFixtures: []ClassFixtureFactory{factory}},
		TestClass{Name: "A", Tests: []TestCase{{Name: "x", Action: func(*Context) {}}}},
	)

	assert.Empty(t, events)
	assert.Empty(t, results.Tests)
}

func TestExpectedFailureOutcomes(t *testing.T) {
	results := runClasses(Options{}, TestClass{Name: "A", Tests: []TestCase{
		{Name: "xfail fails", XFail: "bug 1", Action: func(c *Context) { c.Errorf("broken") }},
		{Name: "xfail passes", XFail: "bug 2", Action: func(*Context) {}},
		{Name: "strict xpass", XFail: "bug 3", Strict: true, Action: func(*Context) {}},
		{Name: "imperative", Action: func(c *Context) { c.XFail("bug 4") }},
	}})

	require.Len(t, results.Tests, 4)
	r := results.Tests
	assert.Equal(t, StatusSkipped, r[0].Status)
	assert.Equal(t, "bug 1", r[0].ExpectedFailure)
	assert.Equal(t, StatusPassed, r[1].Status)
	assert.Equal(t, "bug 2", r[1].ExpectedFailure)
	assert.Equal(t, StatusFailed, r[2].Status)
	assert.Equal(t, "bug 3", r[2].ExpectedFailure)
	assert.EqualError(t, r[2].Errors[0], "[XPASS(strict)] bug 3")
	assert.Equal(t, StatusSkipped, r[3].Status)
	assert.Equal(t, "bug 4", r[3].ExpectedFailure)

	assert.Equal(t, Counts{XFailed: 2, XPassed: 1, Failed: 1}, results.Counts())
	assert.Len(t, results.Failures, 1)
}

func TestObserversSeeEveryPhaseAndCanAttach(t *testing.T) {
	var seen []Phase
	observer := OutcomeObserverFunc(func(r TestResult, scope *ClassScope, sink AttachmentSink) {
		seen = append(seen, r.Phase)
		if r.Phase == PhaseCall {
			sink.Attach(Attachment{Kind: AttachmentText, Name: "scope", Content: scope.Name()})
		}
	})

	results := runClasses(Options{Observers: []OutcomeObserver{observer}},
		TestClass{Name: "A", Tests: []TestCase{
			{Name: "x", Action: func(*Context) {}},
			{Name: "y", Action: func(*Context) {}},
		}},
	)

	assert.Equal(t, []Phase{PhaseSetup, PhaseCall, PhaseSetup, PhaseCall, PhaseTeardown}, seen)
	require.Len(t, results.Tests, 2)
	assert.Equal(t, []Attachment{{Kind: AttachmentText, Name: "scope", Content: "A"}}, results.Tests[0].Attachments)
}

func TestScopeValuesDoNotLeakBetweenClasses(t *testing.T) {
	var second interface{} = "unset"
	results := runClasses(Options{},
		TestClass{Name: "A", Tests: []TestCase{{Name: "x", Action: func(c *Context) {
			c.Scope().Bind("handle", 1)
		}}}},
		TestClass{Name: "B", Tests: []TestCase{{Name: "y", Action: func(c *Context) {
			second = c.Scope().Value("handle")
		}}}},
	)

	assert.True(t, results.OK())
	assert.Nil(t, second)
}
