package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rcvacademy/browser-test-harness/framework"

	"github.com/google/uuid"
)

// Document is the HTML report for one run of the harness. It is created when the run starts,
// filled in from the results when it ends, and then written to Path.
type Document struct {
	Title       string
	RunID       string
	Path        string
	Started     time.Time
	Finished    time.Time
	Environment []EnvironmentEntry
	Entries     []Entry
	Counts      framework.Counts
}

// EnvironmentEntry is one row of the environment table at the top of the report.
type EnvironmentEntry struct {
	Name  string
	Value string
}

// Entry is one row of the results table.
type Entry struct {
	TestID      string
	Result      string
	Phase       framework.Phase
	Duration    time.Duration
	Errors      []string
	Attachments []framework.Attachment
}

// Hook modifies a Document just before it is written.
type Hook func(doc *Document)

// New creates an empty Document that will be written to the given path.
func New(path string) *Document {
	return &Document{
		Title:   filepath.Base(path),
		RunID:   uuid.NewString(),
		Path:    path,
		Started: time.Now(),
	}
}

// AddEnvironment adds a row to the environment table.
func (d *Document) AddEnvironment(name, value string) {
	d.Environment = append(d.Environment, EnvironmentEntry{Name: name, Value: value})
}

// Dir returns the directory that the report and its screenshots are written to.
func (d *Document) Dir() string {
	return filepath.Dir(d.Path)
}

// Populate adds an entry for every stored outcome record.
func (d *Document) Populate(results framework.Results) {
	for _, r := range results.Tests {
		e := Entry{
			TestID:      r.TestID.String(),
			Result:      ResultLabel(r),
			Phase:       r.Phase,
			Duration:    r.Duration,
			Attachments: r.Attachments,
		}
		for _, err := range r.Errors {
			e.Errors = append(e.Errors, err.Error())
		}
		if r.Skipped() && r.SkipReason != "" {
			e.Errors = append(e.Errors, "Reason: "+r.SkipReason)
		}
		if len(r.DebugOutput) > 0 {
			e.Attachments = append(e.Attachments, Text("Captured log", r.DebugOutput.String()))
		}
		d.Entries = append(d.Entries, e)
	}
	d.Counts = results.Counts()
}

// Finalize marks the run as finished and applies the hooks in order.
func (d *Document) Finalize(hooks ...Hook) {
	d.Finished = time.Now()
	for _, h := range hooks {
		h(d)
	}
}

// Write renders the report to Path, creating its directory if necessary.
func (d *Document) Write() error {
	if err := os.MkdirAll(d.Dir(), 0o755); err != nil {
		return fmt.Errorf("could not create report directory: %w", err)
	}
	f, err := os.Create(d.Path)
	if err != nil {
		return fmt.Errorf("could not create report: %w", err)
	}
	if err := d.Render(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Render writes the report HTML.
func (d *Document) Render(w io.Writer) error {
	if err := reportTemplate.Execute(w, d); err != nil {
		return fmt.Errorf("could not render report: %w", err)
	}
	return nil
}

// ResultLabel returns the label shown in the report for an outcome record.
func ResultLabel(r framework.TestResult) string {
	switch {
	case r.Errored():
		return "Error"
	case r.Skipped() && r.WasXFail():
		return "XFailed"
	case r.Passed() && r.WasXFail():
		return "XPassed"
	case r.Passed():
		return "Passed"
	case r.Skipped():
		return "Skipped"
	default:
		return "Failed"
	}
}
