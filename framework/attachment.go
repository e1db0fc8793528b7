package framework

// AttachmentKind says how a report should render an Attachment.
type AttachmentKind string

const (
	AttachmentURL   AttachmentKind = "url"
	AttachmentHTML  AttachmentKind = "html"
	AttachmentText  AttachmentKind = "text"
	AttachmentImage AttachmentKind = "image"
)

// Attachment is an extra piece of information shown alongside a test's result in the report.
type Attachment struct {
	Kind    AttachmentKind
	Name    string
	Content string
}

// AttachmentSink receives attachments for the outcome record currently being observed.
type AttachmentSink interface {
	Attach(a Attachment)
}

type attachmentList struct {
	items []Attachment
}

func (l *attachmentList) Attach(a Attachment) {
	l.items = append(l.items, a)
}

// OutcomeObserver is notified once for every outcome record, after the record has been computed
// and before it is stored. The scope is the class scope the test ran in; it is nil for tests that
// are not part of a class.
type OutcomeObserver interface {
	ObserveOutcome(result TestResult, scope *ClassScope, sink AttachmentSink)
}

// OutcomeObserverFunc adapts a function to OutcomeObserver.
type OutcomeObserverFunc func(result TestResult, scope *ClassScope, sink AttachmentSink)

func (f OutcomeObserverFunc) ObserveOutcome(result TestResult, scope *ClassScope, sink AttachmentSink) {
	f(result, scope, sink)
}
