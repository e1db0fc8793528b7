package report

// Title is the title of every report written by the harness.
const Title = "RCV Academy Automation Report"

// CustomizeTitle is a finalize hook that sets the report title.
func CustomizeTitle(doc *Document) {
	doc.Title = Title
}
