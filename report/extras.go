package report

import "github.com/rcvacademy/browser-test-harness/framework"

// URL creates a link attachment.
func URL(link string) framework.Attachment {
	return framework.Attachment{Kind: framework.AttachmentURL, Name: "URL", Content: link}
}

// HTML creates an attachment whose content is inserted into the report without escaping.
func HTML(fragment string) framework.Attachment {
	return framework.Attachment{Kind: framework.AttachmentHTML, Name: "HTML", Content: fragment}
}

// Text creates a preformatted text attachment.
func Text(name, content string) framework.Attachment {
	return framework.Attachment{Kind: framework.AttachmentText, Name: name, Content: content}
}

// Image creates an attachment that shows an image file relative to the report.
func Image(name, src string) framework.Attachment {
	return framework.Attachment{Kind: framework.AttachmentImage, Name: name, Content: src}
}
