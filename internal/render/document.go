package render

import "strings"

// DocumentTitle is the fixed level-1 title of every exported document.
const DocumentTitle = "Storybook Documentation"

// DocumentBuilder assembles the final document by repeated append. Each
// story's section is self-contained Markdown, so a partially built document
// remains well-formed at section boundaries.
type DocumentBuilder struct {
	sb strings.Builder
}

// NewDocumentBuilder starts a document with the preamble: the fixed title
// and a line naming the source the stories came from.
func NewDocumentBuilder(source string) *DocumentBuilder {
	b := &DocumentBuilder{}
	b.sb.WriteString("# " + DocumentTitle + "\n\n")
	b.sb.WriteString("Source: " + source + "\n\n")
	return b
}

// AddOverview appends a free-form overview paragraph. Intended to be called
// once, directly after construction, before any story section.
func (b *DocumentBuilder) AddOverview(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	b.sb.WriteString(text + "\n\n")
}

// AddHeadings appends a story's heading group: one line per heading, then a
// blank line closing the group.
func (b *DocumentBuilder) AddHeadings(headings []Heading) {
	for _, h := range headings {
		b.sb.WriteString(hashes(h.Level) + " " + h.Text + "\n")
	}
	b.sb.WriteString("\n")
}

// AddContent appends pre-rendered content sections verbatim.
func (b *DocumentBuilder) AddContent(md string) {
	b.sb.WriteString(md)
}

// String returns the document text accumulated so far.
func (b *DocumentBuilder) String() string {
	return b.sb.String()
}
