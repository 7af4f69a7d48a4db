package render

import (
	"testing"

	"storydoc/internal/extract"
	"storydoc/internal/story"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func buildTwoButtonStories() string {
	builder := NewDocumentBuilder("http://localhost:6006")
	var cursor Cursor

	primary := &story.Story{ID: "components-button--primary", Title: "Components/Button", Name: "Primary"}
	builder.AddHeadings(cursor.Emit(primary))
	builder.AddContent(FormatContent(len(primary.Path())+1, &extract.Content{
		CodeBlocks: []extract.CodeBlock{{Language: "tsx", Code: "<Button/>"}},
	}))

	secondary := &story.Story{ID: "components-button--secondary", Title: "Components/Button", Name: "Secondary"}
	builder.AddHeadings(cursor.Emit(secondary))

	return builder.String()
}

func TestDocument_EndToEndTwoStories(t *testing.T) {
	want := "# Storybook Documentation\n\n" +
		"Source: http://localhost:6006\n\n" +
		"# Components\n" +
		"## Button\n" +
		"### Primary\n" +
		"\n" +
		"#### Code example 1\n" +
		"\n" +
		"```tsx\n" +
		"<Button/>\n" +
		"```\n" +
		"\n" +
		"### Secondary\n" +
		"\n"

	assert.Equal(t, want, buildTwoButtonStories())
}

func TestDocument_IdempotentRerun(t *testing.T) {
	assert.Equal(t, buildTwoButtonStories(), buildTwoButtonStories())
}

func TestDocument_OverviewSitsBetweenPreambleAndFirstSection(t *testing.T) {
	builder := NewDocumentBuilder("http://localhost:6006")
	builder.AddOverview("Two button states documented below.")

	var cursor Cursor
	builder.AddHeadings(cursor.Emit(&story.Story{ID: "a", Title: "Components", Name: "Intro"}))

	assert.Equal(t, "# Storybook Documentation\n\n"+
		"Source: http://localhost:6006\n\n"+
		"Two button states documented below.\n\n"+
		"# Components\n"+
		"## Intro\n\n", builder.String())
}

func TestDocument_EmptyOverviewAddsNothing(t *testing.T) {
	builder := NewDocumentBuilder("src")
	builder.AddOverview("  \n ")
	assert.Equal(t, "# Storybook Documentation\n\nSource: src\n\n", builder.String())
}

// The emitted document must be structurally valid Markdown: goldmark should
// parse it into the same heading tree we emitted.
func TestDocument_ParsesIntoExpectedHeadingTree(t *testing.T) {
	source := []byte(buildTwoButtonStories())

	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	type parsed struct {
		level int
		text  string
	}
	var headings []parsed
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering {
			var sb []byte
			for c := h.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					sb = append(sb, t.Segment.Value(source)...)
				}
			}
			headings = append(headings, parsed{level: h.Level, text: string(sb)})
		}
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)

	assert.Equal(t, []parsed{
		{1, "Storybook Documentation"},
		{1, "Components"},
		{2, "Button"},
		{3, "Primary"},
		{4, "Code example 1"},
		{3, "Secondary"},
	}, headings)
}
