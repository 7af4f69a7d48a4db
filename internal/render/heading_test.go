package render

import (
	"testing"

	"storydoc/internal/story"

	"github.com/stretchr/testify/assert"
)

func TestEmitHeadings_FirstStoryEmitsFullPath(t *testing.T) {
	headings := EmitHeadings(story.ParsePath("Components/Button"), nil, "Primary")

	assert.Equal(t, []Heading{
		{Level: 1, Text: "Components"},
		{Level: 2, Text: "Button"},
		{Level: 3, Text: "Primary"},
	}, headings)
}

func TestEmitHeadings_SharedPrefixIsNotRepeated(t *testing.T) {
	previous := story.ParsePath("Components/Button")
	headings := EmitHeadings(story.ParsePath("Components/Button"), previous, "Secondary")

	assert.Equal(t, []Heading{{Level: 3, Text: "Secondary"}}, headings)
}

func TestEmitHeadings_MinimalityProperty(t *testing.T) {
	cases := []struct {
		current, previous string
	}{
		{"Components/Button", "Components/Input"},
		{"Components/Forms/Input", "Components/Button"},
		{"Pages", "Components/Button/Group"},
		{"A/B/C/D", "A/B"},
	}
	for _, tc := range cases {
		current := story.ParsePath(tc.current)
		previous := story.ParsePath(tc.previous)
		k := current.SharedPrefixLen(previous)

		headings := EmitHeadings(current, previous, "Leaf")
		assert.Len(t, headings, len(current)-k+1, "current=%s previous=%s", tc.current, tc.previous)
		assert.Equal(t, Heading{Level: len(current) + 1, Text: "Leaf"}, headings[len(headings)-1])
	}
}

func TestEmitHeadings_DivergenceForcesRemainingSegments(t *testing.T) {
	// Index 1 diverges while index 2 matches the previous path again; the
	// matching tail must still be re-emitted.
	previous := story.ParsePath("A/B/C")
	headings := EmitHeadings(story.ParsePath("A/X/C"), previous, "Leaf")

	assert.Equal(t, []Heading{
		{Level: 2, Text: "X"},
		{Level: 3, Text: "C"},
		{Level: 4, Text: "Leaf"},
	}, headings)
}

func TestEmitHeadings_ShorterCurrentPathEmitsOnlyLeaf(t *testing.T) {
	previous := story.ParsePath("A/B/C")
	headings := EmitHeadings(story.ParsePath("A/B"), previous, "Leaf")

	assert.Equal(t, []Heading{{Level: 3, Text: "Leaf"}}, headings)
}

func TestEmitHeadings_EmptyPathStillEmitsLeaf(t *testing.T) {
	headings := EmitHeadings(nil, story.ParsePath("Components/Button"), "Orphan")

	assert.Equal(t, []Heading{{Level: 1, Text: "Orphan"}}, headings)
}

func TestCursor_AdvancesOncePerStory(t *testing.T) {
	var cursor Cursor

	first := cursor.Emit(&story.Story{ID: "a", Title: "Components/Button", Name: "Primary"})
	assert.Len(t, first, 3)
	assert.Equal(t, story.ParsePath("Components/Button"), cursor.Path())

	second := cursor.Emit(&story.Story{ID: "b", Title: "Components/Button", Name: "Secondary"})
	assert.Equal(t, []Heading{{Level: 3, Text: "Secondary"}}, second)
}

func TestCursor_LeafFallsBackToStoryID(t *testing.T) {
	var cursor Cursor
	headings := cursor.Emit(&story.Story{ID: "components-button--primary", Title: "Components/Button"})
	assert.Equal(t, "components-button--primary", headings[len(headings)-1].Text)
}
