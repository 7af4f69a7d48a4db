package story

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePath_SplitsAndDropsEmptySegments(t *testing.T) {
	assert.Equal(t, Path{"Components", "Button", "Primary"}, ParsePath("Components/Button/Primary"))
	assert.Equal(t, Path{"Components", "Button"}, ParsePath("Components//Button/"))
	assert.Equal(t, Path{"Intro"}, ParsePath("Intro"))
	assert.Empty(t, ParsePath(""))
	assert.Empty(t, ParsePath("///"))
}

func TestParsePath_TrimsSegmentWhitespace(t *testing.T) {
	assert.Equal(t, Path{"Components", "Button"}, ParsePath(" Components / Button "))
}

func TestSharedPrefixLen(t *testing.T) {
	a := ParsePath("Components/Button")
	assert.Equal(t, 2, a.SharedPrefixLen(ParsePath("Components/Button")))
	assert.Equal(t, 1, a.SharedPrefixLen(ParsePath("Components/Input")))
	assert.Equal(t, 0, a.SharedPrefixLen(ParsePath("Pages/Home")))
	assert.Equal(t, 0, a.SharedPrefixLen(nil))
	assert.Equal(t, 2, a.SharedPrefixLen(ParsePath("Components/Button/Extra")))
}

func TestPathEqual(t *testing.T) {
	assert.True(t, ParsePath("A/B").Equal(ParsePath("A/B")))
	assert.False(t, ParsePath("A/B").Equal(ParsePath("A")))
	assert.False(t, ParsePath("A/B").Equal(ParsePath("A/C")))
	assert.True(t, Path{}.Equal(nil))
}

func TestDisplayName_FallsBackToID(t *testing.T) {
	s := &Story{ID: "components-button--primary", Title: "Components/Button"}
	assert.Equal(t, "components-button--primary", s.DisplayName())

	s.Name = "Primary"
	assert.Equal(t, "Primary", s.DisplayName())
}

func TestStoryPath_MissingTitleIsEmptyPath(t *testing.T) {
	s := &Story{ID: "orphan"}
	assert.Empty(t, s.Path())
}
