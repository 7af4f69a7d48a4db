package summarize

import (
	"testing"

	"storydoc/internal/story"

	"github.com/stretchr/testify/assert"
)

func TestBuildOverviewPrompt_ListsHierarchy(t *testing.T) {
	prompt := buildOverviewPrompt([]story.Story{
		{ID: "components-button--primary", Title: "Components/Button", Name: "Primary"},
		{ID: "orphan"},
	})

	assert.Contains(t, prompt, "- Components/Button / Primary")
	assert.Contains(t, prompt, "- orphan")
}

func TestCleanOverview_StripsWrappingFence(t *testing.T) {
	assert.Equal(t, "A button library.", cleanOverview("```markdown\nA button library.\n```"))
	assert.Equal(t, "A button library.", cleanOverview("  A button library.\n"))
}
