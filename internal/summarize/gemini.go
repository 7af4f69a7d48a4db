// Package summarize produces the optional document overview paragraph.
package summarize

import (
	"context"
	"fmt"
	"strings"

	"storydoc/internal/story"

	"google.golang.org/genai"
)

// Summarizer writes a short overview of the exported hierarchy. A failing
// summarizer never fails the export; the driver just leaves the overview
// out.
type Summarizer interface {
	Overview(ctx context.Context, stories []story.Story) (string, error)
}

// GeminiSummarizer implements Summarizer using Gemini text generation.
type GeminiSummarizer struct {
	client *genai.Client
	model  string
}

func NewGeminiSummarizer(ctx context.Context, apiKey string, modelName string) (*GeminiSummarizer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiSummarizer{client: client, model: modelName}, nil
}

func (s *GeminiSummarizer) Overview(ctx context.Context, stories []story.Story) (string, error) {
	contents := genai.Text(buildOverviewPrompt(stories))
	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, nil)
	if err != nil {
		return "", err
	}
	return cleanOverview(resp.Text()), nil
}

func buildOverviewPrompt(stories []story.Story) string {
	var sb strings.Builder
	sb.WriteString("Write one short paragraph (3 sentences max, plain prose, no headings) ")
	sb.WriteString("introducing a component library documented by the following story hierarchy:\n\n")
	for _, s := range stories {
		sb.WriteString("- ")
		if s.Title != "" {
			sb.WriteString(s.Title + " / ")
		}
		sb.WriteString(s.DisplayName() + "\n")
	}
	return sb.String()
}

// cleanOverview strips a wrapping markdown fence the model sometimes adds
// and collapses the response to a single block of prose.
func cleanOverview(text string) string {
	text = strings.TrimSpace(text)
	if after, ok := strings.CutPrefix(text, "```"); ok {
		if idx := strings.Index(after, "\n"); idx >= 0 {
			after = after[idx+1:]
		}
		after = strings.TrimSuffix(strings.TrimSpace(after), "```")
		text = strings.TrimSpace(after)
	}
	return text
}
