package extract

import "context"

// PageExtractor produces the extracted content for one rendered story page.
// Implementations own all browser/DOM concerns; a failed story returns a
// recoverable error and the caller decides whether to keep going.
type PageExtractor interface {
	Extract(ctx context.Context, storyID string) (*Content, error)
}
