// Package render turns the story hierarchy and per-story extracted content
// into one linear Markdown document whose heading nesting mirrors the
// sidebar tree.
package render

import (
	"storydoc/internal/story"
)

// Heading is one Markdown heading line: Level is the number of '#'
// characters, 1-indexed from the shallowest depth.
type Heading struct {
	Level int
	Text  string
}

// EmitHeadings produces the minimal headings needed to move from the
// previously emitted path to the current one, plus the story's own leaf
// heading. It is a pure function; advancing the cursor is the caller's job.
//
// Once an index diverges from the previous path, every remaining segment is
// re-emitted, including the case where the previous path is longer than the
// current one at that index. The leaf heading at len(current)+1 is
// unconditional: every story produces exactly one, even when its path is
// empty or unchanged. Depth is not capped; hierarchies are caller-controlled.
func EmitHeadings(current, previous story.Path, leaf string) []Heading {
	headings := make([]Heading, 0, len(current)+1)
	diverged := false
	for i, segment := range current {
		if !diverged && (i >= len(previous) || previous[i] != segment) {
			diverged = true
		}
		if diverged {
			headings = append(headings, Heading{Level: i + 1, Text: segment})
		}
	}
	return append(headings, Heading{Level: len(current) + 1, Text: leaf})
}

// Cursor tracks the path of the most recently emitted story within a single
// document-generation run. It must be advanced strictly sequentially, once
// per story in manifest order, whether or not the story's content extraction
// succeeded.
type Cursor struct {
	prev story.Path
}

// Emit returns the headings for s and advances the cursor to its path.
func (c *Cursor) Emit(s *story.Story) []Heading {
	path := s.Path()
	headings := EmitHeadings(path, c.prev, s.DisplayName())
	c.prev = path
	return headings
}

// Path returns the cursor's current position.
func (c *Cursor) Path() story.Path {
	return c.prev
}
