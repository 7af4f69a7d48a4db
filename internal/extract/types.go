// Package extract defines the content extracted from a rendered docs page and
// the capability interface used to obtain it, so the rest of the pipeline
// never depends on any particular markup shape.
package extract

import "strings"

// CodeBlock is one code example scraped from a docs page. Code keeps its
// internal newlines verbatim; only trailing whitespace is normalized.
type CodeBlock struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// Table is one props/arguments table. Headers may be empty; rows may have
// irregular widths, which the renderer reconciles on emission.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Content is everything extracted for a single story, in document order.
type Content struct {
	CodeBlocks []CodeBlock `json:"codeBlocks"`
	Tables     []Table     `json:"tables"`
}

// Empty reports whether the content contributes nothing to the document.
func (c *Content) Empty() bool {
	return c == nil || (len(c.CodeBlocks) == 0 && len(c.Tables) == 0)
}

// NormalizeCode strips trailing spaces before each newline and trailing
// whitespace at the end of the snippet. Internal blank lines and indentation
// are preserved verbatim. Two code blocks are duplicates iff their normalized
// text is identical.
func NormalizeCode(code string) string {
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), " \t\n")
}
