package render

import (
	"fmt"
	"strings"

	"storydoc/internal/extract"
)

// FormatContent renders a story's extracted content as Markdown subsections:
// one heading plus fenced block per unique code example, one heading plus
// table per args table. Subsection headings sit one level below the story's
// leaf heading. Empty content produces no output and is never an error.
func FormatContent(storyLevel int, content *extract.Content) string {
	if content.Empty() {
		return ""
	}

	var sb strings.Builder
	level := storyLevel + 1

	writeCodeBlocks(&sb, level, content.CodeBlocks)
	writeTables(&sb, level, content.Tables)
	return sb.String()
}

// writeCodeBlocks emits code examples in input order. Duplicates (identical
// normalized code text, wherever they came from on the page) are suppressed
// before numbering, so indices have no gaps.
func writeCodeBlocks(sb *strings.Builder, level int, blocks []extract.CodeBlock) {
	seen := make(map[string]bool, len(blocks))
	n := 0
	for _, block := range blocks {
		code := extract.NormalizeCode(block.Code)
		if seen[code] {
			continue
		}
		seen[code] = true
		n++

		fmt.Fprintf(sb, "%s Code example %d\n\n", hashes(level), n)
		sb.WriteString("```" + block.Language + "\n")
		sb.WriteString(code + "\n")
		sb.WriteString("```\n\n")
	}
}

// writeTables emits args tables in input order. A table with neither headers
// nor rows contributes nothing and takes no index. Missing headers are
// synthesized from the width of the first row. Short rows are right-padded
// to the header width; wider rows are emitted untruncated, keeping the raw
// cell count visible to downstream consumers.
func writeTables(sb *strings.Builder, level int, tables []extract.Table) {
	n := 0
	for _, table := range tables {
		headers := table.Headers
		if len(headers) == 0 {
			if len(table.Rows) == 0 {
				continue
			}
			headers = synthesizeHeaders(len(table.Rows[0]))
		}
		if len(headers) == 0 {
			continue
		}
		n++

		fmt.Fprintf(sb, "%s Props table %d\n\n", hashes(level), n)
		writeRow(sb, headers)

		separator := make([]string, len(headers))
		for i := range separator {
			separator[i] = "---"
		}
		writeRow(sb, separator)

		for _, row := range table.Rows {
			for len(row) < len(headers) {
				row = append(row, "")
			}
			writeRow(sb, row)
		}
		sb.WriteString("\n")
	}
}

func synthesizeHeaders(width int) []string {
	headers := make([]string, width)
	for i := range headers {
		headers[i] = fmt.Sprintf("Column %d", i+1)
	}
	return headers
}

func writeRow(sb *strings.Builder, cells []string) {
	sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
}

func hashes(level int) string {
	return strings.Repeat("#", level)
}
