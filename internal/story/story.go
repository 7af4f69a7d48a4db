// Package story defines the manifest-facing data model: a story's identity
// and its slash-delimited hierarchy path.
package story

import "strings"

// Path is the ordered sequence of hierarchy segments derived from a story
// title. Segment order is significant; two paths are equal iff every segment
// at every index matches.
type Path []string

// ParsePath splits a title on "/" and discards empty segments. A title with
// no "/" yields a single-segment path; an empty title yields an empty path.
func ParsePath(title string) Path {
	parts := strings.Split(title, "/")
	p := make(Path, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		p = append(p, part)
	}
	return p
}

// SharedPrefixLen returns the number of leading segments p and other have in
// common.
func (p Path) SharedPrefixLen(other Path) int {
	n := 0
	for n < len(p) && n < len(other) && p[n] == other[n] {
		n++
	}
	return n
}

// Equal reports whether p and other match at every index.
func (p Path) Equal(other Path) bool {
	return len(p) == len(other) && p.SharedPrefixLen(other) == len(p)
}

// String renders the path back in slash-delimited form.
func (p Path) String() string {
	return strings.Join(p, "/")
}

// Story is one documented unit from the manifest. It is read-only for the
// duration of a document generation run.
type Story struct {
	ID    string
	Title string
	Name  string
}

// DisplayName returns the story's display label, falling back to its id.
func (s *Story) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.ID
}

// Path derives the hierarchy path from the story title. The display name is
// not part of the path; a story without a title degenerates to an empty path
// and contributes only its leaf heading.
func (s *Story) Path() Path {
	return ParsePath(s.Title)
}
