package models

import "strings"

// SourceKind records which variant of input a Document was built from.
type SourceKind string

const (
	SourceRaw        SourceKind = "raw"
	SourceStructured SourceKind = "structured"
)

// Document is the immutable canonical text of one comparison input.
type Document struct {
	Source SourceKind `json:"source"`
	Text   string     `json:"text"`
	lines  []string
}

// NewDocument wraps canonical text. The text is not re-normalized.
func NewDocument(source SourceKind, text string) Document {
	return Document{
		Source: source,
		Text:   text,
		lines:  SplitLines(text),
	}
}

// Lines returns a copy of the document lines.
func (d Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// LineCount returns the number of lines in the canonical text.
func (d Document) LineCount() int {
	return len(d.lines)
}

// IsEmpty reports whether the document has no content at all.
func (d Document) IsEmpty() bool {
	return d.Text == ""
}

// Equal reports whether both documents come from the same kind of input and
// carry the same canonical text.
func (d Document) Equal(other Document) bool {
	return d.Source == other.Source && d.Text == other.Text
}

// SplitLines splits text on "\n". A single trailing newline terminates the
// last line rather than starting a new one, and "" has zero lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// JoinLines is the inverse of SplitLines for aligned output.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
