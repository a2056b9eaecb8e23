package models

import "strings"

// MatchSpan is a half-open byte range [From, To) of one search match.
type MatchSpan struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Len returns the span length in bytes.
func (m MatchSpan) Len() int {
	return m.To - m.From
}

// TextPosition is a 0-based line/column location. Column is a byte offset
// within the line.
type TextPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Position translates a byte offset in text into a line/column location.
// Offsets past the end clamp to the end of text.
func Position(text string, offset int) TextPosition {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	before := text[:offset]
	line := strings.Count(before, "\n")
	col := offset
	if idx := strings.LastIndexByte(before, '\n'); idx >= 0 {
		col = offset - idx - 1
	}
	return TextPosition{Line: line, Column: col}
}
