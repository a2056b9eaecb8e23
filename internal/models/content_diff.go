package models

import "sort"

// RowKind classifies one aligned row.
type RowKind int

const (
	// RowUnchanged indicates the same line on both sides.
	RowUnchanged RowKind = 0
	// RowAdded indicates a line present only on the right; the left side is a gap.
	RowAdded RowKind = 1
	// RowRemoved indicates a line present only on the left; the right side is a gap.
	RowRemoved RowKind = -1
	// RowModified indicates differing lines paired on the same row.
	RowModified RowKind = 2
)

// String returns the decoration class name of the row kind.
func (k RowKind) String() string {
	switch k {
	case RowAdded:
		return "added"
	case RowRemoved:
		return "removed"
	case RowModified:
		return "modified"
	default:
		return "unchanged"
	}
}

// MarshalText renders the kind by name in JSON reports.
func (k RowKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IsGap reports whether side holds a placeholder rather than content for this kind.
func (k RowKind) IsGap(side Side) bool {
	switch side {
	case SideLeft:
		return k == RowAdded
	case SideRight:
		return k == RowRemoved
	default:
		return false
	}
}

// DiffStatistics holds per-comparison line counts.
type DiffStatistics struct {
	LinesAdded     int  `json:"lines_added"`
	LinesRemoved   int  `json:"lines_removed"`
	LinesModified  int  `json:"lines_modified"`
	LinesUnchanged int  `json:"lines_unchanged"`
	IsIdentical    bool `json:"is_identical"`
}

// AlignmentResult is the row-level alignment of two documents. Both aligned
// line slices have the same length and index i of each is the same row.
type AlignmentResult struct {
	AlignedLinesLeft  []string       `json:"aligned_lines_left"`
	AlignedLinesRight []string       `json:"aligned_lines_right"`
	Kinds             []RowKind      `json:"kinds"`
	DiffRowsLeft      []int          `json:"diff_rows_left"`
	DiffRowsRight     []int          `json:"diff_rows_right"`
	Stats             DiffStatistics `json:"stats"`
	// Fallback is set when the row bound was hit and the positional
	// comparison produced this result.
	Fallback bool `json:"fallback"`
}

// RowCount returns the number of aligned rows.
func (r *AlignmentResult) RowCount() int {
	if r == nil {
		return 0
	}
	return len(r.AlignedLinesLeft)
}

// AlignedLines returns the aligned line slice for side.
func (r *AlignmentResult) AlignedLines(side Side) []string {
	if r == nil {
		return nil
	}
	if side == SideRight {
		return r.AlignedLinesRight
	}
	return r.AlignedLinesLeft
}

// AlignedText joins the aligned lines of side with "\n".
func (r *AlignmentResult) AlignedText(side Side) string {
	return JoinLines(r.AlignedLines(side))
}

// DiffRows returns the diff row set for side.
func (r *AlignmentResult) DiffRows(side Side) []int {
	if r == nil {
		return nil
	}
	if side == SideRight {
		return r.DiffRowsRight
	}
	return r.DiffRowsLeft
}

// IsDiffRow reports whether row is marked as differing on side.
func (r *AlignmentResult) IsDiffRow(side Side, row int) bool {
	rows := r.DiffRows(side)
	i := sort.SearchInts(rows, row)
	return i < len(rows) && rows[i] == row
}

// ContentLines returns the non-gap lines of side in order, which reproduce
// the original document lines.
func (r *AlignmentResult) ContentLines(side Side) []string {
	if r == nil {
		return nil
	}
	lines := r.AlignedLines(side)
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if r.Kinds[i].IsGap(side) {
			continue
		}
		out = append(out, line)
	}
	return out
}
