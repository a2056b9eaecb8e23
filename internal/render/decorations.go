package render

import (
	"github.com/aleister1102/layoutdiff/internal/differ"
	"github.com/aleister1102/layoutdiff/internal/models"
)

// Decoration classes applied to one side of a row.
const (
	ClassAdded    = "added"
	ClassRemoved  = "removed"
	ClassModified = "modified"
)

// SideDecoration describes how one side of a row is marked.
type SideDecoration struct {
	Changed bool   `json:"changed"`
	Gap     bool   `json:"gap"`
	Class   string `json:"class,omitempty"`
}

// RowDecoration is the marking of one aligned row on both sides.
type RowDecoration struct {
	Row   int            `json:"row"`
	Kind  models.RowKind `json:"kind"`
	Left  SideDecoration `json:"left"`
	Right SideDecoration `json:"right"`
}

// Side returns the decoration of side.
func (d RowDecoration) Side(side models.Side) SideDecoration {
	if side == models.SideRight {
		return d.Right
	}
	return d.Left
}

// RowDecorations maps an alignment to per-row markings.
func RowDecorations(result *models.AlignmentResult) []RowDecoration {
	n := result.RowCount()
	if n == 0 {
		return nil
	}

	decorations := make([]RowDecoration, n)
	for row := 0; row < n; row++ {
		kind := result.Kinds[row]
		decorations[row] = RowDecoration{
			Row:   row,
			Kind:  kind,
			Left:  sideDecoration(result, kind, models.SideLeft, row),
			Right: sideDecoration(result, kind, models.SideRight, row),
		}
	}
	return decorations
}

func sideDecoration(result *models.AlignmentResult, kind models.RowKind, side models.Side, row int) SideDecoration {
	d := SideDecoration{
		Changed: result.IsDiffRow(side, row),
		Gap:     kind.IsGap(side),
	}
	if !d.Changed {
		return d
	}
	switch kind {
	case models.RowAdded:
		d.Class = ClassAdded
	case models.RowRemoved:
		d.Class = ClassRemoved
	default:
		d.Class = ClassModified
	}
	return d
}

// MatchDecoration is one search match resolved to line/column positions.
type MatchDecoration struct {
	Index  int                 `json:"index"`
	Span   models.MatchSpan    `json:"span"`
	Start  models.TextPosition `json:"start"`
	End    models.TextPosition `json:"end"`
	Active bool                `json:"active"`
}

// MatchDecorations resolves matches in text. current is the 1-based active
// match, 0 for none.
func MatchDecorations(text string, matches []models.MatchSpan, current int) []MatchDecoration {
	if len(matches) == 0 {
		return nil
	}

	decorations := make([]MatchDecoration, len(matches))
	for i, m := range matches {
		decorations[i] = MatchDecoration{
			Index:  i + 1,
			Span:   m,
			Start:  models.Position(text, m.From),
			End:    models.Position(text, m.To),
			Active: i+1 == current,
		}
	}
	return decorations
}

var inlineDiffer = differ.NewInlineDiffer(differ.DefaultDiffConfig())

// InlineSpans returns the changed byte ranges inside a modified row.
func InlineSpans(left, right string) (leftSpans, rightSpans []differ.InlineSpan) {
	return inlineDiffer.Spans(left, right)
}
