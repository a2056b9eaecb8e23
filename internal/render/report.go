package render

import (
	"encoding/json"
	"io"

	"github.com/aleister1102/layoutdiff/internal/models"
	"github.com/aleister1102/layoutdiff/internal/session"
)

// ReportRow is one aligned row. Line numbers are 1-based, 0 on a gap.
type ReportRow struct {
	Row       int            `json:"row"`
	Kind      models.RowKind `json:"kind"`
	Left      string         `json:"left"`
	Right     string         `json:"right"`
	LeftLine  int            `json:"left_line"`
	RightLine int            `json:"right_line"`
}

// SearchReport is the search state of one side.
type SearchReport struct {
	Side    models.Side       `json:"side"`
	Query   string            `json:"query"`
	Regex   bool              `json:"regex"`
	Total   int               `json:"total"`
	Current int               `json:"current"`
	Matches []MatchDecoration `json:"matches"`
}

// Report is the machine-readable form of a comparison.
type Report struct {
	Rows          []ReportRow           `json:"rows"`
	DiffRowsLeft  []int                 `json:"diff_rows_left"`
	DiffRowsRight []int                 `json:"diff_rows_right"`
	Stats         models.DiffStatistics `json:"stats"`
	Fallback      bool                  `json:"fallback"`
	Searches      []SearchReport        `json:"searches,omitempty"`
}

// BuildReport captures the alignment and active searches of s.
func BuildReport(s *session.Session) Report {
	result := s.Alignment()
	report := Report{
		Rows:          make([]ReportRow, 0, result.RowCount()),
		DiffRowsLeft:  nonNil(result.DiffRows(models.SideLeft)),
		DiffRowsRight: nonNil(result.DiffRows(models.SideRight)),
	}
	if result != nil {
		report.Stats = result.Stats
		report.Fallback = result.Fallback
	}

	lineNumbers := [2]int{}
	for _, d := range RowDecorations(result) {
		row := ReportRow{
			Row:   d.Row,
			Kind:  d.Kind,
			Left:  result.AlignedLinesLeft[d.Row],
			Right: result.AlignedLinesRight[d.Row],
		}
		if !d.Left.Gap {
			lineNumbers[0]++
			row.LeftLine = lineNumbers[0]
		}
		if !d.Right.Gap {
			lineNumbers[1]++
			row.RightLine = lineNumbers[1]
		}
		report.Rows = append(report.Rows, row)
	}

	for _, side := range models.Sides {
		state := s.Search(side)
		if !state.Active() {
			continue
		}
		report.Searches = append(report.Searches, SearchReport{
			Side:    side,
			Query:   state.Query,
			Regex:   state.Regex,
			Total:   state.Total(),
			Current: state.Current,
			Matches: MatchDecorations(s.AlignedText(side), state.Matches, state.Current),
		})
	}

	return report
}

// WriteJSONReport writes the report of s as indented JSON.
func WriteJSONReport(w io.Writer, s *session.Session) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(BuildReport(s))
}

func nonNil(rows []int) []int {
	if rows == nil {
		return []int{}
	}
	return rows
}
