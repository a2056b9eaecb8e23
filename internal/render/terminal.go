package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/aleister1102/layoutdiff/internal/config"
	"github.com/aleister1102/layoutdiff/internal/models"
	"github.com/aleister1102/layoutdiff/internal/search"
	"github.com/aleister1102/layoutdiff/internal/session"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"
)

const (
	ellipsis       = "…"
	columnDivider  = " │ "
	foldMarker     = "⋯"
	minNumberWidth = 3
)

// Highlight layers, higher wins.
const (
	layerBase = iota
	layerInline
	layerMatch
	layerActiveMatch
)

type highlight struct {
	from, to int
	layer    int
}

// TerminalRenderer writes an aligned comparison as two columns.
type TerminalRenderer struct {
	cfg          config.RenderConfig
	styles       *Styles
	colorEnabled bool
	titles       [2]string
	logger       zerolog.Logger
}

// NewTerminalRenderer creates a renderer for out. The color mode in cfg is
// resolved against out.
func NewTerminalRenderer(cfg config.RenderConfig, out io.Writer, logger zerolog.Logger) *TerminalRenderer {
	if cfg.ColumnWidth <= 0 {
		cfg.ColumnWidth = config.DefaultRenderColumnWidth
	}
	colorEnabled := IsColorEnabled(cfg.ColorMode, out)
	return &TerminalRenderer{
		cfg:          cfg,
		styles:       NewStyles(out, colorEnabled),
		colorEnabled: colorEnabled,
		logger:       logger.With().Str("component", "TerminalRenderer").Logger(),
	}
}

// WithTitles sets the column headings.
func (r *TerminalRenderer) WithTitles(left, right string) *TerminalRenderer {
	r.titles = [2]string{left, right}
	return r
}

// Render writes the current alignment and search highlights of s to w.
func (r *TerminalRenderer) Render(w io.Writer, s *session.Session) error {
	result := s.Alignment()
	var b strings.Builder

	numberWidth := r.numberWidth(result)
	if r.titles[0] != "" || r.titles[1] != "" {
		r.writeHeader(&b, numberWidth)
	}

	decorations := RowDecorations(result)
	highlights := [2]map[int][]highlight{
		matchHighlights(s.AlignedText(models.SideLeft), s.Search(models.SideLeft)),
		matchHighlights(s.AlignedText(models.SideRight), s.Search(models.SideRight)),
	}
	visible := r.visibleRows(decorations, highlights)

	lineNumbers := [2]int{}
	folded := 0
	for row, d := range decorations {
		for _, side := range models.Sides {
			if !d.Side(side).Gap {
				lineNumbers[side.Index()]++
			}
		}
		if !visible[row] {
			folded++
			continue
		}
		if folded > 0 {
			r.writeFold(&b, folded)
			folded = 0
		}
		r.writeRow(&b, result, d, lineNumbers, numberWidth, highlights)
	}
	if folded > 0 {
		r.writeFold(&b, folded)
	}

	r.writeSummary(&b, s)
	r.logger.Debug().Int("rows", len(decorations)).Bool("color", r.colorEnabled).Msg("Comparison rendered")

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *TerminalRenderer) numberWidth(result *models.AlignmentResult) int {
	if !r.cfg.ShowLineNumbers {
		return 0
	}
	n := len(result.ContentLines(models.SideLeft))
	if m := len(result.ContentLines(models.SideRight)); m > n {
		n = m
	}
	if w := len(strconv.Itoa(n)); w > minNumberWidth {
		return w
	}
	return minNumberWidth
}

// cellWidth is the display width of one column including its gutter.
func (r *TerminalRenderer) cellWidth(numberWidth int) int {
	width := r.cfg.ColumnWidth + 2
	if numberWidth > 0 {
		width += numberWidth + 1
	}
	return width
}

func (r *TerminalRenderer) writeHeader(b *strings.Builder, numberWidth int) {
	width := r.cellWidth(numberWidth)
	left := runewidth.FillRight(runewidth.Truncate(r.titles[0], width, ellipsis), width)
	right := runewidth.Truncate(r.titles[1], width, ellipsis)

	b.WriteString(r.paint(r.styles.Title, left))
	b.WriteString(r.paint(r.styles.Separator, columnDivider))
	b.WriteString(r.paint(r.styles.Title, right))
	b.WriteString("\n")
	b.WriteString(r.paint(r.styles.Separator, strings.Repeat("─", width)+"─┼─"+strings.Repeat("─", width)))
	b.WriteString("\n")
}

func (r *TerminalRenderer) writeFold(b *strings.Builder, n int) {
	label := fmt.Sprintf("%s %d unchanged rows", foldMarker, n)
	if n == 1 {
		label = fmt.Sprintf("%s 1 unchanged row", foldMarker)
	}
	b.WriteString(r.paint(r.styles.Fold, label))
	b.WriteString("\n")
}

func (r *TerminalRenderer) writeRow(b *strings.Builder, result *models.AlignmentResult, d RowDecoration, lineNumbers [2]int, numberWidth int, highlights [2]map[int][]highlight) {
	lines := [2]string{result.AlignedLinesLeft[d.Row], result.AlignedLinesRight[d.Row]}

	var inline [2][]highlight
	if d.Kind == models.RowModified {
		leftSpans, rightSpans := InlineSpans(lines[0], lines[1])
		for _, sp := range leftSpans {
			inline[0] = append(inline[0], highlight{from: sp.From, to: sp.To, layer: layerInline})
		}
		for _, sp := range rightSpans {
			inline[1] = append(inline[1], highlight{from: sp.From, to: sp.To, layer: layerInline})
		}
	}

	for _, side := range models.Sides {
		idx := side.Index()
		sd := d.Side(side)
		hl := append(inline[idx], highlights[idx][d.Row]...)

		if numberWidth > 0 {
			number := ""
			if !sd.Gap {
				number = strconv.Itoa(lineNumbers[idx])
			}
			b.WriteString(r.paint(r.styles.LineNumber, fmt.Sprintf("%*s", numberWidth, number)))
			b.WriteString(" ")
		}
		b.WriteString(r.paint(r.baseStyle(sd.Class), marker(sd)))
		b.WriteString(" ")
		b.WriteString(r.renderCell(lines[idx], sd.Class, hl, side == models.SideLeft))

		if side == models.SideLeft {
			b.WriteString(r.paint(r.styles.Separator, columnDivider))
		}
	}
	b.WriteString("\n")
}

func marker(sd SideDecoration) string {
	switch sd.Class {
	case ClassAdded:
		return "+"
	case ClassRemoved:
		return "-"
	case ClassModified:
		return "~"
	default:
		return " "
	}
}

// renderCell clips line to the column width and applies highlights. pad
// fills the cell to its full width.
func (r *TerminalRenderer) renderCell(line, class string, hl []highlight, pad bool) string {
	line = strings.Map(func(c rune) rune {
		if c == '\t' || c == '\r' {
			return ' '
		}
		return c
	}, line)

	cut, truncated := clip(line, r.cfg.ColumnWidth)
	visible := line[:cut]

	var b strings.Builder
	for _, piece := range splitHighlights(len(visible), hl) {
		b.WriteString(r.paint(r.layerStyle(class, piece.layer), visible[piece.from:piece.to]))
	}

	width := runewidth.StringWidth(visible)
	if truncated {
		b.WriteString(r.paint(r.styles.Dim, ellipsis))
		width += runewidth.StringWidth(ellipsis)
	}
	if pad && width < r.cfg.ColumnWidth {
		b.WriteString(strings.Repeat(" ", r.cfg.ColumnWidth-width))
	}
	return b.String()
}

// clip returns the byte length of the prefix of text that fits in width
// display cells, leaving room for an ellipsis when text is cut.
func clip(text string, width int) (int, bool) {
	if runewidth.StringWidth(text) <= width {
		return len(text), false
	}
	limit := width - runewidth.StringWidth(ellipsis)
	used := 0
	for i, c := range text {
		w := runewidth.RuneWidth(c)
		if used+w > limit {
			return i, true
		}
		used += w
	}
	return len(text), false
}

// splitHighlights partitions [0, n) into consecutive pieces labeled with the
// highest highlight layer covering them.
func splitHighlights(n int, hl []highlight) []highlight {
	if n == 0 {
		return nil
	}

	bounds := []int{0, n}
	for _, h := range hl {
		if h.from > 0 && h.from < n {
			bounds = append(bounds, h.from)
		}
		if h.to > 0 && h.to < n {
			bounds = append(bounds, h.to)
		}
	}
	sort.Ints(bounds)

	var pieces []highlight
	for i := 0; i+1 < len(bounds); i++ {
		from, to := bounds[i], bounds[i+1]
		if from == to {
			continue
		}
		layer := layerBase
		for _, h := range hl {
			if h.from <= from && to <= h.to && h.layer > layer {
				layer = h.layer
			}
		}
		if last := len(pieces) - 1; last >= 0 && pieces[last].layer == layer {
			pieces[last].to = to
			continue
		}
		pieces = append(pieces, highlight{from: from, to: to, layer: layer})
	}
	return pieces
}

func (r *TerminalRenderer) baseStyle(class string) lipgloss.Style {
	switch class {
	case ClassAdded:
		return r.styles.Added
	case ClassRemoved:
		return r.styles.Removed
	case ClassModified:
		return r.styles.Modified
	default:
		return r.styles.Unchanged
	}
}

func (r *TerminalRenderer) layerStyle(class string, layer int) lipgloss.Style {
	switch layer {
	case layerActiveMatch:
		return r.styles.ActiveMatch
	case layerMatch:
		return r.styles.Match
	case layerInline:
		switch class {
		case ClassAdded:
			return r.styles.AddedInline
		case ClassRemoved:
			return r.styles.RemovedInline
		default:
			return r.styles.ModifiedInline
		}
	default:
		return r.baseStyle(class)
	}
}

func (r *TerminalRenderer) paint(style lipgloss.Style, text string) string {
	if !r.colorEnabled || text == "" {
		return text
	}
	return style.Render(text)
}

// visibleRows marks the rows kept by context folding. Changed rows and rows
// holding a match are always shown.
func (r *TerminalRenderer) visibleRows(decorations []RowDecoration, highlights [2]map[int][]highlight) []bool {
	visible := make([]bool, len(decorations))
	if r.cfg.ContextLines < 0 {
		for i := range visible {
			visible[i] = true
		}
		return visible
	}

	for row, d := range decorations {
		_, leftMatch := highlights[0][row]
		_, rightMatch := highlights[1][row]
		if !d.Left.Changed && !d.Right.Changed && !leftMatch && !rightMatch {
			continue
		}
		from := max(0, row-r.cfg.ContextLines)
		to := min(len(decorations)-1, row+r.cfg.ContextLines)
		for i := from; i <= to; i++ {
			visible[i] = true
		}
	}
	return visible
}

// matchHighlights groups the matches of state by row, with byte columns
// relative to each row. A match spanning a newline is split per row.
func matchHighlights(text string, state search.State) map[int][]highlight {
	decorations := MatchDecorations(text, state.Matches, state.Current)
	if len(decorations) == 0 {
		return nil
	}

	lines := models.SplitLines(text)
	byRow := make(map[int][]highlight)
	for _, d := range decorations {
		layer := layerMatch
		if d.Active {
			layer = layerActiveMatch
		}
		for line := d.Start.Line; line <= d.End.Line && line < len(lines); line++ {
			from, to := 0, len(lines[line])
			if line == d.Start.Line {
				from = d.Start.Column
			}
			if line == d.End.Line {
				to = d.End.Column
			}
			if from < to {
				byRow[line] = append(byRow[line], highlight{from: from, to: to, layer: layer})
			}
		}
	}
	return byRow
}

func (r *TerminalRenderer) writeSummary(b *strings.Builder, s *session.Session) {
	result := s.Alignment()
	if result == nil {
		b.WriteString(r.paint(r.styles.Dim, "No documents loaded"))
		b.WriteString("\n")
		return
	}

	stats := result.Stats
	var summary string
	if stats.IsIdentical {
		summary = "No differences"
	} else {
		summary = fmt.Sprintf("+%d -%d ~%d", stats.LinesAdded, stats.LinesRemoved, stats.LinesModified)
	}
	b.WriteString(r.paint(r.styles.Summary, summary))
	b.WriteString(r.paint(r.styles.Dim, fmt.Sprintf(" (%d rows)", result.RowCount())))
	b.WriteString("\n")

	if result.Fallback {
		b.WriteString(r.paint(r.styles.Dim, "alignment fell back to positional comparison"))
		b.WriteString("\n")
	}

	for _, side := range models.Sides {
		state := s.Search(side)
		if !state.Active() {
			continue
		}
		var status string
		if state.Total() == 0 {
			status = fmt.Sprintf("%s: %q (no matches)", side, state.Query)
		} else {
			status = fmt.Sprintf("%s: %q [%d/%d]", side, state.Query, state.Current, state.Total())
		}
		b.WriteString(r.paint(r.styles.Dim, status))
		b.WriteString("\n")
	}
}
