package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aleister1102/layoutdiff/internal/config"
	"github.com/aleister1102/layoutdiff/internal/models"
	"github.com/aleister1102/layoutdiff/internal/normalizer"
	"github.com/aleister1102/layoutdiff/internal/session"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSession(t *testing.T) *session.Session {
	t.Helper()
	s := session.NewDefaultSession(zerolog.Nop())
	s.SetDocuments(normalizer.Raw("foo\nbar\nfoo"), normalizer.Raw("bar\nbaz"))
	return s
}

func plainConfig() config.RenderConfig {
	return config.RenderConfig{
		ColorMode:    "never",
		ColumnWidth:  10,
		ContextLines: -1,
	}
}

func pad(s string) string {
	return s + strings.Repeat(" ", 10-len(s))
}

func TestRowDecorations(t *testing.T) {
	s := sampleSession(t)

	got := RowDecorations(s.Alignment())

	require.Len(t, got, 3)
	assert.Equal(t, SideDecoration{Changed: true, Class: ClassRemoved}, got[0].Left)
	assert.Equal(t, SideDecoration{Gap: true}, got[0].Right)
	assert.Equal(t, SideDecoration{}, got[1].Left)
	assert.Equal(t, SideDecoration{}, got[1].Right)
	assert.Equal(t, models.RowModified, got[2].Kind)
	assert.Equal(t, ClassModified, got[2].Side(models.SideLeft).Class)
	assert.Equal(t, ClassModified, got[2].Side(models.SideRight).Class)

	assert.Nil(t, RowDecorations(nil))
}

func TestRowDecorations_Added(t *testing.T) {
	s := session.NewDefaultSession(zerolog.Nop())
	s.SetDocuments(normalizer.Raw("a\nb"), normalizer.Raw("a\nx\nb"))

	got := RowDecorations(s.Alignment())

	require.Len(t, got, 3)
	assert.Equal(t, SideDecoration{Gap: true}, got[1].Left)
	assert.Equal(t, SideDecoration{Changed: true, Class: ClassAdded}, got[1].Right)
}

func TestMatchDecorations(t *testing.T) {
	text := "foo\nbar\nfoo"
	got := MatchDecorations(text, []models.MatchSpan{{From: 0, To: 3}, {From: 8, To: 11}}, 2)

	require.Len(t, got, 2)
	assert.False(t, got[0].Active)
	assert.Equal(t, 1, got[0].Index)
	assert.Equal(t, models.TextPosition{Line: 2, Column: 0}, got[1].Start)
	assert.Equal(t, models.TextPosition{Line: 2, Column: 3}, got[1].End)
	assert.True(t, got[1].Active)

	assert.Nil(t, MatchDecorations(text, nil, 0))
}

func TestInlineSpans(t *testing.T) {
	left, right := InlineSpans(`  "a": 1`, `  "a": 2`)

	require.Len(t, left, 1)
	require.Len(t, right, 1)
	assert.Equal(t, 7, left[0].From)
	assert.Equal(t, 8, left[0].To)
	assert.Equal(t, 7, right[0].From)

	left, right = InlineSpans("same", "same")
	assert.Empty(t, left)
	assert.Empty(t, right)
}

func TestTerminalRenderer_Plain(t *testing.T) {
	s := sampleSession(t)
	var out bytes.Buffer

	err := NewTerminalRenderer(plainConfig(), &out, zerolog.Nop()).Render(&out, s)

	require.NoError(t, err)
	want := strings.Join([]string{
		"- " + pad("foo") + " │   ",
		"  " + pad("bar") + " │   bar",
		"~ " + pad("foo") + " │ ~ baz",
		"+0 -1 ~1 (3 rows)",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestTerminalRenderer_LineNumbersAndTitles(t *testing.T) {
	s := sampleSession(t)
	cfg := plainConfig()
	cfg.ShowLineNumbers = true
	var out bytes.Buffer

	err := NewTerminalRenderer(cfg, &out, zerolog.Nop()).
		WithTitles("preview", "published").
		Render(&out, s)

	require.NoError(t, err)
	lines := strings.Split(out.String(), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "preview "))
	assert.True(t, strings.HasSuffix(lines[0], "│ published"))
	assert.Contains(t, lines[1], "┼")
	assert.True(t, strings.HasPrefix(lines[2], "  1 - foo"))
	assert.True(t, strings.HasSuffix(lines[2], "│ "+strings.Repeat(" ", 6)), "gap has no line number")
	assert.True(t, strings.HasSuffix(lines[4], "  2 ~ baz"))
}

func TestTerminalRenderer_SearchStatus(t *testing.T) {
	s := sampleSession(t)
	_, err := s.SearchSide(models.SideLeft, "foo")
	require.NoError(t, err)
	_, err = s.SearchSide(models.SideRight, "nothing")
	require.NoError(t, err)
	var out bytes.Buffer

	require.NoError(t, NewTerminalRenderer(plainConfig(), &out, zerolog.Nop()).Render(&out, s))

	assert.Contains(t, out.String(), `left: "foo" [1/2]`)
	assert.Contains(t, out.String(), `right: "nothing" (no matches)`)
}

func TestTerminalRenderer_ContextFolding(t *testing.T) {
	s := session.NewDefaultSession(zerolog.Nop())
	s.SetDocuments(normalizer.Raw("a\nb\nc\nd\ne\nf"), normalizer.Raw("a\nb\nc\nd\ne\nX"))
	cfg := plainConfig()
	cfg.ContextLines = 1
	var out bytes.Buffer

	require.NoError(t, NewTerminalRenderer(cfg, &out, zerolog.Nop()).Render(&out, s))

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "⋯ 4 unchanged rows", lines[0])
	assert.Equal(t, "  "+pad("e")+" │   e", lines[1])
	assert.Equal(t, "~ "+pad("f")+" │ ~ X", lines[2])
}

func TestTerminalRenderer_FoldKeepsMatches(t *testing.T) {
	s := session.NewDefaultSession(zerolog.Nop())
	s.SetDocuments(normalizer.Raw("a\nb\nc"), normalizer.Raw("a\nb\nc"))
	_, err := s.SearchSide(models.SideRight, "b")
	require.NoError(t, err)
	cfg := plainConfig()
	cfg.ContextLines = 0
	var out bytes.Buffer

	require.NoError(t, NewTerminalRenderer(cfg, &out, zerolog.Nop()).Render(&out, s))

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "⋯ 1 unchanged row", lines[0])
	assert.Equal(t, "  "+pad("b")+" │   b", lines[1])
	assert.Equal(t, "⋯ 1 unchanged row", lines[2])
	assert.Equal(t, "No differences (3 rows)", lines[3])
}

func TestTerminalRenderer_Color(t *testing.T) {
	s := sampleSession(t)
	_, err := s.SearchSide(models.SideLeft, "foo")
	require.NoError(t, err)
	cfg := plainConfig()
	cfg.ColorMode = "always"
	var out bytes.Buffer

	require.NoError(t, NewTerminalRenderer(cfg, &out, zerolog.Nop()).Render(&out, s))

	assert.Contains(t, out.String(), "\x1b[")
}

func TestTerminalRenderer_Empty(t *testing.T) {
	s := session.NewDefaultSession(zerolog.Nop())
	var out bytes.Buffer

	require.NoError(t, NewTerminalRenderer(plainConfig(), &out, zerolog.Nop()).Render(&out, s))

	assert.Equal(t, "No documents loaded\n", out.String())
}

func TestClip(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		width         int
		wantCut       int
		wantTruncated bool
	}{
		{name: "fits", text: "abc", width: 10, wantCut: 3},
		{name: "exact", text: "abcdefghij", width: 10, wantCut: 10},
		{name: "ascii", text: "abcdefghijklmnop", width: 10, wantCut: 9, wantTruncated: true},
		{name: "wide runes", text: "日本語日本語", width: 10, wantCut: 12, wantTruncated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cut, truncated := clip(tt.text, tt.width)
			assert.Equal(t, tt.wantCut, cut)
			assert.Equal(t, tt.wantTruncated, truncated)
		})
	}
}

func TestTerminalRenderer_Truncates(t *testing.T) {
	s := session.NewDefaultSession(zerolog.Nop())
	s.SetDocuments(normalizer.Raw("abcdefghijklmnop"), normalizer.Raw("abcdefghijklmnop"))
	var out bytes.Buffer

	require.NoError(t, NewTerminalRenderer(plainConfig(), &out, zerolog.Nop()).Render(&out, s))

	assert.True(t, strings.HasPrefix(out.String(), "  abcdefghi… │   abcdefghi…\n"))
}

func TestSplitHighlights(t *testing.T) {
	got := splitHighlights(10, []highlight{
		{from: 2, to: 6, layer: layerMatch},
		{from: 4, to: 8, layer: layerActiveMatch},
	})

	assert.Equal(t, []highlight{
		{from: 0, to: 2, layer: layerBase},
		{from: 2, to: 4, layer: layerMatch},
		{from: 4, to: 8, layer: layerActiveMatch},
		{from: 8, to: 10, layer: layerBase},
	}, got)

	assert.Equal(t, []highlight{{from: 0, to: 3, layer: layerBase}}, splitHighlights(3, nil))
	assert.Nil(t, splitHighlights(0, nil))
}

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, IsColorEnabled("always", &buf))
	assert.False(t, IsColorEnabled("never", &buf))
	assert.False(t, IsColorEnabled("auto", &buf))
}

func TestWriteJSONReport(t *testing.T) {
	s := sampleSession(t)
	_, err := s.SearchSide(models.SideLeft, "foo")
	require.NoError(t, err)
	var out bytes.Buffer

	require.NoError(t, WriteJSONReport(&out, s))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &raw))
	rows := raw["rows"].([]any)
	require.Len(t, rows, 3)
	first := rows[0].(map[string]any)
	assert.Equal(t, "removed", first["kind"])
	assert.Equal(t, float64(1), first["left_line"])
	assert.Equal(t, float64(0), first["right_line"])

	report := BuildReport(s)
	assert.Equal(t, []int{0, 2}, report.DiffRowsLeft)
	assert.Equal(t, []int{2}, report.DiffRowsRight)
	assert.Equal(t, 1, report.Stats.LinesRemoved)
	require.Len(t, report.Searches, 1)
	assert.Equal(t, models.SideLeft, report.Searches[0].Side)
	assert.Equal(t, 2, report.Searches[0].Total)
	assert.Equal(t, 1, report.Searches[0].Current)
	assert.Equal(t, models.TextPosition{Line: 2, Column: 0}, report.Searches[0].Matches[1].Start)
}

func TestBuildReport_Empty(t *testing.T) {
	report := BuildReport(session.NewDefaultSession(zerolog.Nop()))

	assert.Empty(t, report.Rows)
	assert.NotNil(t, report.DiffRowsLeft)
	assert.NotNil(t, report.DiffRowsRight)
	assert.Empty(t, report.Searches)
}
