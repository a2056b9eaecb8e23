package differ

import (
	"testing"

	"github.com/aleister1102/layoutdiff/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffProcessor_ProcessAlignment_Identical(t *testing.T) {
	dp := NewDiffProcessor(DefaultDiffConfig())

	builder, ok := dp.ProcessAlignment([]string{"a", "b", "c"}, []string{"a", "b", "c"})
	require.True(t, ok)
	result := builder.Build()

	assert.Equal(t, []string{"a", "b", "c"}, result.AlignedLinesLeft)
	assert.Equal(t, []string{"a", "b", "c"}, result.AlignedLinesRight)
	assert.Empty(t, result.DiffRowsLeft)
	assert.Empty(t, result.DiffRowsRight)
}

func TestDiffProcessor_ProcessAlignment_Insertion(t *testing.T) {
	dp := NewDiffProcessor(DefaultDiffConfig())

	builder, ok := dp.ProcessAlignment([]string{"a", "b"}, []string{"a", "x", "b"})
	require.True(t, ok)
	result := builder.Build()

	assert.Equal(t, []string{"a", "", "b"}, result.AlignedLinesLeft)
	assert.Equal(t, []string{"a", "x", "b"}, result.AlignedLinesRight)
	assert.Equal(t, []models.RowKind{models.RowUnchanged, models.RowAdded, models.RowUnchanged}, result.Kinds)
	assert.Empty(t, result.DiffRowsLeft)
	assert.Equal(t, []int{1}, result.DiffRowsRight)
}

func TestDiffProcessor_ProcessAlignment_Deletion(t *testing.T) {
	dp := NewDiffProcessor(DefaultDiffConfig())

	builder, ok := dp.ProcessAlignment([]string{"a", "x", "b"}, []string{"a", "b"})
	require.True(t, ok)
	result := builder.Build()

	assert.Equal(t, []string{"a", "x", "b"}, result.AlignedLinesLeft)
	assert.Equal(t, []string{"a", "", "b"}, result.AlignedLinesRight)
	assert.Equal(t, []int{1}, result.DiffRowsLeft)
	assert.Empty(t, result.DiffRowsRight)
}

func TestDiffProcessor_ProcessAlignment_Modified(t *testing.T) {
	dp := NewDiffProcessor(DefaultDiffConfig())

	builder, ok := dp.ProcessAlignment([]string{"a", "b", "c"}, []string{"a", "B", "c"})
	require.True(t, ok)
	result := builder.Build()

	assert.Equal(t, []models.RowKind{models.RowUnchanged, models.RowModified, models.RowUnchanged}, result.Kinds)
	assert.Equal(t, []int{1}, result.DiffRowsLeft)
	assert.Equal(t, []int{1}, result.DiffRowsRight)
}

func TestDiffProcessor_ProcessAlignment_TieBreakPrefersInsertion(t *testing.T) {
	dp := NewDiffProcessor(DefaultDiffConfig())

	// left[0]="p" appears in right at distance 1 and right[0]="q" appears in
	// left at distance 1: the right line is taken as an insertion.
	builder, ok := dp.ProcessAlignment([]string{"p", "q"}, []string{"q", "p"})
	require.True(t, ok)
	result := builder.Build()

	assert.Equal(t, models.RowAdded, result.Kinds[0])
	assert.Equal(t, "q", result.AlignedLinesRight[0])
	assert.Equal(t, "", result.AlignedLinesLeft[0])
}

func TestDiffProcessor_ProcessAlignment_NearerMatchWins(t *testing.T) {
	dp := NewDiffProcessor(DefaultDiffConfig())

	// left[0]="a" is 3 ahead in right, right[0]="z" is 1 ahead in left:
	// the nearer match makes left[0] a deletion.
	builder, ok := dp.ProcessAlignment([]string{"a", "z"}, []string{"z", "m", "n", "a"})
	require.True(t, ok)
	result := builder.Build()

	assert.Equal(t, models.RowRemoved, result.Kinds[0])
	assert.Equal(t, "a", result.AlignedLinesLeft[0])
	assert.Equal(t, models.RowUnchanged, result.Kinds[1])
}

func TestDiffProcessor_ProcessAlignment_WindowLimit(t *testing.T) {
	cfg := DefaultDiffConfig()
	cfg.LookaheadWindow = 2
	dp := NewDiffProcessor(cfg)

	// "a" sits 3 lines ahead in right, outside a window of 2.
	builder, ok := dp.ProcessAlignment([]string{"a"}, []string{"x", "y", "z", "a"})
	require.True(t, ok)
	result := builder.Build()

	assert.Equal(t, models.RowModified, result.Kinds[0])
}

func TestDiffProcessor_ProcessAlignment_RowBoundExceeded(t *testing.T) {
	cfg := DefaultDiffConfig()
	cfg.RowBoundFactor = 1
	dp := NewDiffProcessor(cfg)

	// Insert "y", match "a", delete "x": three rows against a bound of 1 × 2.
	builder, ok := dp.ProcessAlignment([]string{"a", "x"}, []string{"y", "a"})
	assert.False(t, ok)
	assert.Nil(t, builder)
}

func TestDiffProcessor_ProcessPositional(t *testing.T) {
	dp := NewDiffProcessor(DefaultDiffConfig())

	result := dp.ProcessPositional([]string{"a", "b", "c"}, []string{"a", "x"}).Build()

	assert.Equal(t, []string{"a", "b", "c"}, result.AlignedLinesLeft)
	assert.Equal(t, []string{"a", "x", ""}, result.AlignedLinesRight)
	assert.Equal(t, []models.RowKind{models.RowUnchanged, models.RowModified, models.RowRemoved}, result.Kinds)
	assert.Equal(t, []int{1, 2}, result.DiffRowsLeft)
	assert.Equal(t, []int{1}, result.DiffRowsRight)
}

func TestDiffStatsCalculator_CalculateStats(t *testing.T) {
	calc := NewDiffStatsCalculator()

	stats := calc.CalculateStats([]models.RowKind{
		models.RowUnchanged, models.RowAdded, models.RowAdded, models.RowRemoved, models.RowModified,
	})
	assert.Equal(t, models.DiffStatistics{
		LinesAdded:     2,
		LinesRemoved:   1,
		LinesModified:  1,
		LinesUnchanged: 1,
		IsIdentical:    false,
	}, stats)

	assert.True(t, calc.CalculateStats([]models.RowKind{models.RowUnchanged}).IsIdentical)
	assert.True(t, calc.CalculateStats(nil).IsIdentical)
}
