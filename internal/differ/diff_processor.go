package differ

import (
	"github.com/aleister1102/layoutdiff/internal/models"
)

// DiffProcessor handles the core line alignment logic
type DiffProcessor struct {
	config DiffConfig
}

// NewDiffProcessor creates a new diff processor
func NewDiffProcessor(config DiffConfig) *DiffProcessor {
	return &DiffProcessor{config: config}
}

// ProcessAlignment walks both line slices with independent cursors and emits
// one row per step. On a mismatch it looks ahead up to LookaheadWindow lines
// on each side for a resync point: the nearer one wins, and at equal
// distance the right-side match (treating right[j] as an insertion) wins.
// It returns false when the row bound is exceeded.
func (dp *DiffProcessor) ProcessAlignment(left, right []string) (*AlignmentResultBuilder, bool) {
	longest := max(len(left), len(right))
	limit := dp.config.RowBoundFactor * longest
	builder := NewAlignmentResultBuilder(longest)

	i, j := 0, 0
	for i < len(left) || j < len(right) {
		if builder.Rows() >= limit {
			return nil, false
		}

		switch {
		case i >= len(left):
			builder.AddAdded(right[j])
			j++
		case j >= len(right):
			builder.AddRemoved(left[i])
			i++
		case left[i] == right[j]:
			builder.AddUnchanged(left[i])
			i++
			j++
		default:
			inRight := dp.lookahead(right, j, left[i])
			inLeft := dp.lookahead(left, i, right[j])

			switch {
			case inRight > 0 && (inLeft == 0 || inRight <= inLeft):
				builder.AddAdded(right[j])
				j++
			case inLeft > 0:
				builder.AddRemoved(left[i])
				i++
			default:
				builder.AddModified(left[i], right[j])
				i++
				j++
			}
		}
	}

	return builder, true
}

// lookahead returns the distance d in [1, window] of the first line
// lines[cursor+d] equal to target, or 0 when none is found.
func (dp *DiffProcessor) lookahead(lines []string, cursor int, target string) int {
	for d := 1; d <= dp.config.LookaheadWindow && cursor+d < len(lines); d++ {
		if lines[cursor+d] == target {
			return d
		}
	}
	return 0
}

// ProcessPositional compares lines index by index without inserting gaps
// other than padding the shorter side at the end.
func (dp *DiffProcessor) ProcessPositional(left, right []string) *AlignmentResultBuilder {
	longest := max(len(left), len(right))
	builder := NewAlignmentResultBuilder(longest)

	for k := 0; k < longest; k++ {
		hasLeft, hasRight := k < len(left), k < len(right)
		switch {
		case hasLeft && hasRight && left[k] == right[k]:
			builder.AddUnchanged(left[k])
		case hasLeft && hasRight:
			builder.AddModified(left[k], right[k])
		case hasLeft:
			builder.AddRemoved(left[k])
		default:
			builder.AddAdded(right[k])
		}
	}

	return builder
}

// DiffStatsCalculator calculates statistics from aligned rows
type DiffStatsCalculator struct{}

// NewDiffStatsCalculator creates a new diff stats calculator
func NewDiffStatsCalculator() *DiffStatsCalculator {
	return &DiffStatsCalculator{}
}

// CalculateStats counts rows by kind
func (dsc *DiffStatsCalculator) CalculateStats(kinds []models.RowKind) models.DiffStatistics {
	stats := models.DiffStatistics{}

	for _, kind := range kinds {
		switch kind {
		case models.RowAdded:
			stats.LinesAdded++
		case models.RowRemoved:
			stats.LinesRemoved++
		case models.RowModified:
			stats.LinesModified++
		default:
			stats.LinesUnchanged++
		}
	}

	stats.IsIdentical = stats.LinesAdded == 0 && stats.LinesRemoved == 0 && stats.LinesModified == 0
	return stats
}
