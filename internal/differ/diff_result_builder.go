package differ

import (
	"github.com/aleister1102/layoutdiff/internal/models"
)

// AlignmentResultBuilder accumulates aligned rows and their diff marks
type AlignmentResultBuilder struct {
	result models.AlignmentResult
}

// NewAlignmentResultBuilder creates a builder with room for capacity rows
func NewAlignmentResultBuilder(capacity int) *AlignmentResultBuilder {
	return &AlignmentResultBuilder{
		result: models.AlignmentResult{
			AlignedLinesLeft:  make([]string, 0, capacity),
			AlignedLinesRight: make([]string, 0, capacity),
			Kinds:             make([]models.RowKind, 0, capacity),
			DiffRowsLeft:      make([]int, 0),
			DiffRowsRight:     make([]int, 0),
		},
	}
}

// Rows returns the number of rows emitted so far
func (rb *AlignmentResultBuilder) Rows() int {
	return len(rb.result.Kinds)
}

// AddUnchanged emits a matched row
func (rb *AlignmentResultBuilder) AddUnchanged(line string) {
	rb.addRow(models.RowUnchanged, line, line)
}

// AddAdded emits a right-only row with a gap on the left
func (rb *AlignmentResultBuilder) AddAdded(right string) {
	rb.result.DiffRowsRight = append(rb.result.DiffRowsRight, rb.Rows())
	rb.addRow(models.RowAdded, "", right)
}

// AddRemoved emits a left-only row with a gap on the right
func (rb *AlignmentResultBuilder) AddRemoved(left string) {
	rb.result.DiffRowsLeft = append(rb.result.DiffRowsLeft, rb.Rows())
	rb.addRow(models.RowRemoved, left, "")
}

// AddModified emits a row pairing two differing lines
func (rb *AlignmentResultBuilder) AddModified(left, right string) {
	row := rb.Rows()
	rb.result.DiffRowsLeft = append(rb.result.DiffRowsLeft, row)
	rb.result.DiffRowsRight = append(rb.result.DiffRowsRight, row)
	rb.addRow(models.RowModified, left, right)
}

func (rb *AlignmentResultBuilder) addRow(kind models.RowKind, left, right string) {
	rb.result.AlignedLinesLeft = append(rb.result.AlignedLinesLeft, left)
	rb.result.AlignedLinesRight = append(rb.result.AlignedLinesRight, right)
	rb.result.Kinds = append(rb.result.Kinds, kind)
}

// WithFallback marks the result as produced by the positional comparison
func (rb *AlignmentResultBuilder) WithFallback(fallback bool) *AlignmentResultBuilder {
	rb.result.Fallback = fallback
	return rb
}

// WithStats sets the statistics on the result
func (rb *AlignmentResultBuilder) WithStats(stats models.DiffStatistics) *AlignmentResultBuilder {
	rb.result.Stats = stats
	return rb
}

// Build returns the final AlignmentResult
func (rb *AlignmentResultBuilder) Build() *models.AlignmentResult {
	return &rb.result
}
