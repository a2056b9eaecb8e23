package differ

import (
	"time"

	"github.com/aleister1102/layoutdiff/internal/common/errorwrapper"
	"github.com/aleister1102/layoutdiff/internal/config"
	"github.com/aleister1102/layoutdiff/internal/models"
	"github.com/rs/zerolog"
)

// LineAligner aligns two canonical texts row by row
type LineAligner struct {
	logger          zerolog.Logger
	config          DiffConfig
	processor       *DiffProcessor
	statsCalculator *DiffStatsCalculator
}

// LineAlignerBuilder provides a fluent interface for creating LineAligner
type LineAlignerBuilder struct {
	logger  zerolog.Logger
	diffCfg DiffConfig
}

// NewLineAlignerBuilder creates a new builder
func NewLineAlignerBuilder(logger zerolog.Logger) *LineAlignerBuilder {
	return &LineAlignerBuilder{
		logger:  logger.With().Str("component", "LineAligner").Logger(),
		diffCfg: DefaultDiffConfig(),
	}
}

// WithAlignerConfig applies the file-level aligner configuration
func (b *LineAlignerBuilder) WithAlignerConfig(cfg config.AlignerConfig) *LineAlignerBuilder {
	if cfg.LookaheadWindow > 0 {
		b.diffCfg.LookaheadWindow = cfg.LookaheadWindow
	}
	if cfg.RowBoundFactor > 0 {
		b.diffCfg.RowBoundFactor = cfg.RowBoundFactor
	}
	return b
}

// WithDiffConfig sets the diff configuration
func (b *LineAlignerBuilder) WithDiffConfig(cfg DiffConfig) *LineAlignerBuilder {
	b.diffCfg = cfg
	return b
}

// Build creates a new LineAligner instance
func (b *LineAlignerBuilder) Build() (*LineAligner, error) {
	if b.diffCfg.LookaheadWindow < 1 {
		return nil, errorwrapper.NewSentinelValidationError(errorwrapper.ErrInvalidConfiguration, "lookahead_window", b.diffCfg.LookaheadWindow, "lookahead window must be at least 1")
	}
	if b.diffCfg.RowBoundFactor < 1 {
		return nil, errorwrapper.NewSentinelValidationError(errorwrapper.ErrInvalidConfiguration, "row_bound_factor", b.diffCfg.RowBoundFactor, "row bound factor must be at least 1")
	}

	return &LineAligner{
		logger:          b.logger,
		config:          b.diffCfg,
		processor:       NewDiffProcessor(b.diffCfg),
		statsCalculator: NewDiffStatsCalculator(),
	}, nil
}

// NewLineAligner creates a LineAligner with default settings
func NewLineAligner(logger zerolog.Logger) *LineAligner {
	aligner, err := NewLineAlignerBuilder(logger).Build()
	if err != nil {
		// defaults are always valid
		panic(err)
	}
	return aligner
}

// Align compares two canonical texts and returns a full alignment
func (la *LineAligner) Align(textLeft, textRight string) *models.AlignmentResult {
	return la.AlignLines(models.SplitLines(textLeft), models.SplitLines(textRight))
}

// AlignDocuments compares two normalized documents
func (la *LineAligner) AlignDocuments(left, right models.Document) *models.AlignmentResult {
	return la.AlignLines(left.Lines(), right.Lines())
}

// AlignLines aligns two line slices. If the row bound is exceeded the
// positional comparison is used instead.
func (la *LineAligner) AlignLines(left, right []string) *models.AlignmentResult {
	startTime := time.Now()

	builder, ok := la.processor.ProcessAlignment(left, right)
	if !ok {
		la.logger.Warn().
			Int("left_lines", len(left)).
			Int("right_lines", len(right)).
			Int("row_bound_factor", la.config.RowBoundFactor).
			Msg("Row bound exceeded, falling back to positional comparison")
		builder = la.processor.ProcessPositional(left, right).WithFallback(true)
	}

	result := builder.WithStats(la.statsCalculator.CalculateStats(builder.result.Kinds)).Build()

	la.logger.Debug().
		Int("rows", result.RowCount()).
		Int("diff_rows_left", len(result.DiffRowsLeft)).
		Int("diff_rows_right", len(result.DiffRowsRight)).
		Dur("duration", time.Since(startTime)).
		Msg("Alignment computed")

	return result
}

// Align aligns two texts with the default configuration and no logging
func Align(textLeft, textRight string) *models.AlignmentResult {
	return NewLineAligner(zerolog.Nop()).Align(textLeft, textRight)
}

// AlignPositional compares two texts index by index without gap insertion
func AlignPositional(textLeft, textRight string) *models.AlignmentResult {
	left, right := models.SplitLines(textLeft), models.SplitLines(textRight)
	builder := NewDiffProcessor(DefaultDiffConfig()).ProcessPositional(left, right).WithFallback(true)
	return builder.WithStats(NewDiffStatsCalculator().CalculateStats(builder.result.Kinds)).Build()
}
