package differ

const (
	// DefaultLookaheadWindow is how many lines ahead each side is scanned for a resync point.
	DefaultLookaheadWindow = 5
	// DefaultRowBoundFactor bounds the alignment to factor × max(len(left), len(right)) rows.
	DefaultRowBoundFactor = 2
)

// DiffConfig holds configuration for line alignment
type DiffConfig struct {
	LookaheadWindow       int
	RowBoundFactor        int
	EnableSemanticCleanup bool
}

// DefaultDiffConfig returns default configuration
func DefaultDiffConfig() DiffConfig {
	return DiffConfig{
		LookaheadWindow:       DefaultLookaheadWindow,
		RowBoundFactor:        DefaultRowBoundFactor,
		EnableSemanticCleanup: true,
	}
}
