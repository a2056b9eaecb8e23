package differ

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// InlineSpan is a changed byte range [From, To) within a single line.
type InlineSpan struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// InlineDiffer finds the changed character ranges inside a modified row
type InlineDiffer struct {
	dmp    *diffmatchpatch.DiffMatchPatch
	config DiffConfig
}

// NewInlineDiffer creates a new inline differ
func NewInlineDiffer(config DiffConfig) *InlineDiffer {
	return &InlineDiffer{
		dmp:    diffmatchpatch.New(),
		config: config,
	}
}

// Spans returns the ranges of left that were deleted and the ranges of right
// that were inserted. Adjacent ranges are merged.
func (id *InlineDiffer) Spans(left, right string) (leftSpans, rightSpans []InlineSpan) {
	if left == right {
		return nil, nil
	}

	diffs := id.dmp.DiffMain(left, right, false)
	if id.config.EnableSemanticCleanup {
		diffs = id.dmp.DiffCleanupSemantic(diffs)
	}

	leftOffset, rightOffset := 0, 0
	for _, diff := range diffs {
		n := len(diff.Text)
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			leftSpans = appendSpan(leftSpans, leftOffset, leftOffset+n)
			leftOffset += n
		case diffmatchpatch.DiffInsert:
			rightSpans = appendSpan(rightSpans, rightOffset, rightOffset+n)
			rightOffset += n
		default:
			leftOffset += n
			rightOffset += n
		}
	}

	return leftSpans, rightSpans
}

func appendSpan(spans []InlineSpan, from, to int) []InlineSpan {
	if from == to {
		return spans
	}
	if last := len(spans) - 1; last >= 0 && spans[last].To == from {
		spans[last].To = to
		return spans
	}
	return append(spans, InlineSpan{From: from, To: to})
}
