package differ

import "github.com/aleister1102/layoutdiff/internal/models"

// Aligner is the alignment contract the session depends on
type Aligner interface {
	AlignDocuments(left, right models.Document) *models.AlignmentResult
}

var _ Aligner = (*LineAligner)(nil)
