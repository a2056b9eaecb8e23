package session

import (
	"github.com/aleister1102/layoutdiff/internal/config"
	"github.com/aleister1102/layoutdiff/internal/differ"
	"github.com/aleister1102/layoutdiff/internal/models"
	"github.com/aleister1102/layoutdiff/internal/normalizer"
	"github.com/aleister1102/layoutdiff/internal/search"
	"github.com/rs/zerolog"
)

// Phase is the lifecycle state of a Session.
type Phase int

const (
	// PhaseEmpty means no documents have been loaded.
	PhaseEmpty Phase = iota
	// PhaseAligned means both documents are normalized and aligned.
	PhaseAligned
)

func (p Phase) String() string {
	if p == PhaseAligned {
		return "aligned"
	}
	return "empty"
}

// Session holds one comparison: the two documents, their alignment and an
// independent search state per side. A Session is not safe for concurrent
// use; callers serialize access.
type Session struct {
	logger     zerolog.Logger
	normalizer *normalizer.Normalizer
	aligner    differ.Aligner
	engine     *search.Engine

	phase     Phase
	documents [2]models.Document
	alignment *models.AlignmentResult
	searches  [2]search.State
}

// NewSession wires a Session from the aligner and search sections of cfg.
func NewSession(cfg *config.GlobalConfig, logger zerolog.Logger) (*Session, error) {
	if cfg == nil {
		cfg = config.NewDefaultGlobalConfig()
	}

	aligner, err := differ.NewLineAlignerBuilder(logger).
		WithAlignerConfig(cfg.AlignerConfig).
		Build()
	if err != nil {
		return nil, err
	}

	return &Session{
		logger:     logger.With().Str("component", "DiffSession").Logger(),
		normalizer: normalizer.NewNormalizer(logger),
		aligner:    aligner,
		engine:     search.NewEngine(logger, cfg.SearchConfig),
	}, nil
}

// NewDefaultSession creates a Session with default settings.
func NewDefaultSession(logger zerolog.Logger) *Session {
	s, err := NewSession(config.NewDefaultGlobalConfig(), logger)
	if err != nil {
		// defaults always validate
		panic(err)
	}
	return s
}

// SetDocuments normalizes and aligns both inputs and resets both search
// states. The alignment is kept only when both normalized documents are
// identical to the loaded ones.
func (s *Session) SetDocuments(left, right normalizer.Input) {
	s.searches = [2]search.State{}

	docLeft := s.normalizer.Document(left)
	docRight := s.normalizer.Document(right)

	if s.phase == PhaseAligned && s.documents[0].Equal(docLeft) && s.documents[1].Equal(docRight) {
		s.logger.Debug().Msg("Documents unchanged, alignment kept")
		return
	}

	alignment := s.aligner.AlignDocuments(docLeft, docRight)

	s.documents = [2]models.Document{docLeft, docRight}
	s.alignment = alignment
	s.phase = PhaseAligned

	s.logger.Debug().
		Int("left_lines", docLeft.LineCount()).
		Int("right_lines", docRight.LineCount()).
		Int("rows", alignment.RowCount()).
		Bool("fallback", alignment.Fallback).
		Msg("Documents aligned")
}

// SearchSide runs a literal search on the aligned text of side and returns
// the match count. A blank query clears that side.
func (s *Session) SearchSide(side models.Side, query string) (int, error) {
	idx, err := sideIndex(side)
	if err != nil {
		return 0, err
	}
	if s.phase == PhaseEmpty {
		s.searches[idx] = search.State{}
		return 0, nil
	}

	s.searches[idx] = s.engine.Search(s.alignment.AlignedText(side), query)
	return s.searches[idx].Total(), nil
}

// SearchSideRegex is SearchSide with a regular expression. An invalid
// pattern clears that side and returns the error.
func (s *Session) SearchSideRegex(side models.Side, pattern string) (int, error) {
	idx, err := sideIndex(side)
	if err != nil {
		return 0, err
	}
	if s.phase == PhaseEmpty {
		s.searches[idx] = search.State{}
		return 0, nil
	}

	state, err := s.engine.SearchRegex(s.alignment.AlignedText(side), pattern)
	s.searches[idx] = state
	if err != nil {
		return 0, err
	}
	return state.Total(), nil
}

// Advance moves the current match of side. It reports false when the side
// has no matches.
func (s *Session) Advance(side models.Side, direction models.Direction) (bool, error) {
	idx, err := sideIndex(side)
	if err != nil {
		return false, err
	}
	if _, err := models.ParseDirection(string(direction)); err != nil {
		return false, err
	}

	next, moved := s.searches[idx].Move(direction)
	s.searches[idx] = next
	return moved, nil
}

// JumpTo activates the 1-based match n of side.
func (s *Session) JumpTo(side models.Side, n int) bool {
	idx, err := sideIndex(side)
	if err != nil {
		return false
	}
	next, moved := s.searches[idx].JumpTo(n)
	s.searches[idx] = next
	return moved
}

// ClearSide resets the search state of one side.
func (s *Session) ClearSide(side models.Side) error {
	idx, err := sideIndex(side)
	if err != nil {
		return err
	}
	s.searches[idx] = search.State{}
	return nil
}

// ClearAll resets both search states. The alignment is untouched.
func (s *Session) ClearAll() {
	s.searches = [2]search.State{}
}

// MatchCount returns the number of matches on side.
func (s *Session) MatchCount(side models.Side) int {
	return s.Search(side).Total()
}

// CurrentIndex returns the 1-based current match on side, 0 when none.
func (s *Session) CurrentIndex(side models.Side) int {
	return s.Search(side).Current
}

// CurrentMatch returns the span of the current match on side.
func (s *Session) CurrentMatch(side models.Side) (models.MatchSpan, bool) {
	return s.Search(side).CurrentMatch()
}

// Matches returns a copy of the match list of side.
func (s *Session) Matches(side models.Side) []models.MatchSpan {
	matches := s.Search(side).Matches
	if len(matches) == 0 {
		return nil
	}
	out := make([]models.MatchSpan, len(matches))
	copy(out, matches)
	return out
}

// Search returns the search state of side. Unknown sides get an empty state.
func (s *Session) Search(side models.Side) search.State {
	idx, err := sideIndex(side)
	if err != nil {
		return search.State{}
	}
	return s.searches[idx]
}

// Alignment returns the current alignment, nil before SetDocuments.
func (s *Session) Alignment() *models.AlignmentResult {
	return s.alignment
}

// AlignedText returns the aligned text of side that searches run against.
func (s *Session) AlignedText(side models.Side) string {
	if side.Validate() != nil {
		return ""
	}
	return s.alignment.AlignedText(side)
}

// Document returns the normalized document of side.
func (s *Session) Document(side models.Side) models.Document {
	idx, err := sideIndex(side)
	if err != nil {
		return models.Document{}
	}
	return s.documents[idx]
}

// State returns the lifecycle phase.
func (s *Session) State() Phase {
	return s.phase
}

func sideIndex(side models.Side) (int, error) {
	if err := side.Validate(); err != nil {
		return 0, err
	}
	return side.Index(), nil
}
