package search

import (
	"time"

	"github.com/aleister1102/layoutdiff/internal/config"
	"github.com/rs/zerolog"
)

// Engine runs searches and produces fresh States.
type Engine struct {
	logger       zerolog.Logger
	regexTimeout time.Duration
}

// NewEngine creates an Engine using the regex timeout from cfg.
func NewEngine(logger zerolog.Logger, cfg config.SearchConfig) *Engine {
	return &Engine{
		logger:       logger.With().Str("component", "SearchEngine").Logger(),
		regexTimeout: time.Duration(cfg.RegexTimeoutMs) * time.Millisecond,
	}
}

// Search runs a literal search of query over text.
func (e *Engine) Search(text, query string) State {
	if IsBlank(query) {
		return State{}
	}
	state := NewState(query, false, Find(text, query))
	e.logger.Debug().Str("query", query).Int("matches", state.Total()).Msg("Literal search completed")
	return state
}

// SearchRegex runs a regular expression search over text. On error the
// returned State is empty.
func (e *Engine) SearchRegex(text, pattern string) (State, error) {
	if IsBlank(pattern) {
		return State{}, nil
	}
	matches, err := FindRegex(text, pattern, e.regexTimeout)
	if err != nil {
		e.logger.Debug().Err(err).Str("pattern", pattern).Msg("Regex search failed")
		return State{}, err
	}
	state := NewState(pattern, true, matches)
	e.logger.Debug().Str("pattern", pattern).Int("matches", state.Total()).Msg("Regex search completed")
	return state, nil
}
