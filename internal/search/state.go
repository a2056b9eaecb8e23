package search

import "github.com/aleister1102/layoutdiff/internal/models"

// State is the search state of one side. It is never modified in place:
// navigation returns a new State.
type State struct {
	Query   string             `json:"query"`
	Regex   bool               `json:"regex"`
	Matches []models.MatchSpan `json:"matches"`
	// Current is the 1-based index of the active match, 0 when none.
	Current int `json:"current"`
}

// NewState builds a state for query. The first match, if any, is active.
func NewState(query string, regex bool, matches []models.MatchSpan) State {
	if IsBlank(query) {
		return State{}
	}
	current := 0
	if len(matches) > 0 {
		current = 1
	}
	return State{
		Query:   query,
		Regex:   regex,
		Matches: matches,
		Current: current,
	}
}

// Total returns the number of matches.
func (s State) Total() int {
	return len(s.Matches)
}

// Active reports whether a query is set.
func (s State) Active() bool {
	return s.Query != ""
}

// CurrentMatch returns the active match span.
func (s State) CurrentMatch() (models.MatchSpan, bool) {
	if s.Current < 1 || s.Current > len(s.Matches) {
		return models.MatchSpan{}, false
	}
	return s.Matches[s.Current-1], true
}

// Next moves to the following match, wrapping from the last to the first.
func (s State) Next() (State, bool) {
	if len(s.Matches) == 0 {
		return s, false
	}
	s.Current = s.Current%len(s.Matches) + 1
	return s, true
}

// Previous moves to the preceding match, wrapping from the first to the last.
func (s State) Previous() (State, bool) {
	if len(s.Matches) == 0 {
		return s, false
	}
	if s.Current <= 1 {
		s.Current = len(s.Matches)
	} else {
		s.Current--
	}
	return s, true
}

// Move dispatches on direction.
func (s State) Move(direction models.Direction) (State, bool) {
	if direction == models.DirectionPrevious {
		return s.Previous()
	}
	return s.Next()
}

// JumpTo activates the 1-based match n. Out-of-range n is a no-op.
func (s State) JumpTo(n int) (State, bool) {
	if n < 1 || n > len(s.Matches) {
		return s, false
	}
	s.Current = n
	return s, true
}
