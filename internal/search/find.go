// Package search finds substring and regular expression matches in a
// document and tracks the active match for navigation.
package search

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/aleister1102/layoutdiff/internal/common/errorwrapper"
	"github.com/aleister1102/layoutdiff/internal/models"
	"github.com/dlclark/regexp2"
)

// IsBlank reports whether query would leave search inactive.
func IsBlank(query string) bool {
	return strings.TrimSpace(query) == ""
}

// Find returns every non-overlapping, case-insensitive occurrence of query in
// text, scanning left to right. Special characters in query are literal.
// A blank query returns nil.
func Find(text, query string) []models.MatchSpan {
	if IsBlank(query) {
		return nil
	}

	needle := foldRunes([]rune(query))
	haystack, offsets := decode(text)
	n := len(needle)

	var matches []models.MatchSpan
	for i := 0; i+n <= len(haystack); {
		if equalRunes(haystack[i:i+n], needle) {
			matches = append(matches, models.MatchSpan{From: offsets[i], To: offsets[i+n]})
			i += n
			continue
		}
		i++
	}
	return matches
}

// FindRegex returns every non-empty match of pattern in text, case-insensitive
// and in ascending order. A timeout of zero disables the match deadline.
func FindRegex(text, pattern string, timeout time.Duration) ([]models.MatchSpan, error) {
	if IsBlank(pattern) {
		return nil, nil
	}

	re, err := regexp2.Compile(pattern, regexp2.IgnoreCase|regexp2.Multiline)
	if err != nil {
		return nil, errorwrapper.NewError("%w: %v", errorwrapper.ErrInvalidPattern, err)
	}
	if timeout > 0 {
		re.MatchTimeout = timeout
	}

	_, offsets := decode(text)
	var matches []models.MatchSpan

	m, err := re.FindStringMatch(text)
	for m != nil && err == nil {
		end := m.Index + m.Length
		if m.Length > 0 && m.Index >= 0 && end < len(offsets) {
			matches = append(matches, models.MatchSpan{From: offsets[m.Index], To: offsets[end]})
		}
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return matches, errorwrapper.WrapError(err, "regex search aborted")
	}
	return matches, nil
}

// decode lowercases text rune by rune and records the byte offset of each
// rune. offsets has one extra entry holding len(text).
func decode(text string) ([]rune, []int) {
	runes := make([]rune, 0, utf8.RuneCountInString(text))
	offsets := make([]int, 0, cap(runes)+1)
	for i, r := range text {
		runes = append(runes, unicode.ToLower(r))
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))
	return runes, offsets
}

func foldRunes(in []rune) []rune {
	out := make([]rune, len(in))
	for i, r := range in {
		out[i] = unicode.ToLower(r)
	}
	return out
}

func equalRunes(a, b []rune) bool {
	for i := range b {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
