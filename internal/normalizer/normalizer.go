package normalizer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/aleister1102/layoutdiff/internal/models"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Width 0 keeps every array element on its own line.
var prettyOptions = &pretty.Options{
	Width:    0,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// Normalizer turns comparison inputs into canonical Documents.
type Normalizer struct {
	logger zerolog.Logger
}

// NewNormalizer creates a Normalizer that logs degraded inputs at debug level.
func NewNormalizer(logger zerolog.Logger) *Normalizer {
	return &Normalizer{
		logger: logger.With().Str("component", "Normalizer").Logger(),
	}
}

// Document normalizes in and wraps the result.
func (n *Normalizer) Document(in Input) models.Document {
	text, parsed := normalize(in)
	source := models.SourceRaw
	if in.IsStructured() {
		source = models.SourceStructured
	}
	if !parsed {
		n.logger.Debug().Str("source", string(source)).Int("bytes", len(text)).Msg("Input is not valid JSON, comparing as plain text")
	}
	return models.NewDocument(source, text)
}

// Normalize canonicalizes in into line-oriented text: two-space indented JSON
// when the input is JSON, otherwise the trimmed text. The result uses "\n"
// line endings, carries no trailing whitespace on any line, and ends with
// exactly one newline unless it is empty. Normalize never fails.
func Normalize(in Input) string {
	text, _ := normalize(in)
	return text
}

// NormalizeString is shorthand for Normalize(Raw(text)).
func NormalizeString(text string) string {
	return Normalize(Raw(text))
}

func normalize(in Input) (string, bool) {
	var (
		text   string
		parsed bool
	)
	if in.kind == kindStructured {
		text, parsed = normalizeStructured(in.value)
	} else {
		text, parsed = normalizeRaw(in.raw)
	}
	return postProcess(text), parsed
}

func normalizeRaw(raw string) (string, bool) {
	trimmed := strings.TrimSpace(normalizeLineEndings(raw))
	if trimmed == "" {
		return "", true
	}
	if formatted, ok := reindent([]byte(trimmed)); ok {
		return formatted, true
	}
	return trimmed, false
}

func normalizeStructured(value any) (text string, parsed bool) {
	defer func() {
		if r := recover(); r != nil {
			text, parsed = fmt.Sprint(value), false
		}
	}()

	data, err := marshal(value)
	if err != nil {
		return fmt.Sprint(value), false
	}
	if formatted, ok := reindent(data); ok {
		return formatted, true
	}
	return string(data), false
}

// reindent canonicalizes valid JSON and formats it with two-space
// indentation, keeping key order.
func reindent(data []byte) (string, bool) {
	if !gjson.ValidBytes(data) {
		return "", false
	}
	return string(pretty.PrettyOptions(canonicalize(data), prettyOptions)), true
}

func marshal(value any) ([]byte, error) {
	if raw, ok := value.(json.RawMessage); ok {
		return raw, nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}

func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

func postProcess(text string) string {
	lines := strings.Split(normalizeLineEndings(text), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	joined := strings.TrimRight(strings.Join(lines, "\n"), "\n")
	if joined == "" {
		return ""
	}
	return joined + "\n"
}
