// Package normalizer turns comparison inputs into canonical line-oriented
// text. JSON is re-indented with its key order kept. Structured inputs go
// through encoding/json first, which sorts map keys; pass a json.RawMessage
// or a struct when the key order matters.
package normalizer

// inputKind tags the Input variant.
type inputKind int

const (
	kindRaw inputKind = iota
	kindStructured
)

// Input is one comparison input: either raw text or an already-decoded value.
type Input struct {
	kind  inputKind
	raw   string
	value any
}

// Raw wraps a string input. It is parsed as JSON when possible.
func Raw(text string) Input {
	return Input{kind: kindRaw, raw: text}
}

// Structured wraps a decoded value. It is serialized with encoding/json, so
// struct fields keep declaration order, json.RawMessage keeps source order,
// and map keys come out sorted. Callers that need a specific key order pass
// a json.RawMessage or a struct instead of a map. The value is read when the
// input is normalized, not when it is wrapped.
func Structured(value any) Input {
	return Input{kind: kindStructured, value: value}
}

// IsStructured reports whether the input holds a decoded value.
func (in Input) IsStructured() bool {
	return in.kind == kindStructured
}
