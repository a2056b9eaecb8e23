package normalizer

import (
	"encoding/json"
	"testing"

	"github.com/aleister1102/layoutdiff/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNormalize_PreservesKeyOrder(t *testing.T) {
	got := NormalizeString(`{"b":1,"a":2}`)
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": 2\n}\n", got)
}

func TestNormalize_InvalidJSONFallsBack(t *testing.T) {
	assert.Equal(t, "not valid json {\n", NormalizeString("  not valid json {  "))
}

func TestNormalize_NestedArrays(t *testing.T) {
	got := NormalizeString(`{"items":[1,2],"name":"x"}`)
	want := "{\n  \"items\": [\n    1,\n    2\n  ],\n  \"name\": \"x\"\n}\n"
	assert.Equal(t, want, got)
}

func TestNormalize_LineEndingsAndTrailingWhitespace(t *testing.T) {
	got := NormalizeString("line one   \r\nline two\t\rline three\n\n\n")
	assert.Equal(t, "line one\nline two\nline three\n", got)
}

func TestNormalize_CRLFJSON(t *testing.T) {
	got := NormalizeString("{\r\n  \"a\" : 1\r\n}\r\n")
	assert.Equal(t, "{\n  \"a\": 1\n}\n", got)
}

func TestNormalize_Empty(t *testing.T) {
	assert.Equal(t, "", NormalizeString(""))
	assert.Equal(t, "", NormalizeString(" \n\t \r\n"))
	assert.Equal(t, "", Normalize(Input{}))
}

func TestNormalize_CanonicalScalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trailing zero", input: `{"n":1.0}`, want: "{\n  \"n\": 1\n}\n"},
		{name: "exponent", input: `[1e2,2.50,1E21,-0]`, want: "[\n  100,\n  2.5,\n  1e+21,\n  0\n]\n"},
		{name: "unicode escape", input: `{"\u0061":"\u0041\/"}`, want: "{\n  \"a\": \"A/\"\n}\n"},
		{name: "html kept", input: `"<b>"`, want: "\"<b>\"\n"},
		{name: "duplicate key", input: `{"a":1,"b":2,"a":3}`, want: "{\n  \"a\": 3,\n  \"b\": 2\n}\n"},
		{name: "out of range", input: `[1e400]`, want: "[\n  null\n]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeString(tt.input))
		})
	}
}

func TestNormalize_SpellingVariantsMatch(t *testing.T) {
	assert.Equal(t, NormalizeString(`{"price":10,"tag":"A"}`), NormalizeString(`{"price":10.00,"tag":"\u0041"}`))
}

func TestNormalize_Structured(t *testing.T) {
	type block struct {
		Zeta  string `json:"zeta"`
		Alpha int    `json:"alpha"`
		HTML  string `json:"html"`
	}

	got := Normalize(Structured(block{Zeta: "z", Alpha: 1, HTML: "<b>&</b>"}))
	assert.Equal(t, "{\n  \"zeta\": \"z\",\n  \"alpha\": 1,\n  \"html\": \"<b>&</b>\"\n}\n", got)

	raw := json.RawMessage(`{"second":true,"first":false}`)
	assert.Equal(t, "{\n  \"second\": true,\n  \"first\": false\n}\n", Normalize(Structured(raw)))

	unordered := map[string]int{"b": 1, "a": 2}
	assert.Equal(t, "{\n  \"a\": 2,\n  \"b\": 1\n}\n", Normalize(Structured(unordered)))

	assert.Equal(t, "null\n", Normalize(Structured(nil)))
}

func TestNormalize_StructuredUnserializable(t *testing.T) {
	ch := make(chan int)
	got := Normalize(Structured(ch))
	assert.NotEmpty(t, got)
	assert.Equal(t, byte('\n'), got[len(got)-1])
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		`{"b":1,"a":2}`,
		`[{"x":[1,2,{"y":null}]},"s",3.50]`,
		"  plain text   \nwith lines  ",
		"not valid json {",
		`"just a string"`,
		"",
		"{\r\n\"nested\": {\"deep\": {\"deeper\": []}}}",
	}

	for _, in := range inputs {
		once := NormalizeString(in)
		twice := NormalizeString(once)
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestNormalizer_Document(t *testing.T) {
	n := NewNormalizer(zerolog.Nop())

	doc := n.Document(Raw(`{"a":1}`))
	assert.Equal(t, models.SourceRaw, doc.Source)
	assert.Equal(t, 3, doc.LineCount())

	doc = n.Document(Structured([]int{1}))
	assert.Equal(t, models.SourceStructured, doc.Source)
	assert.Equal(t, []string{"[", "  1", "]"}, doc.Lines())

	doc = n.Document(Raw("broken {"))
	assert.Equal(t, "broken {\n", doc.Text)
}
