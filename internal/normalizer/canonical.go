package normalizer

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/gjson"
)

// canonicalize rewrites valid JSON in compact form with each scalar spelled
// one way: numbers in shortest form, strings with minimal escaping. Object
// keys keep their first position; a repeated key takes the last value.
func canonicalize(data []byte) []byte {
	var buf bytes.Buffer
	writeCanonical(&buf, gjson.ParseBytes(data))
	return buf.Bytes()
}

func writeCanonical(buf *bytes.Buffer, value gjson.Result) {
	switch {
	case value.IsObject():
		writeObject(buf, value)
	case value.IsArray():
		buf.WriteByte('[')
		for i, item := range value.Array() {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeCanonical(buf, item)
		}
		buf.WriteByte(']')
	case value.Type == gjson.String:
		writeString(buf, value.Str)
	case value.Type == gjson.Number:
		writeNumber(buf, value.Num)
	default:
		buf.WriteString(value.Raw)
	}
}

func writeObject(buf *bytes.Buffer, object gjson.Result) {
	var keys []string
	values := make(map[string]gjson.Result)
	object.ForEach(func(key, value gjson.Result) bool {
		if _, seen := values[key.Str]; !seen {
			keys = append(keys, key.Str)
		}
		values[key.Str] = value
		return true
	})

	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeString(buf, key)
		buf.WriteByte(':')
		writeCanonical(buf, values[key])
	}
	buf.WriteByte('}')
}

func writeString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	// Encode terminates with a newline
	buf.Truncate(buf.Len() - 1)
}

// writeNumber spells n the way encoding/json does: plain decimal between
// 1e-6 and 1e21, exponent form outside. Out-of-range literals become null.
func writeNumber(buf *bytes.Buffer, n float64) {
	if n == 0 {
		buf.WriteByte('0')
		return
	}
	data, err := json.Marshal(n)
	if err != nil {
		buf.WriteString("null")
		return
	}
	buf.Write(data)
}
