package tables

import (
	"bytes"
	"encoding/json"
)

// Field is a single name/value pair of a record.
type Field struct {
	Name  string
	Value string
}

// Record is an ordered mapping of header names to cell text. It marshals to
// a JSON object whose keys keep their order.
type Record struct {
	Fields []Field
}

// NewRecord pairs headers with values positionally. When a header name
// repeats, the later value replaces the earlier one but the name keeps the
// position of its first occurrence. values must be at least as long as
// headers.
func NewRecord(headers, values []string) Record {
	r := Record{Fields: make([]Field, 0, len(headers))}
	index := make(map[string]int, len(headers))
	for i, name := range headers {
		if existing, ok := index[name]; ok {
			r.Fields[existing].Value = values[i]
			continue
		}
		index[name] = len(r.Fields)
		r.Fields = append(r.Fields, Field{Name: name, Value: values[i]})
	}
	return r
}

// Keys returns the field names in order.
func (r Record) Keys() []string {
	keys := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		keys[i] = f.Name
	}
	return keys
}

func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, f.Name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONString(&buf, f.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeJSONString writes s as a JSON string, leaving <, > and & literal.
func writeJSONString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates every value with a newline
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}
