package payscale

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"payscales/internal/tables"
)

// Result is the JSON document written by the scraper. Every record in Data
// has exactly the keys of Fields, in the same order.
type Result struct {
	SourceURL   string          `json:"source_url"`
	RecordCount int             `json:"record_count"`
	Fields      []string        `json:"fields"`
	Data        []tables.Record `json:"data"`
}

// Encode writes r as JSON with one member per line, each nesting level
// indented by indent spaces. An indent of zero or less keeps the line
// breaks without indenting. Non-ASCII and HTML characters are written
// literally.
func (r Result) Encode(w io.Writer, indent int) error {
	var compact bytes.Buffer
	enc := json.NewEncoder(&compact)
	enc.SetEscapeHTML(false)
	err := enc.Encode(r)
	if err != nil {
		return err
	}

	// json.Indent always breaks lines, unlike Encoder.SetIndent with an
	// empty indent string
	var out bytes.Buffer
	err = json.Indent(&out, compact.Bytes(), "", strings.Repeat(" ", max(indent, 0)))
	if err != nil {
		return err
	}
	_, err = out.WriteTo(w)
	return err
}

// WriteFile encodes r into the file at path, replacing it if it exists.
func (r Result) WriteFile(path string, indent int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	err = r.Encode(f, indent)
	if err != nil {
		f.Close()
		return fmt.Errorf("write output: %w", err)
	}
	return f.Close()
}
