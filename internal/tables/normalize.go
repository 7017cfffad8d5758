package tables

import (
	"fmt"

	"payscales/lib/textutil"
)

// Normalize converts a table into records that all share the same ordered
// set of header names. The table is not modified, so calling Normalize
// twice on the same table yields the same records.
//
// Headers come from the header group when there is one, otherwise the first
// row is used as the header and is not emitted as a record. When neither
// yields a name, the headers are col_1..col_N where N is the cell count of
// the first remaining row.
func Normalize(t Table) []Record {
	remaining := t.Rows

	var headers []string
	if t.HasHead {
		for _, r := range t.HeadRows() {
			headers = append(headers, nonEmpty(cleanCells(r.Cells))...)
		}
	}
	if len(headers) == 0 && len(remaining) > 0 {
		headers = nonEmpty(cleanCells(remaining[0].Cells))
		remaining = remaining[1:]
	}
	if len(headers) == 0 && len(remaining) > 0 {
		headers = placeholderHeaders(len(remaining[0].Cells))
	}
	if len(headers) == 0 {
		return nil
	}

	var records []Record
	for _, r := range bodyRows(t, remaining) {
		values := cleanCells(r.Cells)
		if allEmpty(values) {
			continue
		}
		records = append(records, NewRecord(headers, fitValues(values, len(headers))))
	}
	return records
}

// bodyRows filters the remaining rows down to those of the body section.
// Tables without any body section contribute every remaining row.
func bodyRows(t Table, remaining []Row) []Row {
	hasBody := false
	for _, r := range t.Rows {
		if r.Section == SectionBody {
			hasBody = true
			break
		}
	}
	if !hasBody {
		return remaining
	}

	var rows []Row
	for _, r := range remaining {
		if r.Section == SectionBody {
			rows = append(rows, r)
		}
	}
	return rows
}

func placeholderHeaders(n int) []string {
	headers := make([]string, n)
	for i := range headers {
		headers[i] = fmt.Sprintf("col_%d", i+1)
	}
	return headers
}

// fitValues pads values with empty strings or truncates them to n.
func fitValues(values []string, n int) []string {
	if len(values) >= n {
		return values[:n]
	}
	padded := make([]string, n)
	copy(padded, values)
	return padded
}

func cleanCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = textutil.Clean(c)
	}
	return out
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func allEmpty(values []string) bool {
	for _, v := range values {
		if v != "" {
			return false
		}
	}
	return true
}
