// Package tables holds the in-memory model of the tables found on a page and
// the pure functions that pick the pay scale table out of a document and turn
// it into records. Nothing in this package performs I/O besides reading the
// HTML passed to ParseDocument.
package tables

// Section is the table section a row was found in.
type Section int

const (
	SectionBody Section = iota
	SectionHead
	SectionFoot
)

func (s Section) String() string {
	switch s {
	case SectionHead:
		return "head"
	case SectionFoot:
		return "foot"
	default:
		return "body"
	}
}

// Row is a single table row, Cells holds the raw (uncleaned) text of each
// cell in order.
type Row struct {
	Section Section
	Cells   []string
}

// Table is an ordered list of rows. HasHead is set when the table declares
// an explicit header group, even if that group turns out to be empty.
type Table struct {
	HasHead bool
	Rows    []Row
}

// HeadRows returns the rows belonging to the header group.
func (t Table) HeadRows() []Row {
	var rows []Row
	for _, r := range t.Rows {
		if r.Section == SectionHead {
			rows = append(rows, r)
		}
	}
	return rows
}

// ColumnCount is the number of cells in the first row.
func (t Table) ColumnCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0].Cells)
}

// Document is every table of a page in document order.
type Document struct {
	Tables []Table
}
