package tables

import (
	"errors"
	"strings"

	"payscales/lib/textutil"
)

var ErrNoTables = errors.New("no tables found")

// Keywords are the header words that mark a table as a pay scale.
var Keywords = []string{
	"local",
	"ibew",
	"rate",
	"wage",
	"classification",
	"journeyman",
	"benefit",
	"fringe",
	"zone",
}

const keywordWeight = 10

// Scorer rates how likely a table is to be the pay scale table given its
// lowercased header text, its total row count and the cell count of its
// first row.
type Scorer func(headerText string, rowCount, colCount int) int

// Score is the default Scorer: row count, plus 10 for each keyword present
// in the header text, plus the column count.
func Score(headerText string, rowCount, colCount int) int {
	score := rowCount
	score += keywordWeight * textutil.CountMatches(headerText, Keywords)
	score += colCount
	return score
}

// HeaderText is the cleaned, lowercased text of the header group, or of
// the first row when the table has no header group. It is only used for
// scoring.
func HeaderText(t Table) string {
	var cells []string
	if t.HasHead {
		for _, r := range t.HeadRows() {
			cells = append(cells, r.Cells...)
		}
	} else if len(t.Rows) > 0 {
		cells = t.Rows[0].Cells
	}
	return textutil.NormalizeName(strings.Join(cells, " "))
}

// Candidate is the scoring breakdown of a single table.
type Candidate struct {
	Index      int
	Rows       int
	Columns    int
	HeaderText string
	Score      int
}

// Candidates scores every table of the document in document order.
func Candidates(doc Document, scorer Scorer) []Candidate {
	out := make([]Candidate, len(doc.Tables))
	for i, t := range doc.Tables {
		c := Candidate{
			Index:      i,
			Rows:       len(t.Rows),
			Columns:    t.ColumnCount(),
			HeaderText: HeaderText(t),
		}
		c.Score = scorer(c.HeaderText, c.Rows, c.Columns)
		out[i] = c
	}
	return out
}

// Best returns the index of the highest scoring candidate, the earliest one
// wins a tie. It returns -1 for an empty list.
func Best(candidates []Candidate) int {
	best := -1
	bestScore := 0
	for _, c := range candidates {
		if best < 0 || c.Score > bestScore {
			best = c.Index
			bestScore = c.Score
		}
	}
	return best
}

// Select picks the table most likely to hold the pay scale using Score.
func Select(doc Document) (Table, error) {
	return SelectWith(doc, Score)
}

// SelectWith is Select with a custom Scorer.
func SelectWith(doc Document, scorer Scorer) (Table, error) {
	if len(doc.Tables) == 0 {
		return Table{}, ErrNoTables
	}
	best := Best(Candidates(doc, scorer))
	if best < 0 {
		return Table{}, ErrNoTables
	}
	return doc.Tables[best], nil
}
