package tables

import (
	"io"

	"payscales/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/atom"
)

// cell text is joined with a space so that adjacent inline elements
// (ex. <td>$45<sup>.00</sup></td>) do not run together.
const cellTextSeparator = " "

// ParseDocument parses an HTML page into a Document.
func ParseDocument(r io.Reader) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Document{}, err
	}
	return FromSelection(doc.Selection), nil
}

// FromSelection builds a Document out of every <table> under sel, nested
// tables included.
func FromSelection(sel *goquery.Selection) Document {
	var out Document
	sel.Find("table").Each(func(_ int, table *goquery.Selection) {
		out.Tables = append(out.Tables, tableFromSelection(table))
	})
	return out
}

func tableFromSelection(table *goquery.Selection) Table {
	t := Table{
		HasHead: table.Find("thead").Length() > 0,
	}
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		t.Rows = append(t.Rows, Row{
			Section: sectionOf(tr),
			Cells:   htmlutil.SelectionTexts(tr.Find("td, th"), cellTextSeparator),
		})
	})
	return t
}

func sectionOf(tr *goquery.Selection) Section {
	closest := tr.Closest("thead, tbody, tfoot, table")
	if closest.Length() == 0 {
		return SectionBody
	}
	switch closest.Nodes[0].DataAtom {
	case atom.Thead:
		return SectionHead
	case atom.Tfoot:
		return SectionFoot
	default:
		return SectionBody
	}
}
