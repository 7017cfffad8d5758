package htmlutil

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// GetText returns every text node under node joined by sep.
// script and style contents are not page text and are left out.
func GetText(node *html.Node, sep string) string {
	var parts []string
	getTextRecursive(node, &parts)
	return strings.Join(parts, sep)
}

func getTextRecursive(node *html.Node, out *[]string) {
	if node == nil {
		return
	}
	switch node.Type {
	case html.TextNode:
		*out = append(*out, node.Data)
		return
	case html.ElementNode:
		if node.DataAtom == atom.Script || node.DataAtom == atom.Style {
			return
		}
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, out)
		child = child.NextSibling
	}
}

// SelectionTexts returns the text of each node in the selection separately.
func SelectionTexts(sel *goquery.Selection, sep string) []string {
	texts := make([]string, len(sel.Nodes))
	for i, n := range sel.Nodes {
		texts[i] = GetText(n, sep)
	}
	return texts
}
