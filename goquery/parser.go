// Package goquery provides DOM-based page parsing for fetched HTML.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/leadscout"
	"golang.org/x/net/html"
)

// Ensure Parser implements leadscout.Parser at compile time.
var _ leadscout.Parser = (*Parser)(nil)

// Parser extracts visible text and metadata from raw HTML.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse processes raw HTML into page content. Real-world markup is often
// broken; the underlying parser recovers rather than fails, so an error here
// means the input could not be treated as HTML at all.
func (p *Parser) Parse(rawHTML string) (*leadscout.PageContent, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, leadscout.Errorf(leadscout.EINVALID, "failed to parse HTML: %v", err)
	}

	content := &leadscout.PageContent{
		HTML: rawHTML,
		Text: visibleText(doc),
	}

	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		content.MetaDescription = strings.TrimSpace(desc)
	}

	return content, nil
}

// skipElements never contribute rendered text.
var skipElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"iframe":   true,
}

// visibleText walks the document tree collecting text nodes outside
// non-rendered elements, one trimmed non-blank line per text run.
func visibleText(doc *goquery.Document) string {
	var lines []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skipElements[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			if line := strings.TrimSpace(n.Data); line != "" {
				lines = append(lines, line)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, root := range doc.Nodes {
		walk(root)
	}

	return strings.Join(lines, "\n")
}
