package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// page wraps one document's text, giving the field mapper raw-text access
// alongside parsed meta-tag lookups. The goquery document is built on first
// use; a page whose fields all resolve from the literal never parses.
type page struct {
	text   string
	doc    *goquery.Document
	failed bool
}

func newPage(text string) *page {
	return &page{text: text}
}

func (p *page) document() *goquery.Document {
	if p.doc == nil && !p.failed {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(p.text))
		if err != nil {
			p.failed = true
			return nil
		}
		p.doc = doc
	}
	return p.doc
}

// meta returns the content of the first meta tag whose name or itemprop
// attribute matches any of names, tried in order.
func (p *page) meta(names ...string) string {
	doc := p.document()
	if doc == nil {
		return ""
	}
	for _, name := range names {
		for _, sel := range []string{
			"meta[name='" + name + "']",
			"meta[itemprop='" + name + "']",
		} {
			if content, ok := doc.Find(sel).First().Attr("content"); ok {
				if content = strings.TrimSpace(content); content != "" {
					return content
				}
			}
		}
	}
	return ""
}

// openGraph returns the content of the og:<property> tag, accepting both the
// property= and name= attribute conventions.
func (p *page) openGraph(property string) string {
	doc := p.document()
	if doc == nil {
		return ""
	}
	full := "og:" + property
	for _, sel := range []string{
		"meta[property='" + full + "']",
		"meta[name='" + full + "']",
	} {
		if content, ok := doc.Find(sel).First().Attr("content"); ok {
			if content = strings.TrimSpace(content); content != "" {
				return content
			}
		}
	}
	return ""
}
