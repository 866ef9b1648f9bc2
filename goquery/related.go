package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/serpjson"
	"golang.org/x/net/html"
)

// relatedQuestions returns the "people also ask" questions in page order.
// Blocks without question text contribute nothing.
func (e *Extractor) relatedQuestions(root *goquery.Selection) []string {
	var questions []string
	eachItem(e.selectors.findAll(root, keyRelatedQuestionBlock), func(_ int, block *goquery.Selection) {
		span := e.selectors.firstMatch(block, keyRelatedQuestionText)
		if q := cleanText(span.Text()); q != "" {
			questions = append(questions, q)
		}
	})
	return questions
}

// relatedSearches returns the "people also search for" links. Some markup
// variants keep the label outside the anchor, in a following sibling.
func (e *Extractor) relatedSearches(root *goquery.Selection) []serpjson.RelatedSearch {
	s := e.selectors
	var searches []serpjson.RelatedSearch

	s.findAll(root, keyRelatedSearchBlock).Each(func(_ int, block *goquery.Selection) {
		eachItem(s.findAll(block, keyRelatedSearchLink), func(_ int, a *goquery.Selection) {
			href, ok := a.Attr("href")
			if !ok {
				return
			}

			name := cleanText(a.Text())
			if name == "" {
				name = e.siblingLabel(a)
			}

			searches = append(searches, serpjson.RelatedSearch{
				Name: name,
				Link: href,
			})
		})
	})

	return searches
}

// siblingLabel scans the element siblings following a and returns the text
// of the first nested label found.
func (e *Extractor) siblingLabel(a *goquery.Selection) string {
	for sib := a.Get(0).NextSibling; sib != nil; sib = sib.NextSibling {
		if sib.Type != html.ElementNode {
			continue
		}
		label := e.selectors.firstMatch(goquery.NewDocumentFromNode(sib).Selection, keyRelatedSearchSiblingText)
		if label.Length() > 0 {
			return cleanText(label.Text())
		}
	}
	return ""
}
