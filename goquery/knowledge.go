package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/serpjson"
)

// knowledgeGraph projects the first knowledge panel on the page.
// Returns nil when the page has no panel or the panel yields no field.
func (e *Extractor) knowledgeGraph(root *goquery.Selection) *serpjson.KnowledgeGraph {
	s := e.selectors

	panel := s.findAll(root, keyKnowledgeContainer).First()
	if panel.Length() == 0 {
		return nil
	}

	kg := &serpjson.KnowledgeGraph{
		Title:       s.firstText(panel, keyKnowledgeTitle),
		Type:        s.firstText(panel, keyKnowledgeType),
		Description: s.firstText(panel, keyKnowledgeDescription),
	}

	eachItem(s.findAll(panel, keyKnowledgeRow), func(_ int, row *goquery.Selection) {
		label := strings.TrimSpace(strings.TrimSuffix(s.firstText(row, keyKnowledgeLabel), ":"))
		value := s.firstText(row, keyKnowledgeValue)
		if label == "" || value == "" {
			return
		}
		if kg.Attributes == nil {
			kg.Attributes = make(map[string]string)
		}
		kg.Attributes[label] = value
	})

	if kg.IsEmpty() {
		return nil
	}
	return kg
}
