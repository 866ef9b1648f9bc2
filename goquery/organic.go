package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/serpjson"
)

// organicResults projects every organic block under root. Blocks missing a
// source, title, or link are dropped and do not consume a position.
func (e *Extractor) organicResults(root *goquery.Selection) []serpjson.OrganicResult {
	var results []serpjson.OrganicResult

	eachItem(e.selectors.findAll(root, keyOrganicBlock), func(_ int, block *goquery.Selection) {
		result := e.organicResult(block)
		if !result.Valid() {
			return
		}
		result.Position = len(results) + 1
		results = append(results, result)
	})

	return results
}

func (e *Extractor) organicResult(block *goquery.Selection) serpjson.OrganicResult {
	s := e.selectors

	result := serpjson.OrganicResult{
		Source:        s.firstText(block, keyOrganicSource),
		Title:         s.firstText(block, keyOrganicTitle),
		DisplayedLink: s.firstText(block, keyOrganicDisplayedLink),
	}

	anchor := s.firstMatch(block, keyOrganicLink)
	result.Link, _ = anchor.Attr("href")
	if ping, ok := anchor.Attr("ping"); ok && ping != "" {
		result.RedirectLink = e.origin + ping
	}

	if snippet := s.firstMatch(block, keyOrganicSnippet); snippet.Length() > 0 {
		result.Snippet = cleanText(snippet.Text())
		result.Date = s.firstText(snippet, keyOrganicDate)
		s.findAll(snippet, keyOrganicHighlight).Each(func(_ int, em *goquery.Selection) {
			if word := cleanText(em.Text()); word != "" {
				result.HighlightedWords = append(result.HighlightedWords, word)
			}
		})
	}

	result.SitelinksInline = e.inlineSitelinks(block)
	result.SitelinksExpanded = e.expandedSitelinks(block)

	return result
}

func (e *Extractor) inlineSitelinks(block *goquery.Selection) []serpjson.InlineSitelink {
	var links []serpjson.InlineSitelink
	e.selectors.findAll(block, keyOrganicSitelinkInline).Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		links = append(links, serpjson.InlineSitelink{
			Title: cleanText(a.Text()),
			Link:  href,
		})
	})
	return links
}

// expandedSitelinks collects desktop sitelink blocks first, then mobile
// sitelink anchors, into one list.
func (e *Extractor) expandedSitelinks(block *goquery.Selection) []serpjson.ExpandedSitelink {
	s := e.selectors
	var links []serpjson.ExpandedSitelink

	s.findAll(block, keyOrganicSitelinkBlock).Each(func(_ int, item *goquery.Selection) {
		a := s.firstMatch(item, keyOrganicSitelinkLink)
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		links = append(links, serpjson.ExpandedSitelink{
			Title:   cleanText(a.Text()),
			Link:    href,
			Snippet: s.firstText(item, keyOrganicSitelinkSnippet),
		})
	})

	s.findAll(block, keyOrganicSitelinkMobile).Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		links = append(links, serpjson.ExpandedSitelink{
			Title: cleanText(a.Text()),
			Link:  href,
		})
	})

	return links
}
