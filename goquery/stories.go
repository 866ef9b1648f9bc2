package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/serpjson"
)

// topStories projects the news cluster. Position is the item's index in
// the cluster; items with neither title nor link are dropped.
func (e *Extractor) topStories(root *goquery.Selection) []serpjson.TopStory {
	s := e.selectors

	cluster := s.findAll(root, keyTopStoriesContainer).First()
	if cluster.Length() == 0 {
		return nil
	}

	var stories []serpjson.TopStory
	eachItem(s.findAll(cluster, keyTopStoriesItem), func(i int, item *goquery.Selection) {
		story := serpjson.TopStory{
			Position:  i + 1,
			Title:     s.firstText(item, keyTopStoriesTitle),
			Source:    s.firstText(item, keyTopStoriesSource),
			Time:      s.firstText(item, keyTopStoriesTime),
			Thumbnail: s.firstAttr(item, keyTopStoriesThumbnail, "src"),
		}
		if href, ok := s.firstMatch(item, keyTopStoriesLink).Attr("href"); ok {
			story.Link = unwrapRedirect(href)
		}

		if story.Title == "" && story.Link == "" {
			return
		}
		stories = append(stories, story)
	})

	return stories
}

// unwrapRedirect returns the target of an engine redirect wrapper
// ("/url?q=..."), or href unchanged when it is not wrapped. A wrapper
// without a target yields "".
func unwrapRedirect(href string) string {
	if !strings.HasPrefix(href, "/url?") {
		return href
	}
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return u.Query().Get("q")
}
