package goquery

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/serpjson"
	"golang.org/x/net/html"
)

// Ensure Cleaner implements serpjson.Cleaner at compile time.
var _ serpjson.Cleaner = (*Cleaner)(nil)

const (
	noiseSelector   = `script, style, iframe, noscript, svg, img[width="1"], meta, link`
	layoutSelector  = `footer, header, nav, aside, [role="complementary"], [role="navigation"]`
	searchBoxForm   = `form[action*="search"]`
	searchBoxInput  = `input[name="q"]`
	minImageSize    = 5
	minContentLinks = 5
)

// keptAttributes lists the attributes that survive cleaning. Besides the
// presentational basics it keeps every attribute the Extractor reads.
var keptAttributes = map[string]bool{
	"href":     true,
	"src":      true,
	"alt":      true,
	"title":    true,
	"class":    true,
	"id":       true,
	"jsname":   true,
	"ping":     true,
	"data-src": true,
}

// trackingParams are substrings marking a query parameter as tracking.
var trackingParams = []string{"utm_", "ref=", "track", "click"}

// resultContainers locate the main results region on common engines,
// tried in order.
var resultContainers = []string{
	"div.g", "div.rc", "li.b_algo", "div.result", "div.algo",
	"div.related-question", "div.knowledge-panel",
	"div.bkWMgd", "div.ULSxyf", "div#search",
	"ol#b_results", "div#results", "div#web",
}

// Cleaner reduces raw result pages to their result markup.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean removes scripts, styles, tracking pixels, hidden inputs, and
// unneeded attributes, unwraps redirect links, isolates the main results
// region, and drops elements left empty.
func (c *Cleaner) Clean(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", serpjson.Errorf(serpjson.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", serpjson.Errorf(serpjson.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(noiseSelector).Remove()
	removeTinyImages(doc.Selection)
	doc.Find(`input[type="hidden"]`).Remove()

	// Regions are located before attributes are stripped; their selectors
	// rely on action, name, and role.
	searchBox := doc.Find(searchBoxForm).First()
	if searchBox.Length() == 0 {
		searchBox = doc.Find(searchBoxInput).First()
	}
	main := mainContent(doc)
	if main == nil {
		doc.Find(layoutSelector).Remove()
	}

	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		stripAttributes(sel.Get(0))
	})

	if main != nil {
		doc, err = isolate(doc, main, searchBox)
		if err != nil {
			return "", err
		}
	}

	removeEmpty(doc.Get(0))

	return doc.Html()
}

// removeTinyImages drops images whose declared width or height is below
// minImageSize. Dimensions that are not plain integers are ignored.
func removeTinyImages(root *goquery.Selection) {
	root.Find("img[width][height]").Each(func(_ int, img *goquery.Selection) {
		w, err := strconv.Atoi(strings.TrimSpace(img.AttrOr("width", "")))
		if err != nil {
			return
		}
		h, err := strconv.Atoi(strings.TrimSpace(img.AttrOr("height", "")))
		if err != nil {
			return
		}
		if w < minImageSize || h < minImageSize {
			img.Remove()
		}
	})
}

// stripAttributes keeps only keptAttributes on n and cleans its href.
func stripAttributes(n *html.Node) {
	kept := n.Attr[:0]
	for _, attr := range n.Attr {
		if !keptAttributes[attr.Key] {
			continue
		}
		if attr.Key == "href" {
			attr.Val = cleanHref(attr.Val)
		}
		kept = append(kept, attr)
	}
	n.Attr = kept
}

// cleanHref unwraps engine redirect links and drops tracking query
// parameters.
func cleanHref(href string) string {
	if strings.HasPrefix(href, "/url?") || (strings.Contains(href, "google") && strings.Contains(href, "url=")) {
		if target := redirectTarget(href); target != "" {
			href = target
		}
	}

	base, query, ok := strings.Cut(href, "?")
	if !ok {
		return href
	}

	var params []string
	for _, p := range strings.Split(query, "&") {
		if !isTrackingParam(p) {
			params = append(params, p)
		}
	}
	if len(params) == 0 {
		return base
	}
	return base + "?" + strings.Join(params, "&")
}

// redirectTarget returns the decoded q or url parameter of a redirect link.
func redirectTarget(href string) string {
	_, query, ok := strings.Cut(href, "?")
	if !ok {
		return ""
	}
	values, err := url.ParseQuery(query)
	if err != nil {
		return ""
	}
	if q := values.Get("q"); q != "" {
		return q
	}
	return values.Get("url")
}

func isTrackingParam(param string) bool {
	param = strings.ToLower(param)
	for _, t := range trackingParams {
		if strings.Contains(param, t) {
			return true
		}
	}
	return false
}

// mainContent finds the smallest ancestor of the first known result
// container that holds at least minContentLinks anchors. Returns nil when
// no such region exists below body.
func mainContent(doc *goquery.Document) *goquery.Selection {
	for _, css := range resultContainers {
		candidate := doc.Find(css).First()
		if candidate.Length() == 0 {
			continue
		}

		container := candidate.Parent()
		for container.Length() > 0 && !container.Is("body") && container.Find("a").Length() < minContentLinks {
			container = container.Parent()
		}

		if container.Length() > 0 && !container.Is("body") {
			return container
		}
	}
	return nil
}

// isolate builds a new document holding only the page title, the search
// box, and the main content region.
func isolate(doc *goquery.Document, main, searchBox *goquery.Selection) (*goquery.Document, error) {
	var b strings.Builder
	b.WriteString("<html><head><title>")
	b.WriteString(html.EscapeString(doc.Find("title").First().Text()))
	b.WriteString("</title></head><body>")

	if searchBox.Length() > 0 && !main.Contains(searchBox.Get(0)) {
		box, err := goquery.OuterHtml(searchBox)
		if err != nil {
			return nil, err
		}
		b.WriteString(box)
	}

	content, err := goquery.OuterHtml(main)
	if err != nil {
		return nil, err
	}
	b.WriteString(content)
	b.WriteString("</body></html>")

	isolated, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	if err != nil {
		return nil, serpjson.Errorf(serpjson.EINVALID, "failed to parse isolated content: %v", err)
	}
	return isolated, nil
}

// removeEmpty removes comments and, bottom-up, every element without text
// or media below it. Links with an href are kept.
func removeEmpty(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		switch c.Type {
		case html.CommentNode:
			n.RemoveChild(c)
		case html.ElementNode:
			removeEmpty(c)
			if isEmptyElement(c) {
				n.RemoveChild(c)
			}
		}
		c = next
	}
}

func isEmptyElement(n *html.Node) bool {
	switch n.Data {
	case "html", "head", "body", "br", "hr", "img", "input":
		return false
	case "a":
		for _, attr := range n.Attr {
			if attr.Key == "href" {
				return false
			}
		}
	}

	empty := strings.TrimSpace(joinText(n, "")) == ""
	walk(n, func(c *html.Node) {
		if c != n && c.Type == html.ElementNode && (c.Data == "img" || c.Data == "input") {
			empty = false
		}
	})
	return empty
}
