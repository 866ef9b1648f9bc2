package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// cleanText collapses runs of whitespace into single spaces and trims the
// result.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// joinText returns the non-blank text nodes under n, each trimmed, joined
// with sep.
func joinText(n *html.Node, sep string) string {
	var parts []string
	walk(n, func(c *html.Node) {
		if c.Type != html.TextNode {
			return
		}
		if t := strings.TrimSpace(c.Data); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, sep)
}

// nodeText returns the normalized text content of n.
func nodeText(n *html.Node) string {
	if n == nil {
		return ""
	}
	return cleanText(joinText(n, " "))
}

// walk calls fn for n and every node below it, in document order.
func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

// following returns the node after n in document order, descending into
// n's children first.
func following(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for ; n != nil; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}

// nextElement returns the first element named tag after n in document
// order, or nil.
func nextElement(n *html.Node, tag string) *html.Node {
	for c := following(n); c != nil; c = following(c) {
		if c.Type == html.ElementNode && c.Data == tag {
			return c
		}
	}
	return nil
}

// childElements returns the direct children of n named tag.
func childElements(n *html.Node, tag string) []*html.Node {
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			children = append(children, c)
		}
	}
	return children
}

// eachItem calls fn for every element of sel. A panic raised while
// projecting one element drops that element only.
func eachItem(sel *goquery.Selection, fn func(int, *goquery.Selection)) {
	sel.Each(func(i int, item *goquery.Selection) {
		defer func() {
			_ = recover()
		}()
		fn(i, item)
	})
}
