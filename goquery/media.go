package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/serpjson"
)

// Separator used to split video metadata text.
const videoMetaSep = ";"

// images projects every tile of every image cluster, in document order.
func (e *Extractor) images(root *goquery.Selection) []serpjson.ImageResult {
	s := e.selectors
	var images []serpjson.ImageResult

	s.findAll(root, keyImagesBlock).Each(func(_ int, block *goquery.Selection) {
		eachItem(s.findAll(block, keyImagesTile), func(_ int, tile *goquery.Selection) {
			var image serpjson.ImageResult
			image.Link, _ = s.firstMatch(tile, keyImagesLink).Attr("href")

			img := s.firstMatch(tile, keyImagesImage)
			image.ImageText, _ = img.Attr("alt")
			image.Source, _ = img.Attr("src")
			if image.Source == "" {
				image.Source, _ = img.Attr("data-src")
			}

			images = append(images, image)
		})
	})

	return images
}

// videos projects inline video tiles. Title and metadata live in the first
// two child blocks of the first div following the tile's link.
func (e *Extractor) videos(root *goquery.Selection) []serpjson.VideoResult {
	s := e.selectors
	var videos []serpjson.VideoResult

	eachItem(s.findAll(root, keyVideosTile), func(_ int, tile *goquery.Selection) {
		var video serpjson.VideoResult

		a := s.firstMatch(tile, keyVideosLink)
		video.Link, _ = a.Attr("href")

		if a.Length() > 0 {
			if next := nextElement(a.Get(0), "div"); next != nil {
				if divs := childElements(next, "div"); len(divs) >= 2 {
					video.Title = nodeText(divs[0])
					video.Source, video.Date = videoMeta(joinText(divs[1], videoMetaSep))
				}
			}
		}

		videos = append(videos, video)
	})

	return videos
}

// videoMeta splits "channel;·;platform;date" style metadata into source and
// date. Fewer than four parts yields nothing.
func videoMeta(meta string) (source, date string) {
	parts := strings.Split(meta, videoMetaSep)
	if len(parts) < 4 {
		return "", ""
	}
	return parts[0] + " . " + parts[2], parts[len(parts)-1]
}
