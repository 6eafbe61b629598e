package scraper

import (
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const selPagination = `a[data-ga-category='ページネーション']`

// PageCount determines how many pages a campaign spans from one fetched
// page. A page without pagination controls is a one-page campaign.
// Otherwise the count is the largest integer among the controls' texts;
// anchors whose text is not a plain integer (next/prev arrows) are
// ignored. A nil or unparsable body yields 0, which callers must treat
// as "nothing to do".
func PageCount(r io.Reader) int {
	if r == nil {
		return 0
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return 0
	}

	buttons := doc.Find(selPagination)
	if buttons.Length() == 0 {
		return 1
	}

	pages := 0
	buttons.Each(func(_ int, s *goquery.Selection) {
		n, err := strconv.Atoi(strings.TrimSpace(s.Text()))
		if err == nil && n > pages {
			pages = n
		}
	})
	return pages
}
