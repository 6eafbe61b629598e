package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Markup knowledge lives here; the aggregation loop in campaign.go only
// deals in required/optional lookups so a site redesign touches one file.

const (
	selCampaignTitle = "h2.o-contents-section__title"
	selListCard      = "li.m-list-card"
	selCardTitle     = "span.o-card-ttl__text"
	selCardAuthor    = "dd.a-card-author"
	selCardPublisher = "div.a-card-publisher"
	selCardTitleWrap = "h2.o-card-ttl"
	selCardPrice     = "span.m-book-item__price-num"
	selCardLabel     = "div.a-card-book-label"
	selCardPeriod    = "span.a-card-period"
)

// requiredText returns the trimmed text of the first element matching
// selector. ok is false when no element matches, signalling the caller
// to skip the card.
func requiredText(s *goquery.Selection, selector string) (string, bool) {
	sel := s.Find(selector)
	if sel.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(sel.First().Text()), true
}

// optionalText returns the trimmed text of the first element matching
// selector, or "" when absent.
func optionalText(s *goquery.Selection, selector string) string {
	text, _ := requiredText(s, selector)
	return text
}

// anchorText returns the trimmed text of the anchor inside the element
// matching selector, or "" when either is absent.
func anchorText(s *goquery.Selection, selector string) string {
	sel := s.Find(selector)
	if sel.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(sel.First().Find("a").First().Text())
}

// anchorHref returns the href of the anchor inside the element matching
// selector, or "" when either is absent.
func anchorHref(s *goquery.Selection, selector string) string {
	sel := s.Find(selector)
	if sel.Length() == 0 {
		return ""
	}
	href, _ := sel.First().Find("a").First().Attr("href")
	return strings.TrimSpace(href)
}
