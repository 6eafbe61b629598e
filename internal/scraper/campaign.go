package scraper

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"kindlelink/helpers"
	"kindlelink/logger"
	"kindlelink/pkg/errors"
)

// noiseKeywords mark promotional/teaser listings; an item whose title
// contains any of them is never constructed.
var noiseKeywords = []string{"分冊版", "試し読み", "無料", "お試し", "期間限定"}

// periodPattern matches the YYYY/M/D part of a sale-end notice
var periodPattern = regexp.MustCompile(`[0-9]{4}/[0-9]{1,2}/[0-9]{1,2}`)

// fetchPage is swapped out in tests
var fetchPage = helpers.FetchPage

// ScrapeCampaign walks every page of a campaign and aggregates its
// listing cards into a single CampaignResult. The page count is derived
// from one fetch of the normalized URL, then each page is fetched
// exactly once. Failure is all-or-nothing at the page level: one failed
// fetch or a missing campaign heading voids the whole campaign. A
// malformed card is dropped, not fatal.
func ScrapeCampaign(rawURL string) (*CampaignResult, error) {
	log := logger.ForScraper()

	normalized := NormalizeURL(rawURL)
	if normalized == "" {
		return nil, errors.NewValidation("scraper", fmt.Sprintf("invalid campaign URL: %s", rawURL))
	}

	first, err := fetchPage(normalized)
	if err != nil {
		return nil, errors.NewNetwork("scraper", "failed to fetch campaign page", err)
	}
	pages := PageCount(bytes.NewReader(first.Body))
	log.Debug().Int("pages", pages).Str("url", normalized).Msg("Resolved page count")

	var (
		campaignTitle string
		items         []CampaignItem
		periods       []time.Time
		finalURL      string
	)

	for i := 1; i <= pages; i++ {
		page, err := fetchPage(fmt.Sprintf("%s&page=%d", normalized, i))
		if err != nil {
			return nil, errors.NewNetwork("scraper", fmt.Sprintf("failed to fetch page %d", i), err)
		}
		finalURL = page.FinalURL

		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page.Body))
		if err != nil {
			return nil, errors.NewParsing("scraper", fmt.Sprintf("failed to parse page %d", i), err)
		}

		heading, ok := requiredText(doc.Selection, selCampaignTitle)
		if !ok {
			return nil, errors.NewParsing("scraper", fmt.Sprintf("campaign title heading not found on page %d", i), nil)
		}
		// The first page's heading is authoritative
		if i == 1 {
			campaignTitle = heading
		}

		doc.Find(selListCard).Each(func(_ int, card *goquery.Selection) {
			if period, ok := cardPeriod(card); ok {
				periods = append(periods, period)
			}
			if item := processCard(card, log); item != nil {
				items = append(items, *item)
			}
		})
	}

	if len(items) == 0 {
		return nil, errors.NewParsing("scraper", "no items found", nil)
	}

	result := &CampaignResult{
		Title: campaignTitle,
		URL:   finalURL,
		Items: items,
	}
	if len(periods) > 0 {
		earliest := periods[0]
		for _, p := range periods[1:] {
			if p.Before(earliest) {
				earliest = p
			}
		}
		result.Period = &earliest
	}
	return result, nil
}

// processCard extracts one listing card. Returns nil when the card is
// malformed (missing title or price) or when the title contains a noise
// keyword; either way the rest of the page is unaffected.
func processCard(card *goquery.Selection, log *logger.Logger) *CampaignItem {
	title, ok := requiredText(card, selCardTitle)
	if !ok || title == "" {
		return nil
	}

	for _, keyword := range noiseKeywords {
		if strings.Contains(title, keyword) {
			return nil
		}
	}

	price, ok := cardPrice(card)
	if !ok {
		log.Warn().Str("title", title).Msg("Skipping card without a parseable price")
		return nil
	}

	var authors []string
	card.Find(selCardAuthor).Each(func(_ int, a *goquery.Selection) {
		authors = append(authors, strings.TrimSpace(a.Text()))
	})

	return &CampaignItem{
		Title:   title,
		URL:     anchorHref(card, selCardTitleWrap),
		Authors: authors,
		Company: anchorText(card, selCardPublisher),
		Price:   price,
		Label:   anchorText(card, selCardLabel),
	}
}

// cardPrice parses the comma-grouped price numeral, e.g. "1,980" → 1980
func cardPrice(card *goquery.Selection) (int, bool) {
	text, ok := requiredText(card, selCardPrice)
	if !ok {
		return 0, false
	}
	price, err := strconv.Atoi(strings.ReplaceAll(text, ",", ""))
	if err != nil {
		return 0, false
	}
	return price, true
}

// cardPeriod extracts the sale-end date advertised on a card. A card
// without a period notice, or one whose notice carries no date, simply
// records nothing.
func cardPeriod(card *goquery.Selection) (time.Time, bool) {
	text := optionalText(card, selCardPeriod)
	match := periodPattern.FindString(text)
	if match == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006/1/2", match)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
