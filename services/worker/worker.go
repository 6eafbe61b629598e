package worker

import (
	"fmt"
	"io"
	"os"
	"time"

	"kindlelink/config"
	"kindlelink/internal/scraper"
	"kindlelink/logger"
	"kindlelink/services/search"
	"kindlelink/services/shortener"
)

// Searcher returns candidate catalog matches for free-text keywords
type Searcher interface {
	SearchItems(keywords string, itemCount int) ([]search.Match, error)
}

// Shortener exchanges a long URL for a short one
type Shortener interface {
	Shorten(longURL string) (string, error)
}

// Worker drives one campaign through the scrape, search, batch and
// shorten stages in sequence.
type Worker struct {
	cfg         config.Config
	searcher    Searcher
	shortener   Shortener
	marketplace string
	out         io.Writer
	log         *logger.Logger

	// swapped out in tests
	scrape func(string) (*scraper.CampaignResult, error)
	sleep  func(time.Duration)
}

// NewWorker creates a worker writing shortened links to stdout
func NewWorker(cfg config.Config, searcher Searcher, short Shortener, marketplaceHost string) *Worker {
	return &Worker{
		cfg:         cfg,
		searcher:    searcher,
		shortener:   short,
		marketplace: marketplaceHost,
		out:         os.Stdout,
		log:         logger.ForWorker(),
		scrape:      scraper.ScrapeCampaign,
		sleep:       time.Sleep,
	}
}

// Run processes one campaign URL end to end and prints the shortened
// search links. Scrape and shorten failures are terminal; a failed
// per-item search is logged and skipped.
func (w *Worker) Run(campaignURL string) error {
	result, err := w.scrape(campaignURL)
	if err != nil {
		return err
	}

	event := w.log.Info().
		Str("title", result.Title).
		Str("url", result.URL).
		Int("items", len(result.Items))
	if result.Period != nil {
		event = event.Str("sale_ends", result.Period.Format("2006/1/2"))
	}
	event.Msg("Scraped campaign")

	asins := w.collectASINs(result.Items)
	if len(asins) == 0 {
		w.log.Warn().Msg("No catalog matches found for any item")
		return nil
	}

	urls := shortener.BuildSearchURLs(asins, w.marketplace, w.cfg.AmazonPartnerTag, w.cfg.SearchBatchSize)
	for _, url := range urls {
		short, err := w.shortener.Shorten(url)
		if err != nil {
			return err
		}
		fmt.Fprintln(w.out, short)
	}
	return nil
}

// collectASINs looks up each item and keeps its top match, pausing
// between lookups as a politeness measure. One failed lookup never
// aborts the batch.
func (w *Worker) collectASINs(items []scraper.CampaignItem) []string {
	var asins []string
	for i, item := range items {
		if i > 0 && w.cfg.SearchInterval > 0 {
			w.sleep(w.cfg.SearchInterval)
		}

		keywords := item.Title + " " + item.Company
		if item.Label != "" {
			keywords += " " + item.Label
		}

		matches, err := w.searcher.SearchItems(keywords, w.cfg.SearchItemCount)
		if err != nil {
			w.log.Error().Err(err).Str("title", item.Title).Msg("Search failed")
			continue
		}
		if len(matches) == 0 {
			w.log.Warn().Str("title", item.Title).Msg("No catalog match")
			continue
		}

		asins = append(asins, matches[0].ASIN)
		w.log.Info().Str("title", item.Title).Str("asin", matches[0].ASIN).Msg("Matched item")
	}
	return asins
}
