package scraper

import "time"

// CampaignItem represents one scraped product listing
type CampaignItem struct {
	Title   string   `json:"title"`
	URL     string   `json:"url"`
	Authors []string `json:"authors,omitempty"`
	Company string   `json:"company,omitempty"`
	Price   int      `json:"price"`
	Label   string   `json:"label,omitempty"`
}

// CampaignResult is the aggregate for one campaign URL. Period, when
// present, is the earliest sale-end date advertised across all cards.
type CampaignResult struct {
	Title  string         `json:"title"`
	URL    string         `json:"url"`
	Items  []CampaignItem `json:"items"`
	Period *time.Time     `json:"period,omitempty"`
}
