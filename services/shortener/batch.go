package shortener

import (
	"fmt"
	"strings"
)

// BuildSearchURLs groups catalog identifiers into Kindle-store search
// URLs of at most batchSize identifiers each, pipe-delimited, with the
// affiliate tag appended. Empty identifiers are dropped; order is
// preserved.
func BuildSearchURLs(asins []string, marketplaceHost, tag string, batchSize int) []string {
	ids := make([]string, 0, len(asins))
	for _, asin := range asins {
		if asin != "" {
			ids = append(ids, asin)
		}
	}

	var urls []string
	for start := 0; start < len(ids); start += batchSize {
		end := min(start+batchSize, len(ids))
		urls = append(urls, fmt.Sprintf(
			"https://%s/s?i=digital-text&hidden-keywords=%s&tag=%s",
			marketplaceHost, strings.Join(ids[start:end], "|"), tag))
	}
	return urls
}
