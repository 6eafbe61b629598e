package scraper

import (
	"regexp"
	"strings"

	"kindlelink/logger"
)

// detailFlag requests the full-detail card layout from the storefront
const detailFlag = "?detail=1"

var campaignURLPattern = regexp.MustCompile(`^https://bookwalker\.jp/campaign/[0-9]+/$`)

// stripQuery removes any query string and ensures a trailing slash
func stripQuery(url string) string {
	if i := strings.Index(url, "?"); i >= 0 {
		url = url[:i]
	}
	if !strings.HasSuffix(url, "/") {
		url += "/"
	}
	return url
}

// IsValidURL reports whether raw is a campaign URL of the form
// https://bookwalker.jp/campaign/<id>/ (query string ignored).
func IsValidURL(raw string) bool {
	if raw == "" {
		return false
	}
	if !campaignURLPattern.MatchString(stripQuery(raw)) {
		logger.Error("Invalid campaign URL: %s", raw)
		return false
	}
	return true
}

// NormalizeURL rewrites a campaign URL into its canonical fetchable
// form: query string stripped, trailing slash ensured, detail layout
// flag appended. Returns "" for an invalid URL. Idempotent.
func NormalizeURL(raw string) string {
	if !IsValidURL(raw) {
		return ""
	}
	return stripQuery(raw) + detailFlag
}
