package shortener

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShorten(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		var req map[string]string
		assert.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "https://www.amazon.co.jp/s?i=digital-text", req["long_url"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"link": "https://amzn.to/abc123"}`))
	}))
	defer server.Close()

	bitly := NewBitly("test-token")
	bitly.apiURL = server.URL

	short, err := bitly.Shorten("https://www.amazon.co.jp/s?i=digital-text")
	assert.NoError(t, err)
	assert.Equal(t, "https://amzn.to/abc123", short)
}

func TestShortenNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message": "FORBIDDEN"}`))
	}))
	defer server.Close()

	bitly := NewBitly("bad-token")
	bitly.apiURL = server.URL

	_, err := bitly.Shorten("https://example.com/")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestShortenMissingLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	bitly := NewBitly("test-token")
	bitly.apiURL = server.URL

	_, err := bitly.Shorten("https://example.com/")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no link")
}

func TestBuildSearchURLs(t *testing.T) {
	asins := []string{"A1", "A2", "A3"}
	urls := BuildSearchURLs(asins, "www.amazon.co.jp", "tag-22", 120)
	assert.Len(t, urls, 1)
	assert.Equal(t,
		"https://www.amazon.co.jp/s?i=digital-text&hidden-keywords=A1|A2|A3&tag=tag-22",
		urls[0])
}

func TestBuildSearchURLsSplitsBatches(t *testing.T) {
	asins := make([]string, 121)
	for i := range asins {
		asins[i] = fmt.Sprintf("ASIN%03d", i)
	}

	urls := BuildSearchURLs(asins, "www.amazon.co.jp", "tag-22", 120)
	assert.Len(t, urls, 2)

	firstIDs := strings.Split(extractIDs(t, urls[0]), "|")
	secondIDs := strings.Split(extractIDs(t, urls[1]), "|")
	assert.Len(t, firstIDs, 120)
	assert.Len(t, secondIDs, 1)
	assert.Equal(t, "ASIN000", firstIDs[0])
	assert.Equal(t, "ASIN120", secondIDs[0])
}

func TestBuildSearchURLsSkipsEmptyIDs(t *testing.T) {
	urls := BuildSearchURLs([]string{"A1", "", "A2"}, "www.amazon.co.jp", "tag-22", 120)
	assert.Len(t, urls, 1)
	assert.Contains(t, urls[0], "hidden-keywords=A1|A2&")
}

func TestBuildSearchURLsEmptyInput(t *testing.T) {
	assert.Empty(t, BuildSearchURLs(nil, "www.amazon.co.jp", "tag-22", 120))
}

func extractIDs(t *testing.T, url string) string {
	t.Helper()
	_, after, found := strings.Cut(url, "hidden-keywords=")
	assert.True(t, found)
	ids, _, found := strings.Cut(after, "&tag=")
	assert.True(t, found)
	return ids
}
