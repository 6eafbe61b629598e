package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchPage(t *testing.T) {
	// Create a test server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Check that the fixed User-Agent is set
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla/5.0")

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<html><body>Hello, World!</body></html>"))
	}))
	defer server.Close()

	page, err := FetchPage(server.URL)
	assert.NoError(t, err)
	assert.Contains(t, string(page.Body), "Hello, World!")
	assert.Equal(t, server.URL, page.FinalURL)
}

func TestFetchPageNonUTF8(t *testing.T) {
	// Create a test server that returns a non-UTF8 response
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<html><body>Hello, World!</body></html>"))
	}))
	defer server.Close()

	page, err := FetchPage(server.URL)
	assert.NoError(t, err)
	assert.Contains(t, string(page.Body), "Hello, World!")
}

func TestFetchPageFollowsRedirects(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>target</body></html>"))
	}))
	defer target.Close()

	redirector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target.URL+"/final", http.StatusFound)
	}))
	defer redirector.Close()

	page, err := FetchPage(redirector.URL)
	assert.NoError(t, err)
	assert.Equal(t, target.URL+"/final", page.FinalURL)
}

func TestFetchPageError(t *testing.T) {
	// Create a test server that returns an error
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := FetchPage(server.URL)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code: 500")
}

func TestFetchPageInvalidURL(t *testing.T) {
	_, err := FetchPage("http://invalid.url.that.does.not.exist")
	assert.Error(t, err)
}
