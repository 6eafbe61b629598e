package shortener

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"kindlelink/pkg/errors"
)

const defaultAPIURL = "https://api-ssl.bitly.com/v4/shorten"

// Bitly shortens URLs through the Bitly v4 API
type Bitly struct {
	token  string
	apiURL string
	http   *resty.Client
}

// NewBitly creates a Bitly client with the given access token
func NewBitly(token string) *Bitly {
	client := resty.New()
	client.SetTimeout(10 * time.Second)

	return &Bitly{
		token:  token,
		apiURL: defaultAPIURL,
		http:   client,
	}
}

type shortenRequest struct {
	LongURL string `json:"long_url"`
}

type shortenResponse struct {
	Link string `json:"link"`
}

// Shorten exchanges a long URL for a short link. Any non-2xx response
// is a hard error carrying the status code.
func (b *Bitly) Shorten(longURL string) (string, error) {
	resp, err := b.http.R().
		SetHeader("Authorization", "Bearer "+b.token).
		SetHeader("Content-Type", "application/json").
		SetBody(shortenRequest{LongURL: longURL}).
		Post(b.apiURL)
	if err != nil {
		return "", errors.NewNetwork("shortener", "shorten request failed", err)
	}

	if resp.StatusCode()/100 != 2 {
		return "", errors.NewShorten("shortener",
			fmt.Sprintf("unexpected status code: %d %s", resp.StatusCode(), resp.String()), nil)
	}

	var parsed shortenResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return "", errors.NewShorten("shortener", "failed to decode shorten response", err)
	}
	if parsed.Link == "" {
		return "", errors.NewShorten("shortener", "no link in shorten response", nil)
	}
	return parsed.Link, nil
}
