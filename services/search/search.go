package search

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"kindlelink/config"
	"kindlelink/pkg/errors"
)

const (
	searchPath   = "/paapi5/searchitems"
	searchTarget = "com.amazon.paapi5.v1.ProductAdvertisingAPIv1.SearchItems"

	// Kindle store browse node; every search is scoped to it
	kindleBrowseNodeID = "2250738051"
)

// Match is one candidate catalog match returned by the retail search API
type Match struct {
	ASIN          string
	Title         string
	DetailPageURL string
}

// marketplace holds the per-country API hosts and signing region
type marketplace struct {
	Host        string
	Marketplace string
	Region      string
}

var marketplaces = map[string]marketplace{
	"JP": {Host: "webservices.amazon.co.jp", Marketplace: "www.amazon.co.jp", Region: "us-west-2"},
	"US": {Host: "webservices.amazon.com", Marketplace: "www.amazon.com", Region: "us-east-1"},
	"GB": {Host: "webservices.amazon.co.uk", Marketplace: "www.amazon.co.uk", Region: "eu-west-1"},
}

// Client queries the Amazon Product Advertising API v5
type Client struct {
	key        string
	secret     string
	partnerTag string
	market     marketplace
	endpoint   string
	http       *resty.Client
}

// NewClient creates a search client from the loaded configuration
func NewClient(cfg config.Config) (*Client, error) {
	market, ok := marketplaces[strings.ToUpper(cfg.AmazonCountry)]
	if !ok {
		return nil, errors.NewConfiguration(fmt.Sprintf("unsupported AMAZON_COUNTRY: %s", cfg.AmazonCountry), nil)
	}

	client := resty.New()
	client.SetTimeout(10 * time.Second)

	return &Client{
		key:        cfg.AmazonAPIKey,
		secret:     cfg.AmazonAPISecret,
		partnerTag: cfg.AmazonPartnerTag,
		market:     market,
		endpoint:   "https://" + market.Host + searchPath,
		http:       client,
	}, nil
}

// Marketplace returns the retail site host used for generated search links
func (c *Client) Marketplace() string {
	return c.market.Marketplace
}

type searchRequest struct {
	Keywords     string   `json:"Keywords"`
	ItemCount    int      `json:"ItemCount"`
	PartnerTag   string   `json:"PartnerTag"`
	PartnerType  string   `json:"PartnerType"`
	Marketplace  string   `json:"Marketplace"`
	BrowseNodeID string   `json:"BrowseNodeId"`
	Resources    []string `json:"Resources"`
}

type searchResponse struct {
	SearchResult struct {
		Items []struct {
			ASIN          string `json:"ASIN"`
			DetailPageURL string `json:"DetailPageURL"`
			ItemInfo      struct {
				Title struct {
					DisplayValue string `json:"DisplayValue"`
				} `json:"Title"`
			} `json:"ItemInfo"`
		} `json:"Items"`
	} `json:"SearchResult"`
	Errors []struct {
		Code    string `json:"Code"`
		Message string `json:"Message"`
	} `json:"Errors"`
}

// SearchItems searches the Kindle store for keywords and returns the
// candidate matches. An empty result is not an error.
func (c *Client) SearchItems(keywords string, itemCount int) ([]Match, error) {
	payload, err := json.Marshal(searchRequest{
		Keywords:     keywords,
		ItemCount:    itemCount,
		PartnerTag:   c.partnerTag,
		PartnerType:  "Associates",
		Marketplace:  c.market.Marketplace,
		BrowseNodeID: kindleBrowseNodeID,
		Resources:    []string{"ItemInfo.Title"},
	})
	if err != nil {
		return nil, errors.NewSearch("search", "failed to encode search request", err)
	}

	now := time.Now().UTC()
	headers := map[string]string{
		"content-encoding": "amz-1.0",
		"content-type":     "application/json; charset=utf-8",
		"host":             c.market.Host,
		"x-amz-date":       now.Format(amzDateFormat),
		"x-amz-target":     searchTarget,
	}
	authorization := signRequest(c.key, c.secret, c.market.Region, searchPath, headers, payload, now)
	headers["Authorization"] = authorization

	resp, err := c.http.R().
		SetHeaders(headers).
		SetBody(payload).
		Post(c.endpoint)
	if err != nil {
		return nil, errors.NewNetwork("search", "search request failed", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, errors.NewSearch("search", fmt.Sprintf("unexpected status code: %d", resp.StatusCode()), nil)
	}

	var parsed searchResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, errors.NewSearch("search", "failed to decode search response", err)
	}
	if len(parsed.Errors) > 0 {
		first := parsed.Errors[0]
		return nil, errors.NewSearch("search", fmt.Sprintf("%s: %s", first.Code, first.Message), nil)
	}

	matches := make([]Match, 0, len(parsed.SearchResult.Items))
	for _, item := range parsed.SearchResult.Items {
		matches = append(matches, Match{
			ASIN:          item.ASIN,
			Title:         item.ItemInfo.Title.DisplayValue,
			DetailPageURL: item.DetailPageURL,
		})
	}
	return matches, nil
}
