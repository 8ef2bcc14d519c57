package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fwojciec/leadscout"
)

// DefaultSERPEndpoint is the Oxylabs realtime SERP API.
const DefaultSERPEndpoint = "https://realtime.oxylabs.io/v1/queries"

// DefaultSearchTimeout bounds a single SERP request. The realtime API runs
// the search upstream before responding, so this is longer than a plain
// page fetch.
const DefaultSearchTimeout = 30 * time.Second

// Ensure SERPClient implements leadscout.Searcher at compile time.
var _ leadscout.Searcher = (*SERPClient)(nil)

// SERPClient searches Google through the Oxylabs realtime SERP API and
// returns organic result URLs.
type SERPClient struct {
	client   *http.Client
	endpoint string
	username string
	password string
}

// SERPOption configures a SERPClient.
type SERPOption func(*SERPClient)

// WithSERPEndpoint overrides the API endpoint. Used in tests.
func WithSERPEndpoint(endpoint string) SERPOption {
	return func(c *SERPClient) {
		c.endpoint = endpoint
	}
}

// WithSearchTimeout sets the timeout for SERP requests.
func WithSearchTimeout(d time.Duration) SERPOption {
	return func(c *SERPClient) {
		c.client.Timeout = d
	}
}

// NewSERPClient creates a SERPClient with the given API credentials.
func NewSERPClient(username, password string, opts ...SERPOption) *SERPClient {
	c := &SERPClient{
		client:   &http.Client{Timeout: DefaultSearchTimeout},
		endpoint: DefaultSERPEndpoint,
		username: username,
		password: password,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// serpRequest is the Oxylabs query payload.
type serpRequest struct {
	Source      string `json:"source"`
	Query       string `json:"query"`
	Parse       bool   `json:"parse"`
	GeoLocation string `json:"geo_location"`
	Pages       int    `json:"pages"`
}

// serpResponse holds the parsed organic results we care about; everything
// else in the payload is ignored.
type serpResponse struct {
	Results []struct {
		Content struct {
			Results struct {
				Organic []struct {
					URL string `json:"url"`
				} `json:"organic"`
			} `json:"results"`
		} `json:"content"`
	} `json:"results"`
}

// Search runs the query and returns up to limit organic result URLs in
// ranking order.
func (c *SERPClient) Search(ctx context.Context, query string, limit int) ([]string, error) {
	if c.username == "" || c.password == "" {
		return nil, leadscout.Errorf(leadscout.EINVALID, "search requires API credentials")
	}
	if limit <= 0 {
		return nil, nil
	}

	payload, err := json.Marshal(serpRequest{
		Source:      "google_search",
		Query:       query,
		Parse:       true,
		GeoLocation: "United States",
		Pages:       1,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, leadscout.Errorf(leadscout.EUNAVAILABLE, "search API authentication failed")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, leadscout.Errorf(leadscout.EUNAVAILABLE, "search API returned HTTP %d", resp.StatusCode)
	}

	var parsed serpResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	var urls []string
	for _, result := range parsed.Results {
		for _, item := range result.Content.Results.Organic {
			if item.URL == "" {
				continue
			}
			urls = append(urls, item.URL)
			if len(urls) >= limit {
				return urls, nil
			}
		}
	}
	return urls, nil
}
