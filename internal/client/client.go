// Package client provides an HTTP client for the site's JSON API.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/evcraddock/agent-site/internal/contact"
	"github.com/evcraddock/agent-site/internal/listing"
)

// Client is an HTTP client for the site API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ListListings returns the listings matching raw, filtered server-side.
func (c *Client) ListListings(raw listing.RawCriteria) ([]listing.Listing, error) {
	q := url.Values{}
	set := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	set("priceMin", raw.PriceMin)
	set("priceMax", raw.PriceMax)
	set("beds", raw.Beds)
	set("location", raw.Location)
	set("status", raw.Status)

	path := "/api/listings"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var ls []listing.Listing
	if err := c.get(path, &ls); err != nil {
		return nil, err
	}
	return ls, nil
}

// FeaturedListings returns the featured subset.
func (c *Client) FeaturedListings() ([]listing.Listing, error) {
	var ls []listing.Listing
	if err := c.get("/api/listings/featured", &ls); err != nil {
		return nil, err
	}
	return ls, nil
}

// GetListing returns one listing.
func (c *Client) GetListing(id int64) (*listing.Listing, error) {
	var l listing.Listing
	if err := c.get(fmt.Sprintf("/api/listings/%d", id), &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// SubmitContact posts a contact form submission.
func (c *Client) SubmitContact(sub contact.Submission) (*contact.Receipt, error) {
	var r contact.Receipt
	if err := c.post("/api/contact", sub, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// get performs a GET request and decodes the response.
func (c *Client) get(path string, result interface{}) error {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, result)
}

// post performs a POST request with a JSON body and decodes the response.
func (c *Client) post(path string, body interface{}, result interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, result)
}

// do executes an HTTP request and handles errors.
func (c *Client) do(req *http.Request, result interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Warn("closing response body", "error", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return fmt.Errorf("%s", errResp.Error)
		}
		return fmt.Errorf("server error: %s", http.StatusText(resp.StatusCode))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
