// Package edinet talks to the EDINET v2 disclosure API: listing the
// documents filed on a date and downloading a filing's CSV archive.
// API documentation: https://disclosure2.edinet-fsa.go.jp/
package edinet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the production EDINET v2 API root.
	DefaultBaseURL = "https://api.edinet-fsa.go.jp/api/v2"

	// listTypeWithResults asks the list endpoint for full document
	// entries rather than just the count.
	listTypeWithResults = "2"

	// downloadTypeCSV selects the XBRL_TO_CSV archive of a filing.
	downloadTypeCSV = "5"

	defaultMaxRetries = 3
)

// Client handles EDINET API requests. The zero value is not usable;
// construct with NewClient.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	maxRetries int
}

// Option adjusts a Client at construction time.
type Option func(*Client)

// WithBaseURL points the client at a different API root (tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithMaxRetries sets how many attempts a request gets before the
// client gives up.
func WithMaxRetries(n int) Option {
	return func(c *Client) { c.maxRetries = n }
}

// NewClient creates an EDINET API client. The API key is the
// Subscription-Key issued on the EDINET site; the v2 API rejects
// unauthenticated requests.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		maxRetries: defaultMaxRetries,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// listResponse is the envelope of the documents.json endpoint.
type listResponse struct {
	Metadata struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"metadata"`
	Results []Document `json:"results"`
}

// DocumentsByDate lists every document filed on the given date. If
// docTypeCodes are passed, only matching entries are returned.
func (c *Client) DocumentsByDate(ctx context.Context, date time.Time, docTypeCodes ...string) ([]Document, error) {
	q := url.Values{}
	q.Set("date", date.Format("2006-01-02"))
	q.Set("type", listTypeWithResults)

	body, err := c.get(ctx, "/documents.json", q)
	if err != nil {
		return nil, fmt.Errorf("list documents for %s: %w", date.Format("2006-01-02"), err)
	}

	var list listResponse
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("parse document list: %w", err)
	}
	if s := list.Metadata.Status; s != "" && s != "200" {
		return nil, fmt.Errorf("document list returned status %s: %s", s, list.Metadata.Message)
	}

	docs := list.Results
	if len(docTypeCodes) > 0 {
		want := make(map[string]bool, len(docTypeCodes))
		for _, code := range docTypeCodes {
			want[code] = true
		}
		filtered := docs[:0]
		for _, d := range docs {
			if want[d.DocTypeCode] {
				filtered = append(filtered, d)
			}
		}
		docs = filtered
	}
	for i := range docs {
		docs[i].client = c
	}
	return docs, nil
}

// DownloadCSV fetches the XBRL_TO_CSV ZIP archive for a document ID.
func (c *Client) DownloadCSV(ctx context.Context, docID string) ([]byte, error) {
	q := url.Values{}
	q.Set("type", downloadTypeCSV)

	body, err := c.get(ctx, "/documents/"+docID, q)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", docID, err)
	}
	// The API reports missing or withdrawn documents with a JSON body
	// instead of a ZIP.
	if len(body) < 4 || string(body[:2]) != "PK" {
		return nil, fmt.Errorf("download %s: response is not a ZIP archive", docID)
	}
	return body, nil
}

// get performs an authenticated GET with retry on transient failures.
// Retries back off linearly; 4xx responses other than 429 fail fast.
func (c *Client) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	q.Set("Subscription-Key", c.apiKey)
	reqURL := c.baseURL + path + "?" + q.Encode()

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("failed to read response: %w", err)
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return body, nil
		case resp.StatusCode == http.StatusNotFound:
			return nil, fmt.Errorf("API returned status 404")
		case resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests:
			return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
		default:
			lastErr = fmt.Errorf("API returned status %d", resp.StatusCode)
		}
	}
	return nil, fmt.Errorf("request failed after %d attempts: %w", c.maxRetries, lastErr)
}
