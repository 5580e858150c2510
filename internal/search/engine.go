package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/ironsheep/roku-tools/internal/tools"
)

// DefaultMaxResults is the number of result snippets joined into one answer.
const DefaultMaxResults = 5

// DefaultTimeout bounds one search round-trip.
const DefaultTimeout = 15 * time.Second

// Engine runs one web search and returns the result snippets as plain text.
type Engine interface {
	Search(ctx context.Context, query string, maxResults int) (string, error)
}

// ClientFactory returns a fresh HTTP client for one call.
type ClientFactory func(timeout time.Duration) (*http.Client, error)

// DuckDuckGo queries the DuckDuckGo HTML endpoint and scrapes result snippets.
type DuckDuckGo struct {
	// BaseURL is the HTML search endpoint, e.g. https://html.duckduckgo.com/html/.
	BaseURL   string
	NewClient ClientFactory
	UserAgent string
}

// NewDuckDuckGo returns an engine for baseURL.
func NewDuckDuckGo(baseURL string, newClient ClientFactory) *DuckDuckGo {
	if newClient == nil {
		newClient = func(timeout time.Duration) (*http.Client, error) {
			return &http.Client{Timeout: timeout}, nil
		}
	}
	return &DuckDuckGo{
		BaseURL:   baseURL,
		NewClient: newClient,
		UserAgent: "Mozilla/5.0 (compatible; roku-tools/1.0)",
	}
}

// Search returns up to maxResults snippets separated by spaces. An empty page yields an empty
// string and no error.
func (d *DuckDuckGo) Search(ctx context.Context, query string, maxResults int) (string, error) {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	u, err := url.Parse(d.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parse search url: %w", err)
	}
	q := u.Query()
	q.Set("q", query)
	u.RawQuery = q.Encode()

	client, err := d.NewClient(DefaultTimeout)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", d.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &tools.StatusError{URL: d.BaseURL, StatusCode: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse search results: %w", err)
	}

	snippets := make([]string, 0, maxResults)
	doc.Find(".result__snippet").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.Join(strings.Fields(s.Text()), " ")
		if text != "" {
			snippets = append(snippets, text)
		}
		return len(snippets) < maxResults
	})

	return strings.Join(snippets, " "), nil
}
