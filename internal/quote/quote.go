// Package quote fetches a motivational quote by scraping a web page.
package quote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

// ErrFetch is returned when no quote could be obtained.
var ErrFetch = errors.New("fetch quote")

const (
	DefaultURL      = "https://www.brainyquote.com/quote_of_the_day"
	DefaultSelector = ".b-qt"
	DefaultTimeout  = 5 * time.Second

	userAgent = "Mozilla/5.0 (compatible; tasker/1.0)"
)

// Fetcher returns a single quote string.
type Fetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// Config controls where and how the quote is scraped.
type Config struct {
	URL      string
	Selector string
	Timeout  time.Duration
}

// Scraper implements Fetcher by extracting the text of the first element
// matching a CSS selector.
type Scraper struct {
	cfg    Config
	client *http.Client
}

// NewScraper creates a Scraper. Empty config fields fall back to defaults.
func NewScraper(cfg Config) *Scraper {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Selector == "" {
		cfg.Selector = DefaultSelector
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Scraper{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Fetch downloads the configured page and returns the selected text.
func (s *Scraper) Fetch(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.URL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: create request: %w", ErrFetch, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: request page: %w", ErrFetch, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Debug().Err(err).Msg("quote: close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: request page: status %d", ErrFetch, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: parse page: %w", ErrFetch, err)
	}

	text := strings.Join(strings.Fields(doc.Find(s.cfg.Selector).First().Text()), " ")
	if text == "" {
		return "", fmt.Errorf("%w: no element matches %q", ErrFetch, s.cfg.Selector)
	}

	return text, nil
}
