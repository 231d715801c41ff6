package symbols

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultScrapeURL = "https://etfdb.com/screener/"
	DefaultLimit     = 100
	maxSymbolLen     = 5

	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

var etfLinkPattern = regexp.MustCompile(`/etf/([A-Z]+)/`)

// ScrapeSource reads ticker symbols from an ETF directory page.
type ScrapeSource struct {
	URL    string
	Client *http.Client
	Limit  int

	sf singleflight.Group
}

// NewScrapeSource creates a scraper with a 10 second timeout and optional proxy.
func NewScrapeSource(pageURL, proxyURL string, timeout time.Duration) *ScrapeSource {
	if pageURL == "" {
		pageURL = DefaultScrapeURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &ScrapeSource{
		URL:    pageURL,
		Client: &http.Client{Timeout: timeout, Transport: transport},
		Limit:  DefaultLimit,
	}
}

func (s *ScrapeSource) Name() string { return "scrape" }

// ListSymbols scrapes the directory page, falling back to the static list
// on any failure or an empty result. Concurrent callers share one request.
func (s *ScrapeSource) ListSymbols(ctx context.Context) []string {
	v, _, _ := s.sf.Do(s.URL, func() (interface{}, error) {
		return s.listOrFallback(ctx), nil
	})
	shared := v.([]string)
	out := make([]string, len(shared))
	copy(out, shared)
	return out
}

func (s *ScrapeSource) listOrFallback(ctx context.Context) []string {
	log.Printf("[INFO] fetching ETF symbols from %s", s.URL)
	syms, err := s.Scrape(ctx)
	if err != nil {
		log.Printf("[ERROR] scrape %s: %v, using fallback list", s.URL, err)
		return Fallback()
	}
	if len(syms) == 0 {
		log.Printf("[WARN] no symbols found at %s, using fallback list", s.URL)
		return Fallback()
	}
	log.Printf("[INFO] found %d ETFs at %s", len(syms), s.URL)
	return syms
}

// Scrape fetches the page and extracts symbols without any fallback.
func (s *ScrapeSource) Scrape(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUserAgent)

	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch page: status %d", resp.StatusCode)
	}

	limit := s.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	return ExtractSymbols(resp.Body, limit)
}

// ExtractSymbols returns the tickers linked as /etf/<SYMBOL>/ in an HTML document,
// de-duplicated in first-seen order, at most limit of them.
func ExtractSymbols(r io.Reader, limit int) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var symbols []string
	seen := make(map[string]struct{})
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if sym := symbolFromAnchor(n); sym != "" {
				if _, dup := seen[sym]; !dup {
					seen[sym] = struct{}{}
					symbols = append(symbols, sym)
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	if limit > 0 && len(symbols) > limit {
		symbols = symbols[:limit]
	}
	return symbols, nil
}

func symbolFromAnchor(n *html.Node) string {
	for _, attr := range n.Attr {
		if attr.Key != "href" {
			continue
		}
		m := etfLinkPattern.FindStringSubmatch(attr.Val)
		if m == nil || len(m[1]) > maxSymbolLen {
			return ""
		}
		return m[1]
	}
	return ""
}
