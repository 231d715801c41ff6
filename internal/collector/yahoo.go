package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"ETFSentinel/internal/model"
)

const defaultYahooBaseURL = "https://query1.finance.yahoo.com"

// YahooFetcher implements Fetcher using Yahoo Finance public chart API.
type YahooFetcher struct {
	BaseURL string
	Client  *http.Client
	Now     func() time.Time
}

// NewYahooFetcher creates a new Yahoo Finance fetcher.
func NewYahooFetcher(proxyURL string, timeout time.Duration) *YahooFetcher {
	return &YahooFetcher{
		BaseURL: defaultYahooBaseURL,
		Client:  newHTTPClient(proxyURL, timeout),
		Now:     time.Now,
	}
}

// newHTTPClient builds a client with optional proxy support.
func newHTTPClient(proxyURL string, timeout time.Duration) *http.Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func at(vals []interface{}, i int) float64 {
	if i >= len(vals) {
		return 0
	}
	return toFloat(vals[i])
}

func (f *YahooFetcher) fetchChart(ctx context.Context, symbol string, params url.Values) ([]model.OHLCV, error) {
	base := f.BaseURL
	if base == "" {
		base = defaultYahooBaseURL
	}
	params.Set("interval", "1d")
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", base, url.PathEscape(symbol), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		// Unknown tickers come back as 404 with a chart error; treat them as empty history.
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, nil
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: missing quote indicators")
	}
	quote := result.Indicators.Quote[0]
	bars := make([]model.OHLCV, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		o := at(quote.Open, i)
		h := at(quote.High, i)
		l := at(quote.Low, i)
		c := at(quote.Close, i)
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, model.OHLCV{
			Time:   time.Unix(ts, 0),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: at(quote.Volume, i),
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

func (f *YahooFetcher) FetchDailyBars(ctx context.Context, symbol, rng string) ([]model.OHLCV, error) {
	return f.fetchChart(ctx, symbol, url.Values{"range": {rng}})
}

func (f *YahooFetcher) FetchBarsSince(ctx context.Context, symbol string, since time.Time) ([]model.OHLCV, error) {
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}
	return f.fetchChart(ctx, symbol, url.Values{
		"period1": {strconv.FormatInt(since.Unix(), 10)},
		"period2": {strconv.FormatInt(now().Unix(), 10)},
	})
}
