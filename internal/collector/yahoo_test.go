package collector

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartBody = `{"chart":{"result":[{"timestamp":[1700000000,1700086400,1700172800],
"indicators":{"quote":[{"open":[10,null,12],"high":[11,null,13],"low":[9,null,11],
"close":[10.5,null,12.5],"volume":[1000,null,3000]}]}}],"error":null}}`

func TestYahooFetcher_FetchDailyBars(t *testing.T) {
	var gotPath, gotRange, gotInterval, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRange = r.URL.Query().Get("range")
		gotInterval = r.URL.Query().Get("interval")
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(chartBody))
	}))
	defer srv.Close()

	f := NewYahooFetcher("", 5*time.Second)
	f.BaseURL = srv.URL

	bars, err := f.FetchDailyBars(t.Context(), "SPY", "3mo")
	require.NoError(t, err)
	assert.Equal(t, "/v8/finance/chart/SPY", gotPath)
	assert.Equal(t, "3mo", gotRange)
	assert.Equal(t, "1d", gotInterval)
	assert.NotEmpty(t, gotUA)

	// the null bar is skipped
	require.Len(t, bars, 2)
	assert.Equal(t, 10.5, bars[0].Close)
	assert.Equal(t, 12.5, bars[1].Close)
	assert.Equal(t, 3000.0, bars[1].Volume)
	assert.True(t, bars[0].Time.Before(bars[1].Time))
}

func TestYahooFetcher_FetchBarsSince(t *testing.T) {
	now := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)
	since := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	var p1, p2 string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p1 = r.URL.Query().Get("period1")
		p2 = r.URL.Query().Get("period2")
		_, _ = w.Write([]byte(chartBody))
	}))
	defer srv.Close()

	f := NewYahooFetcher("", 5*time.Second)
	f.BaseURL = srv.URL
	f.Now = func() time.Time { return now }

	_, err := f.FetchBarsSince(t.Context(), "QQQ", since)
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatInt(since.Unix(), 10), p1)
	assert.Equal(t, strconv.FormatInt(now.Unix(), 10), p2)
}

func TestYahooFetcher_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr bool
		wantLen int
	}{
		{"unknown symbol", http.StatusNotFound, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`, false, 0},
		{"server error", http.StatusInternalServerError, "oops", true, 0},
		{"api error", http.StatusOK, `{"chart":{"result":null,"error":{"code":"x","description":"bad"}}}`, true, 0},
		{"bad json", http.StatusOK, `{`, true, 0},
		{"no timestamps", http.StatusOK, `{"chart":{"result":[{"timestamp":[]}],"error":null}}`, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			f := NewYahooFetcher("", 5*time.Second)
			f.BaseURL = srv.URL
			bars, err := f.FetchDailyBars(t.Context(), "BOGUS", "3mo")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, bars, tt.wantLen)
		})
	}
}
