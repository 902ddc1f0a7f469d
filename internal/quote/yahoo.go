package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"stockwatch/internal/model"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// YahooProvider implements Provider using the Yahoo Finance chart API.
type YahooProvider struct {
	BaseURL string
	Client  *http.Client
}

// NewYahooProvider creates a new Yahoo Finance provider. baseURL overrides the
// public endpoint when non-empty (used by tests and API-compatible mirrors).
func NewYahooProvider(baseURL, proxyURL string) *YahooProvider {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &YahooProvider{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (p *YahooProvider) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo Finance chart API.
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

func (p *YahooProvider) fetchChart(ctx context.Context, symbol, interval, rng string) ([]model.Bar, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
		p.BaseURL, url.PathEscape(symbol), interval, rng)

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
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
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: malformed response for %s", symbol)
	}

	result := chart.Chart.Result[0]
	q := result.Indicators.Quote[0]
	n := len(result.Timestamp)
	if len(q.Open) != n || len(q.High) != n || len(q.Low) != n || len(q.Close) != n || len(q.Volume) != n {
		return nil, fmt.Errorf("yahoo: malformed response for %s", symbol)
	}
	bars := make([]model.Bar, 0, n)

	// Bars pass through exactly as delivered: no reordering and no
	// filtering of null/zero entries. Degenerate bars are a consumer concern.
	for i, ts := range result.Timestamp {
		bars = append(bars, model.Bar{
			Time:   time.Unix(ts, 0).UTC(),
			Open:   toFloat(q.Open[i]),
			High:   toFloat(q.High[i]),
			Low:    toFloat(q.Low[i]),
			Close:  toFloat(q.Close[i]),
			Volume: int64(toFloat(q.Volume[i])),
		})
	}
	return bars, nil
}

// History fetches bars at the horizon's native window: one month of daily
// bars for ShortTerm, five years of daily bars for LongTerm.
func (p *YahooProvider) History(ctx context.Context, symbol string, horizon model.Horizon) ([]model.Bar, error) {
	rng := horizon.Range()
	if rng == "" {
		return nil, fmt.Errorf("invalid horizon %v", horizon)
	}
	return p.fetchChart(ctx, symbol, "1d", rng)
}

// Probe issues a one-minute-interval request over a single day. Yahoo rejects
// unknown and empty symbols, which is exactly the liveness signal wanted.
func (p *YahooProvider) Probe(ctx context.Context, symbol string) error {
	_, err := p.fetchChart(ctx, symbol, "1m", "1d")
	return err
}
