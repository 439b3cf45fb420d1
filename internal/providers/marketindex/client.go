package marketindex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"
)

// Chart-style quote API, Yahoo Finance shape. Only monthly closes are used.
// Sample request: {base}/v8/finance/chart/%5EHGX?range=1y&interval=1mo
const (
	baseURL = "https://query1.finance.yahoo.com"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// NewClientWithBaseURL is useful for tests against a local HTTP server.
func NewClientWithBaseURL(base string, timeout time.Duration) *Client {
	c := NewClient(timeout)
	c.baseURL = base
	return c
}

// GetMonthlyCloses fetches one year of monthly closing values for a symbol.
// Null data points (market holidays, partial months) are dropped.
func (c *Client) GetMonthlyCloses(ctx context.Context, symbol string) ([]float64, error) {
	u, err := url.Parse(fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, url.PathEscape(symbol)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("range", "1y")
	q.Set("interval", "1mo")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp ChartAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(apiResp.Chart.Result) == 0 || len(apiResp.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no chart data for symbol %q", symbol)
	}

	raw := apiResp.Chart.Result[0].Indicators.Quote[0].Close
	closes := make([]float64, 0, len(raw))
	for _, v := range raw {
		if v != nil {
			closes = append(closes, *v)
		}
	}
	if len(closes) < 2 {
		return nil, fmt.Errorf("not enough data points for symbol %q: %d", symbol, len(closes))
	}

	return closes, nil
}

// Stats is the aggregate the real-estate resolver consumes: percentage change
// across the window and the standard deviation of period returns.
type Stats struct {
	TrendPercent      float64
	VolatilityPercent float64
}

// ComputeStats reduces a close series to trend/volatility percentages.
func ComputeStats(closes []float64) (Stats, error) {
	if len(closes) < 2 {
		return Stats{}, fmt.Errorf("need at least 2 closes, got %d", len(closes))
	}
	if closes[0] == 0 {
		return Stats{}, fmt.Errorf("first close is zero")
	}

	trend := (closes[len(closes)-1] - closes[0]) / closes[0] * 100

	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		returns = append(returns, (closes[i]-closes[i-1])/closes[i-1])
	}
	if len(returns) == 0 {
		return Stats{}, fmt.Errorf("no usable period returns")
	}

	var mean float64
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	var variance float64
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}
	variance /= float64(len(returns))

	return Stats{
		TrendPercent:      trend,
		VolatilityPercent: math.Sqrt(variance) * 100,
	}, nil
}
