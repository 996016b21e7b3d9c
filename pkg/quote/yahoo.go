package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// The chart endpoint rejects the default Go client string, so we send a
// desktop browser User-Agent.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"

type YahooClient struct {
	httpClient *http.Client
}

func NewYahooClient() *YahooClient {
	return &YahooClient{
		httpClient: &http.Client{Timeout: 4 * time.Second},
	}
}

func (c *YahooClient) Quote(ctx context.Context, symbol string) (float64, error) {
	url := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s", symbol)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("yahoo request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("yahoo fetch: status %d for %s", resp.StatusCode, symbol)
	}

	var raw chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return 0, fmt.Errorf("yahoo decode: %w", err)
	}

	results := raw.Chart.Result
	if len(results) == 0 || results[0].Meta.RegularMarketPrice == nil {
		return 0, fmt.Errorf("yahoo decode: no market price for %s", symbol)
	}

	return *results[0].Meta.RegularMarketPrice, nil
}

type chartResponse struct {
	Chart chartData `json:"chart"`
}

type chartData struct {
	Result []chartResult `json:"result"`
	Error  any           `json:"error"`
}

type chartResult struct {
	Meta chartMeta `json:"meta"`
}

type chartMeta struct {
	RegularMarketPrice *float64 `json:"regularMarketPrice"`
}
