package quote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func chartPayload(price float64) map[string]interface{} {
	return map[string]interface{}{
		"chart": map[string]interface{}{
			"result": []map[string]interface{}{
				{
					"meta": map[string]interface{}{
						"regularMarketPrice": price,
						"currency":           "TRY",
						"symbol":             "TRY=X",
					},
				},
			},
			"error": nil,
		},
	}
}

func TestYahooQuote(t *testing.T) {
	var gotPath, gotUA string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chartPayload(41.73))
	}))
	defer srv.Close()

	client := &YahooClient{httpClient: srv.Client()}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	price, err := client.Quote(context.Background(), "TRY=X")

	assert.Equal(t, nil, err)
	assert.Equal(t, 41.73, price)
	assert.Equal(t, "/v8/finance/chart/TRY=X", gotPath)
	assert.Equal(t, true, strings.Contains(gotUA, "Mozilla"))
}

func TestYahooQuote_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := &YahooClient{httpClient: srv.Client()}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	_, err := client.Quote(context.Background(), "GC=F")
	assert.NotEqual(t, nil, err)
}

func TestYahooQuote_EmptyResult(t *testing.T) {
	payload := map[string]interface{}{
		"chart": map[string]interface{}{
			"result": []map[string]interface{}{},
			"error":  map[string]interface{}{"code": "Not Found"},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &YahooClient{httpClient: srv.Client()}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	_, err := client.Quote(context.Background(), "NOPE=X")
	assert.NotEqual(t, nil, err)
}

func TestYahooQuote_MissingPrice(t *testing.T) {
	payload := map[string]interface{}{
		"chart": map[string]interface{}{
			"result": []map[string]interface{}{
				{"meta": map[string]interface{}{"currency": "TRY"}},
			},
			"error": nil,
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &YahooClient{httpClient: srv.Client()}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	_, err := client.Quote(context.Background(), "TRY=X")
	assert.NotEqual(t, nil, err)
}

func TestYahooQuote_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>rate limited</html>"))
	}))
	defer srv.Close()

	client := &YahooClient{httpClient: srv.Client()}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	_, err := client.Quote(context.Background(), "BTC-USD")
	assert.NotEqual(t, nil, err)
}

// rewriteTransport redirects all requests to a fixed base URL (test server).
type rewriteTransport struct {
	base  string
	inner http.RoundTripper
}

func (rt *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req2 := req.Clone(req.Context())
	parsed, _ := http.NewRequest("GET", rt.base, nil)
	req2.URL.Host = parsed.URL.Host
	req2.URL.Scheme = parsed.URL.Scheme
	return rt.inner.RoundTrip(req2)
}
