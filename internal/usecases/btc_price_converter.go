package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// BtcRateSource provides the current BTC/USD exchange rate.
type BtcRateSource interface {
	CurrentRate(ctx context.Context) (float64, error)
}

// CoinGeckoRateSource fetches the rate from the CoinGecko simple price API.
// Every call hits the upstream; there is no caching, a slow or failing
// upstream fails the request.
type CoinGeckoRateSource struct {
	baseURL string
	client  *http.Client
}

// NewCoinGeckoRateSource creates a rate source against baseURL with a fixed
// upper bound on the outbound call.
func NewCoinGeckoRateSource(baseURL string, timeout time.Duration) *CoinGeckoRateSource {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &CoinGeckoRateSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 5 * time.Second,
			},
		},
	}
}

// CurrentRate fetches the current BTC/USD rate
func (s *CoinGeckoRateSource) CurrentRate(ctx context.Context) (float64, error) {
	u, err := url.Parse(s.baseURL + "/simple/price")
	if err != nil {
		return 0, fmt.Errorf("parse price feed url: %w", err)
	}
	q := u.Query()
	q.Set("ids", "bitcoin")
	q.Set("vs_currencies", "usd")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch btc price: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return 0, fmt.Errorf("price feed returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var body struct {
		Bitcoin struct {
			USD float64 `json:"usd"`
		} `json:"bitcoin"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode price feed response: %w", err)
	}

	return body.Bitcoin.USD, nil
}

// FixedRateSource returns a constant rate. Used in tests.
type FixedRateSource struct {
	Rate float64
}

// CurrentRate returns the fixed rate
func (s FixedRateSource) CurrentRate(context.Context) (float64, error) {
	return s.Rate, nil
}

// BtcPriceConverter renders satoshi balances in BTC and USD using a rate
// source.
type BtcPriceConverter struct {
	source BtcRateSource
}

// NewBtcPriceConverter creates a new converter
func NewBtcPriceConverter(source BtcRateSource) *BtcPriceConverter {
	return &BtcPriceConverter{source: source}
}

// SatoshiToBTC converts satoshis to BTC
func (c *BtcPriceConverter) SatoshiToBTC(satoshis int64) float64 {
	return float64(satoshis) / float64(SatoshisPerBTC)
}

// SatoshiToUSD converts satoshis to USD at the current rate, rounded to two
// decimal places.
func (c *BtcPriceConverter) SatoshiToUSD(ctx context.Context, satoshis int64) (float64, error) {
	rate, err := c.source.CurrentRate(ctx)
	if err != nil {
		return 0, err
	}
	usd := c.SatoshiToBTC(satoshis) * rate
	return math.Round(usd*100) / 100, nil
}
