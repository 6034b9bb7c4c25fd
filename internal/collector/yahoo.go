package collector

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"GoldSentinel/internal/model"
)

const yahooBaseURL = "https://query1.finance.yahoo.com"

// YahooPriceSource reads the latest gold futures quote from the Yahoo
// Finance chart API. It can stand in for the API's real-time endpoint.
type YahooPriceSource struct {
	client *resty.Client
	Symbol string
}

// NewYahooPriceSource creates a Yahoo quote source. An empty baseURL selects
// the public endpoint.
func NewYahooPriceSource(baseURL, symbol, proxyURL string) *YahooPriceSource {
	if baseURL == "" {
		baseURL = yahooBaseURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30*time.Second).
		SetHeader("User-Agent", "Mozilla/5.0")
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &YahooPriceSource{client: client, Symbol: symbol}
}

func (y *YahooPriceSource) Name() string { return "yahoo" }

// yahooChart is the response structure from Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				RegularMarketTime  int64   `json:"regularMarketTime"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []interface{} `json:"close"`
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

// FetchRealtimePrice returns the regular market price, falling back to the
// last non-null intraday close.
func (y *YahooPriceSource) FetchRealtimePrice(ctx context.Context) (*model.RealtimePriceResponse, error) {
	var chart yahooChart
	resp, err := y.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"interval": "1m", "range": "1d"}).
		SetResult(&chart).
		Get("/v8/finance/chart/" + url.PathEscape(y.Symbol))
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("yahoo: %w: %d, body: %s", ErrUpstreamStatus, resp.StatusCode(), resp.String())
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned")
	}

	result := chart.Chart.Result[0]
	price := result.Meta.RegularMarketPrice
	ts := result.Meta.RegularMarketTime
	if price == 0 && len(result.Indicators.Quote) > 0 {
		closes := result.Indicators.Quote[0].Close
		for i := len(closes) - 1; i >= 0; i-- {
			if c := toFloat(closes[i]); c != 0 {
				price = c
				if i < len(result.Timestamp) {
					ts = result.Timestamp[i]
				}
				break
			}
		}
	}
	if price == 0 {
		return nil, fmt.Errorf("yahoo: no price data")
	}

	return &model.RealtimePriceResponse{
		Symbol:       y.Symbol,
		CurrentPrice: price,
		Timestamp:    time.Unix(ts, 0).UTC().Format(time.RFC3339),
		Status:       model.StatusSuccess,
	}, nil
}

// WithPriceSource overrides a Fetcher's real-time price with another source.
func WithPriceSource(f Fetcher, src PriceSource) Fetcher {
	return &overlayFetcher{Fetcher: f, src: src}
}

type overlayFetcher struct {
	Fetcher
	src PriceSource
}

func (o *overlayFetcher) Name() string { return o.Fetcher.Name() + "+" + o.src.Name() }

func (o *overlayFetcher) FetchRealtimePrice(ctx context.Context) (*model.RealtimePriceResponse, error) {
	return o.src.FetchRealtimePrice(ctx)
}
