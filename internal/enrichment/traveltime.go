package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Travel-time outcome strings. The three are distinguishable on purpose:
// a routable pair, a pair the service cannot route, and a failed call.
const (
	travelTimeUnroutable = "無法計算交通 (請檢查地點名稱)"
	travelTimeTimedOut   = "計算超時"
)

// TravelTimeStatus tags which of the three outcomes a lookup produced.
type TravelTimeStatus string

const (
	TravelTimeOK         TravelTimeStatus = "ok"
	TravelTimeUnroutable TravelTimeStatus = "unroutable"
	TravelTimeError      TravelTimeStatus = "error"
)

// TravelTime is the tagged result of a travel-time lookup.
type TravelTime struct {
	Text   string           `json:"travelTime"`
	Status TravelTimeStatus `json:"status"`
}

// TravelTimeConfig holds the Distance Matrix settings.
type TravelTimeConfig struct {
	APIKey   string
	BaseURL  string        // defaults to the Google endpoint
	Language string        // defaults to zh-TW
	Mode     string        // defaults to transit
	Timeout  time.Duration // per-request timeout
	CacheTTL time.Duration // memoization window, defaults to one hour
}

const distanceMatrixURL = "https://maps.googleapis.com/maps/api/distancematrix/json"

// TravelTimeClient queries the Distance Matrix API and memoizes results
// per (origin, destination, country) for the configured window. Every
// outcome is cached, failures included, matching the time-boxed
// memoization this replaces.
type TravelTimeClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	language   string
	mode       string
	ttl        time.Duration
	logger     *zap.Logger

	mu    sync.Mutex
	cache map[string]cacheEntry

	now func() time.Time // overridable in tests
}

type cacheEntry struct {
	result  TravelTime
	expires time.Time
}

// NewTravelTimeClient creates a travel-time client.
func NewTravelTimeClient(cfg TravelTimeConfig, logger *zap.Logger) *TravelTimeClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = distanceMatrixURL
	}
	if cfg.Language == "" {
		cfg.Language = "zh-TW"
	}
	if cfg.Mode == "" {
		cfg.Mode = "transit"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = time.Hour
	}
	return &TravelTimeClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		language:   cfg.Language,
		mode:       cfg.Mode,
		ttl:        cfg.CacheTTL,
		logger:     logger,
		cache:      make(map[string]cacheEntry),
		now:        time.Now,
	}
}

// Lookup returns the transit duration between two places in a country,
// formatted as "duration (distance)". A cached result inside the window
// is returned without a network call; expiry is purely time-based.
func (c *TravelTimeClient) Lookup(ctx context.Context, origin, destination, country string) TravelTime {
	key := origin + "|" + destination + "|" + country

	c.mu.Lock()
	if entry, ok := c.cache[key]; ok && c.now().Before(entry.expires) {
		c.mu.Unlock()
		return entry.result
	}
	c.mu.Unlock()

	result := c.fetch(ctx, origin, destination, country)

	c.mu.Lock()
	c.cache[key] = cacheEntry{result: result, expires: c.now().Add(c.ttl)}
	c.mu.Unlock()

	return result
}

type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Duration struct {
				Text string `json:"text"`
			} `json:"duration"`
			Distance struct {
				Text string `json:"text"`
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

func (c *TravelTimeClient) fetch(ctx context.Context, origin, destination, country string) TravelTime {
	params := url.Values{}
	params.Set("origins", country+" "+origin)
	params.Set("destinations", country+" "+destination)
	params.Set("mode", c.mode)
	params.Set("language", c.language)
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return c.failed(origin, destination, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.failed(origin, destination, err)
	}
	defer resp.Body.Close()

	var body distanceMatrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return c.failed(origin, destination, err)
	}

	if body.Status == "OK" && len(body.Rows) > 0 && len(body.Rows[0].Elements) > 0 {
		element := body.Rows[0].Elements[0]
		if element.Status == "OK" {
			return TravelTime{
				Text:   fmt.Sprintf("%s (%s)", element.Duration.Text, element.Distance.Text),
				Status: TravelTimeOK,
			}
		}
	}

	c.logger.Debug("Distance Matrix could not route pair",
		zap.String("origin", origin),
		zap.String("destination", destination),
		zap.String("status", body.Status))
	return TravelTime{Text: travelTimeUnroutable, Status: TravelTimeUnroutable}
}

func (c *TravelTimeClient) failed(origin, destination string, err error) TravelTime {
	c.logger.Warn("Travel-time lookup failed",
		zap.String("origin", origin),
		zap.String("destination", destination),
		zap.Error(err))
	return TravelTime{Text: travelTimeTimedOut, Status: TravelTimeError}
}
