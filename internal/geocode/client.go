package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CityResult is what SearchCity returns: the best-match coordinates plus any
// postal codes Nominatim reported across its result set.
type CityResult struct {
	Coordinates Coordinates `json:"coordinates"`
	CityName    string      `json:"city_name"`
	Postcodes   []string    `json:"postcodes"`
}

type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
}

// NewClient builds a Nominatim-compatible geocoding client. Nominatim's usage
// policy requires an identifying User-Agent and at most one request per second.
func NewClient(baseURL, userAgent string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if userAgent == "" {
		userAgent = "divorce-lawyers-api/1.0"
	}
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		http:      &http.Client{Timeout: 30 * time.Second},
		limiter:   rate.NewLimiter(rate.Limit(1), 1),
	}
}

type searchResult struct {
	Lat     string `json:"lat"`
	Lon     string `json:"lon"`
	Address struct {
		Postcode     string `json:"postcode"`
		City         string `json:"city"`
		Town         string `json:"town"`
		Municipality string `json:"municipality"`
	} `json:"address"`
}

// Search geocodes a free-text query. A query with no matches returns (nil, nil);
// only transport or decode failures are errors.
func (c *Client) Search(ctx context.Context, query string) (*Coordinates, error) {
	params := url.Values{
		"format": {"json"},
		"q":      {query},
		"limit":  {"1"},
	}
	results, err := c.search(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	coords, err := parseCoordinates(results[0])
	if err != nil {
		return nil, err
	}
	return coords, nil
}

// SearchCity geocodes "City, ST, USA" and collects postal codes seen across up
// to ten results, which gives the DMA resolver candidate zip codes for cities
// absent from the local zip table.
func (c *Client) SearchCity(ctx context.Context, city, stateAbbr string) (*CityResult, error) {
	query := city + ", USA"
	if stateAbbr != "" {
		query = city + ", " + stateAbbr + ", USA"
	}
	params := url.Values{
		"format":         {"json"},
		"q":              {query},
		"addressdetails": {"1"},
		"limit":          {"10"},
	}
	results, err := c.search(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		zap.L().Warn("geocode: no results for city", zap.String("query", query))
		return nil, nil
	}

	best := results[0]
	coords, err := parseCoordinates(best)
	if err != nil {
		return nil, err
	}

	var postcodes []string
	seen := map[string]bool{}
	for _, r := range results {
		if pc := r.Address.Postcode; pc != "" && !seen[pc] {
			seen[pc] = true
			postcodes = append(postcodes, pc)
		}
	}

	name := best.Address.City
	if name == "" {
		name = best.Address.Town
	}
	if name == "" {
		name = best.Address.Municipality
	}
	if name == "" {
		name = city
	}

	return &CityResult{Coordinates: *coords, CityName: name, Postcodes: postcodes}, nil
}

type reverseResult struct {
	Address struct {
		Postcode string `json:"postcode"`
	} `json:"address"`
}

// Reverse looks up the postal code at a coordinate. Returns "" when the
// service has no postcode for the location.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	params := url.Values{
		"format": {"json"},
		"lat":    {strconv.FormatFloat(lat, 'f', 6, 64)},
		"lon":    {strconv.FormatFloat(lon, 'f', 6, 64)},
	}
	body, err := c.get(ctx, "/reverse", params)
	if err != nil {
		return "", err
	}
	var result reverseResult
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("geocode: decode reverse response: %w", err)
	}
	return result.Address.Postcode, nil
}

func (c *Client) search(ctx context.Context, params url.Values) ([]searchResult, error) {
	body, err := c.get(ctx, "/search", params)
	if err != nil {
		return nil, err
	}
	var results []searchResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("geocode: decode search response: %w", err)
	}
	return results, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("geocode: rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocode: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode: service returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func parseCoordinates(r searchResult) (*Coordinates, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode: bad latitude %q: %w", r.Lat, err)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode: bad longitude %q: %w", r.Lon, err)
	}
	return &Coordinates{Latitude: lat, Longitude: lon}, nil
}
