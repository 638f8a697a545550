package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Report is the canonical weather shape used across the backend,
// normalized from the upstream response.
type Report struct {
	Temp      float64 `json:"temp"`
	Humidity  int     `json:"humidity"`
	Condition string  `json:"condition"`
	City      string  `json:"city"`
}

// Client fetches current weather by city from OpenWeatherMap.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL overrides the API base URL, mainly for tests.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

type upstreamResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Name string `json:"name"`
	Cod  any    `json:"cod"` // upstream sends this as number or string
}

// Current fetches the current weather for city in metric units.
func (c *Client) Current(ctx context.Context, city string) (*Report, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("weather API key is not configured")
	}

	q := url.Values{}
	q.Set("q", strings.TrimSpace(city))
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API error: status %d", resp.StatusCode)
	}

	var data upstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}

	report := &Report{
		Temp:     data.Main.Temp,
		Humidity: data.Main.Humidity,
		City:     data.Name,
	}
	if report.City == "" {
		report.City = city
	}
	if len(data.Weather) > 0 {
		report.Condition = data.Weather[0].Description
	}
	if report.Condition == "" {
		report.Condition = "Unknown"
	}
	return report, nil
}
