// Package weather shapes current-conditions data from the Open-Meteo
// forecast and geocoding APIs.
package weather

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/omnidash/omnidash/internal/domain"
	"github.com/omnidash/omnidash/internal/fetch"
)

// currentFields is the fixed projection requested from the forecast API.
const currentFields = "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code"

// Client fetches weather data. Safe for concurrent use.
type Client struct {
	forecastURL string
	geocodeURL  string
	fetch       *fetch.Client
}

// NewClient creates a weather client against the given base URLs.
func NewClient(f *fetch.Client, forecastURL, geocodeURL string) *Client {
	return &Client{forecastURL: forecastURL, geocodeURL: geocodeURL, fetch: f}
}

type forecastResponse struct {
	Current *struct {
		Time        string  `json:"time"`
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		WindSpeed   float64 `json:"wind_speed_10m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
}

type geocodeResponse struct {
	Results []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Name      string  `json:"name"`
	} `json:"results"`
}

// CurrentWeather fetches current conditions for the given coordinates.
// The label becomes the sample's location and must be non-empty.
func (c *Client) CurrentWeather(ctx context.Context, lat, lon float64, label string) (*domain.WeatherSample, error) {
	if label == "" {
		return nil, domain.NewValidation("location label must not be empty")
	}
	if lat < -90 || lat > 90 {
		return nil, domain.NewValidation(fmt.Sprintf("invalid latitude %v: must be between -90 and 90", lat))
	}
	if lon < -180 || lon > 180 {
		return nil, domain.NewValidation(fmt.Sprintf("invalid longitude %v: must be between -180 and 180", lon))
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("current", currentFields)
	params.Set("timezone", "auto")

	var resp forecastResponse
	if err := c.fetch.GetJSON(ctx, c.forecastURL+"/forecast?"+params.Encode(), &resp); err != nil {
		return nil, domain.Wrap(err, "fetch current weather")
	}
	if resp.Current == nil {
		return nil, domain.NewSchema("forecast response missing current block", nil)
	}

	return &domain.WeatherSample{
		Temperature: resp.Current.Temperature,
		Humidity:    resp.Current.Humidity,
		WindSpeed:   resp.Current.WindSpeed,
		WeatherCode: resp.Current.WeatherCode,
		Location:    label,
		Time:        resp.Current.Time,
	}, nil
}

// SearchByCity resolves a city name through the geocoding API and fetches
// current conditions for the first match, labeled with the resolved place
// name. Zero geocoder matches surface as a not-found failure.
func (c *Client) SearchByCity(ctx context.Context, city string) (*domain.WeatherSample, error) {
	if city == "" {
		return nil, domain.NewValidation("city must not be empty")
	}

	params := url.Values{}
	params.Set("name", city)
	params.Set("count", "1")

	var resp geocodeResponse
	if err := c.fetch.GetJSON(ctx, c.geocodeURL+"/search?"+params.Encode(), &resp); err != nil {
		return nil, domain.Wrap(err, "geocode city")
	}
	if len(resp.Results) == 0 {
		return nil, domain.NewNotFound("city not found")
	}

	hit := resp.Results[0]
	return c.CurrentWeather(ctx, hit.Latitude, hit.Longitude, hit.Name)
}
