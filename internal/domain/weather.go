package domain

// WeatherSample is a point-in-time weather reading for one location.
// Location is always supplied by the caller or resolved through geocoding;
// it is never empty.
type WeatherSample struct {
	Temperature float64 `json:"temperature"` // °C
	Humidity    float64 `json:"humidity"`    // %
	WindSpeed   float64 `json:"windSpeed"`   // km/h
	WeatherCode int     `json:"weatherCode"` // WMO interpretation code
	Location    string  `json:"location"`
	Time        string  `json:"time"` // ISO 8601, provider-local timezone
}
