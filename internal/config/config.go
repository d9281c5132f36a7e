package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default upstream hosts, matching each provider's public endpoint.
const (
	DefaultWeatherURL    = "https://api.open-meteo.com/v1"
	DefaultGeocodingURL  = "https://geocoding-api.open-meteo.com/v1"
	DefaultCharactersURL = "https://rickandmortyapi.com/api"
	DefaultCountriesURL  = "https://restcountries.com/v3.1"
	DefaultCryptoURL     = "https://api.coingecko.com/api/v3"
	DefaultPokemonURL    = "https://pokeapi.co/api/v2"
	DefaultExchangeURL   = "https://api.frankfurter.app"
	DefaultNewsURL       = "https://newsapi.org/v2"
	DefaultMoviesURL     = "https://api.themoviedb.org/3"
	DefaultProxyURL      = "http://localhost:4000"
)

const defaultPort = 4000

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Upstreams UpstreamsConfig `koanf:"upstreams"`
	Providers ProvidersConfig `koanf:"providers"`
	Log       LogConfig       `koanf:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string     `koanf:"host"`
	Port    int        `koanf:"port"`
	Mode    string     `koanf:"mode"`
	Timeout string     `koanf:"timeout"`
	CORS    CORSConfig `koanf:"cors"`
}

// CORSConfig holds the cross-origin allowlist. An empty list means
// permissive access, which is the gateway's default posture.
type CORSConfig struct {
	AllowOrigins []string `koanf:"allow_origins"`
}

// UpstreamsConfig holds the base URL for every provider plus the proxy base
// the news and movies clients call through.
type UpstreamsConfig struct {
	Weather    string `koanf:"weather"`
	Geocoding  string `koanf:"geocoding"`
	Characters string `koanf:"characters"`
	Countries  string `koanf:"countries"`
	Crypto     string `koanf:"crypto"`
	Pokemon    string `koanf:"pokemon"`
	Exchange   string `koanf:"exchange"`
	News       string `koanf:"news"`
	Movies     string `koanf:"movies"`
	Proxy      string `koanf:"proxy"`
}

// ProvidersConfig holds the server-side API keys. Keys never leave the
// process; routes depending on an unset key answer 400.
type ProvidersConfig struct {
	NewsAPIKey string `koanf:"news_api_key"`
	TMDBAPIKey string `koanf:"tmdb_api_key"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level           string `koanf:"level"`
	Format          string `koanf:"format"`
	Color           *bool  `koanf:"color"`
	FilePath        string `koanf:"file_path"`
	MaxSizeMB       int    `koanf:"max_size_mb"`
	RetentionDays   int    `koanf:"retention_days"`
	MaxBackups      int    `koanf:"max_backups"`
	CompressRotated *bool  `koanf:"compress_rotated"`
}

// Load reads configuration from a YAML file, overlays environment variables,
// and validates the result. Environment variables use the prefix "APP__"
// with double-underscore as the hierarchy separator, e.g. APP__SERVER__PORT
// overrides server.port. The provider keys additionally fall back to the
// plain NEWS_API_KEY and TMDB_API_KEY variables.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}

	if err := k.Load(env.Provider("APP__", ".", func(s string) string {
		key := strings.TrimPrefix(s, "APP__")
		key = strings.ToLower(key)
		key = strings.ReplaceAll(key, "__", ".")
		return key
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Providers.NewsAPIKey == "" {
		cfg.Providers.NewsAPIKey = os.Getenv("NEWS_API_KEY")
	}
	if cfg.Providers.TMDBAPIKey == "" {
		cfg.Providers.TMDBAPIKey = os.Getenv("TMDB_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate fills defaults and checks supported values.
func (c *Config) Validate() error {
	mode := strings.TrimSpace(c.Server.Mode)
	if mode == "" {
		mode = gin.ReleaseMode
	}
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		c.Server.Mode = mode
	default:
		return fmt.Errorf("invalid server.mode %q: must be one of %q, %q, %q", c.Server.Mode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}

	if c.Server.Port == 0 {
		c.Server.Port = defaultPort
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", c.Server.Port)
	}

	host := strings.TrimSpace(c.Server.Host)
	if host == "" {
		host = "0.0.0.0"
	}
	c.Server.Host = host

	c.Server.Timeout = strings.TrimSpace(c.Server.Timeout)
	if t := c.Server.Timeout; t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return fmt.Errorf("invalid server.timeout %q: %w", c.Server.Timeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("invalid server.timeout %q: must be greater than 0", c.Server.Timeout)
		}
	}

	upstreams := []struct {
		name         string
		value        *string
		defaultValue string
	}{
		{"upstreams.weather", &c.Upstreams.Weather, DefaultWeatherURL},
		{"upstreams.geocoding", &c.Upstreams.Geocoding, DefaultGeocodingURL},
		{"upstreams.characters", &c.Upstreams.Characters, DefaultCharactersURL},
		{"upstreams.countries", &c.Upstreams.Countries, DefaultCountriesURL},
		{"upstreams.crypto", &c.Upstreams.Crypto, DefaultCryptoURL},
		{"upstreams.pokemon", &c.Upstreams.Pokemon, DefaultPokemonURL},
		{"upstreams.exchange", &c.Upstreams.Exchange, DefaultExchangeURL},
		{"upstreams.news", &c.Upstreams.News, DefaultNewsURL},
		{"upstreams.movies", &c.Upstreams.Movies, DefaultMoviesURL},
		{"upstreams.proxy", &c.Upstreams.Proxy, DefaultProxyURL},
	}
	for _, u := range upstreams {
		v := strings.TrimSpace(*u.value)
		if v == "" {
			v = u.defaultValue
		}
		v = strings.TrimRight(v, "/")
		parsed, err := url.Parse(v)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("invalid %s %q: must be an absolute http(s) URL", u.name, *u.value)
		}
		switch parsed.Scheme {
		case "http", "https":
			// ok
		default:
			return fmt.Errorf("invalid %s %q: scheme must be http or https", u.name, *u.value)
		}
		*u.value = v
	}

	level := strings.ToLower(strings.TrimSpace(c.Log.Level))
	if level == "" {
		level = "info"
	}
	switch level {
	case "debug", "info", "warn", "error":
		c.Log.Level = level
	default:
		return fmt.Errorf("invalid log.level %q: must be one of %q, %q, %q, %q", c.Log.Level, "debug", "info", "warn", "error")
	}

	format := strings.ToLower(strings.TrimSpace(c.Log.Format))
	if format == "" {
		format = "text"
	}
	switch format {
	case "text", "json":
		c.Log.Format = format
	default:
		return fmt.Errorf("invalid log.format %q: must be one of %q, %q", c.Log.Format, "text", "json")
	}

	return nil
}

// RequestTimeout returns the configured outbound request timeout, or the
// given fallback when unset.
func (c *Config) RequestTimeout(fallback time.Duration) time.Duration {
	if c.Server.Timeout == "" {
		return fallback
	}
	d, err := time.ParseDuration(c.Server.Timeout)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
