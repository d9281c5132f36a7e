package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

const minimalYAML = `
server:
  host: 127.0.0.1
  port: 4000
  mode: test
log:
  level: info
  format: text
`

func TestLoad_MinimalFile_FillsUpstreamDefaults(t *testing.T) {
	cfg, err := Load(writeConfigFile(t, minimalYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 4000 {
		t.Errorf("port = %d, want 4000", cfg.Server.Port)
	}
	if cfg.Upstreams.Weather != DefaultWeatherURL {
		t.Errorf("weather upstream = %q, want default", cfg.Upstreams.Weather)
	}
	if cfg.Upstreams.Movies != DefaultMoviesURL {
		t.Errorf("movies upstream = %q, want default", cfg.Upstreams.Movies)
	}
	if cfg.Upstreams.Proxy != DefaultProxyURL {
		t.Errorf("proxy upstream = %q, want default", cfg.Upstreams.Proxy)
	}
}

func TestLoad_EnvOverlay_OverridesFileValues(t *testing.T) {
	t.Setenv("APP__SERVER__PORT", "9090")
	t.Setenv("APP__UPSTREAMS__CRYPTO", "https://crypto.example.com/v3")

	cfg, err := Load(writeConfigFile(t, minimalYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want env override 9090", cfg.Server.Port)
	}
	if cfg.Upstreams.Crypto != "https://crypto.example.com/v3" {
		t.Errorf("crypto upstream = %q, want env override", cfg.Upstreams.Crypto)
	}
}

func TestLoad_ProviderKeys_FallBackToPlainEnvNames(t *testing.T) {
	t.Setenv("NEWS_API_KEY", "news-secret")
	t.Setenv("TMDB_API_KEY", "tmdb-secret")

	cfg, err := Load(writeConfigFile(t, minimalYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Providers.NewsAPIKey != "news-secret" {
		t.Errorf("news key = %q, want plain env fallback", cfg.Providers.NewsAPIKey)
	}
	if cfg.Providers.TMDBAPIKey != "tmdb-secret" {
		t.Errorf("tmdb key = %q, want plain env fallback", cfg.Providers.TMDBAPIKey)
	}
}

func TestLoad_MissingFile_Fails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate_Defaults(t *testing.T) {
	var cfg Config
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if cfg.Server.Port != 4000 {
		t.Errorf("port = %d, want default 4000", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.Mode != "release" {
		t.Errorf("mode = %q, want release", cfg.Server.Mode)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("log defaults = %q/%q, want info/text", cfg.Log.Level, cfg.Log.Format)
	}
}

func TestValidate_TrimsTrailingSlashOnUpstreams(t *testing.T) {
	var cfg Config
	cfg.Upstreams.Exchange = "https://api.frankfurter.app/"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Upstreams.Exchange != "https://api.frankfurter.app" {
		t.Errorf("exchange upstream = %q, want trailing slash trimmed", cfg.Upstreams.Exchange)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{"bad mode", func(c *Config) { c.Server.Mode = "production" }, "server.mode"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"negative port", func(c *Config) { c.Server.Port = -1 }, "server.port"},
		{"bad timeout", func(c *Config) { c.Server.Timeout = "fast" }, "server.timeout"},
		{"zero timeout", func(c *Config) { c.Server.Timeout = "0s" }, "server.timeout"},
		{"relative upstream", func(c *Config) { c.Upstreams.Pokemon = "pokeapi.co/api/v2" }, "upstreams.pokemon"},
		{"bad scheme", func(c *Config) { c.Upstreams.News = "ftp://newsapi.org" }, "upstreams.news"},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestRequestTimeout_FallbackAndParsed(t *testing.T) {
	var cfg Config
	if got := cfg.RequestTimeout(10e9); got != 10e9 {
		t.Errorf("unset timeout: got %v, want fallback", got)
	}

	cfg.Server.Timeout = "3s"
	if got := cfg.RequestTimeout(10e9); got != 3e9 {
		t.Errorf("parsed timeout: got %v, want 3s", got)
	}
}
