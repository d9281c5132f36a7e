package config

import (
	"log/slog"
	"path/filepath"
	"testing"
)

func TestSetupLogger_NilConfig_Fails(t *testing.T) {
	if _, err := SetupLogger(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestSetupLogger_ConsoleOnly(t *testing.T) {
	log, err := SetupLogger(&LogConfig{Level: "debug", Format: "json"})
	if err != nil {
		t.Fatalf("SetupLogger: %v", err)
	}
	defer log.Close()

	if log.Logger == nil {
		t.Fatal("expected embedded slog.Logger")
	}
}

func TestSetupLogger_WithFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gateway.log")
	log, err := SetupLogger(&LogConfig{Level: "info", Format: "text", FilePath: path, MaxSizeMB: 10})
	if err != nil {
		t.Fatalf("SetupLogger: %v", err)
	}
	defer log.Close()

	log.Info("started")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
