package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SOLSCAN_API_KEY", "solscan-key")
	t.Setenv("OPENAI_API_KEY", "openai-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Solscan.BaseURL != "https://pro-api.solscan.io/v2.0" {
		t.Errorf("unexpected solscan base url: %s", cfg.Solscan.BaseURL)
	}
	if cfg.Solscan.PageDelay != 50*time.Millisecond {
		t.Errorf("unexpected page delay: %s", cfg.Solscan.PageDelay)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("unexpected model: %s", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.MaxTokens != 200 || cfg.OpenAI.Temperature != 0.7 {
		t.Errorf("unexpected sampling config: %d tokens, temp %v", cfg.OpenAI.MaxTokens, cfg.OpenAI.Temperature)
	}
	if cfg.Analyzer.TopN != 10 {
		t.Errorf("unexpected default top-n: %d", cfg.Analyzer.TopN)
	}
	if cfg.API.Port != 8081 {
		t.Errorf("unexpected api port: %d", cfg.API.Port)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log config: %s/%s", cfg.Log.Level, cfg.Log.Format)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SOLSCAN_API_KEY", "solscan-key")
	t.Setenv("OPENAI_API_KEY", "openai-key")
	t.Setenv("TOP_N", "40")
	t.Setenv("SOLSCAN_REQUEST_TIMEOUT", "15s")
	t.Setenv("API_PORT", "9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Analyzer.TopN != 40 {
		t.Errorf("expected top-n 40, got %d", cfg.Analyzer.TopN)
	}
	if cfg.Solscan.RequestTimeout != 15*time.Second {
		t.Errorf("expected 15s timeout, got %s", cfg.Solscan.RequestTimeout)
	}
	if cfg.API.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.API.Port)
	}
}

func TestLoad_MissingCredentials(t *testing.T) {
	tests := []struct {
		name    string
		solscan string
		openai  string
		wantErr string
	}{
		{"no solscan key", "", "openai-key", "SOLSCAN_API_KEY"},
		{"no openai key", "solscan-key", "", "OPENAI_API_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SOLSCAN_API_KEY", tt.solscan)
			t.Setenv("OPENAI_API_KEY", tt.openai)

			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error naming %s, got %v", tt.wantErr, err)
			}
		})
	}
}
