package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BSER_API_KEY", "test-key")
	t.Setenv("DEMIGOD_RANK_CUTOFF", "")
	t.Setenv("ENRICH_CONCURRENCY", "")

	cfg, err := Load(zerolog.Nop())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ServerPort != "5000" {
		t.Errorf("ServerPort = %q, want %q", cfg.ServerPort, "5000")
	}
	if cfg.EternityRankCutoff != 30 || cfg.DemigodRankCutoff != 1000 {
		t.Errorf("cutoffs = (%d, %d), want (30, 1000)", cfg.EternityRankCutoff, cfg.DemigodRankCutoff)
	}
	if cfg.EnrichConcurrency != 8 {
		t.Errorf("EnrichConcurrency = %d, want 8", cfg.EnrichConcurrency)
	}
	if cfg.CharacterRefreshInterval != 0 {
		t.Errorf("CharacterRefreshInterval = %v, want 0", cfg.CharacterRefreshInterval)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BSER_API_KEY", "test-key")
	t.Setenv("DEMIGOD_RANK_CUTOFF", "300")
	t.Setenv("CHARACTER_REFRESH_INTERVAL", "1h")

	cfg, err := Load(zerolog.Nop())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DemigodRankCutoff != 300 {
		t.Errorf("DemigodRankCutoff = %d, want 300", cfg.DemigodRankCutoff)
	}
	if cfg.CharacterRefreshInterval != time.Hour {
		t.Errorf("CharacterRefreshInterval = %v, want 1h", cfg.CharacterRefreshInterval)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing api key", map[string]string{"BSER_API_KEY": ""}},
		{"demigod below eternity", map[string]string{"BSER_API_KEY": "k", "ETERNITY_RANK_CUTOFF": "50", "DEMIGOD_RANK_CUTOFF": "40"}},
		{"zero concurrency", map[string]string{"BSER_API_KEY": "k", "ENRICH_CONCURRENCY": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(zerolog.Nop()); err == nil {
				t.Error("Load() error = nil, want error")
			}
		})
	}
}
