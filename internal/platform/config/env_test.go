package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	MaxDimension int  `env:"TEST_MAX_DIMENSION" envDefault:"64"`
	Enabled      bool `env:"TEST_ENABLED"`
}

func TestParseEnvDefaults(t *testing.T) {
	t.Setenv(EnvPrefix+"TEST_MAX_DIMENSION", "")
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.MaxDimension != 64 {
		t.Fatalf("expected default 64, got %d", cfg.MaxDimension)
	}
}

func TestParseEnvUsesPrefix(t *testing.T) {
	t.Setenv("SPARSECALC_TEST_MAX_DIMENSION", "8")
	t.Setenv("TEST_MAX_DIMENSION", "99")
	t.Setenv("SPARSECALC_TEST_ENABLED", "true")
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.MaxDimension != 8 {
		t.Fatalf("expected 8 from the prefixed variable, got %d", cfg.MaxDimension)
	}
	if !cfg.Enabled {
		t.Fatal("expected Enabled")
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("SPARSECALC_TEST_MAX_DIMENSION", "not-an-int")
	var cfg envTestConfig

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
