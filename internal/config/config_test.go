package config

import (
	"context"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default Port to be '8080', got '%s'", cfg.Port)
	}
	if cfg.FxStrategy != FxStrategyTable {
		t.Errorf("Expected default FxStrategy to be 'table', got '%s'", cfg.FxStrategy)
	}
	if cfg.GoldPricePath != "items.0.xauPrice" {
		t.Errorf("Expected default GoldPricePath to be 'items.0.xauPrice', got '%s'", cfg.GoldPricePath)
	}
	if cfg.LocalDataDir != "./data" {
		t.Errorf("Expected default LocalDataDir to be './data', got '%s'", cfg.LocalDataDir)
	}
	if cfg.FetchTimeoutSeconds != 30 {
		t.Errorf("Expected default FetchTimeoutSeconds to be 30, got %d", cfg.FetchTimeoutSeconds)
	}
	if cfg.UpdateSchedule != "" {
		t.Errorf("Expected default UpdateSchedule to be empty, got '%s'", cfg.UpdateSchedule)
	}
	if cfg.FuelURL == "" || cfg.FxURL == "" || cfg.GoldURL == "" {
		t.Error("Expected default source URLs to be set")
	}
}

func TestLoadCustomValues(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("FX_STRATEGY", "crossrate")
	t.Setenv("FX_URL", "https://open.er-api.com/v6/latest/USD")
	t.Setenv("GCS_BUCKET", "snapshots-bucket")
	t.Setenv("UPDATE_SCHEDULE", "0 */6 * * *")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Expected Port '9000', got '%s'", cfg.Port)
	}
	if cfg.FxStrategy != FxStrategyCrossRate {
		t.Errorf("Expected FxStrategy 'crossrate', got '%s'", cfg.FxStrategy)
	}
	if cfg.GCSBucket != "snapshots-bucket" {
		t.Errorf("Expected GCSBucket 'snapshots-bucket', got '%s'", cfg.GCSBucket)
	}
	if cfg.UpdateSchedule != "0 */6 * * *" {
		t.Errorf("Expected UpdateSchedule '0 */6 * * *', got '%s'", cfg.UpdateSchedule)
	}
}

func TestLoadRejectsBadStrategy(t *testing.T) {
	t.Setenv("FX_STRATEGY", "telepathy")

	if _, err := Load(context.Background()); err == nil {
		t.Error("Expected error for unsupported FX_STRATEGY")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"zero timeout", func(c *Config) { c.FetchTimeoutSeconds = 0 }, true},
		{"negative retries", func(c *Config) { c.FetchRetries = -1 }, true},
		{"labeled strategy", func(c *Config) { c.FxStrategy = FxStrategyLabeled }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				FxStrategy:          FxStrategyTable,
				FetchTimeoutSeconds: 30,
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
