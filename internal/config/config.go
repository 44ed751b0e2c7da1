package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// FX extraction strategies. Table scanning is the canonical strategy for
// the central bank's HTML page; "labeled" anchors on Indicative/Buy/Sell
// captions in flattened text; "crossrate" is for USD-quoted JSON APIs
// that carry no direct LKR crosses for GBP/EUR.
const (
	FxStrategyTable     = "table"
	FxStrategyLabeled   = "labeled"
	FxStrategyCrossRate = "crossrate"
)

// Config holds all configuration for the market snapshot service.
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8080"`

	// Data source URLs
	FuelURL string `env:"FUEL_URL,default=https://ceypetco.gov.lk/marketing-sales/"`
	FxURL   string `env:"FX_URL,default=https://www.cbsl.gov.lk/en/rates-and-indicators/exchange-rates"`
	GoldURL string `env:"GOLD_URL,default=https://data-asg.goldprice.org/dbXRates/USD"`

	// Extraction knobs
	FxStrategy    string `env:"FX_STRATEGY,default=table"`
	GoldPricePath string `env:"GOLD_PRICE_PATH,default=items.0.xauPrice"`

	// Storage configuration. GCS_BUCKET selects the GCS backend in the
	// gcs deployment mode; local mode writes under LOCAL_DATA_DIR.
	GCSBucket    string `env:"GCS_BUCKET"`
	LocalDataDir string `env:"LOCAL_DATA_DIR,default=./data"`

	// Optional in-process trigger. A cron expression enables periodic
	// snapshot runs; empty leaves triggering to the outside world.
	UpdateSchedule string `env:"UPDATE_SCHEDULE"`

	// Fetch behavior
	FetchTimeoutSeconds int `env:"FETCH_TIMEOUT_SECONDS,default=30"`
	FetchRetries        int `env:"FETCH_RETRIES,default=2"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	LogFormat   string `env:"LOG_FORMAT,default=text"`
}

// Load loads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the pipeline cannot act on.
func (c *Config) Validate() error {
	switch c.FxStrategy {
	case FxStrategyTable, FxStrategyLabeled, FxStrategyCrossRate:
	default:
		return fmt.Errorf("unsupported FX_STRATEGY %q", c.FxStrategy)
	}
	if c.FetchTimeoutSeconds <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT_SECONDS must be positive, got %d", c.FetchTimeoutSeconds)
	}
	if c.FetchRetries < 0 {
		return fmt.Errorf("FETCH_RETRIES must not be negative, got %d", c.FetchRetries)
	}
	return nil
}
