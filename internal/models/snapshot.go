package models

import "time"

// AppName matches the consumer-facing app this feed was built for.
const AppName = "SL Market Friend"

// Timezone is the fixed display timezone for snapshot timestamps.
const Timezone = "Asia/Colombo"

// Colombo is a fixed UTC+05:30 offset. The consumer contract pins the
// offset rather than depending on the host's tzdata.
var Colombo = time.FixedZone(Timezone, 5*3600+30*60)

// SourceURLs records which endpoint produced which snapshot section.
type SourceURLs struct {
	Fuel string `json:"fuel"`
	Fx   string `json:"fx"`
	Gold string `json:"gold"`
}

// Debug carries per-run diagnostics. Error fields are present only for
// sources that failed; consumers observe failures here, never through a
// missing document.
type Debug struct {
	RunAt       string `json:"runAt"`
	FuelError   string `json:"fuelError,omitempty"`
	FxError     string `json:"fxError,omitempty"`
	GoldError   string `json:"goldError,omitempty"`
	GoldSkipped bool   `json:"goldSkipped,omitempty"`
}

// Snapshot is the single output document of one pipeline run. Its shape
// is identical regardless of how many sources failed: every key is always
// present and only leaf values and diagnostics vary. The document is
// never mutated after assembly.
type Snapshot struct {
	App         string     `json:"app"`
	Tz          string     `json:"tz"`
	LastUpdated string     `json:"lastUpdated"`
	Sources     SourceURLs `json:"sources"`
	Fuel        FuelPrices `json:"fuel"`
	Fx          FxRates    `json:"fx"`
	Gold        MetalQuote `json:"gold"`
	Debug       Debug      `json:"debug"`
}

// RunTime returns the snapshot's timestamp as a time value. Falls back
// to the current time if the stamp is unparseable, which only happens
// for hand-built documents.
func (s *Snapshot) RunTime() time.Time {
	t, err := time.Parse(time.RFC3339, s.LastUpdated)
	if err != nil {
		return time.Now().In(Colombo)
	}
	return t
}

// NewSnapshot creates a schema-complete snapshot with every leaf null,
// stamped at the given instant in the fixed Colombo offset.
func NewSnapshot(now time.Time, sources SourceURLs) *Snapshot {
	stamp := now.In(Colombo).Format(time.RFC3339)
	return &Snapshot{
		App:         AppName,
		Tz:          Timezone,
		LastUpdated: stamp,
		Sources:     sources,
		Debug:       Debug{RunAt: stamp},
	}
}
