package assembler

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nuraksworld/sl-market-friend-data/internal/config"
	"github.com/nuraksworld/sl-market-friend-data/internal/extractors"
	"github.com/nuraksworld/sl-market-friend-data/internal/fetchers"
	"github.com/nuraksworld/sl-market-friend-data/internal/logger"
	"github.com/nuraksworld/sl-market-friend-data/internal/models"
)

// Fetcher is the transport collaborator the assembler fetches raw
// source payloads through.
type Fetcher interface {
	FetchText(ctx context.Context, url string) ([]byte, error)
	FetchJSON(ctx context.Context, url string) ([]byte, error)
}

// sourceState tracks one source pipeline through a run.
type sourceState int

const (
	statePending sourceState = iota
	stateExtracted
	stateFailed
)

// goldNotes is the fixed note on the gold section.
const goldNotes = "22k price derived from 24k at 22/24 purity"

// Assembler orchestrates fetch, extraction and derivation for all
// sources and merges the results into one snapshot. A run never fails:
// per-source failures become diagnostics and null sections, and a
// schema-complete snapshot is always produced.
type Assembler struct {
	cfg     *config.Config
	fetcher Fetcher
	log     *logger.Logger
	now     func() time.Time
}

// New creates an assembler over the given configuration and transport.
func New(cfg *config.Config, fetcher Fetcher) *Assembler {
	return &Assembler{
		cfg:     cfg,
		fetcher: fetcher,
		log:     logger.Global().WithComponent("assembler"),
		now:     time.Now,
	}
}

// SetClock overrides the timestamp source. Used by tests.
func (a *Assembler) SetClock(now func() time.Time) {
	a.now = now
}

type fuelResult struct {
	state  sourceState
	quotes map[models.FuelProduct]models.PriceQuote
	err    error
}

type fxResult struct {
	state sourceState
	rates models.FxRates
	err   error
}

// Run executes one snapshot pipeline. The fuel and FX pipelines run
// concurrently; gold runs after FX because it needs the USD rate.
func (a *Assembler) Run(ctx context.Context) *models.Snapshot {
	snap := models.NewSnapshot(a.now(), models.SourceURLs{
		Fuel: fetchers.SanitizeURL(a.cfg.FuelURL),
		Fx:   fetchers.SanitizeURL(a.cfg.FxURL),
		Gold: fetchers.SanitizeURL(a.cfg.GoldURL),
	})

	fuelChan := make(chan fuelResult, 1)
	fxChan := make(chan fxResult, 1)

	go func() { fuelChan <- a.runFuel(ctx) }()
	go func() { fxChan <- a.runFx(ctx) }()

	fuel := <-fuelChan
	fx := <-fxChan

	if fuel.state == stateExtracted {
		for product, quote := range fuel.quotes {
			snap.Fuel.Set(product, quote)
		}
	} else {
		snap.Debug.FuelError = fetchers.Diagnostic(fuel.err)
		a.log.Error("fuel source failed", fuel.err)
	}

	if fx.state == stateExtracted {
		snap.Fx = fx.rates
	} else {
		snap.Debug.FxError = fetchers.Diagnostic(fx.err)
		a.log.Error("fx source failed", fx.err)
	}

	a.runGold(ctx, snap, fx)

	a.log.Info("snapshot assembled", map[string]interface{}{
		"fuelOK": fuel.state == stateExtracted,
		"fxOK":   fx.state == stateExtracted,
		"goldOK": snap.Gold.PerGram24K != nil,
	})
	return snap
}

// runFuel fetches the fuel price page and extracts one quote per grade.
func (a *Assembler) runFuel(ctx context.Context) (res fuelResult) {
	defer func() {
		if r := recover(); r != nil {
			res = fuelResult{state: stateFailed, err: fmt.Errorf("fuel extraction panicked: %v", r)}
		}
	}()

	payload, err := a.fetcher.FetchText(ctx, a.cfg.FuelURL)
	if err != nil {
		return fuelResult{state: stateFailed, err: err}
	}
	return fuelResult{
		state:  stateExtracted,
		quotes: extractors.ExtractFuelPrices(string(payload)),
	}
}

// runFx fetches the FX payload and extracts the rate triplets with the
// configured strategy.
func (a *Assembler) runFx(ctx context.Context) (res fxResult) {
	defer func() {
		if r := recover(); r != nil {
			res = fxResult{state: stateFailed, err: fmt.Errorf("fx extraction panicked: %v", r)}
		}
	}()

	strategy := extractors.Strategy(a.cfg.FxStrategy)

	var payload []byte
	var err error
	if strategy == extractors.StrategyCrossRate {
		payload, err = a.fetcher.FetchJSON(ctx, a.cfg.FxURL)
	} else {
		payload, err = a.fetcher.FetchText(ctx, a.cfg.FxURL)
	}
	if err != nil {
		return fxResult{state: stateFailed, err: err}
	}
	return fxResult{
		state: stateExtracted,
		rates: extractors.ExtractRates(payload, strategy),
	}
}

// runGold fills the gold section. It hard-depends on a successfully
// extracted USD rate: without one the gold fetch is skipped outright
// for this run rather than retried independently.
func (a *Assembler) runGold(ctx context.Context, snap *models.Snapshot, fx fxResult) {
	snap.Gold.Notes = goldNotes

	usd := fx.rates.UsdLkrSpot.Indicative
	if fx.state != stateExtracted || usd == nil {
		snap.Debug.GoldSkipped = true
		snap.Debug.GoldError = "dependency unmet: no USD/LKR rate from fx source"
		a.log.Warn("gold computation skipped, no USD/LKR rate")
		return
	}

	payload, err := a.fetcher.FetchJSON(ctx, a.cfg.GoldURL)
	if err != nil {
		snap.Debug.GoldError = fetchers.Diagnostic(err)
		a.log.Error("gold source failed", err)
		return
	}

	usdPerOunce, err := extractors.ExtractUSDPerOunce(payload, a.cfg.GoldPricePath)
	if err != nil {
		snap.Debug.GoldError = fetchers.Diagnostic(err)
		a.log.Error("gold extraction failed", err)
		return
	}

	quote, err := extractors.ComputeGoldPerGram(usdPerOunce, decimal.NewFromFloat(*usd))
	if err != nil {
		snap.Debug.GoldError = fetchers.Diagnostic(err)
		a.log.Error("gold computation failed", err)
		return
	}
	quote.Notes = goldNotes
	snap.Gold = quote
}
