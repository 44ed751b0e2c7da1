package extractors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"github.com/nuraksworld/sl-market-friend-data/internal/models"
)

// GramsPerTroyOunce is the troy-ounce-to-gram conversion used for gold
// pricing. Fixed by definition, not configurable.
const GramsPerTroyOunce = 31.1034768

// ErrComputation reports invalid numeric input to a derivation. Callers
// treat it as "no gold data", never as a fatal pipeline error.
var ErrComputation = errors.New("computation error")

// ExtractUSDPerOunce pulls the USD-per-troy-ounce gold price out of the
// feed payload at the given gjson path.
func ExtractUSDPerOunce(payload []byte, path string) (decimal.Decimal, error) {
	r := gjson.GetBytes(payload, path)
	if !r.Exists() {
		return decimal.Decimal{}, fmt.Errorf("gold price not found at %q", path)
	}
	d := decimal.NewFromFloat(r.Float())
	if !d.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("gold price at %q is not positive: %s", path, r.String())
	}
	return d, nil
}

// ComputeGoldPerGram converts a USD-per-ounce gold price into rupee
// prices per gram. 24k comes straight off the ounce conversion; 22k is
// always derived as 24k * 22/24. Both are rounded to 2 decimal places.
// Fails with ErrComputation when either input is non-positive.
func ComputeGoldPerGram(usdPerOunce, usdToLkr decimal.Decimal) (models.MetalQuote, error) {
	if !usdPerOunce.IsPositive() {
		return models.MetalQuote{}, fmt.Errorf("%w: usd per ounce %s", ErrComputation, usdPerOunce)
	}
	if !usdToLkr.IsPositive() {
		return models.MetalQuote{}, fmt.Errorf("%w: usd to lkr rate %s", ErrComputation, usdToLkr)
	}

	lkrPerOunce := usdPerOunce.Mul(usdToLkr)
	lkrPerGram24k := lkrPerOunce.Div(decimal.NewFromFloat(GramsPerTroyOunce))
	lkrPerGram22k := lkrPerGram24k.Mul(decimal.NewFromInt(22)).Div(decimal.NewFromInt(24))

	v24, _ := lkrPerGram24k.Round(2).Float64()
	v22, _ := lkrPerGram22k.Round(2).Float64()
	return models.MetalQuote{PerGram24K: &v24, PerGram22K: &v22}, nil
}
