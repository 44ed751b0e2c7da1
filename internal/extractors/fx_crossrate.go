package extractors

import (
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"github.com/nuraksworld/sl-market-friend-data/internal/models"
)

// Paths into the USD-quoted rates API response.
const (
	crossRateLKRPath = "rates.LKR"
	crossRateGBPPath = "rates.GBP"
	crossRateEURPath = "rates.EUR"
)

// extractCrossRates derives LKR crosses from an API that quotes every
// currency against USD and has no direct LKR cross for GBP or EUR:
// GBP->LKR = (USD->LKR) / (USD->GBP), likewise for EUR. Only the
// indicative leg can be populated this way; the source carries no
// buy/sell spread, so those stay null rather than being fabricated.
func extractCrossRates(payload []byte) models.FxRates {
	var rates models.FxRates

	usdLkr, ok := positiveResult(gjson.GetBytes(payload, crossRateLKRPath))
	if !ok {
		return rates
	}
	rates.UsdLkrSpot.Indicative = floatPtr(usdLkr)

	if usdGbp, ok := positiveResult(gjson.GetBytes(payload, crossRateGBPPath)); ok {
		rates.GbpLkr.Indicative = floatPtr(usdLkr.Div(usdGbp))
	}
	if usdEur, ok := positiveResult(gjson.GetBytes(payload, crossRateEURPath)); ok {
		rates.EurLkr.Indicative = floatPtr(usdLkr.Div(usdEur))
	}
	return rates
}

func positiveResult(r gjson.Result) (decimal.Decimal, bool) {
	if !r.Exists() {
		return decimal.Decimal{}, false
	}
	d := decimal.NewFromFloat(r.Float())
	if !d.IsPositive() {
		return decimal.Decimal{}, false
	}
	return d, true
}
