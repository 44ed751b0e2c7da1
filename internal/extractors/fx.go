package extractors

import (
	"regexp"

	"github.com/nuraksworld/sl-market-friend-data/internal/models"
	"github.com/nuraksworld/sl-market-friend-data/internal/textutil"
)

// Strategy selects how exchange rates are pulled out of the FX payload.
type Strategy string

const (
	// StrategyTable scans HTML tables for currency rows. Canonical for
	// the central bank's exchange-rate page.
	StrategyTable Strategy = "table"
	// StrategyLabeled anchors on Indicative/Buy/Sell captions in the
	// flattened page text. Documented fallback for StrategyTable.
	StrategyLabeled Strategy = "labeled"
	// StrategyCrossRate derives LKR crosses from a USD-quoted JSON API.
	StrategyCrossRate Strategy = "crossrate"
)

// currencyCodes lists the pairs tracked against the rupee, in the order
// they appear in the snapshot.
var currencyCodes = []string{"USD", "GBP", "EUR"}

var labeledPattern = map[string]*regexp.Regexp{}

func init() {
	num := `([0-9][0-9,]*(?:\.[0-9]+)?)`
	for _, code := range currencyCodes {
		// All three anchors must appear, in order; a partial triplet is
		// never fabricated from a labeled match.
		labeledPattern[code] = regexp.MustCompile(
			`(?is)\b` + code + `\b` +
				`.*?Indicative\s*:?\s*` + num +
				`.*?Buy(?:ing)?\s*:?\s*` + num +
				`.*?Sell(?:ing)?\s*:?\s*` + num)
	}
}

// ExtractRates turns one FX payload into the three tracked rate
// triplets. It never fails: a currency the payload does not cover comes
// back as the all-nil triplet. When the table scan finds nothing at all,
// the labeled strategy is applied to the same payload as a fallback.
func ExtractRates(payload []byte, strategy Strategy) models.FxRates {
	switch strategy {
	case StrategyLabeled:
		return extractLabeled(payload)
	case StrategyCrossRate:
		return extractCrossRates(payload)
	default:
		rates := extractFromTables(payload)
		if isEmptyRates(rates) {
			return extractLabeled(payload)
		}
		return rates
	}
}

func extractLabeled(payload []byte) models.FxRates {
	normalized := textutil.Flatten(tagPattern.ReplaceAllString(string(payload), " "))

	var rates models.FxRates
	for _, code := range currencyCodes {
		m := labeledPattern[code].FindStringSubmatch(normalized)
		if m == nil {
			continue
		}
		var triplet models.RateTriplet
		ind, okInd := textutil.ParseNonNegativeDecimal(m[1])
		buy, okBuy := textutil.ParseNonNegativeDecimal(m[2])
		sell, okSell := textutil.ParseNonNegativeDecimal(m[3])
		if !okInd || !okBuy || !okSell {
			continue
		}
		triplet.Indicative = floatPtr(ind)
		triplet.Buy = floatPtr(buy)
		triplet.Sell = floatPtr(sell)
		setTriplet(&rates, code, triplet)
	}
	return rates
}

func setTriplet(rates *models.FxRates, code string, t models.RateTriplet) {
	switch code {
	case "USD":
		rates.UsdLkrSpot = t
	case "GBP":
		rates.GbpLkr = t
	case "EUR":
		rates.EurLkr = t
	}
}

func getTriplet(rates *models.FxRates, code string) models.RateTriplet {
	switch code {
	case "USD":
		return rates.UsdLkrSpot
	case "GBP":
		return rates.GbpLkr
	case "EUR":
		return rates.EurLkr
	}
	return models.RateTriplet{}
}

func isEmptyRates(r models.FxRates) bool {
	return isEmptyTriplet(r.UsdLkrSpot) && isEmptyTriplet(r.GbpLkr) && isEmptyTriplet(r.EurLkr)
}

func isEmptyTriplet(t models.RateTriplet) bool {
	return t.Indicative == nil && t.Buy == nil && t.Sell == nil
}
