package extractors

import (
	"regexp"

	"github.com/nuraksworld/sl-market-friend-data/internal/models"
	"github.com/nuraksworld/sl-market-friend-data/internal/textutil"
)

// fuelLabels maps each tracked grade to the product caption used on the
// retailer's price page. Captions have been stable even when the page
// markup around them was not.
var fuelLabels = map[models.FuelProduct]string{
	models.Petrol92:    "Lanka Petrol 92 Octane",
	models.Petrol95:    "Lanka Petrol 95 Octane",
	models.DieselAuto:  "Lanka Auto Diesel",
	models.DieselSuper: "Lanka Super Diesel",
	models.Kerosene:    "Lanka Kerosene",
}

var (
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
	fuelNumber  = `([0-9][0-9,]*(?:\.[0-9]+)?)`
	fuelDate    = `([0-9]{1,2}[-/.][0-9]{1,2}[-/.][0-9]{4})`
	fuelPattern = map[models.FuelProduct]*regexp.Regexp{}
)

func init() {
	for product, label := range fuelLabels {
		// Label, price and effective date may be separated by arbitrary
		// unrelated content. The permissive match survives markup churn
		// at the cost of cross-matching into the next product's block
		// when a page drops a product entirely; that risk is accepted.
		fuelPattern[product] = regexp.MustCompile(
			`(?is)` + regexp.QuoteMeta(label) +
				`.*?Rs\.?\s*` + fuelNumber +
				`.*?Effect\s+from\s*:?\s*` + fuelDate)
	}
}

// ExtractFuelPrices pulls one PriceQuote per tracked grade out of the
// fuel price page. It never fails: a grade whose block is missing or
// malformed yields a quote with nil fields, and each grade is matched
// independently so one bad block cannot poison the others.
func ExtractFuelPrices(pageText string) map[models.FuelProduct]models.PriceQuote {
	normalized := textutil.Flatten(tagPattern.ReplaceAllString(pageText, " "))

	quotes := make(map[models.FuelProduct]models.PriceQuote, len(fuelLabels))
	for _, product := range models.FuelProducts {
		quotes[product] = extractFuelQuote(normalized, product)
	}
	return quotes
}

func extractFuelQuote(normalized string, product models.FuelProduct) models.PriceQuote {
	var quote models.PriceQuote

	m := fuelPattern[product].FindStringSubmatch(normalized)
	if m == nil {
		return quote
	}

	if d, ok := textutil.ParseNonNegativeDecimal(m[1]); ok {
		v, _ := d.Round(2).Float64()
		quote.Value = &v
	}
	if iso, ok := textutil.NormalizeDMY(m[2]); ok {
		quote.EffectiveDate = &iso
	}
	return quote
}
