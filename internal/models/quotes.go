package models

// PriceQuote is one fuel-grade price point. Nil fields mean the value was
// not extracted from the source, never that it is zero.
type PriceQuote struct {
	Value         *float64 `json:"value"`
	EffectiveDate *string  `json:"effectiveDate"`
}

// RateTriplet is one currency pair's quote. A source exposing only a
// mid-rate populates Indicative and leaves Buy/Sell nil.
type RateTriplet struct {
	Indicative *float64 `json:"indicative"`
	Buy        *float64 `json:"buy"`
	Sell       *float64 `json:"sell"`
}

// MetalQuote is the gold section. PerGram22K is always derived as
// PerGram24K * 22/24, never fetched on its own, so a nil 24k price
// implies a nil 22k price.
type MetalQuote struct {
	PerGram24K *float64 `json:"lkr_per_gram_24k"`
	PerGram22K *float64 `json:"lkr_per_gram_22k"`
	Notes      string   `json:"notes"`
}

// FuelProduct identifies one of the five tracked fuel grades.
type FuelProduct string

const (
	Petrol92    FuelProduct = "petrol_92"
	Petrol95    FuelProduct = "petrol_95"
	DieselAuto  FuelProduct = "diesel_auto"
	DieselSuper FuelProduct = "diesel_super"
	Kerosene    FuelProduct = "kerosene"
)

// FuelProducts lists every tracked grade in output order.
var FuelProducts = []FuelProduct{Petrol92, Petrol95, DieselAuto, DieselSuper, Kerosene}

// FuelPrices holds one quote per tracked grade. Every key is always
// present in the JSON output even when nothing was extracted.
type FuelPrices struct {
	Petrol92    PriceQuote `json:"petrol_92"`
	Petrol95    PriceQuote `json:"petrol_95"`
	DieselAuto  PriceQuote `json:"diesel_auto"`
	DieselSuper PriceQuote `json:"diesel_super"`
	Kerosene    PriceQuote `json:"kerosene"`
}

// Set assigns the quote for a product. Unknown products are ignored.
func (f *FuelPrices) Set(p FuelProduct, q PriceQuote) {
	switch p {
	case Petrol92:
		f.Petrol92 = q
	case Petrol95:
		f.Petrol95 = q
	case DieselAuto:
		f.DieselAuto = q
	case DieselSuper:
		f.DieselSuper = q
	case Kerosene:
		f.Kerosene = q
	}
}

// Get returns the quote for a product.
func (f *FuelPrices) Get(p FuelProduct) PriceQuote {
	switch p {
	case Petrol92:
		return f.Petrol92
	case Petrol95:
		return f.Petrol95
	case DieselAuto:
		return f.DieselAuto
	case DieselSuper:
		return f.DieselSuper
	case Kerosene:
		return f.Kerosene
	}
	return PriceQuote{}
}

// FxRates holds the three tracked currency pairs against the rupee.
type FxRates struct {
	UsdLkrSpot RateTriplet `json:"usd_lkr_spot"`
	GbpLkr     RateTriplet `json:"gbp_lkr"`
	EurLkr     RateTriplet `json:"eur_lkr"`
}
