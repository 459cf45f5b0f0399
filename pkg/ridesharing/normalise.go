package ridesharing

import (
	"math"
	"strings"

	"github.com/travigo/ridesharing/pkg/ctdf"
)

const (
	GenderMale    = "male"
	GenderFemale  = "female"
	GenderUnknown = "unknown"
)

// RescaleRating maps a rating from the provider native scale linearly onto the configured scale
func RescaleRating(value float64, nativeMin float64, nativeMax float64, scaleMin float64, scaleMax float64) float64 {
	if nativeMax <= nativeMin {
		return scaleMin
	}

	value = math.Max(nativeMin, math.Min(nativeMax, value))

	return scaleMin + (value-nativeMin)/(nativeMax-nativeMin)*(scaleMax-scaleMin)
}

// NewRating builds the driver rating for a provider, a rating without any reviews has no value
func NewRating(config ProviderConfig, value float64, count int, nativeMin float64, nativeMax float64) ctdf.Rating {
	rating := ctdf.Rating{
		Count:    count,
		ScaleMin: config.RatingScaleMin,
		ScaleMax: config.RatingScaleMax,
	}

	if count > 0 {
		rescaled := RescaleRating(value, nativeMin, nativeMax, config.RatingScaleMin, config.RatingScaleMax)
		rating.Value = &rescaled
	}

	return rating
}

func NormaliseGender(gender string) string {
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "male", "m", "man", "h", "homme":
		return GenderMale
	case "female", "f", "woman", "femme":
		return GenderFemale
	default:
		return GenderUnknown
	}
}

// Currency describes how an ISO currency is presented on tickets
type Currency struct {
	Label       string  `yaml:"label" json:"label" validate:"required"`
	MinorFactor float64 `yaml:"minor_factor" json:"minor_factor" validate:"gt=0"`
}

// CurrencyTable is keyed by upper case ISO 4217 code. The mapping is provider and currency
// specific, EUR becoming centime is only the default.
type CurrencyTable map[string]Currency

func DefaultCurrencyTable() CurrencyTable {
	return CurrencyTable{
		"EUR": {Label: "centime", MinorFactor: 100},
	}
}

// Normalise converts a price into the ticket currency subunit
func (t CurrencyTable) Normalise(price Price) (float64, string) {
	code := strings.ToUpper(strings.TrimSpace(price.Currency))

	currency, exists := t[code]
	if !exists {
		return price.Amount, strings.ToLower(code)
	}

	if price.Unit == PriceUnitMajor {
		return math.Round(price.Amount*currency.MinorFactor*100) / 100, currency.Label
	}

	return price.Amount, currency.Label
}
