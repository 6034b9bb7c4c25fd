package converter

import (
	"GoldSentinel/internal/model"
)

const (
	// TroyOunceGrams is the mass of one Troy Ounce in grams.
	TroyOunceGrams = 31.1035
	// PawnGrams is the mass of one Pawn (Sri Lankan gold unit) in grams.
	PawnGrams = 8.0
)

const (
	currencyUSD   = "USD"
	currencyLKR   = "LKR"
	unitTroyOunce = "Troy Ounce"
	unitPawn      = "1 Pawn"
)

// ToPawn converts USD per Troy Ounce into LKR per Pawn.
func ToPawn(usdPerTroyOunce, usdToLkrRate float64) model.ConvertedPrice {
	usdPerGram := usdPerTroyOunce / TroyOunceGrams
	usdPerPawn := usdPerGram * PawnGrams
	lkrPerPawn := usdPerPawn * usdToLkrRate

	return model.ConvertedPrice{
		Price:       lkrPerPawn,
		Currency:    currencyLKR,
		Unit:        unitPawn,
		DisplayText: FormatLKR(lkrPerPawn),
	}
}

// ToTroyOunce converts LKR per Pawn back into USD per Troy Ounce.
// A zero rate is not guarded and yields Inf or NaN.
func ToTroyOunce(lkrPerPawn, usdToLkrRate float64) model.ConvertedPrice {
	usdPerPawn := lkrPerPawn / usdToLkrRate
	usdPerGram := usdPerPawn / PawnGrams
	usdPerTroyOunce := usdPerGram * TroyOunceGrams

	return model.ConvertedPrice{
		Price:       usdPerTroyOunce,
		Currency:    currencyUSD,
		Unit:        unitTroyOunce,
		DisplayText: FormatUSD(usdPerTroyOunce),
	}
}

// Convert expresses a USD per Troy Ounce price in the target unit.
// It panics if unit is outside the closed set.
func Convert(price float64, unit model.CurrencyUnit, usdToLkrRate float64) model.ConvertedPrice {
	switch unit {
	case model.UnitPawn:
		return ToPawn(price, usdToLkrRate)
	case model.UnitTroyOunce:
		return model.ConvertedPrice{
			Price:       price,
			Currency:    currencyUSD,
			Unit:        unitTroyOunce,
			DisplayText: FormatUSD(price),
		}
	}
	unit.MustValid()
	panic("unreachable")
}

// ConvertValue is Convert without the display metadata.
func ConvertValue(price float64, unit model.CurrencyUnit, usdToLkrRate float64) float64 {
	return Convert(price, unit, usdToLkrRate).Price
}
