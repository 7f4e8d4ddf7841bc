package usecase

import (
	"math"
	"strings"

	"github.com/MikisTh/NutriApp/internal/domain/entities"
)

// kilogramFallback maps names the table lookup missed to a per-kilogram entry.
// Evaluated top to bottom; the first rule whose keyword appears in the name
// and whose price key exists in the table wins.
type kilogramFallback struct {
	keywords []string
	priceKey string
}

var kilogramFallbacks = []kilogramFallback{
	{keywords: []string{"arroz"}, priceKey: "Arroz"},
	{keywords: []string{"feijão", "feijao"}, priceKey: "Feijão"},
	{keywords: []string{"macaxeira", "aipim"}, priceKey: "Macaxeira"},
	{keywords: []string{"batata"}, priceKey: "Batata-doce"},
	{keywords: []string{"cará"}, priceKey: "Cará"},
	{keywords: []string{"inhame"}, priceKey: "Inhame"},
	{keywords: []string{"charque"}, priceKey: "Charque"},
	{keywords: []string{"frango"}, priceKey: "Frango"},
	{keywords: []string{"peixe"}, priceKey: "Peixe"},
}

// unitPriceRule prices Count items. DefaultPrice applies when the keyword
// matches but the table has no entry for PriceKey.
type unitPriceRule struct {
	keyword      string
	priceKey     string
	defaultPrice float64
}

var unitPriceRules = []unitPriceRule{
	{keyword: "ovo", priceKey: "Ovo", defaultPrice: 1.25},
	{keyword: "pão", priceKey: "Pão", defaultPrice: 0.80},
	{keyword: "banana", priceKey: "Banana", defaultPrice: 0.40},
	{keyword: "maçã", priceKey: "Maçã", defaultPrice: 1.50},
	{keyword: "laranja", priceKey: "Laranja", defaultPrice: 0.90},
}

const (
	milkKeyword  = "leite"
	milkPriceKey = "Leite"

	// DefaultLiquidPricePerLiter is charged for liquids other than milk.
	DefaultLiquidPricePerLiter = 6.00
)

// PriceItem estimates the BRL cost of one aggregated item.
func PriceItem(item entities.AggregatedItem, prices entities.PriceTable) entities.CostedItem {
	out := entities.CostedItem{
		Name:        item.Name,
		Quantity:    item.TotalQuantity,
		Unit:        item.Unit,
		PriceStatus: entities.PriceStatusUnpriced,
	}
	lower := strings.ToLower(item.Name)

	switch item.Unit {
	case entities.UnitGrams:
		key, ok := prices.MatchKilogramKey(item.Name)
		if !ok {
			key, ok = fallbackKilogramKey(lower, prices)
		}
		if ok {
			perKg, _ := prices.PricePerKilogram(key)
			out.EstimatedCost = RoundBRL(item.TotalQuantity / 1000 * perKg)
			out.PriceStatus = entities.PriceStatusMatched
			out.PriceKey = key
		}

	case entities.UnitMilliliters:
		if strings.Contains(lower, milkKeyword) {
			if perL, ok := prices.PricePerUnitOrLiter(milkPriceKey); ok {
				out.EstimatedCost = RoundBRL(item.TotalQuantity / 1000 * perL)
				out.PriceStatus = entities.PriceStatusMatched
				out.PriceKey = milkPriceKey
				return out
			}
		}
		out.EstimatedCost = RoundBRL(item.TotalQuantity / 1000 * DefaultLiquidPricePerLiter)
		out.PriceStatus = entities.PriceStatusEstimatedDefault

	case entities.UnitCount:
		for _, r := range unitPriceRules {
			if !strings.Contains(lower, r.keyword) {
				continue
			}
			if perUnit, ok := prices.PricePerUnitOrLiter(r.priceKey); ok {
				out.EstimatedCost = RoundBRL(item.TotalQuantity * perUnit)
				out.PriceStatus = entities.PriceStatusMatched
				out.PriceKey = r.priceKey
			} else {
				out.EstimatedCost = RoundBRL(item.TotalQuantity * r.defaultPrice)
				out.PriceStatus = entities.PriceStatusEstimatedDefault
			}
			break
		}
	}
	return out
}

func fallbackKilogramKey(lowerName string, prices entities.PriceTable) (string, bool) {
	for _, f := range kilogramFallbacks {
		if _, ok := prices.PricePerKilogram(f.priceKey); !ok {
			continue
		}
		for _, kw := range f.keywords {
			if strings.Contains(lowerName, kw) {
				return f.priceKey, true
			}
		}
	}
	return "", false
}

// RoundBRL rounds a monetary value to cents.
func RoundBRL(v float64) float64 {
	return math.Round(v*100) / 100
}
