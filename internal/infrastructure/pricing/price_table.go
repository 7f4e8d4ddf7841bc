package pricing

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/MikisTh/NutriApp/internal/domain/entities"

	"github.com/spf13/viper"
)

var ErrInvalidPriceEntry = errors.New("invalid price entry")

// Reference prices in BRL.
var (
	defaultPerKilogram = map[string]float64{
		"Arroz":           5.80,
		"Arroz integral":  7.50,
		"Arroz branco":    6.00,
		"Feijão":          7.00,
		"Feijão carioca":  7.00,
		"Feijão preto":    7.00,
		"Macarrão":        5.00,
		"Cuscuz":          6.00,
		"Batata-doce":     4.50,
		"Batata-inglesa":  3.50,
		"Inhame":          8.00,
		"Macaxeira":       4.00,
		"Cará":            7.00,
		"Charque":         25.00,
		"Frango":          15.00,
		"Frango grelhado": 15.00,
		"Peixe":           18.00,
		"Sardinha":        12.00,
		"Queijo coalho":   25.00,
	}

	// per unit, except "Leite" which is per liter
	defaultPerUnitOrLiter = map[string]float64{
		"Pão":      0.80,
		"Ovo":      1.25,
		"Leite":    5.00,
		"Banana":   0.40,
		"Maçã":     1.50,
		"Mamão":    6.00,
		"Melão":    10.00,
		"Melancia": 12.00,
		"Laranja":  0.90,
		"Limão":    0.80,
	}
)

type priceEntry struct {
	Name  string  `mapstructure:"name"`
	Price float64 `mapstructure:"price"`
}

type weightEntry struct {
	Name  string  `mapstructure:"name"`
	Grams float64 `mapstructure:"grams"`
}

// File is the on-disk price table. Entries are merged over the built-in
// defaults unless ReplaceDefaults is set.
//
//	replace_defaults: false
//	per_kilogram:
//	  - {name: "Arroz", price: 5.80}
//	per_unit_or_liter:
//	  - {name: "Leite", price: 5.00}
//	unit_weights:
//	  - {name: "Banana", grams: 120}
type File struct {
	ReplaceDefaults bool          `mapstructure:"replace_defaults"`
	PerKilogram     []priceEntry  `mapstructure:"per_kilogram"`
	PerUnitOrLiter  []priceEntry  `mapstructure:"per_unit_or_liter"`
	UnitWeights     []weightEntry `mapstructure:"unit_weights"`
}

func DefaultPriceTable() entities.PriceTable {
	return entities.NewPriceTable(defaultPerKilogram, defaultPerUnitOrLiter, nil)
}

// LoadPriceTableFromEnv reads PRICE_TABLE_FILE; when unset the defaults are used.
func LoadPriceTableFromEnv() (entities.PriceTable, error) {
	return LoadPriceTable(strings.TrimSpace(os.Getenv("PRICE_TABLE_FILE")))
}

// LoadPriceTable reads a YAML/JSON/TOML price file. An empty path yields the defaults.
func LoadPriceTable(path string) (entities.PriceTable, error) {
	if path == "" {
		log.Printf("[mealplan][pricing] using built-in price table")
		return DefaultPriceTable(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return entities.PriceTable{}, fmt.Errorf("read price table %s: %w", path, err)
	}
	var f File
	if err := v.Unmarshal(&f); err != nil {
		return entities.PriceTable{}, fmt.Errorf("decode price table %s: %w", path, err)
	}

	table, err := f.Build()
	if err != nil {
		return entities.PriceTable{}, fmt.Errorf("price table %s: %w", path, err)
	}
	kg, un := table.Len()
	log.Printf("[mealplan][pricing] price table loaded path=%s per_kilogram=%d per_unit_or_liter=%d", path, kg, un)
	return table, nil
}

func (f File) Build() (entities.PriceTable, error) {
	perKg := map[string]float64{}
	perUnit := map[string]float64{}
	if !f.ReplaceDefaults {
		for k, v := range defaultPerKilogram {
			perKg[k] = v
		}
		for k, v := range defaultPerUnitOrLiter {
			perUnit[k] = v
		}
	}

	if err := mergePrices(perKg, f.PerKilogram); err != nil {
		return entities.PriceTable{}, err
	}
	if err := mergePrices(perUnit, f.PerUnitOrLiter); err != nil {
		return entities.PriceTable{}, err
	}

	weights := make(map[string]float64, len(f.UnitWeights))
	for _, w := range f.UnitWeights {
		name := strings.TrimSpace(w.Name)
		if name == "" || w.Grams <= 0 {
			return entities.PriceTable{}, fmt.Errorf("%w: unit weight %q=%v", ErrInvalidPriceEntry, w.Name, w.Grams)
		}
		weights[name] = w.Grams
	}
	return entities.NewPriceTable(perKg, perUnit, weights), nil
}

func mergePrices(dst map[string]float64, entries []priceEntry) error {
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" || e.Price < 0 {
			return fmt.Errorf("%w: %q=%v", ErrInvalidPriceEntry, e.Name, e.Price)
		}
		dst[name] = e.Price
	}
	return nil
}
