package entities

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// PriceTable holds the BRL reference prices used to cost a shopping list.
//
// The tables are copied on construction and never mutated afterwards, so a
// PriceTable value can be shared by concurrent callers without locking.
type PriceTable struct {
	perKilogram    map[string]float64
	perUnitOrLiter map[string]float64
	unitWeights    map[string]float64
	kilogramKeys   []string
}

// NewPriceTable builds a PriceTable.
//   - perKilogram: name -> BRL/kg
//   - perUnitOrLiter: name -> BRL per unit, or BRL/L for liquids ("Leite")
//   - unitWeights: optional name -> average grams per unit, used to weigh Count entries
func NewPriceTable(perKilogram, perUnitOrLiter, unitWeights map[string]float64) PriceTable {
	t := PriceTable{
		perKilogram:    cloneMap(perKilogram),
		perUnitOrLiter: cloneMap(perUnitOrLiter),
		unitWeights:    cloneMap(unitWeights),
	}
	t.kilogramKeys = make([]string, 0, len(t.perKilogram))
	for k := range t.perKilogram {
		t.kilogramKeys = append(t.kilogramKeys, k)
	}
	slices.Sort(t.kilogramKeys)
	return t
}

func (t PriceTable) PricePerKilogram(name string) (float64, bool) {
	v, ok := t.perKilogram[name]
	return v, ok
}

func (t PriceTable) PricePerUnitOrLiter(name string) (float64, bool) {
	v, ok := t.perUnitOrLiter[name]
	return v, ok
}

func (t PriceTable) UnitWeight(name string) (float64, bool) {
	v, ok := t.unitWeights[name]
	return v, ok && v > 0
}

// KilogramKeys returns the per-kilogram names in ascending order.
func (t PriceTable) KilogramKeys() []string {
	return slices.Clone(t.kilogramKeys)
}

// MatchKilogramKey finds the per-kilogram entry for name.
//
// name is trimmed first. An exact key wins, then a key equal to name ignoring
// case (first in sorted order). Otherwise every key that contains name, or is
// contained in it, ignoring case, is a candidate; the shortest candidate wins
// and ties go to the lexicographically smallest key.
func (t PriceTable) MatchKilogramKey(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	if _, ok := t.perKilogram[name]; ok {
		return name, true
	}
	for _, k := range t.kilogramKeys {
		if strings.EqualFold(k, name) {
			return k, true
		}
	}

	lower := strings.ToLower(name)
	best := ""
	found := false
	for _, k := range t.kilogramKeys {
		lk := strings.ToLower(strings.TrimSpace(k))
		if lk == "" {
			continue
		}
		if !strings.Contains(lower, lk) && !strings.Contains(lk, lower) {
			continue
		}
		// keys are sorted, so only a strictly shorter key replaces the current one
		if !found || utf8.RuneCountInString(k) < utf8.RuneCountInString(best) {
			best, found = k, true
		}
	}
	return best, found
}

func (t PriceTable) Len() (perKilogram, perUnitOrLiter int) {
	return len(t.perKilogram), len(t.perUnitOrLiter)
}

func cloneMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
