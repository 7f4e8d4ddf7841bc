package entities

import "testing"

func TestPriceTable_MatchKilogramKey(t *testing.T) {
	table := NewPriceTable(map[string]float64{
		"Arroz":          6,
		"Arroz integral": 7.5,
		"Carne":          40,
		"Cará":           7,
		"Feijão":         8,
		"Peixe":          30,
	}, nil, nil)

	cases := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{name: "Arroz integral", want: "Arroz integral", wantOK: true},
		{name: "arroz integral", want: "Arroz integral", wantOK: true},
		{name: "ARROZ INTEGRAL", want: "Arroz integral", wantOK: true},
		{name: "  Arroz integral  ", want: "Arroz integral", wantOK: true},
		{name: "FEIJÃO", want: "Feijão", wantOK: true},
		{name: "Arroz integral cozido", want: "Arroz", wantOK: true},
		{name: "feijão preto", want: "Feijão", wantOK: true},
		{name: "cara", wantOK: false},
		{name: "Carne de sol com cará", want: "Cará", wantOK: true},
		{name: "pei", want: "Peixe", wantOK: true},
		{name: "Tomate", wantOK: false},
		{name: "   ", wantOK: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := table.MatchKilogramKey(tc.name)
			if ok != tc.wantOK || got != tc.want {
				t.Fatalf("expected %q/%v, got %q/%v", tc.want, tc.wantOK, got, ok)
			}
		})
	}
}

func TestPriceTable_TieBreakIsLexicographic(t *testing.T) {
	table := NewPriceTable(map[string]float64{"Peixe": 30, "Frang": 20}, nil, nil)
	got, ok := table.MatchKilogramKey("peixe com frango")
	if !ok || got != "Frang" {
		t.Fatalf("expected Frang, got %q/%v", got, ok)
	}
}

func TestPriceTable_IsImmutable(t *testing.T) {
	src := map[string]float64{"Arroz": 6}
	table := NewPriceTable(src, nil, map[string]float64{"Banana": 120, "Ovo": 0})
	src["Arroz"] = 100
	src["Feijão"] = 8

	if p, _ := table.PricePerKilogram("Arroz"); p != 6 {
		t.Fatalf("expected 6, got %v", p)
	}
	if _, ok := table.PricePerKilogram("Feijão"); ok {
		t.Fatalf("expected caller map changes to be ignored")
	}

	keys := table.KilogramKeys()
	keys[0] = "changed"
	if table.KilogramKeys()[0] != "Arroz" {
		t.Fatalf("KilogramKeys must return a copy")
	}

	if g, ok := table.UnitWeight("Banana"); !ok || g != 120 {
		t.Fatalf("expected Banana 120, got %v/%v", g, ok)
	}
	if _, ok := table.UnitWeight("Ovo"); ok {
		t.Fatalf("expected zero weight to be ignored")
	}
	if kg, un := table.Len(); kg != 1 || un != 0 {
		t.Fatalf("unexpected lengths %d/%d", kg, un)
	}
}
