package repository

import "github.com/MikisTh/NutriApp/internal/domain/entities"

// Reference foods. Densities are kcal per 100 g / 100 ml, or per item for "un".
var (
	banana         = entities.FoodItem{Name: "Banana", Unit: entities.UnitGrams, KcalDensity: 89}
	bananaUnidade  = entities.FoodItem{Name: "Banana", Unit: entities.UnitCount, KcalDensity: 80}
	leite          = entities.FoodItem{Name: "Leite", Unit: entities.UnitMilliliters, KcalDensity: 60}
	arroz          = entities.FoodItem{Name: "Arroz", Unit: entities.UnitGrams, KcalDensity: 125}
	arrozBranco    = entities.FoodItem{Name: "Arroz branco", Unit: entities.UnitGrams, KcalDensity: 130}
	feijao         = entities.FoodItem{Name: "Feijão", Unit: entities.UnitGrams, KcalDensity: 110}
	feijaoMacassar = entities.FoodItem{Name: "Feijão macassar", Unit: entities.UnitGrams, KcalDensity: 108}
	feijaoPreto    = entities.FoodItem{Name: "Feijão preto", Unit: entities.UnitGrams, KcalDensity: 110}
	frango         = entities.FoodItem{Name: "Frango", Unit: entities.UnitGrams, KcalDensity: 165}
	frangoGuisado  = entities.FoodItem{Name: "Frango guisado", Unit: entities.UnitGrams, KcalDensity: 165}
	strogonoff     = entities.FoodItem{Name: "Strogonoff frango", Unit: entities.UnitGrams, KcalDensity: 165}
	salada         = entities.FoodItem{Name: "Salada", Unit: entities.UnitGrams, KcalDensity: 25}
	legumes        = entities.FoodItem{Name: "Legumes", Unit: entities.UnitGrams, KcalDensity: 40}
	legumesOmelete = entities.FoodItem{Name: "Legumes (omelete)", Unit: entities.UnitGrams, KcalDensity: 20}
	tomateLimao    = entities.FoodItem{Name: "Tomate/limão", Unit: entities.UnitGrams, KcalDensity: 25}
	vinagrete      = entities.FoodItem{Name: "Vinagrete", Unit: entities.UnitGrams, KcalDensity: 62}
	maca           = entities.FoodItem{Name: "Maçã", Unit: entities.UnitCount, KcalDensity: 70}
	laranja        = entities.FoodItem{Name: "Laranja", Unit: entities.UnitCount, KcalDensity: 60}
	melao          = entities.FoodItem{Name: "Melão", Unit: entities.UnitGrams, KcalDensity: 34}
	mamao          = entities.FoodItem{Name: "Mamão", Unit: entities.UnitGrams, KcalDensity: 43}
	melancia       = entities.FoodItem{Name: "Melancia", Unit: entities.UnitGrams, KcalDensity: 30}
	cuscuz         = entities.FoodItem{Name: "Cuscuz", Unit: entities.UnitGrams, KcalDensity: 120}
	ovo            = entities.FoodItem{Name: "Ovo", Unit: entities.UnitCount, KcalDensity: 70}
	ovoFrito       = entities.FoodItem{Name: "Ovo frito", Unit: entities.UnitCount, KcalDensity: 110}
	pao            = entities.FoodItem{Name: "Pão", Unit: entities.UnitCount, KcalDensity: 140}
	queijoCoalho   = entities.FoodItem{Name: "Queijo coalho", Unit: entities.UnitGrams, KcalDensity: 270}
	macaxeira      = entities.FoodItem{Name: "Macaxeira", Unit: entities.UnitGrams, KcalDensity: 160}
	macaxeiraFrita = entities.FoodItem{Name: "Macaxeira frita", Unit: entities.UnitGrams, KcalDensity: 233}
	inhame         = entities.FoodItem{Name: "Inhame", Unit: entities.UnitGrams, KcalDensity: 85}
	cara           = entities.FoodItem{Name: "Cará", Unit: entities.UnitGrams, KcalDensity: 86}
	batataDoce     = entities.FoodItem{Name: "Batata-doce", Unit: entities.UnitGrams, KcalDensity: 86}
	pureBatata     = entities.FoodItem{Name: "Purê batata-inglesa", Unit: entities.UnitGrams, KcalDensity: 100}
	macarrao       = entities.FoodItem{Name: "Macarrão", Unit: entities.UnitGrams, KcalDensity: 158}
	sardinha       = entities.FoodItem{Name: "Sardinha", Unit: entities.UnitGrams, KcalDensity: 166}
	peixe          = entities.FoodItem{Name: "Peixe", Unit: entities.UnitGrams, KcalDensity: 133}
	charque        = entities.FoodItem{Name: "Charque", Unit: entities.UnitGrams, KcalDensity: 250}
	charqueFrita   = entities.FoodItem{Name: "Charque frita", Unit: entities.UnitGrams, KcalDensity: 250}
	mel            = entities.FoodItem{Name: "Mel", Unit: entities.UnitGrams, KcalDensity: 300}
	suco           = entities.FoodItem{Name: "Suco", Unit: entities.UnitMilliliters, KcalDensity: 45}
	sucoCaju       = entities.FoodItem{Name: "Suco caju", Unit: entities.UnitMilliliters, KcalDensity: 45}
	sucoLaranja    = entities.FoodItem{Name: "Suco laranja", Unit: entities.UnitMilliliters, KcalDensity: 40}
	sucoManga      = entities.FoodItem{Name: "Suco manga", Unit: entities.UnitMilliliters, KcalDensity: 48}
	sucoLimao      = entities.FoodItem{Name: "Suco limão", Unit: entities.UnitMilliliters, KcalDensity: 40}
	sucoGoiaba     = entities.FoodItem{Name: "Suco goiaba", Unit: entities.UnitMilliliters, KcalDensity: 48}
	sucoAcerola    = entities.FoodItem{Name: "Suco acerola", Unit: entities.UnitMilliliters, KcalDensity: 60}
)

func entry(f entities.FoodItem, qty float64) entities.MealEntry {
	return entities.MealEntry{Food: f, Quantity: qty}
}

func meal(name string, entries ...entities.MealEntry) entities.Meal {
	return entities.Meal{Name: name, Entries: entries}
}

func day(name string, meals ...entities.Meal) entities.DayPlan {
	return entities.DayPlan{DayName: name, Meals: meals}
}

// sampleWeek builds a fresh copy of the reference menu on every call,
// so callers may modify what they get back.
func sampleWeek() entities.WeeklyPlan {
	return entities.WeeklyPlan{Days: []entities.DayPlan{
		day("Segunda",
			meal("Café", entry(banana, 100), entry(leite, 200)),
			meal("Almoço", entry(arroz, 120), entry(feijao, 100), entry(frango, 120), entry(salada, 120), entry(sucoCaju, 200)),
			meal("Lanche", entry(maca, 1)),
			meal("Jantar", entry(cuscuz, 150), entry(ovo, 2), entry(legumesOmelete, 50)),
		),
		day("Terça",
			meal("Café", entry(pao, 1), entry(ovo, 2)),
			meal("Almoço", entry(macaxeira, 250), entry(sardinha, 120), entry(salada, 150), entry(sucoLaranja, 250)),
			meal("Lanche", entry(melao, 200)),
			meal("Jantar", entry(cuscuz, 150), entry(leite, 200)),
		),
		day("Quarta",
			meal("Café", entry(mamao, 150), entry(leite, 200)),
			meal("Almoço", entry(arroz, 120), entry(feijao, 100), entry(peixe, 150), entry(salada, 150), entry(sucoManga, 250)),
			meal("Lanche", entry(bananaUnidade, 1)),
			meal("Jantar", entry(inhame, 200), entry(frango, 120), entry(tomateLimao, 80)),
		),
		day("Quinta",
			meal("Café", entry(pao, 1), entry(queijoCoalho, 40), entry(mamao, 150)),
			meal("Almoço", entry(pureBatata, 150), entry(macarrao, 150), entry(strogonoff, 150), entry(legumes, 100), entry(suco, 250)),
			meal("Lanche", entry(melancia, 300)),
			meal("Jantar", entry(cara, 200), entry(ovo, 2), entry(salada, 100)),
		),
		day("Sexta",
			meal("Café", entry(banana, 100), entry(leite, 200)),
			meal("Almoço", entry(macaxeiraFrita, 150), entry(arroz, 120), entry(feijao, 100), entry(frangoGuisado, 150), entry(salada, 100), entry(sucoLimao, 200)),
			meal("Lanche", entry(laranja, 1)),
			meal("Jantar", entry(inhame, 150), entry(peixe, 150), entry(salada, 100)),
		),
		day("Sábado",
			meal("Café", entry(cuscuz, 150), entry(ovoFrito, 1)),
			meal("Almoço", entry(arroz, 120), entry(feijaoMacassar, 120), entry(charqueFrita, 100), entry(vinagrete, 80), entry(sucoGoiaba, 250)),
			meal("Lanche", entry(mamao, 150)),
			meal("Jantar", entry(batataDoce, 200), entry(ovo, 2)),
		),
		day("Domingo",
			meal("Café", entry(pao, 1), entry(ovo, 1), entry(leite, 200)),
			meal("Almoço", entry(arrozBranco, 120), entry(feijaoPreto, 100), entry(peixe, 150), entry(salada, 120), entry(sucoAcerola, 250)),
			meal("Lanche", entry(bananaUnidade, 1), entry(mel, 10)),
			meal("Jantar", entry(macaxeira, 200), entry(charque, 150), entry(vinagrete, 80)),
		),
	}}
}
