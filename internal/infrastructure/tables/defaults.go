package tables

import (
	"github.com/cdelavallette-lang/healthapp/internal/domain"
)

// DefaultInteractionRules returns the built-in interaction table, used when
// no rule file is configured. Thresholds live here as data; the detector
// itself knows nothing about specific nutrients.
func DefaultInteractionRules() []domain.InteractionRule {
	return []domain.InteractionRule{
		{
			ID:          "calcium_iron_competition",
			Kind:        domain.KindAntagonism,
			Name:        "Calcium-Iron Competition",
			Severity:    domain.SeverityHigh,
			Description: "High calcium and iron in the same meal; calcium can reduce iron absorption by 30-50%. Consider separating calcium-rich and iron-rich meals by 2+ hours.",
			All: []domain.Condition{
				{Nutrient: domain.Calcium, Above: 300},
				{Nutrient: domain.Iron, Above: 5},
			},
		},
		{
			ID:          "zinc_copper_imbalance",
			Kind:        domain.KindAntagonism,
			Name:        "Zinc-Copper Imbalance",
			Severity:    domain.SeverityMedium,
			Description: "Zinc to copper ratio above 15:1 (optimal is near 10:1); excess zinc can deplete copper stores over time. Add copper-rich foods (liver, shellfish, nuts).",
			All: []domain.Condition{
				{Nutrient: domain.Zinc, Above: 5},
				{Nutrient: domain.Zinc, Over: domain.Copper, Above: 15},
			},
		},
		{
			ID:          "oxalate_exposure",
			Kind:        domain.KindAntagonism,
			Name:        "Oxalate Exposure",
			Severity:    domain.SeverityMedium,
			Description: "Oxalate-bearing ingredients (spinach, beet greens, chard) bind non-heme iron and reduce its absorption. Cooking lowers oxalate content.",
			All: []domain.Condition{
				{Nutrient: domain.Iron, Above: 3},
			},
			RequireTag: "oxalate",
		},
		{
			ID:          "iron_tannin_timing",
			Kind:        domain.KindAntagonism,
			Name:        "Iron-Tannin Timing",
			Severity:    domain.SeverityLow,
			Description: "Iron-rich meal; avoid tea or coffee for 1-2 hours before and after, tannins can reduce iron absorption by 60-70%. Advisory only.",
			All: []domain.Condition{
				{Nutrient: domain.Iron, Above: 5},
			},
		},
		{
			ID:          "fiber_vitamin_binding",
			Kind:        domain.KindAntagonism,
			Name:        "High Fiber + Fat-Soluble Vitamins",
			Severity:    domain.SeverityLow,
			Description: "Very high fiber can bind vitamins A, D, E and K and reduce their absorption. Ensure adequate fats in the meal to offset the binding.",
			All: []domain.Condition{
				{Nutrient: domain.Fiber, Above: 15},
				// IU and mcg amounts weighted down to a common mg-like scale
				{Sum: []domain.WeightedTerm{
					{Nutrient: domain.VitaminA, Weight: 1},
					{Nutrient: domain.VitaminD, Weight: 1.0 / 40},
					{Nutrient: domain.VitaminE, Weight: 1},
					{Nutrient: domain.VitaminK, Weight: 1.0 / 10},
				}, Above: 100},
			},
		},
		{
			ID:          "bone_health_complex",
			Kind:        domain.KindSynergy,
			Name:        "Bone Health Complex",
			Description: "Calcium, vitamin D, vitamin K2 and magnesium present together; the complex directs calcium into bone rather than soft tissue.",
			All: []domain.Condition{
				{Nutrient: domain.Calcium, Above: 200},
				{Nutrient: domain.VitaminD, Above: 200},
				{Nutrient: domain.VitaminK2, Above: 10},
				{Nutrient: domain.Magnesium, Above: 50},
			},
		},
		{
			ID:          "iron_absorption_complex",
			Kind:        domain.KindSynergy,
			Name:        "Iron Absorption Complex",
			Description: "Vitamin C alongside iron can triple non-heme iron absorption; particularly valuable for plant-based iron sources.",
			All: []domain.Condition{
				{Nutrient: domain.Iron, Above: 3},
				{Nutrient: domain.VitaminC, Above: 25},
			},
		},
		{
			ID:          "fat_soluble_vitamin_complex",
			Kind:        domain.KindSynergy,
			Name:        "Fat-Soluble Vitamin Complex",
			Description: "Dietary fat present with fat-soluble vitamins (A, D, E or K) supports their absorption.",
			All: []domain.Condition{
				{Nutrient: domain.Fat, Above: 10},
			},
			Any: []domain.Condition{
				{Nutrient: domain.VitaminA, Above: 300},
				{Nutrient: domain.VitaminD, Above: 400},
				{Nutrient: domain.VitaminE, Above: 5},
				{Nutrient: domain.VitaminK, Above: 30},
			},
		},
	}
}

// DefaultCompletionFoods returns the built-in food suggestion table,
// keyed by the nutrient a partially met synergy is missing.
func DefaultCompletionFoods() map[domain.NutrientKey][]string {
	return map[domain.NutrientKey][]string{
		domain.Calcium:   {"Grass-fed yogurt (300mg per cup)", "Sardines with bones (350mg per 100g)", "Kale (150mg per cup)"},
		domain.VitaminD:  {"Wild salmon (600 IU per 100g)", "Pasture-raised egg yolks (50 IU per yolk)", "UV-exposed mushrooms (400 IU per 100g)"},
		domain.VitaminK2: {"Grass-fed cheese (50mcg per oz)", "Natto (850mcg per 100g)", "Pasture-raised egg yolks (15mcg per yolk)"},
		domain.Magnesium: {"Pumpkin seeds (150mg per oz)", "Cooked spinach (157mg per cup)", "Dark chocolate (95mg per oz)"},
		domain.Iron:      {"Grass-fed beef (3mg per 100g)", "Liver (6mg per 100g)", "Lentils paired with vitamin C (3mg per cup)"},
		domain.VitaminC:  {"Red bell pepper (190mg per pepper)", "Strawberries (90mg per cup)", "Broccoli (80mg per cup)"},
		domain.Zinc:      {"Oysters (78mg per 100g)", "Grass-fed beef (7mg per 100g)", "Pumpkin seeds (10mg per oz)"},
		domain.Copper:    {"Beef liver (14mg per 100g)", "Oysters (7mg per 100g)", "Cashews (2mg per oz)"},
	}
}

// DefaultBiomarkerDefinitions returns the built-in biomarker table, used
// when no definition file is configured. Ranges are functional ("optimal
// for health outcomes") targets, narrower than population deficiency
// cutoffs.
func DefaultBiomarkerDefinitions() map[domain.MarkerID]domain.BiomarkerDefinition {
	defs := map[domain.MarkerID]domain.BiomarkerDefinition{}

	add := func(id, name, unit, optimal string, sufficient, acceptableMax *float64, adjustments map[string][]string) {
		def, err := buildDefinition(biomarkerEntry{
			ID: id, Name: name, Unit: unit, Optimal: optimal,
			Sufficient: sufficient, AcceptableMax: acceptableMax,
			Adjustments: adjustments,
		})
		if err != nil {
			// The built-in table is covered by tests; a bad entry is a
			// programming error, not a runtime condition.
			panic(err)
		}
		defs[def.ID] = def
	}

	f := func(v float64) *float64 { return &v }

	add("vitamin_d", "Vitamin D (25-OH)", "ng/mL", "40-60", f(30), nil, map[string][]string{
		"below_minimum": {
			"Add fatty fish (salmon, sardines, mackerel) 3x per week",
			"Include pasture-raised egg yolks daily",
			"Consider UV-exposed mushrooms",
		},
		"below_optimal": {
			"Increase fatty fish to 2-3 servings per week",
		},
		"above_maximum": {
			"Reduce supplemental vitamin D; dietary sources alone rarely overshoot",
		},
	})

	add("ferritin", "Ferritin", "ng/mL", "50-150", f(30), nil, map[string][]string{
		"below_minimum": {
			"Add heme iron sources (grass-fed beef, liver) 2-3x per week",
			"Pair plant iron with vitamin C rich foods",
			"Avoid tea or coffee within 2 hours of iron-rich meals",
		},
		"below_optimal": {
			"Pair iron-rich meals with vitamin C sources",
		},
		"above_maximum": {
			"Reduce red meat and organ meat frequency",
		},
	})

	add("vitamin_b12", "Vitamin B12", "pg/mL", ">500", f(300), nil, map[string][]string{
		"below_minimum": {
			"Add shellfish (clams, oysters) weekly",
			"Include liver or other organ meats",
			"Eggs and dairy provide moderate B12",
		},
		"below_optimal": {
			"Increase animal-sourced foods; B12 has no plant source",
		},
	})

	add("omega3_index", "Omega-3 Index", "%", ">8", f(4), nil, map[string][]string{
		"below_minimum": {
			"Add oily fish (salmon, sardines, anchovies) 3x per week",
			"ALA sources (flax, walnuts) convert poorly; prefer EPA/DHA directly",
		},
		"below_optimal": {
			"Add one additional oily fish serving per week",
		},
	})

	add("hs_crp", "hs-CRP", "mg/L", "<1", nil, f(3), map[string][]string{
		"above_maximum": {
			"Increase omega-3 rich foods and colorful vegetables",
			"Reduce refined carbohydrates and industrial seed oils",
		},
	})

	add("fasting_glucose", "Fasting Glucose", "mg/dL", "75-90", f(65), nil, map[string][]string{
		"above_maximum": {
			"Shift carbohydrates toward fiber-rich whole food sources",
			"Front-load protein at breakfast",
		},
		"below_minimum": {
			"Add slow-digesting carbohydrates to evening meals",
		},
	})

	add("magnesium_rbc", "RBC Magnesium", "mg/dL", "5.5-7", f(4.5), nil, map[string][]string{
		"below_minimum": {
			"Add pumpkin seeds, dark leafy greens and dark chocolate",
			"Cooked spinach and chard are concentrated sources",
		},
		"below_optimal": {
			"Add one magnesium-dense food (nuts, seeds, greens) daily",
		},
	})

	return defs
}
