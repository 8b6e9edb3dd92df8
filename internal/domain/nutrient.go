package domain

// NutrientKey identifies a nutrient together with its unit,
// e.g. "iron_mg", "vitaminA_mcg", "omega3_mg".
type NutrientKey string

// Nutrient keys tracked by the analysis core. Recipes may carry additional
// keys; unknown keys aggregate fine but have no category or bioavailability
// rule attached.
const (
	Calories      NutrientKey = "calories"
	Protein       NutrientKey = "protein_g"
	Carbohydrates NutrientKey = "carbohydrates_g"
	Fat           NutrientKey = "fat_g"
	Fiber         NutrientKey = "fiber_g"
	Omega3        NutrientKey = "omega3_mg"

	VitaminA  NutrientKey = "vitaminA_mcg"
	VitaminC  NutrientKey = "vitaminC_mg"
	VitaminD  NutrientKey = "vitaminD_IU"
	VitaminE  NutrientKey = "vitaminE_mg"
	VitaminK  NutrientKey = "vitaminK_mcg"
	VitaminK2 NutrientKey = "vitaminK2_mcg"
	Folate    NutrientKey = "folate_B9_mcg"
	B12       NutrientKey = "cobalamin_B12_mcg"

	Calcium   NutrientKey = "calcium_mg"
	Iron      NutrientKey = "iron_mg"
	Magnesium NutrientKey = "magnesium_mg"
	Potassium NutrientKey = "potassium_mg"
	Sodium    NutrientKey = "sodium_mg"
	Zinc      NutrientKey = "zinc_mg"
	Copper    NutrientKey = "copper_mg"
	Selenium  NutrientKey = "selenium_mcg"

	Choline NutrientKey = "choline_mg"
)

// NutrientCategory groups nutrient keys for presentation.
type NutrientCategory string

const (
	CategoryMacronutrient NutrientCategory = "macronutrients"
	CategoryVitamin       NutrientCategory = "vitamins"
	CategoryMineral       NutrientCategory = "minerals"
	CategoryOther         NutrientCategory = "other"
)

var nutrientCategories = map[NutrientKey]NutrientCategory{
	Calories:      CategoryMacronutrient,
	Protein:       CategoryMacronutrient,
	Carbohydrates: CategoryMacronutrient,
	Fat:           CategoryMacronutrient,
	Fiber:         CategoryMacronutrient,
	Omega3:        CategoryMacronutrient,
	VitaminA:      CategoryVitamin,
	VitaminC:      CategoryVitamin,
	VitaminD:      CategoryVitamin,
	VitaminE:      CategoryVitamin,
	VitaminK:      CategoryVitamin,
	VitaminK2:     CategoryVitamin,
	Folate:        CategoryVitamin,
	B12:           CategoryVitamin,
	Calcium:       CategoryMineral,
	Iron:          CategoryMineral,
	Magnesium:     CategoryMineral,
	Potassium:     CategoryMineral,
	Sodium:        CategoryMineral,
	Zinc:          CategoryMineral,
	Copper:        CategoryMineral,
	Selenium:      CategoryMineral,
	Choline:       CategoryOther,
}

// CategoryOf returns the presentation group for a nutrient key.
// Unknown keys fall into CategoryOther.
func CategoryOf(key NutrientKey) NutrientCategory {
	if c, ok := nutrientCategories[key]; ok {
		return c
	}
	return CategoryOther
}

// NutrientProfile maps nutrient keys to non-negative amounts. A missing key
// always means zero.
type NutrientProfile map[NutrientKey]float64

// Clone returns an independent copy of the profile.
func (p NutrientProfile) Clone() NutrientProfile {
	out := make(NutrientProfile, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// SourceTag classifies an ingredient's origin for bioavailability purposes.
type SourceTag string

const (
	SourceAnimal      SourceTag = "animal"
	SourcePlant       SourceTag = "plant"
	SourceUnspecified SourceTag = "unspecified"
)

// Ingredient is a component of a Recipe.
type Ingredient struct {
	Name   string    `json:"name"`
	Source SourceTag `json:"source"`
	Amount float64   `json:"amount"`
	Unit   string    `json:"unit"`
}

// Recipe is an immutable recipe record. PerServing holds nutrient amounts
// for exactly one serving.
type Recipe struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Ingredients []Ingredient    `json:"ingredients"`
	PerServing  NutrientProfile `json:"perServing"`
	Tags        []string        `json:"tags,omitempty"`
}

// SourceEvidence carries raw sub-totals per ingredient source for the
// nutrients whose absorption depends on origin. Nutrient mass from recipes
// that mix sources (or carry no source tags) lands in the
// SourceUnspecified bucket, which the bioavailability adjuster treats as
// absent evidence for that nutrient.
type SourceEvidence struct {
	BySource map[SourceTag]NutrientProfile `json:"bySource"`
}

// NewSourceEvidence returns evidence with all three buckets initialized.
func NewSourceEvidence() SourceEvidence {
	return SourceEvidence{BySource: map[SourceTag]NutrientProfile{
		SourceAnimal:      {},
		SourcePlant:       {},
		SourceUnspecified: {},
	}}
}

// Scaled returns a copy of the evidence with every amount multiplied
// by factor.
func (e SourceEvidence) Scaled(factor float64) SourceEvidence {
	out := NewSourceEvidence()
	for src, profile := range e.BySource {
		bucket, ok := out.BySource[src]
		if !ok {
			bucket = NutrientProfile{}
			out.BySource[src] = bucket
		}
		for key, value := range profile {
			bucket[key] = value * factor
		}
	}
	return out
}

// Amount returns the sub-total for a nutrient in one source bucket.
func (e SourceEvidence) Amount(src SourceTag, key NutrientKey) float64 {
	if e.BySource == nil {
		return 0
	}
	return e.BySource[src][key]
}

// NutrientTotals pairs raw aggregated amounts with the bioavailable subset.
// Bioavailable holds only nutrients that have a conversion rule and
// sufficient source evidence; absence means "not modeled", not "fully
// bioavailable". For every key present, Bioavailable[n] <= Raw[n].
type NutrientTotals struct {
	Raw          NutrientProfile `json:"raw"`
	Bioavailable NutrientProfile `json:"bioavailable"`
}
