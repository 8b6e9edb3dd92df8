package usecase

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/cdelavallette-lang/healthapp/internal/domain"
	"github.com/cdelavallette-lang/healthapp/internal/infrastructure/tables"
)

func testService() *AnalysisService {
	return NewAnalysisService(tables.DefaultInteractionRules(), tables.DefaultCompletionFoods(), tables.DefaultBiomarkerDefinitions())
}

func TestAnalyzeMealPlan(t *testing.T) {
	svc := testService()

	lentilBowl := domain.Recipe{
		Name: "lentil bowl",
		Ingredients: []domain.Ingredient{
			{Name: "lentils", Source: domain.SourcePlant, Amount: 200, Unit: "g"},
			{Name: "red pepper", Source: domain.SourcePlant, Amount: 80, Unit: "g"},
		},
		PerServing: domain.NutrientProfile{
			domain.Iron:     6,
			domain.VitaminC: 60,
			domain.Calcium:  350,
			domain.Protein:  18,
		},
		Tags: []string{"legume"},
	}

	t.Run("full pipeline produces totals, bioavailability and findings", func(t *testing.T) {
		analysis, err := svc.AnalyzeMealPlan([]PlanEntry{{Recipe: lentilBowl, Servings: 1}}, 1)
		if err != nil {
			t.Fatalf("AnalyzeMealPlan() error = %v", err)
		}
		if !almostEqual(analysis.Totals.Raw[domain.Iron], 6) {
			t.Errorf("raw iron = %g, want 6", analysis.Totals.Raw[domain.Iron])
		}
		// plant iron, vitamin C above 25 mg: 15% absorption
		if !almostEqual(analysis.Totals.Bioavailable[domain.Iron], 0.9) {
			t.Errorf("bioavailable iron = %g, want 0.9", analysis.Totals.Bioavailable[domain.Iron])
		}
		ids := firedIDs(analysis.Findings)
		if !ids["calcium_iron_competition"] || !ids["iron_absorption_complex"] {
			t.Errorf("expected calcium-iron antagonism and iron absorption synergy, got %v", ids)
		}
	})

	t.Run("multi-day plans include a daily average", func(t *testing.T) {
		analysis, err := svc.AnalyzeMealPlan([]PlanEntry{{Recipe: lentilBowl, Servings: 7}}, 7)
		if err != nil {
			t.Fatalf("AnalyzeMealPlan() error = %v", err)
		}
		if !almostEqual(analysis.DailyAverage[domain.Iron], 6) {
			t.Errorf("daily average iron = %g, want 6", analysis.DailyAverage[domain.Iron])
		}
	})

	t.Run("multi-day detection works on the per-day average, not the sum", func(t *testing.T) {
		// per day: calcium 200, iron 4, vitamin C 10; every value is
		// below its rule threshold even though the weekly sums are not
		modest := domain.Recipe{
			Name: "daily plate",
			Ingredients: []domain.Ingredient{
				{Name: "chickpeas", Source: domain.SourcePlant, Amount: 150, Unit: "g"},
			},
			PerServing: domain.NutrientProfile{
				domain.Iron:     4,
				domain.VitaminC: 10,
				domain.Calcium:  200,
			},
		}
		analysis, err := svc.AnalyzeMealPlan([]PlanEntry{{Recipe: modest, Servings: 7}}, 7)
		if err != nil {
			t.Fatalf("AnalyzeMealPlan() error = %v", err)
		}

		ids := firedIDs(analysis.Findings)
		if ids["calcium_iron_competition"] {
			t.Errorf("calcium_iron_competition fired on weekly sums; daily calcium is only 200")
		}
		if ids["iron_absorption_complex"] {
			t.Errorf("iron_absorption_complex fired on weekly sums; daily vitamin C is only 10")
		}

		// daily vitamin C of 10 stays below the enhancement cutoff, so
		// plant iron absorbs at the 5% baseline: 28 * 0.05
		if !almostEqual(analysis.Totals.Raw[domain.Iron], 28) {
			t.Errorf("raw iron = %g, want 28", analysis.Totals.Raw[domain.Iron])
		}
		if !almostEqual(analysis.Totals.Bioavailable[domain.Iron], 1.4) {
			t.Errorf("bioavailable iron = %g, want 1.4", analysis.Totals.Bioavailable[domain.Iron])
		}
	})

	t.Run("partially met synergies surface completion suggestions", func(t *testing.T) {
		analysis, err := svc.AnalyzeMealPlan([]PlanEntry{{Recipe: domain.Recipe{
			Name:       "plain oats",
			PerServing: domain.NutrientProfile{domain.Iron: 4},
		}, Servings: 1}}, 1)
		if err != nil {
			t.Fatalf("AnalyzeMealPlan() error = %v", err)
		}
		found := false
		for _, s := range analysis.IncompleteSynergies {
			if s.RuleID == "iron_absorption_complex" {
				found = true
				if len(s.Suggestions) == 0 {
					t.Errorf("no suggestions for the missing vitamin C")
				}
			}
		}
		if !found {
			t.Errorf("iron_absorption_complex not reported as incomplete")
		}
	})

	t.Run("rejects non-positive day counts", func(t *testing.T) {
		_, err := svc.AnalyzeMealPlan(nil, 0)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("error = %v, want ErrValidation", err)
		}
	})

	t.Run("is idempotent byte for byte", func(t *testing.T) {
		entries := []PlanEntry{{Recipe: lentilBowl, Servings: 2}}
		first, err := svc.AnalyzeMealPlan(entries, 1)
		if err != nil {
			t.Fatalf("AnalyzeMealPlan() error = %v", err)
		}
		second, err := svc.AnalyzeMealPlan(entries, 1)
		if err != nil {
			t.Fatalf("AnalyzeMealPlan() error = %v", err)
		}
		a, _ := json.Marshal(first)
		b, _ := json.Marshal(second)
		if string(a) != string(b) {
			t.Errorf("two identical runs serialized differently:\n%s\n%s", a, b)
		}
	})
}

func TestEvaluateBiomarkersService(t *testing.T) {
	svc := testService()

	t.Run("classifies against the default table", func(t *testing.T) {
		result := svc.EvaluateBiomarkers([]domain.BiomarkerReading{
			{Marker: "vitamin_d", Value: 28},
			{Marker: "hs_crp", Value: 0.5},
		})
		if len(result.Deficient) != 1 || result.Deficient[0].Marker != "vitamin_d" {
			t.Errorf("deficient = %v, want vitamin_d", result.Deficient)
		}
		if len(result.Optimal) != 1 || result.Optimal[0].Marker != "hs_crp" {
			t.Errorf("optimal = %v, want hs_crp", result.Optimal)
		}
		if len(result.Recommendations) == 0 {
			t.Errorf("no recommendations for deficient vitamin D")
		}
	})

	t.Run("is idempotent byte for byte", func(t *testing.T) {
		readings := []domain.BiomarkerReading{
			{Marker: "ferritin", Value: 20},
			{Marker: "vitamin_b12", Value: 350},
		}
		a, _ := json.Marshal(svc.EvaluateBiomarkers(readings))
		b, _ := json.Marshal(svc.EvaluateBiomarkers(readings))
		if string(a) != string(b) {
			t.Errorf("two identical runs serialized differently")
		}
	})
}
