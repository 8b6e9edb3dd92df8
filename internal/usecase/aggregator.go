package usecase

import (
	"fmt"

	"github.com/cdelavallette-lang/healthapp/internal/domain"
)

// PlanEntry pairs a recipe with a serving multiplier inside a meal plan.
type PlanEntry struct {
	Recipe   domain.Recipe
	Servings float64
}

// sourceDependentNutrients are the keys whose absorption depends on
// ingredient origin; only these are tracked in SourceEvidence.
var sourceDependentNutrients = []domain.NutrientKey{
	domain.Iron,
	domain.VitaminA,
	domain.Omega3,
}

// ScaleProfile returns a new profile with every value multiplied by the
// serving count. Rejects non-positive multipliers and negative amounts.
func ScaleProfile(p domain.NutrientProfile, servings float64) (domain.NutrientProfile, error) {
	if servings <= 0 {
		return nil, fmt.Errorf("%w: serving multiplier must be positive, got %g", domain.ErrValidation, servings)
	}
	out := make(domain.NutrientProfile, len(p))
	for key, value := range p {
		if value < 0 {
			return nil, fmt.Errorf("%w: negative amount %g for nutrient %s", domain.ErrValidation, value, key)
		}
		out[key] = value * servings
	}
	return out, nil
}

// AggregatePlan sums the scaled per-serving profiles of all plan entries.
// Missing nutrient keys contribute zero. Alongside the combined totals it
// accumulates per-source sub-totals for the source-dependent nutrients:
// a recipe whose tagged ingredients agree on one source contributes to
// that source's bucket, anything mixed or untagged lands in the
// unspecified bucket.
func AggregatePlan(entries []PlanEntry) (domain.NutrientProfile, domain.SourceEvidence, error) {
	totals := domain.NutrientProfile{}
	evidence := domain.NewSourceEvidence()

	for i, entry := range entries {
		scaled, err := ScaleProfile(entry.Recipe.PerServing, entry.Servings)
		if err != nil {
			return nil, domain.SourceEvidence{}, fmt.Errorf("plan entry %d (%s): %w", i, entry.Recipe.Name, err)
		}
		for key, value := range scaled {
			totals[key] += value
		}

		src := recipeSource(entry.Recipe)
		bucket := evidence.BySource[src]
		for _, key := range sourceDependentNutrients {
			if amount, ok := scaled[key]; ok && amount > 0 {
				bucket[key] += amount
			}
		}
	}

	return totals, evidence, nil
}

// DailyAverage divides every amount by the day count, yielding a per-day
// average profile.
func DailyAverage(p domain.NutrientProfile, days int) (domain.NutrientProfile, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: day count must be positive, got %d", domain.ErrValidation, days)
	}
	out := make(domain.NutrientProfile, len(p))
	for key, value := range p {
		out[key] = value / float64(days)
	}
	return out, nil
}

// recipeSource resolves a recipe to a single source bucket. The recipe's
// per-serving profile cannot be split across its ingredients, so the
// attribution is all-or-nothing: only a recipe whose tagged ingredients
// agree on one origin gives usable evidence.
func recipeSource(r domain.Recipe) domain.SourceTag {
	resolved := domain.SourceUnspecified
	for _, ing := range r.Ingredients {
		switch ing.Source {
		case domain.SourceAnimal, domain.SourcePlant:
			if resolved == domain.SourceUnspecified {
				resolved = ing.Source
			} else if resolved != ing.Source {
				return domain.SourceUnspecified
			}
		default:
			// untagged or unspecified ingredient taints the whole recipe
			return domain.SourceUnspecified
		}
	}
	return resolved
}

// IngredientTags collects the tag set contributed by a plan's recipes,
// deduplicated, for interaction rule evaluation.
func IngredientTags(entries []PlanEntry) []string {
	seen := map[string]bool{}
	var tags []string
	for _, entry := range entries {
		for _, tag := range entry.Recipe.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags
}
