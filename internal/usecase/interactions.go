package usecase

import (
	"github.com/cdelavallette-lang/healthapp/internal/domain"
)

// DetectInteractions evaluates every rule in the table independently
// against the raw totals and the contributing ingredient tags, returning
// the rules that fired in table order. Rules never depend on each other
// and missing nutrients count as zero, never as a rule skip.
func DetectInteractions(rules []domain.InteractionRule, totals domain.NutrientTotals, tags []string) []domain.InteractionRule {
	tagSet := make(map[string]bool, len(tags))
	for _, t := range tags {
		tagSet[t] = true
	}

	var fired []domain.InteractionRule
	for _, rule := range rules {
		if ruleSatisfied(rule, totals.Raw, tagSet) {
			fired = append(fired, rule)
		}
	}
	return fired
}

func ruleSatisfied(rule domain.InteractionRule, raw domain.NutrientProfile, tags map[string]bool) bool {
	if rule.RequireTag != "" && !tags[rule.RequireTag] {
		return false
	}
	for _, cond := range rule.All {
		if !cond.Holds(raw) {
			return false
		}
	}
	if len(rule.Any) > 0 {
		met := false
		for _, cond := range rule.Any {
			if cond.Holds(raw) {
				met = true
				break
			}
		}
		if !met {
			return false
		}
	}
	return true
}

// DetectIncompleteSynergies reports synergy rules that are partially
// met: some nutrient thresholds hold while others do not. Only
// threshold conditions participate, since a ratio or weighted sum
// names no single nutrient to add; an unmet Any group contributes all
// of its nutrients as alternatives. foods maps a nutrient to suggested
// additions, and nutrients without an entry produce no suggestion.
func DetectIncompleteSynergies(rules []domain.InteractionRule, totals domain.NutrientTotals, foods map[domain.NutrientKey][]string) []domain.IncompleteSynergy {
	var incomplete []domain.IncompleteSynergy
	for _, rule := range rules {
		if rule.Kind != domain.KindSynergy {
			continue
		}

		var present, missing []domain.NutrientKey
		for _, cond := range rule.All {
			if !cond.IsThreshold() {
				continue
			}
			if cond.Holds(totals.Raw) {
				present = append(present, cond.Nutrient)
			} else {
				missing = append(missing, cond.Nutrient)
			}
		}
		if len(rule.Any) > 0 {
			anyMet := false
			for _, cond := range rule.Any {
				if cond.IsThreshold() && cond.Holds(totals.Raw) {
					present = append(present, cond.Nutrient)
					anyMet = true
				}
			}
			if !anyMet {
				for _, cond := range rule.Any {
					if cond.IsThreshold() {
						missing = append(missing, cond.Nutrient)
					}
				}
			}
		}

		if len(present) == 0 || len(missing) == 0 {
			continue
		}

		var suggestions []string
		for _, key := range missing {
			suggestions = append(suggestions, foods[key]...)
		}
		incomplete = append(incomplete, domain.IncompleteSynergy{
			RuleID:      rule.ID,
			Name:        rule.Name,
			Description: rule.Description,
			Present:     present,
			Missing:     missing,
			Suggestions: suggestions,
		})
	}
	return incomplete
}
