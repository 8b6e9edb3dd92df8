package usecase

import (
	"fmt"

	"github.com/cdelavallette-lang/healthapp/internal/domain"
)

// MealPlanAnalysis is the outcome of one meal-plan analysis run.
type MealPlanAnalysis struct {
	Totals              domain.NutrientTotals      `json:"totals"`
	DailyAverage        domain.NutrientProfile     `json:"dailyAverage,omitempty"`
	Findings            []domain.InteractionRule   `json:"findings"`
	IncompleteSynergies []domain.IncompleteSynergy `json:"incompleteSynergies,omitempty"`
}

// AnalysisService runs the computation pipeline over loaded tables. The
// tables are read-only after construction, so a single service instance is
// safe for concurrent callers; every invocation is a pure function of its
// arguments and produces a fresh result.
type AnalysisService struct {
	rules      []domain.InteractionRule
	foods      map[domain.NutrientKey][]string
	biomarkers map[domain.MarkerID]domain.BiomarkerDefinition
}

// NewAnalysisService creates a service over the given rule, completion
// food and definition tables.
func NewAnalysisService(rules []domain.InteractionRule, foods map[domain.NutrientKey][]string, biomarkers map[domain.MarkerID]domain.BiomarkerDefinition) *AnalysisService {
	return &AnalysisService{
		rules:      rules,
		foods:      foods,
		biomarkers: biomarkers,
	}
}

// AnalyzeMealPlan aggregates the plan, applies bioavailability rules, and
// scans for interaction effects. Rule thresholds and the vitamin C
// enhancement are meal scoped, so plans spanning more than one day are
// evaluated against the per-day average rather than the undivided sum;
// absorbable amounts scale back to plan totals afterwards. A day count
// > 1 additionally yields the per-day average of the raw totals;
// days <= 0 is rejected.
func (s *AnalysisService) AnalyzeMealPlan(entries []PlanEntry, days int) (*MealPlanAnalysis, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: day count must be positive, got %d", domain.ErrValidation, days)
	}

	raw, evidence, err := AggregatePlan(entries)
	if err != nil {
		return nil, err
	}

	perDayRaw := raw
	perDayEvidence := evidence
	if days > 1 {
		perDayRaw, err = DailyAverage(raw, days)
		if err != nil {
			return nil, err
		}
		perDayEvidence = evidence.Scaled(1 / float64(days))
	}

	perDay := AdjustBioavailability(perDayRaw, perDayEvidence)
	bio := perDay.Bioavailable
	if days > 1 {
		bio = bio.Clone()
		for key := range bio {
			bio[key] *= float64(days)
			if bio[key] > raw[key] {
				bio[key] = raw[key]
			}
		}
	}

	analysis := &MealPlanAnalysis{
		Totals:              domain.NutrientTotals{Raw: raw, Bioavailable: bio},
		Findings:            DetectInteractions(s.rules, perDay, IngredientTags(entries)),
		IncompleteSynergies: DetectIncompleteSynergies(s.rules, perDay, s.foods),
	}
	if days > 1 {
		analysis.DailyAverage = perDayRaw
	}
	return analysis, nil
}

// EvaluateBiomarkers classifies the readings against the loaded definition
// table and derives recommendations.
func (s *AnalysisService) EvaluateBiomarkers(readings []domain.BiomarkerReading) *domain.AnalysisResult {
	result := EvaluateBiomarkers(readings, s.biomarkers)
	return &result
}

// Definition exposes one biomarker definition by canonical id, for callers
// that need display metadata.
func (s *AnalysisService) Definition(id domain.MarkerID) (domain.BiomarkerDefinition, bool) {
	def, ok := s.biomarkers[id]
	return def, ok
}
