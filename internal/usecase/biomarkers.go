package usecase

import (
	"strconv"
	"strings"

	"github.com/cdelavallette-lang/healthapp/internal/domain"
)

// ClassifyReading evaluates one reading against a parsed range spec.
// Exactly one tier comes back; non-optimal tiers also name the crossed
// boundary, which keys the adjustment lookup.
func ClassifyReading(value float64, spec domain.RangeSpec) (domain.Tier, domain.CrossedTier) {
	switch spec.Kind {
	case domain.RangeAbove:
		if value >= spec.Threshold {
			return domain.TierOptimal, ""
		}
		if spec.HasSufficientFloor && value >= spec.SufficientFloor {
			return domain.TierSuboptimal, domain.CrossedBelowOptimal
		}
		return domain.TierDeficient, domain.CrossedBelowMinimum

	case domain.RangeBelow:
		if value < spec.Threshold {
			return domain.TierOptimal, ""
		}
		if spec.HasAcceptableMax && value <= spec.AcceptableMax {
			return domain.TierSuboptimal, domain.CrossedAboveMaximum
		}
		return domain.TierDeficient, domain.CrossedAboveMaximum

	default: // domain.RangeBetween
		if value > spec.Max {
			// No elevated tier is defined for closed-interval markers;
			// above-range readings classify as suboptimal pending product
			// clarification.
			return domain.TierSuboptimal, domain.CrossedAboveMaximum
		}
		if value >= spec.Min {
			return domain.TierOptimal, ""
		}
		if spec.HasSufficientFloor && value >= spec.SufficientFloor {
			return domain.TierSuboptimal, domain.CrossedBelowOptimal
		}
		return domain.TierDeficient, domain.CrossedBelowMinimum
	}
}

// EvaluateBiomarkers classifies each reading against its definition and
// derives the recommendation list. Readings without a matching definition
// are dropped; markers are independent of one another. The result is a
// pure function of readings and definitions, so identical inputs yield
// identical results.
func EvaluateBiomarkers(readings []domain.BiomarkerReading, defs map[domain.MarkerID]domain.BiomarkerDefinition) domain.AnalysisResult {
	result := domain.AnalysisResult{
		Optimal:    []domain.EvaluatedMarker{},
		Suboptimal: []domain.EvaluatedMarker{},
		Deficient:  []domain.EvaluatedMarker{},
	}

	for _, reading := range readings {
		def, ok := defs[reading.Marker]
		if !ok {
			continue
		}
		tier, crossed := ClassifyReading(reading.Value, def.Range)
		evaluated := domain.EvaluatedMarker{
			Marker:  def.ID,
			Name:    def.Name,
			Unit:    def.Unit,
			Value:   reading.Value,
			Tier:    tier,
			Crossed: crossed,
			Range:   def.Range.Display,
		}
		switch tier {
		case domain.TierOptimal:
			result.Optimal = append(result.Optimal, evaluated)
		case domain.TierSuboptimal:
			result.Suboptimal = append(result.Suboptimal, evaluated)
		case domain.TierDeficient:
			result.Deficient = append(result.Deficient, evaluated)
		}
	}

	result.Recommendations = GenerateRecommendations(result.Suboptimal, result.Deficient, defs)
	return result
}

// GenerateRecommendations maps non-optimal markers to dietary adjustments,
// looked up by the tier boundary each reading crossed. Deficient markers
// come first, then suboptimal, preserving source order within a severity.
// Markers without an adjustment entry for their crossed tier are omitted.
func GenerateRecommendations(suboptimal, deficient []domain.EvaluatedMarker, defs map[domain.MarkerID]domain.BiomarkerDefinition) []domain.Recommendation {
	recs := []domain.Recommendation{}
	for _, markers := range [][]domain.EvaluatedMarker{deficient, suboptimal} {
		for _, m := range markers {
			def, ok := defs[m.Marker]
			if !ok {
				continue
			}
			adjustments, ok := def.Adjustments[m.Crossed]
			if !ok || len(adjustments) == 0 {
				continue
			}
			recs = append(recs, domain.Recommendation{
				Marker:      m.Marker,
				Name:        m.Name,
				Severity:    m.Tier,
				Adjustments: adjustments,
			})
		}
	}
	return recs
}

// ParseReadingValue parses a user-entered lab value. Empty or unparseable
// input returns ok=false; such readings are excluded from the analysis
// rather than classified as deficient.
func ParseReadingValue(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
