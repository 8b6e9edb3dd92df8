package usecase

import (
	"reflect"
	"testing"

	"github.com/cdelavallette-lang/healthapp/internal/domain"
)

func vitaminDDef() domain.BiomarkerDefinition {
	return domain.BiomarkerDefinition{
		ID:   "vitamin_d",
		Name: "Vitamin D (25-OH)",
		Unit: "ng/mL",
		Range: domain.RangeSpec{
			Kind: domain.RangeBetween, Min: 40, Max: 60,
			SufficientFloor: 30, HasSufficientFloor: true,
			Display: "40-60",
		},
		Adjustments: map[domain.CrossedTier][]string{
			domain.CrossedBelowMinimum: {"Add fatty fish 3x per week"},
			domain.CrossedBelowOptimal: {"Increase fatty fish"},
		},
	}
}

func TestClassifyReading(t *testing.T) {
	tests := []struct {
		name        string
		value       float64
		spec        domain.RangeSpec
		wantTier    domain.Tier
		wantCrossed domain.CrossedTier
	}{
		{
			name:  "between: inside is optimal",
			value: 50,
			spec:  domain.RangeSpec{Kind: domain.RangeBetween, Min: 40, Max: 60, SufficientFloor: 30, HasSufficientFloor: true},
			wantTier: domain.TierOptimal,
		},
		{
			name:  "between: below the sufficient floor is deficient",
			value: 28,
			spec:  domain.RangeSpec{Kind: domain.RangeBetween, Min: 40, Max: 60, SufficientFloor: 30, HasSufficientFloor: true},
			wantTier: domain.TierDeficient, wantCrossed: domain.CrossedBelowMinimum,
		},
		{
			name:  "between: above max flags suboptimal, not deficient",
			value: 65,
			spec:  domain.RangeSpec{Kind: domain.RangeBetween, Min: 40, Max: 60, SufficientFloor: 30, HasSufficientFloor: true},
			wantTier: domain.TierSuboptimal, wantCrossed: domain.CrossedAboveMaximum,
		},
		{
			name:  "between: above floor but below min is suboptimal",
			value: 35,
			spec:  domain.RangeSpec{Kind: domain.RangeBetween, Min: 40, Max: 60, SufficientFloor: 30, HasSufficientFloor: true},
			wantTier: domain.TierSuboptimal, wantCrossed: domain.CrossedBelowOptimal,
		},
		{
			name:  "between without floor: below min is deficient",
			value: 35,
			spec:  domain.RangeSpec{Kind: domain.RangeBetween, Min: 40, Max: 60},
			wantTier: domain.TierDeficient, wantCrossed: domain.CrossedBelowMinimum,
		},
		{
			name:  "above: at the threshold is optimal",
			value: 500,
			spec:  domain.RangeSpec{Kind: domain.RangeAbove, Threshold: 500, SufficientFloor: 300, HasSufficientFloor: true},
			wantTier: domain.TierOptimal,
		},
		{
			name:  "above: within the sufficient band is suboptimal",
			value: 350,
			spec:  domain.RangeSpec{Kind: domain.RangeAbove, Threshold: 500, SufficientFloor: 300, HasSufficientFloor: true},
			wantTier: domain.TierSuboptimal, wantCrossed: domain.CrossedBelowOptimal,
		},
		{
			name:  "above: below the floor is deficient",
			value: 200,
			spec:  domain.RangeSpec{Kind: domain.RangeAbove, Threshold: 500, SufficientFloor: 300, HasSufficientFloor: true},
			wantTier: domain.TierDeficient, wantCrossed: domain.CrossedBelowMinimum,
		},
		{
			name:  "below: under the threshold is optimal",
			value: 0.6,
			spec:  domain.RangeSpec{Kind: domain.RangeBelow, Threshold: 1, AcceptableMax: 3, HasAcceptableMax: true},
			wantTier: domain.TierOptimal,
		},
		{
			name:  "below: inside the acceptable band is suboptimal",
			value: 2.2,
			spec:  domain.RangeSpec{Kind: domain.RangeBelow, Threshold: 1, AcceptableMax: 3, HasAcceptableMax: true},
			wantTier: domain.TierSuboptimal, wantCrossed: domain.CrossedAboveMaximum,
		},
		{
			name:  "below: beyond the band is deficient (elevated)",
			value: 5,
			spec:  domain.RangeSpec{Kind: domain.RangeBelow, Threshold: 1, AcceptableMax: 3, HasAcceptableMax: true},
			wantTier: domain.TierDeficient, wantCrossed: domain.CrossedAboveMaximum,
		},
		{
			name:  "below without band: anything at or over is deficient",
			value: 1.5,
			spec:  domain.RangeSpec{Kind: domain.RangeBelow, Threshold: 1},
			wantTier: domain.TierDeficient, wantCrossed: domain.CrossedAboveMaximum,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, crossed := ClassifyReading(tt.value, tt.spec)
			if tier != tt.wantTier {
				t.Errorf("tier = %s, want %s", tier, tt.wantTier)
			}
			if crossed != tt.wantCrossed {
				t.Errorf("crossed = %q, want %q", crossed, tt.wantCrossed)
			}
		})
	}
}

func TestEvaluateBiomarkers(t *testing.T) {
	defs := map[domain.MarkerID]domain.BiomarkerDefinition{
		"vitamin_d": vitaminDDef(),
	}

	t.Run("classifies into disjoint tier lists", func(t *testing.T) {
		result := EvaluateBiomarkers([]domain.BiomarkerReading{
			{Marker: "vitamin_d", Value: 50},
		}, defs)
		if len(result.Optimal) != 1 || len(result.Suboptimal) != 0 || len(result.Deficient) != 0 {
			t.Fatalf("tiers = %d/%d/%d, want 1/0/0",
				len(result.Optimal), len(result.Suboptimal), len(result.Deficient))
		}
		if result.Optimal[0].Range != "40-60" {
			t.Errorf("range text = %q, want \"40-60\"", result.Optimal[0].Range)
		}
	})

	t.Run("drops readings without a definition", func(t *testing.T) {
		result := EvaluateBiomarkers([]domain.BiomarkerReading{
			{Marker: "unknown_marker", Value: 12},
		}, defs)
		total := len(result.Optimal) + len(result.Suboptimal) + len(result.Deficient)
		if total != 0 {
			t.Errorf("classified %d markers, want 0", total)
		}
	})

	t.Run("is deterministic for identical inputs", func(t *testing.T) {
		readings := []domain.BiomarkerReading{
			{Marker: "vitamin_d", Value: 28},
		}
		first := EvaluateBiomarkers(readings, defs)
		second := EvaluateBiomarkers(readings, defs)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("two runs over identical inputs differ")
		}
	})
}

func TestGenerateRecommendations(t *testing.T) {
	ferritin := domain.BiomarkerDefinition{
		ID: "ferritin", Name: "Ferritin", Unit: "ng/mL",
		Range: domain.RangeSpec{Kind: domain.RangeBetween, Min: 50, Max: 150, SufficientFloor: 30, HasSufficientFloor: true, Display: "50-150"},
		Adjustments: map[domain.CrossedTier][]string{
			domain.CrossedBelowMinimum: {"Add heme iron sources"},
		},
	}
	defs := map[domain.MarkerID]domain.BiomarkerDefinition{
		"vitamin_d": vitaminDDef(),
		"ferritin":  ferritin,
	}

	t.Run("deficient markers come before suboptimal", func(t *testing.T) {
		result := EvaluateBiomarkers([]domain.BiomarkerReading{
			{Marker: "vitamin_d", Value: 35}, // suboptimal
			{Marker: "ferritin", Value: 20},  // deficient
		}, defs)
		if len(result.Recommendations) != 2 {
			t.Fatalf("len(recommendations) = %d, want 2", len(result.Recommendations))
		}
		if result.Recommendations[0].Marker != "ferritin" {
			t.Errorf("first recommendation = %s, want ferritin", result.Recommendations[0].Marker)
		}
		if result.Recommendations[0].Severity != domain.TierDeficient {
			t.Errorf("first severity = %s, want deficient", result.Recommendations[0].Severity)
		}
	})

	t.Run("source order is preserved within a severity", func(t *testing.T) {
		result := EvaluateBiomarkers([]domain.BiomarkerReading{
			{Marker: "ferritin", Value: 20},  // deficient, listed first
			{Marker: "vitamin_d", Value: 28}, // deficient
		}, defs)
		if len(result.Recommendations) != 2 {
			t.Fatalf("len(recommendations) = %d, want 2", len(result.Recommendations))
		}
		if result.Recommendations[0].Marker != "ferritin" || result.Recommendations[1].Marker != "vitamin_d" {
			t.Errorf("order = %s, %s; want ferritin, vitamin_d",
				result.Recommendations[0].Marker, result.Recommendations[1].Marker)
		}
	})

	t.Run("markers without an entry for the crossed tier are omitted", func(t *testing.T) {
		// ferritin has no above_maximum adjustments; an elevated reading
		// classifies but yields no recommendation
		result := EvaluateBiomarkers([]domain.BiomarkerReading{
			{Marker: "ferritin", Value: 400},
		}, defs)
		if len(result.Suboptimal) != 1 {
			t.Fatalf("len(suboptimal) = %d, want 1", len(result.Suboptimal))
		}
		if len(result.Recommendations) != 0 {
			t.Errorf("len(recommendations) = %d, want 0", len(result.Recommendations))
		}
	})
}

func TestParseReadingValue(t *testing.T) {
	tests := []struct {
		input  string
		want   float64
		wantOK bool
	}{
		{"42", 42, true},
		{" 3.14 ", 3.14, true},
		{"", 0, false},
		{"   ", 0, false},
		{"pending", 0, false},
		{"12,5", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseReadingValue(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseReadingValue(%q) = (%g, %v), want (%g, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
