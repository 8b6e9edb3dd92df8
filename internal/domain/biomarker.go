package domain

// MarkerID is a canonical biomarker identifier established at table-load
// time (e.g. "vitamin_d"). Display names are presentation-only metadata.
type MarkerID string

// RangeKind tags the form of a functional range.
type RangeKind string

const (
	// RangeAbove: the value should exceed a lower bound (">30").
	RangeAbove RangeKind = "above"
	// RangeBelow: the value should stay below an upper bound ("<100").
	RangeBelow RangeKind = "below"
	// RangeBetween: the value should fall inside a closed interval ("40-60").
	RangeBetween RangeKind = "between"
)

// RangeSpec is a functional range parsed into its tagged form when the
// definition table loads. Evaluation never re-parses strings.
type RangeSpec struct {
	Kind RangeKind

	// Threshold is the bound for RangeAbove and RangeBelow.
	Threshold float64
	// Min and Max bound a RangeBetween interval.
	Min, Max float64

	// SufficientFloor, when set, separates suboptimal from deficient on the
	// low side of RangeAbove and RangeBetween specs.
	SufficientFloor    float64
	HasSufficientFloor bool

	// AcceptableMax, when set, bounds the suboptimal band above a RangeBelow
	// threshold; readings beyond it classify as deficient (elevated).
	AcceptableMax    float64
	HasAcceptableMax bool

	// Display is the original textual range, kept for rendering.
	Display string
}

// Tier is the classification of one evaluated marker.
type Tier string

const (
	TierOptimal    Tier = "optimal"
	TierSuboptimal Tier = "suboptimal"
	TierDeficient  Tier = "deficient"
)

// CrossedTier names which boundary a non-optimal reading crossed; it keys
// the adjustment table of a BiomarkerDefinition.
type CrossedTier string

const (
	// CrossedBelowMinimum: reading fell below the deficiency boundary.
	CrossedBelowMinimum CrossedTier = "below_minimum"
	// CrossedBelowOptimal: reading cleared the sufficient floor but not the
	// optimal threshold.
	CrossedBelowOptimal CrossedTier = "below_optimal"
	// CrossedAboveMaximum: reading exceeded the upper boundary.
	CrossedAboveMaximum CrossedTier = "above_maximum"
)

// BiomarkerDefinition is one entry of the static biomarker table.
type BiomarkerDefinition struct {
	ID          MarkerID
	Name        string
	Unit        string
	Range       RangeSpec
	Adjustments map[CrossedTier][]string
}

// BiomarkerReading is one user-supplied lab value. Absent or unparseable
// readings never become Readings; they are dropped before evaluation.
type BiomarkerReading struct {
	Marker MarkerID `json:"marker"`
	Value  float64  `json:"value"`
}

// EvaluatedMarker is one classified reading.
type EvaluatedMarker struct {
	Marker  MarkerID    `json:"marker"`
	Name    string      `json:"name"`
	Unit    string      `json:"unit"`
	Value   float64     `json:"value"`
	Tier    Tier        `json:"tier"`
	Crossed CrossedTier `json:"crossed,omitempty"`
	Range   string      `json:"range"`
}

// Recommendation is a dietary adjustment derived from a non-optimal marker.
type Recommendation struct {
	Marker      MarkerID `json:"marker"`
	Name        string   `json:"name"`
	Severity    Tier     `json:"severity"`
	Adjustments []string `json:"adjustments"`
}

// AnalysisResult is the outcome of one biomarker analysis run. The three
// tier lists are disjoint; Recommendations orders deficient markers before
// suboptimal ones, preserving source order within a tier. Results carry no
// persisted identity.
type AnalysisResult struct {
	Optimal         []EvaluatedMarker `json:"optimal"`
	Suboptimal      []EvaluatedMarker `json:"suboptimal"`
	Deficient       []EvaluatedMarker `json:"deficient"`
	Recommendations []Recommendation  `json:"recommendations"`
}
