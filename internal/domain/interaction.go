package domain

// RuleKind distinguishes beneficial from inhibitory interactions.
type RuleKind string

const (
	KindSynergy    RuleKind = "synergy"
	KindAntagonism RuleKind = "antagonism"
)

// Severity grades antagonism findings. Synergies carry no severity.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// WeightedTerm contributes Weight times a nutrient total to a sum
// condition. Weights reconcile units across nutrients, e.g. counting
// vitamin D IU at 1/40 alongside milligram amounts.
type WeightedTerm struct {
	Nutrient NutrientKey `json:"nutrient" yaml:"nutrient"`
	Weight   float64     `json:"weight" yaml:"weight"`
}

// Condition is a single predicate over raw nutrient totals. It takes
// one of three forms, and missing nutrients evaluate as zero:
//
//	threshold    the total for Nutrient strictly exceeds Above
//	ratio        Over is set; Nutrient divided by Over strictly
//	             exceeds Above (a zero denominator never holds)
//	weighted sum Sum is set; the weighted total strictly exceeds Above
type Condition struct {
	Nutrient NutrientKey    `json:"nutrient,omitempty" yaml:"nutrient,omitempty"`
	Over     NutrientKey    `json:"over,omitempty" yaml:"over,omitempty"`
	Sum      []WeightedTerm `json:"sum,omitempty" yaml:"sum,omitempty"`
	Above    float64        `json:"above" yaml:"above"`
}

// Holds reports whether the condition is met by the raw totals.
func (c Condition) Holds(raw NutrientProfile) bool {
	switch {
	case len(c.Sum) > 0:
		var total float64
		for _, term := range c.Sum {
			total += raw[term.Nutrient] * term.Weight
		}
		return total > c.Above
	case c.Over != "":
		denom := raw[c.Over]
		if denom <= 0 {
			return false
		}
		return raw[c.Nutrient]/denom > c.Above
	default:
		return raw[c.Nutrient] > c.Above
	}
}

// IsThreshold reports whether the condition is the single-nutrient
// threshold form. Only threshold conditions name a nutrient that can
// be added to complete a synergy.
func (c Condition) IsThreshold() bool {
	return c.Over == "" && len(c.Sum) == 0
}

// InteractionRule is one entry of the static interaction table. The
// predicate is data, not code: the rule fires when every condition in All
// holds, at least one condition in Any holds (when Any is non-empty), and
// the ingredient tag set contains RequireTag (when set).
type InteractionRule struct {
	ID          string      `json:"id" yaml:"id"`
	Kind        RuleKind    `json:"kind" yaml:"kind"`
	Name        string      `json:"name" yaml:"name"`
	Severity    Severity    `json:"severity,omitempty" yaml:"severity,omitempty"`
	Description string      `json:"description" yaml:"description"`
	All         []Condition `json:"all,omitempty" yaml:"all,omitempty"`
	Any         []Condition `json:"any,omitempty" yaml:"any,omitempty"`
	RequireTag  string      `json:"requireTag,omitempty" yaml:"require_tag,omitempty"`
}

// IncompleteSynergy describes a synergy rule a meal partially meets:
// the nutrient thresholds that held, the ones that did not, and foods
// that would close the gap.
type IncompleteSynergy struct {
	RuleID      string        `json:"ruleId"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Present     []NutrientKey `json:"present"`
	Missing     []NutrientKey `json:"missing"`
	Suggestions []string      `json:"suggestions,omitempty"`
}
