package tables

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cdelavallette-lang/healthapp/internal/domain"
)

// RuleTable bundles the interaction rules with the food suggestions
// used to complete partially met synergies.
type RuleTable struct {
	Rules           []domain.InteractionRule
	CompletionFoods map[domain.NutrientKey][]string
}

// ruleFile is the on-disk shape of an interaction rule table.
type ruleFile struct {
	Rules           []domain.InteractionRule        `yaml:"rules"`
	CompletionFoods map[domain.NutrientKey][]string `yaml:"completion_foods,omitempty"`
}

// biomarkerFile is the on-disk shape of a biomarker definition table.
// Ranges are textual at rest and parsed into tagged RangeSpecs on load.
type biomarkerFile struct {
	Biomarkers []biomarkerEntry `yaml:"biomarkers"`
}

type biomarkerEntry struct {
	ID            string              `yaml:"id"`
	Name          string              `yaml:"name"`
	Unit          string              `yaml:"unit"`
	Optimal       string              `yaml:"optimal"`
	Sufficient    *float64            `yaml:"sufficient,omitempty"`
	AcceptableMax *float64            `yaml:"acceptable_max,omitempty"`
	Adjustments   map[string][]string `yaml:"adjustments,omitempty"`
}

// LoadInteractionRules reads and validates an interaction rule table from
// a yaml file. An empty path yields the built-in default table.
func LoadInteractionRules(path string) (RuleTable, error) {
	if path == "" {
		return RuleTable{
			Rules:           DefaultInteractionRules(),
			CompletionFoods: DefaultCompletionFoods(),
		}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleTable{}, fmt.Errorf("%w: reading rule table %s: %v", domain.ErrConfiguration, path, err)
	}
	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return RuleTable{}, fmt.Errorf("%w: parsing rule table %s: %v", domain.ErrConfiguration, path, err)
	}
	if err := ValidateRules(file.Rules); err != nil {
		return RuleTable{}, fmt.Errorf("rule table %s: %w", path, err)
	}
	for key := range file.CompletionFoods {
		if key == "" {
			return RuleTable{}, fmt.Errorf("%w: rule table %s: completion food entry without nutrient", domain.ErrConfiguration, path)
		}
	}
	return RuleTable{Rules: file.Rules, CompletionFoods: file.CompletionFoods}, nil
}

// ValidateRules rejects a rule table containing malformed entries. Tables
// are checked here, at load time, so evaluation can trust every rule.
func ValidateRules(rules []domain.InteractionRule) error {
	seen := map[string]bool{}
	for i, rule := range rules {
		if rule.ID == "" || rule.Name == "" {
			return fmt.Errorf("%w: rule %d: id and name are required", domain.ErrConfiguration, i)
		}
		if seen[rule.ID] {
			return fmt.Errorf("%w: duplicate rule id %q", domain.ErrConfiguration, rule.ID)
		}
		seen[rule.ID] = true

		switch rule.Kind {
		case domain.KindSynergy:
			if rule.Severity != "" {
				return fmt.Errorf("%w: rule %q: synergies carry no severity", domain.ErrConfiguration, rule.ID)
			}
		case domain.KindAntagonism:
			switch rule.Severity {
			case domain.SeverityLow, domain.SeverityMedium, domain.SeverityHigh:
			default:
				return fmt.Errorf("%w: rule %q: antagonism severity must be low, medium or high", domain.ErrConfiguration, rule.ID)
			}
		default:
			return fmt.Errorf("%w: rule %q: unknown kind %q", domain.ErrConfiguration, rule.ID, rule.Kind)
		}

		if len(rule.All) == 0 && len(rule.Any) == 0 && rule.RequireTag == "" {
			return fmt.Errorf("%w: rule %q: empty predicate", domain.ErrConfiguration, rule.ID)
		}
		for _, cond := range append(append([]domain.Condition{}, rule.All...), rule.Any...) {
			switch {
			case len(cond.Sum) > 0:
				if cond.Nutrient != "" || cond.Over != "" {
					return fmt.Errorf("%w: rule %q: sum condition cannot also name a nutrient", domain.ErrConfiguration, rule.ID)
				}
				for _, term := range cond.Sum {
					if term.Nutrient == "" || term.Weight <= 0 {
						return fmt.Errorf("%w: rule %q: sum terms need a nutrient and a positive weight", domain.ErrConfiguration, rule.ID)
					}
				}
			case cond.Over != "":
				if cond.Nutrient == "" {
					return fmt.Errorf("%w: rule %q: ratio condition needs a numerator nutrient", domain.ErrConfiguration, rule.ID)
				}
			default:
				if cond.Nutrient == "" {
					return fmt.Errorf("%w: rule %q: condition without nutrient", domain.ErrConfiguration, rule.ID)
				}
			}
			if cond.Above < 0 {
				return fmt.Errorf("%w: rule %q: negative threshold for %s", domain.ErrConfiguration, rule.ID, cond.Nutrient)
			}
		}
	}
	return nil
}

// LoadBiomarkerDefinitions reads and validates a biomarker definition
// table from a yaml file, parsing every range spec once. An empty path
// yields the built-in default table.
func LoadBiomarkerDefinitions(path string) (map[domain.MarkerID]domain.BiomarkerDefinition, error) {
	if path == "" {
		return DefaultBiomarkerDefinitions(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading biomarker table %s: %v", domain.ErrConfiguration, path, err)
	}
	var file biomarkerFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: parsing biomarker table %s: %v", domain.ErrConfiguration, path, err)
	}

	defs := make(map[domain.MarkerID]domain.BiomarkerDefinition, len(file.Biomarkers))
	for i, entry := range file.Biomarkers {
		def, err := buildDefinition(entry)
		if err != nil {
			return nil, fmt.Errorf("biomarker table %s, entry %d: %w", path, i, err)
		}
		if _, exists := defs[def.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate biomarker id %q", domain.ErrConfiguration, def.ID)
		}
		defs[def.ID] = def
	}
	return defs, nil
}

func buildDefinition(entry biomarkerEntry) (domain.BiomarkerDefinition, error) {
	if entry.ID == "" || entry.Name == "" {
		return domain.BiomarkerDefinition{}, fmt.Errorf("%w: biomarker id and name are required", domain.ErrConfiguration)
	}

	spec, err := ParseRangeSpec(entry.Optimal)
	if err != nil {
		return domain.BiomarkerDefinition{}, fmt.Errorf("biomarker %q: %w", entry.ID, err)
	}

	if entry.Sufficient != nil {
		floor := *entry.Sufficient
		switch spec.Kind {
		case domain.RangeAbove:
			if floor >= spec.Threshold {
				return domain.BiomarkerDefinition{}, fmt.Errorf("%w: biomarker %q: sufficient floor must be below the optimal threshold", domain.ErrConfiguration, entry.ID)
			}
		case domain.RangeBetween:
			if floor >= spec.Min {
				return domain.BiomarkerDefinition{}, fmt.Errorf("%w: biomarker %q: sufficient floor must be below the optimal minimum", domain.ErrConfiguration, entry.ID)
			}
		default:
			return domain.BiomarkerDefinition{}, fmt.Errorf("%w: biomarker %q: sufficient floor only applies to lower-bounded ranges", domain.ErrConfiguration, entry.ID)
		}
		spec.SufficientFloor = floor
		spec.HasSufficientFloor = true
	}

	if entry.AcceptableMax != nil {
		if spec.Kind != domain.RangeBelow {
			return domain.BiomarkerDefinition{}, fmt.Errorf("%w: biomarker %q: acceptable_max only applies to upper-bounded ranges", domain.ErrConfiguration, entry.ID)
		}
		if *entry.AcceptableMax <= spec.Threshold {
			return domain.BiomarkerDefinition{}, fmt.Errorf("%w: biomarker %q: acceptable_max must exceed the threshold", domain.ErrConfiguration, entry.ID)
		}
		spec.AcceptableMax = *entry.AcceptableMax
		spec.HasAcceptableMax = true
	}

	adjustments := make(map[domain.CrossedTier][]string, len(entry.Adjustments))
	for tier, list := range entry.Adjustments {
		switch domain.CrossedTier(tier) {
		case domain.CrossedBelowMinimum, domain.CrossedBelowOptimal, domain.CrossedAboveMaximum:
			adjustments[domain.CrossedTier(tier)] = list
		default:
			return domain.BiomarkerDefinition{}, fmt.Errorf("%w: biomarker %q: unknown adjustment tier %q", domain.ErrConfiguration, entry.ID, tier)
		}
	}

	return domain.BiomarkerDefinition{
		ID:          domain.MarkerID(entry.ID),
		Name:        entry.Name,
		Unit:        entry.Unit,
		Range:       spec,
		Adjustments: adjustments,
	}, nil
}
