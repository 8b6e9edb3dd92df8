package usecase

import (
	"github.com/cdelavallette-lang/healthapp/internal/domain"
)

// Absorption constants. Rates are fractions of the raw amount; all are
// <= 1, which is what keeps bioavailable[n] <= raw[n].
const (
	// Heme (animal-sourced) iron absorbs at a fixed rate.
	hemeIronRate = 0.25
	// Non-heme (plant-sourced) iron absorbs at a low baseline, boosted when
	// the meal carries enough vitamin C.
	nonHemeIronBaseRate     = 0.05
	nonHemeIronEnhancedRate = 0.15
	// Vitamin C above this amount (mg) in the same totals enhances non-heme
	// iron absorption.
	vitaminCEnhancementMg = 25

	// Preformed retinol (animal) is fully bioavailable; plant beta-carotene
	// converts at 12:1.
	retinolRate      = 1.0
	betaCaroteneRate = 1.0 / 12.0

	// Fish-sourced EPA/DHA is treated as fully bioactive. Plant ALA converts
	// to EPA/DHA poorly; the literature ranges 1-10%, we fix 5%.
	epaDhaRate        = 1.0
	alaConversionRate = 0.05
)

// AdjustBioavailability computes absorbable amounts for the nutrients with
// known conversion rules and returns them paired with the raw totals.
// Mixed-source evidence is never blended: each source sub-total converts at
// its own rate and the absorbable amounts sum. A nutrient whose evidence is
// incomplete (mass in the unspecified bucket, or a raw amount with no
// tagged sub-totals) is omitted from Bioavailable rather than guessed.
func AdjustBioavailability(raw domain.NutrientProfile, evidence domain.SourceEvidence) domain.NutrientTotals {
	bio := domain.NutrientProfile{}

	type rule struct {
		key        domain.NutrientKey
		animalRate float64
		plantRate  func() float64
	}

	rules := []rule{
		{
			key:        domain.Iron,
			animalRate: hemeIronRate,
			plantRate: func() float64 {
				if raw[domain.VitaminC] > vitaminCEnhancementMg {
					return nonHemeIronEnhancedRate
				}
				return nonHemeIronBaseRate
			},
		},
		{
			key:        domain.VitaminA,
			animalRate: retinolRate,
			plantRate:  func() float64 { return betaCaroteneRate },
		},
		{
			key:        domain.Omega3,
			animalRate: epaDhaRate,
			plantRate:  func() float64 { return alaConversionRate },
		},
	}

	for _, r := range rules {
		if raw[r.key] <= 0 {
			continue
		}
		animal := evidence.Amount(domain.SourceAnimal, r.key)
		plant := evidence.Amount(domain.SourcePlant, r.key)
		untagged := evidence.Amount(domain.SourceUnspecified, r.key)

		// No usable evidence, or part of the raw amount has unknown origin:
		// skip instead of applying a blended rate.
		if untagged > 0 || animal+plant <= 0 {
			continue
		}

		absorbed := animal*r.animalRate + plant*r.plantRate()
		if absorbed > raw[r.key] {
			absorbed = raw[r.key]
		}
		bio[r.key] = absorbed
	}

	return domain.NutrientTotals{Raw: raw, Bioavailable: bio}
}
