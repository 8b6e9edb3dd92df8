package http

import (
	"sort"

	"github.com/cdelavallette-lang/healthapp/internal/domain"
	"github.com/cdelavallette-lang/healthapp/internal/usecase"
)

// orderedReadings converts the request's raw readings into evaluator input.
// Unparseable or empty values are dropped here, never classified. The
// client-supplied order is honored first; remaining markers follow
// alphabetically so the same request always evaluates in the same order.
func orderedReadings(req biomarkerRequest) []domain.BiomarkerReading {
	ordered := make([]string, 0, len(req.Readings))
	taken := map[string]bool{}
	for _, marker := range req.Order {
		if _, ok := req.Readings[marker]; ok && !taken[marker] {
			ordered = append(ordered, marker)
			taken[marker] = true
		}
	}
	var rest []string
	for marker := range req.Readings {
		if !taken[marker] {
			rest = append(rest, marker)
		}
	}
	sort.Strings(rest)
	ordered = append(ordered, rest...)

	readings := make([]domain.BiomarkerReading, 0, len(ordered))
	for _, marker := range ordered {
		value, ok := usecase.ParseReadingValue(req.Readings[marker])
		if !ok {
			continue
		}
		readings = append(readings, domain.BiomarkerReading{
			Marker: domain.MarkerID(marker),
			Value:  value,
		})
	}
	return readings
}
