package tables

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cdelavallette-lang/healthapp/internal/domain"
)

// ParseRangeSpec parses a textual functional range into its tagged form.
// Supported forms:
//
//	">40"    lower bound; value should exceed 40
//	"<100"   upper bound; value should stay below 100
//	"40-60"  closed interval
//
// Parsing happens once at table-load time; evaluation works on the parsed
// struct only. Malformed input is a configuration error.
func ParseRangeSpec(raw string) (domain.RangeSpec, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return domain.RangeSpec{}, fmt.Errorf("%w: empty range", domain.ErrConfiguration)
	}

	spec := domain.RangeSpec{Display: text}

	switch {
	case strings.HasPrefix(text, ">"):
		threshold, err := parseBound(text[1:])
		if err != nil {
			return domain.RangeSpec{}, fmt.Errorf("%w: range %q: %v", domain.ErrConfiguration, raw, err)
		}
		spec.Kind = domain.RangeAbove
		spec.Threshold = threshold

	case strings.HasPrefix(text, "<"):
		threshold, err := parseBound(text[1:])
		if err != nil {
			return domain.RangeSpec{}, fmt.Errorf("%w: range %q: %v", domain.ErrConfiguration, raw, err)
		}
		spec.Kind = domain.RangeBelow
		spec.Threshold = threshold

	case strings.Contains(text, "-"):
		parts := strings.SplitN(text, "-", 2)
		min, errMin := parseBound(parts[0])
		max, errMax := parseBound(parts[1])
		if errMin != nil || errMax != nil {
			return domain.RangeSpec{}, fmt.Errorf("%w: range %q: expected \"min-max\"", domain.ErrConfiguration, raw)
		}
		if min >= max {
			return domain.RangeSpec{}, fmt.Errorf("%w: range %q: min must be below max", domain.ErrConfiguration, raw)
		}
		spec.Kind = domain.RangeBetween
		spec.Min = min
		spec.Max = max

	default:
		return domain.RangeSpec{}, fmt.Errorf("%w: range %q: unrecognized form", domain.ErrConfiguration, raw)
	}

	return spec, nil
}

func parseBound(s string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return value, nil
}
