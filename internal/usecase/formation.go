package usecase

import (
	"fmt"
	"strconv"
	"strings"
)

const maxStarterSlots = 11

// ParseFormation splits a dash-delimited descriptor such as "4-3-3" into its
// line sizes. Every part must be a positive integer.
func ParseFormation(formation string) ([]int, error) {
	formation = strings.TrimSpace(formation)
	if formation == "" {
		return nil, fmt.Errorf("%w: formation is empty", ErrInvalidFormation)
	}

	parts := strings.Split(formation, "-")
	lines := make([]int, 0, len(parts))
	for _, part := range parts {
		count, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not numeric", ErrInvalidFormation, part)
		}
		if count <= 0 {
			return nil, fmt.Errorf("%w: line size must be positive, got %d", ErrInvalidFormation, count)
		}
		lines = append(lines, count)
	}

	return lines, nil
}

// ValidateFormation checks a formation descriptor against a set of starter
// slot assignments. Slot labels are free-form; the numeric guarantees are
// that at most 11 distinct slots are assigned and, in strict mode, that the
// line sizes plus the goalkeeper add up to exactly 11. Non-strict mode only
// checks descriptor syntax, which is what partially specified presets need.
func ValidateFormation(formation string, starters map[string]string, strict bool) error {
	lines, err := ParseFormation(formation)
	if err != nil {
		return err
	}

	if len(starters) > maxStarterSlots {
		return fmt.Errorf("%w: %d starter slots assigned, maximum is %d", ErrInvalidFormation, len(starters), maxStarterSlots)
	}

	if !strict {
		return nil
	}

	total := 1 // goalkeeper
	for _, count := range lines {
		total += count
	}
	if total != maxStarterSlots {
		return fmt.Errorf("%w: %s fields %d players including the goalkeeper, want %d", ErrInvalidFormation, formation, total, maxStarterSlots)
	}

	return nil
}
