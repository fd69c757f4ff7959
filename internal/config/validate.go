package config

import "fmt"

func validatePositive(v int) error {
	if v < 1 {
		return fmt.Errorf("must be positive, got %d", v)
	}
	return nil
}

func validatePercent(v float64) error {
	if v < 0 || 100 < v {
		return fmt.Errorf("out of range[%d-%d]", 0, 100)
	}
	return nil
}

// ValidatePositive is the flag validator for counts.
func ValidatePositive(v int) error {
	return validatePositive(v)
}

// ValidatePercent is the flag validator for percentages.
func ValidatePercent(v float64) error {
	return validatePercent(v)
}
