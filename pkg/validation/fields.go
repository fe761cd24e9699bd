// Package validation provides parameter and format validation utilities.
package validation

import "fmt"

// NonNegative returns an error when val is negative.
func NonNegative(name string, val float64) error {
	if val < 0 {
		return fmt.Errorf("%s must be >= 0, got %v", name, val)
	}
	return nil
}

// Positive returns an error when val is zero or negative.
func Positive(name string, val float64) error {
	if val <= 0 {
		return fmt.Errorf("%s must be > 0, got %v", name, val)
	}
	return nil
}

// Probability returns an error when val falls outside [0, 1].
func Probability(name string, val float64) error {
	if val < 0 || val > 1 {
		return fmt.Errorf("%s must be between 0 and 1, got %v", name, val)
	}
	return nil
}

// InRange returns an error when val falls outside [min, max].
func InRange(name string, val, min, max float64) error {
	if val < min || val > max {
		return fmt.Errorf("%s must be between %v and %v, got %v", name, min, max, val)
	}
	return nil
}
