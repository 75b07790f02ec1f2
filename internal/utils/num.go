// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import "strconv"

// AtoiDefault converts a string to an int using strconv.Atoi.
// If the string is empty or cannot be parsed as an integer,
// it returns the provided default value instead.
//
// Example:
//
//	n := utils.AtoiDefault("42", 0) // returns 42
//	n = utils.AtoiDefault("", 10)   // returns 10
//	n = utils.AtoiDefault("x", 5)   // returns 5
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// FloatDefault converts a string to a float64 using strconv.ParseFloat.
// Empty or malformed input yields the provided default value. Monetary
// form fields rely on this for their permissive coerce-to-zero policy.
//
// Example:
//
//	f := utils.FloatDefault("10.5", 0) // returns 10.5
//	f = utils.FloatDefault("", 0)      // returns 0
//	f = utils.FloatDefault("abc", 0)   // returns 0
func FloatDefault(s string, def float64) float64 {
	if s == "" {
		return def
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return def
}
