package utils

import (
	"math"
	"math/rand"
)

// RandomFloat returns a random float64 between 0.0 and 1.0
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Cosmetic randomness, not security critical
}

// RandomFloatRange returns a uniformly distributed float64 in [min, max]
func RandomFloatRange(min, max float64) float64 {
	if min >= max {
		return min
	}
	return min + RandomFloat()*(max-min)
}

// RoundTo rounds a value half away from zero to the given number of decimal places.
func RoundTo(value float64, places int) float64 {
	if places < 0 {
		places = 0
	}
	pow := math.Pow(10, float64(places))
	return math.Round(value*pow) / pow
}

// Clamp bounds value to [lo, hi]
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// TruncateRunes returns at most n runes of s without splitting a character
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
