package util

import "math"

func RoundFloat64(f float64, n int) float64 {
	pow := math.Pow10(n)
	return math.Round(f*pow) / pow
}

// SafeDiv returns a/b, or 0 when b is 0.
func SafeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// Percent returns 100*part/whole, or 0 when whole is 0.
func Percent(part, whole float64) float64 {
	return SafeDiv(100*part, whole)
}

// RoundPercent is Percent rounded to an integer.
func RoundPercent(part, whole float64) float64 {
	return math.Round(Percent(part, whole))
}

// Round1Percent is Percent rounded to one decimal place.
func Round1Percent(part, whole float64) float64 {
	return RoundFloat64(Percent(part, whole), 1)
}
