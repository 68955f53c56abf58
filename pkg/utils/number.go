package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return math.Round(f*100) / 100
}

// Percent devolve part/whole em porcentagem com duas casas. whole <= 0 resulta em 0.
func Percent(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}
	return RoundWithTwoDecimalPlace(float64(part) / float64(whole) * 100)
}
