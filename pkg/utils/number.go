package utils

import "math"

// RoundWithOneDecimalPlace arredonda percentuais para uma casa decimal, o
// formato exibido pelo dashboard.
func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}
