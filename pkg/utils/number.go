package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para exibição em logs e respostas
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeDivide retorna 0 quando o denominador não é positivo, nunca NaN ou Inf
func SafeDivide(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}

	return numerator / denominator
}
