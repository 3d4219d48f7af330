package conversion

import "math"

// Round rounds x to the given number of decimal places, resolving ties to the
// even neighbour on the scaled value. Non-finite values are returned as is.
func Round(x float64, places int) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	scale := math.Pow(10, float64(places))

	return math.RoundToEven(x*scale) / scale
}
