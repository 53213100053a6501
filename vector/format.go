package vector

import (
	"math"
	"strconv"
)

// numberPrecision is the number of decimals kept in textual output.
const numberPrecision = 4

// FormatNumber formats v with at most four decimals and no trailing zeros.
// Negative zero is printed as "0".
func FormatNumber(v float64) string {
	scale := math.Pow(10, numberPrecision)
	r := math.Round(v*scale) / scale
	if r == 0 {
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
