package measurement

import (
	"math"
	"strconv"
	"strings"
)

// Single-precision values whose decimal exponent is below minExponent, or
// whose magnitude reaches maxPlain, print in exponent form
const (
	minExponent = -4
	maxPlain    = 1 << 24
)

// EuclideanDistance returns the straight-line distance between a and b
func EuclideanDistance(a, b Point3) float64 {
	return math.Sqrt(
		math.Pow(b.X-a.X, 2) +
			math.Pow(b.Y-a.Y, 2) +
			math.Pow(b.Z-a.Z, 2),
	)
}

// singleDistance computes the distance the way a single-precision renderer
// does: both positions are rounded to float32 and every step stays in float32.
// The explicit conversions keep the products from being fused.
func singleDistance(a, b Point3) float32 {
	ax, ay, az := a.Float32()
	bx, by, bz := b.Float32()
	dx, dy, dz := bx-ax, by-ay, bz-az

	sum := float32(dx*dx) + float32(dy*dy)
	sum = float32(sum + float32(dz*dz))
	return float32(math.Sqrt(float64(sum)))
}

// FormatDistance renders d as the default decimal string of a single-precision
// float: shortest round-trip digits, "5.0" rather than "5", and exponent
// notation for very small or very large magnitudes.
func FormatDistance(d float64) string {
	f := float64(float32(d))
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if f != 0 {
		exp := strconv.FormatFloat(f, 'e', -1, 32)
		if math.Abs(f) >= maxPlain || decimalExponent(exp) < minExponent {
			return exp
		}
	}

	s := strconv.FormatFloat(f, 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// decimalExponent extracts the exponent of a string produced with format 'e'
func decimalExponent(s string) int {
	i := strings.LastIndexByte(s, 'e')
	if i < 0 {
		return 0
	}
	exp, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return 0
	}
	return exp
}
