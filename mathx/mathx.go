// Package mathx holds numeric helpers. Nothing here returns an error:
// undefined results are NaN or ±Inf.
package mathx

import (
	"math"
	"slices"

	"github.com/govalues/decimal"
)

// maxScale is the most fractional digits a decimal.Decimal carries.
const maxScale = 19

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

func Lerp(a, b, amount float64) float64 {
	return (1-amount)*a + amount*b
}

func NormalizeRatio(value, lower, upper float64) float64 {
	return (value - lower) / (upper - lower)
}

// Round rounds half up, toward +Inf, so Round(-2.5) is -2.
func Round(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return math.Floor(x + 0.5)
}

func RoundNearest(value, nearest float64) float64 {
	return Round(value/nearest) * nearest
}

// RoundToDecimal scales by 10^decimals and rounds half up.
// Binary floats make 1.005 round to 1 at two decimals; see RoundToDecimalExact.
func RoundToDecimal(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return Round(value*factor) / factor
}

// RoundToDecimalExact rounds the shortest decimal form of value half to even.
// Values a decimal cannot hold fall back to RoundToDecimal.
func RoundToDecimalExact(value float64, decimals int) float64 {
	if decimals < 0 || decimals > maxScale {
		return RoundToDecimal(value, decimals)
	}
	d, err := decimal.NewFromFloat64(value)
	if err != nil {
		return RoundToDecimal(value, decimals)
	}
	f, ok := d.Round(decimals).Float64()
	if !ok {
		return RoundToDecimal(value, decimals)
	}
	return f
}

func reduce(xs []float64, op func(a, b float64) float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	acc := xs[0]
	for _, x := range xs[1:] {
		acc = op(acc, x)
	}
	return acc
}

// Sum of xs, NaN when empty.
func Sum(xs []float64) float64 {
	return reduce(xs, func(a, b float64) float64 { return a + b })
}

func Average(xs []float64) float64 {
	return Sum(xs) / float64(len(xs))
}

// Division folds xs left to right: xs[0] / xs[1] / ...
func Division(xs []float64) float64 {
	return reduce(xs, func(a, b float64) float64 { return a / b })
}

// Remainder folds xs with a truncated remainder, the sign following the dividend.
func Remainder(xs []float64) float64 {
	return reduce(xs, math.Mod)
}

func Mul(xs []float64) float64 {
	return reduce(xs, func(a, b float64) float64 { return a * b })
}

func Subtract(xs []float64) float64 {
	return reduce(xs, func(a, b float64) float64 { return a - b })
}

// Mod is the floored modulus, non-negative for a positive b. Mod(-1, 5) is 4.
func Mod(a, b float64) float64 {
	return math.Mod(math.Mod(a, b)+b, b)
}

func Clamp(val, lower, upper float64) float64 {
	return math.Max(lower, math.Min(upper, val))
}

func Clamp01(val float64) float64 {
	return Clamp(val, 0, 1)
}

// Factorial is 1 for n <= 1 and +Inf once the product overflows.
func Factorial(n int) float64 {
	if n <= 1 {
		return 1
	}
	return float64(n) * Factorial(n-1)
}

// GCD is the Euclidean greatest common divisor. GCD(a, 0) is a.
func GCD[T Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM is a*b / GCD(a, b), and 0 when either is 0.
func LCM[T Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	return a / GCD(a, b) * b
}

// Median leaves xs untouched. NaN when empty.
func Median(xs []float64) float64 {
	return MedianInPlace(slices.Clone(xs))
}

// MedianInPlace sorts xs ascending as a side effect.
func MedianInPlace(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	slices.Sort(xs)
	mid := len(xs) / 2
	if len(xs)%2 != 0 {
		return xs[mid]
	}
	return (xs[mid-1] + xs[mid]) / 2
}
