package num

import "math"

// DegToRad converts degrees to radians.
func DegToRad[T Float](deg T) T {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg[T Float](rad T) T {
	return rad * 180 / math.Pi
}

// Floor rounds x down to the nearest integer.
func Floor[T Float](x T) T {
	return T(math.Floor(float64(x)))
}

// Ceil rounds x up to the nearest integer.
func Ceil[T Float](x T) T {
	return T(math.Ceil(float64(x)))
}

// Round rounds x to the nearest integer, with halves rounded away from zero.
func Round[T Float](x T) T {
	return T(math.Round(float64(x)))
}

// Trunc removes the fractional part of x.
func Trunc[T Float](x T) T {
	return T(math.Trunc(float64(x)))
}

// Frac returns x - Floor(x).
//
// The result is in [0, 1] and can round up to exactly 1 for tiny negative x.
func Frac[T Float](x T) T {
	return x - Floor(x)
}

// Sqrt computes the square root of x.
func Sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Rsqrt computes 1 / Sqrt(x).
func Rsqrt[T Float](x T) T {
	return T(1 / math.Sqrt(float64(x)))
}

// Powi raises x to an integer power using repeated squaring.
// Negative powers produce the reciprocal.
func Powi[T Float](x T, n int) T {
	if n < 0 {
		return 1 / (Powi(x, -(n+1)) * x)
	}
	res := T(1)
	for n > 0 {
		if n&1 == 1 {
			res *= x
		}
		x *= x
		n >>= 1
	}
	return res
}

// Powf raises x to a floating-point power.
func Powf[T Float](x, e T) T {
	return T(math.Pow(float64(x), float64(e)))
}

// Saturate clamps x to [0, 1].
func Saturate[T Float](x T) T {
	return Clamp(x, 0, 1)
}

// Smoothstep performs Hermite interpolation of t between the edges e0 and e1.
// The result is 0 below e0 and 1 above e1.
func Smoothstep[T Float](e0, e1, t T) T {
	x := Saturate((t - e0) / (e1 - e0))
	return x * x * (3 - 2*x)
}

func Sin[T Float](x T) T {
	return T(math.Sin(float64(x)))
}

func Cos[T Float](x T) T {
	return T(math.Cos(float64(x)))
}

func Tan[T Float](x T) T {
	return T(math.Tan(float64(x)))
}

func Asin[T Float](x T) T {
	return T(math.Asin(float64(x)))
}

func Acos[T Float](x T) T {
	return T(math.Acos(float64(x)))
}

func Atan[T Float](x T) T {
	return T(math.Atan(float64(x)))
}

// Atan2 returns the angle of the point (x, y), like math.Atan2.
func Atan2[T Float](y, x T) T {
	return T(math.Atan2(float64(y), float64(x)))
}

func Exp[T Float](x T) T {
	return T(math.Exp(float64(x)))
}

// Log computes the natural logarithm of x.
func Log[T Float](x T) T {
	return T(math.Log(float64(x)))
}
