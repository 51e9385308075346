// Public domain.

package rotation

import "math"

// fastSincos evaluates truncated series after reduction to [-π/2, π/2].
// Error is below 5e-7.
func fastSincos(x float64) (s, c float64) {
	x = math.Mod(x, 2*math.Pi)
	switch {
	case x > math.Pi:
		x -= 2 * math.Pi
	case x < -math.Pi:
		x += 2 * math.Pi
	}
	// fold into [-π/2, π/2], cosine changes sign.
	sign := 1.
	switch {
	case x > math.Pi/2:
		x = math.Pi - x
		sign = -1
	case x < -math.Pi/2:
		x = -math.Pi - x
		sign = -1
	}
	x2 := x * x
	s = x * (1 + x2*(-1./6+x2*(1./120+x2*(-1./5040+x2*(1./362880+
		x2*(-1./39916800))))))
	c = 1 + x2*(-1./2+x2*(1./24+x2*(-1./720+x2*(1./40320+
		x2*(-1./3628800+x2*(1./479001600))))))
	return s, sign * c
}

// Abramowitz & Stegun 4.4.49, |error| <= 2e-8 for |z| <= 1.
var atanCoeff = [...]float64{
	.9999993329,
	-.3332985605,
	.1994653599,
	-.1390853351,
	.0964200441,
	-.0559098861,
	.0218612288,
	-.0040540580,
}

func fastAtan(z float64) float64 {
	z2 := z * z
	p := atanCoeff[len(atanCoeff)-1]
	for i := len(atanCoeff) - 2; i >= 0; i-- {
		p = p*z2 + atanCoeff[i]
	}
	return z * p
}

func fastAtan2(y, x float64) float64 {
	ay, ax := math.Abs(y), math.Abs(x)
	var a float64
	switch {
	case ax == 0 && ay == 0:
		return 0
	case ay <= ax:
		a = fastAtan(ay / ax)
	default:
		a = math.Pi/2 - fastAtan(ax/ay)
	}
	if x < 0 {
		a = math.Pi - a
	}
	if y < 0 {
		a = -a
	}
	return a
}

func fastAsin(x float64) float64 {
	return fastAtan2(x, math.Sqrt((1-x)*(1+x)))
}
