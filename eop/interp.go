// Public domain.

package eop

import "math"

// Lagrange evaluates at x the polynomial through the points (xs[i], ys[i]).
// xs must be distinct.  With no points it returns 0, with one point that
// point's value.
func Lagrange(xs, ys []float64, x float64) float64 {
	var sum float64
	for i, xi := range xs {
		l := 1.
		for j, xj := range xs {
			if j != i {
				l *= (x - xj) / (xi - xj)
			}
		}
		sum += l * ys[i]
	}
	return sum
}

// interpolate fits the records of a window at mjd.
//
// UT1-UTC steps by a second at a leap second.  Values on the far side of a
// step from the record of the day of mjd, the last record at or before
// midnight, are shifted by whole seconds before the fit.
func interpolate(w []Record, mjd float64) Record {
	n := len(w)
	xs := make([]float64, n)
	x, y, u, dp, de := make([]float64, n), make([]float64, n),
		make([]float64, n), make([]float64, n), make([]float64, n)
	day := int(math.Floor(mjd))
	anchor := 0
	for i, r := range w {
		xs[i] = float64(r.MJD)
		x[i], y[i], u[i], dp[i], de[i] = r.X, r.Y, r.UT1MinusUTC, r.DPsi, r.DEps
		if r.MJD <= day {
			anchor = i
		}
	}
	for i := anchor + 1; i < n; i++ {
		u[i] -= math.Round(u[i] - u[i-1])
	}
	for i := anchor - 1; i >= 0; i-- {
		u[i] -= math.Round(u[i] - u[i+1])
	}
	return Record{
		MJD:         day,
		X:           Lagrange(xs, x, mjd),
		Y:           Lagrange(xs, y, mjd),
		UT1MinusUTC: Lagrange(xs, u, mjd),
		DPsi:        Lagrange(xs, dp, mjd),
		DEps:        Lagrange(xs, de, mjd),
	}
}
