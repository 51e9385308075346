// Public domain.

package eop

import (
	"math"
	"testing"
)

func TestLagrange(t *testing.T) {
	if Lagrange(nil, nil, 3) != 0 {
		t.Fatal("no points")
	}
	if Lagrange([]float64{2}, []float64{7}, 3) != 7 {
		t.Fatal("one point")
	}
	// cubic through 4 points is exact
	f := func(x float64) float64 { return 1 - 2*x + .5*x*x*x }
	xs := []float64{-1, 0, 2, 3}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	if d := Lagrange(xs, ys, 1.3) - f(1.3); math.Abs(d) > 1e-13 {
		t.Fatal(d)
	}
}

func TestInterpolateLinear(t *testing.T) {
	w := make([]Record, 5)
	for i := range w {
		w[i] = Record{MJD: 51000 + i, UT1MinusUTC: .25 - .0013*float64(i)}
	}
	r := interpolate(w, 51002.5)
	if want := .25 - .0013*2.5; math.Abs(r.UT1MinusUTC-want) > 1e-14 {
		t.Fatal(r.UT1MinusUTC, want)
	}
	if r.MJD != 51002 {
		t.Fatal("MJD", r.MJD)
	}
	// a missing neighbor is dropped from the fit
	w = append(w[:3:3], w[4])
	r = interpolate(w, 51002.25)
	if want := .25 - .0013*2.25; math.Abs(r.UT1MinusUTC-want) > 1e-14 {
		t.Fatal(r.UT1MinusUTC, want)
	}
}

func TestInterpolateLeapSecond(t *testing.T) {
	// leap second between 51002 and 51003
	u := []float64{-.596, -.597, -.598, .401, .400}
	w := make([]Record, len(u))
	for i := range w {
		w[i] = Record{MJD: 51000 + i, UT1MinusUTC: u[i]}
	}
	for _, tc := range []struct{ mjd, want float64 }{
		{51002.5, -.5985},
		{51002.7, -.5987}, // nearer the post-leap record
		{51002.99, -.59899},
		{51003.5, .4005},
		{51001.25, -.59725},
	} {
		if r := interpolate(w, tc.mjd); math.Abs(r.UT1MinusUTC-tc.want) > 1e-12 {
			t.Errorf("MJD %.2f: UT1-UTC %.6f, want %.6f", tc.mjd, r.UT1MinusUTC, tc.want)
		}
	}
}

func TestLinear(t *testing.T) {
	a := Record{MJD: 60000, X: .1, UT1MinusUTC: -.4}
	b := Record{MJD: 60001, X: .2, UT1MinusUTC: .599} // leap second
	r := linear(a, b, 60003)
	if math.Abs(r.X-.4) > 1e-12 || math.Abs(r.UT1MinusUTC-.597) > 1e-12 {
		t.Fatal(r)
	}
}
