// Public domain.

package eop

import "math"

// Diurnal and semidiurnal ocean tide effects on polar motion and UT1, from
// the Ray et al. (1994) tide model by way of the orthotide formulation of
// the IERS Conventions.
//
// Each tidal line is given by its Doodson multipliers of the fundamental
// arguments τ, s, h, p, N′, pₛ and its tide generating potential
// amplitude.  The first multiplier is the order m of the line.

// tideEpoch is the modified Julian date the arguments are referred to.
const tideEpoch = 37076.5

// fundamental arguments at tideEpoch, radians, and their rates, radians
// per day.
var (
	tideArg0 = [6]float64{3.8030413716957745, 0.38782979184021515,
		1.0492785083209206, 4.739703908746911, 3.295539065677123,
		4.926352161426773}
	tideRate = [6]float64{6.070416590328095, 0.22997150754597895,
		0.017202789696873267, 0.0019443619708909875, 0.0009242197932089962,
		8.196968733695396e-07}
)

type tideLine struct {
	k  [6]int8
	hs float64
}

var tideLines = [71]tideLine{
	{[6]int8{1, -4, 2, 1, 0, 0}, -1.94},
	{[6]int8{1, -3, 0, 2, -1, 0}, -1.25},
	{[6]int8{1, -3, 0, 2, 0, 0}, -6.64},
	{[6]int8{1, -3, 2, 0, -1, 0}, -1.51},
	{[6]int8{1, -3, 2, 0, 0, 0}, -8.02},
	{[6]int8{1, -2, 0, 1, -1, 0}, -9.47},
	{[6]int8{1, -2, 0, 1, 0, 0}, -50.20}, // Q1
	{[6]int8{1, -2, 2, -1, -1, 0}, -1.80},
	{[6]int8{1, -2, 2, -1, 0, 0}, -9.54},
	{[6]int8{1, -1, 0, 0, -2, 0}, 1.52},
	{[6]int8{1, -1, 0, 0, -1, 0}, -49.45},
	{[6]int8{1, -1, 0, 0, 0, 0}, -262.21}, // O1
	{[6]int8{1, -1, 0, 2, 0, 0}, 1.70},
	{[6]int8{1, -1, 2, 0, 0, 0}, 3.43},
	{[6]int8{1, 0, -2, 1, 0, 0}, 1.94},
	{[6]int8{1, 0, 0, -1, -1, 0}, 1.37},
	{[6]int8{1, 0, 0, -1, 0, 0}, 7.41},
	{[6]int8{1, 0, 0, 1, 0, 0}, 20.62},
	{[6]int8{1, 0, 0, 1, 1, 0}, 4.14},
	{[6]int8{1, 0, 2, -1, 0, 0}, 3.94},
	{[6]int8{1, 1, -3, 0, 0, 1}, -7.14},
	{[6]int8{1, 1, -2, 0, -1, 0}, 1.37},
	{[6]int8{1, 1, -2, 0, 0, 0}, -122.03}, // P1
	{[6]int8{1, 1, -1, 0, 0, -1}, 1.02},
	{[6]int8{1, 1, -1, 0, 0, 1}, 2.89},
	{[6]int8{1, 1, 0, 0, -1, 0}, -7.30},
	{[6]int8{1, 1, 0, 0, 0, 0}, 368.78}, // K1
	{[6]int8{1, 1, 0, 0, 1, 0}, 50.01},
	{[6]int8{1, 1, 0, 0, 2, 0}, -1.08},
	{[6]int8{1, 1, 1, 0, 0, -1}, 2.93},
	{[6]int8{1, 1, 2, 0, 0, 0}, 5.25},
	{[6]int8{1, 2, -2, 1, 0, 0}, 3.95},
	{[6]int8{1, 2, 0, -1, 0, 0}, 20.62},
	{[6]int8{1, 2, 0, -1, 1, 0}, 4.09},
	{[6]int8{1, 3, -2, 0, 0, 0}, 3.42},
	{[6]int8{1, 3, 0, -2, 0, 0}, 1.69},
	{[6]int8{1, 3, 0, 0, 0, 0}, 11.29},
	{[6]int8{1, 3, 0, 0, 1, 0}, 7.23},
	{[6]int8{1, 3, 0, 0, 2, 0}, 1.51},
	{[6]int8{1, 4, 0, -1, 0, 0}, 2.16},
	{[6]int8{1, 4, 0, -1, 1, 0}, 1.38},
	{[6]int8{2, -3, 0, 3, 0, 0}, 1.80},
	{[6]int8{2, -3, 2, 1, 0, 0}, 4.67},
	{[6]int8{2, -2, 0, 2, 0, 0}, 16.01},
	{[6]int8{2, -2, 2, 0, 0, 0}, 19.32},
	{[6]int8{2, -2, 3, 0, 0, -1}, 1.30},
	{[6]int8{2, -1, -1, 1, 0, 1}, -1.02},
	{[6]int8{2, -1, 0, 1, -1, 0}, -4.51},
	{[6]int8{2, -1, 0, 1, 0, 0}, 120.99}, // N2
	{[6]int8{2, -1, 1, 1, 0, -1}, 1.13},
	{[6]int8{2, -1, 2, -1, 0, 0}, 22.98},
	{[6]int8{2, -1, 3, -1, 0, -1}, 1.06},
	{[6]int8{2, 0, -2, 2, 0, 0}, -1.90},
	{[6]int8{2, 0, -1, 0, 0, 1}, -2.18},
	{[6]int8{2, 0, 0, 0, -1, 0}, -23.58},
	{[6]int8{2, 0, 0, 0, 0, 0}, 631.92}, // M2
	{[6]int8{2, 0, 1, 0, 0, -1}, 1.92},
	{[6]int8{2, 1, -2, 1, 0, 0}, -4.66},
	{[6]int8{2, 1, 0, -1, 0, 0}, -17.86},
	{[6]int8{2, 1, 0, 1, 0, 0}, 4.47},
	{[6]int8{2, 1, 0, 1, 1, 0}, 1.97},
	{[6]int8{2, 2, -3, 0, 0, 1}, 17.20},
	{[6]int8{2, 2, -2, 0, 0, 0}, 294.00}, // S2
	{[6]int8{2, 2, -1, 0, 0, -1}, -2.46},
	{[6]int8{2, 2, 0, 0, -1, 0}, -1.02},
	{[6]int8{2, 2, 0, 0, 0, 0}, 79.96}, // K2
	{[6]int8{2, 2, 0, 0, 1, 0}, 23.83},
	{[6]int8{2, 2, 0, 0, 2, 0}, 2.59},
	{[6]int8{2, 3, 0, -1, 0, 0}, 4.47},
	{[6]int8{2, 3, 0, -1, 1, 0}, 1.95},
	{[6]int8{2, 4, 0, 0, 0, 0}, 1.17},
}

// orthotide sample weights, by order m.
var orthoSP = [2][6]float64{
	{0.0298, 0.1408, 0.0805, 0.6002, 0.3025, 0.1517},
	{0.0200, 0.0905, 0.0638, 0.3476, 0.1645, 0.0923},
}

// orthoweights for x, y, UT1.
var orthoW = [3][12]float64{
	{-6.77832, -14.86323, 0.47884, -1.45303, 0.16406, 0.42030,
		0.09398, 25.73054, -4.77974, 0.28080, 1.94539, -0.73089},
	{14.86283, -6.77846, 1.45234, 0.47888, -0.42056, 0.16469,
		15.30276, -4.30615, 0.07564, 2.28321, -0.45717, -1.62010},
	{-1.76335, 1.03364, -0.27553, 0.34569, -0.12343, -0.10146,
		-0.47119, 1.28997, -0.19336, 0.02724, 0.08955, 0.04726},
}

// tideSpacing is the spacing in days of the three samples of the tidal
// potential.
const tideSpacing = 2

// OceanTides returns the diurnal and semidiurnal ocean tide corrections to
// polar motion x, y in microarc seconds and to UT1 in microseconds, at a
// TT modified Julian date.
func OceanTides(mjd float64) (x, y, ut1 float64) {
	// potential coefficients a, b by order m-1 and sample k+1.  Sample 0
	// is mjd+2, sample 2 is mjd-2.
	var a, b [2][3]float64
	for k := -1; k <= 1; k++ {
		dt := mjd - float64(k*tideSpacing) - tideEpoch
		var arg [6]float64
		for i := range arg {
			arg[i] = tideArg0[i] + math.Mod(tideRate[i]*dt, 2*math.Pi)
		}
		for _, l := range tideLines {
			var α float64
			for i, m := range l.k {
				α += float64(m) * arg[i]
			}
			m := l.k[0]
			if m == 1 {
				// n+m odd, n = 2
				α -= math.Pi / 2
			}
			s, c := math.Sincos(math.Mod(α, 2*math.Pi))
			a[m-1][k+1] += l.hs * c
			b[m-1][k+1] -= l.hs * s
		}
	}
	// partials by order, then sample, then cosine and sine part.
	var h [12]float64
	for m := 0; m < 2; m++ {
		sp := &orthoSP[m]
		a0, b0 := a[m][1], b[m][1]
		ap := a[m][2] + a[m][0]
		am := a[m][2] - a[m][0]
		bp := b[m][2] + b[m][0]
		bm := b[m][2] - b[m][0]
		p := [3]float64{
			sp[0] * a0,
			sp[1]*a0 - sp[2]*ap,
			sp[3]*a0 - sp[4]*ap + sp[5]*bm,
		}
		q := [3]float64{
			sp[0] * b0,
			sp[1]*b0 - sp[2]*bp,
			sp[3]*b0 - sp[4]*bp - sp[5]*am,
		}
		for k := range p {
			h[m*6+k*2] = p[k]
			h[m*6+k*2+1] = q[k]
		}
	}
	for j, hj := range h {
		x += hj * orthoW[0][j]
		y += hj * orthoW[1][j]
		ut1 += hj * orthoW[2][j]
	}
	return
}
