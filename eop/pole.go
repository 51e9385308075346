// Public domain.

package eop

import (
	"math"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/refframe/internal/rmat"
	"github.com/soniakeys/refframe/internal/timescale"
)

var arcsec = math.Pi / 180 / 3600

// PoleToNutation converts celestial pole offsets dX, dY to corrections to
// nutation in longitude and obliquity dPsi, dEps, all in arc seconds, at
// a TT Julian date.
//
// The offsets displace the celestial intermediate pole, modeled here by
// the leading terms of its precession in the GCRS.  The displacement is
// rotated to the dynamical frame of J2000 and precessed to the mean
// equator of date where its components are dPsi sin ε and dEps.
func PoleToNutation(jde, dX, dY float64) (dPsi, dEps float64) {
	if dX == 0 && dY == 0 {
		return 0, 0
	}
	T := timescale.Centuries(jde)
	X0 := (2004.191898*T - 0.4297829*T*T) * arcsec
	Y0 := -22.407275 * T * T * arcsec
	X := X0 + dX*arcsec
	Y := Y0 + dY*arcsec
	d := coord.Cart{
		X: dX * arcsec,
		Y: dY * arcsec,
		Z: math.Sqrt(1-X*X-Y*Y) - math.Sqrt(1-X0*X0-Y0*Y0),
	}
	p := rmat.Mul(rmat.Precession(2000, timescale.JulianYear(jde)), rmat.Bias)
	v := p.Apply(d)
	ε := nutation.MeanObliquity(jde)
	return v.X / ε.Sin() / arcsec, v.Y / arcsec
}
