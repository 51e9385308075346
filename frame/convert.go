// Public domain.

package frame

import (
	"math"

	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/refframe/internal/rmat"
	"github.com/soniakeys/refframe/internal/timescale"
	"github.com/soniakeys/unit"
)

// J2000 galactic pole and the galactic longitude of the ascending node of
// the galactic equator on the equator, FK5.
var (
	GalacticPoleRA  = unit.AngleFromDeg(192.85948)
	GalacticPoleDec = unit.AngleFromDeg(27.12825)
	GalacticNode    = unit.AngleFromDeg(32.93192)
)

const j2000 = 2451545.

// EquatorialToHorizontal returns azimuth, measured from north through east,
// and altitude.
func (c *Context) EquatorialToHorizontal(eq Position) Position {
	u, alt := c.trig().RotateFrom(c.LST, c.Latitude, 0, eq.Lon, eq.Lat)
	return Position{Lon: (math.Pi/2 - u).Mod1(), Lat: alt, Radius: eq.Radius}
}

// HorizontalToEquatorial is the inverse of EquatorialToHorizontal.
func (c *Context) HorizontalToEquatorial(hz Position) Position {
	α, δ := c.trig().RotateTo(c.LST, c.Latitude, 0, math.Pi/2-hz.Lon, hz.Lat)
	return Position{Lon: α, Lat: δ, Radius: hz.Radius}
}

// Obliquity returns the obliquity of the ecliptic at c.JDE, mean or true
// according to c.TrueObliquity.
func (c *Context) Obliquity() unit.Angle {
	jde := c.jde()
	ε := nutation.MeanObliquity(jde)
	if c.TrueObliquity {
		_, Δε := nutation.Nutation(jde)
		ε += Δε + unit.AngleFromSec(c.EOP.DEps)
	}
	return ε
}

// EquatorialToEcliptic converts to ecliptic coordinates of c.JDE.
func (c *Context) EquatorialToEcliptic(eq Position) Position {
	ε := c.Obliquity()
	λ, β := c.trig().RotateFrom(-math.Pi/2, math.Pi/2-ε, 0, eq.Lon, eq.Lat)
	return Position{Lon: λ, Lat: β, Radius: eq.Radius}
}

// EclipticToEquatorial is the inverse of EquatorialToEcliptic.
func (c *Context) EclipticToEquatorial(ecl Position) Position {
	ε := c.Obliquity()
	α, δ := c.trig().RotateTo(-math.Pi/2, math.Pi/2-ε, 0, ecl.Lon, ecl.Lat)
	return Position{Lon: α, Lat: δ, Radius: ecl.Radius}
}

// EquatorialToGalactic converts to galactic coordinates.
//
// FK5 coordinates are first precessed to J2000.  ICRF coordinates are
// first rotated to the J2000 dynamical frame.
func (c *Context) EquatorialToGalactic(eq Position) Position {
	v := rmat.Vec(eq.Lon, eq.Lat, 1)
	v = c.toJ2000().Apply(v)
	α, δ, _ := rmat.Sph(v)
	l, b := c.trig().RotateFrom(GalacticPoleRA, GalacticPoleDec, GalacticNode, α, δ)
	return Position{Lon: l, Lat: b, Radius: eq.Radius}
}

// GalacticToEquatorial is the inverse of EquatorialToGalactic.
func (c *Context) GalacticToEquatorial(g Position) Position {
	α, δ := c.trig().RotateTo(GalacticPoleRA, GalacticPoleDec, GalacticNode, g.Lon, g.Lat)
	v := rmat.Vec(α, δ, 1)
	v = c.toJ2000().T().Apply(v)
	α, δ, _ = rmat.Sph(v)
	return Position{Lon: α, Lat: δ, Radius: g.Radius}
}

// toJ2000 is the rotation from the equatorial frame of c to FK5 J2000.
func (c *Context) toJ2000() rmat.M {
	if c.Frame == ICRF {
		return rmat.Bias
	}
	if jde := c.jde(); jde != j2000 {
		return rmat.Precession(timescale.JulianYear(jde), 2000)
	}
	return rmat.Identity
}

// jde returns c.JDE, with 0 meaning J2000.
func (c *Context) jde() float64 {
	if c.JDE == 0 {
		return j2000
	}
	return c.JDE
}
