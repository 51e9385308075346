// Public domain.

// Package geodesy converts between geodetic and geocentric coordinates on a
// reference ellipsoid.
//
// Heights are in meters above the ellipsoid.  Geocentric radius is in units
// of the ellipsoid's equatorial radius.
package geodesy

import (
	"errors"
	"fmt"
	"math"

	"github.com/soniakeys/meeus/v3/globe"
	"github.com/soniakeys/refframe/ellipsoid"
	"github.com/soniakeys/unit"
)

// Geodetic is a location referenced to the ellipsoid surface normal.
type Geodetic struct {
	Lon, Lat unit.Angle
	Height   float64 // meters
	Model    ellipsoid.Model
}

// Geocentric is a location referenced to the center of the body.
type Geocentric struct {
	Lon, Lat unit.Angle
	Radius   float64 // equatorial radii
}

var (
	// ErrNoConvergence is returned when the geodetic inversion fails to
	// settle within its iteration budget.
	ErrNoConvergence = errors.New("geodetic inversion did not converge")
	// ErrEllipsoidMismatch is returned by Distance for points on different
	// ellipsoids.
	ErrEllipsoidMismatch = errors.New("points reference different ellipsoids")
)

// axes returns the meridian section terms at latitude (sin, cos) in
// meters, scaled to the surface point.
func axes(p ellipsoid.Params, s, c float64) (A, B float64) {
	r := 1 - 1/p.InverseFlattening
	f := r * r
	u := 1 / math.Sqrt(c*c+f*s*s)
	A = p.Radius * u * 1000
	return A, A * f
}

// GeodeticToGeocentric converts geodetic longitude, latitude and height in
// meters to geocentric coordinates.
//
// The method is that of the Astronomical Almanac, section K.  Geocentric
// latitude has the sign of geodetic latitude.
func GeodeticToGeocentric(m ellipsoid.Model, lon, lat unit.Angle, h float64) Geocentric {
	p := m.Params()
	s, c := lat.Sincos()
	A, B := axes(p, s, c)
	a := A + h
	b := B + h
	ρ := math.Hypot(a*c, b*s)
	// same as ±acos(a cos φ / ρ), without loss of precision near the equator.
	return Geocentric{
		Lon:    lon,
		Lat:    unit.Angle(math.Atan2(b*s, a*c)),
		Radius: ρ / (1000 * p.Radius),
	}
}

const maxIterations = 20

// GeocentricToGeodetic inverts GeodeticToGeocentric.
//
// The first pass is the analytic solution:  latitude is estimated from the
// auxiliary latitude atan(tan ψ / f), the height solves the quadratic
// relating the meridian section axes to the geocentric radius, and latitude
// follows from the height.  The same relations are then iterated to
// refine the solution well below a milliarcsecond and a millimeter.
func GeocentricToGeodetic(m ellipsoid.Model, g Geocentric) (Geodetic, error) {
	p := m.Params()
	if err := p.Validate(); err != nil {
		return Geodetic{}, err
	}
	if !(g.Radius > 0) {
		return Geodetic{}, fmt.Errorf("geodesy: geocentric radius %g", g.Radius)
	}
	ρ := g.Radius * 1000 * p.Radius
	sψ, cψ := g.Lat.Sincos()
	r := 1 - 1/p.InverseFlattening
	φ := math.Atan2(sψ, r*r*cψ)
	h := 0.
	for i := 0; i < maxIterations; i++ {
		s, c := math.Sincos(φ)
		A, B := axes(p, s, c)
		pp := A*c*c + B*s*s
		q := A*A*c*c + B*B*s*s - ρ*ρ
		d := pp*pp - q
		if d < 0 {
			return Geodetic{}, fmt.Errorf("geodesy: geocentric radius %g below the ellipsoid core", g.Radius)
		}
		hn := math.Sqrt(d) - pp
		φn := math.Atan2(ρ*sψ/(B+hn), ρ*cψ/(A+hn))
		if math.Abs(φn-φ) < 1e-14 && math.Abs(hn-h) < 1e-6 {
			return Geodetic{Lon: g.Lon, Lat: unit.Angle(φn), Height: hn, Model: m}, nil
		}
		φ, h = φn, hn
	}
	return Geodetic{}, ErrNoConvergence
}

// ToGeocentric converts g with its own ellipsoid.
func (g Geodetic) ToGeocentric() Geocentric {
	return GeodeticToGeocentric(g.Model, g.Lon, g.Lat, g.Height)
}

// Distance returns the distance in km between two points on the surface of
// the same ellipsoid, by the method of Meeus, Astronomical Algorithms,
// chapter 11.  Heights are ignored.  Accuracy is about 50 m on the Earth.
func Distance(a, b Geodetic) (float64, error) {
	if !ellipsoid.Same(a.Model, b.Model) {
		return 0, ErrEllipsoidMismatch
	}
	if a.Lat == b.Lat && math.Remainder(a.Lon.Rad()-b.Lon.Rad(), 2*math.Pi) == 0 {
		return 0, nil
	}
	e := ellipsoid.Globe(a.Model)
	return e.Distance(
		globe.Coord{Lat: a.Lat, Lon: a.Lon},
		globe.Coord{Lat: b.Lat, Lon: b.Lon}), nil
}

// ParallaxConstants returns ρ sin φ′ and ρ cos φ′ for a site at geodetic
// latitude φ and height h in meters, in equatorial radii.
func ParallaxConstants(m ellipsoid.Model, φ unit.Angle, h float64) (ρsφ, ρcφ float64) {
	e := ellipsoid.Globe(m)
	return e.ParallaxConstants(φ, h)
}

// FromParallax returns the geodetic location of a site given by its
// longitude and parallax constants.
func FromParallax(m ellipsoid.Model, lon unit.Angle, ρsφ, ρcφ float64) (Geodetic, error) {
	return GeocentricToGeodetic(m, Geocentric{
		Lon:    lon,
		Lat:    unit.Angle(math.Atan2(ρsφ, ρcφ)),
		Radius: math.Hypot(ρsφ, ρcφ),
	})
}
