// Public domain.

// Package ellipsoid defines reference ellipsoids.
//
// A Model is either a Preset, an immutable named ellipsoid, or a *Custom,
// an ellipsoid owned by a Registry and set once per body.  Behavior is
// provided by the functions of this package taking a Model.
package ellipsoid

import (
	"errors"
	"fmt"
	"math"

	"github.com/soniakeys/meeus/v3/globe"
	"github.com/soniakeys/unit"
)

// SphereInverseFlattening stands in for the infinite inverse flattening of
// a spherical body.
const SphereInverseFlattening = 1e12

// Params are the defining parameters of an ellipsoid.
type Params struct {
	Radius            float64 // equatorial radius, km
	InverseFlattening float64
}

// Model is implemented by Preset and *Custom only.
type Model interface {
	Name() string
	Params() Params
	model()
}

// Preset is an immutable named ellipsoid.
type Preset struct {
	name string
	p    Params
}

func (e Preset) Name() string   { return e.name }
func (e Preset) Params() Params { return e.p }
func (Preset) model()           {}

// Named presets.
var (
	WGS72    = Preset{"WGS72", Params{6378.135, 298.26}}
	WGS84    = Preset{"WGS84", Params{6378.137, 298.257223563}}
	IERS2003 = Preset{"IERS2003", Params{6378.1366, 298.25642}}
	IAU1976  = Preset{"IAU1976", Params{6378.140, 298.257}}
)

// Planetary presets, from IAU WGCCRE equatorial and polar radii.
var (
	Mercury = mustRadii("Mercury", 2440.53, 2438.26)
	Venus   = mustRadii("Venus", 6051.8, 6051.8)
	Moon    = mustRadii("Moon", 1738.1, 1736.0)
	Mars    = mustRadii("Mars", 3396.19, 3376.20)
	Jupiter = mustRadii("Jupiter", 71492, 66854)
	Saturn  = mustRadii("Saturn", 60268, 54364)
	Uranus  = mustRadii("Uranus", 25559, 24973)
	Neptune = mustRadii("Neptune", 24764, 24341)
	Pluto   = mustRadii("Pluto", 1188.3, 1188.3)
)

var presets = []Preset{WGS72, WGS84, IERS2003, IAU1976,
	Mercury, Venus, Moon, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}

// Presets returns all named presets.
func Presets() []Preset {
	return append([]Preset{}, presets...)
}

// ByName looks up a preset, case sensitive.
func ByName(name string) (Preset, bool) {
	for _, e := range presets {
		if e.name == name {
			return e, true
		}
	}
	return Preset{}, false
}

// ErrInvalid is wrapped by errors reporting invalid ellipsoid parameters.
var ErrInvalid = errors.New("invalid ellipsoid")

// FromRadii constructs a preset from equatorial and polar radii in km.
// Equal radii give a sphere with SphereInverseFlattening.
func FromRadii(name string, equatorial, polar float64) (Preset, error) {
	p, err := paramsFromRadii(equatorial, polar)
	if err != nil {
		return Preset{}, fmt.Errorf("%s: %w", name, err)
	}
	return Preset{name, p}, nil
}

func mustRadii(name string, equatorial, polar float64) Preset {
	e, err := FromRadii(name, equatorial, polar)
	if err != nil {
		panic(err)
	}
	return e
}

func paramsFromRadii(equatorial, polar float64) (Params, error) {
	switch {
	case !(equatorial > 0):
		return Params{}, fmt.Errorf("%w: equatorial radius %g", ErrInvalid, equatorial)
	case !(polar > 0) || polar > equatorial:
		return Params{}, fmt.Errorf("%w: polar radius %g for equatorial radius %g",
			ErrInvalid, polar, equatorial)
	}
	inv := SphereInverseFlattening
	if d := equatorial - polar; d > equatorial/SphereInverseFlattening {
		inv = equatorial / d
	}
	return Params{Radius: equatorial, InverseFlattening: inv}, nil
}

// Validate checks invariants of p.
func (p Params) Validate() error {
	switch {
	case !(p.Radius > 0):
		return fmt.Errorf("%w: radius %g", ErrInvalid, p.Radius)
	case !(p.InverseFlattening > 1) || p.InverseFlattening > SphereInverseFlattening:
		return fmt.Errorf("%w: inverse flattening %g", ErrInvalid, p.InverseFlattening)
	}
	return nil
}

// Flattening returns f = 1/InverseFlattening.
func Flattening(m Model) float64 {
	return 1 / m.Params().InverseFlattening
}

// PolarRadius returns the polar radius in km.
func PolarRadius(m Model) float64 {
	p := m.Params()
	return p.Radius * (1 - 1/p.InverseFlattening)
}

// RadiusAt returns the distance from center to the ellipsoid surface in km,
// at geodetic latitude φ.
func RadiusAt(m Model, φ unit.Angle) float64 {
	a := m.Params().Radius
	b := PolarRadius(m)
	s, c := φ.Sincos()
	// (a²cos φ)² + (b²sin φ)² over (a cos φ)² + (b sin φ)²
	n := a*a*c*a*a*c + b*b*s*b*b*s
	d := a*c*a*c + b*s*b*s
	return math.Sqrt(n / d)
}

// Globe returns the equivalent meeus globe ellipsoid.
func Globe(m Model) globe.Ellipsoid {
	p := m.Params()
	return globe.Ellipsoid{Er: p.Radius, Fl: 1 / p.InverseFlattening}
}

// Same reports whether two models describe the same ellipsoid.
// Models compare by name and parameters.
func Same(a, b Model) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Name() == b.Name() && a.Params() == b.Params()
}
