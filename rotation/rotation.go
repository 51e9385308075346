// Public domain.

// Package rotation implements the spherical rotation used by every
// coordinate pair conversion.
//
// A rotation is described by the position of the target system's pole
// expressed in the source system, and a reference node longitude.
// RotateTo takes a position from the pole aligned (source) system into the
// target system, RotateFrom is its inverse.  Radius is not involved;
// callers carry it along themselves.
//
// Two evaluators are provided.  Exact uses the math package.  Fast
// substitutes polynomial approximations of sincos, atan2 and asin for
// performance sensitive callers.  Both evaluate the same formulas through
// the same code, only the primitives differ.
package rotation

import (
	"math"

	"github.com/soniakeys/unit"
)

// Trig holds the primitive functions a rotation is evaluated with.
type Trig struct {
	Sincos func(x float64) (sin, cos float64)
	Atan2  func(y, x float64) float64
	Asin   func(x float64) float64
}

// Exact evaluates rotations with the math package.
var Exact = &Trig{
	Sincos: math.Sincos,
	Atan2:  math.Atan2,
	Asin:   math.Asin,
}

// Fast evaluates rotations with reduced precision approximations.
// Errors are below 1e-6 radian.
var Fast = &Trig{
	Sincos: fastSincos,
	Atan2:  fastAtan2,
	Asin:   fastAsin,
}

// RotateTo rotates a position (lon, lat) expressed in the pole aligned
// system into the system whose pole is at (poleRA, poleDec).
// NodeLon is the reference node longitude in the source system.
//
// The returned longitude is normalized to [0, 2π).
func RotateTo(poleRA, poleDec, nodeLon, lon, lat unit.Angle) (unit.Angle, unit.Angle) {
	return Exact.RotateTo(poleRA, poleDec, nodeLon, lon, lat)
}

// RotateFrom is the inverse of RotateTo.
func RotateFrom(poleRA, poleDec, nodeLon, lon, lat unit.Angle) (unit.Angle, unit.Angle) {
	return Exact.RotateFrom(poleRA, poleDec, nodeLon, lon, lat)
}

// RotateTo, see package function RotateTo.
func (t *Trig) RotateTo(poleRA, poleDec, nodeLon, lon, lat unit.Angle) (unit.Angle, unit.Angle) {
	sφ, cφ := t.Sincos(lat.Rad())
	sp, cp := t.Sincos(poleDec.Rad())
	su, cu := t.Sincos(lon.Rad() - nodeLon.Rad())
	rLat := t.asin(sφ*sp + cφ*cp*su)
	rLon := poleRA.Rad() + t.atan2(cφ*cu, sφ*cp-cφ*sp*su)
	return unit.Angle(rLon).Mod1(), unit.Angle(rLat)
}

// RotateFrom, see package function RotateFrom.
func (t *Trig) RotateFrom(poleRA, poleDec, nodeLon, lon, lat unit.Angle) (unit.Angle, unit.Angle) {
	sδ, cδ := t.Sincos(lat.Rad())
	sp, cp := t.Sincos(poleDec.Rad())
	sh, ch := t.Sincos(lon.Rad() - poleRA.Rad())
	rLat := t.asin(sδ*sp + cδ*cp*ch)
	rLon := nodeLon.Rad() + t.atan2(sδ*cp-cδ*sp*ch, cδ*sh)
	return unit.Angle(rLon).Mod1(), unit.Angle(rLat)
}

// atan2 with the pole convention:  a (0, 0) pair means the position
// coincides with a pole and the offset from the reference longitude is 0.
func (t *Trig) atan2(y, x float64) float64 {
	if y == 0 && x == 0 {
		return 0
	}
	return t.Atan2(y, x)
}

// asin clamped to the domain.  rounding can push a pole position just past 1.
func (t *Trig) asin(x float64) float64 {
	switch {
	case x >= 1:
		return math.Pi / 2
	case x <= -1:
		return -math.Pi / 2
	}
	return t.Asin(x)
}
