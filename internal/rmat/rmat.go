// Public domain.

// Package rmat has 3x3 rotation matrices for frame bias, precession and
// nutation.
//
// Rotations are frame rotations:  R1, R2, R3 rotate the coordinate axes,
// not the vector, by a positive angle about x, y, z.
package rmat

import (
	"math"

	"github.com/soniakeys/coord"
	mcoord "github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/precess"
	"github.com/soniakeys/unit"
)

// M is a rotation matrix, row major.
type M [3][3]float64

// Identity is the identity matrix.
var Identity = M{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// R1 rotates the frame about x.
func R1(a float64) M {
	s, c := math.Sincos(a)
	return M{{1, 0, 0}, {0, c, s}, {0, -s, c}}
}

// R2 rotates the frame about y.
func R2(a float64) M {
	s, c := math.Sincos(a)
	return M{{c, 0, -s}, {0, 1, 0}, {s, 0, c}}
}

// R3 rotates the frame about z.
func R3(a float64) M {
	s, c := math.Sincos(a)
	return M{{c, s, 0}, {-s, c, 0}, {0, 0, 1}}
}

// Mul returns the product a·b, the rotation b followed by a.
func Mul(a, b M) M {
	var p M
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			p[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}
	return p
}

// T returns the transpose, which is the inverse rotation.
func (m M) T() M {
	var t M
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[i][j] = m[j][i]
		}
	}
	return t
}

// Apply returns m·v.
func (m M) Apply(v coord.Cart) coord.Cart {
	return coord.Cart{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Vec returns the cartesian vector of spherical coordinates.
func Vec(lon, lat unit.Angle, r float64) coord.Cart {
	sλ, cλ := lon.Sincos()
	sβ, cβ := lat.Sincos()
	return coord.Cart{X: r * cβ * cλ, Y: r * cβ * sλ, Z: r * sβ}
}

// Sph returns spherical coordinates of v, longitude in [0, 2π).
func Sph(v coord.Cart) (lon, lat unit.Angle, r float64) {
	ρ := math.Hypot(v.X, v.Y)
	r = math.Hypot(ρ, v.Z)
	if ρ == 0 && v.Z == 0 {
		return 0, 0, 0
	}
	return unit.Angle(math.Atan2(v.Y, v.X)).Mod1(),
		unit.Angle(math.Atan2(v.Z, ρ)), r
}

// Frame bias, IERS Conventions 2003, in arc seconds.
const (
	BiasXi0  = -0.0166170
	BiasEta0 = -0.0068192
	BiasDA0  = -0.01460
)

var sec = math.Pi / 180 / 3600

// Bias is the rotation from ICRS to the mean dynamical frame of J2000.
var Bias = Mul(R1(-BiasEta0*sec), Mul(R2(BiasXi0*sec), R3(BiasDA0*sec)))

// Precession returns the rotation from the mean equator and equinox of
// epoch from to the mean equator and equinox of epoch to, in Julian years.
//
// The matrix is built by precessing the basis vectors with the rigorous
// method of Meeus chapter 21.
func Precession(from, to float64) M {
	if from == to {
		return Identity
	}
	p := precess.NewPrecessor(from, to)
	img := func(ra unit.RA) coord.Cart {
		var eq mcoord.Equatorial
		p.Precess(&mcoord.Equatorial{RA: ra, Dec: 0}, &eq)
		return Vec(eq.RA.Angle(), eq.Dec, 1)
	}
	x := img(0)
	y := img(unit.RAFromDeg(90))
	var z coord.Cart
	z.Cross(&x, &y)
	return M{
		{x.X, y.X, z.X},
		{x.Y, y.Y, z.Y},
		{x.Z, y.Z, z.Z},
	}
}

// Nutation returns the rotation from the mean to the true equator and
// equinox of date, with the nutation in longitude and obliquity increased
// by dPsi, dEps, and the mean obliquity ε.
func Nutation(jde float64, dPsi, dEps unit.Angle) (n M, ε unit.Angle) {
	Δψ, Δε := nutation.Nutation(jde)
	ε = nutation.MeanObliquity(jde)
	Δψ += dPsi
	Δε += dEps
	n = Mul(R1(-(ε + Δε).Rad()), Mul(R3(-Δψ.Rad()), R1(ε.Rad())))
	return n, ε
}
