// Public domain.

package rotation_test

import (
	"fmt"
	"math"
	"testing"

	xrand "golang.org/x/exp/rand"

	"github.com/soniakeys/refframe/rotation"
	"github.com/soniakeys/unit"
)

// J2000 galactic pole and node, as used for galactic coordinates.
var (
	ngpRA  = unit.AngleFromDeg(192.85948)
	ngpDec = unit.AngleFromDeg(27.12825)
	node   = unit.AngleFromDeg(32.93192)
)

func ExampleRotateTo() {
	// galactic center to equatorial
	α, δ := rotation.RotateTo(ngpRA, ngpDec, node, 0, 0)
	fmt.Printf("%.3f %.3f\n", α.Deg(), δ.Deg())
	// Output:
	// 266.405 -28.936
}

// difference of longitudes, reduced to [-π, π)
func dLon(a, b unit.Angle) float64 {
	return math.Remainder(a.Rad()-b.Rad(), 2*math.Pi)
}

func TestRoundTrip(t *testing.T) {
	rnd := xrand.New(&xrand.PCGSource{})
	rnd.Seed(3)
	for _, tc := range []struct {
		name string
		trig *rotation.Trig
		tol  float64
	}{
		{"exact", rotation.Exact, 1e-10},
		{"fast", rotation.Fast, 1e-3},
	} {
		for i := 0; i < 1000; i++ {
			pα := unit.Angle(rnd.Float64() * 2 * math.Pi)
			pδ := unit.Angle((rnd.Float64() - .5) * math.Pi)
			n := unit.Angle(rnd.Float64() * 2 * math.Pi)
			λ := unit.Angle(rnd.Float64() * 2 * math.Pi)
			β := unit.Angle((rnd.Float64() - .5) * 3) // stay off the poles
			α, δ := tc.trig.RotateTo(pα, pδ, n, λ, β)
			λ2, β2 := tc.trig.RotateFrom(pα, pδ, n, α, δ)
			if math.Abs(dLon(λ2, λ)) > tc.tol || math.Abs(β2.Rad()-β.Rad()) > tc.tol {
				t.Fatalf("%s: (%v, %v) round trip gave (%v, %v)",
					tc.name, λ, β, λ2, β2)
			}
			if α < 0 || α.Rad() >= 2*math.Pi {
				t.Fatalf("%s: longitude %v not normalized", tc.name, α)
			}
		}
	}
}

func TestFastMatchesExact(t *testing.T) {
	rnd := xrand.New(&xrand.PCGSource{})
	rnd.Seed(7)
	for i := 0; i < 1000; i++ {
		pα := unit.Angle(rnd.Float64() * 2 * math.Pi)
		pδ := unit.Angle((rnd.Float64() - .5) * math.Pi)
		λ := unit.Angle(rnd.Float64() * 2 * math.Pi)
		β := unit.Angle((rnd.Float64() - .5) * 3)
		α1, δ1 := rotation.Exact.RotateTo(pα, pδ, 0, λ, β)
		α2, δ2 := rotation.Fast.RotateTo(pα, pδ, 0, λ, β)
		if math.Abs(dLon(α1, α2)) > 1e-3 || math.Abs(δ1.Rad()-δ2.Rad()) > 1e-3 {
			t.Fatalf("fast (%v, %v) exact (%v, %v)", α2, δ2, α1, δ1)
		}
	}
}

func TestPole(t *testing.T) {
	for _, tc := range []struct {
		trig *rotation.Trig
		tol  float64
	}{{rotation.Exact, 1e-7}, {rotation.Fast, 5e-3}} {
		trig := tc.trig
		for _, β := range []unit.Angle{math.Pi / 2, -math.Pi / 2} {
			// pole of the input system, also with a target pole
			// coinciding with the input pole.
			for _, pδ := range []unit.Angle{ngpDec, math.Pi / 2} {
				α, δ := trig.RotateTo(ngpRA, pδ, node, 0, β)
				if math.IsNaN(α.Rad()) || math.IsNaN(δ.Rad()) {
					t.Fatalf("RotateTo pole %v, lat %v: NaN", pδ, β)
				}
				λ, b := trig.RotateFrom(ngpRA, pδ, node, α, δ)
				if math.IsNaN(λ.Rad()) || math.Abs(b.Rad()-β.Rad()) > tc.tol {
					t.Fatalf("RotateFrom pole %v: got lat %v want %v", pδ, b, β)
				}
				// deterministic
				α2, _ := trig.RotateTo(ngpRA, pδ, node, 0, β)
				if α2 != α {
					t.Fatal("pole longitude not deterministic")
				}
			}
		}
	}
	// exact (0,0) atan2 pair gives the reference longitude.
	α, δ := rotation.RotateTo(1, math.Pi/2, 0, 0, 0)
	if math.IsNaN(α.Rad()) || math.Abs(δ.Rad()) > 1e-15 {
		t.Fatal("equator with polar target:", α, δ)
	}
}

func TestFastPrimitives(t *testing.T) {
	for x := -10.; x <= 10; x += .001 {
		s, c := rotation.Fast.Sincos(x)
		if math.Abs(s-math.Sin(x)) > 5e-7 || math.Abs(c-math.Cos(x)) > 5e-7 {
			t.Fatalf("sincos(%g) = %g %g", x, s, c)
		}
	}
	for x := -1.; x <= 1; x += .0001 {
		if d := math.Abs(rotation.Fast.Asin(x) - math.Asin(x)); d > 1e-7 {
			t.Fatalf("asin(%g) off by %g", x, d)
		}
	}
	for a := -math.Pi; a < math.Pi; a += .001 {
		y, x := math.Sincos(a)
		if d := math.Abs(rotation.Fast.Atan2(3*y, 3*x) - a); d > 1e-7 {
			t.Fatalf("atan2 at %g off by %g", a, d)
		}
	}
}
