// Public domain.

package geodesy_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	xrand "golang.org/x/exp/rand"

	"github.com/soniakeys/refframe/ellipsoid"
	"github.com/soniakeys/refframe/geodesy"
	"github.com/soniakeys/unit"
)

const mas = math.Pi / 180 / 3600 / 1000

func ExampleParallaxConstants() {
	// Meeus, Example 11.a, Palomar.
	φ := unit.NewAngle(' ', 33, 21, 22)
	s, c := geodesy.ParallaxConstants(ellipsoid.IAU1976, φ, 1706)
	fmt.Printf("ρ sin φ′ = %+.6f\n", s)
	fmt.Printf("ρ cos φ′ = %+.6f\n", c)
	// Output:
	// ρ sin φ′ = +0.546861
	// ρ cos φ′ = +0.836339
}

func TestRoundTrip(t *testing.T) {
	rnd := xrand.New(&xrand.PCGSource{})
	rnd.Seed(11)
	for _, e := range []ellipsoid.Model{ellipsoid.WGS84, ellipsoid.WGS72,
		ellipsoid.IERS2003, ellipsoid.Mars} {
		for i := 0; i < 2000; i++ {
			lon := unit.Angle(rnd.Float64() * 2 * math.Pi)
			lat := unit.Angle((rnd.Float64() - .5) * math.Pi)
			h := -1000 + rnd.Float64()*101000
			g := geodesy.GeodeticToGeocentric(e, lon, lat, h)
			d, err := geodesy.GeocentricToGeodetic(e, g)
			if err != nil {
				t.Fatal(e.Name(), err)
			}
			if d.Lon != lon {
				t.Fatal("longitude changed")
			}
			if math.Abs(d.Lat.Rad()-lat.Rad()) > mas {
				t.Fatalf("%s lat %v h %g: lat off %g mas", e.Name(), lat, h,
					(d.Lat.Rad()-lat.Rad())/mas)
			}
			if math.Abs(d.Height-h) > .001 {
				t.Fatalf("%s lat %v h %g: height off %g m", e.Name(), lat, h,
					d.Height-h)
			}
		}
	}
}

func TestPolesAndEquator(t *testing.T) {
	for _, lat := range []float64{90, -90, 0} {
		φ := unit.AngleFromDeg(lat)
		g := geodesy.GeodeticToGeocentric(ellipsoid.WGS84, 1, φ, 500)
		if math.Abs(g.Lat.Rad()-φ.Rad()) > 1e-15 {
			t.Errorf("geocentric latitude at %g: %v", lat, g.Lat)
		}
		d, err := geodesy.GeocentricToGeodetic(ellipsoid.WGS84, g)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(d.Lat.Rad()-φ.Rad()) > mas || math.Abs(d.Height-500) > 1e-6 {
			t.Errorf("round trip at %g: %v %g", lat, d.Lat, d.Height)
		}
	}
	// equatorial radius at the equator, polar radius at the pole.
	g := geodesy.GeodeticToGeocentric(ellipsoid.WGS84, 0, 0, 0)
	if math.Abs(g.Radius-1) > 1e-15 {
		t.Error("equator radius", g.Radius)
	}
	g = geodesy.GeodeticToGeocentric(ellipsoid.WGS84, 0, math.Pi/2, 0)
	if want := 1 - 1/298.257223563; math.Abs(g.Radius-want) > 1e-15 {
		t.Error("polar radius", g.Radius, want)
	}
}

func TestGeocentricLatitudeSign(t *testing.T) {
	for _, lat := range []float64{-60, -1e-6, 1e-6, 60} {
		g := geodesy.GeodeticToGeocentric(ellipsoid.WGS84, 0, unit.AngleFromDeg(lat), 0)
		if (g.Lat < 0) != (lat < 0) {
			t.Errorf("latitude %g gave geocentric %v", lat, g.Lat)
		}
		// geocentric latitude is nearer the equator
		if math.Abs(g.Lat.Deg()) > math.Abs(lat) {
			t.Errorf("latitude %g gave geocentric %v", lat, g.Lat.Deg())
		}
	}
}

func TestParallaxAgreement(t *testing.T) {
	// geocentric coordinates and meeus parallax constants are the same
	// quantities in different form.
	for lat := -90.; lat <= 90; lat += 7.5 {
		φ := unit.AngleFromDeg(lat)
		s, c := geodesy.ParallaxConstants(ellipsoid.WGS84, φ, 2500)
		g := geodesy.GeodeticToGeocentric(ellipsoid.WGS84, 0, φ, 2500)
		if math.Abs(g.Radius*g.Lat.Sin()-s) > 1e-12 ||
			math.Abs(g.Radius*g.Lat.Cos()-c) > 1e-12 {
			t.Fatalf("lat %g: %g %g vs %g %g", lat,
				g.Radius*g.Lat.Sin(), g.Radius*g.Lat.Cos(), s, c)
		}
		d, err := geodesy.FromParallax(ellipsoid.WGS84, 0, s, c)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(d.Height-2500) > .001 || math.Abs(d.Lat.Rad()-φ.Rad()) > mas {
			t.Fatalf("FromParallax lat %g: %v %g", lat, d.Lat, d.Height)
		}
	}
}

func TestInvalid(t *testing.T) {
	for _, r := range []float64{0, -1, math.NaN(), 1e-6} {
		_, err := geodesy.GeocentricToGeodetic(ellipsoid.WGS84,
			geodesy.Geocentric{Lat: .5, Radius: r})
		if err == nil {
			t.Errorf("radius %g accepted", r)
		}
	}
}

func TestDistance(t *testing.T) {
	// Meeus, Example 11.c.
	paris := geodesy.Geodetic{
		Lat:   unit.NewAngle(' ', 48, 50, 11),
		Lon:   unit.NewAngle('-', 2, 20, 14),
		Model: ellipsoid.IAU1976,
	}
	usno := geodesy.Geodetic{
		Lat:   unit.NewAngle(' ', 38, 55, 17),
		Lon:   unit.NewAngle(' ', 77, 3, 56),
		Model: ellipsoid.IAU1976,
	}
	d, err := geodesy.Distance(paris, usno)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(d-6181.63) > .01 {
		t.Errorf("distance %.2f km, want 6181.63", d)
	}
	if d, err = geodesy.Distance(paris, paris); err != nil || d != 0 {
		t.Error("same point:", d, err)
	}
	usno.Model = ellipsoid.WGS84
	if _, err := geodesy.Distance(paris, usno); !errors.Is(err, geodesy.ErrEllipsoidMismatch) {
		t.Error("mismatch:", err)
	}
}
