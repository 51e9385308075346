// Public domain.

package observer

import (
	"fmt"
	"math"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/refframe/eop"
	"github.com/soniakeys/refframe/frame"
	"github.com/soniakeys/refframe/internal/rmat"
	"github.com/soniakeys/refframe/internal/timescale"
	"github.com/soniakeys/unit"
)

const (
	// AU is the astronomical unit in km.
	AU = 149597870.7
	// EarthRotation is the angular velocity of the Earth in radians per
	// second.
	EarthRotation = 7.292115146706979e-5
)

var arcsec = math.Pi / 180 / 3600

// StateVector is a position in AU and velocity in AU per day.
type StateVector struct {
	Pos, Vel coord.Cart
}

// Config selects how observer vectors are computed.
type Config struct {
	// Geocentric turns off topocentric correction.
	Geocentric bool
	// Store supplies Earth orientation parameters.  Nil means none.
	Store *eop.Store
	// Method is the reduction method EOP are obtained for.
	Method eop.Method
	// Algorithm selects the planet theory for heliocentric positions.
	Algorithm Algorithm
	// Ephemerides holds the theories.  Nil means DefaultEphemerides.
	Ephemerides *Ephemerides
}

// TopocentricVector returns the geocentric state vector of the observer,
// ICRF, at a UTC Julian date.
//
// The vector is built in the true equator and equinox of date from
// sidereal time and the geocentric location corrected for polar motion,
// then nutation is removed, the mean of date vector precessed to J2000
// and rotated from the dynamical frame to ICRF.
//
// The zero vector is returned for a Geocentric configuration and for an
// unbound location.  A nil cfg is the zero Config.
func (l *Location) TopocentricVector(jdUTC float64, cfg *Config) (StateVector, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.Geocentric || l.body == "" {
		return StateVector{}, nil
	}
	if !l.onEarth() {
		return StateVector{}, fmt.Errorf("%w: no rotation model for %s", ErrUnsupportedBody, l.body)
	}
	var p eop.Params
	if cfg.Store != nil {
		var err error
		if p, err = cfg.Store.Obtain(jdUTC, cfg.Method); err != nil {
			return StateVector{}, err
		}
	}
	jde := timescale.TT(jdUTC)
	g := l.geo
	// terrestrial, then corrected for polar motion
	t := rmat.Vec(g.Lon, g.Lat, g.Radius*l.model.Params().Radius/AU)
	t = rmat.Mul(rmat.R2(p.X*arcsec), rmat.R1(p.Y*arcsec)).Apply(t)
	// true of date
	gast := frame.SiderealTime(jdUTC, 0, p)
	pos := rmat.R3(-gast.Rad()).Apply(t)
	ω := EarthRotation * 86400
	vel := coord.Cart{X: -ω * pos.Y, Y: ω * pos.X}
	n, _ := rmat.Nutation(jde, unit.AngleFromSec(p.DPsi), unit.AngleFromSec(p.DEps))
	m := rmat.Mul(rmat.Bias.T(),
		rmat.Mul(rmat.Precession(timescale.JulianYear(jde), 2000), n.T()))
	return StateVector{Pos: m.Apply(pos), Vel: m.Apply(vel)}, nil
}
