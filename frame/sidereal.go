// Public domain.

package frame

import (
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/refframe/eop"
	"github.com/soniakeys/refframe/internal/timescale"
	"github.com/soniakeys/unit"
)

// SiderealTime returns local apparent sidereal time at a UTC Julian date
// for east longitude lon.
//
// UT1 is UTC corrected by p.UT1MinusUTC.  The equation of the equinoxes
// includes the nutation in longitude correction p.DPsi.
func SiderealTime(jdUTC float64, lon unit.Angle, p eop.Params) unit.Angle {
	jd := timescale.UT1(jdUTC, p.UT1MinusUTC)
	st := sidereal.Apparent(jd).Angle()
	if p.DPsi != 0 {
		ε := nutation.MeanObliquity(timescale.TT(jdUTC))
		st += unit.AngleFromSec(p.DPsi).Mul(ε.Cos())
	}
	return (st + lon).Mod1()
}

// NewContext returns a Context for an observer at east longitude lon and
// geodetic latitude lat at a UTC Julian date, with sidereal time and the
// date of the equator set from p.
func NewContext(jdUTC float64, lon, lat unit.Angle, p eop.Params) *Context {
	return &Context{
		JDE:      timescale.TT(jdUTC),
		LST:      SiderealTime(jdUTC, lon, p),
		Latitude: lat,
		EOP:      p,
	}
}
