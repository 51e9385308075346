// Public domain.

// Package timescale converts between UTC, TT and UT1 Julian dates.
//
// All dates are Julian day numbers in the scale named by the function or
// parameter.  UTC offsets use the leap second table from 1972 on and ΔT
// before that.
package timescale

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/deltat"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/unit"
)

// MJDOffset is the difference between Julian and modified Julian dates.
const MJDOffset = 2400000.5

// TTMinusTAI is the fixed offset of TT from TAI, in seconds.
const TTMinusTAI = 32.184

// MJD converts a Julian date to a modified Julian date.
func MJD(jd float64) float64 { return jd - MJDOffset }

// JD converts a modified Julian date to a Julian date.
func JD(mjd float64) float64 { return mjd + MJDOffset }

// FromTime returns the Julian date of t, in the scale t represents.
func FromTime(t time.Time) float64 { return julian.TimeToJD(t) }

// ToTime returns the time.Time of Julian date jd, UTC location.
func ToTime(jd float64) time.Time { return julian.JDToTime(jd) }

// JulianYear returns the Julian epoch of a TT date.
func JulianYear(jde float64) float64 { return base.JDEToJulianYear(jde) }

// Centuries returns Julian centuries of TT from J2000.
func Centuries(jde float64) float64 { return base.J2000Century(jde) }

type leap struct {
	mjd float64
	s   float64 // TAI-UTC on and after mjd
}

var leaps []leap

func init() {
	for _, l := range []struct {
		y, m int
		s    float64
	}{
		{1972, 1, 10}, {1972, 7, 11}, {1973, 1, 12}, {1974, 1, 13},
		{1975, 1, 14}, {1976, 1, 15}, {1977, 1, 16}, {1978, 1, 17},
		{1979, 1, 18}, {1980, 1, 19}, {1981, 7, 20}, {1982, 7, 21},
		{1983, 7, 22}, {1985, 7, 23}, {1988, 1, 24}, {1990, 1, 25},
		{1991, 1, 26}, {1992, 7, 27}, {1993, 7, 28}, {1994, 7, 29},
		{1996, 1, 30}, {1997, 7, 31}, {1999, 1, 32}, {2006, 1, 33},
		{2009, 1, 34}, {2012, 7, 35}, {2015, 7, 36}, {2017, 1, 37},
	} {
		jd := julian.CalendarGregorianToJD(l.y, l.m, 1)
		leaps = append(leaps, leap{MJD(jd), l.s})
	}
}

// TAIMinusUTC returns TAI-UTC in seconds.  It returns false for dates
// before 1972, where UTC did not step by whole seconds.
func TAIMinusUTC(jdUTC float64) (float64, bool) {
	mjd := MJD(jdUTC)
	if mjd < leaps[0].mjd {
		return 0, false
	}
	s := leaps[0].s
	for _, l := range leaps[1:] {
		if mjd < l.mjd {
			break
		}
		s = l.s
	}
	return s, true
}

// TTMinusUTC returns TT-UTC.
func TTMinusUTC(jdUTC float64) unit.Time {
	if s, ok := TAIMinusUTC(jdUTC); ok {
		return unit.Time(s + TTMinusTAI)
	}
	y := base.JDEToJulianYear(jdUTC)
	if y < 1620 {
		// Morrison and Stephenson long term parabola
		u := (y - 1820) / 100
		return unit.Time(-20 + 32*u*u)
	}
	return deltat.Interp10A(jdUTC)
}

// TT converts a UTC Julian date to TT.
func TT(jdUTC float64) float64 {
	return jdUTC + TTMinusUTC(jdUTC).Day()
}

// UTC converts a TT Julian date to UTC, to well under a millisecond.
func UTC(jde float64) float64 {
	jd := jde - TTMinusUTC(jde).Day()
	// once more in case a leap second falls between the two.
	return jde - TTMinusUTC(jd).Day()
}

// UT1 returns the UT1 Julian date given UT1-UTC in seconds.
func UT1(jdUTC, ut1MinusUTC float64) float64 {
	return jdUTC + ut1MinusUTC/86400
}

// Midnight returns the modified Julian date of the UTC midnight at or
// before mjd.
func Midnight(mjd float64) float64 {
	return math.Floor(mjd)
}
