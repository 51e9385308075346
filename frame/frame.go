// Public domain.

// Package frame converts positions between equatorial, ecliptic, horizontal
// and galactic coordinates.
//
// Conversions are stateless.  Everything a conversion needs beyond the
// position itself, the date, observer latitude, sidereal time, Earth
// orientation corrections, comes in a Context.  Equatorial coordinates are
// the pivot:  Transform converts any system to any other through
// equatorial.
package frame

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/soniakeys/refframe/eop"
	"github.com/soniakeys/refframe/rotation"
	"github.com/soniakeys/unit"
)

// System is a celestial coordinate system.
type System int

const (
	Equatorial System = iota
	Ecliptic
	Horizontal
	Galactic
)

var systemNames = [...]string{"equatorial", "ecliptic", "horizontal", "galactic"}

func (s System) String() string {
	if s < 0 || int(s) >= len(systemNames) {
		return fmt.Sprintf("System(%d)", int(s))
	}
	return systemNames[s]
}

// ParseSystem parses a system name, case insensitively.  Unique prefixes
// are accepted.
func ParseSystem(name string) (System, error) {
	name = strings.ToLower(name)
	found := -1
	for i, n := range systemNames {
		if name != "" && strings.HasPrefix(n, name) {
			if found >= 0 {
				return 0, fmt.Errorf("%w: ambiguous %q", ErrSystem, name)
			}
			found = i
		}
	}
	if found < 0 {
		return 0, fmt.Errorf("%w: %q", ErrSystem, name)
	}
	return System(found), nil
}

// Frame is the reference frame of equatorial coordinates.
type Frame int

const (
	// FK5 coordinates are referred to the mean equator and equinox of
	// Context.JDE.
	FK5 Frame = iota
	// ICRF coordinates are referred to the ICRS axes, independent of
	// date.
	ICRF
)

// Position is a position in some system.
//
// Lon is right ascension, ecliptic or galactic longitude, or azimuth
// measured from north through east.  Lat is the corresponding latitude,
// declination or altitude.  Radius is passed through unchanged, in
// whatever unit the caller uses.
type Position struct {
	Lon, Lat unit.Angle
	Radius   float64
}

// Context holds what conversions need besides the position.
type Context struct {
	// JDE is the TT Julian date of the equator and equinox of FK5
	// coordinates and of the ecliptic.  0 means J2000.
	JDE float64
	// Frame of equatorial coordinates.
	Frame Frame
	// LST is local apparent sidereal time, used by horizontal
	// conversions.  See SiderealTime.
	LST unit.Angle
	// Latitude is the observer's geodetic latitude.
	Latitude unit.Angle
	// TrueObliquity selects the true obliquity of date, including
	// nutation and EOP.DEps, for ecliptic conversions.  Otherwise the
	// mean obliquity is used.
	TrueObliquity bool
	// EOP carries corrections to nutation.
	EOP eop.Params
	// Fast selects approximate trigonometry.
	Fast bool
}

func (c *Context) trig() *rotation.Trig {
	if c.Fast {
		return rotation.Fast
	}
	return rotation.Exact
}

var (
	// ErrSystem is returned for an unknown coordinate system.
	ErrSystem = errors.New("unknown coordinate system")
	// ErrLatitude is returned for a latitude outside [-π/2, π/2].
	ErrLatitude = errors.New("latitude out of range")
	// ErrContext is returned when a conversion needing a Context has
	// none.
	ErrContext = errors.New("no conversion context")
)

func (p Position) check() error {
	if φ := p.Lat.Rad(); !(φ >= -math.Pi/2 && φ <= math.Pi/2) {
		return fmt.Errorf("%w: %v", ErrLatitude, p.Lat)
	}
	return nil
}

// Transform converts p from system from to system to.
//
// ctx may be nil only when from and to are the same.
func Transform(from, to System, p Position, ctx *Context) (Position, error) {
	if err := p.check(); err != nil {
		return p, err
	}
	if from == to {
		if from < 0 || int(from) >= len(systemNames) {
			return p, fmt.Errorf("%w: %v", ErrSystem, from)
		}
		p.Lon = p.Lon.Mod1()
		return p, nil
	}
	if ctx == nil {
		return p, ErrContext
	}
	var eq Position
	switch from {
	case Equatorial:
		eq = p
	case Ecliptic:
		eq = ctx.EclipticToEquatorial(p)
	case Horizontal:
		eq = ctx.HorizontalToEquatorial(p)
	case Galactic:
		eq = ctx.GalacticToEquatorial(p)
	default:
		return p, fmt.Errorf("%w: %v", ErrSystem, from)
	}
	switch to {
	case Equatorial:
		eq.Lon = eq.Lon.Mod1()
		return eq, nil
	case Ecliptic:
		return ctx.EquatorialToEcliptic(eq), nil
	case Horizontal:
		return ctx.EquatorialToHorizontal(eq), nil
	case Galactic:
		return ctx.EquatorialToGalactic(eq), nil
	}
	return p, fmt.Errorf("%w: %v", ErrSystem, to)
}
