// Public domain.

package observer

import (
	"errors"
	"fmt"
	"log"

	"github.com/soniakeys/mpcformat"
	"github.com/soniakeys/observation"
	"github.com/soniakeys/refframe/ellipsoid"
	"github.com/soniakeys/refframe/geodesy"
	"github.com/soniakeys/unit"
)

var (
	// ErrUnknownSite is returned for an observatory code not in the map.
	ErrUnknownSite = errors.New("unknown observatory code")
	// ErrNoParallax is returned for a code with no parallax constants,
	// such as a space based or roving observer.
	ErrNoParallax = errors.New("observatory has no parallax constants")
)

// ReadSites reads an MPC obscode.dat file.  If the file can't be read, a
// fresh copy is downloaded to fn and read.
func ReadSites(fn string) (observation.ParallaxMap, error) {
	m, readErr := mpcformat.ReadObscodeDatFile(fn)
	if readErr == nil {
		return m, nil
	}
	if err := mpcformat.FetchObscodeDat(fn); err != nil {
		log.Println(readErr)
		return nil, err
	}
	return mpcformat.ReadObscodeDatFile(fn)
}

// obscode.dat gives parallax constants in Earth radii.  mpcformat scales
// them to AU with these values, in meters.
const (
	mpcEarthRadius = 6.37814e6
	mpcAU          = 149.59787e9
)

// SiteLocation returns the location on the Earth of an MPC observatory
// code, on ellipsoid e.
//
// Parallax constants in m are in AU as read by mpcformat.  They are taken
// back to Earth radii and then as radii of e.
func SiteLocation(m observation.ParallaxMap, code string, e ellipsoid.Model) (*Location, error) {
	p, ok := m[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSite, code)
	}
	if p == nil || p.RhoCosPhi == 0 && p.RhoSinPhi == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoParallax, code)
	}
	const sf = mpcAU / mpcEarthRadius
	g, err := geodesy.FromParallax(e, unit.Angle(p.Longitude).Mod1(),
		p.RhoSinPhi*sf, p.RhoCosPhi*sf)
	if err != nil {
		return nil, fmt.Errorf("site %s: %w", code, err)
	}
	return New(Earth, e, g.Lon, g.Lat, g.Height), nil
}
