// Public domain.

// Package observer places an observer on a body:  geodetic and geocentric
// location, the topocentric state vector in ICRF, and the heliocentric
// position of the observer.
package observer

import (
	"strings"

	"github.com/soniakeys/refframe/ellipsoid"
	"github.com/soniakeys/refframe/geodesy"
	"github.com/soniakeys/unit"
)

// Earth is the name of the body topocentric vectors are computed for.
const Earth = "Earth"

// Location is an observer's location on the ellipsoid of a body.
//
// Fields are set only through methods, each of which recomputes the
// geocentric location, so Geocentric is always current.
type Location struct {
	body  string
	model ellipsoid.Model
	lon   unit.Angle
	lat   unit.Angle
	h     float64
	geo   geodesy.Geocentric
}

// New returns a location on body at east longitude lon, geodetic latitude
// lat and height h in meters above ellipsoid m.
//
// An empty body leaves the location unbound:  it has coordinates but no
// topocentric correction.
func New(body string, m ellipsoid.Model, lon, lat unit.Angle, h float64) *Location {
	l := &Location{body: body, model: m, lon: lon, lat: lat, h: h}
	l.update()
	return l
}

// FromGeocentric returns a location given geocentric coordinates.
func FromGeocentric(body string, m ellipsoid.Model, g geodesy.Geocentric) (*Location, error) {
	d, err := geodesy.GeocentricToGeodetic(m, g)
	if err != nil {
		return nil, err
	}
	return New(body, m, d.Lon, d.Lat, d.Height), nil
}

func (l *Location) update() {
	l.geo = geodesy.GeodeticToGeocentric(l.model, l.lon, l.lat, l.h)
}

// SetLongitude sets east longitude.
func (l *Location) SetLongitude(lon unit.Angle) {
	l.lon = lon
	l.update()
}

// SetLatitude sets geodetic latitude.
func (l *Location) SetLatitude(lat unit.Angle) {
	l.lat = lat
	l.update()
}

// SetHeight sets height above the ellipsoid in meters.
func (l *Location) SetHeight(h float64) {
	l.h = h
	l.update()
}

// SetEllipsoid moves the location, same geodetic coordinates, to another
// ellipsoid.
func (l *Location) SetEllipsoid(m ellipsoid.Model) {
	l.model = m
	l.update()
}

// Body returns the body of the location, "" if unbound.
func (l *Location) Body() string { return l.body }

// Ellipsoid returns the ellipsoid of the location.
func (l *Location) Ellipsoid() ellipsoid.Model { return l.model }

// Geodetic returns the geodetic location.
func (l *Location) Geodetic() geodesy.Geodetic {
	return geodesy.Geodetic{Lon: l.lon, Lat: l.lat, Height: l.h, Model: l.model}
}

// Geocentric returns the geocentric location, radius in equatorial radii.
func (l *Location) Geocentric() geodesy.Geocentric { return l.geo }

func (l *Location) onEarth() bool { return strings.EqualFold(l.body, Earth) }
