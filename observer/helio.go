// Public domain.

package observer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/soniakeys/astro"
	"github.com/soniakeys/coord"
	mcoord "github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/precess"
	"github.com/soniakeys/refframe/internal/rmat"
	"github.com/soniakeys/refframe/internal/timescale"
	"github.com/soniakeys/unit"
)

// Algorithm selects a planet theory.
type Algorithm int

const (
	// VSOP87 is the full VSOP87 theory.  Data files are located by the
	// VSOP87 environment variable, as meeus planetposition does.
	VSOP87 Algorithm = iota
	// Approximate is a low precision solar ephemeris, good to about an
	// arc minute.  It gives the Earth only.
	Approximate
)

var algorithmNames = [...]string{"VSOP87", "approximate"}

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// ParseAlgorithm parses an algorithm name, case insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	for i, n := range algorithmNames {
		if strings.EqualFold(n, name) {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
}

var (
	// ErrUnsupportedBody is returned for a body no theory covers.
	ErrUnsupportedBody = errors.New("unsupported body")
	// ErrUnsupportedAlgorithm is returned for an algorithm with no
	// planet theory.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
)

// PlanetTheory gives heliocentric positions of planets.
type PlanetTheory interface {
	// Heliocentric returns the heliocentric position of a planet, ICRF,
	// in AU, at TT Julian date jde.  It returns ErrUnsupportedBody for
	// bodies it doesn't cover.
	Heliocentric(body string, jde float64) (coord.Cart, error)
}

// SatelliteTheory gives the position of a satellite relative to its
// primary.
type SatelliteTheory interface {
	Primary() string
	// Planetocentric returns the position relative to the primary, ICRF,
	// in AU, at TT Julian date jde.
	Planetocentric(jde float64) (coord.Cart, error)
}

// Ephemerides holds planet theories by algorithm and satellite theories
// by satellite name.
type Ephemerides struct {
	planets map[Algorithm]PlanetTheory
	sats    map[string]SatelliteTheory
}

// NewEphemerides returns ephemerides with VSOP87 and Approximate planet
// theories and a theory for the Moon.
func NewEphemerides() *Ephemerides {
	e := &Ephemerides{
		planets: map[Algorithm]PlanetTheory{},
		sats:    map[string]SatelliteTheory{},
	}
	e.SetPlanetTheory(VSOP87, &VSOP87Theory{})
	e.SetPlanetTheory(Approximate, approximateTheory{})
	e.AddSatellite("Moon", moonTheory{})
	return e
}

// DefaultEphemerides is used by a Config with nil Ephemerides.
var DefaultEphemerides = NewEphemerides()

// SetPlanetTheory sets the theory used for algorithm a.
func (e *Ephemerides) SetPlanetTheory(a Algorithm, t PlanetTheory) {
	e.planets[a] = t
}

// AddSatellite adds or replaces the theory for a named satellite.
func (e *Ephemerides) AddSatellite(name string, t SatelliteTheory) {
	e.sats[strings.ToLower(name)] = t
}

// Heliocentric returns the heliocentric position of body, ICRF, AU, at TT
// Julian date jde.
//
// A satellite is the position of its primary, by algorithm a, plus the
// satellite theory offset.
func (e *Ephemerides) Heliocentric(body string, jde float64, a Algorithm) (coord.Cart, error) {
	if s, ok := e.sats[strings.ToLower(body)]; ok {
		p, err := e.planet(s.Primary(), jde, a)
		if err != nil {
			return coord.Cart{}, err
		}
		o, err := s.Planetocentric(jde)
		if err != nil {
			return coord.Cart{}, err
		}
		var h coord.Cart
		h.Add(&p, &o)
		return h, nil
	}
	return e.planet(body, jde, a)
}

func (e *Ephemerides) planet(body string, jde float64, a Algorithm) (coord.Cart, error) {
	t, ok := e.planets[a]
	if !ok {
		return coord.Cart{}, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, a)
	}
	return t.Heliocentric(body, jde)
}

// HeliocentricPosition returns the heliocentric position of the observer,
// ICRF, AU, at UTC Julian date jdUTC.
//
// This is the position of the body of the location plus, on the Earth,
// the topocentric vector.  A nil cfg is the zero Config.
func (l *Location) HeliocentricPosition(jdUTC float64, cfg *Config) (coord.Cart, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if l.body == "" {
		return coord.Cart{}, fmt.Errorf("%w: location not bound to a body", ErrUnsupportedBody)
	}
	e := cfg.Ephemerides
	if e == nil {
		e = DefaultEphemerides
	}
	h, err := e.Heliocentric(l.body, timescale.TT(jdUTC), cfg.Algorithm)
	if err != nil || !l.onEarth() {
		return h, err
	}
	t, err := l.TopocentricVector(jdUTC, cfg)
	if err != nil {
		return coord.Cart{}, err
	}
	h.Add(&h, &t.Pos)
	return h, nil
}

// ε2000 rotates J2000 ecliptic to ICRF.
var ε2000 = rmat.Mul(rmat.Bias.T(), rmat.R1(-unit.AngleFromSec(84381.448).Rad()))

var planetNames = []string{"Mercury", "Venus", "Earth", "Mars",
	"Jupiter", "Saturn", "Uranus", "Neptune"}

func planetIndex(body string) (int, bool) {
	for i, n := range planetNames {
		if strings.EqualFold(n, body) {
			return i, true
		}
	}
	return 0, false
}

// VSOP87Theory is a PlanetTheory using VSOP87 via meeus planetposition.
// Planet data files are loaded on first use.
type VSOP87Theory struct {
	loaded [8]*planetposition.V87Planet
}

// Heliocentric satisfies PlanetTheory.
func (v *VSOP87Theory) Heliocentric(body string, jde float64) (coord.Cart, error) {
	i, ok := planetIndex(body)
	if !ok {
		return coord.Cart{}, fmt.Errorf("%w: %s", ErrUnsupportedBody, body)
	}
	p := v.loaded[i]
	if p == nil {
		var err error
		if p, err = planetposition.LoadPlanet(i); err != nil {
			return coord.Cart{}, fmt.Errorf("loading VSOP87 %s: %w", planetNames[i], err)
		}
		v.loaded[i] = p
	}
	L, B, R := p.Position2000(jde)
	return ε2000.Apply(rmat.Vec(L, B, R)), nil
}

type approximateTheory struct{}

func (approximateTheory) Heliocentric(body string, jde float64) (coord.Cart, error) {
	if !strings.EqualFold(body, Earth) {
		return coord.Cart{}, fmt.Errorf("%w: %s by %v", ErrUnsupportedBody, body, Approximate)
	}
	// Se2000 gives the Sun from the Earth
	s, _, _ := astro.Se2000(timescale.MJD(jde))
	return coord.Cart{X: -s.X, Y: -s.Y, Z: -s.Z}, nil
}

type moonTheory struct{}

func (moonTheory) Primary() string { return Earth }

// Planetocentric precesses the ecliptic position of date to J2000.
func (moonTheory) Planetocentric(jde float64) (coord.Cart, error) {
	λ, β, Δ := moonposition.Position(jde)
	var j mcoord.Ecliptic
	precess.NewEclipticPrecessor(timescale.JulianYear(jde), 2000).
		Precess(&mcoord.Ecliptic{Lon: λ, Lat: β}, &j)
	return ε2000.Apply(rmat.Vec(j.Lon, j.Lat, Δ/AU)), nil
}
