// Public domain.

package eop

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/soniakeys/refframe/internal/timescale"
)

// Method is a reduction method, which selects the family of table
// supplying its parameters.
type Method int

const (
	IAU1980 Method = iota
	IAU2000A
	IAU2000B
	IAU2006
)

var methodNames = [...]string{"IAU1980", "IAU2000A", "IAU2000B", "IAU2006"}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return "Method?"
	}
	return methodNames[m]
}

// Family returns the table family of the method.
func (m Method) Family() Family {
	if m == IAU1980 {
		return Family1980
	}
	return Family2000
}

// ErrMethod is returned by ParseMethod for an unknown name.
var ErrMethod = errors.New("unknown reduction method")

// ParseMethod parses a method name, case insensitively.
func ParseMethod(s string) (Method, error) {
	for i, n := range methodNames {
		if strings.EqualFold(s, n) {
			return Method(i), nil
		}
	}
	return 0, ErrMethod
}

// Params are Earth orientation parameters at a date.
type Params struct {
	DPsi, DEps  float64 // corrections to nutation, arc seconds
	X, Y        float64 // polar motion, arc seconds
	UT1MinusUTC float64 // seconds
	// Predicted is set when the parameters come from a prediction rather
	// than from the table.
	Predicted bool
}

// Options modify what a Store computes.
type Options struct {
	// Tides adds the diurnal and semidiurnal ocean tide terms to polar
	// motion and UT1.
	Tides bool
	// Predict answers dates past the end of a table from a Predictor, or
	// failing that by linear extrapolation of the last two records.
	Predict bool
}

// window is the number of records each side of the date used for
// interpolation.
const window = 2

// Store obtains Earth orientation parameters from tables.
type Store struct {
	cache *Cache
	diag  *Diagnostics
	opt   Options
	src   [2]Source
	pred  [2]Predictor
}

// NewStore returns a Store reading the given sources, at most one per
// family.  A later source of a family replaces an earlier one.
//
// Results are kept in c.  Warnings go to d.  Either may be nil, in which
// case the Store allocates its own.
func NewStore(c *Cache, d *Diagnostics, opt Options, sources ...Source) *Store {
	if c == nil {
		c = &Cache{}
	}
	if d == nil {
		d = &Diagnostics{}
	}
	s := &Store{cache: c, diag: d, opt: opt}
	for _, src := range sources {
		s.src[src.Family()] = src
	}
	return s
}

// SetPredictor sets the predictor for its family.
func (s *Store) SetPredictor(p Predictor) { s.pred[p.Family()] = p }

// Options returns the store options.
func (s *Store) Options() Options { return s.opt }

// SetOptions changes the store options.  Changing Tides invalidates the
// cached parameters.
func (s *Store) SetOptions(opt Options) { s.opt = opt }

// Diagnostics returns the warnings sink of the store.
func (s *Store) Diagnostics() *Diagnostics { return s.diag }

// Cache returns the cache of the store.
func (s *Store) Cache() *Cache { return s.cache }

// Obtain returns parameters at a UTC Julian date for reduction method m.
//
// For a 2000 family method the table's celestial pole offsets are
// returned converted to DPsi, DEps.
//
// A date not in the table gives zero parameters and a warning.  The
// error return is for failure reading a table.
func (s *Store) Obtain(jdUTC float64, m Method) (Params, error) {
	return s.ObtainContext(context.Background(), jdUTC, m)
}

// ObtainContext is Obtain with a context for the prediction feed.
func (s *Store) ObtainContext(ctx context.Context, jdUTC float64, m Method) (Params, error) {
	if p, ok := s.cache.lookup(jdUTC, m, s.opt.Tides); ok {
		cacheLookups.WithLabelValues("hit").Inc()
		return p, nil
	}
	cacheLookups.WithLabelValues("miss").Inc()
	p, err := s.compute(ctx, jdUTC, m)
	if err != nil {
		return Params{}, err
	}
	s.cache.store(jdUTC, m, s.opt.Tides, p)
	return p, nil
}

func (s *Store) compute(ctx context.Context, jdUTC float64, m Method) (Params, error) {
	f := m.Family()
	src := s.src[f]
	if src == nil {
		s.diag.Warn("no %s EOP table for %s, using 0", f, m)
		zeroCorrections.WithLabelValues("no table").Inc()
		return Params{}, nil
	}
	mjd := timescale.MJD(jdUTC)
	day := int(timescale.Midnight(mjd))
	sourceReads.WithLabelValues(f.String()).Inc()
	w, err := src.Window(day, window)
	if err != nil {
		return Params{}, err
	}
	var r Record
	var predicted bool
	switch {
	case hasDay(w, day):
		r = interpolate(w, mjd)
	case s.opt.Predict && pastEnd(src, day):
		var ok bool
		if r, ok, err = s.predict(ctx, src, mjd); err != nil || !ok {
			return Params{}, err
		}
		predicted = true
	default:
		s.diag.Warn("EOP not available for MJD %d, using 0", day)
		zeroCorrections.WithLabelValues("not covered").Inc()
		return Params{}, nil
	}
	return s.reduce(jdUTC, f, r, predicted), nil
}

// reduce applies tides and the pole offset conversion to an
// interpolated record.
func (s *Store) reduce(jdUTC float64, f Family, r Record, predicted bool) Params {
	jde := timescale.TT(jdUTC)
	if s.opt.Tides {
		x, y, u := OceanTides(timescale.MJD(jde))
		r.X += x * 1e-6
		r.Y += y * 1e-6
		r.UT1MinusUTC += u * 1e-6
	}
	p := Params{
		DPsi:        r.DPsi,
		DEps:        r.DEps,
		X:           r.X,
		Y:           r.Y,
		UT1MinusUTC: r.UT1MinusUTC,
		Predicted:   predicted,
	}
	if f == Family2000 {
		p.DPsi, p.DEps = PoleToNutation(jde, r.DPsi, r.DEps)
	}
	return p
}

func hasDay(w []Record, day int) bool {
	for _, r := range w {
		if r.MJD == day {
			return true
		}
	}
	return false
}

func pastEnd(src Source, day int) bool {
	_, last, ok := src.Coverage()
	return ok && day > last
}

// predict answers a date past the end of a table.
//
// ok is false, with a warning, when there is nothing to predict from.
func (s *Store) predict(ctx context.Context, src Source, mjd float64) (r Record, ok bool, err error) {
	if p := s.pred[src.Family()]; p != nil {
		if r, err = p.Predict(ctx, mjd); err == nil {
			s.diag.Warn("EOP for MJD %.2f predicted by %s", mjd, p.Name())
			return r, true, nil
		}
		s.diag.Warn("EOP prediction: %v; extrapolating table", err)
	}
	_, last, _ := src.Coverage()
	sourceReads.WithLabelValues(src.Family().String()).Inc()
	w, err := src.Window(last-window, window)
	if err != nil {
		return r, false, err
	}
	if len(w) < 2 {
		s.diag.Warn("EOP not available for MJD %.2f, using 0", mjd)
		zeroCorrections.WithLabelValues("not covered").Inc()
		return r, false, nil
	}
	s.diag.Warn("EOP for MJD %.2f extrapolated from MJD %d", mjd, last)
	return linear(w[len(w)-2], w[len(w)-1], mjd), true, nil
}

// linear interpolates or extrapolates linearly through records a and b.
func linear(a, b Record, mjd float64) Record {
	t := (mjd - float64(a.MJD)) / float64(b.MJD-a.MJD)
	lin := func(u, v float64) float64 { return u + (v-u)*t }
	// not across a leap second
	au := a.UT1MinusUTC + math.Round(b.UT1MinusUTC-a.UT1MinusUTC)
	return Record{
		MJD:         int(mjd),
		X:           lin(a.X, b.X),
		Y:           lin(a.Y, b.Y),
		UT1MinusUTC: lin(au, b.UT1MinusUTC),
		DPsi:        lin(a.DPsi, b.DPsi),
		DEps:        lin(a.DEps, b.DEps),
	}
}

// UT1MinusUTC interpolates UT1-UTC alone from the table for method m.
//
// Unlike Obtain it uses whatever records of the window exist, even
// without the record of the date, and it neither reads nor writes the
// cache.  ok is false, with a warning, when no record is near the date.
func (s *Store) UT1MinusUTC(jdUTC float64, m Method) (dt float64, ok bool, err error) {
	src := s.src[m.Family()]
	if src == nil {
		s.diag.Warn("no %s EOP table, UT1-UTC 0", m.Family())
		return 0, false, nil
	}
	mjd := timescale.MJD(jdUTC)
	sourceReads.WithLabelValues(src.Family().String()).Inc()
	w, err := src.Window(int(timescale.Midnight(mjd)), window)
	if err != nil {
		return 0, false, err
	}
	if len(w) == 0 {
		s.diag.Warn("UT1-UTC not available for MJD %.2f, using 0", mjd)
		return 0, false, nil
	}
	return interpolate(w, mjd).UT1MinusUTC, true, nil
}
