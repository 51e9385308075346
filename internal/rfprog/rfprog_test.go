// Public domain.

package rfprog

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/soniakeys/refframe/ellipsoid"
	"github.com/soniakeys/refframe/eop"
	"github.com/soniakeys/refframe/frame"
	"github.com/soniakeys/refframe/observer"
	"github.com/soniakeys/unit"
)

func TestReadConfig(t *testing.T) {
	c, err := readConfig(strings.NewReader(`# test config
method IAU1980
notides

predict
fast
ellipsoid WGS72
site 703
eop1980 eopc04.62-now
predict2000 http://localhost/finals2000A.all
algorithm approximate
helio
`))
	if err != nil {
		t.Fatal(err)
	}
	want := &config{
		method:    eop.IAU1980,
		opt:       eop.Options{Predict: true},
		fast:      true,
		helio:     true,
		algorithm: observer.Approximate,
		model:     ellipsoid.WGS72,
		site:      "703",
	}
	want.tables[eop.Family1980] = "eopc04.62-now"
	want.feeds[eop.Family2000] = "http://localhost/finals2000A.all"
	if *c != *want {
		t.Fatalf("got %+v\nwant %+v", *c, *want)
	}
	p := c.predictors(eop.NewFeedCache())
	if len(p) != 1 || p[0].Family() != eop.Family2000 || p[0].Name() != "predict2000" {
		t.Fatal(p)
	}
}

func TestReadConfigDefault(t *testing.T) {
	c, err := readConfig(strings.NewReader("\n# nothing\n"))
	if err != nil {
		t.Fatal(err)
	}
	if *c != *defaultConfig() {
		t.Fatal(*c)
	}
	if _, err := c.sources(func(s string) string { return s }); err != errNoTables {
		t.Fatal(err)
	}
	if l, err := c.location(nil); l != nil || err != nil {
		t.Fatal(l, err)
	}
}

func TestReadConfigErrors(t *testing.T) {
	for _, tc := range []struct {
		text string
		want error
	}{
		{"method IAU1999", eop.ErrMethod},
		{"algorithm ELP", observer.ErrUnsupportedAlgorithm},
		{"ellipsoid Clarke1866", ellipsoid.ErrInvalid},
	} {
		if _, err := readConfig(strings.NewReader(tc.text)); !errors.Is(err, tc.want) {
			t.Errorf("%s: %v", tc.text, err)
		}
	}
	for _, text := range []string{"headings", "method", "site", "eop2000\n"} {
		_, err := readConfig(strings.NewReader(text))
		if err == nil || !strings.Contains(err.Error(), "unrecognized") {
			t.Errorf("%q: %v", text, err)
		}
	}
}

func TestParseInput(t *testing.T) {
	in, err := parseInput("2451545.0 gal 0 -10.5")
	if err != nil {
		t.Fatal(err)
	}
	if in.jd != 2451545 || in.sys != frame.Galactic || in.pos.Lon != 0 ||
		math.Abs(in.pos.Lat.Deg()+10.5) > 1e-12 {
		t.Fatal(in)
	}
	in, err = parseInput("2000-01-01T12:00:00Z equatorial 10 20")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(in.jd-2451545) > 1e-9 || in.sys != frame.Equatorial {
		t.Fatal(in)
	}
	for _, bad := range []string{
		"",
		"2451545 gal 0",
		"yesterday gal 0 0",
		"2451545 super 0 0",
		"2451545 gal x 0",
		"2451545 gal 0 y",
	} {
		if _, err := parseInput(bad); err == nil {
			t.Errorf("%q accepted", bad)
		}
	}
}

func TestConvert(t *testing.T) {
	c := newConverter(defaultConfig(), nil, nil, nil, nil)
	out := c.convert("2451545.0 galactic 0 0")
	if strings.Contains(out, "**") {
		t.Fatal(out)
	}
	// galactic center
	for _, s := range []string{"2451545.000000", "45ᵐ37.2", "56′10.2″", "ecl "} {
		if !strings.Contains(out, s) {
			t.Errorf("%q missing from %s", s, out)
		}
	}
	if strings.Contains(out, "gal ") || strings.Contains(out, "hor ") {
		t.Error(out)
	}
	if out := c.convert("2451545.0 horizontal 0 0"); !strings.Contains(out, "needs a site") {
		t.Error(out)
	}
	if out := c.convert("2451545.0 ecliptic 0 91"); !strings.Contains(out, "latitude out of range") {
		t.Error(out)
	}
}

func TestConvertSite(t *testing.T) {
	cfg := defaultConfig()
	cfg.helio = true
	cfg.algorithm = observer.Approximate
	site := observer.New(observer.Earth, cfg.model, unit.AngleFromDeg(-110.8), unit.AngleFromDeg(32.4), 2500)
	c := newConverter(cfg, nil, nil, site, nil)
	out := c.convert("2451545.0 equatorial 100 20")
	if strings.Contains(out, "**") {
		t.Fatal(out)
	}
	for _, s := range []string{"ecl ", "gal ", "hor ", "helio "} {
		if !strings.Contains(out, s) {
			t.Errorf("%q missing from %s", s, out)
		}
	}
	if strings.Contains(out, "RA ") {
		t.Error(out)
	}
}

func TestConvertStore(t *testing.T) {
	var recs []eop.Record
	for mjd := 51540; mjd < 51550; mjd++ {
		recs = append(recs, eop.Record{MJD: mjd, UT1MinusUTC: .3})
	}
	cfg := defaultConfig()
	cfg.method = eop.IAU1980
	cfg.opt.Tides = false
	c := newConverter(cfg, []eop.Source{eop.NewTable(eop.Family1980, recs)}, eop.NewFeedCache(), nil, nil)
	ctx, err := c.context(2451545)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(ctx.EOP.UT1MinusUTC-.3) > 1e-9 {
		t.Fatal(ctx.EOP)
	}
	// mean equator of date, true obliquity
	if ctx.Frame != frame.FK5 || !ctx.TrueObliquity || ctx.JDE == 0 {
		t.Fatal(ctx.Frame, ctx.TrueObliquity, ctx.JDE)
	}
	// outside the table, a warning and zero parameters
	if ctx, err = c.context(2452545); err != nil || ctx.EOP != (eop.Params{}) {
		t.Fatal(ctx.EOP, err)
	}
	if w := c.store.Diagnostics().Warnings(); len(w) != 1 {
		t.Fatal(w)
	}
	// converted lines leave no warnings behind
	if out := c.convert("2452545.3 galactic 0 0"); strings.Contains(out, "**") {
		t.Fatal(out)
	}
	if w := c.store.Diagnostics().Warnings(); len(w) != 0 {
		t.Fatal(w)
	}
}
