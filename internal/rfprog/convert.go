// Public domain.

package rfprog

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/soniakeys/refframe/eop"
	"github.com/soniakeys/refframe/frame"
	"github.com/soniakeys/refframe/internal/timescale"
	"github.com/soniakeys/refframe/observer"
	"github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

// converter converts input lines.  Each worker has its own, as neither
// the EOP cache nor the ephemerides may be shared between goroutines.
type converter struct {
	cfg   *config
	store *eop.Store
	site  *observer.Location
	obs   *observer.Config
}

func newConverter(cfg *config, srcs []eop.Source, fc *eop.FeedCache, site *observer.Location, logger *log.Logger) *converter {
	c := &converter{cfg: cfg, site: site}
	if len(srcs) > 0 {
		c.store = eop.NewStore(nil, &eop.Diagnostics{Logger: logger}, cfg.opt, srcs...)
		for _, p := range cfg.predictors(fc) {
			c.store.SetPredictor(p)
		}
	}
	c.obs = &observer.Config{
		Store:       c.store,
		Method:      cfg.method,
		Algorithm:   cfg.algorithm,
		Ephemerides: observer.NewEphemerides(),
	}
	return c
}

type input struct {
	jd  float64 // UTC
	sys frame.System
	pos frame.Position
}

func parseInput(line string) (in input, err error) {
	f := strings.Fields(line)
	if len(f) != 4 {
		return in, fmt.Errorf("want 4 fields, found %d", len(f))
	}
	if in.jd, err = strconv.ParseFloat(f[0], 64); err != nil {
		t, terr := time.Parse(time.RFC3339, f[0])
		if terr != nil {
			return in, fmt.Errorf("invalid date %q", f[0])
		}
		in.jd = timescale.FromTime(t.UTC())
	}
	if in.sys, err = frame.ParseSystem(f[1]); err != nil {
		return in, err
	}
	lon, err := strconv.ParseFloat(f[2], 64)
	if err != nil {
		return in, fmt.Errorf("invalid longitude %q", f[2])
	}
	lat, err := strconv.ParseFloat(f[3], 64)
	if err != nil {
		return in, fmt.Errorf("invalid latitude %q", f[3])
	}
	in.pos = frame.Position{Lon: unit.AngleFromDeg(lon), Lat: unit.AngleFromDeg(lat)}
	return in, nil
}

// context returns the conversion context at UTC Julian date jd.
func (c *converter) context(jd float64) (*frame.Context, error) {
	var p eop.Params
	if c.store != nil {
		var err error
		if p, err = c.store.Obtain(jd, c.cfg.method); err != nil {
			return nil, err
		}
	}
	ctx := &frame.Context{JDE: timescale.TT(jd), EOP: p}
	if c.site != nil {
		g := c.site.Geodetic()
		ctx = frame.NewContext(jd, g.Lon, g.Lat, p)
	}
	ctx.TrueObliquity = true
	ctx.Fast = c.cfg.fast
	return ctx, nil
}

// convert returns the output line for an input line.  Errors are
// reported in the output line.  Warnings have gone to the log by the time
// the line is done and are not kept.
func (c *converter) convert(line string) string {
	if c.store != nil {
		defer c.store.Diagnostics().Clear()
	}
	in, err := parseInput(line)
	if err != nil {
		return fmt.Sprintf("%s ** %v", line, err)
	}
	if in.sys == frame.Horizontal && c.site == nil {
		return line + " ** horizontal input needs a site"
	}
	ctx, err := c.context(in.jd)
	if err != nil {
		return fmt.Sprintf("%s ** %v", line, err)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%.6f", in.jd)
	for _, to := range []frame.System{frame.Equatorial, frame.Ecliptic,
		frame.Galactic, frame.Horizontal} {
		if to == frame.Horizontal && c.site == nil || to == in.sys {
			continue
		}
		p, err := frame.Transform(in.sys, to, in.pos, ctx)
		if err != nil {
			return fmt.Sprintf("%s ** %v", line, err)
		}
		if to == frame.Equatorial {
			fmt.Fprintf(&b, "  RA %2.*s Dec %2.*s",
				2, sexa.FmtRA(unit.RAFromDeg(p.Lon.Deg())),
				1, sexa.FmtAngle(p.Lat))
			continue
		}
		fmt.Fprintf(&b, "  %.3s %9.5f %9.5f", to, p.Lon.Deg(), p.Lat.Deg())
	}
	if c.cfg.helio && c.site != nil {
		h, err := c.site.HeliocentricPosition(in.jd, c.obs)
		if err != nil {
			return fmt.Sprintf("%s ** %v", line, err)
		}
		fmt.Fprintf(&b, "  helio %12.9f %12.9f %12.9f", h.X, h.Y, h.Z)
	}
	return b.String()
}
