// Public domain.

package rfprog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/soniakeys/observation"
	"github.com/soniakeys/refframe/ellipsoid"
	"github.com/soniakeys/refframe/eop"
	"github.com/soniakeys/refframe/observer"
)

// config holds what the config file sets.
type config struct {
	method    eop.Method
	opt       eop.Options
	fast      bool
	helio     bool
	algorithm observer.Algorithm
	model     ellipsoid.Model
	site      string
	tables    [2]string // file names by eop.Family
	feeds     [2]string // prediction urls by eop.Family
}

func defaultConfig() *config {
	return &config{
		method: eop.IAU2000A,
		opt:    eop.Options{Tides: true},
		model:  ellipsoid.WGS84,
	}
}

var keywords = []string{
	"method <name>",
	"tides",
	"notides",
	"predict",
	"fast",
	"ellipsoid <name>",
	"site <obscode>",
	"eop1980 <file>",
	"eop2000 <file>",
	"predict1980 <url>",
	"predict2000 <url>",
	"algorithm <name>",
	"helio",
}

// readConfig parses config file text.  Empty lines and lines starting
// with # are ignored.
func readConfig(r io.Reader) (*config, error) {
	c := defaultConfig()
	lr := bufio.NewReader(r)
	for ln := 1; ; ln++ {
		l, isPre, err := lr.ReadLine()
		switch {
		case err == io.EOF:
			return c, nil
		case err != nil:
			return nil, err
		case isPre:
			return nil, fmt.Errorf("config line %d: unexpected long line", ln)
		case len(l) == 0 || l[0] == '#':
			continue
		}
		if err := c.parseLine(string(l)); err != nil {
			return nil, fmt.Errorf("config line %d: %w", ln, err)
		}
	}
}

func (c *config) parseLine(ls string) error {
	kw, arg, _ := strings.Cut(strings.TrimSpace(ls), " ")
	arg = strings.TrimSpace(arg)
	switch kw {
	case "tides":
		c.opt.Tides = true
		return nil
	case "notides":
		c.opt.Tides = false
		return nil
	case "predict":
		c.opt.Predict = true
		return nil
	case "fast":
		c.fast = true
		return nil
	case "helio":
		c.helio = true
		return nil
	}
	if arg == "" {
		return fmt.Errorf("unrecognized line: %s", ls)
	}
	switch kw {
	case "method":
		m, err := eop.ParseMethod(arg)
		if err != nil {
			return err
		}
		c.method = m
	case "algorithm":
		a, err := observer.ParseAlgorithm(arg)
		if err != nil {
			return err
		}
		c.algorithm = a
	case "ellipsoid":
		m, ok := ellipsoid.ByName(arg)
		if !ok {
			return fmt.Errorf("%w: %s", ellipsoid.ErrInvalid, arg)
		}
		c.model = m
	case "site":
		c.site = arg
	case "eop1980":
		c.tables[eop.Family1980] = arg
	case "eop2000":
		c.tables[eop.Family2000] = arg
	case "predict1980":
		c.feeds[eop.Family1980] = arg
	case "predict2000":
		c.feeds[eop.Family2000] = arg
	default:
		return fmt.Errorf("unrecognized line: %s", ls)
	}
	return nil
}

// errNoTables means no EOP table is configured.
var errNoTables = errors.New("no EOP tables configured")

// sources reads the configured tables.
func (c *config) sources(fixup func(string) string) ([]eop.Source, error) {
	var s []eop.Source
	for f, fn := range c.tables {
		if fn == "" {
			continue
		}
		t, err := eop.ReadTable(fixup(fn), eop.Family(f))
		if err != nil {
			return nil, err
		}
		s = append(s, t)
	}
	if len(s) == 0 {
		return nil, errNoTables
	}
	return s, nil
}

// predictors returns feeds for the configured prediction urls, sharing
// fetched tables through fc.
func (c *config) predictors(fc *eop.FeedCache) []eop.Predictor {
	var p []eop.Predictor
	for f, url := range c.feeds {
		if url == "" {
			continue
		}
		p = append(p, eop.NewFeed("predict"+eop.Family(f).String(), url, eop.Family(f), fc))
	}
	return p
}

// location returns the configured site, nil if none.
func (c *config) location(ocd func() observation.ParallaxMap) (*observer.Location, error) {
	if c.site == "" {
		return nil, nil
	}
	return observer.SiteLocation(ocd(), c.site, c.model)
}
