// Public domain.

// Package rfprog is the refframe command.
package rfprog

import (
	"bufio"
	"flag"
	"fmt"
	"go/build"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/soniakeys/exit"
	"github.com/soniakeys/mpcformat"
	"github.com/soniakeys/observation"
	"github.com/soniakeys/refframe/eop"
	"github.com/soniakeys/refframe/frame"
	"github.com/soniakeys/refframe/internal/timescale"
	"github.com/soniakeys/refframe/observer"
)

const parentImport = "github.com/soniakeys/refframe"
const versionString = "refframe version 0.1 Go source."
const copyrightString = "Public domain."

func Main() {
	defer exit.Handler()

	cl := parseCommandLine()
	cfg := readConfigFile(cl)
	srcs, err := cfg.sources(cl.fixupE)
	if err != nil && err != errNoTables {
		exit.Log(err)
	}
	if cl.v {
		printCoverage(srcs)
		os.Exit(0)
	}
	site, err := cfg.location(func() observation.ParallaxMap { return readOcd(cl) })
	if err != nil {
		exit.Log(err)
	}
	fc := eop.NewFeedCache()
	logger := log.New(os.Stderr, "", 0)

	var f *os.File
	if cl.fnIn == "-" {
		f = os.Stdin
	} else {
		if f, err = os.Open(cl.fnIn); err != nil {
			exit.Log(err)
		}
		defer f.Close()
	}

	// lines are converted by workers.  prCh keeps results in input order:
	// each line carries its own result channel, queued for printing as
	// the line is dispatched.
	maxWorkers := runtime.GOMAXPROCS(0)
	prCh := make(chan chan string, maxWorkers*2)
	lineCh := make(chan *lineSeq)
	errCh := make(chan error, 1)

	go func() {
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			rch := make(chan string, 1)
			lineCh <- &lineSeq{sc.Text(), rch}
			prCh <- rch
		}
		if err := sc.Err(); err != nil {
			errCh <- err
		}
		close(prCh)
		close(lineCh)
	}()

	for n := 0; n < maxWorkers; n++ {
		c := newConverter(cfg, srcs, fc, site, logger)
		go func() {
			for l := range lineCh {
				l.rch <- c.convert(l.line)
			}
		}()
	}

	for rch := range prCh {
		fmt.Println(<-rch)
	}
	select {
	case err := <-errCh:
		exit.Log(err)
	default:
	}
}

type lineSeq struct {
	line string
	rch  chan string
}

type commandLine struct {
	dc   string // config file
	de   string // EOP table directory
	do   string // obscode file
	dp   string // default path
	fnIn string // positions
	v    bool   // -v option
}

func parseCommandLine() *commandLine {
	pp, ppErr := build.Import(parentImport, "", build.FindOnly)
	var cl commandLine
	if ppErr == nil {
		cl.dp = pp.Dir
	}
	dh := flag.Bool("h", false, "")
	dv := flag.Bool("v", false, "")
	flag.StringVar(&cl.dc, "c", "", "")
	flag.StringVar(&cl.de, "e", "", "")
	flag.StringVar(&cl.do, "o", "", "")
	flag.StringVar(&cl.dp, "p", cl.dp, "")
	flag.Usage = func() {
		os.Stderr.WriteString(`
Usage: refframe [options] <file>      convert positions in file
       refframe [options] -           convert positions from stdin
       refframe -h                    display help and quick reference
       refframe -v                    display version and EOP coverage

Options:
       -c <config-file>
       -e <eop-table-directory>
       -o <obscode-file>
       -p <path>
`)
		if ppErr == nil {
			os.Stderr.WriteString(`
Default:
       -p=` + pp.Dir + "\n")
		}
	}
	flag.Parse()
	switch {
	case *dh:
		printHelp()
		os.Exit(0)
	case *dv:
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		cl.v = true
	case flag.NArg() != 1:
		flag.Usage()
		os.Exit(1)
	}
	cl.fnIn = flag.Arg(0)
	return &cl
}

func (cl *commandLine) fixupCP(fnSpec, fnDefault string) string {
	if fnSpec > "" {
		return fnSpec
	}
	return filepath.Join(cl.dp, fnDefault)
}

// fixupE places a relative table name in the -e directory, or else the
// -p directory.
func (cl *commandLine) fixupE(fn string) string {
	if filepath.IsAbs(fn) {
		return fn
	}
	if cl.de > "" {
		return filepath.Join(cl.de, fn)
	}
	return filepath.Join(cl.dp, fn)
}

func readConfigFile(cl *commandLine) *config {
	f, err := os.Open(cl.fixupCP(cl.dc, "refframe.config"))
	if err != nil {
		if cl.dc == "" {
			return defaultConfig()
		}
		exit.Log(err)
	}
	defer f.Close()
	cfg, err := readConfig(f)
	if err != nil {
		exit.Log(err)
	}
	return cfg
}

func readOcd(cl *commandLine) observation.ParallaxMap {
	ocdFile := cl.fixupCP(cl.do, "refframe.obscodes")
	ocdMap, readErr := mpcformat.ReadObscodeDatFile(ocdFile)
	if readErr == nil {
		return ocdMap
	}
	// that didn't work.  try getting a fresh copy.
	if err := mpcformat.FetchObscodeDat(ocdFile); err != nil {
		log.Println(readErr) // show error from read attempt,
		exit.Log(err)        // and error from download attempt
	}
	if ocdMap, readErr = mpcformat.ReadObscodeDatFile(ocdFile); readErr != nil {
		exit.Log(readErr)
	}
	return ocdMap
}

func printCoverage(srcs []eop.Source) {
	if len(srcs) == 0 {
		fmt.Println("No EOP tables configured.")
		return
	}
	for _, s := range srcs {
		first, last, ok := s.Coverage()
		if !ok {
			fmt.Printf("EOP %s table empty.\n", s.Family())
			continue
		}
		fmt.Printf("EOP %s table MJD %d to %d, %s to %s.\n", s.Family(), first, last,
			date(first), date(last))
	}
}

func date(mjd int) string {
	return timescale.ToTime(timescale.JD(float64(mjd))).Format("2 Jan 2006")
}

func printHelp() {
	fmt.Println(`
Refframe converts celestial positions between equatorial, ecliptic,
galactic and, with a site configured, horizontal coordinates, applying
Earth orientation parameters from IERS tables.

Input lines:
   <date> <system> <longitude> <latitude>

Date is a UTC Julian date or an RFC 3339 time.  Longitude and latitude
are degrees.  Systems:`)
	for _, s := range []frame.System{frame.Equatorial, frame.Ecliptic,
		frame.Horizontal, frame.Galactic} {
		fmt.Println("  ", s)
	}
	fmt.Println(`
Config file keywords:`)
	for _, k := range keywords {
		fmt.Println("  ", k)
	}
	fmt.Println(`
Reduction methods:`)
	for m := eop.IAU1980; m <= eop.IAU2006; m++ {
		fmt.Println("  ", m)
	}
	fmt.Println(`
Algorithms:`)
	for _, a := range []observer.Algorithm{observer.VSOP87, observer.Approximate} {
		fmt.Println("  ", a)
	}
	fmt.Println(`
For full documentation:
   go doc ` + parentImport)
}
