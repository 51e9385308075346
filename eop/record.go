// Public domain.

// Package eop supplies Earth orientation parameters.
//
// Parameters come from date ordered tables of daily records, one table
// per family of reduction methods.  A Store interpolates them to the
// requested date, optionally adds the diurnal and semidiurnal ocean tide
// terms, converts celestial pole offsets to nutation corrections, and
// keeps the last result in an explicit Cache.
//
// Dates not covered by a table give zero corrections and a warning on the
// Store's Diagnostics rather than an error.
package eop

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Family selects the table layout and the meaning of the offset columns.
type Family int

const (
	// Family1980 tables give nutation corrections dPsi, dEps in arc
	// seconds.
	Family1980 Family = iota
	// Family2000 tables give celestial pole offsets dX, dY in
	// milliarc seconds.
	Family2000
)

var familyNames = [...]string{"1980", "2000"}

func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return "Family(" + strconv.Itoa(int(f)) + ")"
	}
	return familyNames[f]
}

// OffsetScale is the factor converting the offset columns of a table of
// the family to arc seconds.
func (f Family) OffsetScale() float64 {
	if f == Family2000 {
		return 1e-3
	}
	return 1
}

// Record is one day of a table.
//
// DPsi and DEps hold dX and dY for Family2000.  All angles are arc
// seconds, whatever the table unit.
type Record struct {
	MJD         int
	X, Y        float64 // polar motion
	UT1MinusUTC float64 // seconds
	DPsi, DEps  float64
}

// ParseRecord parses a space delimited table line:
//
//	year month day MJD x y UT1-UTC x-err y-err dPsi|dX dEps|dY [...]
func ParseRecord(line string, f Family) (r Record, err error) {
	fs := strings.Fields(line)
	if len(fs) < 11 {
		return r, fmt.Errorf("eop: %d fields, need 11", len(fs))
	}
	if r.MJD, err = strconv.Atoi(fs[3]); err != nil {
		// some tables write MJD as a float
		m, ferr := strconv.ParseFloat(fs[3], 64)
		if ferr != nil || m != float64(int(m)) {
			return r, fmt.Errorf("eop: MJD %q", fs[3])
		}
		r.MJD = int(m)
	}
	var v [7]float64
	for i, x := range []int{4, 5, 6, 7, 8, 9, 10} {
		if v[i], err = strconv.ParseFloat(fs[x], 64); err != nil {
			return r, fmt.Errorf("eop: field %d: %w", x+1, err)
		}
	}
	s := f.OffsetScale()
	r.X, r.Y, r.UT1MinusUTC = v[0], v[1], v[2]
	r.DPsi, r.DEps = v[5]*s, v[6]*s
	return r, nil
}

// Parse reads a table.
//
// Lines that do not parse as records, such as headings, are quietly
// ignored, as are records not later than the previous record.
func Parse(rd io.Reader, f Family) ([]Record, error) {
	var recs []Record
	sc := bufio.NewScanner(rd)
	for sc.Scan() {
		r, err := ParseRecord(sc.Text(), f)
		if err != nil {
			continue
		}
		if n := len(recs); n > 0 && r.MJD <= recs[n-1].MJD {
			continue
		}
		recs = append(recs, r)
	}
	return recs, sc.Err()
}
