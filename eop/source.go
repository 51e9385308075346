// Public domain.

package eop

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
)

// Source supplies the records of one table.
type Source interface {
	Family() Family
	// Window returns the records dated mjd-half through mjd+half, in
	// date order.  Days missing from the table are absent from the
	// result.
	Window(mjd, half int) ([]Record, error)
	// Coverage returns the dates of the first and last records.
	// ok is false for an empty table.
	Coverage() (first, last int, ok bool)
}

// Table is a Source held in memory.
type Table struct {
	family Family
	recs   []Record
}

// NewTable returns a table of recs, which are sorted by date.
func NewTable(f Family, recs []Record) *Table {
	r := append([]Record{}, recs...)
	sort.Slice(r, func(i, j int) bool { return r[i].MJD < r[j].MJD })
	return &Table{family: f, recs: r}
}

// ReadTable parses a table file into memory.
func ReadTable(name string, f Family) (*Table, error) {
	fl, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fl.Close()
	recs, err := Parse(fl, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(recs) == 0 {
		return nil, errors.New("no EOP records in " + name)
	}
	return &Table{family: f, recs: recs}, nil
}

func (t *Table) Family() Family { return t.family }

func (t *Table) Window(mjd, half int) ([]Record, error) {
	i := sort.Search(len(t.recs), func(i int) bool { return t.recs[i].MJD >= mjd-half })
	var w []Record
	for ; i < len(t.recs) && t.recs[i].MJD <= mjd+half; i++ {
		w = append(w, t.recs[i])
	}
	return w, nil
}

func (t *Table) Coverage() (first, last int, ok bool) {
	if len(t.recs) == 0 {
		return 0, 0, false
	}
	return t.recs[0].MJD, t.recs[len(t.recs)-1].MJD, true
}

// Records returns the records of the table.
func (t *Table) Records() []Record { return t.recs }

// File is a Source read from disk on demand.
//
// Opening the file indexes the byte offset of each record.  A lookup
// then seeks to the first record of the window and reads only the lines
// of the window.
type File struct {
	family Family
	f      *os.File
	mjd    []int
	off    []int64
}

// OpenFile opens and indexes a table file.
func OpenFile(name string, fam Family) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	tf := &File{family: fam, f: f}
	br := bufio.NewReader(f)
	var off int64
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			r, perr := ParseRecord(line, fam)
			if perr == nil && (len(tf.mjd) == 0 || r.MJD > tf.mjd[len(tf.mjd)-1]) {
				tf.mjd = append(tf.mjd, r.MJD)
				tf.off = append(tf.off, off)
			}
			off += int64(len(line))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	if len(tf.mjd) == 0 {
		f.Close()
		return nil, errors.New("no EOP records in " + name)
	}
	return tf, nil
}

// Close closes the underlying file.
func (t *File) Close() error { return t.f.Close() }

func (t *File) Family() Family { return t.family }

func (t *File) Coverage() (first, last int, ok bool) {
	return t.mjd[0], t.mjd[len(t.mjd)-1], true
}

func (t *File) Window(mjd, half int) ([]Record, error) {
	i := sort.SearchInts(t.mjd, mjd-half)
	j := sort.SearchInts(t.mjd, mjd+half+1)
	if i == j {
		return nil, nil
	}
	if _, err := t.f.Seek(t.off[i], io.SeekStart); err != nil {
		return nil, err
	}
	br := bufio.NewReader(t.f)
	w := make([]Record, 0, j-i)
	for len(w) < j-i {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			r, perr := ParseRecord(line, t.family)
			switch {
			case perr != nil:
			case r.MJD > mjd+half:
				return w, nil
			case len(w) == 0 || r.MJD > w[len(w)-1].MJD:
				w = append(w, r)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return w, nil
}
