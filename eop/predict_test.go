// Public domain.

package eop

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/soniakeys/refframe/internal/timescale"
)

// finalsLine formats a record in finals2000A columns.
func finalsLine(r Record) string {
	b := []byte(strings.Repeat(" ", 130))
	put := func(i int, s string) { copy(b[i:], s) }
	put(0, "000101")
	put(7, fmt.Sprintf("%8.2f", float64(r.MJD)))
	put(16, "I")
	put(18, fmt.Sprintf("%9.6f", r.X))
	put(37, fmt.Sprintf("%9.6f", r.Y))
	put(57, "I")
	put(58, fmt.Sprintf("%10.7f", r.UT1MinusUTC))
	put(97, fmt.Sprintf("%9.3f", r.DPsi*1e3))
	put(116, fmt.Sprintf("%9.3f", r.DEps*1e3))
	return string(b)
}

func TestParseFinals(t *testing.T) {
	var sb strings.Builder
	for d := 60000; d < 60005; d++ {
		sb.WriteString(finalsLine(linRec(60000, float64(d))) + "\n")
	}
	// prediction without polar motion ends the table
	sb.WriteString("000106 60005.00\n")
	sb.WriteString(strings.Repeat(" ", 7) + "60006.00" + strings.Repeat(" ", 80) + "\n")
	recs, err := ParseFinals(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 5 {
		t.Fatal(len(recs), "records")
	}
	want := linRec(60000, 60003)
	r := recs[3]
	if r.MJD != 60003 || !near(r.X, want.X, 1e-6) || !near(r.Y, want.Y, 1e-6) ||
		!near(r.UT1MinusUTC, want.UT1MinusUTC, 1e-7) ||
		!near(r.DPsi, want.DPsi, 1e-6) || !near(r.DEps, want.DEps, 1e-6) {
		t.Fatal(r, want)
	}
}

// feedServer serves days first through first+n-1 of the 1980 family
// test table and counts requests.
func feedServer(t *testing.T, first, n int) (*httptest.Server, *int32) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		for d := first; d < first+n; d++ {
			r := linRec(51530, float64(d))
			fmt.Fprintf(w, "2000 1 1 %d %.6f %.6f %.7f 0 0 %.6f %.6f\n",
				r.MJD, r.X, r.Y, r.UT1MinusUTC, r.DPsi, r.DEps)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestFeedPredict(t *testing.T) {
	srv, hits := feedServer(t, 51550, 20)
	s := NewStore(nil, nil, Options{Predict: true}, linTable(Family1980, 51530, 30))
	fc := NewFeedCache()
	s.SetPredictor(NewFeed("test1980", srv.URL, Family1980, fc))
	ok := testutil.ToFloat64(predictionFetches.WithLabelValues("test1980", "ok"))

	mjd := 51562.25
	p, err := s.Obtain(timescale.JD(mjd), IAU1980)
	if err != nil {
		t.Fatal(err)
	}
	want := linRec(51530, mjd)
	if !p.Predicted || !near(p.X, want.X, 1e-6) || !near(p.UT1MinusUTC, want.UT1MinusUTC, 1e-6) {
		t.Fatal(p, want)
	}
	// another date, past the parameter cache tolerance, uses the feed cache
	if _, err = s.Obtain(timescale.JD(mjd+2), IAU1980); err != nil {
		t.Fatal(err)
	}
	if n := atomic.LoadInt32(hits); n != 1 {
		t.Fatal(n, "fetches")
	}
	if d := testutil.ToFloat64(predictionFetches.WithLabelValues("test1980", "ok")) - ok; d != 1 {
		t.Fatal("fetches counted", d)
	}
	// expired
	now := time.Now()
	fc.now = func() time.Time { return now.Add(FeedTTL) }
	if _, err = s.Obtain(timescale.JD(mjd), IAU1980); err != nil {
		t.Fatal(err)
	}
	if n := atomic.LoadInt32(hits); n != 2 {
		t.Fatal(n, "fetches after TTL")
	}
}

func TestFeedFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()
	f := NewFeed("test404", srv.URL, Family1980, nil)
	if _, err := f.Predict(context.Background(), 51562); err == nil {
		t.Fatal("no error from feed")
	}
	// the store falls back to extrapolating the table
	s := NewStore(nil, nil, Options{Predict: true}, linTable(Family1980, 51530, 30))
	s.SetPredictor(f)
	mjd := 51561.5
	p, err := s.Obtain(timescale.JD(mjd), IAU1980)
	if err != nil {
		t.Fatal(err)
	}
	if want := linRec(51530, mjd); !p.Predicted || !near(p.X, want.X, 1e-12) {
		t.Fatal(p, want)
	}
	if len(s.Diagnostics().Warnings()) != 2 {
		t.Fatal(s.Diagnostics().Warnings())
	}
}

func TestFeedNoPrediction(t *testing.T) {
	srv, _ := feedServer(t, 51550, 5)
	f := NewFeed("short", srv.URL, Family1980, nil)
	// last record has no successor
	if _, err := f.Predict(context.Background(), 51554.5); err == nil {
		t.Fatal("predicted past end of feed")
	}
	if _, err := f.Predict(context.Background(), 51540); err == nil {
		t.Fatal("predicted before feed")
	}
	if _, err := f.Predict(context.Background(), 51552.5); err != nil {
		t.Fatal(err)
	}
}
