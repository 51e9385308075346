// Public domain.

package eop

import "math"

// Tolerance is how far in days a request may be from the cached date and
// still be answered from the cache.
const Tolerance = .25

// Cache holds the last parameters obtained by a Store.
//
// A Cache is not safe for concurrent use.  Give each goroutine its own
// or guard the Store with a lock.
type Cache struct {
	valid  bool
	jd     float64
	method Method
	tides  bool
	p      Params
}

// Reset empties the cache.
func (c *Cache) Reset() { *c = Cache{} }

func (c *Cache) lookup(jd float64, m Method, tides bool) (Params, bool) {
	if !c.valid || c.method != m || c.tides != tides ||
		math.Abs(jd-c.jd) >= Tolerance {
		return Params{}, false
	}
	return c.p, true
}

func (c *Cache) store(jd float64, m Method, tides bool, p Params) {
	*c = Cache{valid: true, jd: jd, method: m, tides: tides, p: p}
}
