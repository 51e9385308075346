// Public domain.

package ellipsoid

import (
	"errors"
	"fmt"
)

// Custom is an ellipsoid defined at run time for a body.
// It is created by Registry.Set and owns its parameters.
type Custom struct {
	body string
	p    Params
}

func (c *Custom) Name() string   { return "custom " + c.body }
func (c *Custom) Params() Params { return c.p }
func (*Custom) model()           {}

// Body returns the body the ellipsoid was set for.
func (c *Custom) Body() string { return c.body }

// ErrAlreadySet is returned by Registry.Set for a body that already has a
// custom ellipsoid.
var ErrAlreadySet = errors.New("custom ellipsoid already set")

// Registry holds custom ellipsoids, at most one per body.
// The zero value is not usable, use NewRegistry.
type Registry struct {
	custom map[string]*Custom
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{custom: map[string]*Custom{}}
}

// Set defines the custom ellipsoid for body from its equatorial and polar
// radii in km.  It can be called once per body.
func (r *Registry) Set(body string, equatorial, polar float64) (*Custom, error) {
	if _, ok := r.custom[body]; ok {
		return nil, fmt.Errorf("%s: %w", body, ErrAlreadySet)
	}
	p, err := paramsFromRadii(equatorial, polar)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", body, err)
	}
	c := &Custom{body: body, p: p}
	r.custom[body] = c
	return c, nil
}

// Custom returns the custom ellipsoid for body, if set.
func (r *Registry) Custom(body string) (*Custom, bool) {
	c, ok := r.custom[body]
	return c, ok
}

// Lookup resolves a preset name, or a body with a custom ellipsoid.
// Presets take precedence.
func (r *Registry) Lookup(name string) (Model, bool) {
	if e, ok := ByName(name); ok {
		return e, true
	}
	if c, ok := r.custom[name]; ok {
		return c, true
	}
	return nil, false
}
