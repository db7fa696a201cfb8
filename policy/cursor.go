package policy

import (
	"github.com/sgostarter/i/l"
)

func (impl *Policy) CurrentYear() int {
	return impl.currentYear
}

// SetYear moves the cursor and re-derives every parameter's current value.
//
// To step forward one year:
//
//	err := p.SetYear(p.CurrentYear() + 1)
func (impl *Policy) SetYear(year int) error {
	if err := impl.validateYear(year); err != nil {
		return err
	}

	impl.currentYear = year
	impl.refreshCurrent()

	return nil
}

func (impl *Policy) Advance(n int) error {
	return impl.SetYear(impl.currentYear + n)
}

func (impl *Policy) refreshCurrent() {
	idx := impl.currentYear - impl.startYear

	impl.current = make(map[string]Value, len(impl.params))

	for name, p := range impl.params {
		impl.current[CanonicalName(name)] = p.values[idx]
	}

	impl.logger.WithFields(l.IntField("year", impl.currentYear)).Debug("current year set")
}

// Current returns the cursor-year value of a parameter, by canonical or stored name.
func (impl *Policy) Current(name string) (Value, bool) {
	v, ok := impl.current[CanonicalName(name)]
	if !ok {
		return nil, false
	}

	return v.Clone(), true
}

// Scalar returns the cursor-year value of a scalar parameter.
func (impl *Policy) Scalar(name string) (float64, error) {
	p, _, ok := impl.lookup(name)
	if !ok {
		return 0, configErrorf("unknown parameter %s", name)
	}

	if p.def.Dim > 0 {
		return 0, shapeErrorf("parameter %s is a vector of %d", name, p.def.Dim)
	}

	return impl.current[CanonicalName(name)][0], nil
}

// Vector returns the cursor-year row of a vector parameter.
func (impl *Policy) Vector(name string) (Value, error) {
	p, _, ok := impl.lookup(name)
	if !ok {
		return nil, configErrorf("unknown parameter %s", name)
	}

	if p.def.Dim == 0 {
		return nil, shapeErrorf("parameter %s is a scalar", name)
	}

	return impl.current[CanonicalName(name)].Clone(), nil
}

// Element returns one category of a vector parameter at the cursor year, for example
// Element("_STD", FilingMarriedJoint).
func (impl *Policy) Element(name string, idx int) (float64, error) {
	v, err := impl.Vector(name)
	if err != nil {
		return 0, err
	}

	if idx < 0 || idx >= len(v) {
		return 0, rangeErrorf("index %d outside [0,%d) of %s", idx, len(v), name)
	}

	return v[idx], nil
}

// CurrentValues copies the whole current-year view keyed by canonical name.
func (impl *Policy) CurrentValues() map[string]Value {
	m := make(map[string]Value, len(impl.current))
	for name, v := range impl.current {
		m[name] = v.Clone()
	}

	return m
}
