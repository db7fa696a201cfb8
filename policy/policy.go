package policy

import (
	"slices"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
)

type parameter struct {
	def         *Definition
	cpiInflated bool
	values      Series
}

func (p *parameter) metadata() Metadata {
	return Metadata{
		CPIInflated: p.cpiInflated,
		Dim:         p.def.Dim,
		Axis:        p.def.Axis,
	}
}

func (p *parameter) width() int {
	return max(p.def.Dim, 1)
}

// Policy holds every parameter's value for each year of a fixed horizon plus a
// current-year cursor. It is not safe for concurrent use.
type Policy struct {
	logger l.Wrapper
	id     uint64

	startYear int
	numYears  int
	rates     []float64

	names  []string
	params map[string]*parameter

	currentYear int
	current     map[string]Value
}

func New(defs Definitions, opts ...Option) (*Policy, error) {
	o := optionNew(opts...)

	logger := o.logger.WithFields(l.StringField(l.ClsKey, "policyImpl"))

	if err := validateHorizon(o.startYear, o.numYears); err != nil {
		return nil, err
	}

	rates, err := horizonRates(o.startYear, o.numYears, o.inflationRates)
	if err != nil {
		return nil, err
	}

	impl := &Policy{
		logger:    logger,
		id:        snowflake.ID(),
		startYear: o.startYear,
		numYears:  o.numYears,
		rates:     rates,
		names:     defs.Names(),
		params:    make(map[string]*parameter, len(defs)),
	}

	for _, name := range impl.names {
		def := defs[name]

		if err = validateDefinition(name, def, impl.startYear); err != nil {
			return nil, err
		}

		values, e := ExpandArray(def.Values, def.CPIInflated, impl.rates, impl.numYears)
		if e != nil {
			logger.WithFields(l.ErrorField(e), l.StringField("name", name)).Error("expand baseline failed")

			return nil, e
		}

		impl.params[name] = &parameter{
			def:         def.Clone(),
			cpiInflated: def.CPIInflated,
			values:      values,
		}
	}

	if err = impl.SetYear(impl.startYear); err != nil {
		return nil, err
	}

	logger.WithFields(l.StringField("id", cast.ToString(impl.id)), l.IntField("startYear", impl.startYear),
		l.IntField("numYears", impl.numYears), l.IntField("parameters", len(impl.names))).Debug("policy built")

	return impl, nil
}

// NewFromRecords parses records and builds a Policy from them.
func NewFromRecords(recs Records, opts ...Option) (*Policy, error) {
	defs, err := recs.Definitions()
	if err != nil {
		return nil, err
	}

	return New(defs, opts...)
}

func (impl *Policy) ID() uint64 {
	return impl.id
}

func (impl *Policy) StartYear() int {
	return impl.startYear
}

func (impl *Policy) NumYears() int {
	return impl.numYears
}

func (impl *Policy) EndYear() int {
	return impl.startYear + impl.numYears - 1
}

func (impl *Policy) InflationRates() []float64 {
	return slices.Clone(impl.rates)
}

// Names lists the stored parameter names in sorted order.
func (impl *Policy) Names() []string {
	return slices.Clone(impl.names)
}

// lookup accepts both the stored (_II_em) and the canonical (II_em) name.
func (impl *Policy) lookup(name string) (*parameter, string, bool) {
	stored := StoredName(name)

	p, ok := impl.params[stored]

	return p, stored, ok
}

func (impl *Policy) Has(name string) bool {
	_, _, ok := impl.lookup(name)

	return ok
}

// FullSeries returns a copy of every year's value of the parameter.
func (impl *Policy) FullSeries(name string) (Series, error) {
	p, _, ok := impl.lookup(name)
	if !ok {
		return nil, configErrorf("unknown parameter %s", name)
	}

	return p.values.Clone(), nil
}

func (impl *Policy) ParameterMetadata(name string) (Metadata, error) {
	p, _, ok := impl.lookup(name)
	if !ok {
		return Metadata{}, configErrorf("unknown parameter %s", name)
	}

	return p.metadata(), nil
}

func (impl *Policy) Metadata() map[string]Metadata {
	m := make(map[string]Metadata, len(impl.params))
	for name, p := range impl.params {
		m[name] = p.metadata()
	}

	return m
}

// Definition returns the descriptive baseline definition of the parameter.
func (impl *Policy) Definition(name string) (Definition, bool) {
	p, _, ok := impl.lookup(name)
	if !ok {
		return Definition{}, false
	}

	return *p.def.Clone(), true
}

// Clone deep-copies the policy; the copy gets its own id and shares no mutable state.
func (impl *Policy) Clone() *Policy {
	np := &Policy{
		logger:      impl.logger,
		id:          snowflake.ID(),
		startYear:   impl.startYear,
		numYears:    impl.numYears,
		rates:       slices.Clone(impl.rates),
		names:       slices.Clone(impl.names),
		params:      make(map[string]*parameter, len(impl.params)),
		currentYear: impl.currentYear,
	}

	for name, p := range impl.params {
		np.params[name] = &parameter{
			def:         p.def,
			cpiInflated: p.cpiInflated,
			values:      p.values.Clone(),
		}
	}

	np.refreshCurrent()

	impl.logger.WithFields(l.StringField("id", cast.ToString(impl.id)), l.StringField("cloneID", cast.ToString(np.id))).Debug("policy cloned")

	return np
}
