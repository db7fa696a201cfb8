package policy

import (
	"sort"
	"strings"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
)

// Mods is one year of a reform: new values per parameter, taking effect that year and
// carried forward, plus indexing toggles keyed by parameter name.
type Mods struct {
	Values  map[string]Series `json:"values,omitempty" yaml:"values,omitempty"`
	Indexed map[string]bool   `json:"indexed,omitempty" yaml:"indexed,omitempty"`
}

func NewMods() Mods {
	return Mods{
		Values:  make(map[string]Series),
		Indexed: make(map[string]bool),
	}
}

// Set stores one reform entry. Keys ending in "_cpi" are indexing toggles for the
// parameter named by the rest of the key; other keys take a list of values, one per
// year, each a number or a list of numbers.
func (m *Mods) Set(key string, v any) error {
	if m.Values == nil {
		m.Values = make(map[string]Series)
	}

	if m.Indexed == nil {
		m.Indexed = make(map[string]bool)
	}

	if strings.HasSuffix(key, CPISuffix) {
		b, err := cast.ToBoolE(v)
		if err != nil {
			return configErrorf("%s: %v", key, err)
		}

		m.Indexed[StoredName(strings.TrimSuffix(key, CPISuffix))] = b

		return nil
	}

	var raw []any

	switch vs := v.(type) {
	case Series:
		for _, row := range vs {
			raw = append(raw, row)
		}
	case []float64:
		for _, f := range vs {
			raw = append(raw, f)
		}
	case []int:
		for _, n := range vs {
			raw = append(raw, n)
		}
	default:
		var err error

		raw, err = cast.ToSliceE(v)
		if err != nil {
			return configErrorf("%s: value list expected: %v", key, err)
		}
	}

	rows, _, err := RowsFromRaw(raw)
	if err != nil {
		return err
	}

	m.Values[StoredName(key)] = rows

	return nil
}

// normalized re-keys both maps by stored name. A parameter spelled two ways inside
// one map is rejected since the entries may disagree.
func (m Mods) normalized() (Mods, error) {
	nm := Mods{
		Values:  make(map[string]Series, len(m.Values)),
		Indexed: make(map[string]bool, len(m.Indexed)),
	}

	for name, v := range m.Values {
		stored := StoredName(name)
		if _, dup := nm.Values[stored]; dup {
			return Mods{}, configErrorf("parameter %s given twice in reform values", stored)
		}

		nm.Values[stored] = v
	}

	for name, b := range m.Indexed {
		stored := StoredName(name)
		if _, dup := nm.Indexed[stored]; dup {
			return Mods{}, configErrorf("parameter %s given twice in reform toggles", stored)
		}

		nm.Indexed[stored] = b
	}

	return nm, nil
}

// names lists, by stored name, every parameter touched by the mods, value entries
// and toggle-only ones.
func (m Mods) names() []string {
	set := make(map[string]bool, len(m.Values)+len(m.Indexed))

	for name := range m.Values {
		set[StoredName(name)] = true
	}

	for name := range m.Indexed {
		set[StoredName(name)] = true
	}

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Reform maps a calendar year to the mods starting that year.
type Reform map[int]Mods

// Years lists the reform years in ascending order.
func (r Reform) Years() []int {
	years := make([]int, 0, len(r))
	for year := range r {
		years = append(years, year)
	}

	sort.Ints(years)

	return years
}

type patch struct {
	name        string
	cpiInflated bool
	tail        Series
}

// ImplementReform applies a multi-year reform in ascending year order and leaves the
// cursor at the start year. Each year's patch overwrites the touched parameters from
// that year to the end of the horizon.
//
// The whole reform is validated first; a failure inside the per-year loop leaves the
// years already applied in place.
func (impl *Policy) ImplementReform(reform Reform) (err error) {
	if impl.currentYear != impl.startYear {
		if err = impl.SetYear(impl.startYear); err != nil {
			return
		}
	}

	if len(reform) == 0 {
		return
	}

	years := reform.Years()

	if last := years[len(years)-1]; last > impl.EndYear() {
		err = rangeErrorf("reform provision in year=%d > end_year=%d", last, impl.EndYear())

		return
	}

	if err = impl.ValidateReform(reform); err != nil {
		impl.logger.WithFields(l.ErrorField(err)).Error("reform rejected")

		return
	}

	defer func() {
		_ = impl.SetYear(impl.startYear)
	}()

	for _, year := range years {
		if year != impl.currentYear {
			if err = impl.SetYear(year); err != nil {
				return
			}
		}

		if err = impl.update(Reform{year: reform[year]}); err != nil {
			impl.logger.WithFields(l.ErrorField(err), l.IntField("year", year)).Error("reform year failed")

			return
		}
	}

	return
}

// update applies one YEAR:MODS pair at the cursor year. Nothing is written unless
// every entry of the pair expands cleanly.
func (impl *Policy) update(yearMods Reform) error {
	year, mods, err := impl.validateYearMods(yearMods)
	if err != nil {
		return err
	}

	patches, err := impl.preparePatches(year, mods)
	if err != nil {
		return err
	}

	offset := year - impl.startYear

	for _, pt := range patches {
		p := impl.params[pt.name]

		copy(p.values[offset:], pt.tail)
		p.cpiInflated = pt.cpiInflated

		impl.logger.WithFields(l.StringField("name", pt.name), l.IntField("year", year),
			l.StringField("cpiInflated", cast.ToString(pt.cpiInflated))).Debug("parameter patched")
	}

	impl.refreshCurrent()

	return nil
}

func (impl *Policy) preparePatches(year int, mods Mods) ([]patch, error) {
	numYearsToExpand := (impl.startYear + impl.numYears) - year
	rates := impl.rates[year-impl.startYear:]

	mods, err := mods.normalized()
	if err != nil {
		return nil, err
	}

	names := mods.names()
	patches := make([]patch, 0, len(names))

	for _, name := range names {
		if strings.HasSuffix(name, CPISuffix) {
			continue
		}

		p, stored, ok := impl.lookup(name)
		if !ok {
			return nil, configErrorf("reform names unknown parameter %s", name)
		}

		cpiInflated, toggled := mods.Indexed[name]
		if !toggled {
			cpiInflated = impl.defaultCPI(stored)
		}

		values, ok := mods.Values[name]
		if !ok {
			// toggle only: re-project from the value already in place at this year
			values = Series{p.values[year-impl.startYear]}
		}

		if err := validateRows(stored, values, p.width()); err != nil {
			return nil, err
		}

		tail, err := ExpandArray(values, cpiInflated, rates, numYearsToExpand)
		if err != nil {
			return nil, err
		}

		patches = append(patches, patch{
			name:        stored,
			cpiInflated: cpiInflated,
			tail:        tail,
		})
	}

	return patches, nil
}

func (impl *Policy) defaultCPI(name string) bool {
	p, ok := impl.params[name]
	if !ok {
		return false
	}

	return p.cpiInflated
}
