package export

import (
	"fmt"

	"github.com/sgostarter/libparams/policy"
)

// Table is the full series of some parameters laid out one row per year. Vector
// parameters spread over one column per element.
type Table struct {
	Columns []string
	Years   []int
	Cells   [][]float64
}

// NewTable tabulates names, every parameter of p when names is empty.
func NewTable(p *policy.Policy, names ...string) (*Table, error) {
	if len(names) == 0 {
		names = p.Names()
	}

	t := &Table{
		Years: make([]int, p.NumYears()),
		Cells: make([][]float64, p.NumYears()),
	}

	for idx := range t.Years {
		t.Years[idx] = p.StartYear() + idx
	}

	for _, name := range names {
		series, err := p.FullSeries(name)
		if err != nil {
			return nil, err
		}

		def, _ := p.Definition(name)

		t.Columns = append(t.Columns, columnNames(def)...)

		for idx, v := range series {
			t.Cells[idx] = append(t.Cells[idx], v...)
		}
	}

	return t, nil
}

func columnNames(def policy.Definition) []string {
	name := policy.CanonicalName(def.Name)

	if def.Dim == 0 {
		return []string{name}
	}

	labels := def.ColLabel
	if len(labels) != def.Dim {
		labels = def.Axis.Labels()
	}

	cols := make([]string, def.Dim)

	for idx := range cols {
		if idx < len(labels) {
			cols[idx] = fmt.Sprintf("%s[%s]", name, labels[idx])
		} else {
			cols[idx] = fmt.Sprintf("%s[%d]", name, idx)
		}
	}

	return cols
}
