package policy

import (
	"fmt"

	"github.com/spf13/cast"
)

// Record is the external, loosely typed form of a baseline parameter.
type Record struct {
	LongName    string   `json:"long_name,omitempty" yaml:"long_name,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	StartYear   int      `json:"start_year,omitempty" yaml:"start_year,omitempty" validate:"omitempty,gte=1900,lte=2200"`
	RowLabel    []string `json:"row_label,omitempty" yaml:"row_label,omitempty"`
	ColLabel    []string `json:"col_label,omitempty" yaml:"col_label,omitempty"`
	CPIInflated bool     `json:"cpi_inflated" yaml:"cpi_inflated"`
	Value       []any    `json:"value" yaml:"value" validate:"required,min=1"`
}

type Records map[string]*Record

func (rec *Record) Clone() *Record {
	nr := *rec
	nr.RowLabel = append([]string(nil), rec.RowLabel...)
	nr.ColLabel = append([]string(nil), rec.ColLabel...)
	nr.Value = make([]any, len(rec.Value))

	for idx, v := range rec.Value {
		if vs, ok := v.([]any); ok {
			nr.Value[idx] = append([]any(nil), vs...)
		} else {
			nr.Value[idx] = v
		}
	}

	return &nr
}

// FirstYear is the year of the record's first value.
func (rec *Record) FirstYear() int {
	if rec.StartYear == 0 {
		return DefaultStartYear
	}

	return rec.StartYear
}

func (recs Records) Clone() Records {
	nrs := make(Records, len(recs))
	for name, rec := range recs {
		nrs[name] = rec.Clone()
	}

	return nrs
}

// Definitions parses every record. A record without start_year is taken to start in
// DefaultStartYear; New rejects records whose start year is not the horizon start.
func (recs Records) Definitions() (Definitions, error) {
	defs := make(Definitions, len(recs))

	for name, rec := range recs {
		def, err := rec.Definition(name)
		if err != nil {
			return nil, err
		}

		defs[name] = def
	}

	return defs, nil
}

func (rec *Record) Definition(name string) (*Definition, error) {
	if len(name) <= len(NameMarker) || name[:len(NameMarker)] != NameMarker {
		return nil, configErrorf("parameter name %q must start with %q", name, NameMarker)
	}

	rows, dim, err := RowsFromRaw(rec.Value)
	if err != nil {
		return nil, fmt.Errorf("parameter %s: %w", name, err)
	}

	return &Definition{
		Name:        name,
		LongName:    rec.LongName,
		Description: rec.Description,
		StartYear:   rec.FirstYear(),
		RowLabel:    append([]string(nil), rec.RowLabel...),
		ColLabel:    append([]string(nil), rec.ColLabel...),
		CPIInflated: rec.CPIInflated,
		Dim:         dim,
		Axis:        AxisForWidth(dim),
		Values:      rows,
	}, nil
}

// RowsFromRaw converts decoded JSON/YAML values (numbers or lists of numbers) into
// typed rows. dim is 0 when every entry is a scalar.
func RowsFromRaw(raw []any) (rows Series, dim int, err error) {
	if len(raw) == 0 {
		err = configErrorf("no values")

		return
	}

	rows = make(Series, 0, len(raw))

	for idx, item := range raw {
		var row Value

		vector := false

		switch vs := item.(type) {
		case []any:
			vector = true

			row = make(Value, 0, len(vs))

			for _, v := range vs {
				f, e := cast.ToFloat64E(v)
				if e != nil {
					err = configErrorf("value %d: %v", idx, e)

					return
				}

				row = append(row, f)
			}
		case []float64:
			vector = true
			row = append(Value(nil), vs...)
		case Value:
			vector = true
			row = vs.Clone()
		default:
			f, e := cast.ToFloat64E(item)
			if e != nil {
				err = configErrorf("value %d: %v", idx, e)

				return
			}

			row = Value{f}
		}

		if vector && len(row) == 0 {
			err = shapeErrorf("value %d is an empty vector", idx)

			return
		}

		if idx == 0 {
			if vector {
				dim = len(row)
			}
		} else if (dim == 0) == vector || (vector && len(row) != dim) {
			err = shapeErrorf("value %d has width %d, expected %d", idx, len(row), max(dim, 1))

			return
		}

		rows = append(rows, row)
	}

	return
}
