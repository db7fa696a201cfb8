package policy

import (
	"sort"
	"strings"
)

const (
	// NameMarker prefixes every stored parameter name; the current-value view drops it.
	NameMarker = "_"
	// CPISuffix turns a parameter name into its indexing-toggle key inside a reform.
	CPISuffix = "_cpi"
)

// Axis names the secondary index of a vector parameter.
type Axis int

const (
	AxisNone Axis = iota
	AxisFilingStatus
	AxisDependents
	AxisCustom
)

// Filing-status positions on AxisFilingStatus.
const (
	FilingSingle = iota
	FilingMarriedJoint
	FilingMarriedSeparate
	FilingHeadOfHousehold
	FilingWidow
	FilingSeparate
)

var (
	filingStatusLabels = []string{"single", "joint", "separate", "head of household", "widow", "separate filer"}
	dependentsLabels   = []string{"0 kids", "1 kid", "2 kids", "3+ kids"}
)

func (a Axis) String() string {
	switch a {
	case AxisNone:
		return "none"
	case AxisFilingStatus:
		return "filing_status"
	case AxisDependents:
		return "dependents"
	case AxisCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Len is the fixed vector width of the axis, 0 when the axis does not fix one.
func (a Axis) Len() int {
	switch a {
	case AxisFilingStatus:
		return len(filingStatusLabels)
	case AxisDependents:
		return len(dependentsLabels)
	default:
		return 0
	}
}

func (a Axis) Labels() []string {
	switch a {
	case AxisFilingStatus:
		return append([]string(nil), filingStatusLabels...)
	case AxisDependents:
		return append([]string(nil), dependentsLabels...)
	default:
		return nil
	}
}

// AxisForWidth guesses the axis of a vector parameter from its width.
func AxisForWidth(width int) Axis {
	switch width {
	case 0:
		return AxisNone
	case len(filingStatusLabels):
		return AxisFilingStatus
	case len(dependentsLabels):
		return AxisDependents
	default:
		return AxisCustom
	}
}

// Value is one year of one parameter. Scalars are one-element values.
type Value []float64

func (v Value) Clone() Value {
	return append(Value(nil), v...)
}

// Series is a parameter's values, one per year.
type Series []Value

func (s Series) Clone() Series {
	ns := make(Series, len(s))
	for idx, v := range s {
		ns[idx] = v.Clone()
	}

	return ns
}

// Column returns the idx-th element of every year, the whole series for scalars.
func (s Series) Column(idx int) []float64 {
	col := make([]float64, 0, len(s))

	for _, v := range s {
		if idx < len(v) {
			col = append(col, v[idx])
		}
	}

	return col
}

// Definition is a parsed baseline parameter.
type Definition struct {
	Name        string
	LongName    string
	Description string
	StartYear   int
	RowLabel    []string
	ColLabel    []string
	CPIInflated bool
	// Dim is 0 for scalar parameters, otherwise the vector width.
	Dim    int
	Axis   Axis
	Values Series
}

func (def *Definition) Clone() *Definition {
	nd := *def
	nd.RowLabel = append([]string(nil), def.RowLabel...)
	nd.ColLabel = append([]string(nil), def.ColLabel...)
	nd.Values = def.Values.Clone()

	return &nd
}

type Definitions map[string]*Definition

func (defs Definitions) Names() []string {
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

type Metadata struct {
	CPIInflated bool `json:"cpi_inflated" yaml:"cpi_inflated"`
	Dim         int  `json:"dim" yaml:"dim"`
	Axis        Axis `json:"axis" yaml:"axis"`
}

func (md Metadata) IsVector() bool {
	return md.Dim > 0
}

// CanonicalName strips the stored-name marker: _II_em -> II_em.
func CanonicalName(name string) string {
	return strings.TrimPrefix(name, NameMarker)
}

// StoredName adds the marker back: II_em -> _II_em.
func StoredName(name string) string {
	if strings.HasPrefix(name, NameMarker) {
		return name
	}

	return NameMarker + name
}
