package policy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowsFromRaw(t *testing.T) {
	rows, dim, err := RowsFromRaw([]any{1, 2.5, "3"})
	assert.Nil(t, err)
	assert.EqualValues(t, 0, dim)
	assert.Equal(t, Series{{1}, {2.5}, {3}}, rows)

	rows, dim, err = RowsFromRaw([]any{[]any{1, 2}, []float64{3, 4}, Value{5, 6}})
	assert.Nil(t, err)
	assert.EqualValues(t, 2, dim)
	assert.Equal(t, Series{{1, 2}, {3, 4}, {5, 6}}, rows)

	_, _, err = RowsFromRaw(nil)
	assert.True(t, errors.Is(err, ErrConfig))

	_, _, err = RowsFromRaw([]any{1, []any{2}})
	assert.True(t, errors.Is(err, ErrShape))

	_, _, err = RowsFromRaw([]any{[]any{1, 2}, []any{3}})
	assert.True(t, errors.Is(err, ErrShape))

	_, _, err = RowsFromRaw([]any{[]any{}})
	assert.True(t, errors.Is(err, ErrShape))

	_, _, err = RowsFromRaw([]any{"x"})
	assert.True(t, errors.Is(err, ErrConfig))

	_, _, err = RowsFromRaw([]any{[]any{1, "y"}})
	assert.True(t, errors.Is(err, ErrConfig))
}

func TestRecordDefinitions(t *testing.T) {
	recs := Records{
		"_STD": {
			LongName:    "Standard deduction amount",
			CPIInflated: true,
			ColLabel:    []string{"single", "joint", "separate", "head of household", "widow", "separate filer"},
			Value:       []any{[]any{6100, 12200, 6100, 8950, 12200, 6100}},
		},
		"_FICA_ss_trt": {StartYear: 2014, Value: []any{0.124}},
	}

	defs, err := recs.Definitions()
	require.Nil(t, err)
	assert.Equal(t, []string{"_FICA_ss_trt", "_STD"}, defs.Names())

	std := defs["_STD"]
	assert.EqualValues(t, 6, std.Dim)
	assert.Equal(t, AxisFilingStatus, std.Axis)
	assert.EqualValues(t, DefaultStartYear, std.StartYear)
	assert.Equal(t, "Standard deduction amount", std.LongName)

	fica := defs["_FICA_ss_trt"]
	assert.EqualValues(t, 0, fica.Dim)
	assert.Equal(t, AxisNone, fica.Axis)
	assert.EqualValues(t, 2014, fica.StartYear)

	_, err = Records{"STD": {Value: []any{1}}}.Definitions()
	assert.True(t, errors.Is(err, ErrConfig))

	_, err = Records{"_BAD": {Value: []any{1, []any{1, 2}}}}.Definitions()
	assert.True(t, errors.Is(err, ErrShape))

	_, err = NewFromRecords(recs)
	assert.True(t, errors.Is(err, ErrConfig))

	_, err = NewFromRecords(recs, StartYearOption(2014), NumYearsOption(2))
	assert.True(t, errors.Is(err, ErrConfig))

	recs["_FICA_ss_trt"].StartYear = 0

	p, err := NewFromRecords(recs)
	require.Nil(t, err)

	hoh, err := p.Element("STD", FilingHeadOfHousehold)
	assert.Nil(t, err)
	assert.EqualValues(t, 8950, hoh)
}

func TestRecordClone(t *testing.T) {
	rec := &Record{RowLabel: []string{"2013"}, Value: []any{[]any{1.0, 2.0}}}

	nr := rec.Clone()
	nr.RowLabel[0] = "x"
	nr.Value[0].([]any)[0] = 9.0

	assert.Equal(t, "2013", rec.RowLabel[0])
	assert.Equal(t, 1.0, rec.Value[0].([]any)[0])
}

func TestAxis(t *testing.T) {
	assert.Equal(t, AxisDependents, AxisForWidth(4))
	assert.Equal(t, AxisCustom, AxisForWidth(3))
	assert.Equal(t, AxisNone, AxisForWidth(0))
	assert.EqualValues(t, 4, AxisDependents.Len())
	assert.EqualValues(t, 0, AxisCustom.Len())
	assert.Equal(t, "filing_status", AxisFilingStatus.String())
	assert.Equal(t, "3+ kids", AxisDependents.Labels()[3])
	assert.Equal(t, "II_em", CanonicalName("_II_em"))
	assert.Equal(t, "_II_em", StoredName("II_em"))
	assert.Equal(t, "_II_em", StoredName("_II_em"))
}
