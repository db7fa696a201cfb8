package baseline

import (
	"errors"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libparams/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type utStorage struct {
	recs  policy.Records
	loads int
}

func (s *utStorage) Load() (policy.Records, error) {
	s.loads++

	if s.recs == nil {
		return nil, commerr.ErrNotFound
	}

	return s.recs.Clone(), nil
}

func (s *utStorage) Save(recs policy.Records) error {
	s.recs = recs.Clone()

	return nil
}

func TestDefault(t *testing.T) {
	recs, err := Default()
	require.Nil(t, err)
	assert.Len(t, recs, 12)

	std := recs["_STD"]
	require.NotNil(t, std)
	assert.True(t, std.CPIInflated)
	assert.Len(t, std.ColLabel, 6)

	recs["_STD"].Value = nil

	again, err := Default()
	require.Nil(t, err)
	assert.Len(t, again["_STD"].Value, 3)

	p, err := policy.NewFromRecords(again)
	require.Nil(t, err)

	v, err := p.Vector("EITC_c")
	assert.Nil(t, err)
	assert.Equal(t, policy.Value{487, 3250, 5372, 6044}, v)

	md, err := p.ParameterMetadata("_EITC_c")
	assert.Nil(t, err)
	assert.Equal(t, policy.AxisDependents, md.Axis)
}

func TestValidate(t *testing.T) {
	ok := policy.Records{"_X": {Value: []any{1.0}}}
	assert.Nil(t, Validate(ok))

	cases := map[string]policy.Records{
		"empty":       {},
		"no marker":   {"X": {Value: []any{1.0}}},
		"marker only": {"_": {Value: []any{1.0}}},
		"cpi suffix":  {"_X_cpi": {Value: []any{true}}},
		"null":        {"_X": nil},
		"no values":   {"_X": {}},
		"old year":    {"_X": {StartYear: 1800, Value: []any{1.0}}},
	}

	for name, recs := range cases {
		err := Validate(recs)
		assert.True(t, errors.Is(err, policy.ErrConfig), name)
		assert.True(t, errors.Is(err, commerr.ErrInvalidArgument), name)
	}

	err := Validate(policy.Records{"_X": {Value: []any{1.0, []any{1.0, 2.0}}}})
	assert.True(t, errors.Is(err, policy.ErrShape))
}

func TestParse(t *testing.T) {
	recs, err := Parse([]byte(`{"_X": {"cpi_inflated": true, "value": [[1, 2], [3, 4]]}}`))
	require.Nil(t, err)
	assert.True(t, recs["_X"].CPIInflated)
	assert.Equal(t, []any{[]any{1.0, 2.0}, []any{3.0, 4.0}}, recs["_X"].Value)

	_, err = Parse([]byte(`{"_X": `))
	assert.True(t, errors.Is(err, policy.ErrConfig))

	_, err = Parse([]byte(`{"_X": {"value": []}}`))
	assert.True(t, errors.Is(err, policy.ErrConfig))
}

func TestCatalogDefaultData(t *testing.T) {
	c := NewCatalog(nil, l.NewConsoleLoggerWrapper())

	recs, err := c.DefaultData(2016)
	require.Nil(t, err)

	assert.Equal(t, []any{4050.0}, recs["_II_em"].Value)
	assert.Equal(t, []string{"2016"}, recs["_II_em"].RowLabel)
	assert.EqualValues(t, 2016, recs["_II_em"].StartYear)
	assert.Equal(t, []any{0.124}, recs["_FICA_ss_trt"].Value)
	assert.Equal(t, []any{-0.025, 0.0}, recs["_ID_Medical_frt_add4aged"].Value)

	std, ok := recs["_STD"].Value[0].([]any)
	require.True(t, ok)
	assert.InDelta(t, 6300*1.022, std[0], 1e-9)
	assert.InDelta(t, 9250*1.022, std[3], 1e-9)

	recs["_II_em"].Value[0] = -1.0

	again, err := c.DefaultData(2016)
	require.Nil(t, err)
	assert.Equal(t, []any{4050.0}, again["_II_em"].Value)

	same, err := c.DefaultData(0)
	require.Nil(t, err)
	assert.Len(t, same["_II_em"].Value, 4)

	_, err = c.DefaultData(2010)
	assert.True(t, errors.Is(err, policy.ErrConfig))
}

func TestCatalogPolicy(t *testing.T) {
	c := NewCatalog(nil, nil)

	p, err := c.Policy()
	require.Nil(t, err)
	assert.EqualValues(t, 2013, p.StartYear())

	require.Nil(t, p.SetYear(2017))

	f, err := p.Scalar("II_em")
	assert.Nil(t, err)
	assert.InDelta(t, 4050*1.020, f, 1e-9)

	q, err := c.Policy(policy.StartYearOption(2016), policy.NumYearsOption(3))
	require.Nil(t, err)

	f, err = q.Scalar("II_em")
	assert.Nil(t, err)
	assert.EqualValues(t, 4050, f)

	require.Nil(t, q.SetYear(2017))

	f, err = q.Scalar("II_em")
	assert.Nil(t, err)
	assert.InDelta(t, 4050*1.020, f, 1e-9)
}

func TestCatalogCachesStorage(t *testing.T) {
	s := &utStorage{}
	c := NewCatalog(s, nil)

	_, err := c.Records()
	assert.True(t, errors.Is(err, commerr.ErrNotFound))

	err = c.Save(policy.Records{"X": {Value: []any{1.0}}})
	assert.True(t, errors.Is(err, policy.ErrConfig))

	require.Nil(t, c.Save(policy.Records{"_X": {Value: []any{1.0, 2.0}}}))

	loads := s.loads

	for i := 0; i < 3; i++ {
		recs, e := c.Records()
		require.Nil(t, e)
		assert.Equal(t, []any{1.0, 2.0}, recs["_X"].Value)
	}

	assert.Equal(t, loads+1, s.loads)

	require.Nil(t, c.Save(policy.Records{"_X": {Value: []any{5.0}}}))

	recs, err := c.Records()
	require.Nil(t, err)
	assert.Equal(t, []any{5.0}, recs["_X"].Value)

	c.Invalidate()

	_, err = c.Records()
	assert.Nil(t, err)
	assert.Equal(t, loads+3, s.loads)
}

func TestEmbeddedStorageIsReadOnly(t *testing.T) {
	s := NewEmbeddedStorage()

	recs, err := s.Load()
	require.Nil(t, err)
	assert.True(t, errors.Is(s.Save(recs), commerr.ErrPermissionDenied))
}

func TestCatalogPolicyHonorsRecordStartYear(t *testing.T) {
	c := NewCatalog(&utStorage{}, nil)

	require.Nil(t, c.Save(policy.Records{
		"_A": {Value: []any{1.0}},
		"_Z": {StartYear: 2015, Value: []any{5000.0}},
	}))

	_, err := c.Policy()
	assert.True(t, errors.Is(err, policy.ErrConfig))

	_, err = c.Policy(policy.StartYearOption(2014), policy.NumYearsOption(2))
	assert.True(t, errors.Is(err, policy.ErrConfig))

	require.Nil(t, c.Save(policy.Records{
		"_A": {Value: []any{1.0}},
		"_Z": {StartYear: 2014, Value: []any{5000.0, 6000.0}},
	}))

	_, err = c.Policy()
	assert.True(t, errors.Is(err, policy.ErrConfig))

	p, err := c.Policy(policy.StartYearOption(2014), policy.NumYearsOption(2))
	require.Nil(t, err)

	z, err := p.FullSeries("Z")
	assert.Nil(t, err)
	assert.Equal(t, policy.Series{{5000}, {6000}}, z)

	a, err := p.FullSeries("A")
	assert.Nil(t, err)
	assert.Equal(t, policy.Series{{1}, {1}}, a)
}
