package yamlstorage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libparams/baseline"
	"github.com/sgostarter/libparams/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLStorage(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested")

	s := NewYAMLStorage(root, "")

	_, err := s.Load()
	assert.True(t, errors.Is(err, commerr.ErrNotFound))

	recs, err := baseline.Default()
	require.Nil(t, err)

	require.Nil(t, s.Save(recs))

	loaded, err := s.Load()
	require.Nil(t, err)
	assert.Len(t, loaded, len(recs))

	want, err := recs.Definitions()
	require.Nil(t, err)

	got, err := loaded.Definitions()
	require.Nil(t, err)
	assert.Equal(t, want, got)
}

func TestYAMLStorageHandWritten(t *testing.T) {
	root := t.TempDir()

	doc := `
_STD:
  long_name: Standard deduction amount
  cpi_inflated: true
  value:
    - [6100, 12200, 6100, 8950, 12200, 6100]
_CTC_c:
  value: [1000]
`
	require.Nil(t, os.WriteFile(filepath.Join(root, "law.yaml"), []byte(doc), 0600))

	c := baseline.NewCatalog(NewYAMLStorage(root, "law.yaml"), nil)

	p, err := c.Policy(policy.NumYearsOption(2))
	require.Nil(t, err)

	f, err := p.Element("STD", policy.FilingMarriedJoint)
	assert.Nil(t, err)
	assert.EqualValues(t, 12200, f)

	require.Nil(t, p.SetYear(2014))

	f, err = p.Element("STD", policy.FilingMarriedJoint)
	assert.Nil(t, err)
	assert.InDelta(t, 12200*1.015, f, 1e-9)

	f, err = p.Scalar("CTC_c")
	assert.Nil(t, err)
	assert.EqualValues(t, 1000, f)
}
