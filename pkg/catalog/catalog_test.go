package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ja7ad/divider/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quarterPath = "../../data/resistors_quarter.csv"

func writeCatalog(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_QuarterKit(t *testing.T) {
	set, err := Load(quarterPath)
	require.NoError(t, err)
	assert.Equal(t, 37, set.Len())
	assert.Contains(t, set.Values(), types.Ohms(2000))
	assert.Contains(t, set.Values(), types.Ohms(470))
	assert.NotContains(t, set.Values(), types.Ohms(471))
}

func TestLoad_HalfKit(t *testing.T) {
	set, err := Load("../../data/resistors_half.csv")
	require.NoError(t, err)
	assert.Equal(t, 21, set.Len())
}

func TestLoad_ValuesAscending(t *testing.T) {
	p := writeCatalog(t, "kit.csv", "ohms,qty\n470,1\n10,1\n2000,3\n")
	set, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, []types.Ohms{10, 470, 2000}, set.Values())
}

func TestLoad_DuplicatesCollapse(t *testing.T) {
	p := writeCatalog(t, "dup.csv", "ohms,qty\n470,1\n470,5\n1000,1\n470,2\n")
	set, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
}

func TestLoad_HeaderAlwaysSkipped(t *testing.T) {
	// first row is numeric but still treated as a header
	p := writeCatalog(t, "noheader.csv", "100\n220\n")
	set, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, []types.Ohms{220}, set.Values())
}

func TestLoad_HeaderOnly(t *testing.T) {
	p := writeCatalog(t, "empty.csv", "ohms,qty\n")
	set, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

func TestLoad_SingleColumnAndBlankLines(t *testing.T) {
	p := writeCatalog(t, "single.csv", "ohms\n100\n\n 220\n330,extra,fields\n")
	set, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, []types.Ohms{100, 220, 330}, set.Values())
}

func TestLoad_Malformed(t *testing.T) {
	cases := map[string]string{
		"not_integer": "ohms,qty\n100,1\n4k7,1\n",
		"decimal":     "ohms,qty\n100,1\n4.7,1\n",
		"empty_field": "ohms,qty\n,1\n",
		"zero":        "ohms,qty\n0,1\n",
		"negative":    "ohms,qty\n-47,1\n",
		"bad_quote":   "ohms,qty\n\"100,1\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			p := writeCatalog(t, name+".csv", body)
			set, err := Load(p)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
			assert.Equal(t, 0, set.Len(), "no partial result")
			t.Logf("%s: %v", name, err)
		})
	}
}

func TestLoad_MalformedNamesLine(t *testing.T) {
	p := writeCatalog(t, "line.csv", "ohms,qty\n100,1\n220,1\nabc,1\n")
	_, err := Load(p)
	require.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "line 4")
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadReader(t *testing.T) {
	set, err := LoadReader(strings.NewReader("ohms\n47\n47\n51\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
}

func TestNewSet(t *testing.T) {
	s := NewSet(470, 10, 470, 0, -5, 2000)
	assert.Equal(t, []types.Ohms{10, 470, 2000}, s.Values())

	// Values is a copy
	v := s.Values()
	v[0] = 99
	assert.Equal(t, types.Ohms(10), s.Values()[0])

	assert.Equal(t, 0, NewSet().Len())
}
