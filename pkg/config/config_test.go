package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ja7ad/divider/pkg/catalog"
	"github.com/ja7ad/divider/pkg/divider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"DIVIDER_V2_HI", "DIVIDER_V2_LO", "DIVIDER_ADC_REF", "DIVIDER_ADC_BITS",
	"DIVIDER_LIMIT", "DIVIDER_RATING", "DIVIDER_CATALOG", "DIVIDER_CACHE",
}

// clearEnv unsets every DIVIDER_* key for the test and restores them after.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, v) })
		} else {
			t.Cleanup(func() { _ = os.Unsetenv(k) })
		}
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	s, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, *divider.DefaultConfig(), s.Divider)
	assert.Empty(t, s.Catalog)
	assert.Equal(t, 0, s.CacheSize)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DIVIDER_V2_HI", "4.5")
	t.Setenv("DIVIDER_V2_LO", "0.5")
	t.Setenv("DIVIDER_ADC_REF", "3.3")
	t.Setenv("DIVIDER_ADC_BITS", "12")
	t.Setenv("DIVIDER_LIMIT", "8")
	t.Setenv("DIVIDER_RATING", "half")
	t.Setenv("DIVIDER_CATALOG", "data/resistors_half.csv")
	t.Setenv("DIVIDER_CACHE", "16")

	s, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, divider.Config{V2Hi: 4.5, V2Lo: 0.5, ADCRef: 3.3, ADCBits: 12, Limit: 8, Rating: catalog.Half}, s.Divider)
	assert.Equal(t, "data/resistors_half.csv", s.Catalog)
	assert.Equal(t, 16, s.CacheSize)
}

func TestFromEnv_BadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("DIVIDER_V2_HI", "lots")
	t.Setenv("DIVIDER_LIMIT", "5.5")

	s, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 4.95, s.Divider.V2Hi)
	assert.Equal(t, 5, s.Divider.Limit)

	t.Setenv("DIVIDER_RATING", "2W")
	_, err = FromEnv()
	require.Error(t, err)
}

func TestFromEnv_ZeroFloor(t *testing.T) {
	clearEnv(t)
	t.Setenv("DIVIDER_V2_LO", "0")

	s, err := FromEnv()
	require.NoError(t, err)
	assert.True(t, s.Divider.ZeroFloor)

	c := divider.NewSolver(&s.Divider).Config()
	assert.Equal(t, 0.0, c.V2Lo)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "divider.env")
	require.NoError(t, os.WriteFile(p, []byte("DIVIDER_V2_HI=4.2\nDIVIDER_RATING=quarter\nDIVIDER_LIMIT=3\n"), 0o644))

	// the environment wins over the file
	t.Setenv("DIVIDER_LIMIT", "7")

	s, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 4.2, s.Divider.V2Hi)
	assert.Equal(t, catalog.Quarter, s.Divider.Rating)
	assert.Equal(t, 7, s.Divider.Limit)
}

func TestLoad_MissingFiles(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	require.Error(t, err, "explicit file must exist")

	t.Chdir(t.TempDir())
	s, err := Load("")
	require.NoError(t, err, "default .env is optional")
	assert.Equal(t, *divider.DefaultConfig(), s.Divider)
}
