// Package config reads divider settings from the process environment,
// optionally seeded from a .env file.
//
// Recognised variables:
//
//	DIVIDER_V2_HI     upper bound of the sampled voltage band (V)
//	DIVIDER_V2_LO     lower bound of the sampled voltage band (V), 0 for a 0 V floor
//	DIVIDER_ADC_REF   converter reference (V)
//	DIVIDER_ADC_BITS  converter resolution
//	DIVIDER_LIMIT     number of choices to return
//	DIVIDER_RATING    auto | quarter | half
//	DIVIDER_CATALOG   default catalog file
//	DIVIDER_CACHE     catalog cache size, 0 disables
//
// Unset or unparsable numeric values keep their defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ja7ad/divider/pkg/catalog"
	"github.com/ja7ad/divider/pkg/divider"
)

// DefaultEnvFile is read when no explicit file is given. It may be absent.
const DefaultEnvFile = ".env"

// Settings is the resolved process configuration.
type Settings struct {
	Divider   divider.Config
	Catalog   string
	CacheSize int
}

// Load seeds the environment from envFile (DefaultEnvFile when empty) and
// resolves Settings. Variables already present in the environment win over
// the file. A missing DefaultEnvFile is ignored; a missing explicit file is
// an error.
func Load(envFile string) (Settings, error) {
	explicit := envFile != ""
	if !explicit {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}
	return FromEnv()
}

// FromEnv resolves Settings from the current environment only.
func FromEnv() (Settings, error) {
	d := *divider.DefaultConfig()
	d.V2Hi = getenvFloat("DIVIDER_V2_HI", d.V2Hi)
	d.V2Lo = getenvFloat("DIVIDER_V2_LO", d.V2Lo)
	d.ZeroFloor = d.V2Lo == 0
	d.ADCRef = getenvFloat("DIVIDER_ADC_REF", d.ADCRef)
	d.ADCBits = getenvInt("DIVIDER_ADC_BITS", d.ADCBits)
	d.Limit = getenvInt("DIVIDER_LIMIT", d.Limit)

	rating, err := catalog.ParseRating(getenv("DIVIDER_RATING", "auto"))
	if err != nil {
		return Settings{}, fmt.Errorf("config: DIVIDER_RATING: %w", err)
	}
	d.Rating = rating

	return Settings{
		Divider:   d,
		Catalog:   getenv("DIVIDER_CATALOG", ""),
		CacheSize: getenvInt("DIVIDER_CACHE", 0),
	}, nil
}

// helpers
func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
func getenvFloat(k string, def float64) float64 {
	if v := getenv(k, ""); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
func getenvInt(k string, def int) int {
	if v := getenv(k, ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
