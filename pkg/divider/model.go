package divider

import (
	"github.com/ja7ad/divider/pkg/catalog"
	"github.com/ja7ad/divider/pkg/types"
)

// Config holds the process-wide design constants.
// Units:
//   - V2Hi/V2Lo: Volts, the acceptable band at the sampled node
//   - ADCRef: Volts, digitizer full-scale reference
//   - ADCBits: digitizer resolution
//   - Limit: number of candidates Compute returns
//   - Rating: wattage class; Unknown means derive it from the catalog source name
//   - ZeroFloor: lower the band floor to 0 V; a zero V2Lo alone keeps the default
type Config struct {
	V2Hi      float64
	V2Lo      float64
	ADCRef    float64
	ADCBits   int
	Limit     int
	Rating    catalog.Rating
	ZeroFloor bool
}

// DefaultConfig returns a Config pre-filled with the bench defaults:
// a 10-bit, 5 V converter sampled between 1.00 V and 4.95 V.
func DefaultConfig() *Config {
	return &Config{
		V2Hi:    4.95, // a2d = 1012
		V2Lo:    1.00, // a2d = 204
		ADCRef:  5.0,
		ADCBits: 10,
		Limit:   5,
		Rating:  catalog.Unknown,
	}
}

// merge overlays cfg on the defaults.
// Notes:
//   - V2Hi/V2Lo/ADCRef/ADCBits/Limit must be > 0 to override defaults.
//   - ZeroFloor forces V2Lo to 0 and wins over V2Lo.
//   - Rating is taken verbatim.
func merge(cfg *Config) *Config {
	base := DefaultConfig()
	if cfg == nil {
		return base
	}

	merged := *base
	if cfg.V2Hi > 0 {
		merged.V2Hi = cfg.V2Hi
	}
	if cfg.V2Lo > 0 {
		merged.V2Lo = cfg.V2Lo
	}
	if cfg.ZeroFloor {
		merged.V2Lo = 0
		merged.ZeroFloor = true
	}
	if cfg.ADCRef > 0 {
		merged.ADCRef = cfg.ADCRef
	}
	if cfg.ADCBits > 0 {
		merged.ADCBits = cfg.ADCBits
	}
	if cfg.Limit > 0 {
		merged.Limit = cfg.Limit
	}
	merged.Rating = cfg.Rating

	return &merged
}

// Candidate is one qualifying resistor pair and its derived quantities.
//
// Vin, V1, V2, Fraction and Deviance keep full precision and are the values
// used for ordering. Display holds the rounded copies meant for people.
type Candidate struct {
	Vin      float64
	V1       float64 // across R1, the high side
	V2       float64 // across R2, the sampled node
	Fraction float64 // R2/(R1+R2)
	Deviance float64 // V2Hi - V2
	R1       types.Ohms
	R2       types.Ohms
	Pow1MW   int // dissipation in R1, rounded mW
	Pow2MW   int // dissipation in R2, rounded mW
	A2D      int // expected converter code for V2
	Display  Display
}

// Display is the rounded view of a Candidate: volts to 2 places,
// deviance to 4.
type Display struct {
	Vin      float64
	V1       float64
	V2       float64
	Deviance float64
}

// Status says why a Report holds the choices it holds.
type Status int

const (
	StatusOK           Status = iota // at least one choice
	StatusNoSolution                 // nothing in the catalog meets the goals
	StatusUnclassified               // rating unknown, so every power check failed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoSolution:
		return "no solution"
	case StatusUnclassified:
		return "unclassified rating"
	default:
		return "unknown"
	}
}

// Report is the outcome of one Compute run.
type Report struct {
	Source  string
	Rating  catalog.Rating
	Goals   Goals
	Catalog int // distinct values loaded
	Pairs   int // ordered pairs examined
	Choices []Candidate
	All     []Candidate
	Status  Status
}

// Best returns the first choice, if any.
func (r *Report) Best() (Candidate, bool) {
	if r == nil || len(r.Choices) == 0 {
		return Candidate{}, false
	}
	return r.Choices[0], true
}
