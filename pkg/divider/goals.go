package divider

import (
	"fmt"
	"math"

	"github.com/ja7ad/divider/pkg/types"
	"github.com/ja7ad/divider/pkg/util"
)

// Goals are the electrical targets of one design run. A Goals value is
// immutable once built by NewGoals.
type Goals struct {
	vin     float64
	v2Hi    float64
	v2Lo    float64
	maxMW   types.MilliWatts
	adcRef  float64
	adcBits int
}

// GoalOption adjusts optional Goals parameters.
type GoalOption func(*Goals)

// WithADC sets the converter reference (volts) and resolution (bits).
// The default is a 10-bit converter with a 5.0 V reference.
func WithADC(ref float64, bits int) GoalOption {
	return func(g *Goals) {
		g.adcRef = ref
		g.adcBits = bits
	}
}

// NewGoals validates and builds design goals.
//
// vin must be positive, 0 <= v2Lo < v2Hi <= ADC reference, and maxMW must not
// be negative. A zero maxMW is accepted: it stands for an unclassified
// wattage rating and makes every pair fail the power checks.
func NewGoals(vin, v2Hi, v2Lo float64, maxMW types.MilliWatts, opts ...GoalOption) (Goals, error) {
	g := Goals{
		vin:     vin,
		v2Hi:    v2Hi,
		v2Lo:    v2Lo,
		maxMW:   maxMW,
		adcRef:  5.0,
		adcBits: 10,
	}
	for _, o := range opts {
		o(&g)
	}

	switch {
	case !finite(vin) || vin <= 0:
		return Goals{}, fmt.Errorf("%w: vin must be > 0, got %g", ErrInvalidGoals, vin)
	case !finite(v2Lo) || v2Lo < 0:
		return Goals{}, fmt.Errorf("%w: v2_lo must be >= 0, got %g", ErrInvalidGoals, v2Lo)
	case !finite(v2Hi) || v2Lo >= v2Hi:
		return Goals{}, fmt.Errorf("%w: v2_lo (%g) must be below v2_hi (%g)", ErrInvalidGoals, v2Lo, v2Hi)
	case !finite(g.adcRef) || g.adcRef <= 0 || g.adcBits <= 0 || g.adcBits > 24:
		return Goals{}, fmt.Errorf("%w: bad converter %g V / %d bits", ErrInvalidGoals, g.adcRef, g.adcBits)
	case v2Hi > g.adcRef:
		return Goals{}, fmt.Errorf("%w: v2_hi (%g) exceeds converter reference (%g)", ErrInvalidGoals, v2Hi, g.adcRef)
	case !finite(float64(maxMW)) || maxMW < 0:
		return Goals{}, fmt.Errorf("%w: max_mw must be >= 0, got %g", ErrInvalidGoals, float64(maxMW))
	}
	return g, nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

func (g Goals) Vin() float64            { return g.vin }
func (g Goals) V2Hi() float64           { return g.v2Hi }
func (g Goals) V2Lo() float64           { return g.v2Lo }
func (g Goals) MaxMW() types.MilliWatts { return g.maxMW }
func (g Goals) ADCRef() float64         { return g.adcRef }
func (g Goals) ADCBits() int            { return g.adcBits }
func (g Goals) Unclassified() bool      { return g.maxMW <= 0 }

func (g Goals) String() string {
	return fmt.Sprintf("vin=%.2fV band=[%.2f, %.2f]V max=%s", g.vin, g.v2Lo, g.v2Hi, g.maxMW.Humanized())
}

// MinR1 is the smallest high-side resistance that can stay under the power
// ceiling anywhere in the band: it drops at least vin-v2Hi volts.
// It is +Inf when the rating is unclassified.
func (g Goals) MinR1() float64 {
	if g.Unclassified() {
		return math.Inf(1)
	}
	v := math.Max(g.vin-g.v2Hi, 0)
	return util.Square(v) * 1000 / float64(g.maxMW)
}

// MinR2 is the smallest low-side resistance that can stay under the power
// ceiling with at least v2Lo volts across it.
func (g Goals) MinR2() float64 {
	if g.Unclassified() {
		return math.Inf(1)
	}
	return util.Square(g.v2Lo) * 1000 / float64(g.maxMW)
}

// a2d converts a sampled voltage to the expected converter code. The code
// saturates at full scale like the converter does.
func (g Goals) a2d(v float64) int {
	full := util.FullScale(g.adcBits)
	return util.Clamp(util.TruncInt(v/g.adcRef*float64(full)), 0, full)
}
