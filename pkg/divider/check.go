package divider

import (
	"github.com/ja7ad/divider/pkg/types"
	"github.com/ja7ad/divider/pkg/util"
)

// fraction is the share of Vin dropped across r2 for two series resistors
// to ground. A zero total yields 0.
func fraction(r1, r2 types.Ohms) float64 {
	return util.SafeDiv(float64(r2), float64(r1)+float64(r2))
}

// MeetsSpecs reports whether the pair (r1 high side, r2 low side) puts the
// sampled voltage inside the inclusive band [V2Lo, V2Hi] while each resistor
// dissipates strictly less than the power ceiling.
//
// Non-positive resistances never qualify.
func MeetsSpecs(g Goals, r1, r2 types.Ohms) bool {
	if r1 <= 0 || r2 <= 0 {
		return false
	}

	v2 := g.vin * fraction(r1, r2)
	if v2 < g.v2Lo || v2 > g.v2Hi {
		return false
	}

	p1 := types.Power(types.Volts(g.vin-v2), r1)
	p2 := types.Power(types.Volts(v2), r2)
	return p1 < g.maxMW && p2 < g.maxMW
}
