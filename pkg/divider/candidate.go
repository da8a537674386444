package divider

import (
	"github.com/shopspring/decimal"

	"github.com/ja7ad/divider/pkg/types"
	"github.com/ja7ad/divider/pkg/util"
)

// Build computes the full record for a pair that already passed MeetsSpecs.
// It does not re-check the goals.
//
// Power and converter codes are truncated toward zero, so a pair that passed
// the strict power check keeps Pow1MW and Pow2MW below the ceiling. Display
// values are rounded half away from zero at 2 (volts) and 4 (deviance)
// decimal places.
func Build(g Goals, r1, r2 types.Ohms) Candidate {
	f := fraction(r1, r2)
	v1 := g.vin * (1 - f)
	v2 := g.vin * f
	dev := g.v2Hi - v2

	return Candidate{
		Vin:      g.vin,
		V1:       v1,
		V2:       v2,
		Fraction: f,
		Deviance: dev,
		R1:       r1,
		R2:       r2,
		Pow1MW:   util.TruncInt(types.Power(types.Volts(v1), r1)),
		Pow2MW:   util.TruncInt(types.Power(types.Volts(v2), r2)),
		A2D:      g.a2d(v2),
		Display: Display{
			Vin:      round(g.vin, 2),
			V1:       round(v1, 2),
			V2:       round(v2, 2),
			Deviance: round(dev, 4),
		},
	}
}

func round(f float64, places int32) float64 {
	return decimal.NewFromFloat(f).Round(places).InexactFloat64()
}
