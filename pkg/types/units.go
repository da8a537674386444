package types

import (
	"fmt"
	"strconv"
)

// Ohms is a resistance value. Catalog values are whole ohms.
type Ohms int

// Humanized returns a resistor-style label with automatic unit (Ω, kΩ, MΩ).
// Trailing zeros are dropped, so 4700 is "4.7 kΩ" and 1000000 is "1 MΩ".
func (o Ohms) Humanized() string {
	v := float64(o)
	switch {
	case o >= 1_000_000:
		return trim(v/1_000_000) + " MΩ"
	case o >= 1_000:
		return trim(v/1_000) + " kΩ"
	default:
		return fmt.Sprintf("%d Ω", int(o))
	}
}

// Volts is a potential difference.
type Volts float64

func (v Volts) String() string { return fmt.Sprintf("%.2f V", float64(v)) }

// MilliWatts is a power figure in mW.
type MilliWatts float64

// Watts returns the value in W.
func (m MilliWatts) Watts() float64 { return float64(m) / 1_000 }

// Humanized prints whole milliwatts below 1 W and watts above.
func (m MilliWatts) Humanized() string {
	if m >= 1_000 {
		return trim(m.Watts()) + " W"
	}
	return fmt.Sprintf("%.0f mW", float64(m))
}

// Power returns the dissipation of a resistor r with v volts across it.
func Power(v Volts, r Ohms) MilliWatts {
	if r <= 0 {
		return 0
	}
	return MilliWatts(float64(v) * float64(v) / float64(r) * 1000)
}

func trim(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
