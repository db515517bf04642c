package util

import (
	"fmt"
	"math"
	"math/cmplx"
)

// FormatValueFactor prints a value with an engineering prefix, e.g.
// "5.000 mA" or "10.000 V".
func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case absValue == 0 || absValue >= 1:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.3f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.3f u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.3f n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.3f p%s", value*1e12, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}

// FormatFrequency prints a frequency scaled to Hz, kHz or MHz.
func FormatFrequency(freq float64) string {
	switch {
	case freq >= 1e6:
		return fmt.Sprintf("%.3f MHz", freq/1e6)
	case freq >= 1e3:
		return fmt.Sprintf("%.3f kHz", freq/1e3)
	default:
		return fmt.Sprintf("%.3f Hz", freq)
	}
}

// FormatPhasor prints a complex quantity as magnitude and phase in
// degrees, the usual presentation for single-frequency AC results.
func FormatPhasor(value complex128, unit string) string {
	mag := cmplx.Abs(value)
	phase := cmplx.Phase(value) * 180.0 / math.Pi

	var magStr string
	if mag >= 1000 || (mag < 0.001 && mag != 0) {
		magStr = fmt.Sprintf("%.3e %s", mag, unit)
	} else {
		magStr = fmt.Sprintf("%.4g %s", mag, unit)
	}
	return fmt.Sprintf("%s < %.1f deg", magStr, phase)
}
