package thermo

import (
	"fmt"
	"math"
)

// ZeroCelsiusInKelvin is the offset between the Celsius and Kelvin scales.
const ZeroCelsiusInKelvin = 273.15

// Unit selects a temperature scale.
type Unit int

const (
	UnitKelvin Unit = iota
	UnitCelsius
)

// String returns the unit symbol.
func (u Unit) String() string {
	switch u {
	case UnitKelvin:
		return "K"
	case UnitCelsius:
		return "°C"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Temperature is an absolute temperature stored in Kelvin.
// The zero value is absolute zero.
type Temperature struct {
	kelvin float64
}

// Kelvin builds a temperature from a Kelvin reading.
func Kelvin(v float64) Temperature {
	return Temperature{kelvin: v}
}

// Celsius builds a temperature from a Celsius reading.
func Celsius(v float64) Temperature {
	return Temperature{kelvin: v + ZeroCelsiusInKelvin}
}

// New builds a temperature from a reading in the given unit.
func New(v float64, unit Unit) Temperature {
	if unit == UnitCelsius {
		return Celsius(v)
	}
	return Kelvin(v)
}

// Kelvin returns the reading in Kelvin.
func (t Temperature) Kelvin() float64 { return t.kelvin }

// Celsius returns the reading in degrees Celsius.
func (t Temperature) Celsius() float64 { return t.kelvin - ZeroCelsiusInKelvin }

// In returns the reading in the given unit.
func (t Temperature) In(unit Unit) float64 {
	if unit == UnitCelsius {
		return t.Celsius()
	}
	return t.Kelvin()
}

// Add returns t + o on the Kelvin scale.
func (t Temperature) Add(o Temperature) Temperature { return Temperature{kelvin: t.kelvin + o.kelvin} }

// Sub returns t - o on the Kelvin scale. The result is a difference and is
// usually not a valid absolute temperature.
func (t Temperature) Sub(o Temperature) Temperature { return Temperature{kelvin: t.kelvin - o.kelvin} }

// Ratio returns the dimensionless quotient t / o.
func (t Temperature) Ratio(o Temperature) float64 { return t.kelvin / o.kelvin }

// Valid reports whether t is a finite temperature at or above absolute zero.
func (t Temperature) Valid() bool {
	return !math.IsNaN(t.kelvin) && !math.IsInf(t.kelvin, 0) && t.kelvin >= 0
}

// Format renders the reading rounded to whole degrees, e.g. "6 °C".
func (t Temperature) Format(unit Unit, withUnit bool) string {
	s := fmt.Sprintf("%.0f", t.In(unit))
	if s == "-0" {
		s = "0"
	}
	if withUnit {
		return s + " " + unit.String()
	}
	return s
}

// String implements fmt.Stringer using Celsius.
func (t Temperature) String() string {
	return t.Format(UnitCelsius, true)
}
