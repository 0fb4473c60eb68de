package thermo

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFluidRole is returned when a fluid is used in a role it has
// no physical constants for, e.g. ethanol as the ambient medium.
var ErrUnsupportedFluidRole = errors.New("unsupported fluid role")

// Fluid enumerates every fluid the model knows about.
type Fluid int

const (
	Air Fluid = iota
	Water
	Ethanol
)

func (f Fluid) String() string {
	switch f {
	case Air:
		return "air"
	case Water:
		return "water"
	case Ethanol:
		return "ethanol"
	default:
		return fmt.Sprintf("Fluid(%d)", int(f))
	}
}

// ParseFluid maps a case-sensitive lowercase name to a Fluid.
func ParseFluid(s string) (Fluid, error) {
	switch s {
	case "air":
		return Air, nil
	case "water":
		return Water, nil
	case "ethanol":
		return Ethanol, nil
	}
	return 0, fmt.Errorf("unknown fluid %q", s)
}

// Liquid returns f in its role as part of a drink.
func (f Fluid) Liquid() (Liquid, error) {
	switch f {
	case Water:
		return LiquidWater, nil
	case Ethanol:
		return LiquidEthanol, nil
	}
	return 0, fmt.Errorf("%w: %s is not a drink component", ErrUnsupportedFluidRole, f)
}

// Medium returns f in its role as the fluid a container sits in.
func (f Fluid) Medium() (Medium, error) {
	switch f {
	case Air:
		return MediumAir, nil
	case Water:
		return MediumWater, nil
	}
	return 0, fmt.Errorf("%w: %s cannot surround a container", ErrUnsupportedFluidRole, f)
}

// Liquid is a drink component. Only liquids carry density and heat capacity.
type Liquid int

const (
	LiquidWater Liquid = iota
	LiquidEthanol
)

// Density in kg/m³.
func (l Liquid) Density() float64 {
	switch l {
	case LiquidWater:
		return 1000
	case LiquidEthanol:
		return 789
	}
	panic(fmt.Sprintf("thermo: unknown liquid %d", int(l)))
}

// SpecificHeat in J/(kg·K).
func (l Liquid) SpecificHeat() float64 {
	switch l {
	case LiquidWater:
		return 4182
	case LiquidEthanol:
		return 2460
	}
	panic(fmt.Sprintf("thermo: unknown liquid %d", int(l)))
}

// Fluid returns the general fluid for l.
func (l Liquid) Fluid() Fluid {
	if l == LiquidEthanol {
		return Ethanol
	}
	return Water
}

func (l Liquid) String() string { return l.Fluid().String() }

// Medium is the ambient fluid around a container. The zero value is air.
type Medium int

const (
	MediumAir Medium = iota
	MediumWater

	// MediumCount is the number of supported media.
	MediumCount = 2
)

// Supported reports whether m is one of the defined media.
func (m Medium) Supported() bool {
	return m >= 0 && m < MediumCount
}

// HeatTransferCoefficient is the film coefficient between the medium and a
// container wall, in W/(m²·K).
func (m Medium) HeatTransferCoefficient() float64 {
	switch m {
	case MediumAir:
		return 25
	case MediumWater:
		return 1000
	}
	panic(fmt.Sprintf("thermo: unknown medium %d", int(m)))
}

// Fluid returns the general fluid for m.
func (m Medium) Fluid() Fluid {
	if m == MediumWater {
		return Water
	}
	return Air
}

func (m Medium) String() string {
	if !m.Supported() {
		return fmt.Sprintf("Medium(%d)", int(m))
	}
	return m.Fluid().String()
}

// ParseMedium maps "air" or "water" to a Medium. An empty string is air.
func ParseMedium(s string) (Medium, error) {
	if s == "" {
		return MediumAir, nil
	}
	f, err := ParseFluid(s)
	if err != nil {
		return 0, err
	}
	return f.Medium()
}

// InternalFilmCoefficient is the heat transfer coefficient between the drink
// and the inner container wall, in W/(m²·K). It does not depend on the
// ethanol content.
const InternalFilmCoefficient = 400.0
