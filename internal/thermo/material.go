package thermo

import "fmt"

// Material is the wall material of a container. The zero value is glass.
type Material int

const (
	Glass Material = iota
	Aluminium
	Plastic
)

func (m Material) String() string {
	switch m {
	case Glass:
		return "glass"
	case Aluminium:
		return "aluminium"
	case Plastic:
		return "plastic"
	default:
		return fmt.Sprintf("Material(%d)", int(m))
	}
}

// WallThickness in m.
func (m Material) WallThickness() float64 {
	switch m {
	case Glass:
		return 0.0045
	case Aluminium:
		return 0.001
	case Plastic:
		return 0.001
	}
	panic(fmt.Sprintf("thermo: unknown material %d", int(m)))
}

// ThermalConductivity in W/(m·K).
func (m Material) ThermalConductivity() float64 {
	switch m {
	case Glass:
		return 0.037
	case Aluminium:
		// aluminium alloy 3004, typical for beverage cans
		return 162
	case Plastic:
		return 0.01
	}
	panic(fmt.Sprintf("thermo: unknown material %d", int(m)))
}

// HeatTransferCoefficient of the wall, conductivity over thickness, in W/(m²·K).
func (m Material) HeatTransferCoefficient() float64 {
	return m.ThermalConductivity() / m.WallThickness()
}
