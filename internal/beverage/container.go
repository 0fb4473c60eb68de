package beverage

import (
	"errors"
	"fmt"
	"math"

	"chill_timer/internal/thermo"
)

// ErrInvalidComposition is returned when a container or drink is described by
// non-finite or non-positive physical quantities.
var ErrInvalidComposition = errors.New("invalid composition")

// Shape classifies a container for display. It has no physical effect.
type Shape int

const (
	BeerBottle Shape = iota
	WineBottle
	Can
	PetBottle
	SchnapsBottle
)

var shapeNames = map[Shape]string{
	BeerBottle:    "beer_bottle",
	WineBottle:    "wine_bottle",
	Can:           "can",
	PetBottle:     "pet_bottle",
	SchnapsBottle: "schnaps_bottle",
}

func (s Shape) String() string {
	if n, ok := shapeNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Container holds the geometry and wall material of a drink's vessel.
// Volume and surface area are supplied independently, not derived from Shape.
type Container struct {
	Volume      float64 // m³
	SurfaceArea float64 // m²
	Material    thermo.Material
	Shape       Shape
}

// NewContainer validates the geometry and returns a container.
func NewContainer(volume, surfaceArea float64, material thermo.Material, shape Shape) (Container, error) {
	c := Container{
		Volume:      volume,
		SurfaceArea: surfaceArea,
		Material:    material,
		Shape:       shape,
	}
	if err := c.Validate(); err != nil {
		return Container{}, err
	}
	return c, nil
}

// Validate checks that volume and surface area are finite and positive.
func (c Container) Validate() error {
	if !positiveFinite(c.Volume) {
		return fmt.Errorf("%w: container volume %v m³ must be positive", ErrInvalidComposition, c.Volume)
	}
	if !positiveFinite(c.SurfaceArea) {
		return fmt.Errorf("%w: container surface area %v m² must be positive", ErrInvalidComposition, c.SurfaceArea)
	}
	return nil
}

// HeatTransferCoefficient of the container wall in W/(m²·K).
func (c Container) HeatTransferCoefficient() float64 {
	return c.Material.HeatTransferCoefficient()
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
