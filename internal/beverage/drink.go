package beverage

import (
	"fmt"
	"math"

	"chill_timer/internal/thermo"

	"github.com/google/uuid"
)

// Freezing points of the ethanol/water table used for interpolation.
// Source: engineeringtoolbox ethanol-water mixtures.
const (
	freezeTableMaxAlcohol = 0.6
	freezeTableMinC       = -37.0
)

// Drink is a liquid in a container. Everything derived from the composition
// is computed once by NewDrink; a Drink is never mutated afterwards.
type Drink struct {
	id          uuid.UUID
	name        string
	description string
	image       string
	container   Container
	alcohol     float64
	heatCap     float64
	coefficient [thermo.MediumCount]float64
	freezing    thermo.Temperature
}

// NewDrink derives the cooling coefficients of a drink. alcohol is the
// volumetric ethanol fraction in [0, 1].
func NewDrink(name, description, image string, c Container, alcohol float64) (Drink, error) {
	if err := c.Validate(); err != nil {
		return Drink{}, err
	}
	if math.IsNaN(alcohol) || alcohol < 0 || alcohol > 1 {
		return Drink{}, fmt.Errorf("%w: alcohol fraction %v must be within [0, 1]", ErrInvalidComposition, alcohol)
	}

	heatCap := TotalHeatCapacity(c.Volume, alcohol)
	if !positiveFinite(heatCap) {
		return Drink{}, fmt.Errorf("%w: heat capacity %v J/K of %q must be positive", ErrInvalidComposition, heatCap, name)
	}

	d := Drink{
		id:          uuid.New(),
		name:        name,
		description: description,
		image:       image,
		container:   c,
		alcohol:     alcohol,
		heatCap:     heatCap,
		freezing:    FreezingPoint(alcohol),
	}
	for m := thermo.Medium(0); m < thermo.MediumCount; m++ {
		k := OverallHeatTransferCoefficient(m, c.Material) * c.SurfaceArea / heatCap
		if !positiveFinite(k) {
			return Drink{}, fmt.Errorf("%w: cooling coefficient %v 1/s in %s", ErrInvalidComposition, k, m)
		}
		d.coefficient[m] = k
	}
	return d, nil
}

// MixtureHeatCapacity returns the specific heat in J/(kg·K) of a water/ethanol
// mixture with the given volumetric ethanol fraction, weighted by mass.
func MixtureHeatCapacity(alcohol float64) float64 {
	waterMass, ethanolMass := componentMasses(1, alcohol)
	total := waterMass + ethanolMass
	return thermo.LiquidWater.SpecificHeat()*(waterMass/total) +
		thermo.LiquidEthanol.SpecificHeat()*(ethanolMass/total)
}

// TotalHeatCapacity returns the heat capacity in J/K of volume m³ of mixture.
func TotalHeatCapacity(volume, alcohol float64) float64 {
	waterMass, ethanolMass := componentMasses(volume, alcohol)
	return (waterMass + ethanolMass) * MixtureHeatCapacity(alcohol)
}

func componentMasses(volume, alcohol float64) (water, ethanol float64) {
	water = thermo.LiquidWater.Density() * volume * (1 - alcohol)
	ethanol = thermo.LiquidEthanol.Density() * volume * alcohol
	return water, ethanol
}

// OverallHeatTransferCoefficient combines the medium film, the container wall
// and the internal film as resistances in series, in W/(m²·K).
func OverallHeatTransferCoefficient(m thermo.Medium, wall thermo.Material) float64 {
	return 1 / (1/m.HeatTransferCoefficient() +
		1/wall.HeatTransferCoefficient() +
		1/thermo.InternalFilmCoefficient)
}

// FreezingPoint interpolates linearly between 0 °C for water and -37 °C at
// 60 % ethanol. Fractions above 0.6 are extrapolated.
func FreezingPoint(alcohol float64) thermo.Temperature {
	return thermo.Celsius(thermo.Interpolate(alcohol, 0, freezeTableMaxAlcohol, 0, freezeTableMinC))
}

// WithID returns a copy of d carrying the given id.
func (d Drink) WithID(id uuid.UUID) Drink {
	d.id = id
	return d
}

func (d Drink) ID() uuid.UUID { return d.id }
func (d Drink) Name() string { return d.name }
func (d Drink) Description() string { return d.description }
func (d Drink) Image() string { return d.image }
func (d Drink) Container() Container { return d.container }
func (d Drink) AlcoholFraction() float64 { return d.alcohol }

// HeatCapacity is the total heat capacity of the drink in J/K.
func (d Drink) HeatCapacity() float64 { return d.heatCap }

// FreezingPoint of the drink's mixture.
func (d Drink) FreezingPoint() thermo.Temperature { return d.freezing }

// CoolingCoefficient returns k in 1/s for the drink sitting in medium m.
func (d Drink) CoolingCoefficient(m thermo.Medium) (float64, error) {
	if !m.Supported() {
		return 0, fmt.Errorf("%w: no cooling coefficient for %s", thermo.ErrUnsupportedFluidRole, m)
	}
	return d.coefficient[m], nil
}

// CoolingCoefficients returns k for air (index 0) and water bath (index 1).
func (d Drink) CoolingCoefficients() [thermo.MediumCount]float64 {
	return d.coefficient
}
