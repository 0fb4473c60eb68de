package catalog

import (
	"fmt"

	"chill_timer/internal/beverage"
	"chill_timer/internal/thermo"
)

type drinkSpec struct {
	slug        string
	name        string
	description string
	image       string
	volumeML    float64
	areaM2      float64
	material    thermo.Material
	shape       beverage.Shape
	alcohol     float64
}

// Surface areas were measured on real bottles and cans.
var drinkSpecs = []drinkSpec{
	{"beer-bottle-500", "Beer", "500ml bottle", "./assets/images/bier5.svg", 500, 0.04064, thermo.Glass, beverage.BeerBottle, 0.05},
	{"beer-bottle-330", "Beer", "330ml bottle", "./assets/images/bier5.svg", 330, 0.03263, thermo.Glass, beverage.BeerBottle, 0.05},
	{"beer-can-500", "Beer", "500ml can", "./assets/images/can5.svg", 500, 0.03768, thermo.Aluminium, beverage.Can, 0.05},
	{"beer-can-330", "Beer", "330ml can", "./assets/images/can33.svg", 330, 0.02706, thermo.Aluminium, beverage.Can, 0.05},
	{"lemonade-1000", "Lemonade", "1l bottle", "./assets/images/coke.svg", 1000, 0.06102, thermo.Plastic, beverage.PetBottle, 0},
	{"red-wine-750", "Red wine", "750ml bottle", "./assets/images/wein_rot.svg", 750, 0.05138, thermo.Glass, beverage.WineBottle, 0.15},
	{"schnapps-700", "Schnapps", "700ml bottle", "./assets/images/vodka.svg", 700, 0.04844, thermo.Glass, beverage.SchnapsBottle, 0.40},
}

type ambienceSpec struct {
	slug   string
	name   string
	image  string
	tempC  float64
	medium *thermo.Medium
}

var ambienceSpecs = map[Kind][]ambienceSpec{
	KindInitial: {
		{"initial-cellar", "Cellar", "./assets/images/ioicon/thermometer-outline.svg", 14, nil},
		{"initial-room", "Room temperature", "./assets/images/ioicon/partly-sunny-outline.svg", 20, nil},
		{"initial-summer", "Hot summer day", "./assets/images/ioicon/sunny-outline.svg", 30, nil},
	},
	KindCooling: {
		{"cooling-freezer", "Freezer", "./assets/images/flake3.svg", -18, medium(thermo.MediumAir)},
		{"cooling-ice-bath", "Ice bath", "./assets/images/flake.svg", 0, medium(thermo.MediumWater)},
		{"cooling-fridge", "Fridge", "./assets/images/ioicon/thermometer-outline.svg", 5, medium(thermo.MediumAir)},
	},
	KindTarget: {
		{"target-schnapps", "Ideal for schnapps", "./assets/images/vodka.svg", 2, nil},
		{"target-lemonade", "Ideal for lemonade", "./assets/images/coke.svg", 4, nil},
		{"target-beer", "Ideal for beer", "./assets/images/bier5.svg", 6, nil},
		{"target-white-wine", "Ideal for white wine", "./assets/images/wein_weiss.svg", 10, nil},
		{"target-red-wine", "Ideal for red wine", "./assets/images/wein_rot.svg", 16, nil},
	},
}

type presetSpec struct {
	slug    string
	name    string
	drink   string
	initial string
	ambient string
	target  string
}

var presetSpecs = []presetSpec{
	{"preset-beer", "Beer", "beer-bottle-500", "initial-room", "cooling-freezer", "target-beer"},
	{"preset-red-wine", "Red wine", "red-wine-750", "initial-room", "cooling-freezer", "target-red-wine"},
	{"preset-white-wine", "White wine", "red-wine-750", "initial-room", "cooling-freezer", "target-white-wine"},
	{"preset-schnapps", "Schnapps", "schnapps-700", "initial-room", "cooling-freezer", "target-schnapps"},
	{"preset-beer-can", "Beer can 500", "beer-can-500", "initial-room", "cooling-freezer", "target-beer"},
}

// Default builds the built-in catalog.
func Default() (*Catalog, error) {
	drinks := make([]beverage.Drink, 0, len(drinkSpecs))
	drinkBySlug := make(map[string]beverage.Drink, len(drinkSpecs))
	for _, s := range drinkSpecs {
		c, err := beverage.NewContainer(thermo.MillilitersToCubicMeters(s.volumeML), s.areaM2, s.material, s.shape)
		if err != nil {
			return nil, fmt.Errorf("drink %s: %w", s.slug, err)
		}
		d, err := beverage.NewDrink(s.name, s.description, s.image, c, s.alcohol)
		if err != nil {
			return nil, fmt.Errorf("drink %s: %w", s.slug, err)
		}
		d = d.WithID(ID(s.slug))
		drinks = append(drinks, d)
		drinkBySlug[s.slug] = d
	}

	ambiences := make(map[Kind][]beverage.Ambience, len(ambienceSpecs))
	ambienceBySlug := make(map[string]beverage.Ambience)
	for kind, specs := range ambienceSpecs {
		for _, s := range specs {
			a := beverage.NewAmbience(s.name, s.image, thermo.Celsius(s.tempC), s.medium)
			a.ID = ID(s.slug)
			ambiences[kind] = append(ambiences[kind], a)
			ambienceBySlug[s.slug] = a
		}
	}

	presets := make([]beverage.Preset, 0, len(presetSpecs))
	for _, s := range presetSpecs {
		d, ok := drinkBySlug[s.drink]
		if !ok {
			return nil, fmt.Errorf("preset %s: unknown drink %s", s.slug, s.drink)
		}
		var parts [3]beverage.Ambience
		for i, slug := range []string{s.initial, s.ambient, s.target} {
			a, ok := ambienceBySlug[slug]
			if !ok {
				return nil, fmt.Errorf("preset %s: unknown ambience %s", s.slug, slug)
			}
			parts[i] = a
		}
		presets = append(presets, beverage.Preset{
			ID:      ID(s.slug),
			Name:    s.name,
			Image:   parts[2].Image,
			Drink:   d,
			Initial: parts[0],
			Ambient: parts[1],
			Target:  parts[2],
		})
	}

	return New(drinks, ambiences, presets)
}
