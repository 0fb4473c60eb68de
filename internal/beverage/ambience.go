package beverage

import (
	"chill_timer/internal/thermo"

	"github.com/google/uuid"
)

// Ambience is a named environment: a fridge, a freezer, an ice bath, a room,
// or the state a drink should reach. For target states Medium is unused.
type Ambience struct {
	ID          uuid.UUID
	Name        string
	Image       string
	Temperature thermo.Temperature
	Medium      thermo.Medium
}

// NewAmbience returns an ambience with a fresh id. A nil medium means air.
func NewAmbience(name, image string, temperature thermo.Temperature, medium *thermo.Medium) Ambience {
	a := Ambience{
		ID:          uuid.New(),
		Name:        name,
		Image:       image,
		Temperature: temperature,
		Medium:      thermo.MediumAir,
	}
	if medium != nil {
		a.Medium = *medium
	}
	return a
}

// Preset bundles a drink with where it starts, where it is cooled and the
// state it should reach.
type Preset struct {
	ID      uuid.UUID
	Name    string
	Image   string
	Drink   Drink
	Initial Ambience
	Ambient Ambience
	Target  Ambience
}
