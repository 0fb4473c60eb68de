package service

import (
	"time"

	"github.com/google/uuid"
)

// TemperatureParams asks for the temperature of a drink after Elapsed in an ambience.
type TemperatureParams struct {
	DrinkID    uuid.UUID
	AmbienceID uuid.UUID
	InitialC   float64       // °C at the start
	Elapsed    time.Duration // must not be negative
}

// DurationParams asks how long a drink needs to reach TargetC in an ambience.
type DurationParams struct {
	DrinkID    uuid.UUID
	AmbienceID uuid.UUID
	InitialC   float64 // °C at the start
	TargetC    float64 // °C to reach
}
