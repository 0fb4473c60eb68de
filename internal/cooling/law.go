// Package cooling implements Newton's law of cooling for drinks and its
// closed-form inverse.
//
//	T(t) = Ta + (Ti - Ta) * exp(-k t)
//	t(T) = -ln((T - Ta) / (Ti - Ta)) / k
package cooling

import (
	"errors"
	"fmt"
	"math"
	"time"

	"chill_timer/internal/beverage"
	"chill_timer/internal/thermo"
)

var (
	// ErrUnreachableTarget is returned when the target temperature cannot be
	// reached by exponential approach to the ambient temperature.
	ErrUnreachableTarget = errors.New("target temperature is unreachable")

	// ErrNegativeElapsed is returned for elapsed times before the start.
	ErrNegativeElapsed = errors.New("elapsed time must not be negative")
)

// maxSeconds is the longest duration representable by time.Duration.
var maxSeconds = time.Duration(math.MaxInt64).Seconds()

// UnreachableError describes why a target cannot be reached.
type UnreachableError struct {
	Target   thermo.Temperature
	Initial  thermo.Temperature
	Ambient  thermo.Temperature
	Gradient float64
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("%v: %s starting at %s in %s ambience (gradient %.4g)",
		ErrUnreachableTarget, e.Target, e.Initial, e.Ambient, e.Gradient)
}

func (e *UnreachableError) Unwrap() error { return ErrUnreachableTarget }

// Curve is the temperature course of one drink starting at Initial in one
// ambience. The cooling coefficient is resolved once by NewCurve.
type Curve struct {
	Initial thermo.Temperature
	Ambient thermo.Temperature
	k       float64
}

// NewCurve resolves the cooling coefficient of d for the medium of a.
func NewCurve(d beverage.Drink, a beverage.Ambience, initial thermo.Temperature) (Curve, error) {
	k, err := d.CoolingCoefficient(a.Medium)
	if err != nil {
		return Curve{}, err
	}
	return Curve{Initial: initial, Ambient: a.Temperature, k: k}, nil
}

// Coefficient returns k in 1/s.
func (c Curve) Coefficient() float64 { return c.k }

// At returns the temperature after elapsed. It extrapolates for negative
// values; callers reject or clamp those.
func (c Curve) At(elapsed time.Duration) thermo.Temperature {
	ta := c.Ambient.Kelvin()
	return thermo.Kelvin(ta + (c.Initial.Kelvin()-ta)*math.Exp(-c.k*elapsed.Seconds()))
}

// TimeUntil returns how long the drink needs to reach target.
func (c Curve) TimeUntil(target thermo.Temperature) (time.Duration, error) {
	if target == c.Initial {
		return 0, nil
	}

	gradient := target.Sub(c.Ambient).Ratio(c.Initial.Sub(c.Ambient))
	// gradient > 1 means the target lies beyond the start, away from ambient
	if math.IsNaN(gradient) || gradient <= 0 || gradient > 1 {
		return 0, c.unreachable(target, gradient)
	}

	seconds := -math.Log(gradient) / c.k
	if math.IsInf(seconds, 0) || seconds >= maxSeconds {
		return 0, c.unreachable(target, gradient)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

func (c Curve) unreachable(target thermo.Temperature, gradient float64) error {
	return &UnreachableError{
		Target:   target,
		Initial:  c.Initial,
		Ambient:  c.Ambient,
		Gradient: gradient,
	}
}

// TemperatureAfterTime returns the temperature of d after spending elapsed
// in a, starting at initial.
func TemperatureAfterTime(elapsed time.Duration, initial thermo.Temperature, d beverage.Drink, a beverage.Ambience) (thermo.Temperature, error) {
	if elapsed < 0 {
		return thermo.Temperature{}, fmt.Errorf("%w: %s", ErrNegativeElapsed, elapsed)
	}
	c, err := NewCurve(d, a, initial)
	if err != nil {
		return thermo.Temperature{}, err
	}
	return c.At(elapsed), nil
}

// TimeUntilTemperature returns how long d, starting at initial, needs in a
// to reach target. It is the inverse of TemperatureAfterTime.
func TimeUntilTemperature(target, initial thermo.Temperature, d beverage.Drink, a beverage.Ambience) (time.Duration, error) {
	c, err := NewCurve(d, a, initial)
	if err != nil {
		return 0, err
	}
	return c.TimeUntil(target)
}
