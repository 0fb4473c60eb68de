package service

import (
	"fmt"

	chill "chill_timer"
	"chill_timer/internal/beverage"
	"chill_timer/internal/catalog"
	"chill_timer/internal/cooling"
	"chill_timer/internal/thermo"
	"chill_timer/internal/timer"

	"github.com/google/uuid"
)

type CoolingService struct {
	catalog *catalog.Catalog
}

func NewCoolingService(cat *catalog.Catalog) *CoolingService {
	return &CoolingService{catalog: cat}
}

// Temperature applies the forward cooling law.
func (s *CoolingService) Temperature(p TemperatureParams) (chill.TemperatureEstimate, error) {
	d, a, initial, err := s.resolve(p.DrinkID, p.AmbienceID, p.InitialC)
	if err != nil {
		return chill.TemperatureEstimate{}, err
	}
	t, err := cooling.TemperatureAfterTime(p.Elapsed, initial, d, a)
	if err != nil {
		return chill.TemperatureEstimate{}, err
	}
	return chill.TemperatureEstimate{
		DrinkID:        d.ID().String(),
		AmbienceID:     a.ID.String(),
		InitialTempC:   p.InitialC,
		AmbientTempC:   a.Temperature.Celsius(),
		ElapsedSeconds: p.Elapsed.Seconds(),
		TemperatureC:   t.Celsius(),
		Temperature:    t.Format(thermo.UnitCelsius, true),
	}, nil
}

// Duration applies the inverse cooling law.
func (s *CoolingService) Duration(p DurationParams) (chill.DurationEstimate, error) {
	d, a, initial, err := s.resolve(p.DrinkID, p.AmbienceID, p.InitialC)
	if err != nil {
		return chill.DurationEstimate{}, err
	}
	target := thermo.Celsius(p.TargetC)
	if !target.Valid() {
		return chill.DurationEstimate{}, fmt.Errorf("%w: target %v °C", ErrInvalidTemperature, p.TargetC)
	}
	left, err := cooling.TimeUntilTemperature(target, initial, d, a)
	if err != nil {
		return chill.DurationEstimate{}, err
	}
	return chill.DurationEstimate{
		DrinkID:      d.ID().String(),
		AmbienceID:   a.ID.String(),
		InitialTempC: p.InitialC,
		AmbientTempC: a.Temperature.Celsius(),
		TargetTempC:  p.TargetC,
		Seconds:      left.Seconds(),
		Duration:     timer.FormatPrecise(left),
	}, nil
}

func (s *CoolingService) resolve(drinkID, ambienceID uuid.UUID, initialC float64) (beverage.Drink, beverage.Ambience, thermo.Temperature, error) {
	d, ok := s.catalog.Drink(drinkID)
	if !ok {
		return beverage.Drink{}, beverage.Ambience{}, thermo.Temperature{}, fmt.Errorf("%w: %s", ErrDrinkNotFound, drinkID)
	}
	a, ok := s.catalog.Ambience(ambienceID)
	if !ok {
		return beverage.Drink{}, beverage.Ambience{}, thermo.Temperature{}, fmt.Errorf("%w: %s", ErrAmbienceNotFound, ambienceID)
	}
	initial := thermo.Celsius(initialC)
	if !initial.Valid() {
		return beverage.Drink{}, beverage.Ambience{}, thermo.Temperature{}, fmt.Errorf("%w: initial %v °C", ErrInvalidTemperature, initialC)
	}
	return d, a, initial, nil
}
