package service

import (
	"time"

	chill "chill_timer"
	"chill_timer/internal/beverage"
	"chill_timer/internal/catalog"
	"chill_timer/internal/thermo"
	"chill_timer/internal/timer"
)

const cubicMetersPerML = 1e-6

func drinkView(d beverage.Drink) chill.DrinkView {
	c := d.Container()
	k := d.CoolingCoefficients()
	return chill.DrinkView{
		ID:                d.ID().String(),
		Name:              d.Name(),
		Description:       d.Description(),
		Image:             d.Image(),
		VolumeML:          c.Volume / cubicMetersPerML,
		SurfaceAreaM2:     c.SurfaceArea,
		Material:          c.Material.String(),
		Shape:             c.Shape.String(),
		AlcoholFraction:   d.AlcoholFraction(),
		FreezingPointC:    d.FreezingPoint().Celsius(),
		HeatCapacityJPerK: d.HeatCapacity(),
		CoolingCoefAir:    k[thermo.MediumAir],
		CoolingCoefWater:  k[thermo.MediumWater],
	}
}

func ambienceView(a beverage.Ambience, kind catalog.Kind) chill.AmbienceView {
	return chill.AmbienceView{
		ID:           a.ID.String(),
		Name:         a.Name,
		Image:        a.Image,
		Kind:         string(kind),
		TemperatureC: a.Temperature.Celsius(),
		Medium:       a.Medium.String(),
	}
}

func presetView(p beverage.Preset, estimate time.Duration) chill.PresetView {
	return chill.PresetView{
		ID:               p.ID.String(),
		Name:             p.Name,
		Image:            p.Image,
		Drink:            drinkView(p.Drink),
		Initial:          ambienceView(p.Initial, catalog.KindInitial),
		Ambient:          ambienceView(p.Ambient, catalog.KindCooling),
		Target:           ambienceView(p.Target, catalog.KindTarget),
		EstimatedSeconds: int(estimate / time.Second),
		Estimated:        timer.FormatCoarse(estimate),
	}
}

func timerView(t timer.Timer, s timer.Sample) chill.TimerView {
	p := t.Preset
	return chill.TimerView{
		ID:               t.ID.String(),
		PresetID:         p.ID.String(),
		PresetName:       p.Name,
		DrinkName:        p.Drink.Name(),
		State:            s.State.String(),
		CurrentTempC:     s.Temperature.Celsius(),
		CurrentTemp:      s.Temperature.Format(thermo.UnitCelsius, true),
		InitialTempC:     p.Initial.Temperature.Celsius(),
		AmbientTempC:     p.Ambient.Temperature.Celsius(),
		TargetTempC:      p.Target.Temperature.Celsius(),
		RemainingSeconds: int(s.TimeLeft / time.Second),
		Remaining:        timer.FormatPrecise(s.TimeLeft),
		Finished:         s.Finished,
		StartedAt:        t.Started.UTC(),
		FinishesAt:       t.Finishes.UTC(),
	}
}
