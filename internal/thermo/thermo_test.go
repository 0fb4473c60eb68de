package thermo

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemperature_Conversions(t *testing.T) {
	c := Celsius(20)
	assert.InDelta(t, 293.15, c.Kelvin(), 1e-9)
	assert.InDelta(t, 20, c.Celsius(), 1e-9)
	assert.InDelta(t, 20, c.In(UnitCelsius), 1e-9)
	assert.InDelta(t, 293.15, New(20, UnitCelsius).In(UnitKelvin), 1e-9)
	assert.InDelta(t, -273.15, Kelvin(0).Celsius(), 1e-9)
}

func TestTemperature_Arithmetic(t *testing.T) {
	a := Celsius(20)
	b := Celsius(5)

	assert.InDelta(t, 15, a.Sub(b).Kelvin(), 1e-9)
	assert.InDelta(t, a.Kelvin()+b.Kelvin(), a.Add(b).Kelvin(), 1e-9)
	assert.InDelta(t, 2, Kelvin(10).Ratio(Kelvin(5)), 1e-12)

	// differences on either scale are the same
	assert.InDelta(t, a.Sub(b).Kelvin(), a.Celsius()-b.Celsius(), 1e-9)
}

func TestTemperature_Valid(t *testing.T) {
	assert.True(t, Kelvin(0).Valid())
	assert.True(t, Celsius(-18).Valid())
	assert.False(t, Kelvin(-1).Valid(), "below absolute zero is representable but invalid")
	assert.False(t, Kelvin(math.NaN()).Valid())
	assert.False(t, Kelvin(math.Inf(1)).Valid())
}

func TestTemperature_Format(t *testing.T) {
	cases := []struct {
		name     string
		temp     Temperature
		unit     Unit
		withUnit bool
		want     string
	}{
		{"celsius with unit", Celsius(6.4), UnitCelsius, true, "6 °C"},
		{"celsius bare", Celsius(-18), UnitCelsius, false, "-18"},
		{"kelvin with unit", Celsius(6), UnitKelvin, true, "279 K"},
		{"negative zero", Celsius(-0.2), UnitCelsius, true, "0 °C"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.temp.Format(tc.unit, tc.withUnit))
		})
	}
	assert.Equal(t, "20 °C", Celsius(20).String())
}

func TestFluidRoles(t *testing.T) {
	l, err := Water.Liquid()
	require.NoError(t, err)
	assert.Equal(t, LiquidWater, l)

	_, err = Air.Liquid()
	assert.True(t, errors.Is(err, ErrUnsupportedFluidRole))

	m, err := Water.Medium()
	require.NoError(t, err)
	assert.Equal(t, MediumWater, m)

	_, err = Ethanol.Medium()
	assert.True(t, errors.Is(err, ErrUnsupportedFluidRole))
}

func TestParseMedium(t *testing.T) {
	m, err := ParseMedium("")
	require.NoError(t, err)
	assert.Equal(t, MediumAir, m)

	m, err = ParseMedium("water")
	require.NoError(t, err)
	assert.Equal(t, MediumWater, m)

	_, err = ParseMedium("ethanol")
	assert.ErrorIs(t, err, ErrUnsupportedFluidRole)

	_, err = ParseMedium("lava")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFluidRole)
}

func TestPropertyTables(t *testing.T) {
	assert.Equal(t, 1000.0, LiquidWater.Density())
	assert.Equal(t, 789.0, LiquidEthanol.Density())
	assert.Equal(t, 4182.0, LiquidWater.SpecificHeat())
	assert.Equal(t, 2460.0, LiquidEthanol.SpecificHeat())
	assert.Equal(t, 25.0, MediumAir.HeatTransferCoefficient())
	assert.Equal(t, 1000.0, MediumWater.HeatTransferCoefficient())

	for _, m := range []Material{Glass, Aluminium, Plastic} {
		t.Run(m.String(), func(t *testing.T) {
			assert.Greater(t, m.HeatTransferCoefficient(), 0.0)
			assert.InDelta(t, m.ThermalConductivity()/m.WallThickness(), m.HeatTransferCoefficient(), 1e-12)
		})
	}
	assert.InDelta(t, 162000.0, Aluminium.HeatTransferCoefficient(), 1e-6)
}

func TestUnknownVariantPanics(t *testing.T) {
	assert.Panics(t, func() { Liquid(9).Density() })
	assert.Panics(t, func() { Medium(9).HeatTransferCoefficient() })
	assert.Panics(t, func() { Material(9).WallThickness() })
	assert.False(t, Medium(9).Supported())
}

func TestInterpolate(t *testing.T) {
	assert.InDelta(t, 0, Interpolate(0, 0, 0.6, 0, -37), 1e-12)
	assert.InDelta(t, -37, Interpolate(0.6, 0, 0.6, 0, -37), 1e-12)
	assert.InDelta(t, -18.5, Interpolate(0.3, 0, 0.6, 0, -37), 1e-12)
	assert.InDelta(t, -37, InterpolateClamped(0.9, 0, 0.6, 0, -37), 1e-12)
	assert.InDelta(t, 0, InterpolateClamped(-1, 0, 0.6, 0, -37), 1e-12)
	assert.InDelta(t, 0.0005, MillilitersToCubicMeters(500), 1e-15)
}
