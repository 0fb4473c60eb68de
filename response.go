package chill_timer

import "time"

// TimerView is the live snapshot of a running timer.
type TimerView struct {
	ID               string    `json:"id"`
	PresetID         string    `json:"preset_id"`
	PresetName       string    `json:"preset_name"`
	DrinkName        string    `json:"drink_name"`
	State            string    `json:"state"`          // RUNNING | FINISHED | CANCELLED
	CurrentTempC     float64   `json:"current_temp_c"` // °C
	CurrentTemp      string    `json:"current_temp"`   // e.g. "6 °C"
	InitialTempC     float64   `json:"initial_temp_c"`
	AmbientTempC     float64   `json:"ambient_temp_c"`
	TargetTempC      float64   `json:"target_temp_c"`
	RemainingSeconds int       `json:"remaining_seconds"` // negative once finished
	Remaining        string    `json:"remaining"`         // e.g. "1:05"
	Finished         bool      `json:"finished"`
	StartedAt        time.Time `json:"started_at"`
	FinishesAt       time.Time `json:"finishes_at"`
}

// AmbienceView describes a place a drink starts in, is cooled in or should reach.
type AmbienceView struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Kind         string  `json:"kind,omitempty"` // initial | cooling | target
	TemperatureC float64 `json:"temperature_c"`
	Medium       string  `json:"medium"` // air | water
}

// DrinkView describes a catalog drink and its derived physics.
type DrinkView struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Image             string  `json:"image"`
	VolumeML          float64 `json:"volume_ml"`
	SurfaceAreaM2     float64 `json:"surface_area_m2"`
	Material          string  `json:"material"`
	Shape             string  `json:"shape"`
	AlcoholFraction   float64 `json:"alcohol_fraction"`
	FreezingPointC    float64 `json:"freezing_point_c"`
	HeatCapacityJPerK float64 `json:"heat_capacity_j_per_k"`
	CoolingCoefAir    float64 `json:"cooling_coefficient_air"`   // 1/s
	CoolingCoefWater  float64 `json:"cooling_coefficient_water"` // 1/s
}

// PresetView is a preset together with its estimated cooling time.
type PresetView struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Image            string       `json:"image"`
	Drink            DrinkView    `json:"drink"`
	Initial          AmbienceView `json:"initial"`
	Ambient          AmbienceView `json:"ambient"`
	Target           AmbienceView `json:"target"`
	EstimatedSeconds int          `json:"estimated_seconds"`
	Estimated        string       `json:"estimated"` // e.g. "1:03"
}

// TemperatureEstimate answers "how warm is the drink after Elapsed".
type TemperatureEstimate struct {
	DrinkID        string  `json:"drink_id"`
	AmbienceID     string  `json:"ambience_id"`
	InitialTempC   float64 `json:"initial_temp_c"`
	AmbientTempC   float64 `json:"ambient_temp_c"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	TemperatureC   float64 `json:"temperature_c"`
	Temperature    string  `json:"temperature"` // e.g. "6 °C"
}

// DurationEstimate answers "how long until the drink reaches the target".
type DurationEstimate struct {
	DrinkID      string  `json:"drink_id"`
	AmbienceID   string  `json:"ambience_id"`
	InitialTempC float64 `json:"initial_temp_c"`
	AmbientTempC float64 `json:"ambient_temp_c"`
	TargetTempC  float64 `json:"target_temp_c"`
	Seconds      float64 `json:"seconds"`
	Duration     string  `json:"duration"` // e.g. "1:05:09"
}
