package timer

import (
	"fmt"
	"time"

	"chill_timer/internal/beverage"
	"chill_timer/internal/cooling"
	"chill_timer/internal/thermo"

	"github.com/google/uuid"
)

// State of a timer.
type State int

const (
	Running State = iota
	Finished
	Cancelled
)

func (s State) String() string {
	switch s {
	case Running:
		return "RUNNING"
	case Finished:
		return "FINISHED"
	case Cancelled:
		return "CANCELLED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Timer tracks a drink cooling down according to a preset. Only the two
// timestamps are stored; everything else is derived by Sample.
type Timer struct {
	ID       uuid.UUID
	Preset   beverage.Preset
	Started  time.Time
	Finishes time.Time

	curve cooling.Curve
}

// Sample is the state of a timer at one instant.
type Sample struct {
	Temperature thermo.Temperature
	TimeLeft    time.Duration
	Finished    bool
	State       State
}

// Start begins a timer at now. It fails if the preset's target cannot be
// reached in its cooling ambience.
func Start(p beverage.Preset, now time.Time) (Timer, error) {
	return Restore(uuid.New(), p, now)
}

// Restore rebuilds a timer that was started at started.
func Restore(id uuid.UUID, p beverage.Preset, started time.Time) (Timer, error) {
	curve, err := cooling.NewCurve(p.Drink, p.Ambient, p.Initial.Temperature)
	if err != nil {
		return Timer{}, fmt.Errorf("timer for preset %q: %w", p.Name, err)
	}
	d, err := curve.TimeUntil(p.Target.Temperature)
	if err != nil {
		return Timer{}, fmt.Errorf("timer for preset %q: %w", p.Name, err)
	}
	return Timer{
		ID:       id,
		Preset:   p,
		Started:  started,
		Finishes: started.Add(d),
		curve:    curve,
	}, nil
}

// Duration is the total cooling time of the timer.
func (t Timer) Duration() time.Duration {
	return t.Finishes.Sub(t.Started)
}

// Sample derives temperature, time left and completion at now. Before the
// start the drink is reported at its initial temperature.
func (t Timer) Sample(now time.Time) Sample {
	elapsed := now.Sub(t.Started)
	if elapsed < 0 {
		elapsed = 0
	}
	left := t.Finishes.Sub(now)
	s := Sample{
		Temperature: t.curve.At(elapsed),
		TimeLeft:    left,
		Finished:    left < 0,
		State:       Running,
	}
	if s.Finished {
		s.State = Finished
	}
	return s
}
