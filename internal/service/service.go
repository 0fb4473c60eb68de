package service

import (
	"context"
	"time"

	chill "chill_timer"
	"chill_timer/internal/catalog"
	"chill_timer/internal/logger"
	"chill_timer/internal/repository"

	"github.com/google/uuid"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Catalog exposes the built-in drinks, ambiences and presets.
type Catalog interface {
	Presets() []chill.PresetView
	Preset(id uuid.UUID) (chill.PresetView, error)
	Drinks() []chill.DrinkView
	Ambiences() []chill.AmbienceView
}

// Cooling answers the forward and inverse cooling questions for ad hoc inputs.
type Cooling interface {
	Temperature(p TemperatureParams) (chill.TemperatureEstimate, error)
	Duration(p DurationParams) (chill.DurationEstimate, error)
}

// Timers manages the caller's active timers.
type Timers interface {
	Start(ctx context.Context, userID int, presetID uuid.UUID) (chill.TimerView, error)
	List(ctx context.Context, userID int) ([]chill.TimerView, error)
	Cancel(ctx context.Context, userID int, id uuid.UUID) (chill.TimerView, error)
}

// Watcher runs the background loop that announces finished timers.
// Stop via context cancellation in main() for graceful shutdown.
type Watcher interface {
	Run(ctx context.Context, tick time.Duration)
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Catalog
	Cooling
	Timers
	Watcher
}

// Options carries the settings services take from configuration.
type Options struct {
	SigningKey string
	TokenTTL   time.Duration
	Logger     *logger.Logger
	// Now overrides the wall clock. Defaults to time.Now.
	Now func() time.Time
}

// NewService wires the repository layer and the catalog into concrete services.
func NewService(repos *repository.Repository, cat *catalog.Catalog, opts Options) *Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	timers := NewTimerService(repos.TimerRepo, cat, opts.Logger)
	timers.now = now
	watcher := NewWatcherService(repos.TimerRepo, cat, opts.Logger)
	watcher.now = now

	return &Service{
		Authorization: NewAuthService(repos.Auth, opts.SigningKey, opts.TokenTTL),
		Catalog:       NewCatalogService(cat),
		Cooling:       NewCoolingService(cat),
		Timers:        timers,
		Watcher:       watcher,
	}
}
