package service

import (
	"errors"

	"chill_timer/internal/repository"
)

// Lookup errors. Handlers map them to 404.
var (
	ErrPresetNotFound   = errors.New("preset not found")
	ErrTimerNotFound    = errors.New("timer not found")
	ErrDrinkNotFound    = errors.New("drink not found")
	ErrAmbienceNotFound = errors.New("ambience not found")
)

// ErrInvalidTemperature is returned for temperatures below absolute zero or not finite.
var ErrInvalidTemperature = errors.New("invalid temperature")

// ErrUserExists is returned by SignUp for a taken username.
var ErrUserExists = repository.ErrUsernameTaken
