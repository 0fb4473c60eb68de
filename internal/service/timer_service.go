package service

import (
	"context"
	"fmt"
	"time"

	chill "chill_timer"
	"chill_timer/internal/catalog"
	"chill_timer/internal/logger"
	"chill_timer/internal/models"
	"chill_timer/internal/repository"
	"chill_timer/internal/timer"

	"github.com/google/uuid"
)

type TimerService struct {
	repo    repository.TimerRepo
	catalog *catalog.Catalog
	log     *logger.Logger
	now     func() time.Time
}

func NewTimerService(repo repository.TimerRepo, cat *catalog.Catalog, log *logger.Logger) *TimerService {
	return &TimerService{
		repo:    repo,
		catalog: cat,
		log:     log.Component("timers"),
		now:     time.Now,
	}
}

// Start begins a timer for the preset. An unreachable target fails and
// nothing is stored.
func (s *TimerService) Start(ctx context.Context, userID int, presetID uuid.UUID) (chill.TimerView, error) {
	p, ok := s.catalog.Preset(presetID)
	if !ok {
		return chill.TimerView{}, fmt.Errorf("%w: %s", ErrPresetNotFound, presetID)
	}
	now := s.now().UTC()
	t, err := timer.Start(p, now)
	if err != nil {
		return chill.TimerView{}, err
	}

	if err := s.repo.Insert(ctx, models.TimerRecord{
		ID:         t.ID.String(),
		UserID:     userID,
		PresetID:   p.ID.String(),
		StartedAt:  t.Started,
		FinishesAt: t.Finishes,
	}); err != nil {
		return chill.TimerView{}, err
	}

	s.log.Infow("timer_started",
		"timer_id", t.ID,
		"user_id", userID,
		"preset", p.Name,
		"duration", t.Duration().Round(time.Second).String(),
	)
	return timerView(t, t.Sample(now)), nil
}

// List samples every active timer of the user at the current instant.
func (s *TimerService) List(ctx context.Context, userID int) ([]chill.TimerView, error) {
	recs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	out := make([]chill.TimerView, 0, len(recs))
	for _, rec := range recs {
		t, err := restoreRecord(s.catalog, rec)
		if err != nil {
			s.log.Warnw("timer_restore_failed", "timer_id", rec.ID, "err", err)
			continue
		}
		out = append(out, timerView(t, t.Sample(now)))
	}
	return out, nil
}

// Cancel removes the timer from the active set and returns its last sample.
func (s *TimerService) Cancel(ctx context.Context, userID int, id uuid.UUID) (chill.TimerView, error) {
	recs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return chill.TimerView{}, err
	}
	var (
		rec   models.TimerRecord
		found bool
	)
	for _, r := range recs {
		if r.ID == id.String() {
			rec, found = r, true
			break
		}
	}
	if !found {
		return chill.TimerView{}, fmt.Errorf("%w: %s", ErrTimerNotFound, id)
	}

	deleted, err := s.repo.Delete(ctx, userID, rec.ID)
	if err != nil {
		return chill.TimerView{}, err
	}
	if !deleted {
		return chill.TimerView{}, fmt.Errorf("%w: %s", ErrTimerNotFound, id)
	}

	s.log.Infow("timer_cancelled", "timer_id", rec.ID, "user_id", userID)

	t, err := restoreRecord(s.catalog, rec)
	if err != nil {
		// the row is gone already; report what is known
		return chill.TimerView{
			ID:         rec.ID,
			PresetID:   rec.PresetID,
			State:      timer.Cancelled.String(),
			StartedAt:  rec.StartedAt,
			FinishesAt: rec.FinishesAt,
		}, nil
	}
	sample := t.Sample(s.now())
	sample.State = timer.Cancelled
	return timerView(t, sample), nil
}

// restoreRecord rebuilds a timer from its stored row. The finish instant is
// recomputed from the catalog so it always matches the current physics.
func restoreRecord(cat *catalog.Catalog, rec models.TimerRecord) (timer.Timer, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return timer.Timer{}, fmt.Errorf("timer id %q: %w", rec.ID, err)
	}
	presetID, err := uuid.Parse(rec.PresetID)
	if err != nil {
		return timer.Timer{}, fmt.Errorf("preset id %q: %w", rec.PresetID, err)
	}
	p, ok := cat.Preset(presetID)
	if !ok {
		return timer.Timer{}, fmt.Errorf("%w: %s", ErrPresetNotFound, presetID)
	}
	return timer.Restore(id, p, rec.StartedAt)
}
