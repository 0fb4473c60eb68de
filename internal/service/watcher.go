package service

import (
	"context"
	"time"

	chill "chill_timer"
	"chill_timer/internal/catalog"
	"chill_timer/internal/logger"
	"chill_timer/internal/models"
	"chill_timer/internal/repository"
)

// FinishFunc is called once for every timer that crosses its finish instant.
type FinishFunc func(userID int, v chill.TimerView)

// WatcherService polls the active timers and announces the ones that finished.
type WatcherService struct {
	repo     repository.TimerRepo
	catalog  *catalog.Catalog
	log      *logger.Logger
	now      func() time.Time
	onFinish FinishFunc

	// owned by the Run goroutine
	announced map[string]struct{}
}

// NewWatcherService returns a watcher that only logs finished timers.
func NewWatcherService(repo repository.TimerRepo, cat *catalog.Catalog, log *logger.Logger) *WatcherService {
	return &WatcherService{
		repo:      repo,
		catalog:   cat,
		log:       log.Component("watcher"),
		now:       time.Now,
		announced: make(map[string]struct{}),
	}
}

// OnFinish registers a callback in addition to the log line. Call before Run.
func (s *WatcherService) OnFinish(f FinishFunc) {
	s.onFinish = f
}

// Run ticks at the given interval until ctx is canceled.
func (s *WatcherService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := s.step(ctx); err != nil && ctx.Err() == nil {
				s.log.Warnw("watcher_step_failed", "err", err)
			}
		}
	}
}

// step samples all active timers once.
func (s *WatcherService) step(ctx context.Context) error {
	recs, err := s.repo.ListAll(ctx)
	if err != nil {
		return err
	}
	now := s.now()
	active := make(map[string]struct{}, len(recs))
	for _, rec := range recs {
		active[rec.ID] = struct{}{}
		if _, done := s.announced[rec.ID]; done {
			continue
		}
		s.check(rec, now)
	}
	// forget cancelled timers
	for id := range s.announced {
		if _, ok := active[id]; !ok {
			delete(s.announced, id)
		}
	}
	return nil
}

func (s *WatcherService) check(rec models.TimerRecord, now time.Time) {
	t, err := restoreRecord(s.catalog, rec)
	if err != nil {
		// unknown preset; stop retrying it every tick
		s.announced[rec.ID] = struct{}{}
		s.log.Warnw("timer_restore_failed", "timer_id", rec.ID, "err", err)
		return
	}
	sample := t.Sample(now)
	if !sample.Finished {
		return
	}
	s.announced[rec.ID] = struct{}{}

	v := timerView(t, sample)
	s.log.Infow("timer_finished",
		"timer_id", v.ID,
		"user_id", rec.UserID,
		"preset", v.PresetName,
		"temp", v.CurrentTemp,
	)
	if s.onFinish != nil {
		s.onFinish(rec.UserID, v)
	}
}
