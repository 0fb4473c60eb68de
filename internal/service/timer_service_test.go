package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"chill_timer/internal/catalog"
	"chill_timer/internal/models"

	"github.com/google/uuid"
)

func newTimerSvc(t *testing.T) (*TimerService, *memTimerRepo, *fakeClock) {
	t.Helper()
	repo := &memTimerRepo{}
	clock := newFakeClock()
	svc := NewTimerService(repo, defaultCatalog(t), nil)
	svc.now = clock.Now
	return svc, repo, clock
}

func TestTimerService_Start_PersistsAndReturnsRunning(t *testing.T) {
	svc, repo, clock := newTimerSvc(t)

	v, err := svc.Start(context.Background(), 7, catalog.ID("preset-beer"))
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if v.State != "RUNNING" || v.Finished {
		t.Fatalf("expected running timer, got %+v", v)
	}
	if math.Abs(v.CurrentTempC-20) > 1e-9 {
		t.Fatalf("fresh timer should be at the initial temperature, got %v", v.CurrentTempC)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("expected 1 stored timer, got %d", len(repo.rows))
	}
	row := repo.rows[0]
	if row.ID != v.ID || row.UserID != 7 || row.PresetID != catalog.ID("preset-beer").String() {
		t.Fatalf("unexpected row: %+v", row)
	}
	if !row.StartedAt.Equal(clock.Now()) || !row.FinishesAt.Equal(v.FinishesAt) {
		t.Fatalf("row times %v..%v do not match view %v..%v", row.StartedAt, row.FinishesAt, v.StartedAt, v.FinishesAt)
	}
	if v.RemainingSeconds <= 0 {
		t.Fatalf("expected positive remaining seconds, got %d", v.RemainingSeconds)
	}
}

func TestTimerService_Start_UnknownPreset(t *testing.T) {
	svc, repo, _ := newTimerSvc(t)

	_, err := svc.Start(context.Background(), 1, uuid.New())
	if !errors.Is(err, ErrPresetNotFound) {
		t.Fatalf("expected ErrPresetNotFound, got %v", err)
	}
	if len(repo.rows) != 0 {
		t.Fatalf("nothing should be stored")
	}
}

func TestTimerService_Start_RepoError(t *testing.T) {
	svc, repo, _ := newTimerSvc(t)
	repo.saveErr = errors.New("disk full")

	if _, err := svc.Start(context.Background(), 1, catalog.ID("preset-beer")); err == nil {
		t.Fatalf("expected repo error")
	}
}

func TestTimerService_List_SamplesAtNow(t *testing.T) {
	svc, _, clock := newTimerSvc(t)
	ctx := context.Background()

	started, err := svc.Start(ctx, 7, catalog.ID("preset-beer"))
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := svc.Start(ctx, 8, catalog.ID("preset-schnapps")); err != nil {
		t.Fatalf("Start other user: %v", err)
	}

	clock.Advance(10 * time.Minute)
	got, err := svc.List(ctx, 7)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].ID != started.ID {
		t.Fatalf("List should only return the caller's timers, got %+v", got)
	}
	if got[0].CurrentTempC >= started.CurrentTempC {
		t.Fatalf("drink should have cooled: %v -> %v", started.CurrentTempC, got[0].CurrentTempC)
	}
	if want := started.RemainingSeconds - 600; got[0].RemainingSeconds != want {
		t.Fatalf("remaining = %d, want %d", got[0].RemainingSeconds, want)
	}

	clock.Advance(24 * time.Hour)
	got, err = svc.List(ctx, 7)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !got[0].Finished || got[0].State != "FINISHED" {
		t.Fatalf("expected finished timer, got %+v", got[0])
	}
}

func TestTimerService_List_SkipsUnknownPreset(t *testing.T) {
	svc, repo, clock := newTimerSvc(t)
	repo.rows = []models.TimerRecord{{
		ID:         uuid.NewString(),
		UserID:     1,
		PresetID:   uuid.NewString(),
		StartedAt:  clock.Now(),
		FinishesAt: clock.Now().Add(time.Hour),
	}}

	got, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected stale row to be skipped, got %+v", got)
	}
}

func TestTimerService_Cancel(t *testing.T) {
	svc, repo, clock := newTimerSvc(t)
	ctx := context.Background()

	v, err := svc.Start(ctx, 7, catalog.ID("preset-beer"))
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	id := uuid.MustParse(v.ID)

	if _, err := svc.Cancel(ctx, 8, id); !errors.Is(err, ErrTimerNotFound) {
		t.Fatalf("other user must not cancel: %v", err)
	}

	clock.Advance(time.Minute)
	got, err := svc.Cancel(ctx, 7, id)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if got.State != "CANCELLED" || got.ID != v.ID {
		t.Fatalf("unexpected view: %+v", got)
	}
	if len(repo.rows) != 0 {
		t.Fatalf("timer should be removed, %d left", len(repo.rows))
	}

	if _, err := svc.Cancel(ctx, 7, id); !errors.Is(err, ErrTimerNotFound) {
		t.Fatalf("second cancel: want ErrTimerNotFound, got %v", err)
	}
}

func TestTimerService_Cancel_DeleteError(t *testing.T) {
	svc, repo, _ := newTimerSvc(t)
	ctx := context.Background()

	v, err := svc.Start(ctx, 7, catalog.ID("preset-beer"))
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	repo.delErr = errors.New("locked")

	if _, err := svc.Cancel(ctx, 7, uuid.MustParse(v.ID)); err == nil || errors.Is(err, ErrTimerNotFound) {
		t.Fatalf("expected repo error, got %v", err)
	}
}

func TestRestoreRecord_BadIDs(t *testing.T) {
	cat := defaultCatalog(t)
	preset := catalog.ID("preset-beer").String()

	if _, err := restoreRecord(cat, models.TimerRecord{ID: "nope", PresetID: preset}); err == nil {
		t.Fatalf("expected error for bad timer id")
	}
	if _, err := restoreRecord(cat, models.TimerRecord{ID: uuid.NewString(), PresetID: "nope"}); err == nil {
		t.Fatalf("expected error for bad preset id")
	}
}
