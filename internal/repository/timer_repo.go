package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"chill_timer/internal/models"

	sq "github.com/Masterminds/squirrel"
)

type TimerSQLite struct {
	db *sql.DB
}

func NewTimerSQLite(db *sql.DB) *TimerSQLite {
	return &TimerSQLite{db: db}
}

var _ TimerRepo = (*TimerSQLite)(nil)

// Times are stored as unix nanoseconds so a restored timer finishes at
// exactly the same instant.
const (
	insertTimerSQL = `
		INSERT INTO active_timers (id, user_id, preset_id, started_at, finishes_at)
		VALUES (?, ?, ?, ?, ?)
	`

	deleteTimerSQL = `DELETE FROM active_timers WHERE id = ? AND user_id = ?`

	timersTable = "active_timers"
)

var timerColumns = []string{"id", "user_id", "preset_id", "started_at", "finishes_at"}

// selectTimers is the base listing query, oldest first.
func selectTimers() sq.SelectBuilder {
	return sq.Select(timerColumns...).
		From(timersTable).
		OrderBy("started_at ASC")
}

// Insert adds a timer to the active set.
func (r *TimerSQLite) Insert(ctx context.Context, t models.TimerRecord) error {
	_, err := r.db.ExecContext(ctx, insertTimerSQL,
		t.ID,
		t.UserID,
		t.PresetID,
		t.StartedAt.UnixNano(),
		t.FinishesAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert timer %s: %w", t.ID, err)
	}
	return nil
}

// Delete removes the user's timer. It reports false if no such timer existed.
func (r *TimerSQLite) Delete(ctx context.Context, userID int, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteTimerSQL, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete timer %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for timer %s: %w", id, err)
	}
	return n > 0, nil
}

// ListByUser returns the user's active timers, oldest first.
func (r *TimerSQLite) ListByUser(ctx context.Context, userID int) ([]models.TimerRecord, error) {
	return r.query(ctx, selectTimers().Where(sq.Eq{"user_id": userID}))
}

// ListAll returns every active timer, oldest first.
func (r *TimerSQLite) ListAll(ctx context.Context) ([]models.TimerRecord, error) {
	return r.query(ctx, selectTimers())
}

func (r *TimerSQLite) query(ctx context.Context, b sq.SelectBuilder) ([]models.TimerRecord, error) {
	q, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build timers query: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select timers: %w", err)
	}
	defer rows.Close()

	out := make([]models.TimerRecord, 0, 8)
	for rows.Next() {
		var (
			rec               models.TimerRecord
			started, finishes int64
		)
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.PresetID, &started, &finishes); err != nil {
			return nil, fmt.Errorf("scan timer: %w", err)
		}
		rec.StartedAt = time.Unix(0, started).UTC()
		rec.FinishesAt = time.Unix(0, finishes).UTC()
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
