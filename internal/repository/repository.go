package repository

import (
	"context"
	"database/sql"

	"chill_timer/internal/models"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// TimerRepo stores the set of currently active timers. Cancelled timers are
// deleted, there is no history.
type TimerRepo interface {
	Insert(ctx context.Context, t models.TimerRecord) error
	Delete(ctx context.Context, userID int, id string) (bool, error)
	ListByUser(ctx context.Context, userID int) ([]models.TimerRecord, error)
	ListAll(ctx context.Context) ([]models.TimerRecord, error)
}

type Repository struct {
	TimerRepo TimerRepo
	Auth      Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		TimerRepo: NewTimerSQLite(db),
		Auth:      NewUserRepository(db),
	}
}
