package repository

import (
	"context"
	"time"

	"pizza_dough/internal/models"
)

type WarningRepo interface {
	Append(ctx context.Context, e models.WarningEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.WarningEvent, error)
}

type Repository struct {
	WarningRepo WarningRepo
}

func NewRepository() *Repository {
	return &Repository{
		WarningRepo: NewWarningMemory(),
	}
}
