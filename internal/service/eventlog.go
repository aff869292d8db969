package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"pizza_dough/internal/models"
	"pizza_dough/internal/repository"
)

// ErrInvalidTimeRange is returned by List when From is after To.
var ErrInvalidTimeRange = errors.New("warning log: From is after To")

// LogFilter selects journaled warnings by time window and kind.
type LogFilter struct {
	From time.Time // inclusive; zero means unbounded
	To   time.Time // inclusive; zero means unbounded
	Type string    // models.Warning* kind, case-insensitive; "" matches all
}

// normalized returns the filter in UTC with a canonical kind.
func (f LogFilter) normalized() (LogFilter, error) {
	if !f.From.IsZero() {
		f.From = f.From.UTC()
	}
	if !f.To.IsZero() {
		f.To = f.To.UTC()
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.To.Before(f.From) {
		return LogFilter{}, ErrInvalidTimeRange
	}
	f.Type = strings.ToUpper(strings.TrimSpace(f.Type))
	return f, nil
}

// WarningLogService journals request warnings and answers history queries.
type WarningLogService struct {
	warningRepo repository.WarningRepo
	now         func() time.Time
}

func NewWarningLogService(warningRepo repository.WarningRepo) *WarningLogService {
	return &WarningLogService{warningRepo: warningRepo, now: time.Now}
}

// Record journals the warnings raised by one request under a single timestamp.
func (s *WarningLogService) Record(ctx context.Context, requestID string, warnings []models.Warning) error {
	if len(warnings) == 0 {
		return nil
	}
	at := s.now().UTC()
	for _, w := range warnings {
		e := models.WarningEvent{
			RequestID:   requestID,
			OccurredAt:  at,
			Type:        w.Type,
			Description: w.Description,
			Metadata:    w.Metadata,
		}
		if err := s.warningRepo.Append(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (s *WarningLogService) List(ctx context.Context, f LogFilter) ([]models.WarningEvent, error) {
	nf, err := f.normalized()
	if err != nil {
		return nil, err
	}
	return s.warningRepo.List(ctx, nf.From, nf.To, nf.Type)
}
