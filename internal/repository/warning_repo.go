package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"pizza_dough/internal/models"

	"github.com/google/uuid"
)

// WarningMemory is an in-process, append-only warning journal.
type WarningMemory struct {
	mu     sync.RWMutex
	events []models.WarningEvent
}

func NewWarningMemory() *WarningMemory { return &WarningMemory{} }

// Append stores a new event. If EventID or OccurredAt are empty, they're set.
func (r *WarningMemory) Append(ctx context.Context, e models.WarningEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	} else {
		e.OccurredAt = e.OccurredAt.UTC()
	}
	e.Type = strings.ToUpper(strings.TrimSpace(e.Type))

	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

// List returns events filtered by [from, to] (inclusive) and/or type, ordered ASC.
func (r *WarningMemory) List(ctx context.Context, from, to time.Time, typ string) ([]models.WarningEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	typ = strings.ToUpper(strings.TrimSpace(typ))

	r.mu.RLock()
	out := make([]models.WarningEvent, 0, len(r.events))
	for _, e := range r.events {
		if !from.IsZero() && e.OccurredAt.Before(from) {
			continue
		}
		if !to.IsZero() && e.OccurredAt.After(to) {
			continue
		}
		if typ != "" && e.Type != typ {
			continue
		}
		out = append(out, e)
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].OccurredAt.Before(out[j].OccurredAt) })
	return out, nil
}
