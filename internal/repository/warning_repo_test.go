package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"pizza_dough/internal/models"
)

func ctx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancel)
	return c
}

func TestAppend_SetsDefaults(t *testing.T) {
	t.Parallel()

	repo := NewWarningMemory()
	before := time.Now().UTC()
	err := repo.Append(ctx(t), models.WarningEvent{
		Type:        "  maillard_threshold ",
		Description: "hello",
		Metadata:    map[string]any{"a": 1},
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := repo.List(ctx(t), time.Time{}, time.Time{}, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	e := got[0]
	if e.EventID == "" {
		t.Fatalf("expected generated EventID")
	}
	if e.OccurredAt.Before(before) || e.OccurredAt.Location() != time.UTC {
		t.Fatalf("unexpected OccurredAt %v", e.OccurredAt)
	}
	if e.Type != models.WarningMaillardThreshold {
		t.Fatalf("expected normalized type, got %q", e.Type)
	}
}

func TestAppend_CanceledContext(t *testing.T) {
	t.Parallel()

	repo := NewWarningMemory()
	c, cancel := context.WithCancel(context.Background())
	cancel()

	if err := repo.Append(c, models.WarningEvent{Type: "x"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := repo.List(c, time.Time{}, time.Time{}, ""); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestList_WithFilters_Ordered(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	repo := NewWarningMemory()
	events := []models.WarningEvent{
		{EventID: "3", OccurredAt: base.Add(2 * time.Hour), Type: models.WarningExcessIngredient},
		{EventID: "1", OccurredAt: base, Type: models.WarningExcessIngredient},
		{EventID: "2", OccurredAt: base.Add(time.Hour).In(time.FixedZone("X", 3600)), Type: models.WarningYeastThermalShock},
	}
	for _, e := range events {
		if err := repo.Append(ctx(t), e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	tests := []struct {
		name     string
		from, to time.Time
		typ      string
		want     []string
	}{
		{name: "no filters", want: []string{"1", "2", "3"}},
		{name: "from", from: base.Add(time.Hour), want: []string{"2", "3"}},
		{name: "to inclusive", to: base.Add(time.Hour), want: []string{"1", "2"}},
		{name: "type", typ: " excess_ingredient", want: []string{"1", "3"}},
		{name: "type and range", from: base.Add(time.Minute), typ: models.WarningExcessIngredient, want: []string{"3"}},
		{name: "nothing", typ: models.WarningMaillardThreshold, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx(t), tt.from, tt.to, tt.typ)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d events, got %d", len(tt.want), len(got))
			}
			for i, id := range tt.want {
				if got[i].EventID != id {
					t.Fatalf("event %d: expected %s, got %s", i, id, got[i].EventID)
				}
			}
		})
	}
}
