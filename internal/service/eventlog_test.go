package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizza_dough/internal/models"
	"pizza_dough/internal/repository"
)

// failingWarningRepo rejects every call and counts them.
type failingWarningRepo struct {
	err   error
	calls int
}

func (r *failingWarningRepo) Append(context.Context, models.WarningEvent) error {
	r.calls++
	return r.err
}

func (r *failingWarningRepo) List(context.Context, time.Time, time.Time, string) ([]models.WarningEvent, error) {
	r.calls++
	return nil, r.err
}

var evening = time.Date(2025, time.June, 1, 18, 0, 0, 0, time.UTC)

// journal replays three requests an hour apart:
// a soaked recipe at 18:00, a pale bake at 19:00, and hot water at 20:00.
func journal(t *testing.T) *WarningLogService {
	t.Helper()
	log := NewWarningLogService(repository.NewWarningMemory())
	requests := []struct {
		id       string
		warnings []models.Warning
	}{
		{"soaked-recipe", []models.Warning{
			{Type: models.WarningExcessIngredient, Description: "water 1.2 exceeds 1 of the flour", Metadata: map[string]any{"ingredient": "water"}},
			{Type: models.WarningExcessIngredient, Description: "salt 0.06 exceeds 0.05 of the flour", Metadata: map[string]any{"ingredient": "salt"}},
		}},
		{"pale-bake", []models.Warning{
			{Type: models.WarningMaillardThreshold, Description: "oven 130 °C below the Maillard threshold 140 °C"},
		}},
		{"hot-water", []models.Warning{
			{Type: models.WarningYeastThermalShock, Description: "water temperature 55.0 °C exceeds the yeast maximum 45.9 °C"},
			{Type: models.WarningExcessIngredient, Description: "yeast 0.2 exceeds 0.1 of the flour"},
		}},
	}
	for i, req := range requests {
		at := evening.Add(time.Duration(i) * time.Hour)
		log.now = func() time.Time { return at }
		require.NoError(t, log.Record(context.Background(), req.id, req.warnings))
	}
	return log
}

func requestIDs(events []models.WarningEvent) []string {
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.RequestID)
	}
	return ids
}

func TestWarningLogList(t *testing.T) {
	rome := time.FixedZone("CEST", 2*3600)
	tests := []struct {
		name string
		f    LogFilter
		want []string
	}{
		{"whole history", LogFilter{}, []string{"soaked-recipe", "soaked-recipe", "pale-bake", "hot-water", "hot-water"}},
		{"excess ingredients", LogFilter{Type: models.WarningExcessIngredient}, []string{"soaked-recipe", "soaked-recipe", "hot-water"}},
		{"kind is case-insensitive", LogFilter{Type: " maillard_threshold "}, []string{"pale-bake"}},
		{"bounds are inclusive", LogFilter{From: evening.Add(time.Hour), To: evening.Add(2 * time.Hour)}, []string{"pale-bake", "hot-water", "hot-water"}},
		{"open upper bound", LogFilter{From: evening.Add(90 * time.Minute)}, []string{"hot-water", "hot-water"}},
		{"open lower bound", LogFilter{To: evening.Add(30 * time.Minute)}, []string{"soaked-recipe", "soaked-recipe"}},
		{"local window", LogFilter{From: time.Date(2025, time.June, 1, 20, 30, 0, 0, rome), To: time.Date(2025, time.June, 1, 21, 30, 0, 0, rome)}, []string{"pale-bake"}},
		{"window and kind", LogFilter{From: evening.Add(time.Hour), Type: models.WarningExcessIngredient}, []string{"hot-water"}},
		{"nothing after the last bake", LogFilter{From: evening.Add(3 * time.Hour)}, []string{}},
		{"unrecorded kind", LogFilter{Type: models.WarningStretchAndFoldOverrun}, []string{}},
	}
	log := journal(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := log.List(context.Background(), tt.f)
			require.NoError(t, err)
			assert.Equal(t, tt.want, requestIDs(got))
		})
	}
}

func TestWarningLogRecord(t *testing.T) {
	log := journal(t)

	events, err := log.List(context.Background(), LogFilter{Type: models.WarningYeastThermalShock})
	require.NoError(t, err)
	require.Len(t, events, 1)
	e := events[0]
	assert.NotEmpty(t, e.EventID)
	assert.Equal(t, evening.Add(2*time.Hour), e.OccurredAt)
	assert.Equal(t, time.UTC, e.OccurredAt.Location())
	assert.Contains(t, e.Description, "45.9 °C")

	soaked, err := log.List(context.Background(), LogFilter{To: evening})
	require.NoError(t, err)
	require.Len(t, soaked, 2)
	assert.Equal(t, soaked[0].OccurredAt, soaked[1].OccurredAt)
	assert.NotEqual(t, soaked[0].EventID, soaked[1].EventID)
	assert.Equal(t, map[string]any{"ingredient": "salt"}, soaked[1].Metadata)
}

func TestWarningLogRecordWithoutWarnings(t *testing.T) {
	repo := &failingWarningRepo{err: errors.New("journal down")}
	log := NewWarningLogService(repo)

	require.NoError(t, log.Record(context.Background(), "clean-recipe", nil))
	assert.Zero(t, repo.calls)
}

func TestWarningLogErrors(t *testing.T) {
	down := errors.New("journal down")

	t.Run("inverted window", func(t *testing.T) {
		repo := &failingWarningRepo{err: down}
		_, err := NewWarningLogService(repo).List(context.Background(), LogFilter{From: evening.Add(time.Hour), To: evening})
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
		assert.Zero(t, repo.calls)
	})

	t.Run("list fails", func(t *testing.T) {
		repo := &failingWarningRepo{err: down}
		_, err := NewWarningLogService(repo).List(context.Background(), LogFilter{Type: models.WarningMaillardThreshold})
		assert.ErrorIs(t, err, down)
		assert.Equal(t, 1, repo.calls)
	})

	t.Run("record stops at first failure", func(t *testing.T) {
		repo := &failingWarningRepo{err: down}
		warnings := []models.Warning{
			{Type: models.WarningExcessIngredient, Description: "water"},
			{Type: models.WarningYeastThermalShock, Description: "hot water"},
		}
		err := NewWarningLogService(repo).Record(context.Background(), "hot-water", warnings)
		assert.ErrorIs(t, err, down)
		assert.Equal(t, 1, repo.calls)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		log := NewWarningLogService(repository.NewWarningMemory())
		assert.ErrorIs(t, log.Record(ctx, "late", []models.Warning{{Type: models.WarningMaillardThreshold}}), context.Canceled)
		_, err := log.List(ctx, LogFilter{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
