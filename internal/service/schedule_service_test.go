package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"blackeagles/internal/database"
	"blackeagles/internal/model"
	"blackeagles/internal/repository/sqlite"
	"blackeagles/internal/service"
	apperrors "blackeagles/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func setupScheduleService(t *testing.T, now time.Time, loc *time.Location) service.ScheduleService {
	t.Helper()

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "flight_schedules.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Migrate(context.Background(), db))

	return service.NewScheduleServiceWithClock(sqlite.NewScheduleStore(db), loc, func() time.Time { return now })
}

func TestScheduleService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Failed - missing id reported before bad input", func(t *testing.T) {
		svc := setupScheduleService(t, time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC), time.UTC)

		_, err := svc.Update(ctx, 42, model.UpdateScheduleParams{EventDate: strPtr("not-a-date")})
		assert.ErrorIs(t, err, apperrors.ErrScheduleNotFound)
	})

	t.Run("Failed - bad date on existing entry", func(t *testing.T) {
		svc := setupScheduleService(t, time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC), time.UTC)
		created, err := svc.Create(ctx, model.CreateScheduleParams{Title: "t", EventDate: "2025-01-10"})
		require.NoError(t, err)

		_, err = svc.Update(ctx, created.ID, model.UpdateScheduleParams{EventDate: strPtr("2025-02-30")})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestScheduleService_Search(t *testing.T) {
	svc := setupScheduleService(t, time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC), time.UTC)

	_, err := svc.Search(context.Background(), "   ")
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "검색어를 입력하세요.", vErr.Message)
}

func TestScheduleService_TodayUsesZone(t *testing.T) {
	ctx := context.Background()
	kst := time.FixedZone("KST", 9*60*60)
	// 2025-01-09 20:00 UTC is already the 10th in Seoul
	svc := setupScheduleService(t, time.Date(2025, 1, 9, 20, 0, 0, 0, time.UTC), kst)

	_, err := svc.Create(ctx, model.CreateScheduleParams{Title: "정기 훈련", EventDate: "2025-01-10"})
	require.NoError(t, err)

	today, err := svc.List(ctx, model.FilterToday)
	require.NoError(t, err)
	assert.Len(t, today, 1)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Upcoming)
	assert.Equal(t, 0, stats.Past)
}

func TestScheduleService_ListInvalidFilter(t *testing.T) {
	ctx := context.Background()
	svc := setupScheduleService(t, time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC), time.UTC)
	_, err := svc.Create(ctx, model.CreateScheduleParams{Title: "신년 비행", EventDate: "2025-01-01"})
	require.NoError(t, err)

	got, err := svc.List(ctx, model.ScheduleFilter("yesterday"))
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
