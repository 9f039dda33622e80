package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"blackeagles/internal/database"
	"blackeagles/internal/model"
	"blackeagles/internal/repository/sqlite"
	apperrors "blackeagles/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refDate = time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func setupStore(t *testing.T) (*sqlite.ScheduleStore, *fakeClock) {
	t.Helper()

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "flight_schedules.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, sqlite.Migrate(context.Background(), db))

	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	return sqlite.NewScheduleStore(db).WithClock(clock.now), clock
}

func strPtr(s string) *string { return &s }

func seedDataset(t *testing.T, store *sqlite.ScheduleStore) {
	t.Helper()
	ctx := context.Background()
	for _, p := range []model.CreateScheduleParams{
		{Title: "신년 비행", Location: "Seoul 서울공항", EventDate: "2025-01-01"},
		{Title: "정기 훈련", Location: "청주", EventDate: "2025-01-10", Description: "4기 편대"},
		{Title: "에어쇼 리허설", Location: "사천", EventDate: "2025-02-15"},
	} {
		_, err := store.Create(ctx, p)
		require.NoError(t, err)
	}
}

func dates(entries []*model.ScheduleEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.EventDate)
	}
	return out
}

func TestScheduleStore_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		store, _ := setupStore(t)

		created, err := store.Create(ctx, model.CreateScheduleParams{Title: " 에어쇼 ", EventDate: "2025-01-10"})
		require.NoError(t, err)

		found, err := store.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "에어쇼", found.Title)
		assert.Equal(t, "2025-01-10", found.EventDate)
		assert.Empty(t, found.Location)
		assert.Equal(t, found.CreatedAt, found.UpdatedAt)
	})

	t.Run("IDs increase", func(t *testing.T) {
		store, _ := setupStore(t)

		first, err := store.Create(ctx, model.CreateScheduleParams{Title: "a", EventDate: "2025-01-10"})
		require.NoError(t, err)
		second, err := store.Create(ctx, model.CreateScheduleParams{Title: "b", EventDate: "2025-01-10"})
		require.NoError(t, err)
		assert.Greater(t, second.ID, first.ID)
	})

	t.Run("Failed - invalid date inserts nothing", func(t *testing.T) {
		store, _ := setupStore(t)

		_, err := store.Create(ctx, model.CreateScheduleParams{Title: "t", EventDate: "2025-13-40"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

		all, err := store.List(ctx, model.FilterAll, refDate)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("Failed - empty title", func(t *testing.T) {
		store, _ := setupStore(t)

		_, err := store.Create(ctx, model.CreateScheduleParams{Title: "  ", EventDate: "2025-01-10"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestScheduleStore_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - only supplied fields change", func(t *testing.T) {
		store, clock := setupStore(t)
		created, err := store.Create(ctx, model.CreateScheduleParams{
			Title: "Old", Location: "청주", EventDate: "2025-01-10", Description: "desc",
		})
		require.NoError(t, err)

		clock.advance(time.Minute)
		updated, err := store.Update(ctx, created.ID, model.UpdateScheduleParams{Title: strPtr("New")})
		require.NoError(t, err)

		assert.Equal(t, "New", updated.Title)
		assert.Equal(t, "청주", updated.Location)
		assert.Equal(t, "2025-01-10", updated.EventDate)
		assert.Equal(t, "desc", updated.Description)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	})

	t.Run("Success - empty string clears optional field", func(t *testing.T) {
		store, _ := setupStore(t)
		created, err := store.Create(ctx, model.CreateScheduleParams{Title: "t", Location: "청주", EventDate: "2025-01-10"})
		require.NoError(t, err)

		updated, err := store.Update(ctx, created.ID, model.UpdateScheduleParams{Location: strPtr("")})
		require.NoError(t, err)
		assert.Empty(t, updated.Location)
	})

	t.Run("Failed - not found wins over bad date", func(t *testing.T) {
		store, _ := setupStore(t)

		_, err := store.Update(ctx, 99, model.UpdateScheduleParams{EventDate: strPtr("nope")})
		assert.ErrorIs(t, err, apperrors.ErrScheduleNotFound)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Failed - bad date rejects whole update", func(t *testing.T) {
		store, _ := setupStore(t)
		created, err := store.Create(ctx, model.CreateScheduleParams{Title: "Old", EventDate: "2025-01-10"})
		require.NoError(t, err)

		_, err = store.Update(ctx, created.ID, model.UpdateScheduleParams{
			Title:     strPtr("New"),
			EventDate: strPtr("2025-02-30"),
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

		found, err := store.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Old", found.Title)
		assert.Equal(t, created.UpdatedAt, found.UpdatedAt)
	})

	t.Run("Failed - nothing supplied", func(t *testing.T) {
		store, _ := setupStore(t)
		created, err := store.Create(ctx, model.CreateScheduleParams{Title: "t", EventDate: "2025-01-10"})
		require.NoError(t, err)

		_, err = store.Update(ctx, created.ID, model.UpdateScheduleParams{})
		assert.ErrorIs(t, err, apperrors.ErrNothingToUpdate)
	})
}

func TestScheduleStore_Delete(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)

	created, err := store.Create(ctx, model.CreateScheduleParams{Title: "t", EventDate: "2025-01-10"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, created.ID))

	_, err = store.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrScheduleNotFound)

	assert.ErrorIs(t, store.Delete(ctx, created.ID), apperrors.ErrScheduleNotFound)
}

func TestScheduleStore_List(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)
	seedDataset(t, store)

	tests := []struct {
		filter model.ScheduleFilter
		want   []string
	}{
		{model.FilterAll, []string{"2025-02-15", "2025-01-10", "2025-01-01"}},
		{model.FilterUpcoming, []string{"2025-01-10", "2025-02-15"}},
		{model.FilterPast, []string{"2025-01-01"}},
		{model.FilterToday, []string{}},
		{model.FilterWeek, []string{"2025-01-10"}},
		{model.FilterMonth, []string{"2025-01-10"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			got, err := store.List(ctx, tt.filter, refDate)
			require.NoError(t, err)
			assert.Equal(t, tt.want, dates(got))
		})
	}

	t.Run("today on event day", func(t *testing.T) {
		got, err := store.List(ctx, model.FilterToday, time.Date(2025, 1, 10, 23, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-01-10"}, dates(got))
	})
}

func TestScheduleStore_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty", func(t *testing.T) {
		store, _ := setupStore(t)
		stats, err := store.Stats(ctx, refDate)
		require.NoError(t, err)
		assert.Equal(t, model.ScheduleStats{}, *stats)
	})

	t.Run("Reference dataset", func(t *testing.T) {
		store, _ := setupStore(t)
		seedDataset(t, store)

		stats, err := store.Stats(ctx, refDate)
		require.NoError(t, err)
		assert.Equal(t, model.ScheduleStats{Total: 3, Upcoming: 2, Past: 1, Week: 1, Month: 1}, *stats)
	})

	t.Run("Month window reaches thirty days", func(t *testing.T) {
		store, _ := setupStore(t)
		seedDataset(t, store)

		stats, err := store.Stats(ctx, time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Past)
		assert.Equal(t, 1, stats.Month)
	})
}

func TestScheduleStore_Search(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)
	seedDataset(t, store)

	t.Run("Location in Hangul", func(t *testing.T) {
		got, err := store.Search(ctx, "서울")
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-01-01"}, dates(got))
	})

	t.Run("Case insensitive Latin", func(t *testing.T) {
		got, err := store.Search(ctx, "SEOUL")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("Description match, newest first", func(t *testing.T) {
		_, err := store.Create(ctx, model.CreateScheduleParams{Title: "추가", EventDate: "2025-03-01", Description: "8기 편대"})
		require.NoError(t, err)

		got, err := store.Search(ctx, "편대")
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-03-01", "2025-01-10"}, dates(got))
	})

	t.Run("Non-ASCII letters with case", func(t *testing.T) {
		_, err := store.Create(ctx, model.CreateScheduleParams{Title: "ÉCOLE Airshow", Location: "Москва", EventDate: "2025-04-01"})
		require.NoError(t, err)

		for _, keyword := range []string{"ÉCOLE", "école", "Москва", "МОСКВА", "airshow"} {
			got, err := store.Search(ctx, keyword)
			require.NoError(t, err)
			assert.Equal(t, []string{"2025-04-01"}, dates(got), keyword)
		}
	})

	t.Run("Wildcards are literal", func(t *testing.T) {
		got, err := store.Search(ctx, "%")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
