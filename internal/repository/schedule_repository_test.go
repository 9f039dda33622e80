package repository_test

import (
	"context"
	"testing"
	"time"

	"blackeagles/internal/model"
	"blackeagles/internal/repository"
	apperrors "blackeagles/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refDate = time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC)

func seedSchedules(t *testing.T, repo repository.ScheduleRepository) {
	t.Helper()
	for _, p := range []model.CreateScheduleParams{
		{Title: "신년 비행", Location: "Seoul 서울공항", EventDate: "2025-01-01"},
		{Title: "정기 훈련", Location: "청주", EventDate: "2025-01-10", Description: "4기 편대"},
		{Title: "에어쇼 리허설", Location: "사천", EventDate: "2025-02-15"},
	} {
		_, err := repo.Create(context.Background(), p)
		require.NoError(t, err)
	}
}

func eventDates(entries []*model.ScheduleEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.EventDate)
	}
	return out
}

func TestScheduleRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := repository.NewScheduleRepository(setupTestWithTruncate(t))

		created, err := repo.Create(ctx, model.CreateScheduleParams{Title: " 에어쇼 ", Location: "서울", EventDate: "2025-01-10"})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "에어쇼", created.Title)
		assert.Equal(t, "2025-01-10", created.EventDate)
		assert.Equal(t, created.CreatedAt, created.UpdatedAt)

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Title, found.Title)
		assert.Equal(t, "서울", found.Location)
	})

	t.Run("Failed - invalid date", func(t *testing.T) {
		repo := repository.NewScheduleRepository(setupTestWithTruncate(t))

		_, err := repo.Create(ctx, model.CreateScheduleParams{Title: "t", EventDate: "2025-02-30"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

		all, err := repo.List(ctx, model.FilterAll, refDate)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func TestScheduleRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - partial", func(t *testing.T) {
		repo := repository.NewScheduleRepository(setupTestWithTruncate(t))
		created, err := repo.Create(ctx, model.CreateScheduleParams{Title: "Old", Location: "청주", EventDate: "2025-01-10"})
		require.NoError(t, err)

		updated, err := repo.Update(ctx, created.ID, model.UpdateScheduleParams{
			Title:    strPtr("New"),
			Location: strPtr(""),
		})
		require.NoError(t, err)
		assert.Equal(t, "New", updated.Title)
		assert.Empty(t, updated.Location)
		assert.Equal(t, "2025-01-10", updated.EventDate)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	})

	t.Run("Failed - not found wins over bad date", func(t *testing.T) {
		repo := repository.NewScheduleRepository(setupTestWithTruncate(t))

		_, err := repo.Update(ctx, 42, model.UpdateScheduleParams{EventDate: strPtr("nope")})
		assert.ErrorIs(t, err, apperrors.ErrScheduleNotFound)
	})

	t.Run("Failed - bad date leaves row untouched", func(t *testing.T) {
		repo := repository.NewScheduleRepository(setupTestWithTruncate(t))
		created, err := repo.Create(ctx, model.CreateScheduleParams{Title: "Old", EventDate: "2025-01-10"})
		require.NoError(t, err)

		_, err = repo.Update(ctx, created.ID, model.UpdateScheduleParams{Title: strPtr("New"), EventDate: strPtr("2025-13-01")})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Old", found.Title)
	})

	t.Run("Failed - nothing supplied", func(t *testing.T) {
		repo := repository.NewScheduleRepository(setupTestWithTruncate(t))
		created, err := repo.Create(ctx, model.CreateScheduleParams{Title: "t", EventDate: "2025-01-10"})
		require.NoError(t, err)

		_, err = repo.Update(ctx, created.ID, model.UpdateScheduleParams{})
		assert.ErrorIs(t, err, apperrors.ErrNothingToUpdate)
	})
}

func TestScheduleRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewScheduleRepository(setupTestWithTruncate(t))

	created, err := repo.Create(ctx, model.CreateScheduleParams{Title: "t", EventDate: "2025-01-10"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), apperrors.ErrScheduleNotFound)

	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestScheduleRepository_ListAndStats(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewScheduleRepository(setupTestWithTruncate(t))
	seedSchedules(t, repo)

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
			got, err := repo.List(ctx, tt.filter, refDate)
			require.NoError(t, err)
			assert.Equal(t, tt.want, eventDates(got))
		})
	}

	t.Run("Stats", func(t *testing.T) {
		stats, err := repo.Stats(ctx, refDate)
		require.NoError(t, err)
		assert.Equal(t, model.ScheduleStats{Total: 3, Upcoming: 2, Past: 1, Week: 1, Month: 1}, *stats)
	})
}

func TestScheduleRepository_Search(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewScheduleRepository(setupTestWithTruncate(t))
	seedSchedules(t, repo)

	t.Run("Hangul location", func(t *testing.T) {
		got, err := repo.Search(ctx, "서울")
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-01-01"}, eventDates(got))
	})

	t.Run("Case insensitive", func(t *testing.T) {
		got, err := repo.Search(ctx, "seoul")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("Description", func(t *testing.T) {
		got, err := repo.Search(ctx, "편대")
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-01-10"}, eventDates(got))
	})

	t.Run("Exact non-ASCII keyword", func(t *testing.T) {
		_, err := repo.Create(ctx, model.CreateScheduleParams{Title: "ÉCOLE Airshow", Location: "Москва", EventDate: "2025-04-01"})
		require.NoError(t, err)

		for _, keyword := range []string{"ÉCOLE", "Москва", "AIRSHOW"} {
			got, err := repo.Search(ctx, keyword)
			require.NoError(t, err)
			assert.Equal(t, []string{"2025-04-01"}, eventDates(got), keyword)
		}
	})

	t.Run("Wildcards are literal", func(t *testing.T) {
		got, err := repo.Search(ctx, "_")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
