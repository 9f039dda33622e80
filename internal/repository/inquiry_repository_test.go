package repository_test

import (
	"context"
	"testing"

	"blackeagles/internal/model"
	"blackeagles/internal/repository"
	apperrors "blackeagles/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInquiryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - list, recent and unread", func(t *testing.T) {
		repo := repository.NewInquiryRepository(setupTestWithTruncate(t))

		contact, err := repo.Create(ctx, model.SubmitInquiryParams{Type: model.InquiryContact, Name: "익명", Email: "a@b.c", Message: "hi"})
		require.NoError(t, err)
		donate, err := repo.Create(ctx, model.SubmitInquiryParams{Type: model.InquiryDonate, Name: "익명", Email: "10000", Message: "응원합니다"})
		require.NoError(t, err)
		assert.False(t, contact.IsRead)

		all, err := repo.List(ctx, "")
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, donate.ID, all[0].ID)

		donations, err := repo.List(ctx, model.InquiryDonate)
		require.NoError(t, err)
		require.Len(t, donations, 1)
		assert.Equal(t, "10000", donations[0].Email)

		recent, err := repo.Recent(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, recent, 1)

		unread, err := repo.CountUnread(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, unread)

		require.NoError(t, repo.MarkRead(ctx, contact.ID))
		unread, err = repo.CountUnread(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, unread)
	})

	t.Run("Failed - not found", func(t *testing.T) {
		repo := repository.NewInquiryRepository(setupTestWithTruncate(t))

		_, err := repo.FindByID(ctx, 7)
		assert.ErrorIs(t, err, apperrors.ErrInquiryNotFound)
		assert.ErrorIs(t, repo.MarkRead(ctx, 7), apperrors.ErrInquiryNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, 7), apperrors.ErrInquiryNotFound)
	})
}

func TestPageSectionRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - insert then update", func(t *testing.T) {
		repo := repository.NewPageSectionRepository(setupTestWithTruncate(t))

		saved, err := repo.Save(ctx, &model.PageSection{PageName: "home", SectionID: "hero", SectionType: "text", Title: "Hero", IsActive: true})
		require.NoError(t, err)
		assert.NotZero(t, saved.ID)

		saved.Title = "Hero 2"
		updated, err := repo.Save(ctx, saved)
		require.NoError(t, err)
		assert.Equal(t, "Hero 2", updated.Title)

		byPage, err := repo.ListByPage(ctx, "home")
		require.NoError(t, err)
		assert.Len(t, byPage, 1)
	})

	t.Run("Failed - duplicate page and section id", func(t *testing.T) {
		repo := repository.NewPageSectionRepository(setupTestWithTruncate(t))

		_, err := repo.Save(ctx, &model.PageSection{PageName: "home", SectionID: "hero", SectionType: "text"})
		require.NoError(t, err)

		_, err = repo.Save(ctx, &model.PageSection{PageName: "home", SectionID: "hero", SectionType: "text"})
		assert.ErrorIs(t, err, apperrors.ErrDuplicateSection)
	})
}
