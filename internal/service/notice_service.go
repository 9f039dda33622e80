package service

import (
	"context"

	"blackeagles/internal/model"
	"blackeagles/internal/repository"
)

type NoticeService interface {
	List(ctx context.Context) ([]*model.Notice, error)
	Get(ctx context.Context, id int) (*model.Notice, error)
	Create(ctx context.Context, params model.NoticeParams) (*model.Notice, error)
	Update(ctx context.Context, id int, params model.NoticeParams) (*model.Notice, error)
	Delete(ctx context.Context, id int) error
}

type NoticeServiceImpl struct {
	repo repository.NoticeRepository
}

func NewNoticeService(repo repository.NoticeRepository) NoticeService {
	return &NoticeServiceImpl{repo: repo}
}

func (s *NoticeServiceImpl) List(ctx context.Context) ([]*model.Notice, error) {
	return s.repo.List(ctx)
}

func (s *NoticeServiceImpl) Get(ctx context.Context, id int) (*model.Notice, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *NoticeServiceImpl) Create(ctx context.Context, params model.NoticeParams) (*model.Notice, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, params)
}

func (s *NoticeServiceImpl) Update(ctx context.Context, id int, params model.NoticeParams) (*model.Notice, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, params)
}

func (s *NoticeServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
