package mocks

import (
	"context"

	"blackeagles/internal/model"

	"github.com/stretchr/testify/mock"
)

type NoticeServiceMock struct {
	mock.Mock
}

func NewNoticeServiceMock() *NoticeServiceMock {
	return &NoticeServiceMock{}
}

func (m *NoticeServiceMock) List(ctx context.Context) ([]*model.Notice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Notice), args.Error(1)
}

func (m *NoticeServiceMock) Get(ctx context.Context, id int) (*model.Notice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Notice), args.Error(1)
}

func (m *NoticeServiceMock) Create(ctx context.Context, params model.NoticeParams) (*model.Notice, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Notice), args.Error(1)
}

func (m *NoticeServiceMock) Update(ctx context.Context, id int, params model.NoticeParams) (*model.Notice, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Notice), args.Error(1)
}

func (m *NoticeServiceMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
