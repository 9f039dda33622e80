// Package mocks holds testify mocks of the service interfaces for handler tests.
package mocks

import (
	"context"
	"time"

	"blackeagles/internal/model"

	"github.com/stretchr/testify/mock"
)

type ScheduleServiceMock struct {
	mock.Mock
	Now time.Time
}

func NewScheduleServiceMock(now time.Time) *ScheduleServiceMock {
	return &ScheduleServiceMock{Now: now}
}

func (m *ScheduleServiceMock) Create(ctx context.Context, params model.CreateScheduleParams) (*model.ScheduleEntry, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ScheduleEntry), args.Error(1)
}

func (m *ScheduleServiceMock) Get(ctx context.Context, id int) (*model.ScheduleEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ScheduleEntry), args.Error(1)
}

func (m *ScheduleServiceMock) Update(ctx context.Context, id int, params model.UpdateScheduleParams) (*model.ScheduleEntry, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ScheduleEntry), args.Error(1)
}

func (m *ScheduleServiceMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ScheduleServiceMock) List(ctx context.Context, filter model.ScheduleFilter) ([]*model.ScheduleEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ScheduleEntry), args.Error(1)
}

func (m *ScheduleServiceMock) Search(ctx context.Context, keyword string) ([]*model.ScheduleEntry, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ScheduleEntry), args.Error(1)
}

func (m *ScheduleServiceMock) Stats(ctx context.Context) (*model.ScheduleStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ScheduleStats), args.Error(1)
}

// Today is not recorded as a call.
func (m *ScheduleServiceMock) Today() time.Time {
	return m.Now
}
