package mocks

import (
	"context"

	"blackeagles/internal/model"
	"blackeagles/internal/service"

	"github.com/stretchr/testify/mock"
)

type InquiryServiceMock struct {
	mock.Mock
}

func NewInquiryServiceMock() *InquiryServiceMock {
	return &InquiryServiceMock{}
}

func (m *InquiryServiceMock) Submit(ctx context.Context, params model.SubmitInquiryParams) (*model.Inquiry, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inquiry), args.Error(1)
}

func (m *InquiryServiceMock) List(ctx context.Context, inquiryType model.InquiryType) ([]*model.Inquiry, error) {
	args := m.Called(ctx, inquiryType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Inquiry), args.Error(1)
}

func (m *InquiryServiceMock) Open(ctx context.Context, id int) (*model.Inquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inquiry), args.Error(1)
}

func (m *InquiryServiceMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *InquiryServiceMock) Dashboard(ctx context.Context) (*service.Dashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Dashboard), args.Error(1)
}
