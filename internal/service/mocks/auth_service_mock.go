package mocks

import (
	"context"

	"blackeagles/internal/session"

	"github.com/stretchr/testify/mock"
)

type AuthServiceMock struct {
	mock.Mock
}

func NewAuthServiceMock() *AuthServiceMock {
	return &AuthServiceMock{}
}

func (m *AuthServiceMock) Login(ctx context.Context, username, password string) (*session.Session, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *AuthServiceMock) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *AuthServiceMock) Authorized(ctx context.Context, token string) bool {
	args := m.Called(ctx, token)
	return args.Bool(0)
}
