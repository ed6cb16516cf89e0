package testutil

import (
	"context"

	"github.com/keepalleytrash/keepalleytrash/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockNewsletterService struct {
	mock.Mock
}

func (m *MockNewsletterService) Subscribe(
	ctx context.Context,
	email string,
) (*service.SubscribeResult, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SubscribeResult), args.Error(1)
}
