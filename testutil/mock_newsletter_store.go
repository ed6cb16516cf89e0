package testutil

import (
	"context"

	"github.com/keepalleytrash/keepalleytrash/internal/store"

	"github.com/stretchr/testify/mock"
)

type MockNewsletterStore struct {
	mock.Mock
}

func (m *MockNewsletterStore) SubscribeEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockNewsletterStore) ListSubscribers(ctx context.Context) ([]*store.Subscriber, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.Subscriber), args.Error(1)
}

func (m *MockNewsletterStore) DeactivateSubscriber(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockNewsletterStore) CountSubscribers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
