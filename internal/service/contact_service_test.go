package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/keepalleytrash/keepalleytrash/internal/service"
	"github.com/keepalleytrash/keepalleytrash/internal/store"
	"github.com/keepalleytrash/keepalleytrash/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockContactStore struct {
	mock.Mock
}

func (m *mockContactStore) CreateContact(
	ctx context.Context,
	name, email, subject, message string,
) (*store.Contact, error) {
	args := m.Called(ctx, name, email, subject, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Contact), args.Error(1)
}

func (m *mockContactStore) ListContacts(ctx context.Context) ([]*store.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.Contact), args.Error(1)
}

func (m *mockContactStore) CountContacts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestContactService_SubmitContact(t *testing.T) {
	t.Run("success - message is stored and notification sent", func(t *testing.T) {
		// arrange
		mockStore := new(mockContactStore)
		mockStore.On(
			"CreateContact",
			mock.Anything, "Jane Neighbor", "jane@example.com", "Service cut", "Keep our pickup",
		).Return(&store.Contact{ID: 1}, nil)
		sent := make(chan struct{})
		mailer := new(testutil.MockMailer)
		mailer.On(
			"SendPlain",
			mock.Anything, "info@keepalleytrash.com",
			"New Contact Form Submission: Service cut",
			mock.Anything,
		).Run(func(mock.Arguments) { close(sent) }).Return(nil)
		svc := service.NewContactService(mockStore, mailer, "info@keepalleytrash.com")

		// act
		contact, err := svc.SubmitContact(
			context.Background(),
			"Jane Neighbor", "jane@example.com", "Service cut", "Keep our pickup",
		)

		// assert
		assert.NoError(t, err)
		assert.NotNil(t, contact)
		select {
		case <-sent:
		case <-time.After(2 * time.Second):
			t.Fatal("notification was never sent")
		}
	})
	t.Run("success - without a mailer the message is still stored", func(t *testing.T) {
		// arrange
		mockStore := new(mockContactStore)
		mockStore.On(
			"CreateContact",
			mock.Anything, "Jane Neighbor", "jane@example.com", "Subject", "Message",
		).Return(&store.Contact{ID: 2}, nil)
		svc := service.NewContactService(mockStore, nil, "info@keepalleytrash.com")

		// act
		contact, err := svc.SubmitContact(
			context.Background(), "Jane Neighbor", "jane@example.com", "Subject", "Message",
		)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, int64(2), contact.ID)
	})
	t.Run("failure - store failure skips the notification", func(t *testing.T) {
		// arrange
		mockStore := new(mockContactStore)
		mockStore.On(
			"CreateContact",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		).Return(nil, assert.AnError)
		mailer := new(testutil.MockMailer)
		svc := service.NewContactService(mockStore, mailer, "info@keepalleytrash.com")

		// act
		contact, err := svc.SubmitContact(
			context.Background(), "Jane Neighbor", "jane@example.com", "Subject", "Message",
		)

		// assert
		assert.Nil(t, contact)
		assert.Error(t, err)
		mailer.AssertNotCalled(
			t, "SendPlain",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		)
	})
}
