package store

import (
	"context"
	"time"
)

type Subscriber struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	SubscribedAt time.Time `db:"subscribed_at"`
	IsActive     bool      `db:"is_active"`
}

type NewsletterStore interface {
	// SubscribeEmail is idempotent. It reports created=false when the email
	// was already on the list; an inactive subscriber is reactivated.
	SubscribeEmail(ctx context.Context, email string) (created bool, err error)
	ListSubscribers(context.Context) ([]*Subscriber, error)
	DeactivateSubscriber(ctx context.Context, email string) error
	CountSubscribers(context.Context) (int64, error)
}
