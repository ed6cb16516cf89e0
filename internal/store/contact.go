package store

import (
	"context"
	"time"
)

type Contact struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Subject   string    `db:"subject"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

type ContactStore interface {
	CreateContact(ctx context.Context, name, email, subject, message string) (*Contact, error)
	ListContacts(context.Context) ([]*Contact, error)
	CountContacts(context.Context) (int64, error)
}
