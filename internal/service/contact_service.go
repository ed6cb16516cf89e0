package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/keepalleytrash/keepalleytrash/internal/store"
)

type ContactService struct {
	contacts store.ContactStore
	mailer   Mailer
	notifyTo string
}

// NewContactService takes a nil mailer when outbound mail is not configured;
// submissions are then stored without a notification.
func NewContactService(contacts store.ContactStore, mailer Mailer, notifyTo string) *ContactService {
	return &ContactService{contacts: contacts, mailer: mailer, notifyTo: notifyTo}
}

// SubmitContact stores the message and sends a best-effort notification
// email. Notification failure is logged only; the submission has already
// succeeded.
func (s *ContactService) SubmitContact(
	ctx context.Context,
	name, email, subject, message string,
) (*store.Contact, error) {
	contact, err := s.contacts.CreateContact(ctx, name, email, subject, message)
	if err != nil {
		return nil, err
	}

	if s.mailer != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			body := fmt.Sprintf(
				"Name: %s\nEmail: %s\nSubject: %s\nMessage: %s\n",
				name, email, subject, message,
			)
			if err := s.mailer.SendPlain(
				ctx, s.notifyTo,
				"New Contact Form Submission: "+subject,
				body,
			); err != nil {
				log.Println("err sending contact notification:", err)
			}
		}()
	}

	return contact, nil
}

func (s *ContactService) ListContacts(ctx context.Context) ([]*store.Contact, error) {
	return s.contacts.ListContacts(ctx)
}

func (s *ContactService) CountContacts(ctx context.Context) (int64, error) {
	return s.contacts.CountContacts(ctx)
}
