package service

import (
	"context"

	"github.com/keepalleytrash/keepalleytrash/internal/settings"

	"github.com/wneessen/go-mail"
)

type Mailer interface {
	SendHTML(ctx context.Context, to, subject, html string) error
	SendPlain(ctx context.Context, to, subject, body string) error
}

// SMTPMailer delivers through the configured SMTP relay.
type SMTPMailer struct {
	client *mail.Client
	from   string
}

func NewSMTPMailer(as *settings.AppSettings) (*SMTPMailer, error) {
	client, err := mail.NewClient(
		as.MailHost,
		mail.WithPort(as.MailPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(as.MailUsername),
		mail.WithPassword(as.MailPassword),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, err
	}
	return &SMTPMailer{client: client, from: as.MailUsername}, nil
}

func (m *SMTPMailer) SendHTML(ctx context.Context, to, subject, html string) error {
	return m.send(ctx, to, subject, mail.TypeTextHTML, html)
}

func (m *SMTPMailer) SendPlain(ctx context.Context, to, subject, body string) error {
	return m.send(ctx, to, subject, mail.TypeTextPlain, body)
}

func (m *SMTPMailer) send(
	ctx context.Context,
	to, subject string,
	contentType mail.ContentType,
	body string,
) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(contentType, body)
	return m.client.DialAndSendWithContext(ctx, msg)
}
