package service

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"
	"time"

	"github.com/keepalleytrash/keepalleytrash/internal/council"
	"github.com/keepalleytrash/keepalleytrash/internal/store"

	"github.com/google/uuid"
)

// SubscribeResult distinguishes a fresh subscription from an email that was
// already on the list.
type SubscribeResult struct {
	Email             string
	AlreadySubscribed bool
}

// SendReport summarizes one newsletter batch.
type SendReport struct {
	BatchID   string
	Attempted int
	Sent      int
	Failed    []string
}

type NewsletterService struct {
	newsletter store.NewsletterStore
	posts      store.PostStore
	reportCard *council.ReportCard
	mailer     Mailer
}

func NewNewsletterService(
	newsletter store.NewsletterStore,
	posts store.PostStore,
	reportCard *council.ReportCard,
	mailer Mailer,
) *NewsletterService {
	return &NewsletterService{
		newsletter: newsletter,
		posts:      posts,
		reportCard: reportCard,
		mailer:     mailer,
	}
}

// Subscribe is idempotent: subscribing an email twice succeeds and reports
// AlreadySubscribed on the second call.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (*SubscribeResult, error) {
	created, err := s.newsletter.SubscribeEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &SubscribeResult{Email: email, AlreadySubscribed: !created}, nil
}

func (s *NewsletterService) Subscribers(ctx context.Context) ([]*store.Subscriber, error) {
	return s.newsletter.ListSubscribers(ctx)
}

func (s *NewsletterService) Deactivate(ctx context.Context, email string) error {
	return s.newsletter.DeactivateSubscriber(ctx, email)
}

func (s *NewsletterService) CountSubscribers(ctx context.Context) (int64, error) {
	return s.newsletter.CountSubscribers(ctx)
}

// GenerateHTML builds the newsletter body from recent community posts and the
// council report card.
func (s *NewsletterService) GenerateHTML(ctx context.Context) (string, error) {
	posts, err := s.posts.ListPosts(ctx, 5)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("<html><body style=\"font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;\">\n")
	b.WriteString("<h1 style=\"color: #2c5f2d;\">Keep Alley Trash Newsletter</h1>\n")
	b.WriteString(fmt.Sprintf("<p>%s</p>\n", time.Now().Format("January 2, 2006")))

	b.WriteString("<h2>Recent Community Posts</h2>\n")
	if len(posts) == 0 {
		b.WriteString("<p>No recent posts. Be the first to share an update!</p>\n")
	}
	for _, p := range posts {
		b.WriteString(fmt.Sprintf(
			"<div style=\"margin-bottom: 16px;\"><h3>%s</h3><p>%s</p><p style=\"color: #666;\">Posted by %s</p></div>\n",
			htmlEscape(p.Title), htmlEscape(p.Content), htmlEscape(p.Username),
		))
	}

	b.WriteString("<h2>Council Report Card</h2>\n")
	for _, m := range s.reportCard.All() {
		b.WriteString(fmt.Sprintf(
			"<div style=\"margin-bottom: 12px;\"><strong>%s</strong> (District %d): %s</div>\n",
			htmlEscape(m.Name), m.District, htmlEscape(m.StatusLabel),
		))
	}

	b.WriteString("<h2>Take Action</h2>\n")
	b.WriteString("<ul>\n")
	b.WriteString("<li>Email your council member and demand they oppose alley service cuts</li>\n")
	b.WriteString("<li>Share your alley story on the community board</li>\n")
	b.WriteString("<li>Forward this newsletter to a neighbor</li>\n")
	b.WriteString("</ul>\n")
	b.WriteString("</body></html>\n")
	return b.String(), nil
}

// Send delivers the newsletter to every active subscriber. Individual
// delivery failures are collected and do not stop the batch.
func (s *NewsletterService) Send(ctx context.Context, subject, html string) (*SendReport, error) {
	if s.mailer == nil {
		return nil, fmt.Errorf("mail is not configured")
	}

	subscribers, err := s.newsletter.ListSubscribers(ctx)
	if err != nil {
		return nil, err
	}

	report := &SendReport{
		BatchID:   uuid.NewString(),
		Attempted: len(subscribers),
	}
	for _, sub := range subscribers {
		if err := s.mailer.SendHTML(ctx, sub.Email, subject, html); err != nil {
			log.Printf("err sending newsletter batch %s to %s: %v", report.BatchID, sub.Email, err)
			report.Failed = append(report.Failed, sub.Email)
			continue
		}
		report.Sent++
	}
	return report, nil
}

func htmlEscape(s string) string {
	return html.EscapeString(s)
}
