package views

import (
	"github.com/keepalleytrash/keepalleytrash/internal/council"
	"github.com/keepalleytrash/keepalleytrash/internal/session"
	"github.com/keepalleytrash/keepalleytrash/internal/store"
)

// Page carries the fields every template can rely on.
type Page struct {
	Title   string
	Session *session.Session
	Flash   string
	Errors  []string
}

func NewPage(title string, sess *session.Session) Page {
	return Page{Title: title, Session: sess}
}

type RegisterForm struct {
	Username     string
	Email        string
	Neighborhood string
}

type RegisterPage struct {
	Page
	Form RegisterForm
}

type LoginPage struct {
	Page
	Email string
}

type HomePage struct {
	Page
	Posts []*store.Post
}

type CommunityPage struct {
	Page
	Posts []*store.Post
}

type SubmitPostPage struct {
	Page
	Form PostForm
}

type PostForm struct {
	Title    string
	Content  string
	Category string
}

type SuggestionsPage struct {
	Page
	Suggestions []*store.Suggestion
}

type SubmitSuggestionPage struct {
	Page
	Form SuggestionForm
}

type SuggestionForm struct {
	Title       string
	Description string
	Category    string
}

type ContactPage struct {
	Page
	Form ContactForm
	Sent bool
}

type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type SubscribePage struct {
	Page
	Email             string
	Subscribed        bool
	AlreadySubscribed bool
}

// CouncilEntry pairs a report card member with a prebuilt mailto link.
type CouncilEntry struct {
	Member council.Member
	Mailto string
}

type CouncilPage struct {
	Page
	Entries []CouncilEntry
}

type AdminDashboardPage struct {
	Page
	UserCount       int64
	PostCount       int64
	SuggestionCount int64
	ContactCount    int64
	SubscriberCount int64
}

type AdminPostsPage struct {
	Page
	Posts []*store.Post
}

type AdminSubscribersPage struct {
	Page
	Subscribers []*store.Subscriber
}

type AdminContactsPage struct {
	Page
	Contacts []*store.Contact
}

type ErrorPage struct {
	Page
	Status  int
	Message string
}
