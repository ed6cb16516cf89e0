package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"syscall"
	"time"

	"github.com/keepalleytrash/keepalleytrash/internal/settings"
	"github.com/keepalleytrash/keepalleytrash/internal/store"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

// NewsletterSubscriber is the slice of the newsletter service registration
// needs for its side effect.
type NewsletterSubscriber interface {
	Subscribe(ctx context.Context, email string) (*SubscribeResult, error)
}

type UserService struct {
	users      store.UserStore
	newsletter NewsletterSubscriber
}

func NewUserService(users store.UserStore, newsletter NewsletterSubscriber) *UserService {
	return &UserService{users: users, newsletter: newsletter}
}

// Register creates the user and, on success, subscribes the email to the
// newsletter as a detached best-effort side effect. The side effect runs
// outside the user insert: its failure is logged and never observed by the
// caller, and it cannot roll the user back.
//
// A duplicate username or email surfaces as store.ErrDuplicate without
// revealing which field collided.
func (s *UserService) Register(
	ctx context.Context,
	username, email, password string,
	neighborhood *string,
) (*store.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u, err := s.users.CreateUser(ctx, username, email, string(hash), neighborhood)
	if err != nil {
		return nil, err
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if _, err := s.newsletter.Subscribe(ctx, email); err != nil {
			log.Printf("err subscribing %s to newsletter after registration: %v", email, err)
		}
	}()

	return u, nil
}

// Authenticate resolves the user for a login attempt. An unknown email and a
// wrong password both return ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*store.User, error) {
	u, err := s.users.ReadUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*store.User, error) {
	return s.users.ReadUserByEmail(ctx, email)
}

func (s *UserService) CountUsers(ctx context.Context) (int64, error) {
	return s.users.CountUsers(ctx)
}

// InitializeAdmin makes sure an admin account exists. Credentials come from
// the environment when provided, otherwise from an interactive prompt.
func (s *UserService) InitializeAdmin(ctx context.Context, as *settings.AppSettings) {
	exists, err := s.users.AdminExists(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if exists {
		return
	}

	username := as.AdminUsername
	email := as.AdminEmail
	password := as.AdminPassword

	if username == "" || email == "" || password == "" {
		fmt.Println("Create an admin user")
		fmt.Print("Username: ")
		if _, err := fmt.Scanln(&username); err != nil {
			log.Fatal(err)
		}
		fmt.Print("Email: ")
		if _, err := fmt.Scanln(&email); err != nil {
			log.Fatal(err)
		}
		fmt.Print("Password: ")
		passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println()
		password = string(passwordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	if _, err := s.users.CreateAdmin(ctx, username, email, string(hash)); err != nil {
		log.Fatal(err)
	}
	log.Println("admin user created:", username)
}
