package store

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	_ "modernc.org/sqlite"
)

var (
	userStore       *UserSQLiteStore
	postStore       *PostSQLiteStore
	suggestionStore *SuggestionSQLiteStore
	contactStore    *ContactSQLiteStore
	newsletterStore *NewsletterSQLiteStore
)

func TestMain(m *testing.M) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		log.Fatal(err)
	}

	RunMigrations(db, "sqlite")

	userStore = NewUserSQLiteStore(db, db)
	postStore = NewPostSQLiteStore(db, db)
	suggestionStore = NewSuggestionSQLiteStore(db, db)
	contactStore = NewContactSQLiteStore(db, db)
	newsletterStore = NewNewsletterSQLiteStore(db, db)
	os.Exit(m.Run())
}

func mustCreateUser(t *testing.T, username, email string) *User {
	t.Helper()
	hash, _ := bcrypt.GenerateFromPassword([]byte("testpassword"), bcrypt.DefaultCost)
	u, err := userStore.CreateUser(context.Background(), username, email, string(hash), nil)
	assert.NoError(t, err)
	return u
}

func TestCreateUser(t *testing.T) {
	t.Run("success - user is stored", func(t *testing.T) {
		// arrange
		neighborhood := "Lake Highlands"

		// act
		u, err := userStore.CreateUser(
			context.Background(),
			"alleyfan",
			"alleyfan@example.com",
			"passwordhash",
			&neighborhood,
		)

		// assert
		assert.NoError(t, err)
		assert.NotNil(t, u)
		assert.NotEqual(t, int64(0), u.ID)
		assert.Equal(t, "alleyfan", u.Username)
		assert.Equal(t, "alleyfan@example.com", u.Email)
		assert.Equal(t, "passwordhash", u.PasswordHash)
		assert.NotNil(t, u.Neighborhood)
		assert.Equal(t, neighborhood, *u.Neighborhood)
		assert.False(t, u.IsAdmin)
	})
	t.Run("failure - duplicate username", func(t *testing.T) {
		// arrange
		mustCreateUser(t, "dupuser", "dupuser@example.com")

		// act
		u, err := userStore.CreateUser(
			context.Background(), "dupuser", "other@example.com", "hash", nil,
		)

		// assert
		assert.Nil(t, u)
		assert.ErrorIs(t, err, ErrDuplicate)
	})
	t.Run("failure - duplicate email", func(t *testing.T) {
		// arrange
		mustCreateUser(t, "emailuser", "shared@example.com")

		// act
		u, err := userStore.CreateUser(
			context.Background(), "otheruser", "shared@example.com", "hash", nil,
		)

		// assert
		assert.Nil(t, u)
		assert.ErrorIs(t, err, ErrDuplicate)
	})
}

func TestReadUserByEmail(t *testing.T) {
	t.Run("success - user is returned", func(t *testing.T) {
		// arrange
		created := mustCreateUser(t, "reader", "reader@example.com")

		// act
		u, err := userStore.ReadUserByEmail(context.Background(), "reader@example.com")

		// assert
		assert.NoError(t, err)
		assert.Equal(t, created.ID, u.ID)
		assert.Equal(t, created.Username, u.Username)
	})
	t.Run("failure - unknown email", func(t *testing.T) {
		// act
		u, err := userStore.ReadUserByEmail(context.Background(), "nobody@example.com")

		// assert
		assert.Nil(t, u)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCreateAdmin(t *testing.T) {
	t.Run("success - admin flag is set", func(t *testing.T) {
		// act
		u, err := userStore.CreateAdmin(
			context.Background(), "theadmin", "admin@example.com", "hash",
		)

		// assert
		assert.NoError(t, err)
		assert.True(t, u.IsAdmin)

		exists, err := userStore.AdminExists(context.Background())
		assert.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestAuthSessions(t *testing.T) {
	t.Run("success - session resolves to user until expiry", func(t *testing.T) {
		// arrange
		u := mustCreateUser(t, "sessionuser", "sessionuser@example.com")
		expires := time.Now().UTC().Add(time.Hour)

		// act
		s, err := userStore.CreateAuthSession(context.Background(), "session-id-1", u.ID, expires)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, "session-id-1", s.AuthSessionID)

		got, err := userStore.ReadUserBySessionID(context.Background(), "session-id-1")
		assert.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
	})
	t.Run("failure - expired session is not returned", func(t *testing.T) {
		// arrange
		u := mustCreateUser(t, "expireduser", "expireduser@example.com")
		expires := time.Now().UTC().Add(-time.Minute)
		_, err := userStore.CreateAuthSession(context.Background(), "session-id-2", u.ID, expires)
		assert.NoError(t, err)

		// act
		got, err := userStore.ReadUserBySessionID(context.Background(), "session-id-2")

		// assert
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrNotFound)
	})
	t.Run("success - deleted session is not returned", func(t *testing.T) {
		// arrange
		u := mustCreateUser(t, "deleteduser", "deleteduser@example.com")
		expires := time.Now().UTC().Add(time.Hour)
		_, err := userStore.CreateAuthSession(context.Background(), "session-id-3", u.ID, expires)
		assert.NoError(t, err)

		// act
		err = userStore.DeleteAuthSession(context.Background(), "session-id-3")

		// assert
		assert.NoError(t, err)
		got, err := userStore.ReadUserBySessionID(context.Background(), "session-id-3")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrNotFound)
	})
	t.Run("success - expired sessions are cleaned up", func(t *testing.T) {
		// arrange
		u := mustCreateUser(t, "cleanupuser", "cleanupuser@example.com")
		_, err := userStore.CreateAuthSession(
			context.Background(), "session-id-4", u.ID, time.Now().UTC().Add(-time.Hour),
		)
		assert.NoError(t, err)
		_, err = userStore.CreateAuthSession(
			context.Background(), "session-id-5", u.ID, time.Now().UTC().Add(time.Hour),
		)
		assert.NoError(t, err)

		// act
		err = userStore.DeleteExpiredAuthSessions(context.Background())

		// assert
		assert.NoError(t, err)
		got, err := userStore.ReadUserBySessionID(context.Background(), "session-id-5")
		assert.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
	})
}

func TestPosts(t *testing.T) {
	t.Run("success - posts list newest first with author", func(t *testing.T) {
		// arrange
		u := mustCreateUser(t, "poster", "poster@example.com")
		first, err := postStore.CreatePost(
			context.Background(), "First post", "Alley looking great", "general", u.ID,
		)
		assert.NoError(t, err)
		second, err := postStore.CreatePost(
			context.Background(), "Second post", "Cleanup this Saturday", "cleanup", u.ID,
		)
		assert.NoError(t, err)

		// act
		posts, err := postStore.ListPosts(context.Background(), 0)

		// assert
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, len(posts), 2)
		var gotFirst, gotSecond *Post
		for _, p := range posts {
			switch p.ID {
			case first.ID:
				gotFirst = p
			case second.ID:
				gotSecond = p
			}
		}
		assert.NotNil(t, gotFirst)
		assert.NotNil(t, gotSecond)
		assert.Equal(t, "poster", gotFirst.Username)
		assert.Equal(t, "cleanup", gotSecond.Category)
	})
	t.Run("success - limit caps the result", func(t *testing.T) {
		// act
		posts, err := postStore.ListPosts(context.Background(), 1)

		// assert
		assert.NoError(t, err)
		assert.Len(t, posts, 1)
	})
	t.Run("success - count matches", func(t *testing.T) {
		// act
		count, err := postStore.CountPosts(context.Background())
		posts, listErr := postStore.ListPosts(context.Background(), 0)

		// assert
		assert.NoError(t, err)
		assert.NoError(t, listErr)
		assert.Equal(t, int64(len(posts)), count)
	})
}

func TestSuggestions(t *testing.T) {
	t.Run("success - suggestion defaults to pending", func(t *testing.T) {
		// arrange
		u := mustCreateUser(t, "suggester", "suggester@example.com")

		// act
		s, err := suggestionStore.CreateSuggestion(
			context.Background(), "More lighting", "Dark alleys invite dumping", "safety", u.ID,
		)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, "pending", s.Status)

		suggestions, err := suggestionStore.ListSuggestions(context.Background())
		assert.NoError(t, err)
		assert.NotEmpty(t, suggestions)
		assert.Equal(t, "suggester", suggestions[0].Username)
	})
}

func TestContacts(t *testing.T) {
	t.Run("success - contact message is stored", func(t *testing.T) {
		// act
		c, err := contactStore.CreateContact(
			context.Background(),
			"Jane Neighbor", "jane@example.com", "Service cut", "Please keep our alley pickup",
		)

		// assert
		assert.NoError(t, err)
		assert.NotEqual(t, int64(0), c.ID)

		count, err := contactStore.CountContacts(context.Background())
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, count, int64(1))
	})
}

func TestNewsletterSubscription(t *testing.T) {
	t.Run("success - first subscribe creates, second is a no-op", func(t *testing.T) {
		// act
		created, err := newsletterStore.SubscribeEmail(context.Background(), "sub@example.com")
		again, errAgain := newsletterStore.SubscribeEmail(context.Background(), "sub@example.com")

		// assert
		assert.NoError(t, err)
		assert.True(t, created)
		assert.NoError(t, errAgain)
		assert.False(t, again)
	})
	t.Run("success - deactivated subscriber is reactivated on subscribe", func(t *testing.T) {
		// arrange
		created, err := newsletterStore.SubscribeEmail(context.Background(), "comeback@example.com")
		assert.NoError(t, err)
		assert.True(t, created)
		assert.NoError(t, newsletterStore.DeactivateSubscriber(context.Background(), "comeback@example.com"))

		// act
		again, err := newsletterStore.SubscribeEmail(context.Background(), "comeback@example.com")

		// assert
		assert.NoError(t, err)
		assert.False(t, again)

		subscribers, err := newsletterStore.ListSubscribers(context.Background())
		assert.NoError(t, err)
		var found bool
		for _, s := range subscribers {
			if s.Email == "comeback@example.com" {
				found = true
				assert.True(t, s.IsActive)
			}
		}
		assert.True(t, found)
	})
	t.Run("success - deactivated subscriber leaves the active list", func(t *testing.T) {
		// arrange
		_, err := newsletterStore.SubscribeEmail(context.Background(), "leaver@example.com")
		assert.NoError(t, err)

		// act
		err = newsletterStore.DeactivateSubscriber(context.Background(), "leaver@example.com")

		// assert
		assert.NoError(t, err)
		subscribers, listErr := newsletterStore.ListSubscribers(context.Background())
		assert.NoError(t, listErr)
		for _, s := range subscribers {
			assert.NotEqual(t, "leaver@example.com", s.Email)
		}
	})
}
