package main

import (
	"context"
	"log"

	assets "github.com/keepalleytrash/keepalleytrash"
	"github.com/keepalleytrash/keepalleytrash/internal"
	"github.com/keepalleytrash/keepalleytrash/internal/council"
	"github.com/keepalleytrash/keepalleytrash/internal/handler"
	"github.com/keepalleytrash/keepalleytrash/internal/security"
	"github.com/keepalleytrash/keepalleytrash/internal/service"
	"github.com/keepalleytrash/keepalleytrash/internal/session"
	"github.com/keepalleytrash/keepalleytrash/internal/settings"
	"github.com/keepalleytrash/keepalleytrash/internal/store"
	"github.com/keepalleytrash/keepalleytrash/internal/views"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "modernc.org/sqlite"
)

func main() {
	settings.ReadDotenv(internal.DotEnvPath)
	settings.Settings = settings.NewSettings()

	readiness := new(handler.Readiness)
	e := setupEcho(readiness)

	backend, codec, cleanup := initBackend(context.Background())
	defer cleanup()

	reportCard, err := council.Load()
	if err != nil {
		log.Fatal(err)
	}

	var mailer service.Mailer
	if settings.Settings.MailConfigured() {
		m, err := service.NewSMTPMailer(settings.Settings)
		if err != nil {
			log.Fatal("err configuring mail client: ", err)
		}
		mailer = m
	} else {
		log.Println("mail is not configured, notifications and newsletter sending are disabled")
	}

	newsletterSvc := service.NewNewsletterService(
		backend.Newsletter, backend.Posts, reportCard, mailer,
	)
	userSvc := service.NewUserService(backend.Users, newsletterSvc)
	postSvc := service.NewPostService(backend.Posts)
	suggestionSvc := service.NewSuggestionService(backend.Suggestions)
	contactSvc := service.NewContactService(
		backend.Contacts, mailer, settings.Settings.ContactEmail,
	)

	userSvc.InitializeAdmin(context.Background(), settings.Settings)

	scheduler := service.NewScheduler()
	defer func() {
		if err := scheduler.Shutdown(); err != nil {
			log.Println("err shutting down scheduler:", err)
		}
	}()
	if !settings.Settings.IsProduction() {
		service.ScheduleSessionCleanup(scheduler, backend.Users)
	}
	scheduler.Start()

	authH := handler.NewAuthHandler(userSvc, codec)
	pageH := handler.NewPageHandler(postSvc, reportCard)
	postH := handler.NewPostHandler(postSvc)
	suggestionH := handler.NewSuggestionHandler(suggestionSvc)
	contactH := handler.NewContactHandler(contactSvc)
	newsletterH := handler.NewNewsletterHandler(newsletterSvc)
	adminH := handler.NewAdminHandler(
		adminCounter{userSvc, postSvc, suggestionSvc, contactSvc, newsletterSvc},
		newsletterSvc,
		contactSvc,
		postSvc,
	)

	router := e.Group("", handler.SessionMiddleware(codec))

	router.GET("/", pageH.GetIndexPage)
	router.GET("/welcome", handler.StaticPage("welcome", "Welcome"))
	router.GET("/about", handler.StaticPage("about", "About"))
	router.GET("/cleanup", handler.StaticPage("cleanup", "Alley Cleanups"))
	router.GET("/considerations", handler.StaticPage("considerations", "Considerations"))
	router.GET("/guidelines", handler.StaticPage("guidelines", "Community Guidelines"))
	router.GET("/council", pageH.GetCouncilPage)

	router.GET("/register", authH.GetRegisterPage, handler.AlreadyLoggedIn)
	router.POST("/register", authH.PostRegister, handler.AlreadyLoggedIn)
	router.GET("/login", authH.GetLoginPage, handler.AlreadyLoggedIn)
	router.POST("/login", authH.PostLogin, handler.AlreadyLoggedIn)
	router.GET("/logout", authH.GetLogout)

	router.GET("/home", pageH.GetHomePage, handler.RequireAuthenticated)
	router.GET("/profile", pageH.GetProfilePage, handler.RequireAuthenticated)

	router.GET("/community", postH.GetCommunityPage)
	router.GET("/community/submit", postH.GetSubmitPostPage, handler.RequireAuthenticated)
	router.POST("/community/submit", postH.PostSubmitPost, handler.RequireAuthenticated)

	router.GET("/suggestions", suggestionH.GetSuggestionsPage)
	router.GET("/suggestions/submit", suggestionH.GetSubmitSuggestionPage, handler.RequireAuthenticated)
	router.POST("/suggestions/submit", suggestionH.PostSubmitSuggestion, handler.RequireAuthenticated)

	router.GET("/contact", contactH.GetContactPage)
	router.POST("/contact", contactH.PostContact)

	router.GET("/subscribe", newsletterH.GetSubscribePage)
	router.POST("/subscribe", newsletterH.PostSubscribe)

	admin := router.Group("/admin", handler.RequireAdmin)
	admin.GET("", adminH.GetDashboardPage)
	admin.GET("/subscribers", adminH.GetSubscribersPage)
	admin.POST("/subscribers/deactivate", adminH.PostDeactivateSubscriber)
	admin.GET("/posts", adminH.GetPostsPage)
	admin.GET("/contacts", adminH.GetContactsPage)
	admin.POST("/newsletter/send", adminH.PostSendNewsletter)

	e.GET("/health", handler.GetHealth(backend, settings.Settings.Env, readiness))

	readiness.Set()
	internal.GracefulShutdown(e, settings.Settings.Port)
}

// initBackend opens the storage backend and picks the matching session
// strategy. The returned cleanup closes whatever was opened.
func initBackend(ctx context.Context) (*store.Backend, session.Codec, func()) {
	as := settings.Settings

	if as.IsProduction() {
		mdb := store.OpenPostgresForMigrations(as.PostgresURL)
		store.RunMigrations(mdb, "postgres")
		if err := mdb.Close(); err != nil {
			log.Println("err closing migration connection:", err)
		}

		pool := store.InitPostgres(ctx)
		codec := session.NewTokenCodec(
			security.TokenSecret(as.SecretKey),
			as.Domain,
			true,
			as.SessionExpires,
		)
		return store.NewPostgresBackend(pool), codec, pool.Close
	}

	rdb := store.InitSQLite(true)
	rwdb := store.InitSQLite(false)
	store.RunMigrations(rwdb, "sqlite")

	backend := store.NewSQLiteBackend(rdb, rwdb)
	hashKey, blockKey := security.DeriveKeys(as.SecretKey)
	codec := session.NewStoreCodec(
		hashKey, blockKey,
		backend.Users,
		as.Domain,
		false,
		as.SessionExpires,
	)
	cleanup := func() {
		if err := rdb.Close(); err != nil {
			log.Println("err closing read database:", err)
		}
		if err := rwdb.Close(); err != nil {
			log.Println("err closing write database:", err)
		}
	}
	return backend, codec, cleanup
}

// adminCounter aggregates the count methods the dashboard needs from the
// individual services.
type adminCounter struct {
	users       *service.UserService
	posts       *service.PostService
	suggestions *service.SuggestionService
	contacts    *service.ContactService
	newsletter  *service.NewsletterService
}

func (a adminCounter) CountUsers(ctx context.Context) (int64, error) {
	return a.users.CountUsers(ctx)
}

func (a adminCounter) CountPosts(ctx context.Context) (int64, error) {
	return a.posts.CountPosts(ctx)
}

func (a adminCounter) CountSuggestions(ctx context.Context) (int64, error) {
	return a.suggestions.CountSuggestions(ctx)
}

func (a adminCounter) CountContacts(ctx context.Context) (int64, error) {
	return a.contacts.CountContacts(ctx)
}

func (a adminCounter) CountSubscribers(ctx context.Context) (int64, error) {
	return a.newsletter.CountSubscribers(ctx)
}

func setupEcho(readiness *handler.Readiness) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = handler.ErrorHandler

	v, err := views.New()
	if err != nil {
		log.Fatal(err)
	}
	e.Renderer = v

	e.Use(
		readiness.Middleware,
		middleware.CORSWithConfig(internal.GetCORSConfig()),
		middleware.RateLimiterWithConfig(internal.GetRateLimiterConfig()),
	)

	publicFS := echo.MustSubFS(assets.PublicFS, "public")
	e.StaticFS("/static", publicFS)

	return e
}
