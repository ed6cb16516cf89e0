package settings

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var Settings *AppSettings

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// AppSettings is loaded once at startup. KAT_ENV selects both the storage
// backend (sqlite vs postgres) and the session strategy (store-backed vs
// signed token).
type AppSettings struct {
	Env            string        `env:"KAT_ENV" envDefault:"development"`
	Domain         string        `env:"KAT_DOMAIN" envDefault:"localhost"`
	Port           string        `env:"KAT_PORT" envDefault:":8080"`
	SecretKey      string        `env:"KAT_SECRET_KEY" envDefault:"dev-secret-key-change-in-production"`
	SQLiteDatabase string        `env:"KAT_DB_PATH" envDefault:"file:.///keepalleytrash.db"`
	PostgresURL    string        `env:"KAT_POSTGRES_URL"`
	SessionExpires time.Duration `env:"KAT_SESSION_EXPIRES" envDefault:"24h"`

	AdminUsername string `env:"KAT_ADMIN_USERNAME"`
	AdminEmail    string `env:"KAT_ADMIN_EMAIL"`
	AdminPassword string `env:"KAT_ADMIN_PASSWORD"`

	MailHost     string `env:"KAT_MAIL_HOST"`
	MailPort     int    `env:"KAT_MAIL_PORT" envDefault:"587"`
	MailUsername string `env:"KAT_MAIL_USERNAME"`
	MailPassword string `env:"KAT_MAIL_PASSWORD"`
	ContactEmail string `env:"KAT_CONTACT_EMAIL" envDefault:"info@keepalleytrash.com"`
}

func NewSettings() *AppSettings {
	settings := new(AppSettings)
	if err := env.Parse(settings); err != nil {
		log.Fatal("err parsing settings from environment: ", err)
	}
	if !strings.HasPrefix(settings.Port, ":") {
		settings.Port = ":" + settings.Port
	}
	if settings.IsProduction() && settings.PostgresURL == "" {
		log.Fatal("KAT_POSTGRES_URL is required in production")
	}
	return settings
}

// ReadDotenv loads a dotenv file if one exists. A missing file is fine, the
// environment may be set externally.
func ReadDotenv(path string) {
	_ = godotenv.Load(path)
}

func (as *AppSettings) IsProduction() bool {
	return as.Env == EnvProduction
}

func (as *AppSettings) BaseURL() string {
	if as.Domain == "localhost" {
		return fmt.Sprintf("http://%s%s", as.Domain, as.Port)
	}
	return fmt.Sprintf("https://%s", as.Domain)
}

func (as *AppSettings) MailConfigured() bool {
	return as.MailHost != "" && as.MailUsername != "" && as.MailPassword != ""
}

func (as *AppSettings) SQLiteDbString(readonly bool) string {
	params := make(url.Values)
	params.Add("_journal_mode", "WAL")
	params.Add("_busy_timeout", "5000")
	params.Add("_synchronous", "NORMAL")
	params.Add("_foreign_keys", "ON")
	if readonly {
		params.Add("mode", "ro")
	} else {
		params.Add("_txlock", "IMMEDIATE")
		params.Add("mode", "rwc")
	}

	return as.SQLiteDatabase + "?" + params.Encode()
}
