package store

import (
	"database/sql"
	"log"

	assets "github.com/keepalleytrash/keepalleytrash"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// RunMigrations applies the embedded goose migrations for the given dialect
// ("sqlite" or "postgres"). The postgres adapter queries through pgxpool, so
// production callers open a short-lived database/sql handle just for this.
func RunMigrations(db *sql.DB, dialect string) {
	goose.SetBaseFS(assets.MigrationsFS)
	if err := goose.SetDialect(dialect); err != nil {
		log.Fatal(err)
	}
	if err := goose.Up(db, "migrations/"+dialect); err != nil {
		log.Fatal(err)
	}
}

func OpenPostgresForMigrations(url string) *sql.DB {
	db, err := sql.Open("pgx", url)
	if err != nil {
		log.Fatal("fatal error opening postgres for migrations:", err)
	}
	return db
}
