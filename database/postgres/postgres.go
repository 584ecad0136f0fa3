package postgres

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// FormatDSN builds a lib/pq URL from DB_HOST, DB_PORT, DB_USER, DB_PASSWORD,
// DB_NAME and DB_SSLMODE.
func FormatDSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD")),
		Host:   fmt.Sprintf("%s:%s", envOr("DB_HOST", "localhost"), envOr("DB_PORT", "5432")),
		Path:   os.Getenv("DB_NAME"),
	}

	q := u.Query()
	q.Set("sslmode", envOr("DB_SSLMODE", "disable"))
	u.RawQuery = q.Encode()

	return u.String()
}

func New() (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	maxOpen, _ := strconv.Atoi(envOr("DB_MAX_OPEN_CONNS", "20"))
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen / 2)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
