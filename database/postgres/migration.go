package postgres

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS registrations (
		id                    VARCHAR(64)  PRIMARY KEY,
		competition_id        VARCHAR(64)  NOT NULL,
		competition_name      TEXT         NOT NULL DEFAULT '',
		nama                  TEXT         NOT NULL,
		gender                VARCHAR(16)  NOT NULL,
		sabuk                 VARCHAR(32)  NOT NULL,
		tempat_tanggal_lahir  TEXT         NOT NULL,
		dojang                TEXT         NOT NULL,
		berat                 VARCHAR(16)  NOT NULL,
		tinggi                VARCHAR(16)  NOT NULL,
		kategori              TEXT         NOT NULL,
		kelas                 VARCHAR(16)  NOT NULL,
		order_jersey          BOOLEAN      NOT NULL DEFAULT FALSE,
		jersey_size           VARCHAR(8),
		email                 TEXT,
		whatsapp              VARCHAR(32),
		receipt_url           TEXT,
		registered_at         TIMESTAMPTZ  NOT NULL,
		created_at            TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		updated_at            TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_registrations_competition
		ON registrations (competition_id, registered_at DESC)`,
}

// Migrate creates the tables the service needs. Every statement is
// idempotent, so it runs on each start.
func Migrate(db *sqlx.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	return nil
}
