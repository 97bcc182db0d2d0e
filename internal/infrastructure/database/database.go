package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is ensured at connect time, the same way the service ensures its
// bucket: idempotent, no external migration step required for a fresh install.
const schema = `
CREATE TABLE IF NOT EXISTS media_assets (
	id                   UUID PRIMARY KEY,
	owner_id             TEXT NOT NULL,
	owner_context_id     TEXT,
	asset_type           TEXT NOT NULL,
	purpose              TEXT NOT NULL,
	storage_key          TEXT NOT NULL,
	thumbnail_key        TEXT NOT NULL,
	declared_mime_type   TEXT NOT NULL,
	detected_mime_type   TEXT NOT NULL,
	original_byte_size   BIGINT NOT NULL,
	sanitized_byte_size  BIGINT NOT NULL,
	width                INTEGER,
	height               INTEGER,
	admission_status     TEXT NOT NULL CHECK (admission_status IN ('PENDING', 'APPROVED', 'NEEDS_REVIEW', 'REJECTED')),
	admission_reason     TEXT,
	admission_confidence DOUBLE PRECISION,
	metadata_stripped    BOOLEAN NOT NULL CHECK (metadata_stripped),
	created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	deleted_at           TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS media_assets_owner_idx ON media_assets (owner_id) WHERE deleted_at IS NULL;
CREATE INDEX IF NOT EXISTS media_assets_status_idx ON media_assets (admission_status);

CREATE TABLE IF NOT EXISTS entity_representatives (
	principal_id TEXT NOT NULL,
	entity_id    TEXT NOT NULL,
	verified     BOOLEAN NOT NULL DEFAULT FALSE,
	PRIMARY KEY (principal_id, entity_id)
);
`

type Database struct {
	QueryTimeout time.Duration
	Pool         *pgxpool.Pool
}

func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.URI)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()

		return nil, err
	}

	db := &Database{
		Pool:         pool,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := db.initSchema(); err != nil {
		pool.Close()

		return nil, err
	}

	return db, nil
}

func (db *Database) initSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	_, err := db.Pool.Exec(ctx, schema)

	return err
}

func (db *Database) Stop() error {
	db.Pool.Close()

	return nil
}
