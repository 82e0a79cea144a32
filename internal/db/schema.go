package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS zone_mapping (
		subnet   TEXT PRIMARY KEY,
		cidr     TEXT NOT NULL,
		service  TEXT NOT NULL DEFAULT '',
		old_zone TEXT NOT NULL,
		new_zone TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_zone_mapping_old_zone ON zone_mapping(old_zone)`,
	`CREATE TABLE IF NOT EXISTS exception_ips (
		id         UUID PRIMARY KEY,
		subnet     TEXT NOT NULL,
		cidr       TEXT NOT NULL,
		service    TEXT NOT NULL,
		old_zone   TEXT NOT NULL DEFAULT '',
		new_zone   TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_exception_ips_service ON exception_ips(service)`,
}

// EnsureSchema creates the zone tables when they are missing. Existing
// tables are left as they are.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	for i, stmt := range schemaStatements {
		logger.DebugContext(ctx, "schema exec", "idx", i)
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	logger.DebugContext(ctx, "schema ready")
	return nil
}
