package migration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

const schemaStatusActive = "active"

func activateSchemaState(ctx context.Context, db *sql.DB, schemaVersion, checksum string) error {
	version := strings.TrimSpace(schemaVersion)
	if version == "" {
		return errors.New("schema version is required for activation")
	}

	now := time.Now().UTC()
	_, err := db.ExecContext(ctx, `
		INSERT INTO schema_state (id, status, schema_version, checksum, activated_at, created_at)
		VALUES (TRUE, $1, $2, $3, $4, $4)
		ON CONFLICT (id) DO UPDATE
		SET status = EXCLUDED.status,
		    schema_version = EXCLUDED.schema_version,
		    checksum = EXCLUDED.checksum,
		    activated_at = EXCLUDED.activated_at
	`, schemaStatusActive, version, nullIfEmpty(checksum), now)
	if err != nil {
		return fmt.Errorf("activate schema state: %w", err)
	}
	return nil
}

func readSchemaState(ctx context.Context, db *sql.DB) (status, version string, err error) {
	row := db.QueryRowContext(ctx, `SELECT status, schema_version FROM schema_state WHERE id = TRUE`)
	if err := row.Scan(&status, &version); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", nil
		}
		return "", "", fmt.Errorf("read schema state: %w", err)
	}
	return status, version, nil
}

func nullIfEmpty(value string) any {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return trimmed
}
