package migration

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Gate refuses to serve against a database whose schema was never migrated
// or was migrated by a binary with a different embedded migration set.
func Gate(conn *gorm.DB, log *zap.Logger) error {
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	status, version, err := readSchemaState(ctx, sqlDB)
	if err != nil {
		return err
	}
	if status != schemaStatusActive {
		return fmt.Errorf("schema is not active (status=%q); run `lodgewise migrate` first", status)
	}

	latest, err := latestVersion()
	if err != nil {
		return err
	}
	expected := fmt.Sprintf("%d", latest)
	if version != expected {
		return fmt.Errorf("schema version %s does not match embedded version %s; run `lodgewise migrate`", version, expected)
	}

	log.Info("schema gate passed", zap.String("schema_version", version))
	return nil
}
