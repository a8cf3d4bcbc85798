package migration

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
)

func latestVersion() (uint, error) {
	names, err := upMigrationNames()
	if err != nil {
		return 0, err
	}

	var max uint
	for _, name := range names {
		version, ok := parseVersion(name)
		if !ok {
			return 0, fmt.Errorf("invalid migration filename: %s", name)
		}
		if version > max {
			max = version
		}
	}
	if max == 0 {
		return 0, errors.New("no embedded migrations found")
	}
	return max, nil
}

// migrationsChecksum hashes the embedded up-migrations in name order so the
// serve gate can detect a binary running against a foreign schema.
func migrationsChecksum() (string, error) {
	names, err := upMigrationNames()
	if err != nil {
		return "", err
	}
	sort.Strings(names)

	hasher := sha256.New()
	for _, name := range names {
		content, err := embeddedMigrations.ReadFile(migrationsDir + "/" + name)
		if err != nil {
			return "", fmt.Errorf("read migration %s: %w", name, err)
		}
		_, _ = hasher.Write([]byte(name))
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.Write(content)
		_, _ = hasher.Write([]byte{0})
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

func upMigrationNames() ([]string, error) {
	entries, err := fs.ReadDir(embeddedMigrations, migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.TrimSpace(entry.Name())
		if strings.HasSuffix(name, ".up.sql") {
			names = append(names, name)
		}
	}
	return names, nil
}

func parseVersion(name string) (uint, bool) {
	parts := strings.SplitN(name, "_", 2)
	if len(parts) == 0 {
		return 0, false
	}
	parsed, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(parsed), true
}
