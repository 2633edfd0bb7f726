package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"roundtimer/internal/core/model"

	_ "modernc.org/sqlite"
)

// DBFileName is the SQLite database inside the app config directory.
const DBFileName = "roundtimer.db"

const (
	keyRoundSet       = "roundSet"
	keyWorkSecondsSet = "workSecondsSet"
	keyRestSecondsSet = "restSecondsSet"
	keyMuted          = "muted"
	keyAnnounceRounds = "announceRounds"
)

// SQLiteStore keeps settings as key-value rows in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and creates when missing) the settings database.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open settings db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, "CREATE TABLE IF NOT EXISTS settings (key TEXT PRIMARY KEY, value TEXT)"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate settings db: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Load reads every known key, keeping defaults for missing rows.
func (store *SQLiteStore) Load() (model.Settings, error) {
	settings := model.DefaultSettings()
	values, err := store.values()
	if err != nil {
		return settings, err
	}

	ints := []struct {
		key    string
		target *int
	}{
		{keyRoundSet, &settings.Rounds},
		{keyWorkSecondsSet, &settings.WorkSeconds},
		{keyRestSecondsSet, &settings.RestSeconds},
	}
	for _, entry := range ints {
		raw, ok := values[entry.key]
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return model.DefaultSettings(), fmt.Errorf("parse setting %s=%q: invalid value", entry.key, raw)
		}
		*entry.target = parsed
	}

	bools := []struct {
		key    string
		target *bool
	}{
		{keyMuted, &settings.Muted},
		{keyAnnounceRounds, &settings.AnnounceRounds},
	}
	for _, entry := range bools {
		raw, ok := values[entry.key]
		if !ok {
			continue
		}
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return model.DefaultSettings(), fmt.Errorf("parse setting %s=%q: %w", entry.key, raw, err)
		}
		*entry.target = parsed
	}
	return settings, nil
}

// Save upserts every key in one transaction.
func (store *SQLiteStore) Save(settings model.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	tx, err := store.db.Begin()
	if err != nil {
		return fmt.Errorf("begin settings tx: %w", err)
	}
	rows := map[string]string{
		keyRoundSet:       strconv.Itoa(settings.Rounds),
		keyWorkSecondsSet: strconv.Itoa(settings.WorkSeconds),
		keyRestSecondsSet: strconv.Itoa(settings.RestSeconds),
		keyMuted:          strconv.FormatBool(settings.Muted),
		keyAnnounceRounds: strconv.FormatBool(settings.AnnounceRounds),
	}
	for key, value := range rows {
		if _, err := tx.Exec("INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("save setting %s: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit settings: %w", err)
	}
	return nil
}

// Close closes the database.
func (store *SQLiteStore) Close() error {
	return store.db.Close()
}

func (store *SQLiteStore) values() (map[string]string, error) {
	rows, err := store.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return nil, fmt.Errorf("query settings: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key string
		var value sql.NullString
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		if value.Valid {
			values[key] = value.String
		}
	}
	if err := rows.Err(); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	return values, nil
}
