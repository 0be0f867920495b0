package database

import (
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// Config holds database configuration
type Config struct {
	Path string
}

// schema creates the chart store. The table is rebuilt wholesale on every
// dataset load, so there is no migration history to track.
const schema = `
	CREATE TABLE IF NOT EXISTS "打球記録" (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		batter TEXT NOT NULL,
		pitch_type TEXT NOT NULL,
		hit_type TEXT NOT NULL,
		memo TEXT NOT NULL,
		game TEXT NOT NULL,
		balls INTEGER,
		strikes INTEGER,
		x REAL NOT NULL,
		y REAL NOT NULL,
		color TEXT NOT NULL,
		symbol TEXT NOT NULL,
		label TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_batter ON "打球記録"(batter);
	CREATE INDEX IF NOT EXISTS idx_game ON "打球記録"(game);
	CREATE INDEX IF NOT EXISTS idx_hit_type ON "打球記録"(hit_type);
	CREATE INDEX IF NOT EXISTS idx_pitch_type ON "打球記録"(pitch_type);
`

// Open opens the chart store and creates its schema. The default path is
// the in-memory database; every sqlite :memory: connection gets its own
// database, so the pool is pinned to a single connection.
func Open(cfg Config) (*sql.DB, error) {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	logrus.Infof("[Database] Store initialized: %s", path)
	return db, nil
}

// Transaction executes a function within a database transaction
func Transaction(db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
