package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// MaxPagesPerUser is enforced by the payment_pages_quota trigger.
const MaxPagesPerUser = 3

// quotaMessage is raised by the trigger; the gateway matches on it.
const quotaMessage = "payment_pages limit exceeded"

var schema = fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS payment_pages (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    title TEXT NOT NULL,
    company_name TEXT,
    business_name TEXT NOT NULL,
    description TEXT,
    price TEXT,
    currency TEXT,
    availability TEXT,
    industry TEXT,
    headline TEXT,
    features TEXT NOT NULL DEFAULT '[]',
    call_to_action TEXT,
    trust_signals TEXT NOT NULL DEFAULT '[]',
    faq TEXT NOT NULL DEFAULT '[]',
    colors TEXT NOT NULL DEFAULT '{}',
    template TEXT,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_payment_pages_user ON payment_pages(user_id, created_at);

CREATE TRIGGER IF NOT EXISTS payment_pages_quota
BEFORE INSERT ON payment_pages
WHEN (SELECT COUNT(*) FROM payment_pages WHERE user_id = NEW.user_id) >= %d
BEGIN
    SELECT RAISE(ABORT, '%s: at most %d pages per user');
END;
`, MaxPagesPerUser, quotaMessage, MaxPagesPerUser)

// New opens (creating if needed) the sqlite database at path and applies the schema.
func New(path string) (*sql.DB, error) {
	if path == "" {
		path = "./data/payment_pages.db"
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}
