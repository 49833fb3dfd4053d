package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"go-records-dashboard/internal/model"
)

var db *sql.DB

// ErrNotInitialized is returned when InitDB has not been called
var ErrNotInitialized = errors.New("store not initialized")

// Initialize DB connection
func InitDB(dbPath string) error {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}
	// sqlite serializes writers; one connection keeps :memory: databases shared
	conn.SetMaxOpenConns(1)

	// Create tables if not exists
	preferencesTable := `
	CREATE TABLE IF NOT EXISTS preferences (
		session_id TEXT NOT NULL,
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		updated_at DATETIME,
		PRIMARY KEY (session_id, key)
	);
	`
	fetchLogTable := `
	CREATE TABLE IF NOT EXISTS fetch_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT,
		token INTEGER,
		query TEXT,
		record_count INTEGER,
		stale INTEGER,
		error_message TEXT,
		created_at DATETIME
	);
	`

	if _, err := conn.Exec(preferencesTable); err != nil {
		conn.Close()
		return fmt.Errorf("create preferences table: %w", err)
	}
	if _, err := conn.Exec(fetchLogTable); err != nil {
		conn.Close()
		return fmt.Errorf("create fetch_log table: %w", err)
	}

	db = conn
	return nil
}

// Close releases the database
func Close() error {
	if db == nil {
		return nil
	}
	err := db.Close()
	db = nil
	return err
}

// GetPreference returns the stored value, or "" when the key was never set
func GetPreference(sessionID, key string) (string, error) {
	if db == nil {
		return "", ErrNotInitialized
	}

	var value string
	err := db.QueryRow(`SELECT value FROM preferences WHERE session_id = ? AND key = ?`, sessionID, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetPreference upserts a preference
func SetPreference(sessionID, key, value string) error {
	if db == nil {
		return ErrNotInitialized
	}

	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO preferences (session_id, key, value, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(session_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		sessionID, key, value, now)
	return err
}

// Preferences is the key-value view of one session's stored preferences
type Preferences struct {
	SessionID string
}

// Get reads key for the session
func (p Preferences) Get(key string) (string, error) {
	return GetPreference(p.SessionID, key)
}

// Set writes key for the session
func (p Preferences) Set(key, value string) error {
	return SetPreference(p.SessionID, key, value)
}

// SaveFetchLog records one records request
func SaveFetchLog(entry model.FetchLog) error {
	if db == nil {
		return ErrNotInitialized
	}

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := db.Exec(`INSERT INTO fetch_log (session_id, token, query, record_count, stale, error_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.SessionID, int64(entry.Token), entry.Query, entry.RecordCount, entry.Stale, entry.Error, createdAt)
	return err
}

// GetFetchLogs returns the newest fetches of a session first
func GetFetchLogs(sessionID string, limit int) ([]model.FetchLog, error) {
	if db == nil {
		return nil, ErrNotInitialized
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.Query(`SELECT id, session_id, token, query, record_count, stale, error_message, created_at
		FROM fetch_log WHERE session_id = ? ORDER BY id DESC LIMIT ?`, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []model.FetchLog{}
	for rows.Next() {
		var entry model.FetchLog
		var token int64
		if err := rows.Scan(&entry.ID, &entry.SessionID, &token, &entry.Query, &entry.RecordCount,
			&entry.Stale, &entry.Error, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entry.Token = uint64(token)
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}
