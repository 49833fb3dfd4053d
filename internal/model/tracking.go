package model

import "time"

// FetchLog is one recorded records request issued for a session
type FetchLog struct {
	ID          int64     `json:"id"`
	SessionID   string    `json:"session_id"`
	Token       uint64    `json:"token"`
	Query       string    `json:"query"`
	RecordCount int       `json:"record_count"`
	Stale       bool      `json:"stale"`
	Error       string    `json:"error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
