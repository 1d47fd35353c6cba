// Package models contains the core domain types for the translation backend.
package models

import "time"

// timestampLayout is a fixed-width UTC layout so DynamoDB sort keys order
// lexicographically. RFC3339Nano trims trailing zeros and would not.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp formats t for use as a history sort key or cache creation time.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// User is a row in the Users table. The password hash never leaves the
// server: it is stored, compared, and nothing else.
type User struct {
	Username     string `json:"username" dynamodbav:"username"`
	PasswordHash string `json:"-" dynamodbav:"password_hash"`
}

// CacheEntry is a reusable translation keyed by normalized source text and
// target language code. Last writer wins; expiry, if any, is table-level TTL.
type CacheEntry struct {
	CacheKey       string `json:"-" dynamodbav:"cache_key"`
	SourceText     string `json:"source_text" dynamodbav:"source_text"`
	TargetLanguage string `json:"target_language" dynamodbav:"target_language"`
	Translation    string `json:"translation" dynamodbav:"translation"`
	CreatedAt      string `json:"created_at" dynamodbav:"created_at"`
}

// HistoryRecord is one completed translation for one user. Partition key
// user_id, sort key timestamp. Records are append-only. The same shape is
// used as the queue message body for the asynchronous history path.
type HistoryRecord struct {
	UserID         string `json:"user_id" dynamodbav:"user_id"`
	Timestamp      string `json:"timestamp" dynamodbav:"timestamp"`
	ID             string `json:"id" dynamodbav:"id"`
	SourceText     string `json:"source_text" dynamodbav:"source_text"`
	TargetLanguage string `json:"target_language" dynamodbav:"target_language"`
	Translation    string `json:"translation" dynamodbav:"translation"`
}
