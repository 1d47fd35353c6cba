// Package handler implements the request handlers: Register, Login,
// Translate, GetHistory, and the asynchronous history worker. Handlers
// depend on narrow interfaces so cmd wiring picks the concrete stores and
// tests substitute fakes.
package handler

import (
	"context"

	"github.com/openlingua/translation-backend/internal/models"
)

// UserStore persists credential records.
type UserStore interface {
	Get(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// TranslationCache is the keyed translation cache.
type TranslationCache interface {
	Get(ctx context.Context, key string) (*models.CacheEntry, error)
	Put(ctx context.Context, entry *models.CacheEntry) error
}

// HistoryRecorder accepts one translation event. The production wiring is
// either an SQS publisher (worker persists later) or a direct store write.
type HistoryRecorder interface {
	Record(ctx context.Context, rec *models.HistoryRecord) error
}

// HistoryWriter appends history records (worker side).
type HistoryWriter interface {
	Put(ctx context.Context, rec *models.HistoryRecord) error
}

// HistoryLister reads a user's history, newest first.
type HistoryLister interface {
	ListByUser(ctx context.Context, userID string) ([]models.HistoryRecord, error)
}

// Translator calls the inference backend.
type Translator interface {
	Translate(ctx context.Context, languageName, text string) (string, error)
}

// TokenIssuer signs identity tokens (login side).
type TokenIssuer interface {
	Issue(username string) (string, error)
}

// TokenVerifier validates identity tokens and returns the username
// (translate side).
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// DeadLetterer forwards rejected queue messages for inspection.
type DeadLetterer interface {
	Send(ctx context.Context, body, reason string) error
}
