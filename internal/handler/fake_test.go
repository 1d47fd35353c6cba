package handler

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/openlingua/translation-backend/internal/models"
	"github.com/openlingua/translation-backend/internal/store"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeUsers struct {
	users     map[string]*models.User
	getErr    error
	createErr error
	created   []*models.User
}

func (f *fakeUsers) Get(_ context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	user, ok := f.users[username]
	if !ok {
		return nil, store.ErrNotFound
	}
	return user, nil
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.users == nil {
		f.users = map[string]*models.User{}
	}
	f.users[user.Username] = user
	f.created = append(f.created, user)
	return nil
}

type fakeCache struct {
	entries map[string]*models.CacheEntry
	getErr  error
	putErr  error
	puts    []*models.CacheEntry
}

func (f *fakeCache) Get(_ context.Context, key string) (*models.CacheEntry, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	entry, ok := f.entries[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return entry, nil
}

func (f *fakeCache) Put(_ context.Context, entry *models.CacheEntry) error {
	if f.putErr != nil {
		return f.putErr
	}
	if f.entries == nil {
		f.entries = map[string]*models.CacheEntry{}
	}
	f.entries[entry.CacheKey] = entry
	f.puts = append(f.puts, entry)
	return nil
}

type fakeTranslator struct {
	result  string
	err     error
	calls   int
	panicOn bool
}

func (f *fakeTranslator) Translate(_ context.Context, languageName, text string) (string, error) {
	f.calls++
	if f.panicOn {
		panic("translator blew up")
	}
	if f.err != nil {
		return "", f.err
	}
	return f.result, nil
}

type fakeRecorder struct {
	records []*models.HistoryRecord
	err     error
}

func (f *fakeRecorder) Record(_ context.Context, rec *models.HistoryRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, rec)
	return nil
}

type fakeWriter struct {
	records []*models.HistoryRecord
	failOn  func(rec *models.HistoryRecord) error
}

func (f *fakeWriter) Put(_ context.Context, rec *models.HistoryRecord) error {
	if f.failOn != nil {
		if err := f.failOn(rec); err != nil {
			return err
		}
	}
	f.records = append(f.records, rec)
	return nil
}

type fakeLister struct {
	records []models.HistoryRecord
	err     error
}

func (f *fakeLister) ListByUser(_ context.Context, userID string) ([]models.HistoryRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.records == nil {
		return []models.HistoryRecord{}, nil
	}
	return f.records, nil
}

type fakeDeadLetter struct {
	bodies  []string
	reasons []string
	err     error
}

func (f *fakeDeadLetter) Send(_ context.Context, body, reason string) error {
	if f.err != nil {
		return f.err
	}
	f.bodies = append(f.bodies, body)
	f.reasons = append(f.reasons, reason)
	return nil
}
