package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/openlingua/translation-backend/internal/apigw"
	"github.com/openlingua/translation-backend/internal/language"
	"github.com/openlingua/translation-backend/internal/models"
	"github.com/openlingua/translation-backend/internal/store"
)

type translateRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"target_lang"`
}

type translateResponse struct {
	Translation string `json:"translation"`
	Source      string `json:"source"`
}

// Translate runs the core pipeline: authenticate, normalize, check the
// cache, call inference, persist best-effort, respond.
type Translate struct {
	tokens     TokenVerifier
	cache      TranslationCache
	translator Translator
	history    HistoryRecorder
	log        *logrus.Logger
	now        func() time.Time
}

// NewTranslate wires the pipeline. translator may be nil when the inference
// endpoint is not configured; the handler then fails closed per request.
func NewTranslate(tokens TokenVerifier, cache TranslationCache, translator Translator, history HistoryRecorder, log *logrus.Logger) *Translate {
	return &Translate{
		tokens:     tokens,
		cache:      cache,
		translator: translator,
		history:    history,
		log:        log,
		now:        time.Now,
	}
}

func (h *Translate) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			h.log.WithField("panic", r).Error("translate: fatal error")
			resp = apigw.Error(http.StatusInternalServerError, "Fatal server error")
			err = nil
		}
	}()

	// The auth gate runs before any other request parsing.
	token := apigw.BearerToken(req)
	if token == "" {
		return apigw.Error(http.StatusUnauthorized, "Unauthorized"), nil
	}
	username, verifyErr := h.tokens.Verify(token)
	if verifyErr != nil {
		h.log.WithError(verifyErr).Warn("translate: token rejected")
		return apigw.Error(http.StatusUnauthorized, "Invalid or expired token"), nil
	}

	// Deployment misconfiguration fails closed.
	if h.translator == nil {
		return apigw.Error(http.StatusInternalServerError, "OLLAMA_HOST_URL not set"), nil
	}

	var body translateRequest
	if err := apigw.DecodeBody(req.Body, &body); err != nil {
		return apigw.Error(http.StatusBadRequest, "Invalid JSON body"), nil
	}
	if body.Text == "" || body.TargetLang == "" {
		return apigw.Error(http.StatusBadRequest, "Missing text or target_lang"), nil
	}

	code := language.Normalize(body.TargetLang)
	languageName, err := language.Name(code)
	if err != nil {
		return apigw.Error(http.StatusBadRequest, "Unsupported target language: "+code), nil
	}

	key := store.CacheKey(body.Text, code)
	if entry, err := h.cache.Get(ctx, key); err == nil {
		// A hit is a complete short-circuit: no inference, no writes.
		return apigw.Respond(http.StatusOK, translateResponse{
			Translation: entry.Translation,
			Source:      "cache",
		}), nil
	} else if !errors.Is(err, store.ErrNotFound) {
		// Caching is best-effort; a broken cache must not fail the request.
		h.log.WithError(err).Error("translate: cache read failed, treating as miss")
	}

	translation, err := h.translator.Translate(ctx, languageName, body.Text)
	if err != nil {
		h.log.WithError(err).Error("translate: inference call failed")
		return apigw.Error(http.StatusServiceUnavailable, "Ollama unreachable: "+err.Error()), nil
	}

	now := h.now()
	if err := h.cache.Put(ctx, &models.CacheEntry{
		CacheKey:       key,
		SourceText:     body.Text,
		TargetLanguage: code,
		Translation:    translation,
		CreatedAt:      models.Timestamp(now),
	}); err != nil {
		h.log.WithError(err).Error("translate: cache write failed")
	}

	if err := h.history.Record(ctx, &models.HistoryRecord{
		UserID:         username,
		Timestamp:      models.Timestamp(now),
		ID:             uuid.NewString(),
		SourceText:     body.Text,
		TargetLanguage: code,
		Translation:    translation,
	}); err != nil {
		h.log.WithError(err).WithField("username", username).Error("translate: history record failed")
	}

	return apigw.Respond(http.StatusOK, translateResponse{
		Translation: translation,
		Source:      "ollama",
	}), nil
}
