// Package main is the entry point for the translate Lambda function.
package main

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/openlingua/translation-backend/internal/auth"
	"github.com/openlingua/translation-backend/internal/config"
	"github.com/openlingua/translation-backend/internal/handler"
	"github.com/openlingua/translation-backend/internal/logging"
	"github.com/openlingua/translation-backend/internal/models"
	"github.com/openlingua/translation-backend/internal/ollama"
	"github.com/openlingua/translation-backend/internal/queue"
	"github.com/openlingua/translation-backend/internal/store"
)

// queueRecorder sends history events to the worker queue.
type queueRecorder struct {
	pub *queue.Publisher
}

func (r queueRecorder) Record(ctx context.Context, rec *models.HistoryRecord) error {
	return r.pub.Record(ctx, rec)
}

// directRecorder writes history records inline, for deployments without the
// worker queue.
type directRecorder struct {
	history *store.History
}

func (r directRecorder) Record(ctx context.Context, rec *models.HistoryRecord) error {
	return r.history.Put(ctx, rec)
}

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	if err := cfg.RequireJWTSecret(); err != nil {
		log.WithError(err).Fatal("configuration invalid")
	}

	ctx := context.Background()
	db, err := store.Client(ctx)
	if err != nil {
		log.WithError(err).Fatal("dynamodb client init failed")
	}

	// Left nil when OLLAMA_HOST_URL is unset; the handler fails closed per
	// request instead of crashing the cold start.
	var translator handler.Translator
	if cfg.OllamaHostURL != "" {
		translator = ollama.New(cfg.OllamaHostURL, cfg.OllamaModel)
	}

	var recorder handler.HistoryRecorder
	if cfg.HistoryQueueURL != "" {
		sqsClient, err := queue.Client(ctx)
		if err != nil {
			log.WithError(err).Fatal("sqs client init failed")
		}
		recorder = queueRecorder{pub: queue.NewPublisher(sqsClient, cfg.HistoryQueueURL)}
	} else {
		recorder = directRecorder{history: store.NewHistory(db, cfg.HistoryTable)}
	}

	tokens := auth.NewTokenService([]byte(cfg.JWTSecret), auth.TokenTTL)
	cache := store.NewCache(db, cfg.CacheTable)
	h := handler.NewTranslate(tokens, cache, translator, recorder, log)

	lambda.Start(func(ctx context.Context, event json.RawMessage) (interface{}, error) {
		// Warmup detection runs before any request processing.
		if warmup, ok := IsWarmupEvent(event); ok {
			return HandleWarmup(ctx, warmup)
		}

		var req events.APIGatewayProxyRequest
		if err := json.Unmarshal(event, &req); err != nil {
			return nil, err
		}
		return h.Handle(ctx, req)
	})
}
