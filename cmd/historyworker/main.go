// Package main is the entry point for the asynchronous history worker. It
// consumes translation events from SQS and persists them to the history
// table, dead-lettering what it cannot parse.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/openlingua/translation-backend/internal/config"
	"github.com/openlingua/translation-backend/internal/handler"
	"github.com/openlingua/translation-backend/internal/logging"
	"github.com/openlingua/translation-backend/internal/queue"
	"github.com/openlingua/translation-backend/internal/store"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	ctx := context.Background()
	db, err := store.Client(ctx)
	if err != nil {
		log.WithError(err).Fatal("dynamodb client init failed")
	}

	// Without a configured DLQ the worker logs and skips unprocessable
	// messages instead.
	var deadLetter handler.DeadLetterer
	if cfg.HistoryDLQURL != "" {
		sqsClient, err := queue.Client(ctx)
		if err != nil {
			log.WithError(err).Fatal("sqs client init failed")
		}
		deadLetter = queue.NewDeadLetter(sqsClient, cfg.HistoryDLQURL)
	}

	h := handler.NewWorker(store.NewHistory(db, cfg.HistoryTable), deadLetter, log)
	lambda.Start(h.Handle)
}
