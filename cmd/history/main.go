// Package main is the entry point for the translation history Lambda
// function.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/openlingua/translation-backend/internal/config"
	"github.com/openlingua/translation-backend/internal/handler"
	"github.com/openlingua/translation-backend/internal/logging"
	"github.com/openlingua/translation-backend/internal/store"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	db, err := store.Client(context.Background())
	if err != nil {
		log.WithError(err).Fatal("dynamodb client init failed")
	}

	h := handler.NewGetHistory(store.NewHistory(db, cfg.HistoryTable), log)
	lambda.Start(h.Handle)
}
