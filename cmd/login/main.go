// Package main is the entry point for the login Lambda function.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/openlingua/translation-backend/internal/auth"
	"github.com/openlingua/translation-backend/internal/config"
	"github.com/openlingua/translation-backend/internal/handler"
	"github.com/openlingua/translation-backend/internal/logging"
	"github.com/openlingua/translation-backend/internal/store"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	if err := cfg.RequireJWTSecret(); err != nil {
		log.WithError(err).Fatal("configuration invalid")
	}

	db, err := store.Client(context.Background())
	if err != nil {
		log.WithError(err).Fatal("dynamodb client init failed")
	}

	tokens := auth.NewTokenService([]byte(cfg.JWTSecret), auth.TokenTTL)
	h := handler.NewLogin(store.NewUsers(db, cfg.UsersTable), tokens, log)
	lambda.Start(h.Handle)
}
