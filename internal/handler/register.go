package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"

	"github.com/openlingua/translation-backend/internal/apigw"
	"github.com/openlingua/translation-backend/internal/auth"
	"github.com/openlingua/translation-backend/internal/models"
	"github.com/openlingua/translation-backend/internal/store"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates user accounts.
type Register struct {
	users UserStore
	log   *logrus.Logger
}

func NewRegister(users UserStore, log *logrus.Logger) *Register {
	return &Register{users: users, log: log}
}

// Handle validates the body, rejects duplicate usernames, and stores the
// new user with a hashed password. Validation happens before any write;
// store errors surface as a generic 500 with the detail logged only.
func (h *Register) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var body credentialsRequest
	if err := apigw.DecodeBody(req.Body, &body); err != nil {
		return apigw.Message(http.StatusBadRequest, "Invalid JSON body"), nil
	}
	if body.Username == "" || body.Password == "" {
		return apigw.Message(http.StatusBadRequest, "Missing username or password"), nil
	}

	_, err := h.users.Get(ctx, body.Username)
	switch {
	case err == nil:
		return apigw.Message(http.StatusBadRequest, "User already exists"), nil
	case !errors.Is(err, store.ErrNotFound):
		h.log.WithError(err).WithField("username", body.Username).Error("register: user lookup failed")
		return apigw.Message(http.StatusInternalServerError, "Internal server error"), nil
	}

	hash, err := auth.HashPassword(body.Password)
	if err != nil {
		h.log.WithError(err).Error("register: password hashing failed")
		return apigw.Message(http.StatusInternalServerError, "Internal server error"), nil
	}

	err = h.users.Create(ctx, &models.User{Username: body.Username, PasswordHash: hash})
	if errors.Is(err, store.ErrUserExists) {
		// lost the race to a concurrent registration
		return apigw.Message(http.StatusBadRequest, "User already exists"), nil
	}
	if err != nil {
		h.log.WithError(err).WithField("username", body.Username).Error("register: user create failed")
		return apigw.Message(http.StatusInternalServerError, "Internal server error"), nil
	}

	return apigw.Message(http.StatusOK, "User registered successfully"), nil
}
