package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"

	"github.com/openlingua/translation-backend/internal/apigw"
	"github.com/openlingua/translation-backend/internal/auth"
	"github.com/openlingua/translation-backend/internal/store"
)

// invalidCredentials is deliberately identical for an unknown username and a
// wrong password, so responses do not reveal which one failed.
const invalidCredentials = "Invalid username or password"

type loginResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Login authenticates a user and issues an identity token.
type Login struct {
	users  UserStore
	tokens TokenIssuer
	log    *logrus.Logger
}

func NewLogin(users UserStore, tokens TokenIssuer, log *logrus.Logger) *Login {
	return &Login{users: users, tokens: tokens, log: log}
}

func (h *Login) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var body credentialsRequest
	if err := apigw.DecodeBody(req.Body, &body); err != nil {
		return apigw.Message(http.StatusBadRequest, "Invalid JSON body"), nil
	}
	if body.Username == "" || body.Password == "" {
		return apigw.Message(http.StatusBadRequest, "Missing username or password"), nil
	}

	user, err := h.users.Get(ctx, body.Username)
	if errors.Is(err, store.ErrNotFound) {
		return apigw.Message(http.StatusUnauthorized, invalidCredentials), nil
	}
	if err != nil {
		h.log.WithError(err).WithField("username", body.Username).Error("login: user lookup failed")
		return apigw.Message(http.StatusInternalServerError, "Internal server error"), nil
	}

	if !auth.CheckPassword(user.PasswordHash, body.Password) {
		return apigw.Message(http.StatusUnauthorized, invalidCredentials), nil
	}

	token, err := h.tokens.Issue(user.Username)
	if err != nil {
		h.log.WithError(err).WithField("username", body.Username).Error("login: token issue failed")
		return apigw.Message(http.StatusInternalServerError, "Internal server error"), nil
	}

	return apigw.Respond(http.StatusOK, loginResponse{
		Message:  "Login successful",
		Username: user.Username,
		Token:    token,
	}), nil
}
