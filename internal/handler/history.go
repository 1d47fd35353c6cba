package handler

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"

	"github.com/openlingua/translation-backend/internal/apigw"
	"github.com/openlingua/translation-backend/internal/models"
)

type historyRequest struct {
	UserID string `json:"user_id"`
}

type historyResponse struct {
	History []models.HistoryRecord `json:"history"`
}

// GetHistory returns a user's translation history, newest first.
type GetHistory struct {
	history HistoryLister
	log     *logrus.Logger
}

func NewGetHistory(history HistoryLister, log *logrus.Logger) *GetHistory {
	return &GetHistory{history: history, log: log}
}

func (h *GetHistory) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var body historyRequest
	if err := apigw.DecodeBody(req.Body, &body); err != nil {
		return apigw.Error(http.StatusBadRequest, "Invalid JSON body"), nil
	}
	if body.UserID == "" {
		return apigw.Error(http.StatusBadRequest, "Missing user_id"), nil
	}

	records, err := h.history.ListByUser(ctx, body.UserID)
	if err != nil {
		h.log.WithError(err).WithField("user_id", body.UserID).Error("history: query failed")
		return apigw.Error(http.StatusInternalServerError, "Server error retrieving history"), nil
	}

	// No records is an empty list, not an error.
	return apigw.Respond(http.StatusOK, historyResponse{History: records}), nil
}
