package handler

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"

	"github.com/openlingua/translation-backend/internal/models"
)

// Worker drains batches of queued translation events into the history store.
//
// Two failure modes are kept apart: malformed messages are dead-lettered
// (retrying cannot fix them), while store write failures are reported as
// batch item failures so the queue redelivers only those messages. One
// message never aborts the rest of the batch.
type Worker struct {
	history    HistoryWriter
	deadLetter DeadLetterer // nil means log-and-skip
	log        *logrus.Logger
}

func NewWorker(history HistoryWriter, deadLetter DeadLetterer, log *logrus.Logger) *Worker {
	return &Worker{history: history, deadLetter: deadLetter, log: log}
}

func (w *Worker) Handle(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	var failures []events.SQSBatchItemFailure

	for _, record := range event.Records {
		var rec models.HistoryRecord
		if err := json.Unmarshal([]byte(record.Body), &rec); err != nil {
			w.reject(ctx, record, "invalid JSON")
			continue
		}
		if rec.UserID == "" || rec.Translation == "" {
			w.reject(ctx, record, "missing user_id or translation")
			continue
		}

		if err := w.history.Put(ctx, &rec); err != nil {
			w.log.WithError(err).WithFields(logrus.Fields{
				"message_id": record.MessageId,
				"user_id":    rec.UserID,
			}).Error("history worker: write failed")
			failures = append(failures, events.SQSBatchItemFailure{ItemIdentifier: record.MessageId})
			continue
		}

		w.log.WithField("user_id", rec.UserID).Debug("history worker: record saved")
	}

	return events.SQSEventResponse{BatchItemFailures: failures}, nil
}

// reject routes an unprocessable message to the dead-letter queue, or logs
// the skip when no dead-letter queue is configured. Rejected messages are
// never returned as batch failures: redelivery would just fail again.
func (w *Worker) reject(ctx context.Context, record events.SQSMessage, reason string) {
	fields := logrus.Fields{"message_id": record.MessageId, "reason": reason}

	if w.deadLetter == nil {
		w.log.WithFields(fields).Warn("history worker: skipping unprocessable message")
		return
	}
	if err := w.deadLetter.Send(ctx, record.Body, reason); err != nil {
		w.log.WithError(err).WithFields(fields).Error("history worker: dead-letter failed")
		return
	}
	w.log.WithFields(fields).Warn("history worker: message dead-lettered")
}
