package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlingua/translation-backend/internal/models"
)

type fakeSQS struct {
	sendFn func(*sqs.SendMessageInput) (*sqs.SendMessageOutput, error)
	inputs []*sqs.SendMessageInput
}

func (f *fakeSQS) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.sendFn != nil {
		return f.sendFn(params)
	}
	return &sqs.SendMessageOutput{}, nil
}

func TestPublisher_Record(t *testing.T) {
	fake := &fakeSQS{}
	pub := NewPublisher(fake, "https://sqs.example/history")

	rec := &models.HistoryRecord{
		UserID:         "alice",
		Timestamp:      "2026-08-29T10:00:00.000Z",
		ID:             "rec-1",
		SourceText:     "Hello",
		TargetLanguage: "NL",
		Translation:    "Hallo",
	}
	require.NoError(t, pub.Record(context.Background(), rec))

	require.Len(t, fake.inputs, 1)
	assert.Equal(t, "https://sqs.example/history", *fake.inputs[0].QueueUrl)

	var sent models.HistoryRecord
	require.NoError(t, json.Unmarshal([]byte(*fake.inputs[0].MessageBody), &sent))
	assert.Equal(t, *rec, sent)
}

func TestPublisher_Record_SendFailure(t *testing.T) {
	fake := &fakeSQS{
		sendFn: func(in *sqs.SendMessageInput) (*sqs.SendMessageOutput, error) {
			return nil, errors.New("queue unavailable")
		},
	}
	pub := NewPublisher(fake, "https://sqs.example/history")

	err := pub.Record(context.Background(), &models.HistoryRecord{UserID: "alice"})
	assert.Error(t, err)
}

func TestDeadLetter_Send(t *testing.T) {
	fake := &fakeSQS{}
	dl := NewDeadLetter(fake, "https://sqs.example/history-dlq")

	require.NoError(t, dl.Send(context.Background(), `{"broken":`, "invalid JSON"))

	require.Len(t, fake.inputs, 1)
	in := fake.inputs[0]
	assert.Equal(t, "https://sqs.example/history-dlq", *in.QueueUrl)
	assert.Equal(t, `{"broken":`, *in.MessageBody)
	require.Contains(t, in.MessageAttributes, "reason")
	assert.Equal(t, "invalid JSON", *in.MessageAttributes["reason"].StringValue)
}
