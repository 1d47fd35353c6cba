// Package queue moves translation events between the translate handler and
// the history worker, plus the dead-letter path for messages the worker
// cannot parse.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"github.com/openlingua/translation-backend/internal/models"
)

// api is the slice of the SQS client this package uses. Tests substitute
// fakes.
type api interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

var (
	clientOnce sync.Once
	client     *sqs.Client
	clientErr  error
)

// Client returns the process-wide SQS client, created on first use and
// reused for the Lambda instance lifetime.
func Client(ctx context.Context) (*sqs.Client, error) {
	clientOnce.Do(func() {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			clientErr = fmt.Errorf("load AWS config: %w", err)
			return
		}
		client = sqs.NewFromConfig(cfg)
	})
	return client, clientErr
}

// Publisher sends history records to the worker queue.
type Publisher struct {
	client   api
	queueURL string
}

func NewPublisher(client api, queueURL string) *Publisher {
	return &Publisher{client: client, queueURL: queueURL}
}

// Record enqueues one translation event for asynchronous persistence.
func (p *Publisher) Record(ctx context.Context, rec *models.HistoryRecord) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal history event: %w", err)
	}

	if _, err := p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
	}); err != nil {
		return fmt.Errorf("send history event: %w", err)
	}
	return nil
}

// DeadLetter publishes messages the worker rejected, tagged with the reason,
// so malformed events are inspectable instead of silently dropped.
type DeadLetter struct {
	client   api
	queueURL string
}

func NewDeadLetter(client api, queueURL string) *DeadLetter {
	return &DeadLetter{client: client, queueURL: queueURL}
}

// Send forwards a rejected message body to the dead-letter queue.
func (d *DeadLetter) Send(ctx context.Context, body, reason string) error {
	if _, err := d.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(d.queueURL),
		MessageBody: aws.String(body),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"reason": {
				DataType:    aws.String("String"),
				StringValue: aws.String(reason),
			},
		},
	}); err != nil {
		return fmt.Errorf("send to dead-letter queue: %w", err)
	}
	return nil
}
