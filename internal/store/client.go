// Package store contains the DynamoDB repositories: user credentials,
// the translation cache, and per-user translation history.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ErrNotFound is returned when a looked-up item does not exist.
var ErrNotFound = errors.New("item not found")

// ErrUserExists is returned when a conditional user create loses to an
// existing record, including the concurrent-registration race.
var ErrUserExists = errors.New("user already exists")

// api is the slice of the DynamoDB client the repositories use. Tests
// substitute fakes.
type api interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

var (
	clientOnce sync.Once
	client     *dynamodb.Client
	clientErr  error
)

// Client returns the process-wide DynamoDB client: created on first use,
// reused for the Lambda instance lifetime, no explicit teardown.
func Client(ctx context.Context) (*dynamodb.Client, error) {
	clientOnce.Do(func() {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			clientErr = fmt.Errorf("load AWS config: %w", err)
			return
		}
		client = dynamodb.NewFromConfig(cfg)
	})
	return client, clientErr
}
