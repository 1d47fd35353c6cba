package store

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// fakeDynamo implements api for repository tests, capturing inputs and
// delegating to per-call stubs.
type fakeDynamo struct {
	getItemFn func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	putItemFn func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	queryFn   func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)

	getInputs   []*dynamodb.GetItemInput
	putInputs   []*dynamodb.PutItemInput
	queryInputs []*dynamodb.QueryInput
}

func (f *fakeDynamo) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.getInputs = append(f.getInputs, params)
	if f.getItemFn != nil {
		return f.getItemFn(params)
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putInputs = append(f.putInputs, params)
	if f.putItemFn != nil {
		return f.putItemFn(params)
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryInputs = append(f.queryInputs, params)
	if f.queryFn != nil {
		return f.queryFn(params)
	}
	return &dynamodb.QueryOutput{}, nil
}
