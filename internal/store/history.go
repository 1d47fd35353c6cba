package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/openlingua/translation-backend/internal/models"
)

// History is the append-only per-user translation history repository.
// Partition key user_id, sort key timestamp.
type History struct {
	db    api
	table string
}

func NewHistory(db api, table string) *History {
	return &History{db: db, table: table}
}

// Put appends one history record.
func (h *History) Put(ctx context.Context, rec *models.HistoryRecord) error {
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("marshal history record: %w", err)
	}

	if _, err := h.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(h.table),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("put history record: %w", err)
	}
	return nil
}

// ListByUser returns all of a user's records, newest first. A user with no
// history gets an empty slice, not nil and not an error.
func (h *History) ListByUser(ctx context.Context, userID string) ([]models.HistoryRecord, error) {
	out, err := h.db.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(h.table),
		KeyConditionExpression: aws.String("user_id = :u"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":u": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false), // newest first
	})
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	records := make([]models.HistoryRecord, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &records); err != nil {
		return nil, fmt.Errorf("unmarshal history records: %w", err)
	}
	if records == nil {
		records = []models.HistoryRecord{}
	}
	return records, nil
}
