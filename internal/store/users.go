package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/openlingua/translation-backend/internal/models"
)

// Users is the credential repository. One record per username, created once,
// never updated or deleted.
type Users struct {
	db    api
	table string
}

func NewUsers(db api, table string) *Users {
	return &Users{db: db, table: table}
}

// Get fetches a user by username. Returns ErrNotFound on a miss.
func (u *Users) Get(ctx context.Context, username string) (*models.User, error) {
	out, err := u.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(u.table),
		Key: map[string]types.AttributeValue{
			"username": &types.AttributeValueMemberS{Value: username},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(out.Item, &user); err != nil {
		return nil, fmt.Errorf("unmarshal user: %w", err)
	}
	return &user, nil
}

// Create writes a new user record if and only if the username is free.
// The condition closes the check-then-write race between concurrent
// registrations; losing the race surfaces as ErrUserExists.
func (u *Users) Create(ctx context.Context, user *models.User) error {
	item, err := attributevalue.MarshalMap(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	_, err = u.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(u.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(username)"),
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return ErrUserExists
		}
		return fmt.Errorf("put user: %w", err)
	}
	return nil
}
