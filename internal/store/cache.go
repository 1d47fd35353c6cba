package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/openlingua/translation-backend/internal/models"
)

// CacheKey builds the normalized cache key: lower-cased trimmed source text,
// a colon, and the upper-cased target language code. "Hello"/"nl" and
// " HELLO "/"NL" land on the same entry.
func CacheKey(text, langCode string) string {
	return strings.ToLower(strings.TrimSpace(text)) + ":" + strings.ToUpper(langCode)
}

// Cache is the translation cache repository. Entries are upserts keyed by
// CacheKey; the last writer wins.
type Cache struct {
	db    api
	table string
}

func NewCache(db api, table string) *Cache {
	return &Cache{db: db, table: table}
}

// Get fetches a cached translation. Returns ErrNotFound on a miss.
func (c *Cache) Get(ctx context.Context, key string) (*models.CacheEntry, error) {
	out, err := c.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(c.table),
		Key: map[string]types.AttributeValue{
			"cache_key": &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get cache entry: %w", err)
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var entry models.CacheEntry
	if err := attributevalue.UnmarshalMap(out.Item, &entry); err != nil {
		return nil, fmt.Errorf("unmarshal cache entry: %w", err)
	}
	return &entry, nil
}

// Put stores (or overwrites) a cache entry.
func (c *Cache) Put(ctx context.Context, entry *models.CacheEntry) error {
	item, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}

	if _, err := c.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.table),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("put cache entry: %w", err)
	}
	return nil
}
