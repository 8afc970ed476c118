package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultKVTableName = "oficina_kv"

// kvItem is the DynamoDB row shape: one item per storage key.
type kvItem struct {
	Key   string `dynamodbav:"key"`
	Value string `dynamodbav:"value"`
}

// DynamoKVStore persists the keyspace in a DynamoDB table.
//
// Table requirements:
//   - PK: key (string)
//
// Reads are strongly consistent so a save is visible to the next load, which
// the read-modify-write cycle in the repositories depends on.
type DynamoKVStore struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ KVStore = (*DynamoKVStore)(nil)

func NewDynamoKVStore(ddb *dynamodb.Client) *DynamoKVStore {
	tableName := os.Getenv("KV_TABLE")
	if tableName == "" {
		tableName = defaultKVTableName
	}
	return &DynamoKVStore{ddb: ddb, tableName: tableName}
}

func (s *DynamoKVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}

	var it kvItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", key, err)
	}
	return []byte(it.Value), true, nil
}

func (s *DynamoKVStore) Set(ctx context.Context, key string, value []byte) error {
	av, err := attributevalue.MarshalMap(kvItem{Key: key, Value: string(value)})
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *DynamoKVStore) Remove(ctx context.Context, key string) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
