/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/financeapi/registry"
	"github.com/suparena/financeapi/storagemodels"
)

// DocumentStore implements datastore.DataStore[T] on a DynamoDB table. One
// store wraps one container; the client handle is shared across stores and
// across requests.
type DocumentStore[T any] struct {
	client *sdk.Client
	table  string
}

// New constructs a DocumentStore for type T backed by the given table. The
// type must have a key schema registered; failing fast here beats failing on
// the first write.
func New[T any](client *sdk.Client, table string) (*DocumentStore[T], error) {
	if _, ok := registry.KeyMapFor[T](); !ok {
		return nil, errors.New("no key map registered for entity type")
	}
	return &DocumentStore[T]{client: client, table: table}, nil
}

// Table returns the backing table name.
func (d *DocumentStore[T]) Table() string {
	return d.table
}

// GetOne retrieves a single document by id and partition key. It returns
// (nil, nil) when no document exists at that key.
func (d *DocumentStore[T]) GetOne(ctx context.Context, id, partitionKey string) (*T, error) {
	km, _ := registry.KeyMapFor[T]()

	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &d.table,
		Key:       keyAttributes(km, id, partitionKey),
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, nil
	}

	result := new(T)
	if err := attributevalue.UnmarshalMap(out.Item, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return result, nil
}

// Upsert writes the entity, replacing any document stored at the same key.
func (d *DocumentStore[T]) Upsert(ctx context.Context, entity T) error {
	km, _ := registry.KeyMapFor[T]()

	av, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	id, partitionKey, err := km.Key(entity)
	if err != nil {
		return fmt.Errorf("failed to derive key: %w", err)
	}
	av[km.IDAttr] = &types.AttributeValueMemberS{Value: id}
	av[km.PartitionAttr] = &types.AttributeValueMemberS{Value: partitionKey}

	if _, err := d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &d.table,
		Item:      av,
	}); err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// Query executes a parameterized search. The dialect statement is translated
// to PartiQL and the OFFSET/LIMIT window is applied over the paged result
// set, since PartiQL has no OFFSET clause.
func (d *DocumentStore[T]) Query(ctx context.Context, query *storagemodels.Query) ([]T, error) {
	if query == nil {
		return nil, errors.New("query must be defined")
	}

	tq, err := translate(query, d.table)
	if err != nil {
		return nil, fmt.Errorf("failed to translate query: %w", err)
	}

	// Collect enough items to cover the window, then slice. want == 0 means
	// the statement carried no window and everything is returned.
	want := 0
	if tq.limit > 0 {
		want = tq.offset + tq.limit
	}

	var items []map[string]types.AttributeValue
	var nextToken *string
	for {
		out, err := d.client.ExecuteStatement(ctx, &sdk.ExecuteStatementInput{
			Statement:  &tq.statement,
			Parameters: tq.params,
			NextToken:  nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("query error: %w", err)
		}

		items = append(items, out.Items...)
		if out.NextToken == nil || (want > 0 && len(items) >= want) {
			break
		}
		nextToken = out.NextToken
	}

	if tq.offset > 0 {
		if tq.offset >= len(items) {
			return nil, nil
		}
		items = items[tq.offset:]
	}
	if tq.limit > 0 && len(items) > tq.limit {
		items = items[:tq.limit]
	}

	results := make([]T, 0, len(items))
	for _, item := range items {
		entity := new(T)
		if err := attributevalue.UnmarshalMap(item, entity); err != nil {
			return nil, fmt.Errorf("failed to unmarshal item: %w", err)
		}
		results = append(results, *entity)
	}
	return results, nil
}

// Delete removes the document at the given key.
func (d *DocumentStore[T]) Delete(ctx context.Context, id, partitionKey string) error {
	km, _ := registry.KeyMapFor[T]()

	if _, err := d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &d.table,
		Key:       keyAttributes(km, id, partitionKey),
	}); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

func keyAttributes(km registry.KeyMap, id, partitionKey string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		km.IDAttr:        &types.AttributeValueMemberS{Value: id},
		km.PartitionAttr: &types.AttributeValueMemberS{Value: partitionKey},
	}
}
