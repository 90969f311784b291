package repository

import (
	"context"
	"errors"
	"time"

	"home_cleaning/internal/domain/entities"
	"home_cleaning/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesRequestIDIndex   = "request_id-index"
	quotesCustomerIDIndex  = "customer_id-index"
)

type quoteItem struct {
	ID              string  `dynamodbav:"id"`
	RequestID       string  `dynamodbav:"request_id"`
	CustomerID      string  `dynamodbav:"customer_id"`
	Price           float64 `dynamodbav:"price"`
	TimeWindowStart string  `dynamodbav:"time_window_start,omitempty"`
	TimeWindowEnd   string  `dynamodbav:"time_window_end,omitempty"`
	Note            string  `dynamodbav:"note,omitempty"`
	ClientNote      string  `dynamodbav:"client_note,omitempty"`
	Status          string  `dynamodbav:"status"`
	CreatedAt       string  `dynamodbav:"created_at"`
	UpdatedAt       string  `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: request_id-index (PK: request_id)
//   - GSI: customer_id-index (PK: customer_id)
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

// UpdateStatusIfPending transitions the quote only when its current status is
// still PENDING. A failed condition returns the zero value so callers can
// tell a lost race from a hard error.
func (r *QuoteDynamoRepository) UpdateStatusIfPending(ctx context.Context, id string, status entities.QuoteStatus, clientNote string) (entities.Quote, error) {
	now := timeToAttr(time.Now())

	expr := "SET #status = :status, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
		":pending":    &types.AttributeValueMemberS{Value: string(entities.QuoteStatusPending)},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if clientNote != "" {
		expr += ", #client_note = :client_note"
		values[":client_note"] = &types.AttributeValueMemberS{Value: clientNote}
		names["#client_note"] = "client_note"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.Quote, error) {
	return r.queryIndex(ctx, quotesRequestIDIndex, "request_id = :v", requestID)
}

func (r *QuoteDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Quote, error) {
	return r.queryIndex(ctx, quotesCustomerIDIndex, "customer_id = :v", customerID)
}

func (r *QuoteDynamoRepository) queryIndex(ctx context.Context, index, keyCondition, value string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCondition),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuoteItem(it))
	}
	return items, nil
}

func (r *QuoteDynamoRepository) ListAll(ctx context.Context) ([]entities.Quote, error) {
	items := make([]entities.Quote, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromQuoteItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:         q.ID,
		RequestID:  q.RequestID,
		CustomerID: q.CustomerID,
		Price:      q.Price,
		Note:       q.Note,
		ClientNote: q.ClientNote,
		Status:     string(q.Status),
		CreatedAt:  timeToAttr(q.CreatedAt),
		UpdatedAt:  timeToAttr(q.UpdatedAt),
	}
	if !q.TimeWindowStart.IsZero() {
		it.TimeWindowStart = timeToAttr(q.TimeWindowStart)
	}
	if !q.TimeWindowEnd.IsZero() {
		it.TimeWindowEnd = timeToAttr(q.TimeWindowEnd)
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	q := entities.Quote{
		ID:         it.ID,
		RequestID:  it.RequestID,
		CustomerID: it.CustomerID,
		Price:      it.Price,
		Note:       it.Note,
		ClientNote: it.ClientNote,
		Status:     entities.QuoteStatus(it.Status),
		CreatedAt:  timeFromAttr(it.CreatedAt),
		UpdatedAt:  timeFromAttr(it.UpdatedAt),
	}
	if it.TimeWindowStart != "" {
		q.TimeWindowStart = timeFromAttr(it.TimeWindowStart)
	}
	if it.TimeWindowEnd != "" {
		q.TimeWindowEnd = timeFromAttr(it.TimeWindowEnd)
	}
	return q
}
