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

// QuoteAcceptanceDynamoTx performs the two-table write behind quote
// acceptance as a single DynamoDB transaction:
//
//  1. Update the quote to ACCEPTED, conditioned on it still being PENDING.
//  2. Put the new service order, conditioned on the id being unused.
//
// DynamoDB guarantees both writes commit together or not at all, which gives
// the at-most-one-order-per-quote property for free: the losing side of a
// concurrent duplicate accept fails the status condition and nothing is
// written.
type QuoteAcceptanceDynamoTx struct {
	ddb         *dynamodb.Client
	quotesTable string
	ordersTable string
}

var _ interfaces.IQuoteAcceptanceTx = (*QuoteAcceptanceDynamoTx)(nil)

func NewQuoteAcceptanceDynamoTx(ddb *dynamodb.Client) *QuoteAcceptanceDynamoTx {
	return &QuoteAcceptanceDynamoTx{
		ddb:         ddb,
		quotesTable: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
		ordersTable: getenvDefault("SERVICE_ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *QuoteAcceptanceDynamoTx) AcceptQuote(ctx context.Context, quoteID string, order entities.ServiceOrder) (entities.ServiceOrder, error) {
	orderAV, err := attributevalue.MarshalMap(toServiceOrderItem(order))
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	now := timeToAttr(time.Now())

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.quotesTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: quoteID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
					UpdateExpression:    aws.String("SET #status = :accepted, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#status":     "status",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":pending":    &types.AttributeValueMemberS{Value: string(entities.QuoteStatusPending)},
						":accepted":   &types.AttributeValueMemberS{Value: string(entities.QuoteStatusAccepted)},
						":updated_at": &types.AttributeValueMemberS{Value: now},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.ordersTable),
					Item:                orderAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && hasConditionalCheckFailure(tce) {
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, err
	}
	return order, nil
}

func hasConditionalCheckFailure(tce *types.TransactionCanceledException) bool {
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}
