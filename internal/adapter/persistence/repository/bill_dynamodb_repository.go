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

const defaultBillsTableName = "bills"

type billItem struct {
	ID          string  `dynamodbav:"id"`
	OrderID     string  `dynamodbav:"order_id"`
	Amount      float64 `dynamodbav:"amount"`
	Status      string  `dynamodbav:"status"`
	Note        string  `dynamodbav:"note,omitempty"`
	DisputeNote string  `dynamodbav:"dispute_note,omitempty"`
	CreatedAt   string  `dynamodbav:"created_at"`
	DueDate     string  `dynamodbav:"due_date"`
	PaidAt      string  `dynamodbav:"paid_at,omitempty"`
}

// BillDynamoRepository persists Bill entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type BillDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBillRepository = (*BillDynamoRepository)(nil)

func NewBillDynamoRepository(ddb *dynamodb.Client) *BillDynamoRepository {
	return &BillDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BILLS_TABLE", defaultBillsTableName),
	}
}

func (r *BillDynamoRepository) Create(ctx context.Context, b entities.Bill) (entities.Bill, error) {
	av, err := attributevalue.MarshalMap(toBillItem(b))
	if err != nil {
		return entities.Bill{}, err
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
		return entities.Bill{}, err
	}
	return b, nil
}

func (r *BillDynamoRepository) GetByID(ctx context.Context, id string) (entities.Bill, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Bill{}, err
	}
	if len(out.Item) == 0 {
		return entities.Bill{}, nil
	}

	var it billItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Bill{}, err
	}
	return fromBillItem(it), nil
}

func (r *BillDynamoRepository) PayIfUnpaid(ctx context.Context, id string, paidAt time.Time) (entities.Bill, error) {
	return r.updateIfUnpaid(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #paid_at = :paid_at"
		values := map[string]types.AttributeValue{
			":status":  &types.AttributeValueMemberS{Value: string(entities.BillStatusPaid)},
			":paid_at": &types.AttributeValueMemberS{Value: timeToAttr(paidAt)},
		}
		names := map[string]string{
			"#status":  "status",
			"#paid_at": "paid_at",
		}
		return expr, values, names
	})
}

func (r *BillDynamoRepository) DisputeIfUnpaid(ctx context.Context, id, note string) (entities.Bill, error) {
	return r.updateIfUnpaid(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #dispute_note = :dispute_note"
		values := map[string]types.AttributeValue{
			":status":       &types.AttributeValueMemberS{Value: string(entities.BillStatusDisputed)},
			":dispute_note": &types.AttributeValueMemberS{Value: note},
		}
		names := map[string]string{
			"#status":       "status",
			"#dispute_note": "dispute_note",
		}
		return expr, values, names
	})
}

func (r *BillDynamoRepository) updateIfUnpaid(
	ctx context.Context,
	id string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Bill, error) {
	updateExpr, values, names := build()
	values[":unpaid"] = &types.AttributeValueMemberS{Value: string(entities.BillStatusUnpaid)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :unpaid"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Bill{}, nil
		}
		return entities.Bill{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Bill{}, nil
	}

	var it billItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Bill{}, err
	}
	return fromBillItem(it), nil
}

func (r *BillDynamoRepository) ListAll(ctx context.Context) ([]entities.Bill, error) {
	items := make([]entities.Bill, 0)
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
			var it billItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromBillItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toBillItem(b entities.Bill) billItem {
	return billItem{
		ID:          b.ID,
		OrderID:     b.OrderID,
		Amount:      b.Amount,
		Status:      string(b.Status),
		Note:        b.Note,
		DisputeNote: b.DisputeNote,
		CreatedAt:   timeToAttr(b.CreatedAt),
		DueDate:     timeToAttr(b.DueDate),
		PaidAt:      optionalTimeToAttr(b.PaidAt),
	}
}

func fromBillItem(it billItem) entities.Bill {
	return entities.Bill{
		ID:          it.ID,
		OrderID:     it.OrderID,
		Amount:      it.Amount,
		Status:      entities.BillStatus(it.Status),
		Note:        it.Note,
		DisputeNote: it.DisputeNote,
		CreatedAt:   timeFromAttr(it.CreatedAt),
		DueDate:     timeFromAttr(it.DueDate),
		PaidAt:      optionalTimeFromAttr(it.PaidAt),
	}
}
