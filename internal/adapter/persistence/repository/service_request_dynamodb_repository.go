package repository

import (
	"context"
	"errors"

	"home_cleaning/internal/domain/entities"
	"home_cleaning/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRequestsTableName = "service_requests"
	requestsCustomerIDIndex  = "customer_id-index"
)

type serviceRequestItem struct {
	ID             string   `dynamodbav:"id"`
	CustomerID     string   `dynamodbav:"customer_id"`
	Address        string   `dynamodbav:"address"`
	CleaningType   string   `dynamodbav:"cleaning_type"`
	Rooms          int      `dynamodbav:"rooms"`
	PreferredTime  string   `dynamodbav:"preferred_time,omitempty"`
	ProposedBudget float64  `dynamodbav:"proposed_budget,omitempty"`
	Notes          string   `dynamodbav:"notes,omitempty"`
	Photos         []string `dynamodbav:"photos"`
	CreatedAt      string   `dynamodbav:"created_at"`
}

// ServiceRequestDynamoRepository persists ServiceRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
type ServiceRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestDynamoRepository)(nil)

func NewServiceRequestDynamoRepository(ddb *dynamodb.Client) *ServiceRequestDynamoRepository {
	return &ServiceRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_REQUESTS_TABLE", defaultRequestsTableName),
	}
}

func (r *ServiceRequestDynamoRepository) Create(ctx context.Context, req entities.ServiceRequest) (entities.ServiceRequest, error) {
	av, err := attributevalue.MarshalMap(toServiceRequestItem(req))
	if err != nil {
		return entities.ServiceRequest{}, err
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
		return entities.ServiceRequest{}, err
	}
	return req, nil
}

func (r *ServiceRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceRequest{}, nil
	}

	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

// AppendPhoto appends a single photo reference to the ordered list in one
// conditional update, so concurrent appends interleave instead of clobbering
// each other.
func (r *ServiceRequestDynamoRepository) AppendPhoto(ctx context.Context, id, photoURL string) (entities.ServiceRequest, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #photos = list_append(if_not_exists(#photos, :empty), :photo)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":photo": &types.AttributeValueMemberL{Value: []types.AttributeValue{
				&types.AttributeValueMemberS{Value: photoURL},
			}},
			":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#photos": "photos",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceRequest{}, nil
		}
		return entities.ServiceRequest{}, err
	}

	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func (r *ServiceRequestDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.ServiceRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(requestsCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ServiceRequest, 0, len(out.Items))
	for _, raw := range out.Items {
		var it serviceRequestItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromServiceRequestItem(it))
	}
	return items, nil
}

func (r *ServiceRequestDynamoRepository) ListAll(ctx context.Context) ([]entities.ServiceRequest, error) {
	items := make([]entities.ServiceRequest, 0)
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
			var it serviceRequestItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromServiceRequestItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toServiceRequestItem(r entities.ServiceRequest) serviceRequestItem {
	photos := r.Photos
	if photos == nil {
		photos = []string{}
	}
	return serviceRequestItem{
		ID:             r.ID,
		CustomerID:     r.CustomerID,
		Address:        r.Address,
		CleaningType:   r.CleaningType,
		Rooms:          r.Rooms,
		PreferredTime:  optionalTimeToAttr(r.PreferredTime),
		ProposedBudget: r.ProposedBudget,
		Notes:          r.Notes,
		Photos:         photos,
		CreatedAt:      timeToAttr(r.CreatedAt),
	}
}

func fromServiceRequestItem(it serviceRequestItem) entities.ServiceRequest {
	photos := it.Photos
	if photos == nil {
		photos = []string{}
	}
	return entities.ServiceRequest{
		ID:             it.ID,
		CustomerID:     it.CustomerID,
		Address:        it.Address,
		CleaningType:   it.CleaningType,
		Rooms:          it.Rooms,
		PreferredTime:  optionalTimeFromAttr(it.PreferredTime),
		ProposedBudget: it.ProposedBudget,
		Notes:          it.Notes,
		Photos:         photos,
		CreatedAt:      timeFromAttr(it.CreatedAt),
	}
}
