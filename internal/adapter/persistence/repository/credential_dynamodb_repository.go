package repository

import (
	"context"

	"home_cleaning/internal/domain/entities"
	"home_cleaning/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCredentialsTableName = "credentials"
	credentialsUsernameIndex    = "username-index"
)

type credentialItem struct {
	ID         string `dynamodbav:"id"`
	Username   string `dynamodbav:"username"`
	SecretHash string `dynamodbav:"secret_hash"`
	Role       string `dynamodbav:"role"`
	CustomerID string `dynamodbav:"customer_id,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// CredentialDynamoRepository persists Credential entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: username-index (PK: username)
type CredentialDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICredentialRepository = (*CredentialDynamoRepository)(nil)

func NewCredentialDynamoRepository(ddb *dynamodb.Client) *CredentialDynamoRepository {
	return &CredentialDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CREDENTIALS_TABLE", defaultCredentialsTableName),
	}
}

func (r *CredentialDynamoRepository) Create(ctx context.Context, c entities.Credential) (entities.Credential, error) {
	av, err := attributevalue.MarshalMap(toCredentialItem(c))
	if err != nil {
		return entities.Credential{}, err
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
		return entities.Credential{}, err
	}
	return c, nil
}

func (r *CredentialDynamoRepository) GetByUsername(ctx context.Context, username string) (entities.Credential, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(credentialsUsernameIndex),
		KeyConditionExpression: aws.String("username = :username"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":username": &types.AttributeValueMemberS{Value: username},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Credential{}, err
	}
	if len(out.Items) == 0 {
		return entities.Credential{}, nil
	}

	var it credentialItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Credential{}, err
	}
	return fromCredentialItem(it), nil
}

func toCredentialItem(c entities.Credential) credentialItem {
	return credentialItem{
		ID:         c.ID,
		Username:   c.Username,
		SecretHash: c.SecretHash,
		Role:       string(c.Role),
		CustomerID: c.CustomerID,
		CreatedAt:  timeToAttr(c.CreatedAt),
	}
}

func fromCredentialItem(it credentialItem) entities.Credential {
	return entities.Credential{
		ID:         it.ID,
		Username:   it.Username,
		SecretHash: it.SecretHash,
		Role:       entities.Role(it.Role),
		CustomerID: it.CustomerID,
		CreatedAt:  timeFromAttr(it.CreatedAt),
	}
}
