package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"restock_service/internal/domain/entities"
	"restock_service/internal/infrastructure/cloud"
	"restock_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultRestockSessionsTableName = "restock_sessions"
	restockSessionsUserIDIndex      = "user_id-index"
)

var ErrSessionNotPersisted = errors.New("session has no persisted id")

type sessionLineItem struct {
	ProductID     string `dynamodbav:"product_id"`
	ProductName   string `dynamodbav:"product_name"`
	SupplierID    string `dynamodbav:"supplier_id"`
	SupplierName  string `dynamodbav:"supplier_name"`
	SupplierEmail string `dynamodbav:"supplier_email"`
	Quantity      int    `dynamodbav:"quantity"`
	Notes         string `dynamodbav:"notes,omitempty"`
}

type restockSessionItem struct {
	ID        string            `dynamodbav:"id"`
	UserID    string            `dynamodbav:"user_id"`
	Name      string            `dynamodbav:"name,omitempty"`
	Status    string            `dynamodbav:"status"`
	Items     []sessionLineItem `dynamodbav:"items"`
	CreatedAt string            `dynamodbav:"created_at"`
	UpdatedAt string            `dynamodbav:"updated_at,omitempty"`
}

// RestockSessionDynamoRepository persists restock sessions in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// Line items live inside the session item as a list attribute, so every
// write replaces the whole session atomically.

type RestockSessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRestockSessionRepository = (*RestockSessionDynamoRepository)(nil)

func NewRestockSessionDynamoRepository(ddb *dynamodb.Client) *RestockSessionDynamoRepository {
	return &RestockSessionDynamoRepository{
		ddb:       ddb,
		tableName: cloud.GetenvDefault("RESTOCK_SESSIONS_TABLE", defaultRestockSessionsTableName),
	}
}

func (r *RestockSessionDynamoRepository) Create(ctx context.Context, s entities.Session) (entities.Session, error) {
	s, err := s.WithID(uuid.NewString())
	if err != nil {
		return entities.Session{}, err
	}

	av, err := attributevalue.MarshalMap(toRestockSessionItem(s))
	if err != nil {
		return entities.Session{}, err
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
		return entities.Session{}, err
	}
	return s, nil
}

func (r *RestockSessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Session, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Session{}, err
	}
	if len(out.Item) == 0 {
		return entities.Session{}, nil
	}

	var it restockSessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Session{}, err
	}
	return fromRestockSessionItem(it)
}

func (r *RestockSessionDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Session, error) {
	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(restockSessionsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})

	sessions := make([]entities.Session, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it restockSessionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			s, err := fromRestockSessionItem(it)
			if err != nil {
				return nil, err
			}
			sessions = append(sessions, s)
		}
	}
	return sessions, nil
}

// Update replaces a stored session as long as its updated_at still equals
// expectedUpdatedAt. A session that no longer exists yields a zero Session and
// no error; one written by someone else in between yields
// interfaces.ErrStaleSession.
func (r *RestockSessionDynamoRepository) Update(ctx context.Context, s entities.Session, expectedUpdatedAt *time.Time) (entities.Session, error) {
	if !s.IsPersisted() {
		return entities.Session{}, ErrSessionNotPersisted
	}

	av, err := attributevalue.MarshalMap(toRestockSessionItem(s))
	if err != nil {
		return entities.Session{}, err
	}

	condition, values := updateCondition(expectedUpdatedAt)
	input := &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: values,
	}
	// The old item comes back on a failed check, which tells a stale write
	// apart from a deleted session.
	input.ReturnValuesOnConditionCheckFailure = types.ReturnValuesOnConditionCheckFailureAllOld

	_, err = r.ddb.PutItem(ctx, input)
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.Session{}, nil
			}
			return entities.Session{}, interfaces.ErrStaleSession
		}
		return entities.Session{}, err
	}
	return s, nil
}

// updateCondition builds the optimistic check for Update. A session that was
// never updated has no updated_at attribute at all.
func updateCondition(expectedUpdatedAt *time.Time) (string, map[string]types.AttributeValue) {
	if expectedUpdatedAt == nil {
		return "attribute_exists(#id) AND attribute_not_exists(#updated_at)", nil
	}
	return "attribute_exists(#id) AND #updated_at = :prev", map[string]types.AttributeValue{
		":prev": &types.AttributeValueMemberS{Value: formatTime(*expectedUpdatedAt)},
	}
}

func (r *RestockSessionDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func toRestockSessionItem(s entities.Session) restockSessionItem {
	raw := s.ToRawValue()
	it := restockSessionItem{
		ID:        raw.ID,
		UserID:    raw.UserID,
		Name:      raw.Name,
		Status:    string(raw.Status),
		CreatedAt: formatTime(raw.CreatedAt),
		Items:     make([]sessionLineItem, 0, len(raw.Items)),
	}
	if raw.UpdatedAt != nil {
		it.UpdatedAt = formatTime(*raw.UpdatedAt)
	}
	for _, li := range raw.Items {
		it.Items = append(it.Items, sessionLineItem(li))
	}
	return it
}

func fromRestockSessionItem(it restockSessionItem) (entities.Session, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, it.CreatedAt)
	if err != nil {
		return entities.Session{}, fmt.Errorf("session %s: parse created_at: %w", it.ID, err)
	}

	raw := entities.SessionRaw{
		ID:        it.ID,
		UserID:    it.UserID,
		Name:      it.Name,
		Status:    entities.SessionStatus(it.Status),
		CreatedAt: createdAt,
		Items:     make([]entities.SessionItem, 0, len(it.Items)),
	}
	if it.UpdatedAt != "" {
		updatedAt, err := time.Parse(time.RFC3339Nano, it.UpdatedAt)
		if err != nil {
			return entities.Session{}, fmt.Errorf("session %s: parse updated_at: %w", it.ID, err)
		}
		raw.UpdatedAt = &updatedAt
	}
	for _, li := range it.Items {
		raw.Items = append(raw.Items, entities.SessionItem(li))
	}
	return entities.SessionFromRawValue(raw)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
