package repository

import (
	"context"
	"errors"
	"time"

	"car_rental/internal/domain/entities"
	"car_rental/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultClaimsTableName = "claims"
	claimsStatusIndex      = "status-index"
	claimsVehicleIDIndex   = "vehicle_id-index"
)

type claimItem struct {
	ID            string  `dynamodbav:"id"`
	VehicleID     string  `dynamodbav:"vehicle_id"`
	BookingID     string  `dynamodbav:"booking_id,omitempty"`
	DamageType    string  `dynamodbav:"damage_type"`
	Description   string  `dynamodbav:"description"`
	EstimatedCost float64 `dynamodbav:"estimated_cost"`
	Status        string  `dynamodbav:"status"`
	Handler       string  `dynamodbav:"handler,omitempty"`
	CreatedAt     string  `dynamodbav:"created_at"`
	ProcessedAt   string  `dynamodbav:"processed_at,omitempty"`
}

// ClaimDynamoRepository persists Claim entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
//   - GSI: vehicle_id-index (PK: vehicle_id)

type ClaimDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClaimRepository = (*ClaimDynamoRepository)(nil)

func NewClaimDynamoRepository(ddb *dynamodb.Client) *ClaimDynamoRepository {
	return &ClaimDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLAIMS_TABLE", defaultClaimsTableName),
	}
}

func (r *ClaimDynamoRepository) Create(ctx context.Context, c entities.Claim) (entities.Claim, error) {
	it := toClaimItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Claim{}, err
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
		return entities.Claim{}, err
	}
	return c, nil
}

func (r *ClaimDynamoRepository) GetByID(ctx context.Context, id string) (entities.Claim, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Claim{}, err
	}
	if len(out.Item) == 0 {
		return entities.Claim{}, nil
	}

	var it claimItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Claim{}, err
	}
	return fromClaimItem(it), nil
}

func (r *ClaimDynamoRepository) List(ctx context.Context) ([]entities.Claim, error) {
	claims := make([]entities.Claim, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it claimItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			claims = append(claims, fromClaimItem(it))
		}
	}
	return claims, nil
}

func (r *ClaimDynamoRepository) ListByStatus(ctx context.Context, status entities.ClaimStatus) ([]entities.Claim, error) {
	return r.queryIndex(ctx, claimsStatusIndex, "#status = :v", map[string]string{"#status": "status"}, string(status))
}

func (r *ClaimDynamoRepository) ListByVehicle(ctx context.Context, vehicleID string) ([]entities.Claim, error) {
	return r.queryIndex(ctx, claimsVehicleIDIndex, "vehicle_id = :v", nil, vehicleID)
}

func (r *ClaimDynamoRepository) queryIndex(ctx context.Context, index, keyCond string, names map[string]string, value string) ([]entities.Claim, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCond),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		ExpressionAttributeNames: names,
	})
	if err != nil {
		return nil, err
	}

	claims := make([]entities.Claim, 0, len(out.Items))
	for _, raw := range out.Items {
		var it claimItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		claims = append(claims, fromClaimItem(it))
	}
	return claims, nil
}

// UpdateAdjudication records an administrator override. The condition
// pins pending_approval, so two concurrent overrides of the same claim
// cannot both settle it; the loser gets a zero claim back.
func (r *ClaimDynamoRepository) UpdateAdjudication(ctx context.Context, id string, status entities.ClaimStatus, handler string, processedAt *time.Time) (entities.Claim, error) {
	expr := "SET #status = :status, #handler = :handler"
	values := map[string]types.AttributeValue{
		":status":  &types.AttributeValueMemberS{Value: string(status)},
		":handler": &types.AttributeValueMemberS{Value: handler},
		":pending": &types.AttributeValueMemberS{Value: string(entities.ClaimStatusPendingApproval)},
	}
	names := map[string]string{
		"#id":      "id",
		"#status":  "status",
		"#handler": "handler",
	}
	if processedAt != nil {
		expr += ", #processed_at = :processed_at"
		values[":processed_at"] = &types.AttributeValueMemberS{Value: processedAt.UTC().Format(time.RFC3339Nano)}
		names["#processed_at"] = "processed_at"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Claim{}, nil
		}
		return entities.Claim{}, err
	}

	var it claimItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Claim{}, err
	}
	return fromClaimItem(it), nil
}

func toClaimItem(c entities.Claim) claimItem {
	it := claimItem{
		ID:            c.ID,
		VehicleID:     c.VehicleID,
		BookingID:     c.BookingID,
		DamageType:    c.DamageType,
		Description:   c.Description,
		EstimatedCost: c.EstimatedCost,
		Status:        string(c.Status),
		Handler:       c.Handler,
		CreatedAt:     c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if c.ProcessedAt != nil {
		it.ProcessedAt = c.ProcessedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromClaimItem(it claimItem) entities.Claim {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	c := entities.Claim{
		ID:            it.ID,
		VehicleID:     it.VehicleID,
		BookingID:     it.BookingID,
		DamageType:    it.DamageType,
		Description:   it.Description,
		EstimatedCost: it.EstimatedCost,
		Status:        entities.ClaimStatus(it.Status),
		Handler:       it.Handler,
		CreatedAt:     createdAt,
	}
	if it.ProcessedAt != "" {
		if processedAt, err := time.Parse(time.RFC3339Nano, it.ProcessedAt); err == nil {
			c.ProcessedAt = &processedAt
		}
	}
	return c
}
