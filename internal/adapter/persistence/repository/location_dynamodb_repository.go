package repository

import (
	"context"
	"time"

	"car_rental/internal/domain/entities"
	"car_rental/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLocationsTableName = "location_samples"

type locationItem struct {
	VehicleID  string  `dynamodbav:"vehicle_id"`
	CapturedAt string  `dynamodbav:"captured_at"`
	ID         string  `dynamodbav:"id"`
	Latitude   float64 `dynamodbav:"latitude"`
	Longitude  float64 `dynamodbav:"longitude"`
	OutOfRange bool    `dynamodbav:"out_of_range"`
}

// LocationDynamoRepository persists the append-only GPS history in
// DynamoDB.
//
// Table requirements:
//   - PK: vehicle_id (string)
//   - SK: captured_at (string, RFC3339Nano)
//
// The sort key is the capture timestamp, so a reverse Query yields the
// newest samples first without any post-sorting.

type LocationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILocationRepository = (*LocationDynamoRepository)(nil)

func NewLocationDynamoRepository(ddb *dynamodb.Client) *LocationDynamoRepository {
	return &LocationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LOCATIONS_TABLE", defaultLocationsTableName),
	}
}

func (r *LocationDynamoRepository) Append(ctx context.Context, s entities.LocationSample) (entities.LocationSample, error) {
	av, err := attributevalue.MarshalMap(toLocationItem(s))
	if err != nil {
		return entities.LocationSample{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.LocationSample{}, err
	}
	return s, nil
}

func (r *LocationDynamoRepository) ListByVehicle(ctx context.Context, vehicleID string, limit int) ([]entities.LocationSample, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("vehicle_id = :vid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":vid": &types.AttributeValueMemberS{Value: vehicleID},
		},
		ScanIndexForward: aws.Bool(false),
	}
	if limit > 0 {
		input.Limit = aws.Int32(int32(limit))
	}

	out, err := r.ddb.Query(ctx, input)
	if err != nil {
		return nil, err
	}

	samples := make([]entities.LocationSample, 0, len(out.Items))
	for _, raw := range out.Items {
		var it locationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		samples = append(samples, fromLocationItem(it))
	}
	return samples, nil
}

func toLocationItem(s entities.LocationSample) locationItem {
	return locationItem{
		VehicleID:  s.VehicleID,
		CapturedAt: s.CapturedAt.UTC().Format(time.RFC3339Nano),
		ID:         s.ID,
		Latitude:   s.Latitude,
		Longitude:  s.Longitude,
		OutOfRange: s.OutOfRange,
	}
}

func fromLocationItem(it locationItem) entities.LocationSample {
	capturedAt, _ := time.Parse(time.RFC3339Nano, it.CapturedAt)
	return entities.LocationSample{
		ID:         it.ID,
		VehicleID:  it.VehicleID,
		Latitude:   it.Latitude,
		Longitude:  it.Longitude,
		OutOfRange: it.OutOfRange,
		CapturedAt: capturedAt,
	}
}
