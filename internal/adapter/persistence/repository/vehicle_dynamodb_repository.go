package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"car_rental/internal/domain/entities"
	"car_rental/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultVehiclesTableName      = "vehicles"
	defaultLicensePlatesTableName = "license_plates"
)

type geoPointItem struct {
	Latitude  float64 `dynamodbav:"latitude"`
	Longitude float64 `dynamodbav:"longitude"`
}

type vehicleItem struct {
	ID              string        `dynamodbav:"id"`
	LicensePlate    string        `dynamodbav:"license_plate"`
	Model           string        `dynamodbav:"model"`
	Category        string        `dynamodbav:"category"`
	DailyRate       float64       `dynamodbav:"daily_rate"`
	Status          string        `dynamodbav:"status"`
	PriorStatus     string        `dynamodbav:"prior_status,omitempty"`
	TrackerType     string        `dynamodbav:"tracker_type"`
	TrackerInterval int           `dynamodbav:"tracker_interval_s"`
	CurrentLocation *geoPointItem `dynamodbav:"current_location,omitempty"`
	AnchorLocation  *geoPointItem `dynamodbav:"anchor_location,omitempty"`
	CreatedAt       string        `dynamodbav:"created_at"`
	UpdatedAt       string        `dynamodbav:"updated_at"`
}

// plateGuardItem reserves a license plate for exactly one vehicle.
type plateGuardItem struct {
	Plate     string `dynamodbav:"plate"`
	VehicleID string `dynamodbav:"vehicle_id"`
}

// VehicleDynamoRepository persists Vehicle entities in DynamoDB.
//
// Table requirements:
//   - vehicles:       PK id (string)
//   - license_plates: PK plate (string)
//
// The license_plates table is a uniqueness guard. Create writes the
// vehicle and its guard item in one TransactWriteItems call, so two
// vehicles can never share a plate.
//
// Every state transition is a conditional update keyed on the current
// status. DynamoDB rejects the write when another writer changed the
// status first, which is how concurrent bookings on the same vehicle
// are serialized without locks.

type VehicleDynamoRepository struct {
	ddb         *dynamodb.Client
	tableName   string
	platesTable string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb *dynamodb.Client) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{
		ddb:         ddb,
		tableName:   getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
		platesTable: getenvDefault("LICENSE_PLATES_TABLE", defaultLicensePlatesTableName),
	}
}

func (r *VehicleDynamoRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	vehicleAV, err := attributevalue.MarshalMap(toVehicleItem(v))
	if err != nil {
		return entities.Vehicle{}, err
	}
	guardAV, err := attributevalue.MarshalMap(plateGuardItem{Plate: v.LicensePlate, VehicleID: v.ID})
	if err != nil {
		return entities.Vehicle{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                vehicleAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.platesTable),
					Item:                guardAV,
					ConditionExpression: aws.String("attribute_not_exists(#plate)"),
					ExpressionAttributeNames: map[string]string{
						"#plate": "plate",
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && guardConditionFailed(tce) {
			return entities.Vehicle{}, interfaces.ErrLicensePlateTaken
		}
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Item) == 0 {
		return entities.Vehicle{}, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

// List scans the fleet, optionally filtered by status and category.
// The fleet is small enough that a filtered scan beats maintaining
// two GSIs for what is a back-office listing.
func (r *VehicleDynamoRepository) List(ctx context.Context, status entities.VehicleStatus, category entities.VehicleCategory) ([]entities.Vehicle, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}

	var filters []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if status != "" {
		filters = append(filters, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(status)}
	}
	if category != "" {
		filters = append(filters, "#category = :category")
		names["#category"] = "category"
		values[":category"] = &types.AttributeValueMemberS{Value: string(category)}
	}
	if len(filters) > 0 {
		input.FilterExpression = aws.String(strings.Join(filters, " AND "))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	vehicles := make([]entities.Vehicle, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it vehicleItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			vehicles = append(vehicles, fromVehicleItem(it))
		}
	}
	return vehicles, nil
}

func (r *VehicleDynamoRepository) TransitionStatus(ctx context.Context, id string, from, to entities.VehicleStatus) (entities.Vehicle, bool, error) {
	return r.conditionalUpdate(ctx, id, from,
		"SET #status = :to, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":to": &types.AttributeValueMemberS{Value: string(to)},
		},
		nil,
	)
}

func (r *VehicleDynamoRepository) MarkOutOfRange(ctx context.Context, id string, from entities.VehicleStatus) (entities.Vehicle, bool, error) {
	return r.conditionalUpdate(ctx, id, from,
		"SET #status = :to, #prior_status = :prior, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":to":    &types.AttributeValueMemberS{Value: string(entities.VehicleStatusOutOfRange)},
			":prior": &types.AttributeValueMemberS{Value: string(from)},
		},
		map[string]string{"#prior_status": "prior_status"},
	)
}

func (r *VehicleDynamoRepository) ReturnToRange(ctx context.Context, id string, to entities.VehicleStatus) (entities.Vehicle, bool, error) {
	return r.conditionalUpdate(ctx, id, entities.VehicleStatusOutOfRange,
		"SET #status = :to, #updated_at = :updated_at REMOVE #prior_status",
		map[string]types.AttributeValue{
			":to": &types.AttributeValueMemberS{Value: string(to)},
		},
		map[string]string{"#prior_status": "prior_status"},
	)
}

// conditionalUpdate applies updateExpr only while the stored status
// still equals `from`. A failed condition is not an error: it reports
// updated=false so the caller can treat the race loser gracefully.
func (r *VehicleDynamoRepository) conditionalUpdate(
	ctx context.Context,
	id string,
	from entities.VehicleStatus,
	updateExpr string,
	values map[string]types.AttributeValue,
	extraNames map[string]string,
) (entities.Vehicle, bool, error) {
	values[":from"] = &types.AttributeValueMemberS{Value: string(from)}
	values[":updated_at"] = &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)}

	names := mergeNames(extraNames, map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	})

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Vehicle{}, false, nil
		}
		return entities.Vehicle{}, false, err
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Vehicle{}, false, err
	}
	return fromVehicleItem(it), true, nil
}

func (r *VehicleDynamoRepository) UpdateLocation(ctx context.Context, id string, lat, lng float64) (entities.Vehicle, error) {
	loc, err := attributevalue.Marshal(geoPointItem{Latitude: lat, Longitude: lng})
	if err != nil {
		return entities.Vehicle{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #current_location = :loc, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":loc":        loc,
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":               "id",
			"#current_location": "current_location",
			"#updated_at":       "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Vehicle{}, nil
		}
		return entities.Vehicle{}, err
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func toVehicleItem(v entities.Vehicle) vehicleItem {
	it := vehicleItem{
		ID:              v.ID,
		LicensePlate:    v.LicensePlate,
		Model:           v.Model,
		Category:        string(v.Category),
		DailyRate:       v.DailyRate,
		Status:          string(v.Status),
		PriorStatus:     string(v.PriorStatus),
		TrackerType:     v.TrackerType,
		TrackerInterval: v.TrackerInterval,
		CreatedAt:       v.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       v.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if v.CurrentLocation != nil {
		it.CurrentLocation = &geoPointItem{Latitude: v.CurrentLocation.Latitude, Longitude: v.CurrentLocation.Longitude}
	}
	if v.AnchorLocation != nil {
		it.AnchorLocation = &geoPointItem{Latitude: v.AnchorLocation.Latitude, Longitude: v.AnchorLocation.Longitude}
	}
	return it
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	v := entities.Vehicle{
		ID:              it.ID,
		LicensePlate:    it.LicensePlate,
		Model:           it.Model,
		Category:        entities.VehicleCategory(it.Category),
		DailyRate:       it.DailyRate,
		Status:          entities.VehicleStatus(it.Status),
		PriorStatus:     entities.VehicleStatus(it.PriorStatus),
		TrackerType:     it.TrackerType,
		TrackerInterval: it.TrackerInterval,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
	if it.CurrentLocation != nil {
		v.CurrentLocation = &entities.GeoPoint{Latitude: it.CurrentLocation.Latitude, Longitude: it.CurrentLocation.Longitude}
	}
	if it.AnchorLocation != nil {
		v.AnchorLocation = &entities.GeoPoint{Latitude: it.AnchorLocation.Latitude, Longitude: it.AnchorLocation.Longitude}
	}
	return v
}
