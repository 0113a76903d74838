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
	defaultBookingsTableName    = "bookings"
	defaultAccessCodesTableName = "access_codes"
)

type bookingItem struct {
	ID            string  `dynamodbav:"id"`
	VehicleID     string  `dynamodbav:"vehicle_id"`
	CustomerName  string  `dynamodbav:"customer_name"`
	CustomerPhone string  `dynamodbav:"customer_phone"`
	CustomerCNIC  string  `dynamodbav:"customer_cnic"`
	StartDate     string  `dynamodbav:"start_date"`
	EndDate       string  `dynamodbav:"end_date"`
	TotalAmount   float64 `dynamodbav:"total_amount"`
	Status        string  `dynamodbav:"status"`
	AccessCode    string  `dynamodbav:"access_code"`
	CreatedAt     string  `dynamodbav:"created_at"`
	UpdatedAt     string  `dynamodbav:"updated_at"`
}

type accessCodeItem struct {
	Code      string `dynamodbav:"code"`
	BookingID string `dynamodbav:"booking_id"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - bookings:     PK id (string)
//   - access_codes: PK code (string)
//
// The access_codes table is a uniqueness guard. Create writes the
// booking and its guard item in one TransactWriteItems call, so two
// bookings can never hold the same keyless-entry code.

type BookingDynamoRepository struct {
	ddb              *dynamodb.Client
	tableName        string
	accessCodesTable string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:              ddb,
		tableName:        getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
		accessCodesTable: getenvDefault("ACCESS_CODES_TABLE", defaultAccessCodesTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	bookingAV, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.Booking{}, err
	}
	guardAV, err := attributevalue.MarshalMap(accessCodeItem{Code: b.AccessCode, BookingID: b.ID})
	if err != nil {
		return entities.Booking{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                bookingAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.accessCodesTable),
					Item:                guardAV,
					ConditionExpression: aws.String("attribute_not_exists(#code)"),
					ExpressionAttributeNames: map[string]string{
						"#code": "code",
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && guardConditionFailed(tce) {
			return entities.Booking{}, interfaces.ErrAccessCodeTaken
		}
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) GetByAccessCode(ctx context.Context, code string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.accessCodesTable),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var guard accessCodeItem
	if err := attributevalue.UnmarshalMap(out.Item, &guard); err != nil {
		return entities.Booking{}, err
	}
	return r.GetByID(ctx, guard.BookingID)
}

func (r *BookingDynamoRepository) List(ctx context.Context, status entities.BookingStatus) ([]entities.Booking, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if status != "" {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
	}

	bookings := make([]entities.Booking, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it bookingItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			bookings = append(bookings, fromBookingItem(it))
		}
	}
	return bookings, nil
}

// UpdateStatus closes a booking. The condition pins the active status,
// so of two concurrent Complete/Cancel calls exactly one wins; the
// loser gets a zero booking back, same as the vehicle transitions.
func (r *BookingDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :active"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":active":     &types.AttributeValueMemberS{Value: string(entities.BookingStatusActive)},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Booking{}, nil
		}
		return entities.Booking{}, err
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		ID:            b.ID,
		VehicleID:     b.VehicleID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerCNIC:  b.CustomerCNIC,
		StartDate:     b.StartDate.UTC().Format(time.RFC3339Nano),
		EndDate:       b.EndDate.UTC().Format(time.RFC3339Nano),
		TotalAmount:   b.TotalAmount,
		Status:        string(b.Status),
		AccessCode:    b.AccessCode,
		CreatedAt:     b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	startDate, _ := time.Parse(time.RFC3339Nano, it.StartDate)
	endDate, _ := time.Parse(time.RFC3339Nano, it.EndDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Booking{
		ID:            it.ID,
		VehicleID:     it.VehicleID,
		CustomerName:  it.CustomerName,
		CustomerPhone: it.CustomerPhone,
		CustomerCNIC:  it.CustomerCNIC,
		StartDate:     startDate,
		EndDate:       endDate,
		TotalAmount:   it.TotalAmount,
		Status:        entities.BookingStatus(it.Status),
		AccessCode:    it.AccessCode,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
