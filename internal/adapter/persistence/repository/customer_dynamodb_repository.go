package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pricing_agent/internal/domain/entities"
	"pricing_agent/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCustomersTableName      = "customers"
	defaultCustomerPhonesTableName = "customer_phones"
)

type customerItem struct {
	ID              string `dynamodbav:"id"`
	Phone           string `dynamodbav:"phone"`
	Name            string `dynamodbav:"name,omitempty"`
	CustomerType    string `dynamodbav:"customer_type"`
	Confidence      string `dynamodbav:"confidence"`
	CreatedAt       string `dynamodbav:"created_at"`
	LastInteraction string `dynamodbav:"last_interaction"`
}

// phoneClaimItem reserves a phone number for exactly one customer.
type phoneClaimItem struct {
	Phone      string `dynamodbav:"phone"`
	CustomerID string `dynamodbav:"customer_id"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - customers PK: id (string)
//   - customer_phones PK: phone (string)
//
// We purposely key the claim table by phone: the customer and its claim are
// written in one transaction, which guarantees 1 customer per phone.

type CustomerDynamoRepository struct {
	ddb             DynamoAPI
	tableName       string
	phonesTableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb DynamoAPI, tableName, phonesTableName string) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:             ddb,
		tableName:       tableOrDefault(tableName, defaultCustomersTableName),
		phonesTableName: tableOrDefault(phonesTableName, defaultCustomerPhonesTableName),
	}
}

// Create writes the customer and its phone claim atomically. When the phone is
// already claimed, the customer owning it is returned instead.
func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
	}
	claim, err := attributevalue.MarshalMap(phoneClaimItem{Phone: c.Phone, CustomerID: c.ID})
	if err != nil {
		return entities.Customer{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.phonesTableName),
					Item:                claim,
					ConditionExpression: aws.String("attribute_not_exists(#phone)"),
					ExpressionAttributeNames: map[string]string{
						"#phone": "phone",
					},
				},
			},
		},
	})
	if err == nil {
		return c, nil
	}
	if !phoneAlreadyClaimed(err) {
		return entities.Customer{}, err
	}

	existing, err := r.GetByPhone(ctx, c.Phone)
	if err != nil {
		return entities.Customer{}, err
	}
	if existing.ID == "" {
		return entities.Customer{}, fmt.Errorf("phone %s is claimed by a missing customer", c.Phone)
	}
	return existing, nil
}

// phoneAlreadyClaimed reports whether the claim put (second transaction item)
// failed its condition.
func phoneAlreadyClaimed(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) || len(tce.CancellationReasons) < 2 {
		return false
	}
	return aws.ToString(tce.CancellationReasons[1].Code) == "ConditionalCheckFailed"
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

// GetByPhone resolves the phone claim with a consistent read, then loads the customer.
func (r *CustomerDynamoRepository) GetByPhone(ctx context.Context, phone string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.phonesTableName),
		Key: map[string]types.AttributeValue{
			"phone": &types.AttributeValueMemberS{Value: phone},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var claim phoneClaimItem
	if err := attributevalue.UnmarshalMap(out.Item, &claim); err != nil {
		return entities.Customer{}, err
	}
	return r.GetByID(ctx, claim.CustomerID)
}

// UpdateClassification stores the classifier output. A missing customer
// yields a zero Customer.
func (r *CustomerDynamoRepository) UpdateClassification(ctx context.Context, id string, customerType entities.CustomerType, confidence float64) (entities.Customer, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #customer_type = :customer_type, #confidence = :confidence, #last_interaction = :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":customer_type": &types.AttributeValueMemberS{Value: string(customerType)},
			":confidence":    &types.AttributeValueMemberS{Value: floatToString(confidence)},
			":now":           &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#customer_type":    "customer_type",
			"#confidence":       "confidence",
			"#last_interaction": "last_interaction",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Customer{}, nil
		}
		return entities.Customer{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		ID:              c.ID,
		Phone:           c.Phone,
		Name:            c.Name,
		CustomerType:    string(c.CustomerType),
		Confidence:      floatToString(c.Confidence),
		CreatedAt:       formatTime(c.CreatedAt),
		LastInteraction: formatTime(c.LastInteraction),
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	ct := entities.CustomerType(it.CustomerType)
	if !ct.Valid() {
		ct = entities.CustomerTypeUnknown
	}
	return entities.Customer{
		ID:              it.ID,
		Phone:           it.Phone,
		Name:            it.Name,
		CustomerType:    ct,
		Confidence:      stringToFloat(it.Confidence),
		CreatedAt:       parseTime(it.CreatedAt),
		LastInteraction: parseTime(it.LastInteraction),
	}
}
