package repository

import (
	"context"

	"pricing_agent/internal/domain/entities"
	"pricing_agent/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPricingDecisionsTableName = "pricing_decisions"
	pricingDecisionsProductIDIndex   = "product_id-index"
)

type pricingDecisionItem struct {
	ID                    string `dynamodbav:"id"`
	ProductID             string `dynamodbav:"product_id"`
	CustomerID            string `dynamodbav:"customer_id,omitempty"`
	OldPrice              string `dynamodbav:"old_price"`
	NewPrice              string `dynamodbav:"new_price"`
	Strategy              string `dynamodbav:"strategy"`
	Reasoning             string `dynamodbav:"reasoning"`
	MarketAvgPrice        string `dynamodbav:"market_avg_price"`
	LowestCompetitorPrice string `dynamodbav:"lowest_competitor_price"`
	ConversionProbability string `dynamodbav:"conversion_probability"`
	CreatedAt             string `dynamodbav:"created_at"`
}

// PricingDecisionDynamoRepository is the append-only decision audit trail.
// A single conditional PutItem writes the whole decision.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: product_id-index (PK: product_id)

type PricingDecisionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPricingDecisionRepository = (*PricingDecisionDynamoRepository)(nil)

func NewPricingDecisionDynamoRepository(ddb DynamoAPI, tableName string) *PricingDecisionDynamoRepository {
	return &PricingDecisionDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultPricingDecisionsTableName),
	}
}

func (r *PricingDecisionDynamoRepository) Create(ctx context.Context, d entities.PricingDecision) (entities.PricingDecision, error) {
	av, err := attributevalue.MarshalMap(toPricingDecisionItem(d))
	if err != nil {
		return entities.PricingDecision{}, err
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
		return entities.PricingDecision{}, err
	}
	return d, nil
}

func (r *PricingDecisionDynamoRepository) ListByProductID(ctx context.Context, productID string) ([]entities.PricingDecision, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(pricingDecisionsProductIDIndex),
		KeyConditionExpression: aws.String("product_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: productID},
		},
	})

	decisions := []entities.PricingDecision{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it pricingDecisionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			decisions = append(decisions, fromPricingDecisionItem(it))
		}
	}
	return decisions, nil
}

func toPricingDecisionItem(d entities.PricingDecision) pricingDecisionItem {
	return pricingDecisionItem{
		ID:                    d.ID,
		ProductID:             d.ProductID,
		CustomerID:            d.CustomerID,
		OldPrice:              floatToString(d.OldPrice),
		NewPrice:              floatToString(d.NewPrice),
		Strategy:              string(d.Strategy),
		Reasoning:             d.Reasoning,
		MarketAvgPrice:        floatToString(d.MarketAvgPrice),
		LowestCompetitorPrice: floatToString(d.LowestCompetitorPrice),
		ConversionProbability: floatToString(d.ConversionProbability),
		CreatedAt:             formatTime(d.CreatedAt),
	}
}

func fromPricingDecisionItem(it pricingDecisionItem) entities.PricingDecision {
	return entities.PricingDecision{
		ID:                    it.ID,
		ProductID:             it.ProductID,
		CustomerID:            it.CustomerID,
		OldPrice:              stringToFloat(it.OldPrice),
		NewPrice:              stringToFloat(it.NewPrice),
		Strategy:              entities.Strategy(it.Strategy),
		Reasoning:             it.Reasoning,
		MarketAvgPrice:        stringToFloat(it.MarketAvgPrice),
		LowestCompetitorPrice: stringToFloat(it.LowestCompetitorPrice),
		ConversionProbability: stringToFloat(it.ConversionProbability),
		CreatedAt:             parseTime(it.CreatedAt),
	}
}
