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
	defaultCompetitorPricesTableName = "competitor_prices"
	competitorPricesProductIDIndex   = "product_id-index"
)

type competitorPriceItem struct {
	ID        string `dynamodbav:"id"`
	ProductID string `dynamodbav:"product_id"`
	Source    string `dynamodbav:"source"`
	Price     string `dynamodbav:"price"`
	URL       string `dynamodbav:"url,omitempty"`
	ScrapedAt string `dynamodbav:"scraped_at"`
}

// CompetitorPriceDynamoRepository persists competitor observations in DynamoDB.
// Observations are never updated.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: product_id-index (PK: product_id)

type CompetitorPriceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICompetitorPriceRepository = (*CompetitorPriceDynamoRepository)(nil)

func NewCompetitorPriceDynamoRepository(ddb DynamoAPI, tableName string) *CompetitorPriceDynamoRepository {
	return &CompetitorPriceDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultCompetitorPricesTableName),
	}
}

func (r *CompetitorPriceDynamoRepository) Create(ctx context.Context, p entities.CompetitorPrice) (entities.CompetitorPrice, error) {
	av, err := attributevalue.MarshalMap(toCompetitorPriceItem(p))
	if err != nil {
		return entities.CompetitorPrice{}, err
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
		return entities.CompetitorPrice{}, err
	}
	return p, nil
}

func (r *CompetitorPriceDynamoRepository) ListByProductID(ctx context.Context, productID string) ([]entities.CompetitorPrice, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(competitorPricesProductIDIndex),
		KeyConditionExpression: aws.String("product_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: productID},
		},
	})

	prices := []entities.CompetitorPrice{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it competitorPriceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			prices = append(prices, fromCompetitorPriceItem(it))
		}
	}
	return prices, nil
}

func toCompetitorPriceItem(p entities.CompetitorPrice) competitorPriceItem {
	return competitorPriceItem{
		ID:        p.ID,
		ProductID: p.ProductID,
		Source:    p.Source,
		Price:     floatToString(p.Price),
		URL:       p.URL,
		ScrapedAt: formatTime(p.ScrapedAt),
	}
}

func fromCompetitorPriceItem(it competitorPriceItem) entities.CompetitorPrice {
	return entities.CompetitorPrice{
		ID:        it.ID,
		ProductID: it.ProductID,
		Source:    it.Source,
		Price:     stringToFloat(it.Price),
		URL:       it.URL,
		ScrapedAt: parseTime(it.ScrapedAt),
	}
}
