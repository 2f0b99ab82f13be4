package usecase

import (
	"fmt"
	"pricing_agent/internal/domain/entities"
	"pricing_agent/internal/domain/pricing"
)

const suggestionSystemPrompt = "You are a helpful assistant that responds in valid JSON format."

const salesExpertPrompt = `You are a sales expert for Nigerian MSMEs.

Current Situation:
- Product: %s
- Current Price: %s
- Floor Price (DO NOT GO BELOW): %s
- Market Average Price: %s
- Lowest Competitor Price: %s
- Customer Type: %s

Your task: Decide the best strategy to maximize conversion while respecting the floor price.

If customer is PRICE_SENSITIVE:
- Consider dropping price to compete (but never below floor price)
- Calculate optimal price point

If customer is QUALITY_SENSITIVE:
- DO NOT drop price
- Focus on value reinforcement (warranty, originality, durability)

Respond in JSON format:
{
    "strategy": "price_drop" or "value_reinforcement",
    "recommended_price": <number>,
    "reasoning": "<brief explanation>",
    "message_angle": "<key talking point for customer>"
}
`

// BuildSalesExpertPrompt renders the suggestion prompt. Missing market data is
// replaced by the current price so the model never sees a zero price.
func BuildSalesExpertPrompt(product entities.Product, market entities.MarketSummary, customerType entities.CustomerType, rules pricing.FallbackRules) string {
	return fmt.Sprintf(salesExpertPrompt,
		product.Name,
		rules.FormatPrice(product.CurrentPrice),
		rules.FormatPrice(product.FloorPrice),
		rules.FormatPrice(market.AverageOr(product.CurrentPrice)),
		rules.FormatPrice(market.LowestOr(product.CurrentPrice)),
		customerType,
	)
}
