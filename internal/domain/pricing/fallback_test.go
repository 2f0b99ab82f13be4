package pricing

import (
	"testing"

	"pricing_agent/internal/domain/entities"
)

func TestFallbackRules_Propose(t *testing.T) {
	rules := DefaultFallbackRules()
	product := entities.Product{ID: "p-1", Name: "Oraimo Power Bank 20000mAh", CurrentPrice: 15000, FloorPrice: 13000}

	t.Run("price sensitive drops below lowest competitor", func(t *testing.T) {
		got := rules.Propose(product, entities.MarketSummary{Average: 14500, Lowest: 14000, Count: 2}, entities.CustomerTypePriceSensitive)
		if got.Strategy != entities.StrategyPriceDrop || got.Price != 13900 {
			t.Fatalf("unexpected proposal: %+v", got)
		}
		if got.Reasoning != "Price-sensitive customer. Dropped to ₦13900 to compete." {
			t.Fatalf("unexpected reasoning: %q", got.Reasoning)
		}
		if got.MessageAngle != "Best price in the market right now" {
			t.Fatalf("unexpected angle: %q", got.MessageAngle)
		}
	})

	t.Run("price sensitive target clamps to floor", func(t *testing.T) {
		got := rules.Propose(product, entities.MarketSummary{Average: 12500, Lowest: 12000, Count: 1}, entities.CustomerTypePriceSensitive)
		if got.Strategy != entities.StrategyPriceDrop || got.Price != 13000 {
			t.Fatalf("unexpected proposal: %+v", got)
		}
	})

	t.Run("price sensitive without beneficial drop", func(t *testing.T) {
		got := rules.Propose(product, entities.MarketSummary{Average: 16000, Lowest: 15100, Count: 1}, entities.CustomerTypePriceSensitive)
		if got.Strategy != entities.StrategyValueReinforcement || got.Price != 15000 {
			t.Fatalf("unexpected proposal: %+v", got)
		}
	})

	t.Run("price sensitive with no market data uses current price", func(t *testing.T) {
		got := rules.Propose(product, entities.MarketSummary{}, entities.CustomerTypePriceSensitive)
		if got.Strategy != entities.StrategyPriceDrop || got.Price != 14900 {
			t.Fatalf("unexpected proposal: %+v", got)
		}
	})

	for _, ct := range []entities.CustomerType{entities.CustomerTypeQualitySensitive, entities.CustomerTypeUnknown} {
		t.Run(string(ct)+" keeps current price", func(t *testing.T) {
			for _, m := range []entities.MarketSummary{{}, {Average: 9000, Lowest: 8000, Count: 4}, {Average: 20000, Lowest: 19000, Count: 1}} {
				got := rules.Propose(product, m, ct)
				if got.Strategy != entities.StrategyValueReinforcement || got.Price != 15000 {
					t.Fatalf("unexpected proposal for %+v: %+v", m, got)
				}
				if got.Reasoning != "Maintaining price and emphasizing quality/warranty." || got.MessageAngle != "Original product with warranty" {
					t.Fatalf("unexpected texts: %+v", got)
				}
			}
		})
	}
}

func TestFallbackRules_FormatPrice(t *testing.T) {
	r := FallbackRules{CurrencySymbol: "$"}
	if got := r.FormatPrice(13900.5); got != "$13900.5" {
		t.Fatalf("unexpected format: %s", got)
	}
}
