package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"pricing_agent/internal/domain/entities"
	"pricing_agent/internal/domain/pricing"
	"pricing_agent/internal/infrastructure/metrics"
	"pricing_agent/internal/usecase/interfaces"
	"strings"
	"time"
)

var (
	ErrSuggestionUnavailable = errors.New("suggestion service unavailable")
	ErrSuggestionUnusable    = errors.New("suggestion unusable")
)

// IStrategyResolver turns a product, its market and a customer class into a proposal.
// It never fails: without a usable suggestion it applies the fallback rules.
type IStrategyResolver interface {
	Resolve(ctx context.Context, product entities.Product, market entities.MarketSummary, customerType entities.CustomerType) entities.PricingProposal
}

type StrategyResolverConfig struct {
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
	Rules       pricing.FallbackRules
}

type StrategyResolver struct {
	gateway interfaces.ISuggestionGateway
	cfg     StrategyResolverConfig
}

var _ IStrategyResolver = (*StrategyResolver)(nil)

// NewStrategyResolver builds a resolver. A nil gateway means every request uses the fallback rules.
func NewStrategyResolver(gateway interfaces.ISuggestionGateway, cfg StrategyResolverConfig) *StrategyResolver {
	defaults := pricing.DefaultFallbackRules()
	if cfg.Rules.CurrencySymbol == "" {
		cfg.Rules.CurrencySymbol = defaults.CurrencySymbol
	}
	if cfg.Rules.PriceDecrement <= 0 {
		cfg.Rules.PriceDecrement = defaults.PriceDecrement
	}
	return &StrategyResolver{gateway: gateway, cfg: cfg}
}

func (r *StrategyResolver) Resolve(ctx context.Context, product entities.Product, market entities.MarketSummary, customerType entities.CustomerType) entities.PricingProposal {
	prompt := BuildSalesExpertPrompt(product, market, customerType, r.cfg.Rules)

	proposal, err := r.suggest(ctx, product, prompt)
	if err == nil {
		metrics.SuggestionOutcomes.WithLabelValues(metrics.SuggestionAccepted).Inc()
		log.Printf("[pricing][resolver] suggestion accepted product_id=%s strategy=%s price=%.2f", product.ID, proposal.Strategy, proposal.Price)
		return proposal
	}

	outcome := metrics.SuggestionUnavailable
	if errors.Is(err, ErrSuggestionUnusable) {
		outcome = metrics.SuggestionUnusable
	}
	metrics.SuggestionOutcomes.WithLabelValues(outcome).Inc()
	log.Printf("[pricing][resolver] falling back product_id=%s customer_type=%s reason=%s err=%v", product.ID, customerType, outcome, err)

	return r.cfg.Rules.Propose(product, market, customerType)
}

func (r *StrategyResolver) suggest(ctx context.Context, product entities.Product, prompt string) (entities.PricingProposal, error) {
	if r.gateway == nil {
		return entities.PricingProposal{}, fmt.Errorf("%w: gateway not configured", ErrSuggestionUnavailable)
	}

	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := r.gateway.Complete(ctx, interfaces.SuggestionRequest{
		SystemPrompt: suggestionSystemPrompt,
		Prompt:       prompt,
		Temperature:  r.cfg.Temperature,
		MaxTokens:    r.cfg.MaxTokens,
		JSONOutput:   true,
	})
	metrics.SuggestionLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		return entities.PricingProposal{}, fmt.Errorf("%w: %v", ErrSuggestionUnavailable, err)
	}

	return parseSuggestion(raw, product)
}

type suggestionPayload struct {
	Strategy         string   `json:"strategy"`
	RecommendedPrice *float64 `json:"recommended_price"`
	Reasoning        string   `json:"reasoning"`
	MessageAngle     string   `json:"message_angle"`
}

// parseSuggestion validates the model output. A missing or zero price keeps
// the current price; the floor is checked later by the enforcer.
func parseSuggestion(raw string, product entities.Product) (entities.PricingProposal, error) {
	body := stripCodeFence(raw)
	if body == "" {
		return entities.PricingProposal{}, fmt.Errorf("%w: empty response", ErrSuggestionUnusable)
	}

	var payload suggestionPayload
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return entities.PricingProposal{}, fmt.Errorf("%w: %v", ErrSuggestionUnusable, err)
	}

	strategy := entities.Strategy(strings.ToLower(strings.TrimSpace(payload.Strategy)))
	if !strategy.Valid() {
		return entities.PricingProposal{}, fmt.Errorf("%w: unknown strategy %q", ErrSuggestionUnusable, payload.Strategy)
	}

	price := product.CurrentPrice
	if payload.RecommendedPrice != nil && *payload.RecommendedPrice != 0 {
		price = *payload.RecommendedPrice
	}
	if price < 0 {
		return entities.PricingProposal{}, fmt.Errorf("%w: negative price %v", ErrSuggestionUnusable, price)
	}

	return entities.PricingProposal{
		Strategy:     strategy,
		Price:        price,
		Reasoning:    strings.TrimSpace(payload.Reasoning),
		MessageAngle: strings.TrimSpace(payload.MessageAngle),
	}, nil
}

// stripCodeFence removes a markdown code fence (```json ... ``` or ``` ... ```) around the payload.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if _, after, ok := strings.Cut(s, "```json"); ok {
		body, _, _ := strings.Cut(after, "```")
		return strings.TrimSpace(body)
	}
	if _, after, ok := strings.Cut(s, "```"); ok {
		body, _, _ := strings.Cut(after, "```")
		return strings.TrimSpace(body)
	}
	return s
}
