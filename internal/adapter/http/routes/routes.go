package routes

import (
	"log"
	_ "pricing_agent/docs" // swag generated
	request "pricing_agent/internal/adapter/http/dto/request"
	"pricing_agent/internal/adapter/http/handlers"
	repository2 "pricing_agent/internal/adapter/persistence/repository"
	"pricing_agent/internal/config"
	"pricing_agent/internal/domain/pricing"
	"pricing_agent/internal/infrastructure/cache"
	"pricing_agent/internal/infrastructure/database"
	"pricing_agent/internal/infrastructure/llm"
	"pricing_agent/internal/infrastructure/metrics"
	"pricing_agent/internal/usecase"
	"pricing_agent/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg := config.Load()

	setMiddlewares()
	metrics.Init()
	request.RegisterValidations()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(cfg)

	err := router.Run(":" + cfg.Server.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	ddb := database.ConnectDynamoDB(cfg.DynamoDB)

	productRepo := repository2.NewProductDynamoRepository(ddb, cfg.DynamoDB.ProductsTable)
	priceRepo := repository2.NewCompetitorPriceDynamoRepository(ddb, cfg.DynamoDB.CompetitorPricesTable)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb, cfg.DynamoDB.CustomersTable, cfg.DynamoDB.CustomerPhonesTable)
	decisionRepo := repository2.NewPricingDecisionDynamoRepository(ddb, cfg.DynamoDB.DecisionsTable)

	var marketCache interfaces.IMarketSummaryCache
	rdb, err := cache.ConnectRedis(cfg.Redis)
	if err != nil {
		log.Printf("Market cache not configured: %v", err)
	} else if rdb != nil {
		marketCache = repository2.NewMarketSummaryRedisCache(rdb, cfg.Redis.TTL)
	}

	var suggestionGateway interfaces.ISuggestionGateway
	if cfg.Suggestion.Disabled {
		log.Printf("Suggestion service disabled, using fallback rules only")
	} else if gw, err := llm.NewOpenAISuggestionGateway(cfg.Suggestion); err != nil {
		log.Printf("Suggestion service not configured: %v", err)
	} else {
		suggestionGateway = gw
	}

	productUseCase := usecase.NewProductUseCase(productRepo)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo)
	marketUseCase := usecase.NewMarketUseCase(productRepo, priceRepo, marketCache)
	resolver := usecase.NewStrategyResolver(suggestionGateway, usecase.StrategyResolverConfig{
		Temperature: cfg.Suggestion.Temperature,
		MaxTokens:   cfg.Suggestion.MaxTokens,
		Timeout:     cfg.Suggestion.Timeout,
		Rules: pricing.FallbackRules{
			PriceDecrement: cfg.Pricing.PriceDecrement,
			CurrencySymbol: cfg.Pricing.CurrencySymbol,
		},
	})
	pricingUseCase := usecase.NewPricingUseCase(productRepo, customerRepo, decisionRepo, marketUseCase, resolver)

	productHandler := handlers.NewProductHandler(productUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	marketHandler := handlers.NewMarketHandler(marketUseCase, pricingUseCase, productUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPricingRoutes(v1, productHandler, customerHandler, marketHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
