package routes

import (
	"pricing_agent/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts  = "/products"
	PathCustomers = "/customers"
	PathMarket    = "/market"
)

func addPricingRoutes(rg *gin.RouterGroup, productHandler *handlers.ProductHandler, customerHandler *handlers.CustomerHandler, marketHandler *handlers.MarketHandler) {
	products := rg.Group(PathProducts)
	{
		products.POST("", productHandler.CreateProduct)
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
	}

	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.RegisterCustomer)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.PUT("/:id/type", customerHandler.ClassifyCustomer)
	}

	market := rg.Group(PathMarket)
	{
		market.GET("/analysis/:product_id", marketHandler.GetMarketAnalysis)
		market.GET("/decisions/:product_id", marketHandler.ListDecisions)
		market.GET("/decisions/:product_id/export", marketHandler.ExportDecisions)
		market.POST("/:product_id/prices", marketHandler.RecordCompetitorPrice)
		market.GET("/:product_id/prices", marketHandler.ListCompetitorPrices)
	}
}
