package server

import (
	market "farmer-market/internal/marketService"
	"farmer-market/internal/realtime"
	"farmer-market/internal/sms"
	handler "farmer-market/services/market/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(marketService *market.MarketService, interpreter *sms.Interpreter, hub *realtime.Hub) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	marketHandler := handler.NewMarketHandler(marketService, interpreter)

	router.GET("/", marketHandler.IndexHandler)

	// Inbound SMS webhook for non-internet users
	router.POST("/sms", marketHandler.SMSWebhookHandler)

	// Realtime bid events for the dashboard
	router.GET("/ws", hub.HandleWS)

	api := router.Group("/api/v1")
	{
		api.GET("/lots", marketHandler.GetLotsHandler)
		api.GET("/historical_prices/:crop_type/:district", marketHandler.HistoricalPricesHandler)
		api.GET("/generate_contract/:lot_id", marketHandler.GenerateContractHandler)
		api.POST("/confirm_sale/:lot_id", marketHandler.ConfirmSaleHandler)
		api.POST("/login", marketHandler.LoginHandler)
	}

	return router
}
