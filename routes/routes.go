package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"itinera/handlers"
	"itinera/utils"
)

// RegisterCostingRoutes sets up the cost aggregation endpoints.
func RegisterCostingRoutes(r *gin.Engine, ch *handlers.CostingHandler) {
	api := r.Group("/api/costing")
	{
		api.POST("/summary", ch.CalculateCostSummary)
	}
}

// RegisterCatalogRoutes sets up the reference catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, ch *handlers.CatalogHandler) {
	api := r.Group("/api/catalog")
	{
		api.GET("/service-prices", ch.ListServicePrices)
		api.PUT("/service-prices", ch.UpsertServicePrice)
		api.GET("/hotels", ch.ListHotelDefinitions)
		api.PUT("/hotels", ch.UpsertHotelDefinition)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, costingHandler *handlers.CostingHandler, catalogHandler *handlers.CatalogHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCostingRoutes(r, costingHandler)
	RegisterCatalogRoutes(r, catalogHandler)
	RegisterHealthRoute(r)
}
