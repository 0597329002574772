package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	catalogRepo "itinera/database/repository/catalog"
	"itinera/models"
	"itinera/services/costing"
	"itinera/utils"
)

// CostSummaryRequest is the body of a cost aggregation call. Catalogs may be
// supplied inline (the editing UI sends its working copies); when omitted
// they are loaded from the catalog repository.
type CostSummaryRequest struct {
	TripData         models.TripData                 `json:"tripData"`
	ServicePrices    []models.ServicePriceDefinition `json:"servicePrices,omitempty"`
	HotelDefinitions []models.HotelDefinition        `json:"hotelDefinitions,omitempty"`
}

// CostingHandler exposes the cost aggregation engine over HTTP.
type CostingHandler struct {
	Engine      costing.Engine
	Catalog     catalogRepo.CatalogRepository
	CacheClient *redis.Client
	Logger      *zap.Logger
}

// NewCostingHandler wires a CostingHandler. CacheClient may be nil to
// disable memoization.
func NewCostingHandler(engine costing.Engine, catalog catalogRepo.CatalogRepository, cacheClient *redis.Client, logger *zap.Logger) *CostingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CostingHandler{Engine: engine, Catalog: catalog, CacheClient: cacheClient, Logger: logger}
}

// CalculateCostSummary handles POST /api/costing/summary. The engine itself
// never fails: catalog lookup problems are the only error responses here,
// everything item-level degrades to warnings inside the summary.
func (h *CostingHandler) CalculateCostSummary(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read request body", err.Error())
		return
	}

	var req CostSummaryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid costing request", err.Error())
		return
	}

	displayCurrency := c.Query("displayCurrency")

	// Memoize on the exact request payload (plus display currency); the
	// engine is deterministic, so identical inputs yield identical output.
	var cacheKey string
	if h.CacheClient != nil {
		cacheKey = utils.SummaryCacheKey(append(body, []byte("|"+displayCurrency)...))
		if cached, ok := utils.GetCachedSummary(c.Request.Context(), h.CacheClient, cacheKey); ok {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	servicePrices := req.ServicePrices
	if servicePrices == nil && h.Catalog != nil {
		servicePrices, err = h.Catalog.ServicePrices(ctx)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to load service price catalog", err.Error())
			return
		}
	}
	hotels := req.HotelDefinitions
	if hotels == nil && h.Catalog != nil {
		hotels, err = h.Catalog.HotelDefinitions(ctx)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to load hotel definition catalog", err.Error())
			return
		}
	}

	if req.TripData.Pax.Currency == "" {
		req.TripData.Pax.Currency = defaultCurrency()
	}

	summary := h.Engine.CalculateAllCosts(req.TripData, servicePrices, hotels)

	if displayCurrency != "" {
		summary = utils.ConvertSummaryForDisplay(summary, displayCurrency)
	}

	if h.CacheClient != nil {
		utils.SetCachedSummary(c.Request.Context(), h.CacheClient, cacheKey, summary)
	}

	c.JSON(http.StatusOK, summary)
}
