package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itinera/config"
	catalogRepo "itinera/database/repository/catalog"
	"itinera/models"
	"itinera/utils"
)

func defaultCurrency() string {
	if config.AppConfig.DefaultCurrency != "" {
		return config.AppConfig.DefaultCurrency
	}
	return "THB"
}

// CatalogHandler exposes the reference catalogs consumed by the itinerary
// editing UI: service price definitions and hotel definitions.
type CatalogHandler struct {
	Repo catalogRepo.CatalogRepository
}

// NewCatalogHandler wires a CatalogHandler.
func NewCatalogHandler(repo catalogRepo.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{Repo: repo}
}

// ListServicePrices handles GET /api/catalog/service-prices.
func (h *CatalogHandler) ListServicePrices(c *gin.Context) {
	defs, err := h.Repo.ServicePrices(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list service prices", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"servicePrices": defs})
}

// ListHotelDefinitions handles GET /api/catalog/hotels.
func (h *CatalogHandler) ListHotelDefinitions(c *gin.Context) {
	defs, err := h.Repo.HotelDefinitions(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list hotel definitions", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotelDefinitions": defs})
}

// UpsertServicePrice handles PUT /api/catalog/service-prices.
func (h *CatalogHandler) UpsertServicePrice(c *gin.Context) {
	var def models.ServicePriceDefinition
	if err := c.ShouldBindJSON(&def); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid service price definition", err.Error())
		return
	}
	id, err := h.Repo.UpsertServicePrice(c.Request.Context(), def)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to store service price definition", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// UpsertHotelDefinition handles PUT /api/catalog/hotels.
func (h *CatalogHandler) UpsertHotelDefinition(c *gin.Context) {
	var def models.HotelDefinition
	if err := c.ShouldBindJSON(&def); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel definition", err.Error())
		return
	}
	id, err := h.Repo.UpsertHotelDefinition(c.Request.Context(), def)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to store hotel definition", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
