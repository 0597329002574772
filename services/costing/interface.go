package costing

import (
	"go.uber.org/zap"

	"itinera/models"
)

// Engine is the itinerary cost aggregation engine. One call takes the full
// trip plus the reference catalogs and produces a complete, rounded
// CostSummary. The engine is pure: it never mutates its inputs, holds no
// state between calls, and is safe for concurrent use.
type Engine interface {
	CalculateAllCosts(trip models.TripData, servicePrices []models.ServicePriceDefinition, hotels []models.HotelDefinition) models.CostSummary
}

// DefaultEngine implements Engine.
type DefaultEngine struct {
	Logger *zap.Logger
}

// NewEngine returns a DefaultEngine logging through the given logger.
// A nil logger is replaced with a no-op logger.
func NewEngine(logger *zap.Logger) *DefaultEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultEngine{Logger: logger}
}

// itemCost is the raw, unrounded result of costing a single itinerary item.
// Contributions maps traveler id (or models.UnassignedTravelerKey) to that
// traveler's share of TotalCost. Warnings record data-integrity problems
// that degraded the item to zero or partial cost; they never abort the run.
type itemCost struct {
	AdultCost     float64
	ChildCost     float64
	TotalCost     float64
	Contributions map[string]float64
	ConfigDetails string
	Occupancy     []models.HotelOccupancyDetail
	Warnings      []string
}

func newItemCost() itemCost {
	return itemCost{Contributions: make(map[string]float64)}
}
