package costing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"itinera/models"
)

func seasideHotel() models.HotelDefinition {
	return models.HotelDefinition{
		ID:   "htl-seaside",
		Name: "Seaside Resort",
		RoomTypes: []models.RoomTypeDefinition{
			{
				ID:              "rt-sea",
				Name:            "Sea View",
				ExtraBedAllowed: true,
				Characteristics: []string{"balcony", "king bed"},
				SeasonalPrices: []models.RoomTypeSeasonalPrice{
					{StartDate: "2025-06-01", EndDate: "2025-06-02", Rate: 1000, ExtraBedRate: fptr(250), SeasonName: "Green"},
					{StartDate: "2025-06-03", EndDate: "2025-06-30", Rate: 1500, SeasonName: "High"},
				},
			},
		},
	}
}

func hotelStay(checkoutDay int, rooms ...models.SelectedRoomConfig) *models.HotelItem {
	return &models.HotelItem{
		ItemBase:          models.ItemBase{ID: "h-test", Day: 1, Name: "Seaside Resort"},
		CheckoutDay:       checkoutDay,
		HotelDefinitionID: "htl-seaside",
		SelectedRooms:     rooms,
	}
}

func TestHotelNightlyResolutionAcrossSeasons(t *testing.T) {
	engine := NewEngine(zap.NewNop())
	hotel := seasideHotel()
	trip := testTrip("2025-06-01", 4, map[int][]models.Item{
		1: {hotelStay(4, models.SelectedRoomConfig{RoomTypeDefinitionID: "rt-sea", NumRooms: 2})},
	})

	summary := engine.CalculateAllCosts(trip, nil, []models.HotelDefinition{hotel})

	// Nights 1-2 at 1000, night 3 at 1500, times 2 rooms.
	require.Len(t, summary.DetailedItems, 1)
	assert.Equal(t, 7000.0, summary.DetailedItems[0].TotalCost)
	require.Len(t, summary.DetailedItems[0].OccupancyDetails, 1)
	detail := summary.DetailedItems[0].OccupancyDetails[0]
	assert.Equal(t, 7000.0, detail.TotalRoomBlockCost)
	assert.Equal(t, 3, detail.Nights)
	assert.Equal(t, 2, detail.NumRooms)
}

func TestHotelZeroNightsGuard(t *testing.T) {
	engine := NewEngine(zap.NewNop())
	hotel := seasideHotel()
	trip := testTrip("2025-06-01", 2, map[int][]models.Item{
		1: {hotelStay(1, models.SelectedRoomConfig{RoomTypeDefinitionID: "rt-sea", NumRooms: 1})},
	})

	summary := engine.CalculateAllCosts(trip, nil, []models.HotelDefinition{hotel})

	require.Len(t, summary.DetailedItems, 1)
	assert.Equal(t, 0.0, summary.DetailedItems[0].TotalCost)
	assert.NotEmpty(t, summary.DetailedItems[0].Warnings)
	assert.Contains(t, summary.DetailedItems[0].ConfigurationDetails, "Invalid stay")
}

func TestHotelMissingDefinitionZeroesItem(t *testing.T) {
	engine := NewEngine(zap.NewNop())
	item := hotelStay(3, models.SelectedRoomConfig{RoomTypeDefinitionID: "rt-sea", NumRooms: 1})
	item.HotelDefinitionID = "htl-nowhere"
	trip := testTrip("2025-06-01", 3, map[int][]models.Item{1: {item}})

	summary := engine.CalculateAllCosts(trip, nil, []models.HotelDefinition{seasideHotel()})

	require.Len(t, summary.DetailedItems, 1)
	assert.Equal(t, 0.0, summary.GrandTotal)
	assert.Contains(t, summary.DetailedItems[0].ConfigurationDetails, "not found")
	assert.NotEmpty(t, summary.Warnings)
}

func TestHotelMissingRoomTypeSkipsBlockOnly(t *testing.T) {
	engine := NewEngine(zap.NewNop())
	trip := testTrip("2025-06-01", 3, map[int][]models.Item{
		1: {hotelStay(3,
			models.SelectedRoomConfig{RoomTypeDefinitionID: "rt-sea", NumRooms: 1},
			models.SelectedRoomConfig{RoomTypeDefinitionID: "rt-gone", RoomTypeNameCache: "Old Suite", NumRooms: 1},
		)},
	})

	summary := engine.CalculateAllCosts(trip, nil, []models.HotelDefinition{seasideHotel()})

	// Nights 1-2 at 1000 for the surviving block; the dangling block rates zero.
	require.Len(t, summary.DetailedItems, 1)
	item := summary.DetailedItems[0]
	assert.Equal(t, 2000.0, item.TotalCost)
	require.Len(t, item.OccupancyDetails, 2)
	assert.Contains(t, item.OccupancyDetails[1].RoomTypeName, "definition missing")
	assert.Equal(t, 0.0, item.OccupancyDetails[1].TotalRoomBlockCost)
	assert.NotEmpty(t, item.Warnings)
}

func TestHotelExtraBedOnlyWhenAllowedAndPriced(t *testing.T) {
	engine := NewEngine(zap.NewNop())
	trip := testTrip("2025-06-01", 4, map[int][]models.Item{
		1: {hotelStay(4, models.SelectedRoomConfig{RoomTypeDefinitionID: "rt-sea", NumRooms: 1, AddExtraBed: true})},
	})

	summary := engine.CalculateAllCosts(trip, nil, []models.HotelDefinition{seasideHotel()})

	// Green season nights (1-2) carry the 250 extra bed rate; the High
	// season night defines none, so nothing is added there.
	require.Len(t, summary.DetailedItems, 1)
	assert.Equal(t, 1250.0+1250.0+1500.0, summary.DetailedItems[0].TotalCost)
	require.Len(t, summary.DetailedItems[0].OccupancyDetails, 1)
	assert.True(t, summary.DetailedItems[0].OccupancyDetails[0].ExtraBedAdded)
}

func TestHotelSeasonGapRatesNightAsZero(t *testing.T) {
	engine := NewEngine(zap.NewNop())
	hotel := seasideHotel()
	// Stay extends one night past every defined season.
	trip := testTrip("2025-06-29", 4, map[int][]models.Item{
		1: {hotelStay(4, models.SelectedRoomConfig{RoomTypeDefinitionID: "rt-sea", NumRooms: 1})},
	})

	summary := engine.CalculateAllCosts(trip, nil, []models.HotelDefinition{hotel})

	// 2025-06-29 and 2025-06-30 at 1500; 2025-07-01 matches no season.
	require.Len(t, summary.DetailedItems, 1)
	assert.Equal(t, 3000.0, summary.DetailedItems[0].TotalCost)
	assert.NotEmpty(t, summary.DetailedItems[0].Warnings)
}

func TestHotelAssignedTravelersSplitAndBuckets(t *testing.T) {
	engine := NewEngine(zap.NewNop())
	hotel := seasideHotel()
	// Two blocks: the adults in one, the child in the other. Adult/child
	// buckets must come from per-traveler contributions, not a headcount split.
	trip := testTrip("2025-06-01", 3, map[int][]models.Item{
		1: {hotelStay(3,
			models.SelectedRoomConfig{RoomTypeDefinitionID: "rt-sea", NumRooms: 1, AssignedTravelerIDs: []string{"a1", "a2"}},
			models.SelectedRoomConfig{RoomTypeDefinitionID: "rt-sea", NumRooms: 1, AssignedTravelerIDs: []string{"c1"}},
		)},
	})

	summary := engine.CalculateAllCosts(trip, nil, []models.HotelDefinition{hotel})

	require.Len(t, summary.DetailedItems, 1)
	item := summary.DetailedItems[0]
	assert.Equal(t, 4000.0, item.TotalCost)
	assert.Equal(t, 2000.0, item.AdultCost)
	assert.Equal(t, 2000.0, item.ChildCost)
	assert.Equal(t, 1000.0, summary.PerPersonTotals["a1"])
	assert.Equal(t, 1000.0, summary.PerPersonTotals["a2"])
	assert.Equal(t, 2000.0, summary.PerPersonTotals["c1"])
}

func TestHotelUnassignedFallbackToParticipants(t *testing.T) {
	engine := NewEngine(zap.NewNop())
	hotel := seasideHotel()
	trip := testTrip("2025-06-01", 3, map[int][]models.Item{
		1: {hotelStay(3, models.SelectedRoomConfig{RoomTypeDefinitionID: "rt-sea", NumRooms: 1})},
	})

	summary := engine.CalculateAllCosts(trip, nil, []models.HotelDefinition{hotel})

	// 2 nights x 1000 split across all three participating travelers.
	assert.Equal(t, 2000.0, summary.GrandTotal)
	assert.InDelta(t, 666.67, summary.PerPersonTotals["a1"], 0.005)
	assert.InDelta(t, 666.67, summary.PerPersonTotals["c1"], 0.005)
}

func TestHotelOrphanedCostLandsInUnassignedBucket(t *testing.T) {
	engine := NewEngine(zap.NewNop())
	hotel := seasideHotel()
	item := hotelStay(3, models.SelectedRoomConfig{RoomTypeDefinitionID: "rt-sea", NumRooms: 1})
	item.ExcludedTravelerIDs = []string{"a1", "a2", "c1"}
	trip := testTrip("2025-06-01", 3, map[int][]models.Item{1: {item}})

	summary := engine.CalculateAllCosts(trip, nil, []models.HotelDefinition{hotel})

	assert.Equal(t, 2000.0, summary.GrandTotal)
	assert.Equal(t, 2000.0, summary.PerPersonTotals[models.UnassignedTravelerKey])

	perPerson := 0.0
	for _, total := range summary.PerPersonTotals {
		perPerson += total
	}
	assert.InDelta(t, summary.GrandTotal, perPerson, 0.005)
}

func TestSeasonalOverlapFirstMatchWins(t *testing.T) {
	engine := NewEngine(zap.NewNop())
	hotel := models.HotelDefinition{
		ID:   "htl-overlap",
		Name: "Overlap Inn",
		RoomTypes: []models.RoomTypeDefinition{
			{
				ID:   "rt-std",
				Name: "Standard",
				SeasonalPrices: []models.RoomTypeSeasonalPrice{
					{StartDate: "2025-06-01", EndDate: "2025-06-30", Rate: 900},
					{StartDate: "2025-06-01", EndDate: "2025-06-30", Rate: 9999},
				},
			},
		},
	}
	item := hotelStay(2, models.SelectedRoomConfig{RoomTypeDefinitionID: "rt-std", NumRooms: 1})
	item.HotelDefinitionID = "htl-overlap"
	trip := testTrip("2025-06-01", 2, map[int][]models.Item{1: {item}})

	summary := engine.CalculateAllCosts(trip, nil, []models.HotelDefinition{hotel})

	assert.Equal(t, 900.0, summary.GrandTotal)
}
