package models

// HotelOccupancyDetail describes one room block inside a hotel line item,
// for the detailed breakdown tables.
type HotelOccupancyDetail struct {
	RoomTypeName           string   `json:"roomTypeName"`
	NumRooms               int      `json:"numRooms"`
	Nights                 int      `json:"nights"`
	Characteristics        []string `json:"characteristics,omitempty"`
	AssignedTravelerLabels string   `json:"assignedTravelerLabels"`
	TotalRoomBlockCost     float64  `json:"totalRoomBlockCost"`
	ExtraBedAdded          bool     `json:"extraBedAdded"`
}

// DetailedSummaryItem is one line of the itemized cost breakdown.
type DetailedSummaryItem struct {
	ID                   string                 `json:"id"`
	Type                 string                 `json:"type"` // Display label, e.g. "Transfers", "Hotels"
	Day                  *int                   `json:"day,omitempty"`
	Name                 string                 `json:"name"`
	Note                 string                 `json:"note,omitempty"`
	Province             string                 `json:"province,omitempty"`
	ConfigurationDetails string                 `json:"configurationDetails"`
	ExcludedTravelers    string                 `json:"excludedTravelers"`
	AdultCost            float64                `json:"adultCost"`
	ChildCost            float64                `json:"childCost"`
	TotalCost            float64                `json:"totalCost"`
	OccupancyDetails     []HotelOccupancyDetail `json:"occupancyDetails,omitempty"`
	Warnings             []string               `json:"warnings,omitempty"`
}

// CostSummary is the complete, rounded result of one aggregation call.
// PerPersonTotals is keyed by traveler id; the synthetic key
// UnassignedTravelerKey absorbs cost that could not be attributed to any
// traveler, so the per-person totals always reconcile with GrandTotal.
type CostSummary struct {
	GrandTotal      float64               `json:"grandTotal"`
	Currency        string                `json:"currency"`
	PerPersonTotals map[string]float64    `json:"perPersonTotals"`
	DetailedItems   []DetailedSummaryItem `json:"detailedItems"`
	Warnings        []string              `json:"warnings,omitempty"`
}
