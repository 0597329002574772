package models

// VehicleOption is one selectable vehicle class on a transfer service price.
type VehicleOption struct {
	ID    string  `bson:"id" json:"id"`
	Name  string  `bson:"name" json:"name"`   // e.g. "Sedan", "Van 9-seat"
	Price float64 `bson:"price" json:"price"` // Cost per vehicle in the trip's billing currency
}

// SurchargePeriod is a date-bounded add-on charge for vehicle transfers.
// Start and end dates are ISO "YYYY-MM-DD" strings and the interval is
// inclusive on both ends. Lists of periods are scanned in array order and the
// first period containing the travel date wins; overlaps are not validated.
type SurchargePeriod struct {
	Name            string  `bson:"name" json:"name"`
	StartDate       string  `bson:"start_date" json:"startDate"`
	EndDate         string  `bson:"end_date" json:"endDate"`
	SurchargeAmount float64 `bson:"surcharge_amount" json:"surchargeAmount"`
}

// ServicePriceDefinition is a reusable price catalog entry referenced by
// itinerary items. The same shape backs transfers, activities, meals and
// misc services; vehicle options and surcharge periods only apply to
// vehicle-mode transfers.
type ServicePriceDefinition struct {
	ID               string            `bson:"id" json:"id"`
	Name             string            `bson:"name" json:"name"`
	ServiceType      string            `bson:"service_type" json:"serviceType"`
	CountryID        string            `bson:"country_id,omitempty" json:"countryId,omitempty"`
	Province         string            `bson:"province,omitempty" json:"province,omitempty"`
	Price            float64           `bson:"price" json:"price"`                                           // Base/adult price
	SecondaryPrice   *float64          `bson:"secondary_price,omitempty" json:"secondaryPrice,omitempty"`    // Child price where defined
	Currency         string            `bson:"currency,omitempty" json:"currency,omitempty"`
	VehicleOptions   []VehicleOption   `bson:"vehicle_options,omitempty" json:"vehicleOptions,omitempty"`
	SurchargePeriods []SurchargePeriod `bson:"surcharge_periods,omitempty" json:"surchargePeriods,omitempty"`
}

// VehicleOptionByID returns the vehicle option with the given id, or nil.
func (s *ServicePriceDefinition) VehicleOptionByID(id string) *VehicleOption {
	for i := range s.VehicleOptions {
		if s.VehicleOptions[i].ID == id {
			return &s.VehicleOptions[i]
		}
	}
	return nil
}

// RoomTypeSeasonalPrice is a date-bounded nightly rate for a room type.
// The interval is inclusive on both ends; resolution is first-match-wins in
// array order, the same contract as SurchargePeriod.
type RoomTypeSeasonalPrice struct {
	StartDate    string   `bson:"start_date" json:"startDate"`
	EndDate      string   `bson:"end_date" json:"endDate"`
	Rate         float64  `bson:"rate" json:"rate"`
	ExtraBedRate *float64 `bson:"extra_bed_rate,omitempty" json:"extraBedRate,omitempty"`
	SeasonName   string   `bson:"season_name,omitempty" json:"seasonName,omitempty"`
}

// RoomTypeDefinition describes one bookable room category of a hotel.
type RoomTypeDefinition struct {
	ID              string                  `bson:"id" json:"id"`
	Name            string                  `bson:"name" json:"name"`
	ExtraBedAllowed bool                    `bson:"extra_bed_allowed" json:"extraBedAllowed"`
	Characteristics []string                `bson:"characteristics,omitempty" json:"characteristics,omitempty"`
	SeasonalPrices  []RoomTypeSeasonalPrice `bson:"seasonal_prices" json:"seasonalPrices"`
}

// HotelDefinition is the catalog entry for one hotel and its room types.
type HotelDefinition struct {
	ID        string               `bson:"id" json:"id"`
	Name      string               `bson:"name" json:"name"`
	CountryID string               `bson:"country_id,omitempty" json:"countryId,omitempty"`
	Province  string               `bson:"province,omitempty" json:"province,omitempty"`
	RoomTypes []RoomTypeDefinition `bson:"room_types" json:"roomTypes"`
}

// RoomTypeByID returns the room type definition with the given id, or nil.
func (h *HotelDefinition) RoomTypeByID(id string) *RoomTypeDefinition {
	for i := range h.RoomTypes {
		if h.RoomTypes[i].ID == id {
			return &h.RoomTypes[i]
		}
	}
	return nil
}
