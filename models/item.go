package models

import (
	"encoding/json"
)

// ItemKind is the wire discriminant of the itinerary item union.
type ItemKind string

const (
	KindTransfer ItemKind = "transfer"
	KindActivity ItemKind = "activity"
	KindHotel    ItemKind = "hotel"
	KindMeal     ItemKind = "meal"
	KindMisc     ItemKind = "misc"
)

// TransferMode selects between per-ticket and per-vehicle transfer pricing.
type TransferMode string

const (
	TransferTicket  TransferMode = "ticket"
	TransferVehicle TransferMode = "vehicle"
)

// MiscAssignment selects how a miscellaneous cost is charged.
type MiscAssignment string

const (
	MiscPerPerson MiscAssignment = "perPerson"
	MiscTotal     MiscAssignment = "total"
)

// ItemBase carries the fields shared by every itinerary item variant.
type ItemBase struct {
	ID                  string   `json:"id"`
	Day                 int      `json:"day"`
	Name                string   `json:"name"`
	Note                string   `json:"note,omitempty"`
	CountryID           string   `json:"countryId,omitempty"`
	Province            string   `json:"province,omitempty"`
	ExcludedTravelerIDs []string `json:"excludedTravelerIds,omitempty"`
}

// Item is the closed union of itinerary item variants. Exactly five types
// implement it; cost dispatch happens in a single type switch in the
// aggregation engine.
type Item interface {
	Kind() ItemKind
	Base() *ItemBase
}

// TransferItem is a point-to-point transfer, priced either per ticket
// (type-based prices) or per vehicle (shared cost, prorated by headcount).
type TransferItem struct {
	ItemBase
	Mode                   TransferMode `json:"mode"`
	AdultTicketPrice       float64      `json:"adultTicketPrice,omitempty"`
	ChildTicketPrice       *float64     `json:"childTicketPrice,omitempty"`
	VehicleType            string       `json:"vehicleType,omitempty"`
	CostPerVehicle         float64      `json:"costPerVehicle,omitempty"`
	Vehicles               int          `json:"vehicles,omitempty"`
	SelectedServicePriceID string       `json:"selectedServicePriceId,omitempty"`
	SelectedVehicleOption  string       `json:"selectedVehicleOptionId,omitempty"`
}

func (t *TransferItem) Kind() ItemKind  { return KindTransfer }
func (t *TransferItem) Base() *ItemBase { return &t.ItemBase }

// ActivityItem is a sightseeing or excursion entry. It may span several days
// (Day..EndDay) but is priced once for the whole span.
type ActivityItem struct {
	ItemBase
	AdultPrice float64  `json:"adultPrice"`
	ChildPrice *float64 `json:"childPrice,omitempty"`
	EndDay     int      `json:"endDay,omitempty"`
}

func (a *ActivityItem) Kind() ItemKind  { return KindActivity }
func (a *ActivityItem) Base() *ItemBase { return &a.ItemBase }

// SelectedRoomConfig is one room block inside a hotel stay: a room type, the
// number of rooms booked at that type, and the travelers sleeping in them.
type SelectedRoomConfig struct {
	RoomTypeDefinitionID string   `json:"roomTypeDefinitionId"`
	RoomTypeNameCache    string   `json:"roomTypeNameCache,omitempty"`
	NumRooms             int      `json:"numRooms"`
	AddExtraBed          bool     `json:"addExtraBed,omitempty"`
	AssignedTravelerIDs  []string `json:"assignedTravelerIds,omitempty"`
}

// HotelItem is a hotel stay from its check-in day through CheckoutDay.
type HotelItem struct {
	ItemBase
	CheckoutDay       int                  `json:"checkoutDay"`
	HotelDefinitionID string               `json:"hotelDefinitionId"`
	SelectedRooms     []SelectedRoomConfig `json:"selectedRooms"`
}

func (h *HotelItem) Kind() ItemKind  { return KindHotel }
func (h *HotelItem) Base() *ItemBase { return &h.ItemBase }

// MealItem is a priced meal entry; TotalMeals is the unit count per person.
type MealItem struct {
	ItemBase
	AdultMealPrice float64  `json:"adultMealPrice"`
	ChildMealPrice *float64 `json:"childMealPrice,omitempty"`
	TotalMeals     int      `json:"totalMeals"`
}

func (m *MealItem) Kind() ItemKind  { return KindMeal }
func (m *MealItem) Base() *ItemBase { return &m.ItemBase }

// MiscItem is any other charge: entrance fees, tips, guide fees, etc.
type MiscItem struct {
	ItemBase
	UnitCost       float64        `json:"unitCost"`
	Quantity       int            `json:"quantity"`
	CostAssignment MiscAssignment `json:"costAssignment"`
}

func (m *MiscItem) Kind() ItemKind  { return KindMisc }
func (m *MiscItem) Base() *ItemBase { return &m.ItemBase }

// UnknownItem is the sentinel for an item whose "type" discriminant is not
// one of the known kinds. Decoding keeps the shared base fields so the
// aggregation engine can log and skip the item; one unrecognized kind never
// fails the trip it arrived in.
type UnknownItem struct {
	ItemBase
	RawKind ItemKind `json:"type"`
}

func (u *UnknownItem) Kind() ItemKind  { return u.RawKind }
func (u *UnknownItem) Base() *ItemBase { return &u.ItemBase }

// DayPlan is the list of itinerary items scheduled on one trip day.
type DayPlan struct {
	Items []Item `json:"items"`
}

// itemEnvelope wraps an item for tagged-union (de)serialization.
type itemEnvelope struct {
	Type ItemKind `json:"type"`
}

// UnmarshalJSON decodes the item union by its "type" discriminant. An
// unrecognized kind decodes to UnknownItem rather than erroring, so a trip
// containing one survives the wire intact.
func (d *DayPlan) UnmarshalJSON(data []byte) error {
	var raw struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.Items = make([]Item, 0, len(raw.Items))
	for _, r := range raw.Items {
		item, err := DecodeItem(r)
		if err != nil {
			return err
		}
		d.Items = append(d.Items, item)
	}
	return nil
}

// MarshalJSON emits each item with its "type" discriminant injected.
func (d DayPlan) MarshalJSON() ([]byte, error) {
	items := make([]json.RawMessage, 0, len(d.Items))
	for _, it := range d.Items {
		raw, err := json.Marshal(it)
		if err != nil {
			return nil, err
		}
		var m map[string]json.RawMessage
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, err
		}
		kind, err := json.Marshal(it.Kind())
		if err != nil {
			return nil, err
		}
		m["type"] = kind
		tagged, err := json.Marshal(m)
		if err != nil {
			return nil, err
		}
		items = append(items, tagged)
	}
	return json.Marshal(struct {
		Items []json.RawMessage `json:"items"`
	}{Items: items})
}

// DecodeItem decodes a single tagged item payload into its concrete
// variant, or into the UnknownItem sentinel when the kind is unrecognized.
func DecodeItem(data []byte) (Item, error) {
	var env itemEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	var item Item
	switch env.Type {
	case KindTransfer:
		item = &TransferItem{}
	case KindActivity:
		item = &ActivityItem{}
	case KindHotel:
		item = &HotelItem{}
	case KindMeal:
		item = &MealItem{}
	case KindMisc:
		item = &MiscItem{}
	default:
		item = &UnknownItem{}
	}
	if err := json.Unmarshal(data, item); err != nil {
		return nil, err
	}
	return item, nil
}
