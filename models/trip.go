package models

// TripSettings carries the trip-level scheduling parameters.
type TripSettings struct {
	StartDate string `json:"startDate"` // ISO "YYYY-MM-DD"; day N falls on StartDate + (N-1)
	NumDays   int    `json:"numDays"`
}

// PaxInfo carries billing-level trip parameters. All prices handed to the
// cost engine are assumed to already be in this currency.
type PaxInfo struct {
	Currency string `json:"currency"`
}

// TripData is the full input of one cost aggregation call: the roster, the
// billing settings, and every itinerary item keyed by day number (1-based).
type TripData struct {
	Travelers []Traveler      `json:"travelers"`
	Pax       PaxInfo         `json:"pax"`
	Settings  TripSettings    `json:"settings"`
	Days      map[int]DayPlan `json:"days"`
}
