package models

// TravelerType distinguishes pricing categories on the roster.
type TravelerType string

const (
	TravelerAdult TravelerType = "adult"
	TravelerChild TravelerType = "child"
)

// Traveler is one member of the trip roster. The roster is trip-scoped and
// treated as immutable for the duration of a cost aggregation call.
type Traveler struct {
	ID    string       `bson:"id" json:"id"`       // Unique traveler identifier within the trip
	Label string       `bson:"label" json:"label"` // Display name, e.g. "Mr. Tanaka" or "Child 1"
	Type  TravelerType `bson:"type" json:"type"`   // "adult" or "child"
}

// UnassignedTravelerKey is the synthetic contribution bucket used when a cost
// block cannot be attributed to any traveler (e.g. a hotel room block with no
// assigned travelers on an item where every traveler is excluded). Keeping the
// orphaned amount under this key preserves the reconciliation
// sum(PerPersonTotals) == GrandTotal.
const UnassignedTravelerKey = "unassigned"
