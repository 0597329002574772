package costing

import (
	"itinera/models"
)

// Participation is the resolved traveler set for one itinerary item: who
// takes part, how many of each pricing type, and the display labels of the
// excluded travelers.
type Participation struct {
	AdultCount       int
	ChildCount       int
	Participating    []models.Traveler
	ParticipatingIDs []string
	ExcludedLabels   []string
}

// HeadCount returns the total number of participating travelers.
func (p Participation) HeadCount() int {
	return p.AdultCount + p.ChildCount
}

// ResolveParticipation filters the roster against an item's exclusion list.
// Excluded ids that match no roster member are silently ignored.
func ResolveParticipation(excludedIDs []string, roster []models.Traveler) Participation {
	excluded := make(map[string]bool, len(excludedIDs))
	for _, id := range excludedIDs {
		excluded[id] = true
	}

	var p Participation
	for _, t := range roster {
		if excluded[t.ID] {
			p.ExcludedLabels = append(p.ExcludedLabels, t.Label)
			continue
		}
		p.Participating = append(p.Participating, t)
		p.ParticipatingIDs = append(p.ParticipatingIDs, t.ID)
		if t.Type == models.TravelerChild {
			p.ChildCount++
		} else {
			p.AdultCount++
		}
	}
	return p
}
