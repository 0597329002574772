package costing

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"itinera/models"
)

// costHotel prices a hotel stay room block by room block, resolving a
// seasonal nightly rate for every night of the stay. Missing reference data
// degrades the affected block (or the whole item) to zero cost with a
// warning; it never aborts the aggregation.
func (e *DefaultEngine) costHotel(item *models.HotelItem, part Participation, roster []models.Traveler, hotel *models.HotelDefinition, tripStart time.Time, startDateOK bool) itemCost {
	res := newItemCost()

	nights := item.CheckoutDay - item.Day
	switch {
	case hotel == nil:
		res.ConfigDetails = fmt.Sprintf("Hotel definition %q not found; cost not calculated", item.HotelDefinitionID)
		res.Warnings = append(res.Warnings, res.ConfigDetails)
		return res
	case !startDateOK:
		res.ConfigDetails = "Trip start date invalid; hotel cost not calculated"
		res.Warnings = append(res.Warnings, res.ConfigDetails)
		return res
	case nights <= 0:
		res.ConfigDetails = fmt.Sprintf("Invalid stay: checkout day %d is not after check-in day %d", item.CheckoutDay, item.Day)
		res.Warnings = append(res.Warnings, res.ConfigDetails)
		return res
	}

	labelsByID := make(map[string]string, len(roster))
	for _, t := range roster {
		labelsByID[t.ID] = t.Label
	}

	for _, block := range item.SelectedRooms {
		roomType := hotel.RoomTypeByID(block.RoomTypeDefinitionID)
		if roomType == nil {
			name := block.RoomTypeNameCache
			if name == "" {
				name = block.RoomTypeDefinitionID
			}
			res.Occupancy = append(res.Occupancy, models.HotelOccupancyDetail{
				RoomTypeName:           name + " (definition missing)",
				NumRooms:               block.NumRooms,
				Nights:                 nights,
				AssignedTravelerLabels: joinLabels(block.AssignedTravelerIDs, labelsByID),
			})
			res.Warnings = append(res.Warnings, fmt.Sprintf("room type %q not found in hotel %q", block.RoomTypeDefinitionID, hotel.Name))
			continue
		}

		extraBed := block.AddExtraBed && roomType.ExtraBedAllowed
		extraBedApplied := false
		blockCost := 0.0
		gapNights := 0
		for night := item.Day; night < item.CheckoutDay; night++ {
			date := travelDate(tripStart, night)
			season := resolveSeasonalPrice(roomType.SeasonalPrices, date)
			if season == nil {
				// A night outside every seasonal period rates as zero. This
				// is a data gap, not an error; it is surfaced as a warning.
				gapNights++
				continue
			}
			nightly := season.Rate
			if extraBed && season.ExtraBedRate != nil {
				nightly += *season.ExtraBedRate
				extraBedApplied = true
			}
			blockCost += nightly * float64(block.NumRooms)
		}
		if gapNights > 0 {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%d night(s) of room type %q matched no seasonal price and rated as zero", gapNights, roomType.Name))
		}

		// Attribute the block: evenly across its assigned travelers, else
		// across the item's overall participating travelers, else unassigned.
		assigned := block.AssignedTravelerIDs
		labels := joinLabels(assigned, labelsByID)
		if len(assigned) == 0 {
			assigned = part.ParticipatingIDs
			labels = "All participating"
		}
		if blockCost != 0 {
			if len(assigned) > 0 {
				share := blockCost / float64(len(assigned))
				for _, id := range assigned {
					res.Contributions[id] += share
				}
			} else {
				res.Contributions[models.UnassignedTravelerKey] += blockCost
				res.Warnings = append(res.Warnings, fmt.Sprintf("room block %q has no travelers to charge; recorded as unassigned", roomType.Name))
			}
		}
		res.TotalCost += blockCost

		res.Occupancy = append(res.Occupancy, models.HotelOccupancyDetail{
			RoomTypeName:           roomType.Name,
			NumRooms:               block.NumRooms,
			Nights:                 nights,
			Characteristics:        roomType.Characteristics,
			AssignedTravelerLabels: labels,
			TotalRoomBlockCost:     blockCost,
			ExtraBedAdded:          extraBedApplied,
		})
	}

	// Adult/child buckets are re-derived from contributions rather than a
	// headcount split: different travelers can occupy different room blocks
	// at different rates.
	for _, t := range part.Participating {
		contribution, ok := res.Contributions[t.ID]
		if !ok {
			continue
		}
		if t.Type == models.TravelerChild {
			res.ChildCost += contribution
		} else {
			res.AdultCost += contribution
		}
	}

	if diff := res.TotalCost - (res.AdultCost + res.ChildCost); diff > 0.005 || diff < -0.005 {
		e.Logger.Debug("hotel type buckets diverge from total",
			zap.String("item", item.ID),
			zap.Float64("total", res.TotalCost),
			zap.Float64("bucketed", res.AdultCost+res.ChildCost))
	}

	res.ConfigDetails = fmt.Sprintf("%s: %d night(s), %d room block(s)", hotel.Name, nights, len(item.SelectedRooms))
	return res
}

// joinLabels renders traveler ids as display labels, falling back to the raw
// id when the roster does not know it.
func joinLabels(ids []string, labelsByID map[string]string) string {
	if len(ids) == 0 {
		return ""
	}
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		if label, ok := labelsByID[id]; ok {
			labels = append(labels, label)
		} else {
			labels = append(labels, id)
		}
	}
	return strings.Join(labels, ", ")
}
