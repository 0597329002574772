package costing

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"itinera/models"
)

// Display labels per item kind, pluralized for the breakdown tables.
var kindLabels = map[models.ItemKind]string{
	models.KindTransfer: "Transfers",
	models.KindActivity: "Activities",
	models.KindHotel:    "Hotels",
	models.KindMeal:     "Meals",
	models.KindMisc:     "Miscellaneous",
}

// CalculateAllCosts walks every item of every day, dispatches to the
// per-kind calculators, and assembles the rounded CostSummary. Rounding to
// two decimals happens exactly once, here at the end; intermediate sums stay
// unrounded so multi-night and multi-block loops do not compound rounding
// error. A single malformed item degrades to a zero-cost, flagged line and
// never blocks the rest of the itinerary.
func (e *DefaultEngine) CalculateAllCosts(trip models.TripData, servicePrices []models.ServicePriceDefinition, hotels []models.HotelDefinition) models.CostSummary {
	summary := models.CostSummary{
		Currency:        trip.Pax.Currency,
		PerPersonTotals: make(map[string]float64, len(trip.Travelers)),
		DetailedItems:   []models.DetailedSummaryItem{},
	}
	for _, t := range trip.Travelers {
		summary.PerPersonTotals[t.ID] = 0
	}

	pricesByID := make(map[string]*models.ServicePriceDefinition, len(servicePrices))
	for i := range servicePrices {
		pricesByID[servicePrices[i].ID] = &servicePrices[i]
	}
	hotelsByID := make(map[string]*models.HotelDefinition, len(hotels))
	for i := range hotels {
		hotelsByID[hotels[i].ID] = &hotels[i]
	}

	tripStart, startErr := parseISODate(trip.Settings.StartDate)
	startDateOK := startErr == nil
	if !startDateOK {
		summary.Warnings = append(summary.Warnings, fmt.Sprintf("trip start date %q is not a valid YYYY-MM-DD date", trip.Settings.StartDate))
	}

	// Days is a map; iterate in day order so identical inputs always yield
	// an identical summary.
	dayNumbers := make([]int, 0, len(trip.Days))
	for day := range trip.Days {
		dayNumbers = append(dayNumbers, day)
	}
	sort.Ints(dayNumbers)

	multiDay := trip.Settings.NumDays > 1

	grandTotal := 0.0
	for _, day := range dayNumbers {
		for _, item := range trip.Days[day].Items {
			if item == nil {
				e.Logger.Warn("skipping nil itinerary item", zap.Int("day", day))
				continue
			}
			base := item.Base()
			// The Days map key is authoritative for scheduling; keep the
			// item's own day field in agreement so surcharge and hotel date
			// math price the same day the breakdown displays.
			base.Day = day
			part := ResolveParticipation(base.ExcludedTravelerIDs, trip.Travelers)

			var cost itemCost
			switch it := item.(type) {
			case *models.TransferItem:
				cost = e.costTransfer(it, part, pricesByID[it.SelectedServicePriceID], tripStart, startDateOK)
			case *models.ActivityItem:
				cost = e.costActivity(it, part)
			case *models.HotelItem:
				cost = e.costHotel(it, part, trip.Travelers, hotelsByID[it.HotelDefinitionID], tripStart, startDateOK)
			case *models.MealItem:
				cost = e.costMeal(it, part)
			case *models.MiscItem:
				cost = e.costMisc(it, part)
			default:
				e.Logger.Warn("skipping unrecognized itinerary item type",
					zap.Int("day", day),
					zap.String("id", base.ID),
					zap.String("kind", string(item.Kind())))
				summary.Warnings = append(summary.Warnings, fmt.Sprintf("%s: item type %q not recognized; item skipped", base.Name, item.Kind()))
				continue
			}

			grandTotal += cost.TotalCost
			for travelerID, amount := range cost.Contributions {
				summary.PerPersonTotals[travelerID] += amount
			}
			for _, w := range cost.Warnings {
				summary.Warnings = append(summary.Warnings, fmt.Sprintf("%s: %s", base.Name, w))
			}

			detail := models.DetailedSummaryItem{
				ID:                   base.ID,
				Type:                 kindLabels[item.Kind()],
				Name:                 base.Name,
				Note:                 base.Note,
				Province:             base.Province,
				ConfigurationDetails: cost.ConfigDetails,
				ExcludedTravelers:    strings.Join(part.ExcludedLabels, ", "),
				AdultCost:            cost.AdultCost,
				ChildCost:            cost.ChildCost,
				TotalCost:            cost.TotalCost,
				OccupancyDetails:     cost.Occupancy,
				Warnings:             cost.Warnings,
			}
			if multiDay {
				d := day
				detail.Day = &d
			}
			summary.DetailedItems = append(summary.DetailedItems, detail)
		}
	}

	// Final rounding pass: the only place amounts are rounded.
	summary.GrandTotal = round2(grandTotal)
	for id, total := range summary.PerPersonTotals {
		summary.PerPersonTotals[id] = round2(total)
	}
	for i := range summary.DetailedItems {
		item := &summary.DetailedItems[i]
		item.AdultCost = round2(item.AdultCost)
		item.ChildCost = round2(item.ChildCost)
		item.TotalCost = round2(item.TotalCost)
		for j := range item.OccupancyDetails {
			item.OccupancyDetails[j].TotalRoomBlockCost = round2(item.OccupancyDetails[j].TotalRoomBlockCost)
		}
	}
	return summary
}

// round2 rounds to two decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

var _ Engine = (*DefaultEngine)(nil)

// TravelDateFor exposes the day-number-to-calendar-date rule used across the
// engine: day N falls on startDate + (N-1) days. Collaborators (display,
// print) use it so every surface agrees on dates.
func TravelDateFor(startDate string, day int) (time.Time, error) {
	start, err := parseISODate(startDate)
	if err != nil {
		return time.Time{}, err
	}
	return travelDate(start, day), nil
}
