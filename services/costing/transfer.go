package costing

import (
	"fmt"
	"time"

	"itinera/models"
)

// costTransfer prices a transfer item. Ticket mode is type-priced per
// traveler; vehicle mode is a shared cost prorated equally by headcount. The
// service price definition is nil when the item references none or the
// reference could not be resolved; the item's own prices carry the cost then.
func (e *DefaultEngine) costTransfer(item *models.TransferItem, part Participation, def *models.ServicePriceDefinition, tripStart time.Time, startDateOK bool) itemCost {
	if item.Mode == models.TransferVehicle {
		return e.costVehicleTransfer(item, part, def, tripStart, startDateOK)
	}
	return e.costTicketTransfer(item, part, def)
}

func (e *DefaultEngine) costTicketTransfer(item *models.TransferItem, part Participation, def *models.ServicePriceDefinition) itemCost {
	res := newItemCost()

	adultPrice := item.AdultTicketPrice
	var childPrice *float64 = item.ChildTicketPrice
	if def != nil {
		adultPrice = def.Price
		if def.SecondaryPrice != nil {
			childPrice = def.SecondaryPrice
		}
	}
	// Children fall back to adult pricing when no child price is defined.
	effectiveChild := adultPrice
	if childPrice != nil {
		effectiveChild = *childPrice
	}

	res.AdultCost = float64(part.AdultCount) * adultPrice
	res.ChildCost = float64(part.ChildCount) * effectiveChild
	res.TotalCost = res.AdultCost + res.ChildCost

	for _, t := range part.Participating {
		if t.Type == models.TravelerChild {
			res.Contributions[t.ID] += effectiveChild
		} else {
			res.Contributions[t.ID] += adultPrice
		}
	}

	res.ConfigDetails = fmt.Sprintf("Ticket: adult %.2f, child %.2f", adultPrice, effectiveChild)
	return res
}

func (e *DefaultEngine) costVehicleTransfer(item *models.TransferItem, part Participation, def *models.ServicePriceDefinition, tripStart time.Time, startDateOK bool) itemCost {
	res := newItemCost()

	// Base cost per vehicle, in priority order: selected vehicle option,
	// then the definition's base price when it defines no options, then the
	// item's own cost.
	base := item.CostPerVehicle
	vehicleLabel := item.VehicleType
	if def != nil {
		if opt := def.VehicleOptionByID(item.SelectedVehicleOption); opt != nil {
			base = opt.Price
			vehicleLabel = opt.Name
		} else if len(def.VehicleOptions) == 0 {
			base = def.Price
		}
	}

	surcharge := 0.0
	surchargeNote := ""
	if def != nil && len(def.SurchargePeriods) > 0 {
		if !startDateOK {
			res.Warnings = append(res.Warnings, "trip start date invalid; surcharge periods not applied")
		} else if period := resolveSurcharge(def.SurchargePeriods, travelDate(tripStart, item.Day)); period != nil {
			surcharge = period.SurchargeAmount
			surchargeNote = fmt.Sprintf(" + %.2f surcharge (%s)", period.SurchargeAmount, period.Name)
		}
	}

	vehicles := item.Vehicles
	if vehicles < 0 {
		vehicles = 0
	}
	res.TotalCost = (base + surcharge) * float64(vehicles)

	// Shared cost: split equally per head regardless of traveler type.
	if heads := part.HeadCount(); heads > 0 {
		share := res.TotalCost / float64(heads)
		for _, t := range part.Participating {
			res.Contributions[t.ID] += share
		}
		res.AdultCost = share * float64(part.AdultCount)
		res.ChildCost = share * float64(part.ChildCount)
	} else if res.TotalCost != 0 {
		// Nobody participates, but the vehicles are still booked. The cost
		// lands in the unassigned bucket so totals keep reconciling.
		res.Contributions[models.UnassignedTravelerKey] += res.TotalCost
		res.Warnings = append(res.Warnings, "vehicle cost has no participating travelers; recorded as unassigned")
	}

	if vehicleLabel == "" {
		vehicleLabel = "vehicle"
	}
	res.ConfigDetails = fmt.Sprintf("%d x %s @ %.2f%s", vehicles, vehicleLabel, base, surchargeNote)
	return res
}
