package costing

import (
	"fmt"

	"itinera/models"
)

// costMisc prices a miscellaneous item. With perPerson assignment every
// participating traveler is charged the full unit total individually; with
// total assignment the amount is a single shared cost prorated equally by
// headcount, like vehicle transfers.
func (e *DefaultEngine) costMisc(item *models.MiscItem, part Participation) itemCost {
	res := newItemCost()

	quantity := item.Quantity
	if quantity < 0 {
		quantity = 0
	}
	unitTotal := item.UnitCost * float64(quantity)

	switch item.CostAssignment {
	case models.MiscPerPerson:
		res.AdultCost = float64(part.AdultCount) * unitTotal
		res.ChildCost = float64(part.ChildCount) * unitTotal
		res.TotalCost = res.AdultCost + res.ChildCost
		for _, t := range part.Participating {
			res.Contributions[t.ID] += unitTotal
		}
		res.ConfigDetails = fmt.Sprintf("%d x %.2f per person", quantity, item.UnitCost)
	default: // shared total
		res.TotalCost = unitTotal
		if heads := part.HeadCount(); heads > 0 {
			share := unitTotal / float64(heads)
			for _, t := range part.Participating {
				res.Contributions[t.ID] += share
			}
			res.AdultCost = share * float64(part.AdultCount)
			res.ChildCost = share * float64(part.ChildCount)
		} else if unitTotal != 0 {
			res.Contributions[models.UnassignedTravelerKey] += unitTotal
			res.Warnings = append(res.Warnings, "shared cost has no participating travelers; recorded as unassigned")
		}
		res.ConfigDetails = fmt.Sprintf("%d x %.2f shared", quantity, item.UnitCost)
	}
	return res
}
