package costing

import (
	"fmt"

	"itinera/models"
)

// costActivity prices an activity item. An activity may span several days
// (Day..EndDay) but is priced once for the whole span; the duration is
// surfaced only in the configuration details.
func (e *DefaultEngine) costActivity(item *models.ActivityItem, part Participation) itemCost {
	res := newItemCost()

	adultPrice := item.AdultPrice
	effectiveChild := adultPrice
	if item.ChildPrice != nil {
		effectiveChild = *item.ChildPrice
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

	duration := 1
	if item.EndDay > item.Day {
		duration = item.EndDay - item.Day + 1
	}
	if duration > 1 {
		res.ConfigDetails = fmt.Sprintf("Days %d-%d (%d days): adult %.2f, child %.2f", item.Day, item.EndDay, duration, adultPrice, effectiveChild)
	} else {
		res.ConfigDetails = fmt.Sprintf("Adult %.2f, child %.2f", adultPrice, effectiveChild)
	}
	return res
}
