package costing

import (
	"fmt"

	"itinera/models"
)

// costMeal prices a meal item: per-person, per-meal, with the usual
// child-to-adult price fallback.
func (e *DefaultEngine) costMeal(item *models.MealItem, part Participation) itemCost {
	res := newItemCost()

	adultPrice := item.AdultMealPrice
	effectiveChild := adultPrice
	if item.ChildMealPrice != nil {
		effectiveChild = *item.ChildMealPrice
	}

	meals := item.TotalMeals
	if meals < 0 {
		meals = 0
	}

	res.AdultCost = float64(part.AdultCount) * adultPrice * float64(meals)
	res.ChildCost = float64(part.ChildCount) * effectiveChild * float64(meals)
	res.TotalCost = res.AdultCost + res.ChildCost

	for _, t := range part.Participating {
		if t.Type == models.TravelerChild {
			res.Contributions[t.ID] += effectiveChild * float64(meals)
		} else {
			res.Contributions[t.ID] += adultPrice * float64(meals)
		}
	}

	res.ConfigDetails = fmt.Sprintf("%d meal(s): adult %.2f, child %.2f", meals, adultPrice, effectiveChild)
	return res
}
