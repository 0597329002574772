package costing

import (
	"time"

	"itinera/models"
)

const isoDateLayout = "2006-01-02"

// parseISODate parses a "YYYY-MM-DD" date string.
func parseISODate(s string) (time.Time, error) {
	return time.Parse(isoDateLayout, s)
}

// travelDate computes the calendar date of a 1-based trip day.
func travelDate(tripStart time.Time, day int) time.Time {
	return tripStart.AddDate(0, 0, day-1)
}

// dateWithin reports whether d falls inside the closed interval
// [startDate, endDate]. Malformed bounds never match.
func dateWithin(d time.Time, startDate, endDate string) bool {
	start, err := parseISODate(startDate)
	if err != nil {
		return false
	}
	end, err := parseISODate(endDate)
	if err != nil {
		return false
	}
	return !d.Before(start) && !d.After(end)
}

// resolveSeasonalPrice returns the first seasonal price whose interval
// contains the given night, scanning in array order. Overlapping periods are
// not validated; the first containing period wins. Returns nil when no
// period matches.
func resolveSeasonalPrice(prices []models.RoomTypeSeasonalPrice, night time.Time) *models.RoomTypeSeasonalPrice {
	for i := range prices {
		if dateWithin(night, prices[i].StartDate, prices[i].EndDate) {
			return &prices[i]
		}
	}
	return nil
}

// resolveSurcharge returns the first surcharge period containing the travel
// date, scanning in array order. Surcharges never stack; the first
// containing period wins. Returns nil when no period matches.
func resolveSurcharge(periods []models.SurchargePeriod, date time.Time) *models.SurchargePeriod {
	for i := range periods {
		if dateWithin(date, periods[i].StartDate, periods[i].EndDate) {
			return &periods[i]
		}
	}
	return nil
}
