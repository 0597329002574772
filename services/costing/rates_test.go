package costing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinera/models"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := parseISODate(s)
	require.NoError(t, err)
	return d
}

func TestDateWithinInclusiveBounds(t *testing.T) {
	assert.True(t, dateWithin(mustDate(t, "2025-04-01"), "2025-04-01", "2025-04-10"))
	assert.True(t, dateWithin(mustDate(t, "2025-04-10"), "2025-04-01", "2025-04-10"))
	assert.True(t, dateWithin(mustDate(t, "2025-04-05"), "2025-04-01", "2025-04-10"))
	assert.False(t, dateWithin(mustDate(t, "2025-03-31"), "2025-04-01", "2025-04-10"))
	assert.False(t, dateWithin(mustDate(t, "2025-04-11"), "2025-04-01", "2025-04-10"))
}

func TestDateWithinMalformedBoundsNeverMatch(t *testing.T) {
	d := mustDate(t, "2025-04-05")
	assert.False(t, dateWithin(d, "bogus", "2025-04-10"))
	assert.False(t, dateWithin(d, "2025-04-01", "10/04/2025"))
	assert.False(t, dateWithin(d, "", ""))
}

func TestTravelDateIsStartPlusDayMinusOne(t *testing.T) {
	start := mustDate(t, "2025-04-01")
	assert.Equal(t, mustDate(t, "2025-04-01"), travelDate(start, 1))
	assert.Equal(t, mustDate(t, "2025-04-07"), travelDate(start, 7))

	got, err := TravelDateFor("2025-04-01", 3)
	require.NoError(t, err)
	assert.Equal(t, mustDate(t, "2025-04-03"), got)

	_, err = TravelDateFor("bad", 1)
	assert.Error(t, err)
}

func TestResolveSurchargeFirstMatchWinsNoStacking(t *testing.T) {
	periods := []models.SurchargePeriod{
		{Name: "Songkran", StartDate: "2025-04-12", EndDate: "2025-04-16", SurchargeAmount: 300},
		{Name: "April", StartDate: "2025-04-01", EndDate: "2025-04-30", SurchargeAmount: 100},
	}

	hit := resolveSurcharge(periods, mustDate(t, "2025-04-13"))
	require.NotNil(t, hit)
	assert.Equal(t, "Songkran", hit.Name)
	assert.Equal(t, 300.0, hit.SurchargeAmount)

	hit = resolveSurcharge(periods, mustDate(t, "2025-04-02"))
	require.NotNil(t, hit)
	assert.Equal(t, "April", hit.Name)

	assert.Nil(t, resolveSurcharge(periods, mustDate(t, "2025-05-01")))
}

func TestResolveSeasonalPriceSkipsMalformedPeriods(t *testing.T) {
	prices := []models.RoomTypeSeasonalPrice{
		{StartDate: "garbage", EndDate: "2025-12-31", Rate: 1},
		{StartDate: "2025-01-01", EndDate: "2025-12-31", Rate: 800},
	}

	hit := resolveSeasonalPrice(prices, mustDate(t, "2025-07-15"))
	require.NotNil(t, hit)
	assert.Equal(t, 800.0, hit.Rate)
}
