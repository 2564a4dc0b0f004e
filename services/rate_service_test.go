package services

import (
	"testing"

	"hotel-pms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestBestRatePicksLowestTotal(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 2)

	seedDailyRates(t, db, f, f.Plan.ID, "2024-06-01", "2024-06-30", 100) // 3 nights = 300

	promo := models.RatePlan{PropertyID: f.Property.ID, Name: "Promo", IsActive: true}
	require.NoError(t, db.Create(&promo).Error)
	seedDailyRates(t, db, f, promo.ID, "2024-06-01", "2024-06-30", 90) // 3 nights = 270

	svc := NewRateService(db)
	quote, err := svc.BestRate(nil, f.Property.ID, f.RoomType.ID,
		date(t, "2024-06-10"), date(t, "2024-06-13"), 3)
	require.NoError(t, err)

	assert.Equal(t, promo.ID, quote.RatePlan.ID)
	assert.InDelta(t, 270.0, quote.TotalAmount, 0.001)
	assert.InDelta(t, 90.0, quote.AverageNightlyRate, 0.001)
	assert.Len(t, quote.DailyRates, 3)
}

func TestBestRateRejectsPlanWithGap(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 2)

	// Cheaper plan is missing the middle night.
	promo := models.RatePlan{PropertyID: f.Property.ID, Name: "Promo", IsActive: true}
	require.NoError(t, db.Create(&promo).Error)
	seedDailyRates(t, db, f, promo.ID, "2024-06-10", "2024-06-11", 50)
	seedDailyRates(t, db, f, promo.ID, "2024-06-12", "2024-06-13", 50)

	seedDailyRates(t, db, f, f.Plan.ID, "2024-06-10", "2024-06-13", 100)

	svc := NewRateService(db)
	quote, err := svc.BestRate(nil, f.Property.ID, f.RoomType.ID,
		date(t, "2024-06-10"), date(t, "2024-06-13"), 3)
	require.NoError(t, err)
	assert.Equal(t, f.Plan.ID, quote.RatePlan.ID)
	assert.InDelta(t, 300.0, quote.TotalAmount, 0.001)
}

func TestBestRateRejectsPlanWithStopSell(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 2)

	promo := models.RatePlan{PropertyID: f.Property.ID, Name: "Promo", IsActive: true}
	require.NoError(t, db.Create(&promo).Error)
	seedDailyRates(t, db, f, promo.ID, "2024-06-10", "2024-06-13", 50)
	require.NoError(t, db.Model(&models.DailyRate{}).
		Where("rate_plan_id = ? AND date = ?", promo.ID, date(t, "2024-06-11")).
		Update("stop_sell", true).Error)

	seedDailyRates(t, db, f, f.Plan.ID, "2024-06-10", "2024-06-13", 100)

	svc := NewRateService(db)
	quote, err := svc.BestRate(nil, f.Property.ID, f.RoomType.ID,
		date(t, "2024-06-10"), date(t, "2024-06-13"), 3)
	require.NoError(t, err)
	assert.Equal(t, f.Plan.ID, quote.RatePlan.ID)
}

func TestBestRateFiltersByLengthOfStay(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 2)

	weekly := models.RatePlan{
		PropertyID:      f.Property.ID,
		Name:            "Weekly",
		IsActive:        true,
		MinLengthOfStay: intPtr(7),
	}
	require.NoError(t, db.Create(&weekly).Error)
	seedDailyRates(t, db, f, weekly.ID, "2024-06-01", "2024-06-30", 40)

	svc := NewRateService(db)

	// 3 nights: the weekly plan is out and nothing else quotes.
	_, err := svc.BestRate(nil, f.Property.ID, f.RoomType.ID,
		date(t, "2024-06-10"), date(t, "2024-06-13"), 3)
	assert.ErrorIs(t, err, ErrNoRatesAvailable)

	// 7 nights: the weekly plan qualifies.
	quote, err := svc.BestRate(nil, f.Property.ID, f.RoomType.ID,
		date(t, "2024-06-10"), date(t, "2024-06-17"), 7)
	require.NoError(t, err)
	assert.Equal(t, weekly.ID, quote.RatePlan.ID)
	assert.InDelta(t, 280.0, quote.TotalAmount, 0.001)
}

func TestBestRateSkipsInactivePlans(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 2)

	inactive := models.RatePlan{PropertyID: f.Property.ID, Name: "Retired", IsActive: false}
	require.NoError(t, db.Create(&inactive).Error)
	seedDailyRates(t, db, f, inactive.ID, "2024-06-10", "2024-06-13", 10)

	svc := NewRateService(db)
	_, err := svc.BestRate(nil, f.Property.ID, f.RoomType.ID,
		date(t, "2024-06-10"), date(t, "2024-06-13"), 3)
	assert.ErrorIs(t, err, ErrNoRatesAvailable)
}
