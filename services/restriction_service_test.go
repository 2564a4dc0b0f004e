package services

import (
	"testing"

	"hotel-pms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setDailyRateFlags(t *testing.T, db *gorm.DB, f fixture, day string, updates map[string]interface{}) {
	t.Helper()
	res := db.Model(&models.DailyRate{}).
		Where("property_id = ? AND room_type_id = ? AND date = ?", f.Property.ID, f.RoomType.ID, date(t, day)).
		Updates(updates)
	require.NoError(t, res.Error)
	require.NotZero(t, res.RowsAffected)
}

func TestRestrictionsEmptyWhenNothingFlagged(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 2)
	seedDailyRates(t, db, f, f.Plan.ID, "2024-06-01", "2024-06-30", 100)
	svc := NewRestrictionService(db)

	violations, err := svc.RestrictionsFor(nil, f.Property.ID, f.RoomType.ID,
		date(t, "2024-06-10"), date(t, "2024-06-13"))
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestStopSellBlocksAnyStayedNight(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 2)
	seedDailyRates(t, db, f, f.Plan.ID, "2024-06-01", "2024-06-30", 100)
	setDailyRateFlags(t, db, f, "2024-06-11", map[string]interface{}{"stop_sell": true})
	svc := NewRestrictionService(db)

	violations, err := svc.RestrictionsFor(nil, f.Property.ID, f.RoomType.ID,
		date(t, "2024-06-10"), date(t, "2024-06-13"))
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, RestrictionStopSell, violations[0].Type)
	assert.Equal(t, date(t, "2024-06-11"), violations[0].Date)
}

func TestStopSellOnDepartureDayDoesNotBlock(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 2)
	seedDailyRates(t, db, f, f.Plan.ID, "2024-06-01", "2024-06-30", 100)
	setDailyRateFlags(t, db, f, "2024-06-13", map[string]interface{}{"stop_sell": true})
	svc := NewRestrictionService(db)

	// The departure day is not a stayed night.
	violations, err := svc.RestrictionsFor(nil, f.Property.ID, f.RoomType.ID,
		date(t, "2024-06-10"), date(t, "2024-06-13"))
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestCloseToArrivalOnlyChecksArrivalDate(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 2)
	seedDailyRates(t, db, f, f.Plan.ID, "2024-06-01", "2024-06-30", 100)
	setDailyRateFlags(t, db, f, "2024-06-11", map[string]interface{}{"close_to_arrival": true})
	svc := NewRestrictionService(db)

	// CTA mid-stay is irrelevant.
	violations, err := svc.RestrictionsFor(nil, f.Property.ID, f.RoomType.ID,
		date(t, "2024-06-10"), date(t, "2024-06-13"))
	require.NoError(t, err)
	assert.Empty(t, violations)

	// CTA at the arrival date blocks.
	violations, err = svc.RestrictionsFor(nil, f.Property.ID, f.RoomType.ID,
		date(t, "2024-06-11"), date(t, "2024-06-13"))
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, RestrictionCloseToArrival, violations[0].Type)
	assert.Equal(t, date(t, "2024-06-11"), violations[0].Date)
}

func TestCloseToDepartureOnlyChecksDepartureDate(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 2)
	seedDailyRates(t, db, f, f.Plan.ID, "2024-06-01", "2024-06-30", 100)
	setDailyRateFlags(t, db, f, "2024-06-13", map[string]interface{}{"close_to_departure": true})
	svc := NewRestrictionService(db)

	violations, err := svc.RestrictionsFor(nil, f.Property.ID, f.RoomType.ID,
		date(t, "2024-06-10"), date(t, "2024-06-13"))
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, RestrictionCloseToDeparture, violations[0].Type)

	violations, err = svc.RestrictionsFor(nil, f.Property.ID, f.RoomType.ID,
		date(t, "2024-06-10"), date(t, "2024-06-12"))
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestAnyPlansRowBlocksTheDate(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 2)
	seedDailyRates(t, db, f, f.Plan.ID, "2024-06-01", "2024-06-30", 100)

	other := models.RatePlan{PropertyID: f.Property.ID, Name: "Promo", IsActive: true}
	require.NoError(t, db.Create(&other).Error)
	seedDailyRates(t, db, f, other.ID, "2024-06-10", "2024-06-12", 80)
	res := db.Model(&models.DailyRate{}).
		Where("rate_plan_id = ? AND date = ?", other.ID, date(t, "2024-06-10")).
		Update("stop_sell", true)
	require.NoError(t, res.Error)

	svc := NewRestrictionService(db)
	violations, err := svc.RestrictionsFor(nil, f.Property.ID, f.RoomType.ID,
		date(t, "2024-06-10"), date(t, "2024-06-12"))
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, RestrictionStopSell, violations[0].Type)
}
