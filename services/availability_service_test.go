package services

import (
	"testing"

	"hotel-pms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAvailability(db *gorm.DB) *AvailabilityService {
	return NewAvailabilityService(db, NewInventoryService(db), NewRestrictionService(db))
}

func TestCheckAvailabilityReportsWorstNight(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 5)
	svc := newAvailability(db)

	// Night 2 of a 3-night stay is fully booked; nights 1 and 3 are open.
	for i := 0; i < 5; i++ {
		seedReservation(t, db, f, "2024-06-11", "2024-06-12", models.ReservationStatusConfirmed)
	}

	result, err := svc.CheckAvailability(f.Property.ID, f.RoomType.ID,
		date(t, "2024-06-10"), date(t, "2024-06-13"))
	require.NoError(t, err)

	assert.False(t, result.Available)
	assert.Equal(t, int64(5), result.TotalRooms)
	assert.Equal(t, int64(0), result.AvailableRooms)
	assert.Equal(t, int64(5), result.OccupiedRooms)
}

func TestStopSellBlocksDespiteFreeRooms(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 10)
	seedDailyRates(t, db, f, f.Plan.ID, "2024-06-01", "2024-06-30", 100)
	setDailyRateFlags(t, db, f, "2024-06-10", map[string]interface{}{"stop_sell": true})
	svc := newAvailability(db)

	result, err := svc.CheckAvailability(f.Property.ID, f.RoomType.ID,
		date(t, "2024-06-10"), date(t, "2024-06-12"))
	require.NoError(t, err)

	assert.False(t, result.Available)
	assert.Equal(t, int64(10), result.AvailableRooms)
	require.Len(t, result.Restrictions, 1)
	assert.Equal(t, RestrictionStopSell, result.Restrictions[0].Type)
}

func TestAvailableNeedsRoomsAndNoRestrictions(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 2)
	seedDailyRates(t, db, f, f.Plan.ID, "2024-06-01", "2024-06-30", 100)
	svc := newAvailability(db)

	result, err := svc.CheckAvailability(f.Property.ID, f.RoomType.ID,
		date(t, "2024-06-10"), date(t, "2024-06-12"))
	require.NoError(t, err)
	assert.True(t, result.Available)
	assert.Equal(t, int64(2), result.AvailableRooms)
	assert.Empty(t, result.Restrictions)
}

func TestZeroRoomTypeIsNeverAvailable(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 0)
	svc := newAvailability(db)

	result, err := svc.CheckAvailability(f.Property.ID, f.RoomType.ID,
		date(t, "2024-06-10"), date(t, "2024-06-12"))
	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, int64(0), result.TotalRooms)
}

func TestCalendarReportsPerDateFacts(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 3)
	seedDailyRates(t, db, f, f.Plan.ID, "2024-06-01", "2024-06-30", 100)
	setDailyRateFlags(t, db, f, "2024-06-11", map[string]interface{}{"stop_sell": true, "close_to_arrival": true})
	seedReservation(t, db, f, "2024-06-10", "2024-06-12", models.ReservationStatusConfirmed)
	svc := newAvailability(db)

	days, err := svc.Calendar(f.Property.ID, f.RoomType.ID,
		date(t, "2024-06-10"), date(t, "2024-06-13"))
	require.NoError(t, err)
	require.Len(t, days, 3)

	assert.Equal(t, date(t, "2024-06-10"), days[0].Date)
	assert.Equal(t, int64(1), days[0].OccupiedRooms)
	assert.Equal(t, int64(2), days[0].AvailableRooms)
	assert.False(t, days[0].StopSell)

	assert.True(t, days[1].StopSell)
	assert.True(t, days[1].CloseToArrival)
	assert.Equal(t, int64(1), days[1].OccupiedRooms)

	// Reservation departed on the 12th, no longer occupying.
	assert.Equal(t, int64(0), days[2].OccupiedRooms)
	assert.Equal(t, int64(3), days[2].AvailableRooms)
}
