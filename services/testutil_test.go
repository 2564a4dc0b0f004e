package services

import (
	"fmt"
	"testing"
	"time"

	"hotel-pms/config"
	"hotel-pms/models"
	"hotel-pms/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := utils.ParseDate(s)
	require.NoError(t, err)
	return d
}

type fixture struct {
	Property models.Property
	RoomType models.RoomType
	Plan     models.RatePlan
	Guest    models.Guest
	Rooms    []models.Room
}

// seedFixture creates a property with one room type, the given number of
// active rooms, a guest and an unrestricted active rate plan.
func seedFixture(t *testing.T, db *gorm.DB, roomCount int) fixture {
	t.Helper()

	f := fixture{}

	f.Property = models.Property{Name: "Test Hotel", Timezone: "UTC"}
	require.NoError(t, db.Create(&f.Property).Error)

	f.RoomType = models.RoomType{PropertyID: f.Property.ID, TypeName: "Standard", MaxOccupancy: 2, BaseRate: 100}
	require.NoError(t, db.Create(&f.RoomType).Error)

	for i := 0; i < roomCount; i++ {
		typeID := f.RoomType.ID
		room := models.Room{
			PropertyID: f.Property.ID,
			RoomTypeID: &typeID,
			RoomNumber: fmt.Sprintf("1%02d", i+1),
			Active:     true,
			Status:     "Available",
		}
		require.NoError(t, db.Create(&room).Error)
		f.Rooms = append(f.Rooms, room)
	}

	f.Plan = models.RatePlan{PropertyID: f.Property.ID, Name: "Flexible", IsActive: true}
	require.NoError(t, db.Create(&f.Plan).Error)

	f.Guest = models.Guest{PropertyID: f.Property.ID, FullName: "Ada Guest", Email: "ada@example.com"}
	require.NoError(t, db.Create(&f.Guest).Error)

	return f
}

// seedDailyRates writes one row per night in [from, to) for the plan.
func seedDailyRates(t *testing.T, db *gorm.DB, f fixture, planID uint, from, to string, rate float64) {
	t.Helper()
	require.NoError(t, utils.EachNight(date(t, from), date(t, to), func(night time.Time) error {
		return db.Create(&models.DailyRate{
			PropertyID: f.Property.ID,
			RoomTypeID: f.RoomType.ID,
			RatePlanID: planID,
			Date:       night,
			Rate:       rate,
		}).Error
	}))
}

func seedReservation(t *testing.T, db *gorm.DB, f fixture, arrival, departure, status string) models.Reservation {
	t.Helper()

	a := date(t, arrival)
	d := date(t, departure)
	planID := f.Plan.ID
	number, err := utils.GenerateConfirmationNumber(8)
	require.NoError(t, err)

	r := models.Reservation{
		PropertyID:         f.Property.ID,
		GuestID:            f.Guest.ID,
		RoomTypeID:         f.RoomType.ID,
		RatePlanID:         &planID,
		ConfirmationNumber: number,
		ArrivalDate:        a,
		DepartureDate:      d,
		Nights:             utils.NightsBetween(a, d),
		Adults:             1,
		Status:             status,
		TotalAmount:        100,
	}
	require.NoError(t, db.Create(&r).Error)
	return r
}
