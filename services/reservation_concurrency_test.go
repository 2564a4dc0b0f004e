// services/reservation_concurrency_test.go
package services

import (
	"os"
	"sync"
	"testing"

	"hotel-pms/config"
	"hotel-pms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupMySQLTestDB connects to the MySQL server named by TEST_MYSQL_DSN and
// skips when the variable is unset. The FOR UPDATE row locking taken during
// admission is a no-op on sqlite, so only a run against a real server
// exercises the serialization the admission transaction relies on.
func setupMySQLTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("TEST_MYSQL_DSN not set; skipping MySQL-backed admission test")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

// Several simultaneous admissions race for a single room on a real InnoDB
// backend. Exactly one may commit; the rest must observe the winner's insert
// after acquiring the room-row locks and be denied.
func TestAdmitConcurrentLastRoomOnMySQL(t *testing.T) {
	db := setupMySQLTestDB(t)
	f := seedFixture(t, db, 1)
	seedDailyRates(t, db, f, f.Plan.ID, "2024-06-01", "2024-07-01", 100)
	svc := newReservationService(db)

	req := admissionRequest(t, f, "2024-06-10", "2024-06-12")

	const workers = 8
	results := make(chan *AdmissionResult, workers)
	errs := make(chan error, workers)
	start := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			result, err := svc.Admit(req, true)
			results <- result
			errs <- err
		}()
	}
	close(start)
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	admitted := 0
	for result := range results {
		if result.Success {
			admitted++
		} else {
			assert.Equal(t, DenialNoRooms, result.DenialCode)
		}
	}
	assert.Equal(t, 1, admitted)

	var confirmed int64
	require.NoError(t, db.Model(&models.Reservation{}).
		Where("property_id = ? AND status = ?", f.Property.ID, models.ReservationStatusConfirmed).
		Count(&confirmed).Error)
	assert.Equal(t, int64(1), confirmed)
}
