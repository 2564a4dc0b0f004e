// services/inventory_service.go
package services

import (
	"fmt"
	"time"

	"hotel-pms/models"
	"hotel-pms/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InventoryService derives occupancy live from reservation rows. There is no
// cached counter anywhere; every decision re-reads current statuses.
type InventoryService struct {
	DB *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{DB: db}
}

// lockForUpdate adds SELECT ... FOR UPDATE on dialects that support it.
// SQLite (used by the tests) rejects the clause and serializes writers on
// its own.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// TotalActiveRooms counts the sellable rooms of a room type. When forUpdate
// is true the room rows are locked so concurrent admissions for the same
// (property, room type) pair queue behind this transaction.
func (s *InventoryService) TotalActiveRooms(tx *gorm.DB, propertyID, roomTypeID uint, forUpdate bool) (int64, error) {
	if tx == nil {
		tx = s.DB
	}

	if forUpdate {
		// Count via a locked row fetch; COUNT(*) alone takes no row locks.
		var rooms []models.Room
		if err := lockForUpdate(tx).
			Where("property_id = ? AND room_type_id = ? AND active = ?", propertyID, roomTypeID, true).
			Find(&rooms).Error; err != nil {
			return 0, fmt.Errorf("failed to lock rooms: %w", err)
		}
		return int64(len(rooms)), nil
	}

	var total int64
	if err := tx.Model(&models.Room{}).
		Where("property_id = ? AND room_type_id = ? AND active = ?", propertyID, roomTypeID, true).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}
	return total, nil
}

// OccupancyForNight counts reservations holding a room on the given night.
// A reservation occupies night D iff arrival <= D < departure and its status
// is confirmed or checked_in; a departure on D does not block D.
func (s *InventoryService) OccupancyForNight(tx *gorm.DB, propertyID, roomTypeID uint, night time.Time) (int64, error) {
	if tx == nil {
		tx = s.DB
	}
	night = utils.NormalizeDate(night)

	var occupied int64
	err := tx.Model(&models.Reservation{}).
		Where("property_id = ? AND room_type_id = ?", propertyID, roomTypeID).
		Where("status IN ?", models.OccupyingStatuses).
		Where("arrival_date <= ? AND departure_date > ?", night, night).
		Count(&occupied).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count occupancy for %s: %w", night.Format("2006-01-02"), err)
	}
	return occupied, nil
}

// MinAvailability walks every stayed night in [arrival, departure) and
// returns the total room count plus the minimum free count across the range.
// One full night blocks the whole stay, so the scan is per night on purpose,
// never an average and never just the first night.
func (s *InventoryService) MinAvailability(tx *gorm.DB, propertyID, roomTypeID uint, arrival, departure time.Time, forUpdate bool) (total int64, minAvailable int64, err error) {
	if tx == nil {
		tx = s.DB
	}

	total, err = s.TotalActiveRooms(tx, propertyID, roomTypeID, forUpdate)
	if err != nil {
		return 0, 0, err
	}

	minAvailable = total
	err = utils.EachNight(arrival, departure, func(night time.Time) error {
		occupied, nightErr := s.OccupancyForNight(tx, propertyID, roomTypeID, night)
		if nightErr != nil {
			return nightErr
		}
		if free := total - occupied; free < minAvailable {
			minAvailable = free
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	if minAvailable < 0 {
		minAvailable = 0
	}
	return total, minAvailable, nil
}
