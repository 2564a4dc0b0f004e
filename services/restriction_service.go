// services/restriction_service.go
package services

import (
	"fmt"
	"time"

	"hotel-pms/models"
	"hotel-pms/utils"

	"gorm.io/gorm"
)

// Restriction types found on daily_rates rows.
const (
	RestrictionStopSell         = "stop_sell"
	RestrictionCloseToArrival   = "close_to_arrival"
	RestrictionCloseToDeparture = "close_to_departure"
)

// RestrictionViolation is one blocked date. All three types are hard blocks;
// there is no manager override path.
type RestrictionViolation struct {
	Type string    `json:"type"`
	Date time.Time `json:"date"`
}

type RestrictionService struct {
	DB *gorm.DB
}

func NewRestrictionService(db *gorm.DB) *RestrictionService {
	return &RestrictionService{DB: db}
}

// RestrictionsFor collects every restriction violated by a stay over
// [arrival, departure). A flag on any rate plan's row blocks the date for the
// whole room type:
//   - stop_sell on any stayed night
//   - close_to_arrival on the arrival date only
//   - close_to_departure on the departure date only
func (s *RestrictionService) RestrictionsFor(tx *gorm.DB, propertyID, roomTypeID uint, arrival, departure time.Time) ([]RestrictionViolation, error) {
	if tx == nil {
		tx = s.DB
	}

	arrival = utils.NormalizeDate(arrival)
	departure = utils.NormalizeDate(departure)

	violations := []RestrictionViolation{}

	var stopSellDates []time.Time
	err := tx.Model(&models.DailyRate{}).
		Distinct("date").
		Where("property_id = ? AND room_type_id = ?", propertyID, roomTypeID).
		Where("date >= ? AND date < ?", arrival, departure).
		Where("stop_sell = ?", true).
		Order("date").
		Pluck("date", &stopSellDates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to scan stop_sell dates: %w", err)
	}
	for _, d := range stopSellDates {
		violations = append(violations, RestrictionViolation{Type: RestrictionStopSell, Date: utils.NormalizeDate(d)})
	}

	blockedAt := func(date time.Time, column string) (bool, error) {
		var n int64
		err := tx.Model(&models.DailyRate{}).
			Where("property_id = ? AND room_type_id = ? AND date = ?", propertyID, roomTypeID, date).
			Where(column+" = ?", true).
			Count(&n).Error
		if err != nil {
			return false, fmt.Errorf("failed to check %s at %s: %w", column, date.Format("2006-01-02"), err)
		}
		return n > 0, nil
	}

	if blocked, err := blockedAt(arrival, "close_to_arrival"); err != nil {
		return nil, err
	} else if blocked {
		violations = append(violations, RestrictionViolation{Type: RestrictionCloseToArrival, Date: arrival})
	}

	if blocked, err := blockedAt(departure, "close_to_departure"); err != nil {
		return nil, err
	} else if blocked {
		violations = append(violations, RestrictionViolation{Type: RestrictionCloseToDeparture, Date: departure})
	}

	return violations, nil
}
