// services/availability_service.go
package services

import (
	"time"

	"hotel-pms/utils"

	"gorm.io/gorm"
)

// AvailabilityResult is the answer to "can this stay be sold?". available is
// true only when at least one room is free on every night AND no restriction
// blocks the dates; plenty of rooms never overrides a stop-sell.
type AvailabilityResult struct {
	Available      bool                   `json:"available"`
	TotalRooms     int64                  `json:"total_rooms"`
	OccupiedRooms  int64                  `json:"occupied_rooms"`
	AvailableRooms int64                  `json:"available_rooms"`
	Restrictions   []RestrictionViolation `json:"restrictions"`
}

// CalendarDay is one date of the availability calendar: raw per-date facts
// for UI rendering, no aggregate decision.
type CalendarDay struct {
	Date             time.Time `json:"date"`
	TotalRooms       int64     `json:"total_rooms"`
	OccupiedRooms    int64     `json:"occupied_rooms"`
	AvailableRooms   int64     `json:"available_rooms"`
	StopSell         bool      `json:"stop_sell"`
	CloseToArrival   bool      `json:"close_to_arrival"`
	CloseToDeparture bool      `json:"close_to_departure"`
}

type AvailabilityService struct {
	DB           *gorm.DB
	Inventory    *InventoryService
	Restrictions *RestrictionService
}

func NewAvailabilityService(db *gorm.DB, inventory *InventoryService, restrictions *RestrictionService) *AvailabilityService {
	return &AvailabilityService{DB: db, Inventory: inventory, Restrictions: restrictions}
}

// CheckAvailability answers outside any transaction. This is advisory (UI
// pre-flight); the admission workflow re-runs CheckAvailabilityTx inside its
// own transaction and never trusts an earlier answer.
func (s *AvailabilityService) CheckAvailability(propertyID, roomTypeID uint, arrival, departure time.Time) (*AvailabilityResult, error) {
	return s.CheckAvailabilityTx(s.DB, propertyID, roomTypeID, arrival, departure, false)
}

// CheckAvailabilityTx runs the full availability computation on the given
// handle. With forUpdate set, the room rows stay locked until the caller's
// transaction ends.
func (s *AvailabilityService) CheckAvailabilityTx(tx *gorm.DB, propertyID, roomTypeID uint, arrival, departure time.Time, forUpdate bool) (*AvailabilityResult, error) {
	if tx == nil {
		tx = s.DB
	}
	arrival = utils.NormalizeDate(arrival)
	departure = utils.NormalizeDate(departure)

	total, minAvailable, err := s.Inventory.MinAvailability(tx, propertyID, roomTypeID, arrival, departure, forUpdate)
	if err != nil {
		return nil, err
	}

	restrictions, err := s.Restrictions.RestrictionsFor(tx, propertyID, roomTypeID, arrival, departure)
	if err != nil {
		return nil, err
	}

	return &AvailabilityResult{
		Available:      minAvailable > 0 && len(restrictions) == 0,
		TotalRooms:     total,
		OccupiedRooms:  total - minAvailable,
		AvailableRooms: minAvailable,
		Restrictions:   restrictions,
	}, nil
}

// Calendar returns one row per date in [from, to) with that date's occupancy
// and restriction flags.
func (s *AvailabilityService) Calendar(propertyID, roomTypeID uint, from, to time.Time) ([]CalendarDay, error) {
	total, err := s.Inventory.TotalActiveRooms(s.DB, propertyID, roomTypeID, false)
	if err != nil {
		return nil, err
	}

	days := []CalendarDay{}
	err = utils.EachNight(from, to, func(date time.Time) error {
		occupied, dayErr := s.Inventory.OccupancyForNight(s.DB, propertyID, roomTypeID, date)
		if dayErr != nil {
			return dayErr
		}

		day := CalendarDay{
			Date:           date,
			TotalRooms:     total,
			OccupiedRooms:  occupied,
			AvailableRooms: total - occupied,
		}
		if day.AvailableRooms < 0 {
			day.AvailableRooms = 0
		}

		// Restriction flags at this single date; CTA/CTD apply to stays, so
		// here they are reported as facts, not as a decision.
		dayRestrictions, dayErr := s.dateFlags(propertyID, roomTypeID, date)
		if dayErr != nil {
			return dayErr
		}
		day.StopSell = dayRestrictions[RestrictionStopSell]
		day.CloseToArrival = dayRestrictions[RestrictionCloseToArrival]
		day.CloseToDeparture = dayRestrictions[RestrictionCloseToDeparture]

		days = append(days, day)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return days, nil
}

func (s *AvailabilityService) dateFlags(propertyID, roomTypeID uint, date time.Time) (map[string]bool, error) {
	type flagRow struct {
		StopSell         bool
		CloseToArrival   bool
		CloseToDeparture bool
	}

	var rows []flagRow
	err := s.DB.Table("daily_rates").
		Select("stop_sell, close_to_arrival, close_to_departure").
		Where("property_id = ? AND room_type_id = ? AND date = ? AND deleted_at IS NULL", propertyID, roomTypeID, date).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	flags := map[string]bool{}
	for _, row := range rows {
		flags[RestrictionStopSell] = flags[RestrictionStopSell] || row.StopSell
		flags[RestrictionCloseToArrival] = flags[RestrictionCloseToArrival] || row.CloseToArrival
		flags[RestrictionCloseToDeparture] = flags[RestrictionCloseToDeparture] || row.CloseToDeparture
	}
	return flags, nil
}
