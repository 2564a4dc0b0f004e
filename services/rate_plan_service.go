// services/rate_plan_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-pms/models"
	"hotel-pms/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRatePlanNotFound = errors.New("rate_plan_not_found")

type RatePlanService struct {
	DB *gorm.DB
}

func NewRatePlanService(db *gorm.DB) *RatePlanService {
	return &RatePlanService{DB: db}
}

func (s *RatePlanService) Create(plan *models.RatePlan) error {
	if plan.MinLengthOfStay != nil && plan.MaxLengthOfStay != nil &&
		*plan.MinLengthOfStay > *plan.MaxLengthOfStay {
		return errors.New("validation: min length of stay exceeds max")
	}
	if err := s.DB.Create(plan).Error; err != nil {
		return fmt.Errorf("failed to create rate plan: %w", err)
	}
	return nil
}

func (s *RatePlanService) GetByID(id uint) (*models.RatePlan, error) {
	var plan models.RatePlan
	if err := s.DB.First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatePlanNotFound
		}
		return nil, fmt.Errorf("failed to retrieve rate plan: %w", err)
	}
	return &plan, nil
}

func (s *RatePlanService) ListByProperty(propertyID uint) ([]models.RatePlan, error) {
	var plans []models.RatePlan
	q := s.DB.Order("id")
	if propertyID != 0 {
		q = q.Where("property_id = ?", propertyID)
	}
	if err := q.Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rate plans: %w", err)
	}
	return plans, nil
}

// Update applies a column map to the plan. The length-of-stay bounds are
// re-checked on the merged result, so a partial update cannot leave
// min_length_of_stay above max_length_of_stay.
func (s *RatePlanService) Update(id uint, updates map[string]interface{}) error {
	var plan models.RatePlan
	if err := s.DB.First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRatePlanNotFound
		}
		return fmt.Errorf("failed to load rate plan: %w", err)
	}

	minStay := plan.MinLengthOfStay
	maxStay := plan.MaxLengthOfStay
	if v, ok := updates["min_length_of_stay"]; ok {
		minStay = boundFromUpdate(v)
	}
	if v, ok := updates["max_length_of_stay"]; ok {
		maxStay = boundFromUpdate(v)
	}
	if minStay != nil && maxStay != nil && *minStay > *maxStay {
		return errors.New("validation: min length of stay exceeds max")
	}

	if err := s.DB.Model(&plan).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update rate plan: %w", err)
	}
	return nil
}

// boundFromUpdate reads a length-of-stay value out of an update map. JSON
// bodies decode numbers as float64; direct callers may pass int or *int.
func boundFromUpdate(v interface{}) *int {
	switch n := v.(type) {
	case float64:
		i := int(n)
		return &i
	case int:
		i := n
		return &i
	case *int:
		return n
	}
	return nil
}

func (s *RatePlanService) Delete(id uint) error {
	return s.DB.Delete(&models.RatePlan{}, id).Error
}

// DailyRateSpec describes one bulk write of nightly rates: one row per date
// in [From, To), all carrying the same price and restriction flags.
type DailyRateSpec struct {
	PropertyID uint
	RoomTypeID uint
	RatePlanID uint

	From time.Time
	To   time.Time

	Rate             float64
	StopSell         bool
	CloseToArrival   bool
	CloseToDeparture bool
}

// SetDailyRates upserts the nightly rows for the requested date range. This is
// the write path behind the restriction evaluator and the rate selector.
func (s *RatePlanService) SetDailyRates(spec DailyRateSpec) (int, error) {
	if utils.NightsBetween(spec.From, spec.To) <= 0 {
		return 0, errors.New("validation: to date must be after from date")
	}

	var plan models.RatePlan
	if err := s.DB.First(&plan, spec.RatePlanID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrRatePlanNotFound
		}
		return 0, fmt.Errorf("failed to load rate plan: %w", err)
	}

	written := 0
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return utils.EachNight(spec.From, spec.To, func(date time.Time) error {
			row := models.DailyRate{
				PropertyID:       spec.PropertyID,
				RoomTypeID:       spec.RoomTypeID,
				RatePlanID:       spec.RatePlanID,
				Date:             date,
				Rate:             spec.Rate,
				StopSell:         spec.StopSell,
				CloseToArrival:   spec.CloseToArrival,
				CloseToDeparture: spec.CloseToDeparture,
			}
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "property_id"}, {Name: "room_type_id"}, {Name: "rate_plan_id"}, {Name: "date"},
				},
				DoUpdates: clause.AssignmentColumns([]string{"rate", "stop_sell", "close_to_arrival", "close_to_departure"}),
			}).Create(&row).Error
			if err != nil {
				return fmt.Errorf("failed to upsert daily rate for %s: %w", date.Format("2006-01-02"), err)
			}
			written++
			return nil
		})
	})
	if err != nil {
		return 0, err
	}
	return written, nil
}

// ListDailyRates returns the stored rows over [from, to) ordered by date.
func (s *RatePlanService) ListDailyRates(propertyID, roomTypeID, ratePlanID uint, from, to time.Time) ([]models.DailyRate, error) {
	q := s.DB.
		Where("property_id = ? AND room_type_id = ?", propertyID, roomTypeID).
		Where("date >= ? AND date < ?", utils.NormalizeDate(from), utils.NormalizeDate(to)).
		Order("date")
	if ratePlanID != 0 {
		q = q.Where("rate_plan_id = ?", ratePlanID)
	}

	var rows []models.DailyRate
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve daily rates: %w", err)
	}
	return rows, nil
}
