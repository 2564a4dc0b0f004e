// services/rate_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-pms/models"
	"hotel-pms/utils"

	"gorm.io/gorm"
)

// ErrNoRatesAvailable means no active rate plan can quote the full stay.
// Distinct from an availability denial: pricing failed, rooms may be free.
var ErrNoRatesAvailable = errors.New("no_rates_available")

// RateQuote is the cheapest complete quote for a stay.
type RateQuote struct {
	RatePlan           models.RatePlan    `json:"ratePlan"`
	DailyRates         []models.DailyRate `json:"dailyRates"`
	TotalAmount        float64            `json:"totalAmount"`
	AverageNightlyRate float64            `json:"averageNightlyRate"`
}

type RateService struct {
	DB *gorm.DB
}

func NewRateService(db *gorm.DB) *RateService {
	return &RateService{DB: db}
}

// BestRate searches every active rate plan of the property whose
// length-of-stay bounds allow the stay and returns the lowest-total quote.
// A plan is disqualified when it is missing a nightly row for any stayed
// night or when one of its own rows carries stop_sell.
func (s *RateService) BestRate(tx *gorm.DB, propertyID, roomTypeID uint, arrival, departure time.Time, nights int) (*RateQuote, error) {
	if tx == nil {
		tx = s.DB
	}
	if nights <= 0 {
		return nil, ErrNoRatesAvailable
	}

	arrival = utils.NormalizeDate(arrival)
	departure = utils.NormalizeDate(departure)

	var plans []models.RatePlan
	if err := tx.
		Where("property_id = ? AND is_active = ?", propertyID, true).
		Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("failed to load rate plans: %w", err)
	}

	var best *RateQuote
	for i := range plans {
		plan := plans[i]
		if !plan.AllowsStay(nights) {
			continue
		}

		var rows []models.DailyRate
		if err := tx.
			Where("property_id = ? AND room_type_id = ? AND rate_plan_id = ?", propertyID, roomTypeID, plan.ID).
			Where("date >= ? AND date < ?", arrival, departure).
			Order("date").
			Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to load daily rates for plan %d: %w", plan.ID, err)
		}

		// A gap means the plan cannot quote the full stay.
		if len(rows) != nights {
			continue
		}

		quotable := true
		total := 0.0
		for _, row := range rows {
			if row.StopSell {
				quotable = false
				break
			}
			total += row.Rate
		}
		if !quotable {
			continue
		}

		if best == nil || total < best.TotalAmount {
			best = &RateQuote{
				RatePlan:           plan,
				DailyRates:         rows,
				TotalAmount:        total,
				AverageNightlyRate: total / float64(nights),
			}
		}
	}

	if best == nil {
		return nil, ErrNoRatesAvailable
	}
	return best, nil
}
