// services/reservation_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"hotel-pms/models"
	"hotel-pms/utils"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Denial codes carried on every rejected admission. The HTTP layer maps them
// to status codes; they are part of the public contract and must stay
// distinguishable.
const (
	DenialValidation   = "validation"
	DenialNoRates      = "no_rates_available"
	DenialNoRooms      = "no_rooms_available"
	DenialRestrictions = "booking_restrictions"
)

var (
	ErrReservationNotFound = errors.New("reservation_not_found")
	ErrInvalidTransition   = errors.New("invalid_status_transition")
	ErrRoomNotAssignable   = errors.New("room_not_assignable")

	// errAdmissionDenied rolls the admission transaction back after a denial
	// was recorded on the result. Never escapes Admit.
	errAdmissionDenied = errors.New("admission_denied")
)

// AdmissionRequest is a reservation request as the HTTP layer hands it over.
// Dates are already parsed; normalization happens here regardless.
type AdmissionRequest struct {
	PropertyID uint
	GuestID    uint
	RoomTypeID uint
	RatePlanID *uint

	Arrival   time.Time
	Departure time.Time

	Adults   int
	Children int

	// When nil the rate selector quotes the stay.
	TotalAmount *float64
}

// AdmissionResult reports the single transition requested → confirmed |
// rejected. Rejection is a normal outcome: Success false, a denial code, a
// human message and, where it helps explain, the availability snapshot.
// Storage faults surface as an error from Admit instead, never as a result.
type AdmissionResult struct {
	Success      bool                `json:"success"`
	Reservation  *models.Reservation `json:"reservation,omitempty"`
	DenialCode   string              `json:"code,omitempty"`
	Message      string              `json:"message,omitempty"`
	Availability *AvailabilityResult `json:"availability,omitempty"`
}

type ReservationService struct {
	DB           *gorm.DB
	Rates        *RateService
	Availability *AvailabilityService
}

func NewReservationService(db *gorm.DB, rates *RateService, availability *AvailabilityService) *ReservationService {
	return &ReservationService{DB: db, Rates: rates, Availability: availability}
}

type breakdownNight struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

func isDuplicateKeyErr(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") || strings.Contains(lc, "constraint")
}

func denied(result *AdmissionResult, code, message string, availability *AvailabilityResult) error {
	result.Success = false
	result.DenialCode = code
	result.Message = message
	result.Availability = availability
	return errAdmissionDenied
}

// Admit runs the whole admission decision and, on success, persists the
// confirmed reservation. With validateAvailability true everything from rate
// lookup to the insert happens inside one transaction that holds FOR UPDATE
// locks on the room rows, so two concurrent requests for the last room cannot
// both commit. A pre-flight CheckAvailability outside this transaction is
// advisory only and is never reused here.
func (s *ReservationService) Admit(req AdmissionRequest, validateAvailability bool) (*AdmissionResult, error) {
	result := &AdmissionResult{}

	arrival := utils.NormalizeDate(req.Arrival)
	departure := utils.NormalizeDate(req.Departure)

	nights := utils.NightsBetween(arrival, departure)
	if nights <= 0 {
		result.DenialCode = DenialValidation
		result.Message = "Departure date must be after arrival date"
		return result, nil
	}

	adults := req.Adults
	if adults <= 0 {
		adults = 1
	}
	children := req.Children
	if children < 0 {
		children = 0
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		totalAmount := 0.0
		ratePlanID := req.RatePlanID
		breakdown := []breakdownNight{}

		// The room-row locks must be the transaction's first statement. On
		// MySQL the first plain read pins the REPEATABLE READ snapshot, so a
		// plan or rate lookup issued before the lock would freeze the
		// occupancy counts at a point before a competing admission commits;
		// locking first means every plain read below starts after the lock
		// is granted and sees that commit.
		if validateAvailability {
			if _, err := s.Availability.Inventory.TotalActiveRooms(tx, req.PropertyID, req.RoomTypeID, true); err != nil {
				return err
			}
		}

		// Validate length of stay against the requested plan first, so a
		// bound violation reports its exact message instead of surfacing as
		// a rate lookup failure.
		if req.RatePlanID != nil {
			var plan models.RatePlan
			if err := tx.First(&plan, *req.RatePlanID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return denied(result, DenialValidation, "Rate plan not found", nil)
				}
				return err
			}
			if plan.MinLengthOfStay != nil && nights < *plan.MinLengthOfStay {
				return denied(result, DenialValidation,
					fmt.Sprintf("Minimum length of stay is %d nights", *plan.MinLengthOfStay), nil)
			}
			if plan.MaxLengthOfStay != nil && nights > *plan.MaxLengthOfStay {
				return denied(result, DenialValidation,
					fmt.Sprintf("Maximum length of stay is %d nights", *plan.MaxLengthOfStay), nil)
			}
		}

		if req.TotalAmount != nil {
			totalAmount = *req.TotalAmount
		} else {
			quote, err := s.Rates.BestRate(tx, req.PropertyID, req.RoomTypeID, arrival, departure, nights)
			if errors.Is(err, ErrNoRatesAvailable) {
				return denied(result, DenialNoRates, "No available rates for the selected dates", nil)
			}
			if err != nil {
				return err
			}
			totalAmount = quote.TotalAmount
			if ratePlanID == nil {
				planID := quote.RatePlan.ID
				ratePlanID = &planID
			}
			for _, row := range quote.DailyRates {
				breakdown = append(breakdown, breakdownNight{
					Date: row.Date.Format("2006-01-02"),
					Rate: row.Rate,
				})
			}
		}

		if validateAvailability {
			availability, err := s.Availability.CheckAvailabilityTx(tx, req.PropertyID, req.RoomTypeID, arrival, departure, true)
			if err != nil {
				return err
			}
			if availability.AvailableRooms <= 0 {
				return denied(result, DenialNoRooms, "No rooms available for the selected dates", availability)
			}
			if len(availability.Restrictions) > 0 {
				return denied(result, DenialRestrictions, "Selected dates have booking restrictions", availability)
			}
		}

		breakdownJSON, err := json.Marshal(breakdown)
		if err != nil {
			return fmt.Errorf("failed to marshal rate breakdown: %w", err)
		}

		reservation := models.Reservation{
			PropertyID:    req.PropertyID,
			GuestID:       req.GuestID,
			RoomTypeID:    req.RoomTypeID,
			RatePlanID:    ratePlanID,
			ArrivalDate:   arrival,
			DepartureDate: departure,
			Nights:        nights,
			Adults:        adults,
			Children:      children,
			Status:        models.ReservationStatusConfirmed,
			TotalAmount:   totalAmount,
			RateBreakdown: datatypes.JSON(breakdownJSON),
		}

		// Retry the insert on confirmation-number collisions.
		maxRetries := 5
		var createErr error
		for attempt := 0; attempt < maxRetries; attempt++ {
			number, genErr := utils.GenerateConfirmationNumber(8)
			if genErr != nil {
				return fmt.Errorf("failed to generate confirmation number: %w", genErr)
			}
			reservation.ConfirmationNumber = number

			createErr = tx.Create(&reservation).Error
			if createErr == nil {
				break
			}
			if isDuplicateKeyErr(createErr) {
				log.Printf("confirmation number collision (attempt %d) - retrying", attempt+1)
				reservation.ID = 0
				continue
			}
			return fmt.Errorf("failed to create reservation: %w", createErr)
		}
		if createErr != nil {
			return fmt.Errorf("failed to create reservation after retries: %w", createErr)
		}

		var created models.Reservation
		if err := tx.
			Preload("Guest").
			Preload("RoomType").
			Preload("RatePlan").
			First(&created, reservation.ID).Error; err != nil {
			return err
		}

		result.Success = true
		result.Reservation = &created
		result.DenialCode = ""
		result.Message = ""
		return nil
	})

	if txErr != nil {
		if errors.Is(txErr, errAdmissionDenied) {
			// Denial already recorded on the result; the rollback wrote nothing.
			return result, nil
		}
		return nil, txErr
	}
	return result, nil
}

// GetByID loads a reservation with its relations.
func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.DB.
		Preload("Guest").
		Preload("RoomType").
		Preload("RatePlan").
		Preload("Room").
		First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to retrieve reservation: %w", err)
	}
	return &reservation, nil
}

// ListByProperty returns reservations newest first; propertyID 0 means all.
func (s *ReservationService) ListByProperty(propertyID uint) ([]models.Reservation, error) {
	q := s.DB.
		Preload("Guest").
		Preload("RoomType").
		Preload("RatePlan").
		Order("created_at DESC")
	if propertyID != 0 {
		q = q.Where("property_id = ?", propertyID)
	}

	var list []models.Reservation
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	return list, nil
}

// Cancel releases the reservation's nights back to inventory.
func (s *ReservationService) Cancel(id uint) error {
	return s.transition(id, func(r *models.Reservation) error {
		switch r.Status {
		case models.ReservationStatusConfirmed, models.ReservationStatusPending:
			r.Status = models.ReservationStatusCancelled
			return nil
		default:
			return ErrInvalidTransition
		}
	})
}

// MarkNoShow flags a confirmed reservation whose guest never arrived.
func (s *ReservationService) MarkNoShow(id uint) error {
	return s.transition(id, func(r *models.Reservation) error {
		if r.Status != models.ReservationStatusConfirmed {
			return ErrInvalidTransition
		}
		r.Status = models.ReservationStatusNoShow
		return nil
	})
}

// CheckIn assigns a concrete room and moves the reservation to checked_in.
// The room must belong to the same property and room type and be active.
func (s *ReservationService) CheckIn(id uint, roomID uint) error {
	now := time.Now().UTC()

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := lockForUpdate(tx).First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if reservation.Status != models.ReservationStatusConfirmed {
			return ErrInvalidTransition
		}

		var room models.Room
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotAssignable
			}
			return err
		}
		if !room.Active || room.PropertyID != reservation.PropertyID ||
			room.RoomTypeID == nil || *room.RoomTypeID != reservation.RoomTypeID {
			return ErrRoomNotAssignable
		}

		return tx.Model(&reservation).Updates(map[string]interface{}{
			"status":        models.ReservationStatusCheckedIn,
			"room_id":       roomID,
			"checked_in_at": now,
		}).Error
	})
}

// CheckOut ends the stay; the reservation stops consuming inventory.
func (s *ReservationService) CheckOut(id uint) error {
	now := time.Now().UTC()

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := lockForUpdate(tx).First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if reservation.Status != models.ReservationStatusCheckedIn {
			return ErrInvalidTransition
		}

		return tx.Model(&reservation).Updates(map[string]interface{}{
			"status":         models.ReservationStatusCheckedOut,
			"checked_out_at": now,
		}).Error
	})
}

func (s *ReservationService) transition(id uint, apply func(*models.Reservation) error) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := lockForUpdate(tx).First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if err := apply(&reservation); err != nil {
			return err
		}
		return tx.Model(&models.Reservation{}).
			Where("id = ?", reservation.ID).
			Update("status", reservation.Status).Error
	})
}
