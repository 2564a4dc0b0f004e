package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Reservation statuses. Only confirmed and checked_in consume inventory.
const (
	ReservationStatusPending    = "pending"
	ReservationStatusConfirmed  = "confirmed"
	ReservationStatusCheckedIn  = "checked_in"
	ReservationStatusCheckedOut = "checked_out"
	ReservationStatusCancelled  = "cancelled"
	ReservationStatusNoShow     = "no_show"
)

// OccupyingStatuses are the statuses that block rooms on a night.
var OccupyingStatuses = []string{ReservationStatusConfirmed, ReservationStatusCheckedIn}

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PropertyID uint  `gorm:"index;column:property_id" json:"property_id"`
	GuestID    uint  `gorm:"index;column:guest_id" json:"guest_id"`
	RoomTypeID uint  `gorm:"index;column:room_type_id" json:"room_type_id"`
	RatePlanID *uint `gorm:"index;column:rate_plan_id" json:"rate_plan_id,omitempty"`

	// Assigned at check-in, not at booking.
	RoomID *uint `gorm:"index;column:room_id" json:"room_id,omitempty"`

	ConfirmationNumber string `gorm:"column:confirmation_number;uniqueIndex;size:32" json:"confirmation_number"`

	// The stay occupies [ArrivalDate, DepartureDate). Both midnight UTC.
	ArrivalDate   time.Time `gorm:"column:arrival_date;index" json:"arrival_date"`
	DepartureDate time.Time `gorm:"column:departure_date;index" json:"departure_date"`
	Nights        int       `gorm:"column:nights" json:"nights"`

	Adults   int `gorm:"column:adults;default:1" json:"adults"`
	Children int `gorm:"column:children;default:0" json:"children"`

	Status      string  `gorm:"column:status;size:32;index" json:"status"`
	TotalAmount float64 `gorm:"column:total_amount" json:"total_amount"`

	// Per-night rate snapshot captured at admission time.
	RateBreakdown datatypes.JSON `gorm:"column:rate_breakdown" json:"rateBreakdown,omitempty"`

	CheckedInAt  *time.Time `gorm:"column:checked_in_at" json:"checked_in_at,omitempty"`
	CheckedOutAt *time.Time `gorm:"column:checked_out_at" json:"checked_out_at,omitempty"`

	Guest    Guest    `gorm:"foreignKey:GuestID;references:ID" json:"guest,omitempty"`
	RoomType RoomType `gorm:"foreignKey:RoomTypeID;references:ID" json:"roomType,omitempty"`
	RatePlan RatePlan `gorm:"foreignKey:RatePlanID;references:ID" json:"ratePlan,omitempty"`
	Room     Room     `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}

// OccupiesNight reports whether the reservation blocks a room on the given
// night. Departure day is free: checkout on X and a new arrival on X do not
// conflict.
func (r *Reservation) OccupiesNight(night time.Time) bool {
	if r.Status != ReservationStatusConfirmed && r.Status != ReservationStatusCheckedIn {
		return false
	}
	return !r.ArrivalDate.After(night) && r.DepartureDate.After(night)
}
