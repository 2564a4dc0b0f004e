package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyRate is one sellable night for a room type under a rate plan. Absence
// of a row for a date means the plan cannot quote that date.
type DailyRate struct {
	gorm.Model

	PropertyID uint `gorm:"column:property_id;uniqueIndex:idx_daily_rate_key" json:"property_id"`
	RoomTypeID uint `gorm:"column:room_type_id;uniqueIndex:idx_daily_rate_key" json:"room_type_id"`
	RatePlanID uint `gorm:"column:rate_plan_id;uniqueIndex:idx_daily_rate_key" json:"rate_plan_id"`

	// Normalized to midnight UTC before every read and write.
	Date time.Time `gorm:"column:date;uniqueIndex:idx_daily_rate_key" json:"date"`

	Rate float64 `gorm:"column:rate" json:"rate"`

	CloseToArrival   bool `gorm:"column:close_to_arrival;default:false" json:"closeToArrival"`
	CloseToDeparture bool `gorm:"column:close_to_departure;default:false" json:"closeToDeparture"`
	StopSell         bool `gorm:"column:stop_sell;default:false" json:"stopSell"`

	RatePlan RatePlan `gorm:"foreignKey:RatePlanID;references:ID" json:"ratePlan,omitempty"`
	RoomType RoomType `gorm:"foreignKey:RoomTypeID;references:ID" json:"roomType,omitempty"`
}
