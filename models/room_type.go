package models

import (
	"time"

	"gorm.io/gorm"
)

type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PropertyID uint `gorm:"index;column:property_id" json:"property_id"`

	TypeName    string `gorm:"size:150" json:"typeName"`
	Description string `gorm:"type:text" json:"description"`

	MaxOccupancy int `gorm:"column:max_occupancy;default:2" json:"maxOccupancy"`

	// Fallback display rate only. Admission decisions use DailyRate rows.
	BaseRate float64 `gorm:"column:base_rate" json:"baseRate"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Property Property `gorm:"foreignKey:PropertyID;references:ID" json:"property,omitempty"`
}
