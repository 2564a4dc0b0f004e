package models

import (
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model

	PropertyID uint `gorm:"column:property_id;uniqueIndex:idx_property_room_number" json:"property_id"`

	// Nullable so a room can exist before it is assigned a type.
	RoomTypeID *uint `json:"room_type_id,omitempty" gorm:"index;column:room_type_id"`

	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex:idx_property_room_number;type:varchar(50)"`
	Floor      string `json:"floor" gorm:"type:varchar(10)"`

	// Only active rooms count toward sellable inventory. No gorm default
	// tag: with one, a false zero value is dropped from the INSERT and the
	// room is stored active. Callers set the flag explicitly.
	Active bool `gorm:"column:active" json:"active"`

	Status      string `json:"status" gorm:"size:64"`
	Description string `json:"description" gorm:"type:text"`

	Property Property `gorm:"foreignKey:PropertyID;references:ID" json:"property,omitempty"`
	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"roomType,omitempty"`
}
