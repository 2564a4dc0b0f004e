package models

import (
	"gorm.io/gorm"
)

type Guest struct {
	gorm.Model

	PropertyID uint `gorm:"index;column:property_id" json:"property_id"`

	FullName string `gorm:"size:255" json:"fullName"`
	Email    string `gorm:"size:150;index" json:"email"`
	Phone    string `gorm:"size:50" json:"phone"`

	Nationality string `gorm:"size:100" json:"nationality"`
	Address     string `gorm:"type:text" json:"address"`

	IDType   string `gorm:"size:50" json:"idType"`
	IDNumber string `gorm:"size:100" json:"idNumber"`
}
