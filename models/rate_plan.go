package models

import (
	"gorm.io/gorm"
)

type RatePlan struct {
	gorm.Model

	PropertyID uint `gorm:"index;column:property_id" json:"property_id"`

	Name        string `gorm:"size:150" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// Length-of-stay bounds in nights, inclusive. nil means unbounded on that
	// side; a sentinel like 0 or -1 is never used.
	MinLengthOfStay *int `gorm:"column:min_length_of_stay" json:"minLengthOfStay"`
	MaxLengthOfStay *int `gorm:"column:max_length_of_stay" json:"maxLengthOfStay"`

	// No gorm default tag: with one, the ORM drops a false zero value from
	// the INSERT and the column comes back true. Callers set the flag
	// explicitly.
	IsActive bool `gorm:"column:is_active" json:"isActive"`

	Property Property `gorm:"foreignKey:PropertyID;references:ID" json:"property,omitempty"`
}

// AllowsStay reports whether a stay of the given number of nights falls inside
// the plan's length-of-stay bounds.
func (p *RatePlan) AllowsStay(nights int) bool {
	if p.MinLengthOfStay != nil && nights < *p.MinLengthOfStay {
		return false
	}
	if p.MaxLengthOfStay != nil && nights > *p.MaxLengthOfStay {
		return false
	}
	return true
}
