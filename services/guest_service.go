package services

import (
	"errors"
	"fmt"

	"hotel-pms/models"

	"gorm.io/gorm"
)

var ErrGuestNotFound = errors.New("guest_not_found")

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

func (s *GuestService) Create(guest *models.Guest) error {
	return s.DB.Create(guest).Error
}

func (s *GuestService) GetAll(propertyID uint) ([]models.Guest, error) {
	var guests []models.Guest
	q := s.DB.Order("created_at DESC")
	if propertyID != 0 {
		q = q.Where("property_id = ?", propertyID)
	}
	err := q.Find(&guests).Error
	return guests, err
}

func (s *GuestService) GetByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("failed to retrieve guest: %w", err)
	}
	return &guest, nil
}

func (s *GuestService) Update(id uint, updates map[string]interface{}) error {
	res := s.DB.Model(&models.Guest{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrGuestNotFound
	}
	return nil
}

func (s *GuestService) Delete(id uint) error {
	return s.DB.Delete(&models.Guest{}, id).Error
}
