package services

import (
	"errors"
	"fmt"

	"hotel-pms/models"

	"gorm.io/gorm"
)

var ErrPropertyNotFound = errors.New("property_not_found")

type PropertyService struct {
	DB *gorm.DB
}

func NewPropertyService(db *gorm.DB) *PropertyService {
	return &PropertyService{DB: db}
}

func (s *PropertyService) Create(property *models.Property) error {
	return s.DB.Create(property).Error
}

func (s *PropertyService) GetAll() ([]models.Property, error) {
	var properties []models.Property
	err := s.DB.Order("id").Find(&properties).Error
	return properties, err
}

func (s *PropertyService) GetByID(id uint) (*models.Property, error) {
	var property models.Property
	if err := s.DB.First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to retrieve property: %w", err)
	}
	return &property, nil
}

func (s *PropertyService) Update(id uint, updates map[string]interface{}) error {
	res := s.DB.Model(&models.Property{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPropertyNotFound
	}
	return nil
}
