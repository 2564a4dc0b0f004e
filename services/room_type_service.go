package services

import (
	"errors"
	"fmt"

	"hotel-pms/models"

	"gorm.io/gorm"
)

var ErrRoomTypeNotFound = errors.New("room_type_not_found")

type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

func (s *RoomTypeService) Create(roomType *models.RoomType) error {
	return s.DB.Create(roomType).Error
}

func (s *RoomTypeService) GetAll(propertyID uint) ([]models.RoomType, error) {
	var types []models.RoomType
	q := s.DB.Order("id")
	if propertyID != 0 {
		q = q.Where("property_id = ?", propertyID)
	}
	err := q.Find(&types).Error
	return types, err
}

func (s *RoomTypeService) GetByID(id uint) (*models.RoomType, error) {
	var roomType models.RoomType
	if err := s.DB.First(&roomType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("failed to retrieve room type: %w", err)
	}
	return &roomType, nil
}

func (s *RoomTypeService) Update(id uint, updates map[string]interface{}) error {
	res := s.DB.Model(&models.RoomType{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRoomTypeNotFound
	}
	return nil
}

func (s *RoomTypeService) Delete(id uint) error {
	return s.DB.Delete(&models.RoomType{}, id).Error
}
