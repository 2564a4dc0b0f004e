package services

import (
	"errors"
	"fmt"

	"hotel-pms/models"

	"gorm.io/gorm"
)

var ErrRoomNotFound = errors.New("room_not_found")

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(room *models.Room) error {
	return s.DB.Create(room).Error
}

func (s *RoomService) GetAll(propertyID uint) ([]models.Room, error) {
	var rooms []models.Room
	q := s.DB.Preload("RoomType").Order("room_number")
	if propertyID != 0 {
		q = q.Where("property_id = ?", propertyID)
	}
	err := q.Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("RoomType").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to retrieve room: %w", err)
	}
	return &room, nil
}

func (s *RoomService) Update(id uint, updates map[string]interface{}) error {
	res := s.DB.Model(&models.Room{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// Deactivate removes the room from sellable inventory without deleting its
// history. Existing reservations keep their room assignment.
func (s *RoomService) Deactivate(id uint) error {
	return s.Update(id, map[string]interface{}{"active": false})
}

func (s *RoomService) Delete(id uint) error {
	return s.DB.Delete(&models.Room{}, id).Error
}
