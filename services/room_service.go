package services

import (
	"errors"
	"fmt"

	"hotel-reservation/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(room *models.Room) error {
	return s.DB.Create(room).Error
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Preload("Amenities").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("Amenities").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, makeErr(ErrNotFound, "room not found")
		}
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) Update(room *models.Room) error {
	return s.DB.Model(&models.Room{}).Where("id = ?", room.ID).Updates(roomColumns(room)).Error
}

// roomColumns lists the updatable columns explicitly so zero values
// (base price 0, cleared description) are written. is_available is absent:
// only check-in/check-out mutate it.
func roomColumns(room *models.Room) map[string]interface{} {
	return map[string]interface{}{
		"type":        room.Type,
		"base_price":  room.BasePrice,
		"capacity":    room.Capacity,
		"description": room.Description,
		"image":       room.Image,
	}
}

// Delete removes the room and, via the cascade on the FK, its reservations.
// The amenity join rows go with it; the amenities themselves stay.
func (s *RoomService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return makeErr(ErrNotFound, "room not found")
			}
			return err
		}
		if err := tx.Model(&room).Association("Amenities").Clear(); err != nil {
			return fmt.Errorf("failed to detach amenities: %w", err)
		}
		if err := tx.Where("room_id = ?", id).Delete(&models.Reservation{}).Error; err != nil {
			return fmt.Errorf("failed to delete reservations for room %d: %w", id, err)
		}
		return tx.Delete(&room).Error
	})
}

// SetAmenities replaces the room's amenity set with the given amenity ids.
// Already-created reservations keep their snapshotted paid_price.
func (s *RoomService) SetAmenities(roomID uint, amenityIDs []uint) (*models.Room, error) {
	var room models.Room
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return makeErr(ErrNotFound, "room not found")
			}
			return err
		}

		var amenities []models.Amenity
		if len(amenityIDs) > 0 {
			if err := tx.Find(&amenities, amenityIDs).Error; err != nil {
				return fmt.Errorf("failed to load amenities: %w", err)
			}
			if len(amenities) != len(amenityIDs) {
				return makeErr(ErrNotFound, "one or more amenities not found")
			}
		}
		if err := tx.Model(&room).Association("Amenities").Replace(amenities); err != nil {
			return fmt.Errorf("failed to replace amenities: %w", err)
		}
		room.Amenities = amenities
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &room, nil
}
