package services

import (
	"errors"
	"fmt"

	"hotel-reservation/models"

	"gorm.io/gorm"
)

type AmenityService struct {
	DB *gorm.DB
}

func NewAmenityService(db *gorm.DB) *AmenityService {
	return &AmenityService{DB: db}
}

func (s *AmenityService) Create(a *models.Amenity) error {
	return s.DB.Create(a).Error
}

func (s *AmenityService) GetAll() ([]models.Amenity, error) {
	var amenities []models.Amenity
	err := s.DB.Find(&amenities).Error
	return amenities, err
}

func (s *AmenityService) GetByID(id uint) (*models.Amenity, error) {
	var a models.Amenity
	if err := s.DB.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, makeErr(ErrNotFound, "amenity not found")
		}
		return nil, err
	}
	return &a, nil
}

func (s *AmenityService) Update(a *models.Amenity) error {
	return s.DB.Model(&models.Amenity{}).Where("id = ?", a.ID).Updates(amenityColumns(a)).Error
}

// amenityColumns lists the updatable columns explicitly; a struct update
// would skip zero values, making it impossible to lower a fee back to 0.
func amenityColumns(a *models.Amenity) map[string]interface{} {
	return map[string]interface{}{
		"name": a.Name,
		"fee":  a.Fee,
	}
}

// Delete detaches the amenity from every room, lowering their derived unit
// price from now on. paid_price already snapshotted on reservations is not
// touched.
func (s *AmenityService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var a models.Amenity
		if err := tx.First(&a, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return makeErr(ErrNotFound, "amenity not found")
			}
			return err
		}
		if err := tx.Exec("DELETE FROM room_amenities WHERE amenity_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to detach amenity %d from rooms: %w", id, err)
		}
		return tx.Delete(&a).Error
	})
}
