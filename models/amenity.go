package models

import (
	"gorm.io/gorm"
)

type Amenity struct {
	gorm.Model

	Name string  `json:"name" gorm:"size:100"`
	Fee  float64 `json:"fee"` // non-negative surcharge added to the room's unit price
}
