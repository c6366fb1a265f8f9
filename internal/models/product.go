package models

import (
	"candela/pkg/money"

	"gorm.io/gorm"
)

// Product represents a candle or fragrance in the catalog. Price is stored
// in minor units like every other monetary value.
type Product struct {
	ID             string      `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name           string      `json:"name" gorm:"type:varchar(200)" validate:"required,min=3,max=200"`
	Description    string      `json:"description" gorm:"type:varchar(2000)" validate:"omitempty,max=2000"`
	FragranceNotes string      `json:"fragrance_notes" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Price          money.Cents `json:"-" gorm:"not null" validate:"required,gt=0"`
	Stock          int         `json:"stock" validate:"gte=0"`
	ImageURL       string      `json:"image_url,omitempty" gorm:"type:varchar(500)" validate:"omitempty,url"`
	gorm.Model                 // CreatedAt, UpdatedAt, DeletedAt
}
