package models

import "time"

// Product represents a catalog product. Name and description carry optional
// Bengali translations shown alongside the primary text in the storefront.
type Product struct {
	ID                 string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name               string    `json:"name" gorm:"type:varchar(255)" validate:"required,min=2,max=255"`
	NameBengali        string    `json:"name_bengali" gorm:"type:varchar(255)" validate:"omitempty,max=255"`
	Description        string    `json:"description" validate:"omitempty,max=2000"`
	DescriptionBengali string    `json:"description_bengali" validate:"omitempty,max=2000"`
	Price              float64   `json:"price" validate:"required,gt=0"`
	OriginalPrice      *float64  `json:"original_price" validate:"omitempty,gt=0"` // pre-discount price, shown struck through
	ImageURL           string    `json:"image_url" validate:"omitempty,url"`
	Category           string    `json:"category" gorm:"type:varchar(100);index" validate:"omitempty,max=100"`
	Stock              int       `json:"stock" validate:"gte=0"`
	IsActive           bool      `json:"is_active" gorm:"default:true"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
