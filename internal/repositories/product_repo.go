package repositories

import (
	"bazar/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// GetAll returns every product, including inactive ones, for the admin panel.
	GetAll() ([]models.Product, error)
	// Search returns active products matching the free-text query on the
	// name, Bengali name or description, optionally narrowed to a category.
	// Both arguments may be empty.
	Search(query, category string) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
