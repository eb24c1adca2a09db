package repositories

import (
	"bazar/internal/models"
)

// OrderListFilter narrows and pages an order listing. A zero Status means no
// status filtering; Limit falls back to DefaultOrderLimit when non-positive.
type OrderListFilter struct {
	Status string
	Limit  int
	Offset int
}

// DefaultOrderLimit caps order listings when the caller supplies no limit.
const DefaultOrderLimit = 50

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// Create persists the order together with its items as one atomic unit.
	Create(order *models.Order) error
	List(filter OrderListFilter) ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetByUserID(userID string) ([]models.Order, error)
	UpdateStatus(id string, status string) error
	Delete(id string) error
	Stats() (*models.OrderStats, error)
}
