package repositories

import (
	"context"

	"peninsula/internal/models"
)

// OrderRepository defines the interface for order data access.
// Orders are read-only from the API's point of view.
type OrderRepository interface {
	GetAll(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
}
