package repositories

import (
	"context"

	"peninsula/internal/models"
)

// CustomerRepository defines the interface for customer data access.
type CustomerRepository interface {
	GetAll(ctx context.Context) ([]models.Customer, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, id string, changes map[string]interface{}) (*models.Customer, error)
	// Delete removes the customer together with its orders and their items.
	Delete(ctx context.Context, id string) error
}
