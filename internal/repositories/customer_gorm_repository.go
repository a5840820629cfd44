package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"peninsula/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCustomerRepository is a GORM implementation of CustomerRepository.
type GORMCustomerRepository struct {
	db *gorm.DB
}

// NewGORMCustomerRepository creates a new instance of GORMCustomerRepository.
func NewGORMCustomerRepository(db *gorm.DB) *GORMCustomerRepository {
	return &GORMCustomerRepository{
		db: db,
	}
}

// withOrders preloads orders -> items -> product, newest order first.
func withOrders(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Orders", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Orders.Items").
		Preload("Orders.Items.Product")
}

// normalizeOrders makes empty collections serialize as [] instead of null.
func normalizeOrders(c *models.Customer) {
	if c.Orders == nil {
		c.Orders = []models.Order{}
	}
	for i := range c.Orders {
		if c.Orders[i].Items == nil {
			c.Orders[i].Items = []models.Item{}
		}
	}
}

// GetAll retrieves every customer, newest first, with nested orders.
func (r *GORMCustomerRepository) GetAll(ctx context.Context) ([]models.Customer, error) {
	customers := []models.Customer{}
	if err := withOrders(r.db.WithContext(ctx)).Order("created_at DESC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to get all customers: %w", err)
	}
	for i := range customers {
		normalizeOrders(&customers[i])
	}
	return customers, nil
}

// GetByID retrieves a single customer with nested orders.
func (r *GORMCustomerRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	if err := withOrders(r.db.WithContext(ctx)).First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer with ID %s not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get customer by ID %s: %w", id, err)
	}
	normalizeOrders(&customer)
	return &customer, nil
}

// Create inserts a new customer, assigning its ID and creation time.
func (r *GORMCustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Omit("Orders").Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	normalizeOrders(customer)
	return nil
}

// Update applies the given column changes and returns the stored customer.
// An empty change set only checks that the customer exists.
func (r *GORMCustomerRepository) Update(ctx context.Context, id string, changes map[string]interface{}) (*models.Customer, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Customer
		if err := tx.Select("id").First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("customer with ID %s not found for update: %w", id, ErrNotFound)
			}
			return fmt.Errorf("failed to load customer %s for update: %w", id, err)
		}
		if len(changes) == 0 {
			return nil
		}
		if err := tx.Model(&models.Customer{}).Where("id = ?", id).Updates(changes).Error; err != nil {
			return fmt.Errorf("failed to update customer %s: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes the customer, its orders and their items in one transaction.
func (r *GORMCustomerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orderIDs := tx.Model(&models.Order{}).Select("id").Where("customer_id = ?", id)
		if err := tx.Where("order_id IN (?)", orderIDs).Delete(&models.Item{}).Error; err != nil {
			return fmt.Errorf("failed to delete items of customer %s: %w", id, err)
		}
		if err := tx.Where("customer_id = ?", id).Delete(&models.Order{}).Error; err != nil {
			return fmt.Errorf("failed to delete orders of customer %s: %w", id, err)
		}
		res := tx.Delete(&models.Customer{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete customer: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("customer with ID %s not found for deletion: %w", id, ErrNotFound)
		}
		return nil
	})
}
