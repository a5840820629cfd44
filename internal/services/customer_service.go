package services

import (
	"context"

	"peninsula/internal/models"
	"peninsula/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// CustomerService handles business logic related to customers.
type CustomerService struct {
	repo      repositories.CustomerRepository
	publisher EventPublisher
	validate  *validator.Validate
}

// NewCustomerService creates a new CustomerService. publisher may be nil.
func NewCustomerService(repo repositories.CustomerRepository, publisher EventPublisher) *CustomerService {
	return &CustomerService{
		repo:      repo,
		publisher: publisher,
		validate:  validator.New(),
	}
}

// ListCustomers returns every customer, newest first.
func (s *CustomerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, classify("list customers", err)
	}
	return customers, nil
}

// GetCustomer returns a single customer with its orders.
func (s *CustomerService) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, classify("get customer", err)
	}
	return customer, nil
}

// CreateCustomer validates the request and stores a new customer.
func (s *CustomerService) CreateCustomer(ctx context.Context, req models.CreateCustomerRequest) (*models.Customer, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, &ValidationError{Field: "name", Message: "Name is required"}
	}

	customer := &models.Customer{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, classify("create customer", err)
	}

	publish(s.publisher, EventCustomerCreated, customer.ID, customer.Name)
	return customer, nil
}

// UpdateCustomer applies a sparse update. Only fields present in req change.
// An empty name is accepted here, unlike on create.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id string, req models.UpdateCustomerRequest) (*models.Customer, error) {
	if req.Name.IsNull() {
		return nil, &ValidationError{Field: "name", Message: "Name cannot be null"}
	}

	customer, err := s.repo.Update(ctx, id, req.Changes())
	if err != nil {
		return nil, classify("update customer", err)
	}

	publish(s.publisher, EventCustomerUpdated, customer.ID, customer.Name)
	return customer, nil
}

// DeleteCustomer removes a customer and, with it, the customer's orders.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return classify("delete customer", err)
	}

	publish(s.publisher, EventCustomerDeleted, id, "")
	return nil
}
