package handlers

import (
	"peninsula/internal/models"
	"peninsula/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CustomerHandler handles HTTP requests for customers.
type CustomerHandler struct {
	service *services.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(service *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		service: service,
	}
}

// RegisterRoutes registers the customer routes with the Fiber app.
func (h *CustomerHandler) RegisterRoutes(router fiber.Router) {
	customerRoutes := router.Group("/customers")
	customerRoutes.Get("/", h.HandleListCustomers)
	customerRoutes.Get("/:id", h.HandleGetCustomer)
	customerRoutes.Post("/", h.HandleCreateCustomer)
	customerRoutes.Put("/:id", h.HandleUpdateCustomer)
	customerRoutes.Delete("/:id", h.HandleDeleteCustomer)
}

// HandleListCustomers returns all customers, newest first.
func (h *CustomerHandler) HandleListCustomers(c *fiber.Ctx) error {
	customers, err := h.service.ListCustomers(c.UserContext())
	if err != nil {
		return writeError(c, err, "Customer not found", "Failed to fetch customers")
	}
	return c.JSON(customers)
}

// HandleGetCustomer returns a single customer with nested orders.
func (h *CustomerHandler) HandleGetCustomer(c *fiber.Ctx) error {
	customer, err := h.service.GetCustomer(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err, "Customer not found", "Failed to fetch customer")
	}
	return c.JSON(customer)
}

// HandleCreateCustomer creates a customer from {name, email?, phone?}.
func (h *CustomerHandler) HandleCreateCustomer(c *fiber.Ctx) error {
	var req models.CreateCustomerRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c, err)
		}
	}

	customer, err := h.service.CreateCustomer(c.UserContext(), req)
	if err != nil {
		return writeError(c, err, "Customer not found", "Failed to create customer")
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// HandleUpdateCustomer applies a sparse update: only fields present in the body change.
func (h *CustomerHandler) HandleUpdateCustomer(c *fiber.Ctx) error {
	var req models.UpdateCustomerRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c, err)
		}
	}

	customer, err := h.service.UpdateCustomer(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return writeError(c, err, "Customer not found", "Failed to update customer")
	}
	return c.JSON(customer)
}

// HandleDeleteCustomer deletes a customer and its orders.
func (h *CustomerHandler) HandleDeleteCustomer(c *fiber.Ctx) error {
	if err := h.service.DeleteCustomer(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err, "Customer not found", "Failed to delete customer")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
