package handlers

import (
	"peninsula/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CommandRequest is the request body of a prompt command.
type CommandRequest struct {
	Command string `json:"command"`
}

// CommandHandler handles prompt commands.
type CommandHandler struct {
	service *services.CommandService
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(service *services.CommandService) *CommandHandler {
	return &CommandHandler{service: service}
}

// RegisterRoutes registers the command route with the Fiber app.
func (h *CommandHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/commands", h.HandleRunCommand)
}

// HandleRunCommand interprets {command} against the product catalogue.
func (h *CommandHandler) HandleRunCommand(c *fiber.Ctx) error {
	var req CommandRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}

	result, err := h.service.Run(c.UserContext(), req.Command)
	if err != nil {
		return writeError(c, err, "Command not found", "Failed to process command")
	}
	return c.JSON(result)
}
