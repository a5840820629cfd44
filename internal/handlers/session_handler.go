package handlers

import (
	"fmt"
	"log"

	"peninsula/internal/middleware"
	"peninsula/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

// ViewModeRequest represents the request body for setting the view mode.
type ViewModeRequest struct {
	ViewMode session.ViewMode `json:"viewMode" validate:"required,oneof=prompt traditional"`
}

// SessionHandler handles HTTP requests that transition the dashboard session.
// Sessions travel as signed tokens; every response carries the new token.
type SessionHandler struct {
	codec    *session.Codec
	validate *validator.Validate
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(codec *session.Codec) *SessionHandler {
	return &SessionHandler{
		codec:    codec,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the session routes behind the session-loading middleware.
func (h *SessionHandler) RegisterRoutes(router fiber.Router) {
	sessionRoutes := router.Group("/session", middleware.LoadSession(h.codec))
	sessionRoutes.Get("/", h.HandleGetSession)
	sessionRoutes.Post("/login", h.HandleLogin)
	sessionRoutes.Post("/register", h.HandleRegister)
	sessionRoutes.Post("/logout", h.HandleLogout)
	sessionRoutes.Post("/view-mode/toggle", h.HandleToggleViewMode)
	sessionRoutes.Put("/view-mode", h.HandleSetViewMode)
}

// respond signs s and writes {session, token}.
func (h *SessionHandler) respond(c *fiber.Ctx, s session.Session) error {
	token, err := h.codec.Encode(s)
	if err != nil {
		log.Printf("Error encoding session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update session",
		})
	}
	return c.JSON(fiber.Map{
		"session": s,
		"token":   token,
	})
}

// parseAndValidate binds the body into req and validates it. When ok is false
// the 400 response has already been written and err is the result of writing it.
func (h *SessionHandler) parseAndValidate(c *fiber.Ctx, req interface{}) (ok bool, err error) {
	if err := c.BodyParser(req); err != nil {
		return false, invalidBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		errorMessages := make(map[string]string)
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, e := range validationErrors {
				errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
			}
		}
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}
	return true, nil
}

// HandleGetSession returns the current session.
func (h *SessionHandler) HandleGetSession(c *fiber.Ctx) error {
	return h.respond(c, middleware.SessionFrom(c))
}

// HandleLogin signs in with any non-empty credentials.
func (h *SessionHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if ok, err := h.parseAndValidate(c, &req); !ok {
		return err
	}

	s, err := middleware.SessionFrom(c).Login(req.Email, req.Password)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}
	return h.respond(c, s)
}

// HandleRegister signs in with a display name.
func (h *SessionHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if ok, err := h.parseAndValidate(c, &req); !ok {
		return err
	}

	s, err := middleware.SessionFrom(c).Register(req.Email, req.Password, req.Name)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}
	return h.respond(c, s)
}

// HandleLogout clears the signed-in user.
func (h *SessionHandler) HandleLogout(c *fiber.Ctx) error {
	return h.respond(c, middleware.SessionFrom(c).Logout())
}

// HandleToggleViewMode switches between prompt and traditional view.
func (h *SessionHandler) HandleToggleViewMode(c *fiber.Ctx) error {
	return h.respond(c, middleware.SessionFrom(c).ToggleViewMode())
}

// HandleSetViewMode sets the view mode explicitly.
func (h *SessionHandler) HandleSetViewMode(c *fiber.Ctx) error {
	var req ViewModeRequest
	if ok, err := h.parseAndValidate(c, &req); !ok {
		return err
	}

	s, err := middleware.SessionFrom(c).SetViewMode(req.ViewMode)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}
	return h.respond(c, s)
}
