package services

import (
	"context"
	"strings"

	"peninsula/internal/commands"
	"peninsula/internal/repositories"
)

// CommandService runs prompt commands against the current product catalogue.
type CommandService struct {
	productRepo repositories.ProductRepository
}

// NewCommandService creates a new CommandService.
func NewCommandService(productRepo repositories.ProductRepository) *CommandService {
	return &CommandService{productRepo: productRepo}
}

// Run interprets text against the catalogue. Blank text is a validation error.
func (s *CommandService) Run(ctx context.Context, text string) (*commands.Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Field: "command", Message: "Command is required"}
	}

	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, classify("load products for command", err)
	}

	result := commands.Interpret(text, products)
	return &result, nil
}
