package services

import (
	"context"

	"peninsula/internal/models"
	"peninsula/internal/repositories"
)

// ProductService handles read access to the product catalogue.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns the catalogue, filtered by name or category when query is set.
func (s *ProductService) ListProducts(ctx context.Context, query string) ([]models.Product, error) {
	products, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, classify("list products", err)
	}
	return products, nil
}

// GetProduct retrieves a single product by its ID.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, classify("get product", err)
	}
	return product, nil
}
