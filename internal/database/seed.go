package database

import (
	"context"
	"fmt"
	"log"

	"peninsula/internal/models"
	"peninsula/internal/repositories"

	"github.com/shopspring/decimal"
)

// DefaultProducts is the starter catalogue loaded into an empty products table.
func DefaultProducts() []models.Product {
	return []models.Product{
		{ID: "P001", Name: "Apples", Category: "Fruits", Stock: 150, Price: decimal.RequireFromString("3.99")},
		{ID: "P002", Name: "Bananas", Category: "Fruits", Stock: 8, Price: decimal.RequireFromString("2.49")},
		{ID: "P003", Name: "Carrots", Category: "Vegetables", Stock: 0, Price: decimal.RequireFromString("1.99")},
		{ID: "P004", Name: "Dairy Milk", Category: "Dairy", Stock: 45, Price: decimal.RequireFromString("4.99")},
		{ID: "P005", Name: "Eggs", Category: "Dairy", Stock: 12, Price: decimal.RequireFromString("5.49")},
		{ID: "P006", Name: "Bread", Category: "Bakery", Stock: 67, Price: decimal.RequireFromString("3.49")},
		{ID: "P007", Name: "Tomatoes", Category: "Vegetables", Stock: 89, Price: decimal.RequireFromString("4.29")},
		{ID: "P008", Name: "Chicken Breast", Category: "Meat", Stock: 24, Price: decimal.RequireFromString("8.99")},
	}
}

// SeedProducts loads products into the repository when it holds none.
// It returns the number of products created.
func SeedProducts(ctx context.Context, repo repositories.ProductRepository, products []models.Product) (int, error) {
	n, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	for i := range products {
		if err := repo.Create(ctx, &products[i]); err != nil {
			return i, fmt.Errorf("failed to seed product %s: %w", products[i].Name, err)
		}
		log.Printf("Seeded product: %s (ID: %s)", products[i].Name, products[i].ID)
	}
	return len(products), nil
}
