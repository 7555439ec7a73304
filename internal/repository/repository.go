package repository

import (
	"context"

	"github.com/Jathavedas/memento-backend/internal/domain"
)

// ProductRepository defines the interface for product persistence operations.
type ProductRepository interface {
	// Create inserts a new product into the store.
	Create(ctx context.Context, product *domain.Product) error

	// GetByID retrieves a product by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Product, error)

	// List returns all products, newest first. No filtering or pagination.
	List(ctx context.Context) ([]domain.Product, error)

	// Update replaces an existing product in the store.
	Update(ctx context.Context, product *domain.Product) error

	// Delete removes a product from the store by its identifier.
	Delete(ctx context.Context, id string) error
}
