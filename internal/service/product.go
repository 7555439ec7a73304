package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Jathavedas/memento-backend/internal/domain"
	"github.com/Jathavedas/memento-backend/internal/event"
	"github.com/Jathavedas/memento-backend/internal/repository"
	apperrors "github.com/Jathavedas/memento-backend/pkg/errors"
)

// ProductService implements the business logic for product operations.
type ProductService struct {
	repo     repository.ProductRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository, producer *event.Producer, logger *slog.Logger) *ProductService {
	return &ProductService{
		repo:     repo,
		producer: producer,
		logger:   logger,
	}
}

// CreateProductInput holds the parameters for creating a product. Images are
// the public URLs already resolved by the media relay.
type CreateProductInput struct {
	Name   string
	Images []string
	Size   domain.Size
	Price  float64
	Stock  int
}

// UpdateProductInput holds the parameters for updating a product. Nil fields
// are left untouched.
type UpdateProductInput struct {
	Name    *string
	Images  []string
	Length  *float64
	Breadth *float64
	Height  *float64
	Type    *string
	Price   *float64
	Stock   *int
}

// CreateProduct validates the input and persists a new product document.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*domain.Product, error) {
	if input.Name == "" {
		return nil, apperrors.InvalidInput("product name is required")
	}
	if len(input.Images) == 0 {
		return nil, apperrors.InvalidInput("at least one image is required")
	}
	if len(input.Images) > domain.MaxImagesPerProduct {
		return nil, apperrors.InvalidInput(fmt.Sprintf("a maximum of %d images is allowed", domain.MaxImagesPerProduct))
	}
	if input.Price < 0 {
		return nil, apperrors.InvalidInput("price must not be negative")
	}
	if input.Stock < 0 {
		return nil, apperrors.InvalidInput("stock must not be negative")
	}
	if input.Size.Length < 0 || input.Size.Breadth < 0 || input.Size.Height < 0 {
		return nil, apperrors.InvalidInput("dimensions must not be negative")
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(input.Name),
		Images:    input.Images,
		Size:      input.Size,
		Type:      domain.ProductTypeNil,
		Price:     input.Price,
		Stock:     input.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	if err := s.producer.PublishProductCreated(ctx, product); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.created event",
			slog.String("product_id", product.ID),
			slog.String("error", err.Error()),
		)
		// Do not fail the operation if event publishing fails.
	}

	s.logger.InfoContext(ctx, "product created",
		slog.String("product_id", product.ID),
		slog.String("name", product.Name),
		slog.Int("images", len(product.Images)),
	)

	return product, nil
}

// GetProduct retrieves a product by its ID.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return product, nil
}

// ListProducts returns every product in the catalog, newest first.
func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// UpdateProduct applies partial updates to an existing product. Concurrent
// updates to the same product race; the last write wins.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, input *UpdateProductInput) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product for update: %w", err)
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, apperrors.InvalidInput("product name must not be empty")
		}
		product.Name = strings.TrimSpace(*input.Name)
	}

	if input.Images != nil {
		if len(input.Images) == 0 {
			return nil, apperrors.InvalidInput("images must not be empty")
		}
		if len(input.Images) > domain.MaxImagesPerProduct {
			return nil, apperrors.InvalidInput(fmt.Sprintf("a maximum of %d images is allowed", domain.MaxImagesPerProduct))
		}
		product.Images = input.Images
	}

	if input.Length != nil {
		if *input.Length < 0 {
			return nil, apperrors.InvalidInput("length must not be negative")
		}
		product.Size.Length = *input.Length
	}

	if input.Breadth != nil {
		if *input.Breadth < 0 {
			return nil, apperrors.InvalidInput("breadth must not be negative")
		}
		product.Size.Breadth = *input.Breadth
	}

	if input.Height != nil {
		if *input.Height < 0 {
			return nil, apperrors.InvalidInput("height must not be negative")
		}
		product.Size.Height = *input.Height
	}

	if input.Type != nil {
		if !domain.IsValidType(*input.Type) {
			return nil, apperrors.InvalidInput(fmt.Sprintf("invalid type %q, must be one of: %s", *input.Type, strings.Join(domain.ValidTypes(), ", ")))
		}
		product.Type = *input.Type
	}

	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperrors.InvalidInput("price must not be negative")
		}
		product.Price = *input.Price
	}

	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, apperrors.InvalidInput("stock must not be negative")
		}
		product.Stock = *input.Stock
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	if err := s.producer.PublishProductUpdated(ctx, product); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.updated event",
			slog.String("product_id", product.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "product updated",
		slog.String("product_id", product.ID),
	)

	return product, nil
}

// DeleteProduct removes a product by its ID. Images already relayed to the
// media store are left in place.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if err := s.producer.PublishProductDeleted(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.deleted event",
			slog.String("product_id", id),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "product deleted",
		slog.String("product_id", id),
	)

	return nil
}
