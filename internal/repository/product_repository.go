package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/Lixing-Zhang/room-scanner/backend/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// DefaultStyle holds the generic picks used when a style has no products
const DefaultStyle = "default"

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Product, error)
	GetByStyle(ctx context.Context, style string) ([]models.Product, error)
}

// InMemoryProductRepository implements ProductRepository over static fixture data.
// The catalog is read-only after construction, so no locking is needed.
type InMemoryProductRepository struct {
	products []models.Product
	byID     map[string]int
}

// NewInMemoryProductRepository creates a repository seeded with the storefront catalog
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return NewInMemoryProductRepositoryWith(seedProducts())
}

// NewInMemoryProductRepositoryWith creates a repository over the given products
func NewInMemoryProductRepositoryWith(products []models.Product) *InMemoryProductRepository {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &InMemoryProductRepository{
		products: products,
		byID:     byID,
	}
}

// GetAll returns all products in catalog order
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	i, exists := r.byID[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	product := r.products[i]
	return &product, nil
}

// GetByIDs returns the products with the given IDs in request order.
// Unknown IDs are an error.
func (r *InMemoryProductRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	products := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		p, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, nil
}

// GetByStyle returns the products tagged with a style, matched case-insensitively
func (r *InMemoryProductRepository) GetByStyle(ctx context.Context, style string) ([]models.Product, error) {
	products := make([]models.Product, 0)
	for _, p := range r.products {
		if strings.EqualFold(p.Style, style) {
			products = append(products, p)
		}
	}
	return products, nil
}
