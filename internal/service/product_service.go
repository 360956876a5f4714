package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Lixing-Zhang/room-scanner/backend/internal/models"
	"github.com/Lixing-Zhang/room-scanner/backend/internal/repository"
	"github.com/Lixing-Zhang/room-scanner/backend/internal/scanner"
	"github.com/Lixing-Zhang/room-scanner/backend/internal/search"
)

// ProductService handles business logic for products
type ProductService struct {
	repo repository.ProductRepository

	indexOnce sync.Once
	index     *search.Index
	indexErr  error
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns the catalog, optionally narrowed to one category.
// An empty category or "All" returns everything.
func (s *ProductService) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" || strings.EqualFold(category, search.AllCategories) {
		return products, nil
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.EqualFold(p.Category, category) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Search runs a free text query against the catalog
func (s *ProductService) Search(ctx context.Context, query, category string) ([]models.Product, error) {
	idx, err := s.searchIndex(ctx)
	if err != nil {
		return nil, err
	}
	return idx.Search(query, category), nil
}

// Suggest returns search bar completions for a partial query
func (s *ProductService) Suggest(query string) []string {
	return search.Suggest(query)
}

// Recommend lists the products of a style that fit the room. Styles without
// products of their own fall back to the default selection.
func (s *ProductService) Recommend(ctx context.Context, styleID string, dims models.RoomDimensions) ([]models.Product, error) {
	products, err := s.repo.GetByStyle(ctx, styleID)
	if err != nil {
		return nil, fmt.Errorf("products for style %q: %w", styleID, err)
	}

	if len(products) == 0 {
		products, err = s.repo.GetByStyle(ctx, repository.DefaultStyle)
		if err != nil {
			return nil, fmt.Errorf("default products: %w", err)
		}
	}

	return scanner.FilterByFit(products, dims), nil
}

// Featured returns the fixed products shown with canned scan results
func (s *ProductService) Featured(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetByIDs(ctx, repository.MockRecommendationIDs)
}

func (s *ProductService) searchIndex(ctx context.Context) (*search.Index, error) {
	s.indexOnce.Do(func() {
		products, err := s.repo.GetAll(ctx)
		if err != nil {
			s.indexErr = fmt.Errorf("build search index: %w", err)
			return
		}
		s.index = search.NewIndex(products)
	})
	return s.index, s.indexErr
}
