package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Lixing-Zhang/room-scanner/backend/internal/models"
	"github.com/Lixing-Zhang/room-scanner/backend/internal/repository"
	"github.com/Lixing-Zhang/room-scanner/backend/internal/search"
	"github.com/Lixing-Zhang/room-scanner/backend/internal/service"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// SearchResponse is the body of GET /api/product/search
type SearchResponse struct {
	Query      string           `json:"query"`
	Category   string           `json:"category"`
	Count      int              `json:"count"`
	Products   []models.Product `json:"products"`
	Categories []string         `json:"categories"`
}

// ListProducts handles GET /api/product
// Returns the catalog, narrowed by the optional category query parameter
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.service.ListProducts(ctx, r.URL.Query().Get("category"))
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.logger)
}

// GetProduct handles GET /api/product/{productId}
// - 200: successful operation
// - 400: Invalid ID supplied
// - 404: Product not found
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "productId")

	if err := validate.Var(productID, "required,alphanum,max=32"); err != nil {
		h.logger.Warn("invalid product ID format", "productId", productID, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	product, err := h.service.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			h.logger.Info("product not found", "productId", productID)
			WriteError(w, http.StatusNotFound, "Product not found", h.logger)
			return
		}

		h.logger.Error("failed to get product", "productId", productID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, product, h.logger)
}

// SearchProducts handles GET /api/product/search?q=&category=
func (h *ProductHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	if category == "" {
		category = search.AllCategories
	}

	if err := validate.Var(query, "max=200"); err != nil {
		WriteValidationError(w, FieldErrors{"q": messageForTag("max", "200")}, h.logger)
		return
	}

	products, err := h.service.Search(r.Context(), query, category)
	if err != nil {
		h.logger.Error("failed to search products", "query", query, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	h.logger.Debug("product search", "query", query, "category", category, "results", len(products))

	WriteJSON(w, http.StatusOK, SearchResponse{
		Query:      query,
		Category:   category,
		Count:      len(products),
		Products:   products,
		Categories: search.Categories,
	}, h.logger)
}

// SuggestProducts handles GET /api/product/suggest?q=
func (h *ProductHandler) SuggestProducts(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.service.Suggest(r.URL.Query().Get("q")), h.logger)
}
