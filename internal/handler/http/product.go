package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Jathavedas/memento-backend/internal/domain"
	"github.com/Jathavedas/memento-backend/internal/service"
	"github.com/Jathavedas/memento-backend/pkg/httputil"
	"github.com/Jathavedas/memento-backend/pkg/validator"
)

// ProductHandler handles HTTP requests for product endpoints.
type ProductHandler struct {
	service   *service.ProductService
	relay     *service.MediaRelay
	maxUpload int64
	logger    *slog.Logger
}

// NewProductHandler creates a new product HTTP handler. maxUpload is the
// request payload ceiling in bytes for multipart create requests.
func NewProductHandler(svc *service.ProductService, relay *service.MediaRelay, maxUpload int64, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service:   svc,
		relay:     relay,
		maxUpload: maxUpload,
		logger:    logger,
	}
}

// --- Request/response DTOs ---

// UpdateProductRequest is the JSON request body for updating a product.
// All fields are optional; absent fields are left untouched.
type UpdateProductRequest struct {
	Name    *string  `json:"name" validate:"omitempty,min=1"`
	Images  []string `json:"images" validate:"omitempty,min=1,max=5"`
	Length  *float64 `json:"length" validate:"omitempty,gte=0"`
	Breadth *float64 `json:"breadth" validate:"omitempty,gte=0"`
	Height  *float64 `json:"height" validate:"omitempty,gte=0"`
	Type    *string  `json:"type" validate:"omitempty,oneof=small medium large nil"`
	Price   *float64 `json:"price" validate:"omitempty,gte=0"`
	Stock   *int     `json:"stock" validate:"omitempty,gte=0"`
}

type createProductResponse struct {
	Message string          `json:"message"`
	Product *domain.Product `json:"product"`
}

// --- Handlers ---

// Liveness handles GET / with a plaintext liveness string.
func (h *ProductHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("API Running 🚀"))
}

// CreateProduct handles POST /api/add_products (multipart/form-data with up
// to 5 files in the "images" field plus name, length, breadth, height, price,
// and stock form fields).
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Message{Message: "failed to parse multipart form: " + err.Error()})
		return
	}

	var files []*multipart.FileHeader
	if r.MultipartForm != nil {
		files = r.MultipartForm.File["images"]
	}

	name := r.FormValue("name")
	length := r.FormValue("length")
	breadth := r.FormValue("breadth")
	height := r.FormValue("height")
	price := r.FormValue("price")
	stock := r.FormValue("stock")

	if len(files) == 0 || name == "" || length == "" || breadth == "" || height == "" || price == "" || stock == "" {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Message{Message: "All fields are required"})
		return
	}

	size := domain.Size{}
	priceVal := 0.0
	stockVal := 0

	for _, f := range []struct {
		name  string
		value string
		dst   *float64
	}{
		{"length", length, &size.Length},
		{"breadth", breadth, &size.Breadth},
		{"height", height, &size.Height},
		{"price", price, &priceVal},
	} {
		v, err := strconv.ParseFloat(f.value, 64)
		if err != nil {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.Message{Message: fmt.Sprintf("%s must be a number", f.name)})
			return
		}
		*f.dst = v
	}

	stockVal, err := strconv.Atoi(stock)
	if err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Message{Message: "stock must be an integer"})
		return
	}

	uploads := make([]service.ImageUpload, 0, len(files))
	for _, fh := range files {
		file, err := fh.Open()
		if err != nil {
			httputil.WriteJSON(w, http.StatusInternalServerError, httputil.ServerError{Message: "Error adding product", Error: err.Error()})
			return
		}
		defer file.Close()

		uploads = append(uploads, service.ImageUpload{
			FileName:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Data:        file,
		})
	}

	urls, err := h.relay.UploadAll(r.Context(), uploads)
	if err != nil {
		httputil.WriteError(w, r, err, "Not found", "Error adding product", h.logger)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), &service.CreateProductInput{
		Name:   name,
		Images: urls,
		Size:   size,
		Price:  priceVal,
		Stock:  stockVal,
	})
	if err != nil {
		httputil.WriteError(w, r, err, "Not found", "Error adding product", h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, createProductResponse{
		Message: "Product added",
		Product: product,
	})
}

// ListProducts handles GET /api/disp/products. The response is a bare JSON
// array of every product, unfiltered and unpaginated.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, "Not found", "Error fetching products", h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /api/disp/products/{id}.
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, "Not found", "Server error", h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, product)
}

// UpdateProduct handles PUT /api/update_products/{id} with an arbitrary
// subset of product fields in the JSON body.
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	// Limit request body to 1MB; update bodies carry no file data.
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Message{Message: "invalid request body: " + err.Error()})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Message{Message: err.Error()})
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), id, &service.UpdateProductInput{
		Name:    req.Name,
		Images:  req.Images,
		Length:  req.Length,
		Breadth: req.Breadth,
		Height:  req.Height,
		Type:    req.Type,
		Price:   req.Price,
		Stock:   req.Stock,
	})
	if err != nil {
		httputil.WriteError(w, r, err, "Product not found", "Error updating product", h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/products_delete/{id}. Media objects
// referenced by the product are not removed from the external store.
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, "Product not found", "Server error", h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Message{Message: "Deleted successfully"})
}
