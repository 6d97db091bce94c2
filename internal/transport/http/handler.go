// Package httpapi exposes the HTTP API layer of the service.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/light-bringer/prodintake-service/internal/app/product/domain"
	"github.com/light-bringer/prodintake-service/internal/app/product/usecases/create_product"
)

const releaseDateLayout = "2006-01-02"

// Handler serves the product intake endpoints.
type Handler struct {
	create *create_product.Interactor
	logger *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(create *create_product.Interactor, logger *slog.Logger) *Handler {
	return &Handler{create: create, logger: logger}
}

// Register mounts the endpoints on the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/products", h.createProduct)
	mux.HandleFunc("/healthz", h.health)
}

// createProductRequest is the inbound JSON payload.
type createProductRequest struct {
	Name          string  `json:"name"`
	Brand         string  `json:"brand"`
	SKU           string  `json:"sku"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	ReleaseDate   string  `json:"release_date"`
	StockQuantity int64   `json:"stock_quantity"`
	ImageURL      *string `json:"image_url,omitempty"`
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", nil)
		return
	}

	var payload createProductRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}

	releaseDate, err := time.Parse(releaseDateLayout, payload.ReleaseDate)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "validation_failed", []fieldErrorDTO{
			{Field: "release_date", Message: "release date must be a valid YYYY-MM-DD date"},
		})
		return
	}

	req := &create_product.Request{
		Name:          payload.Name,
		Brand:         payload.Brand,
		SKU:           payload.SKU,
		Category:      payload.Category,
		Price:         domain.NewMoneyFromFloat(payload.Price),
		ReleaseDate:   releaseDate,
		StockQuantity: payload.StockQuantity,
		ImageURL:      payload.ImageURL,
	}

	result, err := h.create.Execute(r.Context(), req)
	if err != nil {
		h.writeCreationError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Location", result.Location)
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(result.View)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
