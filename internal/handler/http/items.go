package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/utafrali/paintstore/internal/domain"
	"github.com/utafrali/paintstore/internal/repository"
	"github.com/utafrali/paintstore/internal/service"
	apperrors "github.com/utafrali/paintstore/pkg/errors"
	"github.com/utafrali/paintstore/pkg/httputil"
	"github.com/utafrali/paintstore/pkg/pagination"
)

// ItemHandler handles HTTP requests for catalog item endpoints.
type ItemHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewItemHandler creates a new catalog item HTTP handler.
func NewItemHandler(svc *service.CatalogService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{service: svc, logger: logger}
}

// --- Request DTOs ---

// CreateItemRequest is the JSON request body for creating a catalog item.
// Only the attributes of the chosen type are read. Field checks beyond the
// type are left to the domain constructors, which stop at the first failure.
type CreateItemRequest struct {
	Type        string          `json:"type" validate:"required,oneof=paint tool accessory"`
	Code        string          `json:"code"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Stock       int             `json:"stock"`

	PaintType string  `json:"paint_type"`
	Color     string  `json:"color"`
	Liters    float64 `json:"liters"`

	Category string `json:"category"`
	Material string `json:"material"`
	Reusable bool   `json:"reusable"`

	AccessoryType string  `json:"accessory_type"`
	Unit          string  `json:"unit"`
	Measure       float64 `json:"measure"`
}

// UpdateItemRequest is the JSON request body for updating a catalog item.
type UpdateItemRequest struct {
	Description *string          `json:"description"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	Stock       *int             `json:"stock"`
}

// --- Handlers ---

// CreateItem handles POST /api/v1/items
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if !decode(w, r, &req) {
		return
	}

	view, err := h.service.CreateItem(r.Context(), service.CreateItemInput{
		Type: domain.ItemType(req.Type),
		Info: domain.ItemInfo{
			Code:        req.Code,
			Description: req.Description,
			UnitPrice:   req.UnitPrice,
			Stock:       req.Stock,
		},
		PaintType:     req.PaintType,
		Color:         req.Color,
		Liters:        req.Liters,
		Category:      req.Category,
		Material:      req.Material,
		Reusable:      req.Reusable,
		AccessoryType: req.AccessoryType,
		Unit:          req.Unit,
		Measure:       req.Measure,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteData(w, http.StatusCreated, view)
}

// GetItem handles GET /api/v1/items/{code}
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetItem(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, view)
}

// ListItems handles GET /api/v1/items?type=&page=&per_page=
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	params := pagination.FromRequest(r)
	filter := repository.ItemFilter{Page: params.Page, PerPage: params.PerPage}

	if t := r.URL.Query().Get("type"); t != "" {
		itemType, ok := parseItemType(t)
		if !ok {
			httputil.WriteError(w, r, apperrors.InvalidInput("type must be one of: paint, tool, accessory"), h.logger)
			return
		}
		filter.Type = &itemType
	}

	views, total, err := h.service.ListItems(r.Context(), filter)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, pagination.NewResult(views, total, params))
}

// UpdateItem handles PATCH /api/v1/items/{code}
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req UpdateItemRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Description == nil && req.UnitPrice == nil && req.Stock == nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("nothing to update"), h.logger)
		return
	}

	view, err := h.service.UpdateItem(r.Context(), chi.URLParam(r, "code"), service.UpdateItemInput{
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
		Stock:       req.Stock,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, view)
}

func parseItemType(s string) (domain.ItemType, bool) {
	for _, t := range domain.ValidItemTypes() {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}
