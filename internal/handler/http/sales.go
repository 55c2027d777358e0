package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/paintstore/internal/service"
	"github.com/utafrali/paintstore/pkg/httputil"
)

// SaleHandler handles HTTP requests for sale endpoints.
type SaleHandler struct {
	service *service.SaleService
	logger  *slog.Logger
}

// NewSaleHandler creates a new sale HTTP handler.
func NewSaleHandler(svc *service.SaleService, logger *slog.Logger) *SaleHandler {
	return &SaleHandler{service: svc, logger: logger}
}

// OpenSaleRequest is the JSON request body for opening a sale. Number is
// generated when omitted.
type OpenSaleRequest struct {
	Number             string `json:"number"`
	CustomerNationalID string `json:"customer_national_id" validate:"required"`
}

// AddItemRequest is the JSON request body for adding a line to a sale.
type AddItemRequest struct {
	Code     string `json:"code" validate:"required"`
	Quantity int    `json:"quantity"`
}

// OpenSale handles POST /api/v1/sales
func (h *SaleHandler) OpenSale(w http.ResponseWriter, r *http.Request) {
	var req OpenSaleRequest
	if !decode(w, r, &req) {
		return
	}

	view, err := h.service.OpenSale(r.Context(), service.OpenSaleInput{
		Number:             req.Number,
		CustomerNationalID: req.CustomerNationalID,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusCreated, view)
}

// GetSale handles GET /api/v1/sales/{number}
func (h *SaleHandler) GetSale(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetSale(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, view)
}

// AddItem handles POST /api/v1/sales/{number}/items
func (h *SaleHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if !decode(w, r, &req) {
		return
	}

	view, err := h.service.AddItem(r.Context(), chi.URLParam(r, "number"), service.AddItemInput{
		Code:     req.Code,
		Quantity: req.Quantity,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, view)
}

// ConfirmSale handles POST /api/v1/sales/{number}/confirm
func (h *SaleHandler) ConfirmSale(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.ConfirmSale(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, view)
}
