package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/paintstore/internal/domain"
	"github.com/utafrali/paintstore/internal/service"
	apperrors "github.com/utafrali/paintstore/pkg/errors"
	"github.com/utafrali/paintstore/pkg/httputil"
)

// CustomerHandler handles HTTP requests for customer endpoints.
type CustomerHandler struct {
	service *service.CustomerService
	logger  *slog.Logger
}

// NewCustomerHandler creates a new customer HTTP handler.
func NewCustomerHandler(svc *service.CustomerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{service: svc, logger: logger}
}

// CreateCustomerRequest is the JSON request body for registering a customer.
type CreateCustomerRequest struct {
	Type       string `json:"type" validate:"required,oneof=wholesale retail"`
	NationalID string `json:"national_id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`

	LegalName    string `json:"legal_name"`
	TaxID        string `json:"tax_id"`
	AnnualVolume int    `json:"annual_volume"`

	Frequent          bool `json:"frequent"`
	PurchasesLastYear int  `json:"purchases_last_year"`
}

// UpdateCustomerRequest is the JSON request body for updating contact details.
type UpdateCustomerRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// CreateCustomer handles POST /api/v1/customers
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if !decode(w, r, &req) {
		return
	}

	view, err := h.service.CreateCustomer(r.Context(), service.CreateCustomerInput{
		Type: domain.CustomerType(req.Type),
		Info: domain.CustomerInfo{
			NationalID: req.NationalID,
			Name:       req.Name,
			Phone:      req.Phone,
		},
		LegalName:         req.LegalName,
		TaxID:             req.TaxID,
		AnnualVolume:      req.AnnualVolume,
		Frequent:          req.Frequent,
		PurchasesLastYear: req.PurchasesLastYear,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusCreated, view)
}

// GetCustomer handles GET /api/v1/customers/{nationalId}
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetCustomer(r.Context(), chi.URLParam(r, "nationalId"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, view)
}

// UpdateCustomer handles PATCH /api/v1/customers/{nationalId}
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var req UpdateCustomerRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Name == nil && req.Phone == nil {
		httputil.WriteError(w, r, apperrors.InvalidInput("nothing to update"), h.logger)
		return
	}

	view, err := h.service.UpdateCustomer(r.Context(), chi.URLParam(r, "nationalId"), service.UpdateCustomerInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, view)
}
