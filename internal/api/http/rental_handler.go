package http

import (
	"encoding/json"
	"net/http"

	"rental-backoffice/internal/domain"
	"rental-backoffice/internal/service"

	"github.com/go-playground/validator/v10"
)

type RentalHandler struct {
	rentals  service.RentalService
	validate *validator.Validate
}

func NewRentalHandler(rentals service.RentalService, validate *validator.Validate) *RentalHandler {
	return &RentalHandler{rentals: rentals, validate: validate}
}

type rentalRequest struct {
	VehicleID          int32              `json:"vehicle_id" validate:"required,min=1"`
	CustomerID         int32              `json:"customer_id" validate:"min=0"`
	CustomerName       string             `json:"customer_name" validate:"max=200"`
	StartDate          string             `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate            string             `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Discount           *domain.ChargeSpec `json:"discount"`
	CustomCommission   *domain.ChargeSpec `json:"custom_commission"`
	ExtraKmChargeCents int64              `json:"extra_km_charge_cents" validate:"min=0"`
	DailyKilometers    int32              `json:"daily_kilometers" validate:"min=0"`
	DepositCents       int64              `json:"deposit_cents" validate:"min=0"`
	IsFlexible         bool               `json:"is_flexible"`
	ManualPriceCents   *int64             `json:"manual_price_cents"`
	Paid               bool               `json:"paid"`
	HandoverPlace      string             `json:"handover_place" validate:"max=200"`
}

type quoteRequest struct {
	VehicleID          int32              `json:"vehicle_id" validate:"required,min=1"`
	StartDate          string             `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate            string             `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Discount           *domain.ChargeSpec `json:"discount"`
	CustomCommission   *domain.ChargeSpec `json:"custom_commission"`
	ExtraKmChargeCents int64              `json:"extra_km_charge_cents" validate:"min=0"`
	ManualPriceCents   *int64             `json:"manual_price_cents"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req rentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rental, err := h.rentals.CreateRental(r.Context(), req.toDomain())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rental id")
		return
	}
	rental, err := h.rentals.GetRental(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	var req rentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rental := req.toDomain()
	rental.ID = id
	updated, err := h.rentals.UpdateRental(r.Context(), rental)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *RentalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rental id")
		return
	}
	rental, err := h.rentals.CancelRental(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)
	status := r.URL.Query().Get("status")
	rentals, total, err := h.rentals.ListRentals(r.Context(), status, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rentals": rentals,
		"total":   total,
	})
}

// Quote prices a booking form without creating a rental.
func (h *RentalHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.rentals.QuotePricing(r.Context(), service.QuoteRequest{
		VehicleID:          req.VehicleID,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		Discount:           req.Discount,
		CustomCommission:   req.CustomCommission,
		ExtraKmChargeCents: req.ExtraKmChargeCents,
		ManualPriceCents:   req.ManualPriceCents,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (req *rentalRequest) toDomain() *domain.Rental {
	return &domain.Rental{
		VehicleID:          req.VehicleID,
		CustomerID:         req.CustomerID,
		CustomerName:       req.CustomerName,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		Discount:           req.Discount,
		CustomCommission:   req.CustomCommission,
		ExtraKmChargeCents: req.ExtraKmChargeCents,
		DailyKilometers:    req.DailyKilometers,
		DepositCents:       req.DepositCents,
		IsFlexible:         req.IsFlexible,
		ManualPriceCents:   req.ManualPriceCents,
		Paid:               req.Paid,
		HandoverPlace:      req.HandoverPlace,
	}
}
