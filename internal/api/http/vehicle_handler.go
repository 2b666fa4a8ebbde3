package http

import (
	"encoding/json"
	"net/http"

	"rental-backoffice/internal/domain"
	"rental-backoffice/internal/pricing"
	"rental-backoffice/internal/service"

	"github.com/go-playground/validator/v10"
)

type VehicleHandler struct {
	vehicles service.VehicleService
	validate *validator.Validate
}

func NewVehicleHandler(vehicles service.VehicleService, validate *validator.Validate) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles, validate: validate}
}

type vehicleRequest struct {
	Brand            string               `json:"brand" validate:"required,max=100"`
	Model            string               `json:"model" validate:"required,max=100"`
	LicensePlate     string               `json:"license_plate" validate:"required,max=20"`
	VIN              string               `json:"vin" validate:"max=17"`
	Pricing          []domain.PricingTier `json:"pricing"`
	Commission       domain.ChargeSpec    `json:"commission"`
	ExtraKmRateCents int64                `json:"extra_km_rate_cents" validate:"min=0"`
	Status           domain.VehicleStatus `json:"status" validate:"omitempty,oneof=AVAILABLE RENTED IN_MAINTENANCE RETIRED"`
}

// vehicleResponse carries the saved vehicle together with any tier table
// issues found during the audit. Issues do not block the save.
type vehicleResponse struct {
	Vehicle       *domain.Vehicle     `json:"vehicle"`
	PricingIssues []pricing.TierIssue `json:"pricing_issues,omitempty"`
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req vehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	vehicle := req.toDomain()
	issues, err := h.vehicles.AddVehicle(r.Context(), vehicle)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicleResponse{Vehicle: vehicle, PricingIssues: issues})
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}
	vehicle, err := h.vehicles.GetVehicle(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}

	var req vehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	vehicle := req.toDomain()
	vehicle.ID = id
	issues, err := h.vehicles.UpdateVehicle(r.Context(), vehicle)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicleResponse{Vehicle: vehicle, PricingIssues: issues})
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}
	if err := h.vehicles.DeleteVehicle(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)
	vehicles, total, err := h.vehicles.ListVehicles(r.Context(), page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"vehicles": vehicles,
		"total":    total,
	})
}

func (req *vehicleRequest) toDomain() *domain.Vehicle {
	return &domain.Vehicle{
		Brand:            req.Brand,
		Model:            req.Model,
		LicensePlate:     req.LicensePlate,
		VIN:              req.VIN,
		Pricing:          req.Pricing,
		Commission:       req.Commission,
		ExtraKmRateCents: req.ExtraKmRateCents,
		Status:           req.Status,
	}
}
