package http

import (
	"encoding/json"
	"net/http"

	"rental-backoffice/internal/domain"
	"rental-backoffice/internal/service"

	"github.com/go-playground/validator/v10"
)

type ProtocolHandler struct {
	protocols service.ProtocolService
	validate  *validator.Validate
}

func NewProtocolHandler(protocols service.ProtocolService, validate *validator.Validate) *ProtocolHandler {
	return &ProtocolHandler{protocols: protocols, validate: validate}
}

type conditionRequest struct {
	OdometerKm        int32  `json:"odometer_km" validate:"min=0"`
	FuelLevelPct      int32  `json:"fuel_level_pct" validate:"min=0,max=100"`
	ExteriorCondition string `json:"exterior_condition" validate:"max=500"`
	InteriorCondition string `json:"interior_condition" validate:"max=500"`
	Notes             string `json:"notes" validate:"max=2000"`
}

type handoverRequest struct {
	Condition conditionRequest `json:"condition" validate:"required"`
	Location  string           `json:"location" validate:"max=200"`
	CreatedBy string           `json:"created_by" validate:"max=100"`
}

// returnRequest is shared by the settlement preview and the finalized return.
// OverrideKmRateCents replaces the rental's catalog per-km rate for this
// settlement only.
type returnRequest struct {
	Condition           conditionRequest `json:"condition" validate:"required"`
	Location            string           `json:"location" validate:"max=200"`
	CreatedBy           string           `json:"created_by" validate:"max=100"`
	OverrideKmRateCents *int64           `json:"override_km_rate_cents" validate:"omitempty,min=0"`
}

func (h *ProtocolHandler) CreateHandover(w http.ResponseWriter, r *http.Request) {
	rentalID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	var req handoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	protocol, err := h.protocols.CreateHandover(r.Context(), rentalID, service.HandoverDraft{
		Condition: req.Condition.toDomain(),
		Location:  req.Location,
		CreatedBy: req.CreatedBy,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, protocol)
}

func (h *ProtocolHandler) GetHandover(w http.ResponseWriter, r *http.Request) {
	rentalID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rental id")
		return
	}
	protocol, err := h.protocols.GetHandover(r.Context(), rentalID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, protocol)
}

func (h *ProtocolHandler) PreviewSettlement(w http.ResponseWriter, r *http.Request) {
	rentalID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	req, ok := h.decodeReturn(w, r)
	if !ok {
		return
	}

	result, err := h.protocols.PreviewSettlement(r.Context(), rentalID, req.toDraft())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ProtocolHandler) FinalizeReturn(w http.ResponseWriter, r *http.Request) {
	rentalID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	req, ok := h.decodeReturn(w, r)
	if !ok {
		return
	}

	protocol, err := h.protocols.FinalizeReturn(r.Context(), rentalID, req.toDraft())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, protocol)
}

func (h *ProtocolHandler) GetReturn(w http.ResponseWriter, r *http.Request) {
	rentalID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rental id")
		return
	}
	protocol, err := h.protocols.GetReturn(r.Context(), rentalID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, protocol)
}

func (h *ProtocolHandler) decodeReturn(w http.ResponseWriter, r *http.Request) (returnRequest, bool) {
	var req returnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return req, false
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return req, false
	}
	return req, true
}

func (req *conditionRequest) toDomain() domain.VehicleCondition {
	return domain.VehicleCondition{
		OdometerKm:        req.OdometerKm,
		FuelLevelPct:      req.FuelLevelPct,
		ExteriorCondition: req.ExteriorCondition,
		InteriorCondition: req.InteriorCondition,
		Notes:             req.Notes,
	}
}

func (req *returnRequest) toDraft() service.ReturnDraft {
	return service.ReturnDraft{
		Condition:           req.Condition.toDomain(),
		Location:            req.Location,
		CreatedBy:           req.CreatedBy,
		OverrideKmRateCents: req.OverrideKmRateCents,
	}
}
