package domain

import "time"

// VehicleCondition is a snapshot of the vehicle's state captured at handover
// and again at return. Odometer and fuel readings are stored as entered, even
// when a return reading is below the handover reading; settlement clamps the
// derived usage, and the raw values stay available for anomaly review.
type VehicleCondition struct {
	OdometerKm        int32  `json:"odometer_km"`
	FuelLevelPct      int32  `json:"fuel_level_pct"`
	ExteriorCondition string `json:"exterior_condition"`
	InteriorCondition string `json:"interior_condition"`
	Notes             string `json:"notes"`
}

type HandoverProtocol struct {
	ID          string           `json:"id"`
	RentalID    int32            `json:"rental_id"`
	Condition   VehicleCondition `json:"condition"`
	Location    string           `json:"location"`
	CompletedAt time.Time        `json:"completed_at"`
	CreatedBy   string           `json:"created_by"`
	CreatedOn   time.Time        `json:"created_on"`
}

// ReturnProtocol records the return-time reconciliation. The settlement
// fields are written once, when the return is finalized; previews before
// that are computed fresh and never stored.
type ReturnProtocol struct {
	ID                 string           `json:"id"`
	RentalID           int32            `json:"rental_id"`
	HandoverProtocolID string           `json:"handover_protocol_id"`
	Condition          VehicleCondition `json:"condition"`
	Location           string           `json:"location"`

	KilometersUsed        int32 `json:"kilometers_used"`
	KilometerOverage      int32 `json:"kilometer_overage"`
	KilometerFeeCents     int64 `json:"kilometer_fee_cents"`
	FuelUsedPct           int32 `json:"fuel_used_pct"`
	FuelFeeCents          int64 `json:"fuel_fee_cents"`
	TotalExtraFeesCents   int64 `json:"total_extra_fees_cents"`
	DepositRefundCents    int64 `json:"deposit_refund_cents"`
	AdditionalChargeCents int64 `json:"additional_charge_cents"`

	// AppliedKmRateCents is the per-kilometre rate the settlement actually
	// used; RateOverridden marks whether the operator replaced the catalog
	// rate for this settlement. AuditNote records the same in free text.
	AppliedKmRateCents int64  `json:"applied_km_rate_cents"`
	RateOverridden     bool   `json:"rate_overridden"`
	AuditNote          string `json:"audit_note"`

	CompletedAt time.Time `json:"completed_at"`
	CreatedBy   string    `json:"created_by"`
	CreatedOn   time.Time `json:"created_on"`
}
