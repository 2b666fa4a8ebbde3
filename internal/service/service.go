package service

import (
	"context"

	"rental-backoffice/internal/domain"
	"rental-backoffice/internal/pricing"
)

type VehicleService interface {
	AddVehicle(ctx context.Context, vehicle *domain.Vehicle) ([]pricing.TierIssue, error)
	GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) ([]pricing.TierIssue, error)
	DeleteVehicle(ctx context.Context, id int32) error
	ListVehicles(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int32, error)
}

type RentalService interface {
	CreateRental(ctx context.Context, rental *domain.Rental) (*domain.Rental, error)
	GetRental(ctx context.Context, id int32) (*domain.Rental, error)
	// UpdateRental persists operator edits. The stored pricing snapshot is
	// recomputed only when a price-relevant field (vehicle, dates, discount,
	// custom commission) actually changed; otherwise it is preserved as
	// loaded, even if the vehicle's catalog has moved on.
	UpdateRental(ctx context.Context, rental *domain.Rental) (*domain.Rental, error)
	CancelRental(ctx context.Context, id int32) (*domain.Rental, error)
	ListRentals(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error)
	// QuotePricing computes a live price for the booking form without
	// touching any stored rental.
	QuotePricing(ctx context.Context, req QuoteRequest) (pricing.PricingResult, error)
}

// QuoteRequest carries the form fields needed for a live pricing quote.
type QuoteRequest struct {
	VehicleID          int32
	StartDate          string
	EndDate            string
	Discount           *domain.ChargeSpec
	CustomCommission   *domain.ChargeSpec
	ExtraKmChargeCents int64
	ManualPriceCents   *int64
}

// HandoverDraft carries the operator's input for a handover protocol.
type HandoverDraft struct {
	Condition domain.VehicleCondition
	Location  string
	CreatedBy string
}

// ReturnDraft carries the operator's input for a settlement preview or a
// finalized return. OverrideKmRateCents, when set, replaces the rental's
// catalog per-km rate for this settlement only.
type ReturnDraft struct {
	Condition           domain.VehicleCondition
	Location            string
	CreatedBy           string
	OverrideKmRateCents *int64
}

type ProtocolService interface {
	CreateHandover(ctx context.Context, rentalID int32, draft HandoverDraft) (*domain.HandoverProtocol, error)
	GetHandover(ctx context.Context, rentalID int32) (*domain.HandoverProtocol, error)
	// PreviewSettlement recomputes the settlement from scratch; nothing is
	// persisted. The return form calls it on every input change.
	PreviewSettlement(ctx context.Context, rentalID int32, draft ReturnDraft) (pricing.SettlementResult, error)
	// FinalizeReturn computes the settlement one last time, persists the
	// return protocol with an audit note for the applied per-km rate, and
	// closes the rental.
	FinalizeReturn(ctx context.Context, rentalID int32, draft ReturnDraft) (*domain.ReturnProtocol, error)
	GetReturn(ctx context.Context, rentalID int32) (*domain.ReturnProtocol, error)
}
