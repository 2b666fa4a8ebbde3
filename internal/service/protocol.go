package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rental-backoffice/internal/domain"
	"rental-backoffice/internal/logger"
	"rental-backoffice/internal/pricing"
	"rental-backoffice/internal/repository"

	"github.com/google/uuid"
)

type protocolService struct {
	protocolRepo       repository.ProtocolRepository
	rentalRepo         repository.RentalRepository
	fuelFeeCentsPerPct int64
}

func NewProtocolService(protocolRepo repository.ProtocolRepository, rentalRepo repository.RentalRepository, fuelFeeCentsPerPct int64) ProtocolService {
	return &protocolService{
		protocolRepo:       protocolRepo,
		rentalRepo:         rentalRepo,
		fuelFeeCentsPerPct: fuelFeeCentsPerPct,
	}
}

func (s *protocolService) CreateHandover(ctx context.Context, rentalID int32, draft HandoverDraft) (*domain.HandoverProtocol, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.Status == domain.RentalStatusFinished || rental.Status == domain.RentalStatusCancelled {
		return nil, errors.New("rental is closed")
	}

	protocol := &domain.HandoverProtocol{
		ID:          uuid.NewString(),
		RentalID:    rentalID,
		Condition:   draft.Condition,
		Location:    draft.Location,
		CompletedAt: time.Now(),
		CreatedBy:   draft.CreatedBy,
	}
	if err := s.protocolRepo.CreateHandover(ctx, protocol); err != nil {
		return nil, err
	}

	rental.Status = domain.RentalStatusActive
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	return protocol, nil
}

func (s *protocolService) GetHandover(ctx context.Context, rentalID int32) (*domain.HandoverProtocol, error) {
	return s.protocolRepo.GetHandoverByRental(ctx, rentalID)
}

func (s *protocolService) PreviewSettlement(ctx context.Context, rentalID int32, draft ReturnDraft) (pricing.SettlementResult, error) {
	_, _, result, err := s.settle(ctx, rentalID, draft)
	return result, err
}

func (s *protocolService) FinalizeReturn(ctx context.Context, rentalID int32, draft ReturnDraft) (*domain.ReturnProtocol, error) {
	rental, handover, result, err := s.settle(ctx, rentalID, draft)
	if err != nil {
		return nil, err
	}

	rate := pricing.NewKmRateOverride(rental.ExtraKmRateCents)
	if draft.OverrideKmRateCents != nil {
		rate.Confirm(*draft.OverrideKmRateCents)
	}

	protocol := &domain.ReturnProtocol{
		ID:                 uuid.NewString(),
		RentalID:           rentalID,
		HandoverProtocolID: handover.ID,
		Condition:          draft.Condition,
		Location:           draft.Location,

		KilometersUsed:        result.KilometersUsed,
		KilometerOverage:      result.KilometerOverage,
		KilometerFeeCents:     result.KilometerFeeCents,
		FuelUsedPct:           result.FuelUsedPct,
		FuelFeeCents:          result.FuelFeeCents,
		TotalExtraFeesCents:   result.TotalExtraFeesCents,
		DepositRefundCents:    result.DepositRefundCents,
		AdditionalChargeCents: result.AdditionalChargeCents,

		AppliedKmRateCents: rate.EffectiveRateCents(),
		RateOverridden:     rate.Overridden(),
		AuditNote:          rateAuditNote(rate, rental.ExtraKmRateCents),

		CompletedAt: time.Now(),
		CreatedBy:   draft.CreatedBy,
	}
	if err := s.protocolRepo.CreateReturn(ctx, protocol); err != nil {
		return nil, err
	}

	rental.Status = domain.RentalStatusFinished
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	return protocol, nil
}

func (s *protocolService) GetReturn(ctx context.Context, rentalID int32) (*domain.ReturnProtocol, error) {
	return s.protocolRepo.GetReturnByRental(ctx, rentalID)
}

// settle loads the rental and its handover snapshot and computes the
// settlement for the given return draft. Nothing is persisted.
func (s *protocolService) settle(ctx context.Context, rentalID int32, draft ReturnDraft) (*domain.Rental, *domain.HandoverProtocol, pricing.SettlementResult, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, nil, pricing.SettlementResult{}, err
	}
	handover, err := s.protocolRepo.GetHandoverByRental(ctx, rentalID)
	if err != nil {
		return nil, nil, pricing.SettlementResult{}, fmt.Errorf("handover protocol not found for rental %d: %w", rentalID, err)
	}

	rate := pricing.NewKmRateOverride(rental.ExtraKmRateCents)
	if draft.OverrideKmRateCents != nil {
		rate.Confirm(*draft.OverrideKmRateCents)
	}

	if draft.Condition.OdometerKm < handover.Condition.OdometerKm {
		logger.DataQualityAnomaly("ODOMETER_BELOW_HANDOVER", "Return odometer below handover reading",
			"rental_id", rentalID,
			"handover_km", handover.Condition.OdometerKm,
			"return_km", draft.Condition.OdometerKm)
	}

	result := pricing.ComputeSettlement(pricing.SettlementInput{
		HandoverOdometerKm: handover.Condition.OdometerKm,
		HandoverFuelPct:    handover.Condition.FuelLevelPct,
		ReturnOdometerKm:   draft.Condition.OdometerKm,
		ReturnFuelPct:      draft.Condition.FuelLevelPct,
		AllowedKilometers:  rental.AllowedKilometers,
		KmRateCents:        rate.EffectiveRateCents(),
		DepositCents:       rental.DepositCents,
		FuelFeeCentsPerPct: s.fuelFeeCentsPerPct,
	})
	return rental, handover, result, nil
}

func rateAuditNote(rate *pricing.KmRateOverride, catalogRateCents int64) string {
	if rate.Overridden() {
		return fmt.Sprintf("per-km rate overridden to %s (catalog rate %s)",
			formatEUR(rate.EffectiveRateCents()), formatEUR(catalogRateCents))
	}
	return fmt.Sprintf("catalog per-km rate %s applied", formatEUR(catalogRateCents))
}

func formatEUR(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d EUR", sign, cents/100, cents%100)
}
