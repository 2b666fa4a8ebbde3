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

const dateLayout = "2006-01-02"

type rentalService struct {
	rentalRepo  repository.RentalRepository
	vehicleRepo repository.VehicleRepository
}

func NewRentalService(rentalRepo repository.RentalRepository, vehicleRepo repository.VehicleRepository) RentalService {
	return &rentalService{
		rentalRepo:  rentalRepo,
		vehicleRepo: vehicleRepo,
	}
}

func (s *rentalService) CreateRental(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, rental.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("vehicle lookup failed: %w", err)
	}

	start, end, err := rentalDates(rental)
	if err != nil {
		return nil, err
	}

	if rental.OrderNumber == "" {
		rental.OrderNumber = uuid.NewString()
	}
	if rental.Status == "" {
		rental.Status = domain.RentalStatusDraft
	}
	if rental.ExtraKmRateCents <= 0 {
		rental.ExtraKmRateCents = vehicle.ExtraKmRateCents
	}

	days := pricing.RentalDays(start, end)
	if rental.DailyKilometers > 0 {
		rental.AllowedKilometers = rental.DailyKilometers * days
	}

	applySnapshot(rental, pricing.ComputePricing(pricingInput(vehicle, rental, start, end)))

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, id int32) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

func (s *rentalService) UpdateRental(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	stored, err := s.rentalRepo.GetByID(ctx, rental.ID)
	if err != nil {
		return nil, err
	}

	// The stored snapshot loads behind a preserving gate; only an actual
	// operator edit of a price-relevant field opens it for recomputation.
	// A re-saved but untouched rental keeps its historical price even when
	// the vehicle's tier table has changed in the catalog since.
	gate := pricing.NewGateForStored()
	if pricingFieldsChanged(stored, rental) {
		gate.MarkEdited()
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, rental.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("vehicle lookup failed: %w", err)
	}

	start, end, err := rentalDates(rental)
	if err != nil {
		return nil, err
	}

	if rental.DailyKilometers > 0 {
		// Quota follows the same day count as the price.
		rental.AllowedKilometers = rental.DailyKilometers * pricing.RentalDays(start, end)
	}
	if rental.ExtraKmRateCents <= 0 {
		rental.ExtraKmRateCents = vehicle.ExtraKmRateCents
	}

	applySnapshot(rental, gate.Apply(snapshotOf(stored), pricingInput(vehicle, rental, start, end)))

	rental.OrderNumber = stored.OrderNumber
	rental.CreatedOn = stored.CreatedOn
	if rental.Status == "" {
		rental.Status = stored.Status
	}

	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) CancelRental(ctx context.Context, id int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rental.Status == domain.RentalStatusFinished {
		return nil, errors.New("rental is already finished")
	}
	rental.Status = domain.RentalStatusCancelled
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) ListRentals(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	return s.rentalRepo.List(ctx, status, page, pageSize)
}

func (s *rentalService) QuotePricing(ctx context.Context, req QuoteRequest) (pricing.PricingResult, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		return pricing.PricingResult{}, fmt.Errorf("vehicle lookup failed: %w", err)
	}

	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return pricing.PricingResult{}, err
	}

	res := pricing.ComputePricing(pricing.PricingInput{
		Tiers:              vehicle.Pricing,
		StartDate:          start,
		EndDate:            end,
		Discount:           req.Discount,
		CustomCommission:   req.CustomCommission,
		DefaultCommission:  vehicle.Commission,
		ExtraKmChargeCents: req.ExtraKmChargeCents,
		ManualPriceCents:   req.ManualPriceCents,
	})
	if res.BasePriceCents == 0 && req.ManualPriceCents == nil {
		logger.DataQualityAnomaly("NO_MATCHING_TIER", "Rental duration not covered by tier table",
			"vehicle_id", vehicle.ID, "days", res.Days)
	}
	return res, nil
}

// rentalDates parses the rental's date range. Flexible rentals may leave the
// end date open; the start date stands in so the day count stays defined.
func rentalDates(rental *domain.Rental) (time.Time, time.Time, error) {
	endDate := rental.EndDate
	if endDate == "" && rental.IsFlexible {
		endDate = rental.StartDate
	}
	return parseDateRange(rental.StartDate, endDate)
}

func parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: %w", startStr, err)
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: %w", endStr, err)
	}
	return start, end, nil
}

func pricingInput(vehicle *domain.Vehicle, rental *domain.Rental, start, end time.Time) pricing.PricingInput {
	in := pricing.PricingInput{
		Tiers:              vehicle.Pricing,
		StartDate:          start,
		EndDate:            end,
		Discount:           rental.Discount,
		CustomCommission:   rental.CustomCommission,
		DefaultCommission:  vehicle.Commission,
		ExtraKmChargeCents: rental.ExtraKmChargeCents,
	}
	if rental.IsFlexible {
		in.ManualPriceCents = rental.ManualPriceCents
	}
	return in
}

func snapshotOf(rental *domain.Rental) pricing.PricingResult {
	return pricing.PricingResult{
		BasePriceCents:       rental.BasePriceCents,
		DiscountedPriceCents: rental.DiscountedPriceCents,
		TotalPriceCents:      rental.TotalPriceCents,
		CommissionCents:      rental.CommissionCents,
	}
}

func applySnapshot(rental *domain.Rental, res pricing.PricingResult) {
	rental.BasePriceCents = res.BasePriceCents
	rental.DiscountedPriceCents = res.DiscountedPriceCents
	rental.TotalPriceCents = res.TotalPriceCents
	rental.CommissionCents = res.CommissionCents
}

// pricingFieldsChanged reports whether the operator touched a field the
// price snapshot is derived from: vehicle, date range, discount or custom
// commission.
func pricingFieldsChanged(stored, updated *domain.Rental) bool {
	if stored.VehicleID != updated.VehicleID {
		return true
	}
	if stored.StartDate != updated.StartDate || stored.EndDate != updated.EndDate {
		return true
	}
	if !chargeSpecEqual(stored.Discount, updated.Discount) {
		return true
	}
	if !chargeSpecEqual(stored.CustomCommission, updated.CustomCommission) {
		return true
	}
	return false
}

func chargeSpecEqual(a, b *domain.ChargeSpec) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Kind == b.Kind && a.Value == b.Value
}
