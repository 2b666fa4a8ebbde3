package service

import (
	"context"

	"rental-backoffice/internal/domain"
	"rental-backoffice/internal/logger"
	"rental-backoffice/internal/pricing"
	"rental-backoffice/internal/repository"
)

type vehicleService struct {
	vehicleRepo        repository.VehicleRepository
	defaultKmRateCents int64
}

func NewVehicleService(vehicleRepo repository.VehicleRepository, defaultKmRateCents int64) VehicleService {
	return &vehicleService{
		vehicleRepo:        vehicleRepo,
		defaultKmRateCents: defaultKmRateCents,
	}
}

// AddVehicle stores a new catalog vehicle. The tier table is validated and
// issues are returned to the caller and logged, but a flawed table does not
// block the save: rentals priced against a gap resolve to zero, which the
// booking form surfaces as a missing price.
func (s *vehicleService) AddVehicle(ctx context.Context, vehicle *domain.Vehicle) ([]pricing.TierIssue, error) {
	if vehicle.Status == "" {
		vehicle.Status = domain.VehicleStatusAvailable
	}
	if vehicle.ExtraKmRateCents <= 0 {
		vehicle.ExtraKmRateCents = s.defaultKmRateCents
	}

	issues := s.auditTiers(vehicle)
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return issues, nil
}

func (s *vehicleService) GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) ([]pricing.TierIssue, error) {
	issues := s.auditTiers(vehicle)
	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}
	return issues, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, id int32) error {
	return s.vehicleRepo.Delete(ctx, id)
}

func (s *vehicleService) ListVehicles(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	return s.vehicleRepo.List(ctx, page, pageSize)
}

func (s *vehicleService) auditTiers(vehicle *domain.Vehicle) []pricing.TierIssue {
	issues := pricing.ValidateTiers(vehicle.Pricing)
	for _, issue := range issues {
		logger.DataQualityAnomaly(issue.Kind, "Vehicle tier table issue",
			"vehicle_id", vehicle.ID,
			"license_plate", vehicle.LicensePlate,
			"detail", issue.Message)
	}
	return issues
}
