package http

import (
	"context"

	"rental-backoffice/internal/domain"
	"rental-backoffice/internal/pricing"
	"rental-backoffice/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockVehicleService
type MockVehicleService struct {
	mock.Mock
}

func (m *MockVehicleService) AddVehicle(ctx context.Context, vehicle *domain.Vehicle) ([]pricing.TierIssue, error) {
	args := m.Called(ctx, vehicle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pricing.TierIssue), args.Error(1)
}
func (m *MockVehicleService) GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleService) UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) ([]pricing.TierIssue, error) {
	args := m.Called(ctx, vehicle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pricing.TierIssue), args.Error(1)
}
func (m *MockVehicleService) DeleteVehicle(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVehicleService) ListVehicles(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Vehicle), args.Get(1).(int32), args.Error(2)
}

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) CreateRental(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	args := m.Called(ctx, rental)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) GetRental(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) UpdateRental(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	args := m.Called(ctx, rental)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) CancelRental(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) ListRentals(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Rental), args.Get(1).(int32), args.Error(2)
}
func (m *MockRentalService) QuotePricing(ctx context.Context, req service.QuoteRequest) (pricing.PricingResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(pricing.PricingResult), args.Error(1)
}

// MockProtocolService
type MockProtocolService struct {
	mock.Mock
}

func (m *MockProtocolService) CreateHandover(ctx context.Context, rentalID int32, draft service.HandoverDraft) (*domain.HandoverProtocol, error) {
	args := m.Called(ctx, rentalID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HandoverProtocol), args.Error(1)
}
func (m *MockProtocolService) GetHandover(ctx context.Context, rentalID int32) (*domain.HandoverProtocol, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HandoverProtocol), args.Error(1)
}
func (m *MockProtocolService) PreviewSettlement(ctx context.Context, rentalID int32, draft service.ReturnDraft) (pricing.SettlementResult, error) {
	args := m.Called(ctx, rentalID, draft)
	return args.Get(0).(pricing.SettlementResult), args.Error(1)
}
func (m *MockProtocolService) FinalizeReturn(ctx context.Context, rentalID int32, draft service.ReturnDraft) (*domain.ReturnProtocol, error) {
	args := m.Called(ctx, rentalID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReturnProtocol), args.Error(1)
}
func (m *MockProtocolService) GetReturn(ctx context.Context, rentalID int32) (*domain.ReturnProtocol, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReturnProtocol), args.Error(1)
}
