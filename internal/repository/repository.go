package repository

import (
	"context"

	"rental-backoffice/internal/domain"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int32, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	ListByVehicle(ctx context.Context, vehicleID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error)
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error)
}

type ProtocolRepository interface {
	CreateHandover(ctx context.Context, protocol *domain.HandoverProtocol) error
	GetHandoverByRental(ctx context.Context, rentalID int32) (*domain.HandoverProtocol, error)
	CreateReturn(ctx context.Context, protocol *domain.ReturnProtocol) error
	GetReturnByRental(ctx context.Context, rentalID int32) (*domain.ReturnProtocol, error)
}
