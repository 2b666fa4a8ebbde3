package postgres

import (
	"database/sql"

	"rental-backoffice/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.VehicleRepository
	repository.RentalRepository
	repository.ProtocolRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		VehicleRepository:  NewVehicleRepository(db),
		RentalRepository:   NewRentalRepository(db),
		ProtocolRepository: NewProtocolRepository(db),
	}
}
