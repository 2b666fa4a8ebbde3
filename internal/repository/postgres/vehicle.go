package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"rental-backoffice/internal/domain"
	"rental-backoffice/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	pricing, err := json.Marshal(v.Pricing)
	if err != nil {
		return fmt.Errorf("failed to encode pricing tiers: %w", err)
	}
	commission, err := json.Marshal(v.Commission)
	if err != nil {
		return fmt.Errorf("failed to encode commission: %w", err)
	}

	query := `INSERT INTO vehicles (brand, model, license_plate, vin, pricing, commission, extra_km_rate_cents, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRowContext(ctx, query, v.Brand, v.Model, v.LicensePlate, v.VIN, pricing, commission, v.ExtraKmRateCents, v.Status, time.Now(), time.Now()).Scan(&v.ID)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	var pricing, commission []byte
	query := `SELECT id, brand, model, license_plate, vin, pricing, commission, extra_km_rate_cents, status, created_on, updated_on FROM vehicles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.Brand, &v.Model, &v.LicensePlate, &v.VIN, &pricing, &commission, &v.ExtraKmRateCents, &v.Status, &v.CreatedOn, &v.UpdatedOn)
	if err != nil {
		return nil, err
	}
	if err := decodeVehicleJSON(v, pricing, commission); err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	pricing, err := json.Marshal(v.Pricing)
	if err != nil {
		return fmt.Errorf("failed to encode pricing tiers: %w", err)
	}
	commission, err := json.Marshal(v.Commission)
	if err != nil {
		return fmt.Errorf("failed to encode commission: %w", err)
	}

	query := `UPDATE vehicles SET brand=$1, model=$2, license_plate=$3, vin=$4, pricing=$5, commission=$6, extra_km_rate_cents=$7, status=$8, updated_on=$9 WHERE id=$10`
	_, err = r.db.ExecContext(ctx, query, v.Brand, v.Model, v.LicensePlate, v.VIN, pricing, commission, v.ExtraKmRateCents, v.Status, time.Now(), v.ID)
	return err
}

func (r *vehicleRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	return err
}

func (r *vehicleRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM vehicles`).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, brand, model, license_plate, vin, pricing, commission, extra_km_rate_cents, status, created_on, updated_on
	          FROM vehicles ORDER BY brand, model LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		var pricing, commission []byte
		if err := rows.Scan(&v.ID, &v.Brand, &v.Model, &v.LicensePlate, &v.VIN, &pricing, &commission, &v.ExtraKmRateCents, &v.Status, &v.CreatedOn, &v.UpdatedOn); err != nil {
			return nil, 0, err
		}
		if err := decodeVehicleJSON(&v, pricing, commission); err != nil {
			return nil, 0, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, count, rows.Err()
}

func decodeVehicleJSON(v *domain.Vehicle, pricing, commission []byte) error {
	if len(pricing) > 0 {
		if err := json.Unmarshal(pricing, &v.Pricing); err != nil {
			return fmt.Errorf("failed to decode pricing tiers for vehicle %d: %w", v.ID, err)
		}
	}
	if len(commission) > 0 {
		if err := json.Unmarshal(commission, &v.Commission); err != nil {
			return fmt.Errorf("failed to decode commission for vehicle %d: %w", v.ID, err)
		}
	}
	return nil
}
