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

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, order_number, vehicle_id, customer_id, customer_name, start_date, end_date,
	discount, custom_commission, extra_km_charge_cents, daily_kilometers, allowed_kilometers,
	extra_km_rate_cents, deposit_cents, is_flexible, manual_price_cents,
	base_price_cents, discounted_price_cents, total_price_cents, commission_cents,
	paid, handover_place, status, created_on, updated_on`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	discount, customCommission, err := encodeCharges(rt)
	if err != nil {
		return err
	}

	query := `INSERT INTO rentals (order_number, vehicle_id, customer_id, customer_name, start_date, end_date,
	            discount, custom_commission, extra_km_charge_cents, daily_kilometers, allowed_kilometers,
	            extra_km_rate_cents, deposit_cents, is_flexible, manual_price_cents,
	            base_price_cents, discounted_price_cents, total_price_cents, commission_cents,
	            paid, handover_place, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		rt.OrderNumber, rt.VehicleID, rt.CustomerID, rt.CustomerName, rt.StartDate, rt.EndDate,
		discount, customCommission, rt.ExtraKmChargeCents, rt.DailyKilometers, rt.AllowedKilometers,
		rt.ExtraKmRateCents, rt.DepositCents, rt.IsFlexible, rt.ManualPriceCents,
		rt.BasePriceCents, rt.DiscountedPriceCents, rt.TotalPriceCents, rt.CommissionCents,
		rt.Paid, rt.HandoverPlace, rt.Status, time.Now(), time.Now(),
	).Scan(&rt.ID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+rentalColumns+` FROM rentals WHERE id = $1`, id)
	return scanRental(row)
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	discount, customCommission, err := encodeCharges(rt)
	if err != nil {
		return err
	}

	query := `UPDATE rentals SET vehicle_id=$1, customer_id=$2, customer_name=$3, start_date=$4, end_date=$5,
	            discount=$6, custom_commission=$7, extra_km_charge_cents=$8, daily_kilometers=$9, allowed_kilometers=$10,
	            extra_km_rate_cents=$11, deposit_cents=$12, is_flexible=$13, manual_price_cents=$14,
	            base_price_cents=$15, discounted_price_cents=$16, total_price_cents=$17, commission_cents=$18,
	            paid=$19, handover_place=$20, status=$21, updated_on=$22
	          WHERE id=$23`
	_, err = r.db.ExecContext(ctx, query,
		rt.VehicleID, rt.CustomerID, rt.CustomerName, rt.StartDate, rt.EndDate,
		discount, customCommission, rt.ExtraKmChargeCents, rt.DailyKilometers, rt.AllowedKilometers,
		rt.ExtraKmRateCents, rt.DepositCents, rt.IsFlexible, rt.ManualPriceCents,
		rt.BasePriceCents, rt.DiscountedPriceCents, rt.TotalPriceCents, rt.CommissionCents,
		rt.Paid, rt.HandoverPlace, rt.Status, time.Now(), rt.ID,
	)
	return err
}

func (r *rentalRepository) ListByVehicle(ctx context.Context, vehicleID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	return r.list(ctx, `WHERE vehicle_id = $1`, []interface{}{vehicleID}, status, page, pageSize)
}

func (r *rentalRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	return r.list(ctx, `WHERE 1=1`, nil, status, page, pageSize)
}

func (r *rentalRepository) list(ctx context.Context, where string, args []interface{}, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + rentalColumns + ` FROM rentals ` + where

	argIdx := len(args) + 1
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, 0, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, count, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var discount, customCommission []byte
	err := row.Scan(
		&rt.ID, &rt.OrderNumber, &rt.VehicleID, &rt.CustomerID, &rt.CustomerName, &rt.StartDate, &rt.EndDate,
		&discount, &customCommission, &rt.ExtraKmChargeCents, &rt.DailyKilometers, &rt.AllowedKilometers,
		&rt.ExtraKmRateCents, &rt.DepositCents, &rt.IsFlexible, &rt.ManualPriceCents,
		&rt.BasePriceCents, &rt.DiscountedPriceCents, &rt.TotalPriceCents, &rt.CommissionCents,
		&rt.Paid, &rt.HandoverPlace, &rt.Status, &rt.CreatedOn, &rt.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}
	if len(discount) > 0 {
		rt.Discount = &domain.ChargeSpec{}
		if err := json.Unmarshal(discount, rt.Discount); err != nil {
			return nil, fmt.Errorf("failed to decode discount for rental %d: %w", rt.ID, err)
		}
	}
	if len(customCommission) > 0 {
		rt.CustomCommission = &domain.ChargeSpec{}
		if err := json.Unmarshal(customCommission, rt.CustomCommission); err != nil {
			return nil, fmt.Errorf("failed to decode custom commission for rental %d: %w", rt.ID, err)
		}
	}
	return rt, nil
}

func encodeCharges(rt *domain.Rental) ([]byte, []byte, error) {
	var discount, customCommission []byte
	var err error
	if rt.Discount != nil {
		if discount, err = json.Marshal(rt.Discount); err != nil {
			return nil, nil, fmt.Errorf("failed to encode discount: %w", err)
		}
	}
	if rt.CustomCommission != nil {
		if customCommission, err = json.Marshal(rt.CustomCommission); err != nil {
			return nil, nil, fmt.Errorf("failed to encode custom commission: %w", err)
		}
	}
	return discount, customCommission, nil
}
