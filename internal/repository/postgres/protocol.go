package postgres

import (
	"context"
	"database/sql"
	"time"

	"rental-backoffice/internal/domain"
	"rental-backoffice/internal/repository"
)

type protocolRepository struct {
	db *sql.DB
}

func NewProtocolRepository(db *sql.DB) repository.ProtocolRepository {
	return &protocolRepository{db: db}
}

func (r *protocolRepository) CreateHandover(ctx context.Context, p *domain.HandoverProtocol) error {
	query := `INSERT INTO handover_protocols (id, rental_id, odometer_km, fuel_level_pct, exterior_condition, interior_condition, notes, location, completed_at, created_by, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.RentalID, p.Condition.OdometerKm, p.Condition.FuelLevelPct,
		p.Condition.ExteriorCondition, p.Condition.InteriorCondition, p.Condition.Notes,
		p.Location, p.CompletedAt, p.CreatedBy, time.Now(),
	)
	return err
}

func (r *protocolRepository) GetHandoverByRental(ctx context.Context, rentalID int32) (*domain.HandoverProtocol, error) {
	p := &domain.HandoverProtocol{}
	query := `SELECT id, rental_id, odometer_km, fuel_level_pct, exterior_condition, interior_condition, notes, location, completed_at, created_by, created_on
	          FROM handover_protocols WHERE rental_id = $1`
	err := r.db.QueryRowContext(ctx, query, rentalID).Scan(
		&p.ID, &p.RentalID, &p.Condition.OdometerKm, &p.Condition.FuelLevelPct,
		&p.Condition.ExteriorCondition, &p.Condition.InteriorCondition, &p.Condition.Notes,
		&p.Location, &p.CompletedAt, &p.CreatedBy, &p.CreatedOn,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *protocolRepository) CreateReturn(ctx context.Context, p *domain.ReturnProtocol) error {
	query := `INSERT INTO return_protocols (id, rental_id, handover_protocol_id, odometer_km, fuel_level_pct,
	            exterior_condition, interior_condition, notes, location,
	            kilometers_used, kilometer_overage, kilometer_fee_cents, fuel_used_pct, fuel_fee_cents,
	            total_extra_fees_cents, deposit_refund_cents, additional_charge_cents,
	            applied_km_rate_cents, rate_overridden, audit_note, completed_at, created_by, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.RentalID, p.HandoverProtocolID, p.Condition.OdometerKm, p.Condition.FuelLevelPct,
		p.Condition.ExteriorCondition, p.Condition.InteriorCondition, p.Condition.Notes, p.Location,
		p.KilometersUsed, p.KilometerOverage, p.KilometerFeeCents, p.FuelUsedPct, p.FuelFeeCents,
		p.TotalExtraFeesCents, p.DepositRefundCents, p.AdditionalChargeCents,
		p.AppliedKmRateCents, p.RateOverridden, p.AuditNote, p.CompletedAt, p.CreatedBy, time.Now(),
	)
	return err
}

func (r *protocolRepository) GetReturnByRental(ctx context.Context, rentalID int32) (*domain.ReturnProtocol, error) {
	p := &domain.ReturnProtocol{}
	query := `SELECT id, rental_id, handover_protocol_id, odometer_km, fuel_level_pct,
	            exterior_condition, interior_condition, notes, location,
	            kilometers_used, kilometer_overage, kilometer_fee_cents, fuel_used_pct, fuel_fee_cents,
	            total_extra_fees_cents, deposit_refund_cents, additional_charge_cents,
	            applied_km_rate_cents, rate_overridden, audit_note, completed_at, created_by, created_on
	          FROM return_protocols WHERE rental_id = $1`
	err := r.db.QueryRowContext(ctx, query, rentalID).Scan(
		&p.ID, &p.RentalID, &p.HandoverProtocolID, &p.Condition.OdometerKm, &p.Condition.FuelLevelPct,
		&p.Condition.ExteriorCondition, &p.Condition.InteriorCondition, &p.Condition.Notes, &p.Location,
		&p.KilometersUsed, &p.KilometerOverage, &p.KilometerFeeCents, &p.FuelUsedPct, &p.FuelFeeCents,
		&p.TotalExtraFeesCents, &p.DepositRefundCents, &p.AdditionalChargeCents,
		&p.AppliedKmRateCents, &p.RateOverridden, &p.AuditNote, &p.CompletedAt, &p.CreatedBy, &p.CreatedOn,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}
