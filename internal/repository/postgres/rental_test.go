package postgres_test

import (
	"context"
	"testing"
	"time"

	"rental-backoffice/internal/domain"
	"rental-backoffice/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var rentalRows = []string{
	"id", "order_number", "vehicle_id", "customer_id", "customer_name", "start_date", "end_date",
	"discount", "custom_commission", "extra_km_charge_cents", "daily_kilometers", "allowed_kilometers",
	"extra_km_rate_cents", "deposit_cents", "is_flexible", "manual_price_cents",
	"base_price_cents", "discounted_price_cents", "total_price_cents", "commission_cents",
	"paid", "handover_place", "status", "created_on", "updated_on",
}

func TestRentalRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rental := &domain.Rental{
			OrderNumber:          "ord-1",
			VehicleID:            7,
			CustomerID:           3,
			CustomerName:         "Jana Novakova",
			StartDate:            "2024-05-06",
			EndDate:              "2024-05-10",
			Discount:             &domain.ChargeSpec{Kind: domain.ChargeKindPercentage, Value: 10},
			DailyKilometers:      250,
			AllowedKilometers:    1000,
			ExtraKmRateCents:     50,
			DepositCents:         20000,
			BasePriceCents:       16000,
			DiscountedPriceCents: 14400,
			TotalPriceCents:      16400,
			CommissionCents:      3280,
			Status:               domain.RentalStatusDraft,
		}

		mock.ExpectQuery("INSERT INTO rentals").
			WithArgs(rental.OrderNumber, rental.VehicleID, rental.CustomerID, rental.CustomerName, rental.StartDate, rental.EndDate,
				sqlmock.AnyArg(), nil, rental.ExtraKmChargeCents, rental.DailyKilometers, rental.AllowedKilometers,
				rental.ExtraKmRateCents, rental.DepositCents, rental.IsFlexible, nil,
				rental.BasePriceCents, rental.DiscountedPriceCents, rental.TotalPriceCents, rental.CommissionCents,
				rental.Paid, rental.HandoverPlace, rental.Status, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		err := repo.Create(ctx, rental)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), rental.ID)
	})
}

func TestRentalRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		discount := `{"kind":"PERCENTAGE","value":10}`
		rows := sqlmock.NewRows(rentalRows).
			AddRow(1, "ord-1", 7, 3, "Jana Novakova", "2024-05-06", "2024-05-10",
				[]byte(discount), nil, 0, 250, 1000,
				50, 20000, false, nil,
				16000, 14400, 16400, 3280,
				false, "Bratislava", "DRAFT", time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		rental, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, rental)
		assert.Equal(t, int32(1), rental.ID)
		assert.NotNil(t, rental.Discount)
		assert.Equal(t, float64(10), rental.Discount.Value)
		assert.Nil(t, rental.CustomCommission)
		assert.Equal(t, int64(16400), rental.TotalPriceCents)
	})
}

func TestRentalRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Filtered by status", func(t *testing.T) {
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM").
			WithArgs("ACTIVE").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		rows := sqlmock.NewRows(rentalRows).
			AddRow(1, "ord-1", 7, 3, "Jana Novakova", "2024-05-06", "2024-05-10",
				nil, nil, 0, 250, 1000,
				50, 20000, false, nil,
				16000, 14400, 16400, 3280,
				false, "Bratislava", "ACTIVE", time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE 1=1 AND status = \\$1").
			WithArgs("ACTIVE", int32(20), int32(0)).
			WillReturnRows(rows)

		rentals, count, err := repo.List(ctx, "ACTIVE", 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), count)
		assert.Len(t, rentals, 1)
		assert.Equal(t, domain.RentalStatusActive, rentals[0].Status)
	})

	t.Run("By vehicle", func(t *testing.T) {
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM").
			WithArgs(int32(7)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE vehicle_id = \\$1").
			WithArgs(int32(7), int32(20), int32(0)).
			WillReturnRows(sqlmock.NewRows(rentalRows))

		rentals, count, err := repo.ListByVehicle(ctx, 7, "", 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(0), count)
		assert.Empty(t, rentals)
	})
}
