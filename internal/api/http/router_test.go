package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rental-backoffice/internal/pricing"
	"rental-backoffice/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter() (*MockVehicleService, *MockRentalService, *MockProtocolService, http.Handler) {
	vehicles := new(MockVehicleService)
	rentals := new(MockRentalService)
	protocols := new(MockProtocolService)
	return vehicles, rentals, protocols, NewRouter(vehicles, rentals, protocols)
}

func TestRouter_Quote(t *testing.T) {
	t.Run("Returns the computed quote", func(t *testing.T) {
		_, rentals, _, router := newTestRouter()
		rentals.On("QuotePricing", mock.Anything, mock.Anything).Return(pricing.PricingResult{
			Days:                 4,
			BasePriceCents:       16000,
			DiscountedPriceCents: 14400,
			TotalPriceCents:      16400,
			CommissionCents:      3280,
		}, nil)

		body := `{"vehicle_id": 7, "start_date": "2024-05-06", "end_date": "2024-05-10", "discount": {"kind": "PERCENTAGE", "value": 10}, "extra_km_charge_cents": 2000}`
		req := httptest.NewRequest("POST", "/api/v1/rentals/quote", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var result pricing.PricingResult
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, int64(16400), result.TotalPriceCents)
		assert.Equal(t, int64(3280), result.CommissionCents)
	})

	t.Run("Rejects a malformed date", func(t *testing.T) {
		_, rentals, _, router := newTestRouter()

		body := `{"vehicle_id": 7, "start_date": "06.05.2024"}`
		req := httptest.NewRequest("POST", "/api/v1/rentals/quote", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		rentals.AssertNotCalled(t, "QuotePricing", mock.Anything, mock.Anything)
	})

	t.Run("Rejects a missing vehicle id", func(t *testing.T) {
		_, rentals, _, router := newTestRouter()

		body := `{"start_date": "2024-05-06"}`
		req := httptest.NewRequest("POST", "/api/v1/rentals/quote", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		rentals.AssertNotCalled(t, "QuotePricing", mock.Anything, mock.Anything)
	})
}

func TestRouter_SettlementPreview(t *testing.T) {
	t.Run("Passes the rate override through", func(t *testing.T) {
		_, _, protocols, router := newTestRouter()
		protocols.On("PreviewSettlement", mock.Anything, int32(42), mock.MatchedBy(func(draft service.ReturnDraft) bool {
			return draft.OverrideKmRateCents != nil && *draft.OverrideKmRateCents == 100
		})).Return(pricing.SettlementResult{
			KilometersUsed:      450,
			KilometerOverage:    50,
			KilometerFeeCents:   5000,
			FuelUsedPct:         20,
			FuelFeeCents:        40,
			TotalExtraFeesCents: 5040,
			DepositRefundCents:  14960,
		}, nil)

		body := `{"condition": {"odometer_km": 10450, "fuel_level_pct": 80}, "override_km_rate_cents": 100}`
		req := httptest.NewRequest("POST", "/api/v1/rentals/42/settlement/preview", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var result pricing.SettlementResult
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, int64(5000), result.KilometerFeeCents)
		assert.Equal(t, int64(14960), result.DepositRefundCents)
	})

	t.Run("Rejects a fuel level above 100", func(t *testing.T) {
		_, _, protocols, router := newTestRouter()

		body := `{"condition": {"odometer_km": 10450, "fuel_level_pct": 120}}`
		req := httptest.NewRequest("POST", "/api/v1/rentals/42/settlement/preview", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		protocols.AssertNotCalled(t, "PreviewSettlement", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRouter_Health(t *testing.T) {
	_, _, _, router := newTestRouter()

	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
