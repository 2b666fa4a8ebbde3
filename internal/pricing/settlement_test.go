package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// returnAfter450Km is the shared settlement fixture: 400 km allowed, 450 km
// driven, €0.50/km overage rate, 20% of the tank consumed, €200 deposit.
func returnAfter450Km() SettlementInput {
	return SettlementInput{
		HandoverOdometerKm: 10000,
		ReturnOdometerKm:   10450,
		HandoverFuelPct:    100,
		ReturnFuelPct:      80,
		AllowedKilometers:  400,
		KmRateCents:        50,
		DepositCents:       20000,
	}
}

func TestComputeSettlement(t *testing.T) {
	t.Run("Overage and fuel fees deducted from deposit", func(t *testing.T) {
		// 50 km over at €0.50 = €25.00, 20% fuel at €0.02 = €0.40,
		// €200 deposit - €25.40 fees = €174.60 refund.
		res := ComputeSettlement(returnAfter450Km())
		assert.Equal(t, int32(450), res.KilometersUsed)
		assert.Equal(t, int32(50), res.KilometerOverage)
		assert.Equal(t, int64(2500), res.KilometerFeeCents)
		assert.Equal(t, int32(20), res.FuelUsedPct)
		assert.Equal(t, int64(40), res.FuelFeeCents)
		assert.Equal(t, int64(2540), res.TotalExtraFeesCents)
		assert.Equal(t, int64(17460), res.DepositRefundCents)
		assert.Equal(t, int64(0), res.AdditionalChargeCents)
	})

	t.Run("Operator-overridden rate doubles the kilometre fee", func(t *testing.T) {
		in := returnAfter450Km()
		in.KmRateCents = 100
		res := ComputeSettlement(in)
		assert.Equal(t, int64(5000), res.KilometerFeeCents)
		assert.Equal(t, int64(5040), res.TotalExtraFeesCents)
		assert.Equal(t, int64(14960), res.DepositRefundCents)
	})

	t.Run("Fees above deposit become an additional charge", func(t *testing.T) {
		in := returnAfter450Km()
		in.DepositCents = 2000
		res := ComputeSettlement(in)
		assert.Equal(t, int64(0), res.DepositRefundCents)
		assert.Equal(t, int64(540), res.AdditionalChargeCents)
	})

	t.Run("Unlimited kilometres never produce an overage", func(t *testing.T) {
		in := returnAfter450Km()
		in.AllowedKilometers = 0
		res := ComputeSettlement(in)
		assert.Equal(t, int32(450), res.KilometersUsed)
		assert.Equal(t, int32(0), res.KilometerOverage)
		assert.Equal(t, int64(0), res.KilometerFeeCents)
	})

	t.Run("Within the quota there is no kilometre fee", func(t *testing.T) {
		in := returnAfter450Km()
		in.ReturnOdometerKm = 10300
		res := ComputeSettlement(in)
		assert.Equal(t, int32(300), res.KilometersUsed)
		assert.Equal(t, int32(0), res.KilometerOverage)
		assert.Equal(t, int64(0), res.KilometerFeeCents)
	})

	t.Run("Return odometer below handover clamps usage to zero", func(t *testing.T) {
		// Data-entry error; settlement must not turn it into a negative fee.
		in := returnAfter450Km()
		in.ReturnOdometerKm = 9800
		res := ComputeSettlement(in)
		assert.Equal(t, int32(0), res.KilometersUsed)
		assert.Equal(t, int64(0), res.KilometerFeeCents)
	})

	t.Run("Refueling beyond handover level is not a credit", func(t *testing.T) {
		in := returnAfter450Km()
		in.HandoverFuelPct = 80
		in.ReturnFuelPct = 100
		res := ComputeSettlement(in)
		assert.Equal(t, int32(0), res.FuelUsedPct)
		assert.Equal(t, int64(0), res.FuelFeeCents)
	})

	t.Run("Zero fuel rate falls back to the default", func(t *testing.T) {
		in := returnAfter450Km()
		in.FuelFeeCentsPerPct = 0
		res := ComputeSettlement(in)
		assert.Equal(t, int64(20*DefaultFuelFeeCentsPerPct), res.FuelFeeCents)
	})

	t.Run("Configured fuel rate replaces the default", func(t *testing.T) {
		in := returnAfter450Km()
		in.FuelFeeCentsPerPct = 5
		res := ComputeSettlement(in)
		assert.Equal(t, int64(100), res.FuelFeeCents)
	})

	t.Run("Negative deposit and rate clamp to zero", func(t *testing.T) {
		in := returnAfter450Km()
		in.DepositCents = -100
		in.KmRateCents = -50
		res := ComputeSettlement(in)
		assert.Equal(t, int64(0), res.KilometerFeeCents)
		assert.Equal(t, int64(0), res.DepositRefundCents)
		assert.Equal(t, res.FuelFeeCents, res.AdditionalChargeCents)
	})
}

func TestComputeSettlement_Idempotent(t *testing.T) {
	in := returnAfter450Km()
	first := ComputeSettlement(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputeSettlement(in))
	}
}

func TestComputeSettlement_RefundAndChargeExclusive(t *testing.T) {
	// Exactly one of refund and additional charge absorbs the gap between
	// deposit and fees; they are never both positive.
	for _, deposit := range []int64{0, 500, 2540, 2541, 20000} {
		in := returnAfter450Km()
		in.DepositCents = deposit

		res := ComputeSettlement(in)
		assert.GreaterOrEqual(t, res.DepositRefundCents, int64(0))
		assert.GreaterOrEqual(t, res.AdditionalChargeCents, int64(0))
		if res.DepositRefundCents > 0 {
			assert.Equal(t, int64(0), res.AdditionalChargeCents)
		}
		if res.AdditionalChargeCents > 0 {
			assert.Equal(t, int64(0), res.DepositRefundCents)
		}
		assert.Equal(t, res.TotalExtraFeesCents-deposit, res.AdditionalChargeCents-res.DepositRefundCents)
	}
}
