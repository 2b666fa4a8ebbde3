package pricing

import (
	"math"
	"time"

	"rental-backoffice/internal/domain"
)

// PricingInput carries everything needed to price a rental. All monetary
// amounts are integer cents.
type PricingInput struct {
	Tiers     []domain.PricingTier
	StartDate time.Time
	EndDate   time.Time

	Discount         *domain.ChargeSpec
	CustomCommission *domain.ChargeSpec
	// DefaultCommission is the vehicle's catalog commission, used whenever
	// CustomCommission is absent or has a zero value.
	DefaultCommission domain.ChargeSpec

	ExtraKmChargeCents int64

	// ManualPriceCents, when set, replaces the computed total price (flexible
	// rentals with an open end date). Commission is still derived from it.
	ManualPriceCents *int64
}

// PricingResult is the derived price snapshot for a rental.
type PricingResult struct {
	Days                 int32 `json:"days"`
	BasePriceCents       int64 `json:"base_price_cents"`
	DiscountedPriceCents int64 `json:"discounted_price_cents"`
	TotalPriceCents      int64 `json:"total_price_cents"`
	CommissionCents      int64 `json:"commission_cents"`
}

// ComputePricing derives a rental's price, discount and commission from the
// vehicle's tier table and the rental's date range. It is a pure function:
// identical inputs always produce identical results.
//
// A duration with no matching tier yields an all-zero result rather than an
// error. The engine feeds a live-editing form, so a half-filled or
// non-covering catalog must still resolve to a displayable number; callers
// that want to warn the operator can check for a zero base price.
func ComputePricing(in PricingInput) PricingResult {
	days := RentalDays(in.StartDate, in.EndDate)
	res := PricingResult{Days: days}

	if in.ManualPriceCents != nil {
		// Flexible rental: the operator's price stands in for the whole
		// tier/discount computation, commission is still derived from it.
		manual := clampCents(*in.ManualPriceCents)
		res.DiscountedPriceCents = manual
		res.TotalPriceCents = manual
		res.CommissionCents = applyCharge(commissionSpec(in), manual)
		return res
	}

	tier, ok := findTier(in.Tiers, days)
	if !ok {
		return res
	}

	res.BasePriceCents = int64(days) * clampCents(tier.PricePerDayCents)
	res.DiscountedPriceCents = res.BasePriceCents
	if in.Discount != nil && in.Discount.Value > 0 {
		discount := applyCharge(*in.Discount, res.BasePriceCents)
		res.DiscountedPriceCents = clampCents(res.BasePriceCents - discount)
	}

	res.TotalPriceCents = res.DiscountedPriceCents + clampCents(in.ExtraKmChargeCents)

	// Commission is always based on the total price, post-discount and
	// post-extra-km, never on the base price.
	res.CommissionCents = applyCharge(commissionSpec(in), res.TotalPriceCents)
	return res
}

func findTier(tiers []domain.PricingTier, days int32) (domain.PricingTier, bool) {
	for _, t := range tiers {
		if days >= t.MinDays && days <= t.MaxDays {
			return t, true
		}
	}
	return domain.PricingTier{}, false
}

func commissionSpec(in PricingInput) domain.ChargeSpec {
	if in.CustomCommission != nil && in.CustomCommission.Value > 0 {
		return *in.CustomCommission
	}
	return in.DefaultCommission
}

// applyCharge resolves a percentage or fixed charge against a base amount in
// cents. Percentage results are rounded half away from zero; negative or
// non-finite values clamp to zero.
func applyCharge(spec domain.ChargeSpec, baseCents int64) int64 {
	value := spec.Value
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		value = 0
	}
	if spec.Kind == domain.ChargeKindPercentage {
		return int64(math.Round(float64(baseCents) * value / 100))
	}
	return int64(math.Round(value))
}

func clampCents(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
