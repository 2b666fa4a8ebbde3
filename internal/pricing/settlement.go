package pricing

// DefaultFuelFeeCentsPerPct is the fuel fee charged per missing percent of
// fuel at return: 2 cents per percent. Overridable via configuration.
const DefaultFuelFeeCentsPerPct int64 = 2

// SettlementInput carries the handover and return snapshots plus the
// rental's kilometre quota, rates and deposit.
type SettlementInput struct {
	HandoverOdometerKm int32
	HandoverFuelPct    int32
	ReturnOdometerKm   int32
	ReturnFuelPct      int32

	// AllowedKilometers of 0 means the rental had no kilometre quota.
	AllowedKilometers int32

	// KmRateCents is the per-kilometre overage rate: the rental's catalog
	// rate, or the operator's one-off override for this settlement.
	KmRateCents int64

	DepositCents int64

	// FuelFeeCentsPerPct of 0 falls back to DefaultFuelFeeCentsPerPct.
	FuelFeeCentsPerPct int64
}

// SettlementResult is the reconciliation of deposit against kilometre and
// fuel fees. Exactly one of DepositRefundCents and AdditionalChargeCents is
// positive; the other is zero.
type SettlementResult struct {
	KilometersUsed        int32 `json:"kilometers_used"`
	KilometerOverage      int32 `json:"kilometer_overage"`
	KilometerFeeCents     int64 `json:"kilometer_fee_cents"`
	FuelUsedPct           int32 `json:"fuel_used_pct"`
	FuelFeeCents          int64 `json:"fuel_fee_cents"`
	TotalExtraFeesCents   int64 `json:"total_extra_fees_cents"`
	DepositRefundCents    int64 `json:"deposit_refund_cents"`
	AdditionalChargeCents int64 `json:"additional_charge_cents"`
}

// ComputeSettlement reconciles the security deposit against kilometres driven
// and fuel consumed. Pure function; it is recomputed on every input change
// during the return workflow and persisted only once, at finalize.
//
// Data-entry anomalies (return odometer below handover, return fuel above
// handover) clamp to zero usage instead of producing negative fees or
// credits.
func ComputeSettlement(in SettlementInput) SettlementResult {
	var res SettlementResult

	res.KilometersUsed = clampKm(in.ReturnOdometerKm - in.HandoverOdometerKm)
	if in.AllowedKilometers > 0 {
		res.KilometerOverage = clampKm(res.KilometersUsed - in.AllowedKilometers)
	}
	res.KilometerFeeCents = int64(res.KilometerOverage) * clampCents(in.KmRateCents)

	res.FuelUsedPct = clampKm(in.HandoverFuelPct - in.ReturnFuelPct)
	fuelRate := in.FuelFeeCentsPerPct
	if fuelRate <= 0 {
		fuelRate = DefaultFuelFeeCentsPerPct
	}
	res.FuelFeeCents = int64(res.FuelUsedPct) * fuelRate

	res.TotalExtraFeesCents = res.KilometerFeeCents + res.FuelFeeCents

	deposit := clampCents(in.DepositCents)
	res.DepositRefundCents = clampCents(deposit - res.TotalExtraFeesCents)
	res.AdditionalChargeCents = clampCents(res.TotalExtraFeesCents - deposit)
	return res
}

func clampKm(v int32) int32 {
	if v < 0 {
		return 0
	}
	return v
}
