package domain

type VehicleStatus string

const (
	VehicleStatusAvailable     VehicleStatus = "AVAILABLE"
	VehicleStatusRented        VehicleStatus = "RENTED"
	VehicleStatusInMaintenance VehicleStatus = "IN_MAINTENANCE"
	VehicleStatusRetired       VehicleStatus = "RETIRED"
)

type ChargeKind string

const (
	ChargeKindPercentage ChargeKind = "PERCENTAGE"
	ChargeKindFixed      ChargeKind = "FIXED"
)

// ChargeSpec describes a discount or commission. For PERCENTAGE the value is
// a percent of the charge base; for FIXED it is an amount in cents.
type ChargeSpec struct {
	Kind  ChargeKind `json:"kind"`
	Value float64    `json:"value"`
}

// PricingTier is one day-range band of a vehicle's tiered day-rate table.
// Tiers are catalog data and are expected to be ordered and non-overlapping,
// but that is not enforced at runtime; see pricing.ValidateTiers.
type PricingTier struct {
	MinDays          int32 `json:"min_days"`
	MaxDays          int32 `json:"max_days"`
	PricePerDayCents int64 `json:"price_per_day_cents"`
}

type Vehicle struct {
	ID           int32         `json:"id"`
	Brand        string        `json:"brand"`
	Model        string        `json:"model"`
	LicensePlate string        `json:"license_plate"`
	VIN          string        `json:"vin,omitempty"`
	Pricing      []PricingTier `json:"pricing"`
	// Commission is the vehicle's default commission; a rental may carry a
	// custom override.
	Commission ChargeSpec `json:"commission"`
	// ExtraKmRateCents is the catalog per-kilometre overage rate applied at
	// settlement unless the operator overrides it for a single settlement.
	ExtraKmRateCents int64         `json:"extra_km_rate_cents"`
	Status           VehicleStatus `json:"status"`
	CreatedOn        string        `json:"created_on"`
	UpdatedOn        string        `json:"updated_on"`
}
