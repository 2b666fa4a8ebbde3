package domain

type RentalStatus string

const (
	RentalStatusDraft     RentalStatus = "DRAFT"
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusFinished  RentalStatus = "FINISHED"
	RentalStatusCancelled RentalStatus = "CANCELLED"
)

type Rental struct {
	ID           int32  `json:"id"`
	OrderNumber  string `json:"order_number"`
	VehicleID    int32  `json:"vehicle_id"`
	CustomerID   int32  `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`

	Discount         *ChargeSpec `json:"discount,omitempty"`
	CustomCommission *ChargeSpec `json:"custom_commission,omitempty"`

	// ExtraKmChargeCents is a booking-time surcharge added on top of the
	// discounted price (e.g. a pre-purchased kilometre package).
	ExtraKmChargeCents int64 `json:"extra_km_charge_cents"`

	// DailyKilometers drives AllowedKilometers: allowed = daily × rental days.
	// AllowedKilometers of 0 means unlimited.
	DailyKilometers   int32 `json:"daily_kilometers"`
	AllowedKilometers int32 `json:"allowed_kilometers"`

	// ExtraKmRateCents is the per-kilometre overage rate snapshotted from the
	// vehicle catalog when the rental is created.
	ExtraKmRateCents int64 `json:"extra_km_rate_cents"`
	DepositCents     int64 `json:"deposit_cents"`

	// Flexible rentals have an open or estimated end date and are priced via
	// ManualPriceCents instead of the tier table.
	IsFlexible       bool   `json:"is_flexible"`
	ManualPriceCents *int64 `json:"manual_price_cents,omitempty"`

	// Pricing snapshot fields. Once persisted they are authoritative: a
	// re-opened rental keeps these values until the operator edits a
	// price-relevant field, even if the vehicle's tier table has since
	// changed in the catalog.
	BasePriceCents       int64 `json:"base_price_cents"`
	DiscountedPriceCents int64 `json:"discounted_price_cents"`
	TotalPriceCents      int64 `json:"total_price_cents"`
	CommissionCents      int64 `json:"commission_cents"`

	Paid          bool         `json:"paid"`
	HandoverPlace string       `json:"handover_place"`
	Status        RentalStatus `json:"status"`
	CreatedOn     string       `json:"created_on"`
	UpdatedOn     string       `json:"updated_on"`
}
