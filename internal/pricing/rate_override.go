package pricing

// RateOverrideState tells which per-kilometre rate a settlement session uses.
type RateOverrideState string

const (
	RateCatalog    RateOverrideState = "CATALOG"
	RateOverridden RateOverrideState = "OVERRIDDEN"
)

// KmRateOverride holds the per-kilometre overage rate for one settlement
// session. The operator may replace the rental's catalog rate for this
// settlement only; the catalog rate itself is never mutated.
//
// BeginEdit moves the session onto the override rate (seeded with the catalog
// value), Confirm commits a custom rate for the rest of the session, and
// Cancel discards the override and falls back to the catalog rate.
type KmRateOverride struct {
	catalogCents int64
	customCents  int64
	state        RateOverrideState
}

func NewKmRateOverride(catalogRateCents int64) *KmRateOverride {
	return &KmRateOverride{
		catalogCents: clampCents(catalogRateCents),
		state:        RateCatalog,
	}
}

func (o *KmRateOverride) State() RateOverrideState {
	return o.state
}

// BeginEdit starts an override, seeding the custom rate with the catalog
// rate. Calling it while already overridden keeps the committed custom rate.
func (o *KmRateOverride) BeginEdit() {
	if o.state == RateCatalog {
		o.customCents = o.catalogCents
	}
	o.state = RateOverridden
}

// Confirm commits a custom rate; the session stays overridden.
func (o *KmRateOverride) Confirm(rateCents int64) {
	o.customCents = clampCents(rateCents)
	o.state = RateOverridden
}

// Cancel discards the custom rate and returns to the catalog rate.
func (o *KmRateOverride) Cancel() {
	o.customCents = 0
	o.state = RateCatalog
}

// Overridden reports whether the session uses a custom rate.
func (o *KmRateOverride) Overridden() bool {
	return o.state == RateOverridden
}

// EffectiveRateCents is the rate the settlement computation should use.
func (o *KmRateOverride) EffectiveRateCents() int64 {
	if o.state == RateOverridden {
		return o.customCents
	}
	return o.catalogCents
}
