package pricing

// GateState tells whether a rental's stored price snapshot may be
// overwritten by recomputation.
type GateState string

const (
	// GatePreserving protects a loaded snapshot: recomputation is skipped so
	// a historical price survives catalog changes made after it was saved.
	GatePreserving GateState = "PRESERVING"
	// GateLive recomputes the snapshot on every dependency change.
	GateLive GateState = "LIVE"
)

// RecalculationGate decides, per editing session, whether price recomputation
// is allowed to replace the stored pricing snapshot. A gate belongs to one
// rental's editing session and is never shared.
//
// New drafts start Live. Stored rentals start Preserving and flip to Live on
// the first operator edit of a price-relevant field; there is no way back to
// Preserving within a session.
type RecalculationGate struct {
	state GateState
}

// NewGate returns a gate for a fresh draft, recomputing from the start.
func NewGate() *RecalculationGate {
	return &RecalculationGate{state: GateLive}
}

// NewGateForStored returns a gate protecting a rental loaded from storage.
func NewGateForStored() *RecalculationGate {
	return &RecalculationGate{state: GatePreserving}
}

func (g *RecalculationGate) State() GateState {
	return g.state
}

// MarkEdited records an operator edit to a price-relevant field (vehicle,
// dates, discount, custom commission). Loading a record is not an edit.
func (g *RecalculationGate) MarkEdited() {
	g.state = GateLive
}

// ShouldRecalculate reports whether recomputation may overwrite the snapshot.
func (g *RecalculationGate) ShouldRecalculate() bool {
	return g.state == GateLive
}

// Apply returns the pricing snapshot the session should display: the stored
// snapshot while the gate is preserving, a fresh computation once it is live.
func (g *RecalculationGate) Apply(stored PricingResult, in PricingInput) PricingResult {
	if g.state == GatePreserving {
		return stored
	}
	return ComputePricing(in)
}
