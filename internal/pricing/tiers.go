package pricing

import (
	"fmt"
	"sort"

	"rental-backoffice/internal/domain"
)

// TierIssue describes one data-quality problem in a vehicle's tier table.
type TierIssue struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

const (
	TierIssueInvertedRange = "INVERTED_RANGE"
	TierIssueNegativeRate  = "NEGATIVE_RATE"
	TierIssueOverlap       = "OVERLAP"
	TierIssueGap           = "GAP"
)

// ValidateTiers checks a tier table for inverted ranges, negative rates,
// overlapping bands and coverage gaps. Issues are catalog data-quality
// problems, not runtime faults: a rental whose duration falls into a gap
// silently prices to zero, so gaps are worth surfacing to the operator when
// the catalog is written.
func ValidateTiers(tiers []domain.PricingTier) []TierIssue {
	var issues []TierIssue

	for _, t := range tiers {
		if t.MinDays > t.MaxDays {
			issues = append(issues, TierIssue{
				Kind:    TierIssueInvertedRange,
				Message: fmt.Sprintf("tier %d-%d days: min exceeds max", t.MinDays, t.MaxDays),
			})
		}
		if t.PricePerDayCents < 0 {
			issues = append(issues, TierIssue{
				Kind:    TierIssueNegativeRate,
				Message: fmt.Sprintf("tier %d-%d days: negative day rate %d", t.MinDays, t.MaxDays, t.PricePerDayCents),
			})
		}
	}

	if len(tiers) < 2 {
		return issues
	}

	ordered := make([]domain.PricingTier, len(tiers))
	copy(ordered, tiers)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].MinDays != ordered[j].MinDays {
			return ordered[i].MinDays < ordered[j].MinDays
		}
		return ordered[i].MaxDays < ordered[j].MaxDays
	})

	for i := 1; i < len(ordered); i++ {
		prev, cur := ordered[i-1], ordered[i]
		if prev.MinDays > prev.MaxDays || cur.MinDays > cur.MaxDays {
			continue // inverted ranges already reported
		}
		switch {
		case cur.MinDays <= prev.MaxDays:
			issues = append(issues, TierIssue{
				Kind:    TierIssueOverlap,
				Message: fmt.Sprintf("tiers %d-%d and %d-%d days overlap", prev.MinDays, prev.MaxDays, cur.MinDays, cur.MaxDays),
			})
		case cur.MinDays > prev.MaxDays+1:
			issues = append(issues, TierIssue{
				Kind:    TierIssueGap,
				Message: fmt.Sprintf("no tier covers %d-%d days", prev.MaxDays+1, cur.MinDays-1),
			})
		}
	}
	return issues
}
