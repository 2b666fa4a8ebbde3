package jobs

import (
	"context"

	"rental-backoffice/internal/logger"
	"rental-backoffice/internal/pricing"
)

// AuditVehiclePricing walks the vehicle catalog and reports tier tables with
// inverted ranges, negative rates, overlaps or gaps. Issues are logged only;
// a broken tier table still prices affected day counts at zero until fixed.
func (jr *JobRunner) AuditVehiclePricing() {
	jr.runWithRecovery("AuditVehiclePricing", func() {
		ctx := context.Background()

		const pageSize = 100
		page := int32(1)
		audited := 0
		flagged := 0

		for {
			vehicles, total, err := jr.store.VehicleRepository.List(ctx, page, pageSize)
			if err != nil {
				logger.Error("Failed to list vehicles for pricing audit", "error", err)
				return
			}

			for _, vehicle := range vehicles {
				audited++
				issues := pricing.ValidateTiers(vehicle.Pricing)
				if len(issues) == 0 {
					continue
				}
				flagged++
				for _, issue := range issues {
					logger.DataQualityAnomaly(issue.Kind, issue.Message,
						"vehicle_id", vehicle.ID,
						"brand", vehicle.Brand,
						"model", vehicle.Model)
				}
			}

			if int32(audited) >= total || len(vehicles) == 0 {
				break
			}
			page++
		}

		logger.Info("Vehicle pricing audit finished", "audited", audited, "flagged", flagged)
	})
}
