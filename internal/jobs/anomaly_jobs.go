package jobs

import (
	"context"

	"rental-backoffice/internal/logger"
)

// ScanOdometerAnomalies finds finalized returns whose odometer reading is
// below the matching handover reading. Settlement clamps such usage to zero,
// so these rows are the ones where the charged kilometre fee may be wrong and
// an operator should re-check the protocol.
func (jr *JobRunner) ScanOdometerAnomalies() {
	jr.runWithRecovery("ScanOdometerAnomalies", func() {
		ctx := context.Background()

		query := `
			SELECT rp.rental_id, rp.id, hp.odometer_km, rp.odometer_km
			FROM return_protocols rp
			JOIN handover_protocols hp ON hp.id = rp.handover_protocol_id
			WHERE rp.odometer_km < hp.odometer_km
		`

		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("Failed to scan for odometer anomalies", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var rentalID int32
			var protocolID string
			var handoverKm, returnKm int32
			if err := rows.Scan(&rentalID, &protocolID, &handoverKm, &returnKm); err != nil {
				logger.Error("Failed to scan odometer anomaly row", "error", err)
				continue
			}
			count++
			logger.DataQualityAnomaly("ODOMETER_BELOW_HANDOVER", "Finalized return has odometer below handover reading",
				"rental_id", rentalID,
				"return_protocol_id", protocolID,
				"handover_km", handoverKm,
				"return_km", returnKm)
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating odometer anomalies", "error", err)
			return
		}

		logger.Info("Odometer anomaly scan finished", "anomalies", count)
	})
}
