package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"logistics/internal/core/application/usecases/queries"
)

// OverdueShipmentJob periodically scans for shipments past their estimated
// delivery date that are still pending or in transit, and logs a warning for
// each one so operators can chase the carrier.
type OverdueShipmentJob struct {
	handler queries.ListOverdueShipmentsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueShipmentJob creates a job that checks for overdue shipments
// every minute.
func NewOverdueShipmentJob(handler queries.ListOverdueShipmentsQueryHandler, logger *slog.Logger) *OverdueShipmentJob {
	return &OverdueShipmentJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_shipment_job"),
	}
}

// Start begins the overdue shipment job to run every minute.
func (j *OverdueShipmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewListOverdueShipmentsQuery(time.Now().UTC())
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Overdue shipment job failed to build query", "error", queryErr)
			return
		}

		overdue, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Overdue shipment job failed", "error", handleErr)
			return
		}

		for _, item := range overdue {
			j.logger.WarnContext(ctx, "Shipment is overdue",
				"shipment_id", item.ID.String(),
				"tracking_code", item.TrackingCode,
				"estimated_delivery_date", item.EstimatedDeliveryDate,
				"status", item.Status.String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue shipment job started (running every minute)")
	return nil
}

// Stop stops the overdue shipment job.
func (j *OverdueShipmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue shipment job stopped")
}
