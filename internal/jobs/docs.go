// Package jobs provides scheduled background tasks for the logistics system.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(listOverdueHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// OverdueShipmentJob runs every minute and logs a warning for every shipment
// past its estimated delivery date that is still pending or in transit.
package jobs
