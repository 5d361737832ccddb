package utils

import (
	"log"
	"time"

	"github.com/harshrjgithub/YouTube-LMS/database"

	"github.com/robfig/cron/v3"
)

// logScheduler logs maintenance events with timestamp
func logScheduler(message string) {
	log.Printf("[MAINTENANCE %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartMaintenanceScheduler re-runs the enrollment cleanup nightly. The
// same pass already ran once at boot; this sweeps references that went
// stale while the server was up.
func StartMaintenanceScheduler() *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("0 3 * * *", func() {
		logScheduler("Running nightly enrollment cleanup")
		if err := database.CleanupDanglingEnrollments(database.Database.Db); err != nil {
			logScheduler("Enrollment cleanup failed: " + err.Error())
			return
		}
		logScheduler("Nightly enrollment cleanup finished")
	})
	if err != nil {
		log.Printf("Failed to schedule maintenance job: %v", err)
		return c
	}

	c.Start()
	logScheduler("Maintenance scheduler started")
	return c
}
