package utils

import (
	"fmt"
	"log"
	"time"

	"techclass/database"
	certModels "techclass/models/certificate"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[STATS-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// logDailyCertificateStats logs yesterday's issuance and download activity
func logDailyCertificateStats() {
	db := database.Database.Db

	yesterday := now.With(time.Now().AddDate(0, 0, -1))
	start := yesterday.BeginningOfDay()
	end := yesterday.EndOfDay()

	var issued int64
	if err := db.Model(&certModels.Certificate{}).
		Where("created_at BETWEEN ? AND ?", start, end).
		Count(&issued).Error; err != nil {
		logScheduler("Error counting issued certificates: " + err.Error())
		return
	}

	var downloaded int64
	if err := db.Model(&certModels.Certificate{}).
		Where("downloaded_at BETWEEN ? AND ?", start, end).
		Count(&downloaded).Error; err != nil {
		logScheduler("Error counting downloaded certificates: " + err.Error())
		return
	}

	var active int64
	if err := db.Model(&certModels.Certificate{}).
		Where("is_active = ?", true).
		Count(&active).Error; err != nil {
		logScheduler("Error counting active certificates: " + err.Error())
		return
	}

	logScheduler(fmt.Sprintf("Daily summary: issued=%d downloaded=%d active_total=%d", issued, downloaded, active))
}

// StartStatsScheduler runs the daily certificate stats job shortly after
// midnight. Returns the cron so main can stop it on shutdown.
func StartStatsScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("5 0 * * *", logDailyCertificateStats); err != nil {
		log.Fatalf("Failed to schedule daily stats job: %v", err)
	}

	c.Start()
	logScheduler("Daily certificate stats job scheduled (00:05)")
	return c
}
