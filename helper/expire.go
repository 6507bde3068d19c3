package helper

import (
	"log"

	"resort_manager/database"
	"resort_manager/model"
	"resort_manager/utils"

	"github.com/robfig/cron/v3"
)

var scheduler *cron.Cron

// StartBookingExpiryScheduler releases stale reservations: an unconfirmed
// booking whose check-in date has passed is deleted so the range opens again.
func StartBookingExpiryScheduler() {
	scheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := scheduler.AddFunc("*/30 * * * *", releaseExpiredBookings)
	if err != nil {
		log.Printf("failed to start booking expiry scheduler: %v", err)
		return
	}

	scheduler.Start()
	log.Println("booking expiry scheduler started (every 30 minutes)")
}

func releaseExpiredBookings() {
	today := utils.Today()
	result := database.DB.
		Where("is_confirmed = ? AND check_in < ?", false, today).
		Delete(&model.Booking{})

	if result.Error != nil {
		log.Printf("failed to release expired bookings: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("released %d expired unconfirmed bookings", result.RowsAffected)
	}
}

func StopBookingExpiryScheduler() {
	if scheduler != nil {
		scheduler.Stop()
		log.Println("booking expiry scheduler stopped")
	}
}
