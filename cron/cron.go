package cron

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/agendafacil/backend/db"
	"github.com/agendafacil/backend/models"
	"github.com/agendafacil/backend/scheduler"
)

// StartCronJobs starts the maintenance scheduler. Every ten minutes confirmed
// appointments whose end time has passed are moved to COMPLETED, going
// through the engine so status changes follow the same serialized path as
// bookings.
func StartCronJobs(engine *scheduler.Engine) {
	c := cron.New()
	_, err := c.AddFunc("*/10 * * * *", func() { completePastAppointments(engine) })
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment completion sweep")
}

func completePastAppointments(engine *scheduler.Engine) {
	var appointments []models.Appointment
	err := db.DB.
		Where("status = ? AND end_time < ?", models.StatusConfirmed, time.Now()).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for completion sweep: %v", err)
		return
	}

	completed := models.StatusCompleted
	for _, appointment := range appointments {
		_, err := engine.UpdateBooking(context.Background(), appointment.ID, scheduler.UpdateBookingInput{
			Status: &completed,
		})
		if err != nil {
			log.Printf("Failed to complete appointment %s: %v", appointment.ID, err)
			continue
		}
		log.Printf("Marked appointment %s as completed", appointment.ID)
	}
}
