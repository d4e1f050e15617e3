// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"salonbook-backend/models"
	"salonbook-backend/scheduling"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.SendDailyReminders(time.Now())
	})

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendDailyReminders messages every customer with an appointment
// tomorrow that is still pending or confirmed.
func (s *ReminderService) SendDailyReminders(now time.Time) {
	log.Println("Starting daily reminder processing...")

	start, end := scheduling.DayRange(now.AddDate(0, 0, 1))

	var appointments []models.Appointment
	if err := s.db.Preload("User").Preload("Services").
		Where("date BETWEEN ? AND ? AND status IN ?", start, end,
			[]models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}).
		Find(&appointments).Error; err != nil {
		log.Printf("Failed to fetch tomorrow's appointments: %v", err)
		return
	}

	for i := range appointments {
		s.sendReminder(&appointments[i])
	}

	log.Println("Daily reminder processing completed")
}

func (s *ReminderService) sendReminder(appointment *models.Appointment) {
	if appointment.User.Phone == "" {
		log.Printf("Appointment %d: customer has no phone, skipping", appointment.ID)
		return
	}

	// Skip if a reminder for this appointment was already logged as sent
	var count int64
	s.db.Model(&models.ReminderLog{}).
		Where("appointment_id = ? AND status = ?", appointment.ID, "sent").
		Count(&count)
	if count > 0 {
		return
	}

	names := make([]string, 0, len(appointment.Services))
	for _, svc := range appointment.Services {
		names = append(names, svc.Name)
	}

	message := fmt.Sprintf(
		"Hi %s, a reminder of your appointment tomorrow at %s: %s. Total: %.2f (%d min).",
		appointment.User.Name,
		appointment.Date.Format("15:04"),
		strings.Join(names, ", "),
		appointment.TotalPrice(),
		appointment.TotalDurationMinutes(),
	)

	// WhatsApp when the phone is in E.164 format, SMS otherwise
	channel := "sms"
	to := appointment.User.Phone
	if strings.HasPrefix(to, "+") {
		to = "whatsapp:" + to
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)
	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent for appointment %d, SID: %s", appointment.ID, *resp.Sid)
	} else {
		log.Printf("Reminder sent for appointment %d, but no SID returned", appointment.ID)
	}

	reminderLog := models.ReminderLog{
		AppointmentID: appointment.ID,
		UserID:        appointment.UserID,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		Channel:       channel,
		SentAt:        time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for appointment %d: %v", appointment.ID, err)
	}
}
