// controllers/reminder.go
package controllers

import (
	"net/http"
	"time"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/services"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReminderController exposes the reminder log and a manual trigger
type ReminderController struct {
	Service *services.ReminderService
}

// GetReminderLogs lists outbound reminders, newest first
func (rc *ReminderController) GetReminderLogs(c *gin.Context) {
	var logs []models.ReminderLog
	if err := config.DB.Order("sent_at desc").Limit(200).Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reminder logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}

// RunReminders triggers the daily reminder pass outside the schedule
func (rc *ReminderController) RunReminders(c *gin.Context) {
	go rc.Service.SendDailyReminders(time.Now())
	c.JSON(http.StatusAccepted, gin.H{"message": "Reminder run started"})
}
