// controllers/appointment.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/scheduling"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateAppointmentInput defines the expected JSON structure for booking
type CreateAppointmentInput struct {
	Date       time.Time `json:"date" binding:"required"`
	ServiceIDs []uint    `json:"service_ids" binding:"required"`
	// Force skips the same-week merge suggestion; set when the customer
	// already rejected it.
	Force bool `json:"force"`
}

// UpdateAppointmentInput defines the expected JSON structure for rescheduling
type UpdateAppointmentInput struct {
	Date       *time.Time `json:"date"`
	ServiceIDs []uint     `json:"service_ids"`
}

// MergeAppointmentInput carries the services to fold into an existing appointment
type MergeAppointmentInput struct {
	ServiceIDs []uint `json:"service_ids" binding:"required"`
}

// resolveServices loads catalog rows for the requested ids, preserving
// request multiplicity: asking for the same service twice books it twice.
func resolveServices(ids []uint) ([]models.Service, error) {
	if len(ids) == 0 {
		return nil, models.ErrAppointmentNoServices
	}

	var rows []models.Service
	if err := config.DB.Where("id IN ? AND is_active = ?", ids, true).Find(&rows).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Service, len(rows))
	for _, s := range rows {
		byID[s.ID] = s
	}

	services := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok {
			return nil, errors.New("unknown or inactive service")
		}
		services = append(services, s)
	}
	return services, nil
}

// CreateAppointment books an appointment. When the customer already has a
// non-canceled appointment in the same week, the existing one is returned
// as a merge suggestion instead and nothing is created; the client either
// merges into it or retries with force set.
func CreateAppointment(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Date.Before(time.Now()) {
		utils.RespondWithError(c, http.StatusBadRequest, "Appointment date cannot be in the past")
		return
	}

	services, err := resolveServices(input.ServiceIDs)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	// Existing appointments in the requested week decide merge vs create
	weekStart, weekEnd := scheduling.WeekRange(input.Date)
	var existing []models.Appointment
	if err := config.DB.Preload("Services").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, weekStart, weekEnd).
		Find(&existing).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	decision, err := scheduling.Resolve(existing, input.Date, services)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if decision.Action == scheduling.ActionMerge && !input.Force {
		c.JSON(http.StatusOK, gin.H{
			"suggestion": decision.Target,
			"services":   decision.Services,
		})
		return
	}

	appointment := models.Appointment{
		UserID:   userID.(uint),
		Services: decision.Services,
		Date:     decision.Date,
		Status:   models.StatusPending,
	}

	if err := config.DB.Create(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	config.DB.Preload("Services").Preload("User").First(&appointment, appointment.ID)
	c.JSON(http.StatusCreated, gin.H{"appointment": appointment})
}

// GetAppointments lists the caller's appointments, admins see everyone's.
// Supports period filtering via query params (period, start, end).
func GetAppointments(c *gin.Context) {
	userID, _ := c.Get("userId")
	role, _ := c.Get("role")

	query := config.DB.Preload("Services").Preload("User").Order("date")
	if role != string(models.RoleAdmin) {
		query = query.Where("user_id = ?", userID)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	appointments = filterFromQuery(c, appointments)

	if status := c.Query("status"); status != "" {
		matched := make([]models.Appointment, 0, len(appointments))
		for _, ap := range appointments {
			if ap.Status == models.AppointmentStatus(status) {
				matched = append(matched, ap)
			}
		}
		appointments = matched
	}

	c.JSON(http.StatusOK, appointments)
}

// filterFromQuery applies the reporting-period query params to a list
func filterFromQuery(c *gin.Context, appointments []models.Appointment) []models.Appointment {
	period := scheduling.Period(c.DefaultQuery("period", string(scheduling.PeriodAll)))

	var customStart, customEnd *time.Time
	if v := c.Query("start"); v != "" {
		if parsed, err := time.Parse("2006-01-02", v); err == nil {
			customStart = &parsed
		}
	}
	if v := c.Query("end"); v != "" {
		if parsed, err := time.Parse("2006-01-02", v); err == nil {
			customEnd = &parsed
		}
	}

	return scheduling.FilterByPeriod(appointments, period, time.Now(), customStart, customEnd)
}

func findOwnedAppointment(c *gin.Context) (*models.Appointment, bool) {
	userID, _ := c.Get("userId")
	role, _ := c.Get("role")

	var appointment models.Appointment
	if err := config.DB.Preload("Services").First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}

	if role != string(models.RoleAdmin) && appointment.UserID != userID.(uint) {
		utils.RespondWithError(c, http.StatusForbidden, "You can only manage your own appointments")
		return nil, false
	}

	return &appointment, true
}

// UpdateAppointment reschedules or changes the services of an
// appointment, guarded by the two-day edit window
func UpdateAppointment(c *gin.Context) {
	appointment, ok := findOwnedAppointment(c)
	if !ok {
		return
	}

	if check := scheduling.CanEdit(appointment.Date, time.Now()); !check.Allowed {
		utils.RespondWithError(c, http.StatusForbidden, check.Reason)
		return
	}

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Date != nil {
		if input.Date.Before(time.Now()) {
			utils.RespondWithError(c, http.StatusBadRequest, "Appointment date cannot be in the past")
			return
		}
		appointment.Date = *input.Date
	}

	if input.ServiceIDs != nil {
		services, err := resolveServices(input.ServiceIDs)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		if err := config.DB.Model(appointment).Association("Services").Replace(services); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update services")
			return
		}
		appointment.Services = services
	}

	if err := config.DB.Save(appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// CancelAppointment cancels an appointment, guarded by its status
func CancelAppointment(c *gin.Context) {
	appointment, ok := findOwnedAppointment(c)
	if !ok {
		return
	}

	if check := scheduling.CanCancel(appointment.Status); !check.Allowed {
		utils.RespondWithError(c, http.StatusForbidden, check.Reason)
		return
	}

	appointment.Status = models.StatusCanceled
	if err := config.DB.Save(appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel appointment")
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// MergeAppointment folds additional services into an existing
// appointment. Duplicate services are kept and billed.
func MergeAppointment(c *gin.Context) {
	appointment, ok := findOwnedAppointment(c)
	if !ok {
		return
	}

	if appointment.Status == models.StatusCanceled || appointment.Status == models.StatusDone {
		utils.RespondWithError(c, http.StatusConflict, "Cannot merge into a closed appointment")
		return
	}

	var input MergeAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	added, err := resolveServices(input.ServiceIDs)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	merged := scheduling.MergeServices(appointment.Services, added)
	if err := config.DB.Model(appointment).Association("Services").Replace(merged); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to merge services")
		return
	}
	appointment.Services = merged

	c.JSON(http.StatusOK, gin.H{
		"appointment":    appointment,
		"total_price":    appointment.TotalPrice(),
		"total_duration": appointment.TotalDurationMinutes(),
	})
}

// ChangeAppointmentStatus lets an admin drive the appointment lifecycle
func ChangeAppointmentStatus(c *gin.Context) {
	var input struct {
		Status models.AppointmentStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !input.Status.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, models.ErrInvalidStatus.Error())
		return
	}

	var appointment models.Appointment
	if err := config.DB.Preload("Services").Preload("User").First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	appointment.Status = input.Status
	if err := config.DB.Save(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update status")
		return
	}

	c.JSON(http.StatusOK, appointment)
}
