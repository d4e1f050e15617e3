// controllers/dashboard.go
package controllers

import (
	"net/http"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/scheduling"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetAdminStats returns the dashboard numbers: weekly buckets for the
// charts plus the overall totals, optionally narrowed by a reporting
// period for the appointment list alongside them.
func GetAdminStats(c *gin.Context) {
	var appointments []models.Appointment
	if err := config.DB.Preload("Services").Preload("User").
		Order("date").Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	weekly := scheduling.WeeklyStats(appointments)
	totals := scheduling.OverallTotals(appointments)
	filtered := filterFromQuery(c, appointments)

	c.JSON(http.StatusOK, gin.H{
		"weekly_stats": weekly,
		"totals":       totals,
		"appointments": filtered,
	})
}

// GetCustomers lists customer accounts for the admin view
func GetCustomers(c *gin.Context) {
	var customers []models.User
	if err := config.DB.Where("role = ?", models.RoleCustomer).
		Order("name").Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomer returns one customer together with their appointment history
func GetCustomer(c *gin.Context) {
	var customer models.User
	if err := config.DB.First(&customer, "id = ? AND role = ?", c.Param("id"), models.RoleCustomer).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	var appointments []models.Appointment
	if err := config.DB.Preload("Services").
		Where("user_id = ?", customer.ID).Order("date desc").
		Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer":     customer,
		"appointments": appointments,
	})
}
