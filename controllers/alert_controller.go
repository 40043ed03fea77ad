package controllers

import (
	"net/http"

	"github.com/mahi-manish/pill-time/config"
	"github.com/mahi-manish/pill-time/models"
	"github.com/mahi-manish/pill-time/services"

	"github.com/gin-gonic/gin"
)

type AlertController struct {
	Svc *services.AlertService
}

func NewAlertController(svc *services.AlertService) *AlertController {
	return &AlertController{Svc: svc}
}

// POST /alerts/check-missed
//
// Hit by the external scheduler on a fixed interval and by the caretaker
// dashboard's "send reminder now" button.
func (ac *AlertController) CheckMissedDoses(c *gin.Context) {
	report, err := ac.Svc.CheckMissedDoses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /user/alerts
func ListAlerts(c *gin.Context) {
	uid := c.GetUint("userID")

	var alerts []models.Alert
	if err := config.DB.Where("user_id = ?", uid).
		Order("created_at DESC").
		Limit(50).
		Find(&alerts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}
