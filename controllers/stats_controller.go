package controllers

import (
	"net/http"
	"time"

	"github.com/mahi-manish/pill-time/services"

	"github.com/gin-gonic/gin"
)

// GET /user/stats
func GetDashboardStats(c *gin.Context) {
	uid := c.GetUint("userID")

	stats, err := services.GetDashboardStats(uid, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
