package controllers

import (
	"net/http"

	"github.com/mahi-manish/pill-time/services"

	"github.com/gin-gonic/gin"
)

// GET /user/profile
func GetProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	profile, err := services.GetProfile(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

type profileUpdateInput struct {
	FullName       *string `json:"full_name"`
	CaretakerEmail *string `json:"caretaker_email"`
	AlertDelay     *string `json:"alert_delay"`
	TimezoneOffset *string `json:"timezone_offset"`
}

// PUT /user/profile
func UpdateProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	var input profileUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := services.UpdateProfile(uid, services.ProfileUpdate{
		FullName:       input.FullName,
		CaretakerEmail: input.CaretakerEmail,
		AlertDelay:     input.AlertDelay,
		TimezoneOffset: input.TimezoneOffset,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}
