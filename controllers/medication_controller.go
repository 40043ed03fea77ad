package controllers

import (
	"net/http"
	"strconv"

	"github.com/mahi-manish/pill-time/services"

	"github.com/gin-gonic/gin"
)

type medicationInput struct {
	Name         string  `json:"name" binding:"required"`
	Dosage       string  `json:"dosage"`
	ReminderTime string  `json:"reminder_time" binding:"required"`
	TargetDate   *string `json:"target_date"`
}

// GET /user/medications?date=YYYY-MM-DD
func ListMedications(c *gin.Context) {
	uid := c.GetUint("userID")

	var (
		meds interface{}
		err  error
	)
	if day := c.Query("date"); day != "" {
		meds, err = services.ListMedicationsForDate(uid, day)
	} else {
		meds, err = services.ListMedications(uid)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meds)
}

// POST /user/medications
func CreateMedication(c *gin.Context) {
	uid := c.GetUint("userID")

	var input medicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	med, err := services.CreateMedication(uid, input.Name, input.Dosage, input.ReminderTime, input.TargetDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, med)
}

// PUT /user/medications/:id
func UpdateMedication(c *gin.Context) {
	uid := c.GetUint("userID")

	medID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid medication id"})
		return
	}

	var input medicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	med, err := services.UpdateMedication(uid, uint(medID), input.Name, input.Dosage, input.ReminderTime, input.TargetDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, med)
}

// DELETE /user/medications/:id
func DeleteMedication(c *gin.Context) {
	uid := c.GetUint("userID")

	medID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid medication id"})
		return
	}

	if err := services.DeleteMedication(uid, uint(medID)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
