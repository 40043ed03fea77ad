package controllers

import (
	"net/http"
	"strconv"

	"github.com/mahi-manish/pill-time/services"

	"github.com/gin-gonic/gin"
)

type markDoseInput struct {
	Date  string `json:"date" binding:"required"`
	Taken *bool  `json:"taken" binding:"required"`
}

// PUT /user/medications/:id/log
func MarkDose(c *gin.Context) {
	uid := c.GetUint("userID")

	medID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid medication id"})
		return
	}

	var input markDoseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.MarkDose(uid, uint(medID), input.Date, *input.Taken)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GET /user/logs?date=YYYY-MM-DD
func ListLogs(c *gin.Context) {
	uid := c.GetUint("userID")

	var (
		logs interface{}
		err  error
	)
	if day := c.Query("date"); day != "" {
		logs, err = services.ListLogsByDate(uid, day)
	} else {
		logs, err = services.ListLogs(uid)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}
