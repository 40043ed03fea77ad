package services

import (
	"errors"
	"time"

	"github.com/mahi-manish/pill-time/config"
	"github.com/mahi-manish/pill-time/models"

	"gorm.io/gorm"
)

// MarkDose upserts the log row for (medication, day) with the patient's
// taken state. Only taken and marked_at are written here; alert_sent
// belongs to the alert job.
func MarkDose(userID, medicationID uint, day string, taken bool) (*models.MedicationLog, error) {
	var med models.Medication
	if err := config.DB.Where("id = ? AND user_id = ?", medicationID, userID).First(&med).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	var entry models.MedicationLog
	err := config.DB.Where("medication_id = ? AND date = ?", medicationID, day).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		entry = models.MedicationLog{
			MedicationID: medicationID,
			UserID:       userID,
			Date:         day,
			Taken:        taken,
			MarkedAt:     &now,
		}
		if err := config.DB.Create(&entry).Error; err != nil {
			return nil, err
		}
		return &entry, nil
	}
	if err != nil {
		return nil, err
	}

	// Updates with a map so taken=false is written too.
	if err := config.DB.Model(&entry).
		Updates(map[string]any{"taken": taken, "marked_at": now}).Error; err != nil {
		return nil, err
	}
	entry.Taken = taken
	entry.MarkedAt = &now
	return &entry, nil
}

func ListLogsByDate(userID uint, day string) ([]models.MedicationLog, error) {
	var logs []models.MedicationLog
	err := config.DB.Where("user_id = ? AND date = ?", userID, day).Find(&logs).Error
	return logs, err
}

func ListLogs(userID uint) ([]models.MedicationLog, error) {
	var logs []models.MedicationLog
	err := config.DB.Where("user_id = ?", userID).Order("date DESC").Find(&logs).Error
	return logs, err
}
