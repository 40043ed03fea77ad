package services

import (
	"fmt"
	"time"

	"github.com/mahi-manish/pill-time/config"
	"github.com/mahi-manish/pill-time/models"
)

func validateSchedule(reminderTime string, targetDate *string) error {
	if _, err := time.Parse("15:04", reminderTime); err != nil {
		return fmt.Errorf("invalid reminder time %q, want HH:MM", reminderTime)
	}
	if targetDate != nil && *targetDate != "" {
		if _, err := time.Parse(dayFormat, *targetDate); err != nil {
			return fmt.Errorf("invalid target date %q, want YYYY-MM-DD", *targetDate)
		}
	}
	return nil
}

func ListMedications(userID uint) ([]models.Medication, error) {
	var meds []models.Medication
	err := config.DB.Where("user_id = ?", userID).Order("reminder_time").Find(&meds).Error
	return meds, err
}

// ListMedicationsForDate returns the medications scheduled on a given day:
// every recurring one plus the one-time ones targeting that date.
func ListMedicationsForDate(userID uint, day string) ([]models.Medication, error) {
	var meds []models.Medication
	err := config.DB.Where("user_id = ?", userID).
		Where("target_date IS NULL OR target_date = ?", day).
		Order("reminder_time").
		Find(&meds).Error
	return meds, err
}

func CreateMedication(userID uint, name, dosage, reminderTime string, targetDate *string) (*models.Medication, error) {
	if err := validateSchedule(reminderTime, targetDate); err != nil {
		return nil, err
	}
	if targetDate != nil && *targetDate == "" {
		targetDate = nil
	}

	med := models.Medication{
		UserID:       userID,
		Name:         name,
		Dosage:       dosage,
		ReminderTime: reminderTime,
		TargetDate:   targetDate,
	}
	if err := config.DB.Create(&med).Error; err != nil {
		return nil, err
	}
	return &med, nil
}

func UpdateMedication(userID, medID uint, name, dosage, reminderTime string, targetDate *string) (*models.Medication, error) {
	var med models.Medication
	if err := config.DB.Where("id = ? AND user_id = ?", medID, userID).First(&med).Error; err != nil {
		return nil, err
	}

	if err := validateSchedule(reminderTime, targetDate); err != nil {
		return nil, err
	}
	if targetDate != nil && *targetDate == "" {
		targetDate = nil
	}

	med.Name = name
	med.Dosage = dosage
	med.ReminderTime = reminderTime
	med.TargetDate = targetDate
	if err := config.DB.Save(&med).Error; err != nil {
		return nil, err
	}
	return &med, nil
}

func DeleteMedication(userID, medID uint) error {
	res := config.DB.Where("id = ? AND user_id = ?", medID, userID).Delete(&models.Medication{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("medication %d not found", medID)
	}
	return nil
}
