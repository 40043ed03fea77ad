package models

import (
	"gorm.io/gorm"
)

type Medication struct {
	gorm.Model
	UserID       uint   `gorm:"index"`
	Name         string `gorm:"not null"`
	Dosage       string
	ReminderTime string  `gorm:"size:5;not null"` // "HH:MM" in the patient's timezone
	TargetDate   *string `gorm:"size:10"`         // "YYYY-MM-DD"; nil means the med recurs every day
}

// Recurring reports whether the medication is scheduled daily rather than
// for a single target date.
func (m *Medication) Recurring() bool {
	return m.TargetDate == nil || *m.TargetDate == ""
}

// AppliesOn reports whether the medication is scheduled on the given day.
func (m *Medication) AppliesOn(day string) bool {
	return m.Recurring() || *m.TargetDate == day
}
