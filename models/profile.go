package models

import (
	"gorm.io/gorm"
)

// Profile holds the alerting settings the caretaker dashboard edits.
// CaretakerEmail and AlertDelay are pointers so that "not configured"
// survives as NULL in the database; the alert job only picks up profiles
// where both are set.
type Profile struct {
	gorm.Model
	UserID         uint `gorm:"uniqueIndex"`
	FullName       string
	CaretakerEmail *string
	AlertDelay     *string `gorm:"size:10"` // "10 min" | "30 min" | "1 hour" | "2 hours"
	TimezoneOffset string  `gorm:"size:6;default:'+05:30'"`
}
