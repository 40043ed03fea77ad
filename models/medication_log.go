package models

import (
	"time"

	"gorm.io/gorm"
)

// MedicationLog records, per medication and day, whether the dose was
// taken and whether a missed-dose alert already went out. The
// (medication_id, date) pair is unique; that pair is the reconciliation
// key the alert job works against.
type MedicationLog struct {
	gorm.Model
	MedicationID uint   `gorm:"index:idx_med_date,unique;not null"`
	Date         string `gorm:"index:idx_med_date,unique;size:10;not null"` // "YYYY-MM-DD"
	UserID       uint   `gorm:"index"`
	Taken        bool   `gorm:"default:false"`
	AlertSent    bool   `gorm:"default:false"`
	MarkedAt     *time.Time
}
