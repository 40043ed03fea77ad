package services

import (
	"testing"
	"time"

	"github.com/mahi-manish/pill-time/config"
	"github.com/mahi-manish/pill-time/models"

	"gorm.io/gorm"
)

func useTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := newTestDB(t)
	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })
	return db
}

func markTaken(t *testing.T, db *gorm.DB, medID uint, day string) {
	t.Helper()
	entry := models.MedicationLog{MedicationID: medID, UserID: 1, Date: day, Taken: true}
	if err := db.Create(&entry).Error; err != nil {
		t.Fatalf("seeding log: %v", err)
	}
}

func TestDashboardStatsStreakAndAdherence(t *testing.T) {
	db := useTestDB(t)

	med := seedMedication(t, db, 1, "Aspirin", "08:00", nil)

	// taken today and yesterday, missed two days ago
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, ist)
	markTaken(t, db, med.ID, "2024-03-10")
	markTaken(t, db, med.ID, "2024-03-09")

	stats, err := GetDashboardStats(1, now)
	if err != nil {
		t.Fatalf("GetDashboardStats: %v", err)
	}

	if stats.Streak != 2 {
		t.Errorf("streak = %d, want 2", stats.Streak)
	}
	// 30 scheduled days in the window, 2 taken
	if stats.Rate != 7 {
		t.Errorf("rate = %d, want 7", stats.Rate)
	}
	if stats.Today != 1 || stats.Taken != 1 || stats.Missed != 0 {
		t.Errorf("today/taken/missed = %d/%d/%d, want 1/1/0", stats.Today, stats.Taken, stats.Missed)
	}
}

func TestDashboardStatsTodayCannotBreakStreak(t *testing.T) {
	db := useTestDB(t)

	med := seedMedication(t, db, 1, "Aspirin", "08:00", nil)

	// yesterday taken, today still pending
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, ist)
	markTaken(t, db, med.ID, "2024-03-09")
	markTaken(t, db, med.ID, "2024-03-08")

	stats, err := GetDashboardStats(1, now)
	if err != nil {
		t.Fatalf("GetDashboardStats: %v", err)
	}
	if stats.Streak != 2 {
		t.Errorf("streak = %d, want 2 (an unfinished today must not break it)", stats.Streak)
	}
	if stats.Missed != 1 {
		t.Errorf("missed = %d, want 1", stats.Missed)
	}
}

func TestDashboardStatsNextMedication(t *testing.T) {
	db := useTestDB(t)

	seedMedication(t, db, 1, "Morning", "09:00", nil)
	afternoon := seedMedication(t, db, 1, "Afternoon", "14:00", nil)
	// one-time med already in the past never comes up again
	seedMedication(t, db, 1, "OldOneOff", "16:00", strPtr("2024-03-01"))

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, ist)
	stats, err := GetDashboardStats(1, now)
	if err != nil {
		t.Fatalf("GetDashboardStats: %v", err)
	}

	if stats.NextMedication == nil {
		t.Fatal("no next medication")
	}
	// 14:00 today beats 09:00 tomorrow
	if stats.NextMedication.ID != afternoon.ID {
		t.Errorf("next medication = %s, want %s", stats.NextMedication.Name, afternoon.Name)
	}
}

func TestDashboardStatsEmpty(t *testing.T) {
	useTestDB(t)

	stats, err := GetDashboardStats(1, time.Date(2024, 3, 10, 12, 0, 0, 0, ist))
	if err != nil {
		t.Fatalf("GetDashboardStats: %v", err)
	}
	if stats.Rate != 0 || stats.Streak != 0 || stats.NextMedication != nil {
		t.Errorf("empty account produced stats %+v", stats)
	}
}
