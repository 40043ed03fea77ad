package services

import (
	"math"
	"time"

	"github.com/mahi-manish/pill-time/config"
	"github.com/mahi-manish/pill-time/models"
)

type DashboardStats struct {
	Today          int                `json:"today"`
	Taken          int                `json:"taken"`
	Missed         int                `json:"missed"`
	Rate           int                `json:"rate"`
	Streak         int                `json:"streak"`
	NextMedication *models.Medication `json:"next_medication,omitempty"`
}

const (
	adherenceWindowDays = 30
	streakLookbackDays  = 365
)

// GetDashboardStats computes today's dose counts, the 30-day adherence
// rate, the full-adherence streak, and the next upcoming dose, all in the
// patient's own timezone.
func GetDashboardStats(userID uint, now time.Time) (*DashboardStats, error) {
	profile, err := GetProfile(userID)
	if err != nil {
		return nil, err
	}
	loc, err := LocationFor(profile.TimezoneOffset)
	if err != nil {
		loc, _ = LocationFor(DefaultTimezoneOffset)
	}

	var meds []models.Medication
	if err := config.DB.Where("user_id = ?", userID).Find(&meds).Error; err != nil {
		return nil, err
	}

	var logs []models.MedicationLog
	if err := config.DB.Where("user_id = ?", userID).Find(&logs).Error; err != nil {
		return nil, err
	}

	takenByDay := make(map[string]int)
	for _, l := range logs {
		if l.Taken {
			takenByDay[l.Date]++
		}
	}

	localNow := now.In(loc)
	today := localNow.Format(dayFormat)

	stats := &DashboardStats{}
	var scheduledPast, takenPast int
	streakBroken := false

	// Walk back from today: the streak holds while every scheduled med of
	// a day was taken; today itself cannot break it.
	for i := 0; i <= streakLookbackDays; i++ {
		day := localNow.AddDate(0, 0, -i).Format(dayFormat)

		scheduled := 0
		for _, med := range meds {
			if med.AppliesOn(day) {
				scheduled++
			}
		}
		if scheduled == 0 {
			continue
		}

		taken := takenByDay[day]
		if !streakBroken {
			if taken >= scheduled {
				stats.Streak++
			} else if i > 0 {
				streakBroken = true
			}
		}

		if i < adherenceWindowDays {
			scheduledPast += scheduled
			takenPast += min(taken, scheduled)
		}
	}

	if scheduledPast > 0 {
		stats.Rate = int(math.Round(float64(takenPast) / float64(scheduledPast) * 100))
	}

	for _, med := range meds {
		if med.AppliesOn(today) {
			stats.Today++
		}
	}
	stats.Taken = takenByDay[today]
	stats.Missed = max(0, stats.Today-stats.Taken)

	stats.NextMedication = nextMedication(meds, localNow)

	return stats, nil
}

// nextMedication picks the medication with the earliest future occurrence:
// one-time meds at their target date, recurring meds later today or else
// tomorrow.
func nextMedication(meds []models.Medication, localNow time.Time) *models.Medication {
	today := localNow.Format(dayFormat)
	tomorrow := localNow.AddDate(0, 0, 1).Format(dayFormat)
	currentTime := localNow.Format("15:04")

	var next *models.Medication
	var nextAt string

	for i := range meds {
		med := meds[i]

		var occursAt string
		if !med.Recurring() {
			switch {
			case *med.TargetDate > today:
				occursAt = *med.TargetDate + "T" + med.ReminderTime
			case *med.TargetDate == today && med.ReminderTime > currentTime:
				occursAt = today + "T" + med.ReminderTime
			default:
				continue // past one-time med
			}
		} else if med.ReminderTime > currentTime {
			occursAt = today + "T" + med.ReminderTime
		} else {
			occursAt = tomorrow + "T" + med.ReminderTime
		}

		if next == nil || occursAt < nextAt {
			next = &meds[i]
			nextAt = occursAt
		}
	}
	return next
}
