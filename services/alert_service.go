package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/mahi-manish/pill-time/models"

	"gorm.io/gorm"
)

// Mailer is the outbound email capability the dispatcher depends on. The
// SES implementation lives in utils; tests substitute a fake.
type Mailer interface {
	Configured() bool
	Send(to, subject, htmlBody string) error
}

// Per-dose outcomes reported by CheckMissedDoses.
const (
	StatusSent            = "sent"
	StatusFailed          = "failed"
	StatusSkippedNoConfig = "skipped_missing_config"
)

type LogOp int

const (
	LogOpCreate LogOp = iota
	LogOpUpdate
)

// LogAction is decided once by the evaluator and consumed unconditionally
// by the reconciler: create today's log row, or flip alert_sent on the
// existing row identified by LogID.
type LogAction struct {
	Op    LogOp
	LogID uint
}

// DueDose pairs a medication past its alert deadline with the log action
// that will record the alert.
type DueDose struct {
	Medication models.Medication
	Action     LogAction
}

type DoseResult struct {
	UserID     uint   `json:"user"`
	Medication string `json:"med"`
	Status     string `json:"status"`
}

type AlertReport struct {
	Success   bool         `json:"success"`
	Processed []DoseResult `json:"processed"`
	TimeMS    int64        `json:"time_ms"`
}

// AlertService runs the missed-medication check: for every profile with
// alerting configured it finds overdue, un-alerted doses, emails the
// caretaker, and records the alert in medication_logs.
type AlertService struct {
	db     *gorm.DB
	mailer Mailer
	now    func() time.Time
}

func NewAlertService(db *gorm.DB, mailer Mailer) *AlertService {
	return &AlertService{db: db, mailer: mailer, now: time.Now}
}

// CheckMissedDoses processes all alert-eligible profiles concurrently and
// aggregates one report. Individual profile or dose failures are logged
// and reported, never propagated; only failing to load the profile list
// fails the run.
func (s *AlertService) CheckMissedDoses(ctx context.Context) (*AlertReport, error) {
	start := time.Now()

	var profiles []models.Profile
	err := s.db.WithContext(ctx).
		Where("caretaker_email IS NOT NULL AND caretaker_email <> ''").
		Where("alert_delay IS NOT NULL AND alert_delay <> ''").
		Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("loading alert profiles: %w", err)
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		processed = []DoseResult{}
	)

	for _, profile := range profiles {
		wg.Add(1)
		go func(p models.Profile) {
			defer wg.Done()
			results, err := s.processProfile(ctx, p)
			if err != nil {
				log.Printf("alert check for user %d failed: %v", p.UserID, err)
				return
			}
			mu.Lock()
			processed = append(processed, results...)
			mu.Unlock()
		}(profile)
	}
	wg.Wait()

	return &AlertReport{
		Success:   true,
		Processed: processed,
		TimeMS:    time.Since(start).Milliseconds(),
	}, nil
}

func (s *AlertService) processProfile(ctx context.Context, profile models.Profile) ([]DoseResult, error) {
	delay, err := DelayDuration(*profile.AlertDelay)
	if err != nil {
		return nil, err
	}
	loc, err := LocationFor(profile.TimezoneOffset)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := Today(now, loc)

	var meds []models.Medication
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", profile.UserID).
		Where("target_date IS NULL OR target_date = ?", today).
		Find(&meds).Error; err != nil {
		return nil, fmt.Errorf("loading medications: %w", err)
	}

	var logs []models.MedicationLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", profile.UserID, today).
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("loading medication logs: %w", err)
	}

	due := EvaluateDueDoses(meds, logs, now, today, loc, delay)

	results := make([]DoseResult, len(due))
	var wg sync.WaitGroup
	for i, dose := range due {
		wg.Add(1)
		go func(i int, dose DueDose) {
			defer wg.Done()
			results[i] = s.processDose(ctx, profile, dose, today)
		}(i, dose)
	}
	wg.Wait()

	return results, nil
}

// EvaluateDueDoses decides, without touching the database, which of the
// given medications are overdue and how the outcome should be logged. A
// dose is overdue once now is strictly past reminder+delay; doses already
// taken or already alerted on are left alone. Medications whose reminder
// time cannot be parsed are skipped so the rest of the batch proceeds.
func EvaluateDueDoses(meds []models.Medication, logs []models.MedicationLog, now time.Time, today string, loc *time.Location, delay time.Duration) []DueDose {
	logsByMed := make(map[uint]models.MedicationLog, len(logs))
	for _, l := range logs {
		logsByMed[l.MedicationID] = l
	}

	var due []DueDose
	for _, med := range meds {
		if !med.AppliesOn(today) {
			continue
		}

		dueAt, err := DueInstant(today, med.ReminderTime, loc)
		if err != nil {
			log.Printf("skipping medication %d: %v", med.ID, err)
			continue
		}

		if !now.After(dueAt.Add(delay)) {
			continue
		}

		entry, ok := logsByMed[med.ID]
		switch {
		case !ok:
			due = append(due, DueDose{Medication: med, Action: LogAction{Op: LogOpCreate}})
		case !entry.Taken && !entry.AlertSent:
			due = append(due, DueDose{Medication: med, Action: LogAction{Op: LogOpUpdate, LogID: entry.ID}})
		}
	}
	return due
}

func (s *AlertService) processDose(ctx context.Context, profile models.Profile, dose DueDose, today string) DoseResult {
	res := DoseResult{UserID: profile.UserID, Medication: dose.Medication.Name}

	if !s.mailer.Configured() {
		log.Printf("mailer not configured, skipping alert for medication %d", dose.Medication.ID)
		res.Status = StatusSkippedNoConfig
		return res
	}

	subject := fmt.Sprintf("Missed Medication: %s", dose.Medication.Name)
	if err := s.mailer.Send(*profile.CaretakerEmail, subject, missedDoseBody(profile, dose.Medication, today)); err != nil {
		log.Printf("alert email for medication %d failed: %v", dose.Medication.ID, err)
		res.Status = StatusFailed
		return res
	}

	// The log write happens only after the send succeeded, so a failed
	// send leaves the dose eligible for the next run.
	if err := s.reconcile(ctx, profile, dose, today); err != nil {
		log.Printf("recording alert for medication %d failed: %v", dose.Medication.ID, err)
	}

	res.Status = StatusSent
	return res
}

func (s *AlertService) reconcile(ctx context.Context, profile models.Profile, dose DueDose, today string) error {
	switch dose.Action.Op {
	case LogOpCreate:
		entry := models.MedicationLog{
			MedicationID: dose.Medication.ID,
			UserID:       profile.UserID,
			Date:         today,
			Taken:        false,
			AlertSent:    true,
		}
		if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
			return fmt.Errorf("creating medication log: %w", err)
		}
	case LogOpUpdate:
		if err := s.db.WithContext(ctx).
			Model(&models.MedicationLog{}).
			Where("id = ?", dose.Action.LogID).
			Update("alert_sent", true).Error; err != nil {
			return fmt.Errorf("updating medication log %d: %w", dose.Action.LogID, err)
		}
	}

	EmitAlert(profile.UserID, "missed_dose",
		fmt.Sprintf("Caretaker notified: %s (%s) was not marked as taken", dose.Medication.Name, dose.Medication.ReminderTime))
	return nil
}

func missedDoseBody(profile models.Profile, med models.Medication, today string) string {
	name := profile.FullName
	if name == "" {
		name = "Patient"
	}
	return fmt.Sprintf(
		"<p>%s has not marked <strong>%s</strong> as taken today (%s).</p><p>Scheduled time: %s</p>",
		name, med.Name, today, med.ReminderTime)
}
