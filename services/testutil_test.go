package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/mahi-manish/pill-time/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("raw db handle: %v", err)
	}
	// a single connection keeps the in-memory database alive and
	// serializes the job's concurrent writers
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Medication{},
		&models.MedicationLog{},
		&models.Alert{},
	); err != nil {
		t.Fatalf("migrating: %v", err)
	}
	return db
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	mu           sync.Mutex
	unconfigured bool
	failAll      bool
	sent         []sentMail
}

func (f *fakeMailer) Configured() bool { return !f.unconfigured }

func (f *fakeMailer) Send(to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return errors.New("transport rejected message")
	}
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (f *fakeMailer) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func strPtr(s string) *string { return &s }
