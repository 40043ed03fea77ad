package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mahi-manish/pill-time/config"
	"github.com/mahi-manish/pill-time/controllers"
	"github.com/mahi-manish/pill-time/models"
	"github.com/mahi-manish/pill-time/routes"
	"github.com/mahi-manish/pill-time/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubMailer struct{}

func (stubMailer) Configured() bool                    { return false }
func (stubMailer) Send(to, subject, body string) error { return nil }

func newRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
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

	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })

	alertCtl := controllers.NewAlertController(services.NewAlertService(db, stubMailer{}))
	rtCtl := controllers.NewRealtimeController(services.NewRealtimeHub())
	return routes.SetupRouter(alertCtl, rtCtl), db
}

func TestCheckMissedEndpoint(t *testing.T) {
	r, _ := newRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/alerts/check-missed", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"success":true`) {
		t.Errorf("body %s missing success flag", body)
	}
	if !strings.Contains(body, `"processed":[]`) {
		t.Errorf("body %s, want empty processed list", body)
	}
	if !strings.Contains(body, `"time_ms"`) {
		t.Errorf("body %s missing elapsed time", body)
	}
}

func TestCheckMissedEndpointPreflight(t *testing.T) {
	r, _ := newRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/alerts/check-missed", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("preflight status %d, want 200", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestCheckMissedEndpointFatal(t *testing.T) {
	r, db := newRouter(t)
	if err := db.Migrator().DropTable(&models.Profile{}); err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/alerts/check-missed", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"error"`) {
		t.Errorf("body %s missing error", w.Body.String())
	}
}
