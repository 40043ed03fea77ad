package services

import (
	"testing"
	"time"
)

func TestDelayDuration(t *testing.T) {
	cases := []struct {
		policy  string
		want    time.Duration
		wantErr bool
	}{
		{"10 min", 10 * time.Minute, false},
		{"30 min", 30 * time.Minute, false},
		{"1 hour", time.Hour, false},
		{"2 hours", 2 * time.Hour, false},
		{"", 0, true},
		{"45 min", 0, true},
	}

	for _, tc := range cases {
		got, err := DelayDuration(tc.policy)
		if tc.wantErr {
			if err == nil {
				t.Errorf("DelayDuration(%q): expected error, got %v", tc.policy, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("DelayDuration(%q): %v", tc.policy, err)
			continue
		}
		if got != tc.want {
			t.Errorf("DelayDuration(%q) = %v, want %v", tc.policy, got, tc.want)
		}
	}
}

func TestLocationFor(t *testing.T) {
	loc, err := LocationFor("+05:30")
	if err != nil {
		t.Fatalf("LocationFor(+05:30): %v", err)
	}
	ref := time.Date(2024, 2, 29, 20, 0, 0, 0, time.UTC)
	if got := ref.In(loc).Format("2006-01-02 15:04"); got != "2024-03-01 01:30" {
		t.Errorf("20:00 UTC in +05:30 = %s, want 2024-03-01 01:30", got)
	}

	// empty offset falls back to the default
	if _, err := LocationFor(""); err != nil {
		t.Errorf("LocationFor(\"\"): %v", err)
	}

	if _, err := LocationFor("bogus"); err == nil {
		t.Error("LocationFor(bogus): expected error")
	}
}

func TestToday(t *testing.T) {
	loc, _ := LocationFor("+05:30")

	// late UTC evening is already the next day in +05:30
	now := time.Date(2024, 2, 29, 20, 0, 0, 0, time.UTC)
	if got := Today(now, loc); got != "2024-03-01" {
		t.Errorf("Today = %s, want 2024-03-01", got)
	}
}

func TestDueInstant(t *testing.T) {
	loc, _ := LocationFor("+05:30")

	got, err := DueInstant("2024-03-01", "09:00", loc)
	if err != nil {
		t.Fatalf("DueInstant: %v", err)
	}
	want := time.Date(2024, 3, 1, 9, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("DueInstant = %v, want %v", got, want)
	}

	for _, bad := range []string{"", "9:00", "25:00", "nope"} {
		if _, err := DueInstant("2024-03-01", bad, loc); err == nil {
			t.Errorf("DueInstant(%q): expected error", bad)
		}
	}
}
