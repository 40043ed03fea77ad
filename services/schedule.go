package services

import (
	"fmt"
	"time"
)

// DefaultTimezoneOffset is applied to profiles that never picked a zone.
const DefaultTimezoneOffset = "+05:30"

const dayFormat = "2006-01-02"

var alertDelays = map[string]time.Duration{
	"10 min":  10 * time.Minute,
	"30 min":  30 * time.Minute,
	"1 hour":  time.Hour,
	"2 hours": 2 * time.Hour,
}

// DelayDuration maps an alert_delay policy to its duration.
func DelayDuration(policy string) (time.Duration, error) {
	d, ok := alertDelays[policy]
	if !ok {
		return 0, fmt.Errorf("unknown alert delay %q", policy)
	}
	return d, nil
}

// LocationFor parses a "+05:30" style UTC offset into a fixed zone. The
// ambient process timezone is never consulted; every due-time computation
// goes through the profile's offset.
func LocationFor(offset string) (*time.Location, error) {
	if offset == "" {
		offset = DefaultTimezoneOffset
	}
	t, err := time.Parse("-07:00", offset)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone offset %q: %w", offset, err)
	}
	_, secs := t.Zone()
	return time.FixedZone("UTC"+offset, secs), nil
}

// Today renders the instant as a calendar date in the given zone.
func Today(now time.Time, loc *time.Location) string {
	return now.In(loc).Format(dayFormat)
}

// DueInstant returns the absolute instant a "HH:MM" reminder fires on the
// given day. Malformed reminder values come back as an error, not a zero
// time.
func DueInstant(day, reminder string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dayFormat+" 15:04", day+" "+reminder, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reminder time %q on %s: %w", reminder, day, err)
	}
	return t, nil
}
