// Package lifecycle classifies dated obligations such as document expiry
// and due-diligence renewal relative to a reference day.
package lifecycle

import "time"

// Status is the urgency bucket of a dated obligation.
type Status string

const (
	StatusOverdue  Status = "overdue"
	StatusDueToday Status = "due_today"
	StatusDueSoon  Status = "due_soon"
	StatusOnTrack  Status = "on_track"
)

const (
	// WarningWindowDays is the inclusive upper bound of the due-soon bucket.
	WarningWindowDays = 30
	// RenewalCadenceDays is the interval between due-diligence reviews.
	RenewalCadenceDays = 365
)

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant. Useful for tests and batch runs.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// Date truncates t to its calendar day in t's own location, expressed in UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the number of calendar days from reference to target.
// The result is negative when target is in the past.
func DaysUntil(target, reference time.Time) int {
	const secondsPerDay = 24 * 60 * 60
	return int((Date(target).Unix() - Date(reference).Unix()) / secondsPerDay)
}

// StatusFor buckets a day count.
func StatusFor(days int) Status {
	switch {
	case days < 0:
		return StatusOverdue
	case days == 0:
		return StatusDueToday
	case days <= WarningWindowDays:
		return StatusDueSoon
	default:
		return StatusOnTrack
	}
}

// ExpiringSoon reports whether days falls in [0, WarningWindowDays].
func ExpiringSoon(days int) bool {
	return days >= 0 && days <= WarningWindowDays
}

// IsExpired reports whether the obligation date has passed.
func IsExpired(days int) bool {
	return days < 0
}

// NextDueDiligence returns the default next review date for a record created at created.
func NextDueDiligence(created time.Time) time.Time {
	return Date(created).AddDate(0, 0, RenewalCadenceDays)
}

// Within reports whether days is inside a caller-supplied window, past dates included.
func Within(days, windowDays int) bool {
	return days <= windowDays
}
