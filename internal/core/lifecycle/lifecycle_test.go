package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		days int
		want Status
	}{
		{"long overdue", -40, StatusOverdue},
		{"one day overdue", -1, StatusOverdue},
		{"due today", 0, StatusDueToday},
		{"due tomorrow", 1, StatusDueSoon},
		{"last day of window", 30, StatusDueSoon},
		{"first day outside window", 31, StatusOnTrack},
		{"far away", 365, StatusOnTrack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.days))
		})
	}
}

func TestExpiringSoonAndExpired(t *testing.T) {
	tests := []struct {
		days    int
		soon    bool
		expired bool
	}{
		{-1, false, true},
		{0, true, false},
		{15, true, false},
		{30, true, false},
		{31, false, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.soon, ExpiringSoon(tt.days), "ExpiringSoon(%d)", tt.days)
		assert.Equal(t, tt.expired, IsExpired(tt.days), "IsExpired(%d)", tt.days)
	}
}

func TestDaysUntil(t *testing.T) {
	ref := time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysUntil(time.Date(2024, 3, 10, 0, 1, 0, 0, time.UTC), ref))
	assert.Equal(t, 1, DaysUntil(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), ref))
	assert.Equal(t, -10, DaysUntil(time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC), ref))
	assert.Equal(t, 30, DaysUntil(time.Date(2024, 4, 9, 8, 0, 0, 0, time.UTC), ref))
}

func TestDaysUntil_UsesCalendarDateOfEachSide(t *testing.T) {
	bogota := time.FixedZone("COT", -5*3600)
	ref := time.Date(2024, 6, 1, 22, 0, 0, 0, bogota) // already June 2 in UTC
	target := time.Date(2024, 6, 2, 1, 0, 0, 0, bogota)

	assert.Equal(t, 1, DaysUntil(target, ref))
}

func TestDaysUntil_DistantDates(t *testing.T) {
	ref := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 2912991, DaysUntil(time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC), ref))
	assert.Equal(t, -739067, DaysUntil(time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC), ref))
	assert.Equal(t, StatusOnTrack, StatusFor(DaysUntil(time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC), ref)))
}

func TestNextDueDiligence(t *testing.T) {
	created := time.Date(2024, 1, 15, 17, 45, 0, 0, time.UTC)

	next := NextDueDiligence(created)

	assert.Equal(t, time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC), next) // 2024 is a leap year
	assert.Equal(t, RenewalCadenceDays, DaysUntil(next, created))
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	var c Clock = FixedClock(at)

	assert.Equal(t, at, c.Now())
}

func TestWithin(t *testing.T) {
	assert.True(t, Within(-5, 30))
	assert.True(t, Within(30, 30))
	assert.False(t, Within(31, 30))
}
