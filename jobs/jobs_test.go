package jobs

import (
	"testing"
	"time"
)

// missedByCutoff mirrors the sweep's SQL predicate.
func missedByCutoff(apptDate, apptTime, cutoffDate, cutoffTime string) bool {
	if apptDate != cutoffDate {
		return apptDate < cutoffDate
	}
	return apptTime < cutoffTime
}

func TestNoShowCutoff_SameDay(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	date, clock := noShowCutoff(now)
	if date != "2025-03-10" || clock != "13:30" {
		t.Fatalf("expected cutoff 2025-03-10 13:30, got %s %s", date, clock)
	}

	if !missedByCutoff("2025-03-10", "12:00", date, clock) {
		t.Error("expected a slot two and a half hours old to be swept")
	}
	if missedByCutoff("2025-03-10", "14:00", date, clock) {
		t.Error("expected a slot half an hour old to be left alone")
	}
}

func TestNoShowCutoff_AfterMidnight(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 30, 0, 0, time.UTC)

	date, clock := noShowCutoff(now)
	if date != "2025-03-09" || clock != "23:30" {
		t.Fatalf("expected cutoff 2025-03-09 23:30, got %s %s", date, clock)
	}

	if missedByCutoff("2025-03-10", "09:00", date, clock) {
		t.Error("expected the current day's upcoming schedule to be left alone")
	}
	if missedByCutoff("2025-03-09", "23:45", date, clock) {
		t.Error("expected a slot 45 minutes old to be left alone")
	}
	if !missedByCutoff("2025-03-09", "22:00", date, clock) {
		t.Error("expected the previous evening's missed slot to be swept")
	}
}

func TestUpcomingWindow_SameDay(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	window := upcomingWindow(now)
	if window.spansMidnight() {
		t.Fatal("expected a mid-afternoon window to stay on one date")
	}
	if window.StartDate != "2025-03-10" || window.StartTime != "15:00" || window.EndTime != "15:05" {
		t.Errorf("expected 2025-03-10 15:00..15:05, got %+v", window)
	}
}

func TestUpcomingWindow_CrossesMidnight(t *testing.T) {
	now := time.Date(2025, 3, 10, 22, 57, 0, 0, time.UTC)

	window := upcomingWindow(now)
	if !window.spansMidnight() {
		t.Fatal("expected the window to span midnight")
	}
	if window.StartDate != "2025-03-10" || window.StartTime != "23:57" {
		t.Errorf("expected start 2025-03-10 23:57, got %s %s", window.StartDate, window.StartTime)
	}
	if window.EndDate != "2025-03-11" || window.EndTime != "00:02" {
		t.Errorf("expected end 2025-03-11 00:02, got %s %s", window.EndDate, window.EndTime)
	}
}

func TestUpcomingWindow_NextDayEarlySlot(t *testing.T) {
	// After 23:00 the whole window falls on the next day; reminders for
	// a midnight-opening department's first slots depend on it.
	now := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)

	window := upcomingWindow(now)
	if window.spansMidnight() {
		t.Fatal("expected the window to sit entirely on the next day")
	}
	if window.StartDate != "2025-03-11" || window.StartTime != "00:30" || window.EndTime != "00:35" {
		t.Errorf("expected 2025-03-11 00:30..00:35, got %+v", window)
	}
}
