package timezone_test

import (
	"talent/shared/timezone"
	"testing"
	"time"
)

func TestNow(t *testing.T) {
	now := timezone.Now()

	if now.IsZero() {
		t.Error("expected Now() to return a non-zero time")
	}

	if now.Location() != timezone.GetLocation() {
		t.Errorf("expected Now() to be in the app location %v, got %v", timezone.GetLocation(), now.Location())
	}
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	if today.Hour() != 0 || today.Minute() != 0 || today.Second() != 0 || today.Nanosecond() != 0 {
		t.Errorf("expected Today() to be at midnight, got %v", today)
	}

	now := timezone.Now()
	if today.Year() != now.Year() || today.Month() != now.Month() || today.Day() != now.Day() {
		t.Errorf("expected Today() to be the current day, got %v", today)
	}
}

func TestToAppTime(t *testing.T) {
	utc := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	converted := timezone.ToAppTime(utc)

	if !converted.Equal(utc) {
		t.Errorf("expected converted time to represent the same instant, got %v vs %v", converted, utc)
	}

	if converted.Location() != timezone.GetLocation() {
		t.Errorf("expected location %v, got %v", timezone.GetLocation(), converted.Location())
	}
}

func TestParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2024-03-01")
	if err != nil {
		t.Fatalf("unexpected error parsing date: %v", err)
	}

	if parsed.Location() != timezone.GetLocation() {
		t.Errorf("expected parsed time in app location, got %v", parsed.Location())
	}

	formatted := timezone.Format(parsed, "2006-01-02")
	if formatted != "2024-03-01" {
		t.Errorf("expected formatted date '2024-03-01', got %s", formatted)
	}
}
