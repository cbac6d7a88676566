package timezone_test

import (
	"testing"
	"time"

	"guestroom/shared/timezone"
)

func TestNow(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}
}

func TestGetLocation(t *testing.T) {
	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestToAppTime(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if !appTime.Equal(utcTime) {
		t.Error("ToAppTime changed the instant, not just the location")
	}
}

func TestFormatAndParse(t *testing.T) {
	testTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	formatted := timezone.Format(testTime, "2006-01-02")
	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-06-01")
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}

	if parsed.Year() != 2024 || parsed.Month() != time.June || parsed.Day() != 1 {
		t.Errorf("Parse() returned unexpected date: %v", parsed)
	}
}
