package card

import (
	"testing"
	"time"
)

func TestUntilFutureTarget(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	// 1 day, 1 hour, 1 minute, 1 second ahead.
	target := now.Add(90061 * time.Second)

	got := Until(target, now)
	want := Countdown{Days: 1, Hours: 1, Minutes: 1, Seconds: 1}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestUntilPastTargetClampsToZero(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for _, target := range []time.Time{now, now.Add(-time.Second), now.Add(-48 * time.Hour)} {
		got := Until(target, now)
		if got != (Countdown{}) {
			t.Fatalf("target %s: got %+v want all zeros", target, got)
		}
	}
}

func TestUntilComponentsNonNegative(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, delta := range []time.Duration{time.Second, time.Minute, time.Hour, 25 * time.Hour, 400 * 24 * time.Hour} {
		got := Until(now.Add(delta), now)
		if got.Days < 0 || got.Hours < 0 || got.Minutes < 0 || got.Seconds < 0 {
			t.Fatalf("delta %s: negative component in %+v", delta, got)
		}
		if got.Hours > 23 || got.Minutes > 59 || got.Seconds > 59 {
			t.Fatalf("delta %s: component overflow in %+v", delta, got)
		}
	}
}

func TestEventTime(t *testing.T) {
	ts, errParse := EventTime("2025-06-15", "20:00", time.UTC)
	if errParse != nil {
		t.Fatalf("parse: %v", errParse)
	}
	want := time.Date(2025, 6, 15, 20, 0, 0, 0, time.UTC)
	if !ts.Equal(want) {
		t.Fatalf("got %s want %s", ts, want)
	}
}

func TestEventTimeDefaultsMissingTime(t *testing.T) {
	ts, errParse := EventTime("2025-06-15", "", time.UTC)
	if errParse != nil {
		t.Fatalf("parse: %v", errParse)
	}
	if ts.Hour() != 0 || ts.Minute() != 0 {
		t.Fatalf("expected midnight, got %s", ts)
	}
}

func TestEventTimeMalformed(t *testing.T) {
	if _, errParse := EventTime("next saturday", "evening", time.UTC); errParse == nil {
		t.Fatal("expected parse error")
	}
	if _, errParse := EventTime("", "20:00", time.UTC); errParse == nil {
		t.Fatal("expected error for empty date")
	}
}
