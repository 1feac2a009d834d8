package domain

import (
	"testing"
	"time"
	_ "time/tzdata"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    Clock
		wantErr bool
	}{
		{in: "09:00", want: 540},
		{in: "9:30", want: 570},
		{in: " 23:59 ", want: 1439},
		{in: "24:00", want: MinutesPerDay},
		{in: "24:30", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "12", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "-1:00", wantErr: true},
		{in: "12:5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClock error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseClock = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestClock_OnUsesProviderLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation error: %v", err)
	}
	date := time.Date(2026, 7, 6, 0, 0, 0, 0, time.UTC)

	got := NewClock(9, 30).On(date, loc)
	if got.In(loc).Hour() != 9 || got.In(loc).Minute() != 30 {
		t.Fatalf("local time = %v, want 09:30", got.In(loc))
	}
	if !got.Equal(time.Date(2026, 7, 6, 13, 30, 0, 0, time.UTC)) {
		t.Fatalf("instant = %v, want 13:30 UTC", got.UTC())
	}
}

func TestClock_ResolveSkippedWallTime(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation error: %v", err)
	}
	// Clocks jump from 02:00 to 03:00 on 2026-03-08.
	date := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	for _, c := range []Clock{NewClock(2, 0), NewClock(2, 30)} {
		if _, ok := c.Resolve(date, loc); ok {
			t.Fatalf("%s should not exist on %s", c, date.Format(DateLayout))
		}
	}
	got, ok := NewClock(3, 0).Resolve(date, loc)
	if !ok || !got.Equal(time.Date(2026, 3, 8, 7, 0, 0, 0, time.UTC)) {
		t.Fatalf("03:00 = %v ok=%v, want 07:00 UTC", got.UTC(), ok)
	}
}

func TestClock_ResolveRepeatedWallTimeUsesFirstOccurrence(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation error: %v", err)
	}
	// Clocks fall back from 02:00 EDT to 01:00 EST on 2026-11-01.
	date := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	got, ok := NewClock(1, 30).Resolve(date, loc)
	if !ok {
		t.Fatalf("01:30 should exist")
	}
	if !got.Equal(time.Date(2026, 11, 1, 5, 30, 0, 0, time.UTC)) {
		t.Fatalf("01:30 = %v, want 05:30 UTC (EDT)", got.UTC())
	}
	if on := NewClock(1, 30).On(date, loc); !on.Equal(got) {
		t.Fatalf("On = %v, want %v", on.UTC(), got.UTC())
	}

	got, ok = NewClock(2, 0).Resolve(date, loc)
	if !ok || !got.Equal(time.Date(2026, 11, 1, 7, 0, 0, 0, time.UTC)) {
		t.Fatalf("02:00 = %v ok=%v, want 07:00 UTC", got.UTC(), ok)
	}
}

func TestCivilDate(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	in := time.Date(2026, 1, 6, 1, 0, 0, 0, loc)

	got := CivilDate(in)
	if !got.Equal(time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("CivilDate = %v, want 2026-01-06", got)
	}
	if got.Format(DateLayout) != "2026-01-06" {
		t.Fatalf("formatted = %q", got.Format(DateLayout))
	}
}
