package clock

import (
	"context"
	"strings"
	"testing"
	"time"
)

func fixedClock(t time.Time) *Clock {
	c := New(nil)
	c.Now = func() time.Time { return t }
	return c
}

func TestFormat_KnownZones(t *testing.T) {
	now := time.Date(2024, time.January, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		zone string
		want string
	}{
		{"UTC", "Today is Monday, January 15, 2024. The current time is 02:30 PM UTC."},
		{"America/New_York", "Today is Monday, January 15, 2024. The current time is 09:30 AM EST."},
		{"Asia/Tokyo", "Today is Monday, January 15, 2024. The current time is 11:30 PM JST."},
		{"Australia/Sydney", "Today is Tuesday, January 16, 2024. The current time is 01:30 AM AEDT."},
	}
	for _, tt := range tests {
		t.Run(tt.zone, func(t *testing.T) {
			got, known := Format(now, tt.zone)
			if !known {
				t.Fatalf("zone %q should be recognized", tt.zone)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat_UnknownZoneFallsBack(t *testing.T) {
	now := time.Date(2024, time.January, 15, 14, 30, 0, 0, time.UTC)

	got, known := Format(now, "Mars/Olympus_Mons")
	if known {
		t.Fatal("zone should not be recognized")
	}
	if !strings.HasPrefix(got, "Today is Monday, January 15, 2024. The current time is 02:30 PM UTC.") {
		t.Errorf("fallback should use UTC, got %q", got)
	}
	if !strings.Contains(got, `"Mars/Olympus_Mons"`) || !strings.Contains(got, "showing UTC instead") {
		t.Errorf("output should report the substitution, got %q", got)
	}
}

func TestHandle(t *testing.T) {
	c := fixedClock(time.Date(2026, time.July, 4, 8, 5, 0, 0, time.UTC))

	res := c.Handle(context.Background(), Args{})
	if res.Failed() {
		t.Fatalf("unexpected failure: %+v", res)
	}
	if res.Text != "Today is Saturday, July 04, 2026. The current time is 08:05 AM UTC." {
		t.Errorf("default zone: got %q", res.Text)
	}

	res = c.Handle(context.Background(), Args{Timezone: "Europe/Paris"})
	if !strings.HasSuffix(res.Text, "10:05 AM CEST.") {
		t.Errorf("Europe/Paris: got %q", res.Text)
	}

	res = c.Handle(context.Background(), Args{Timezone: "Not/AZone"})
	if res.Failed() {
		t.Error("unknown zone falls back rather than failing")
	}
	if !strings.Contains(res.Text, "showing UTC instead") {
		t.Errorf("unknown zone: got %q", res.Text)
	}
}
