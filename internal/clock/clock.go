// Package clock answers "what day/time is it" questions for a requested time zone.
package clock

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	_ "time/tzdata" // embed the zone database so lookups work on minimal hosts

	"github.com/ironsheep/roku-tools/internal/tools"
)

// ReferenceZone is used when a requested zone is not recognized.
const ReferenceZone = "UTC"

// Clock formats the current time. Now is injectable for tests.
type Clock struct {
	Now    func() time.Time
	Logger *slog.Logger
}

// New returns a Clock reading the system time.
func New(logger *slog.Logger) *Clock {
	if logger == nil {
		logger = slog.Default()
	}
	return &Clock{Now: time.Now, Logger: logger}
}

// Args are the arguments of get_current_datetime.
type Args struct {
	Timezone string `json:"timezone,omitempty" jsonschema:"IANA time zone to report the time in, e.g. Europe/London (default: UTC)"`
}

// Format renders now in the named zone. The second return value is false when the zone was not
// recognized and the reference zone was used instead.
func Format(now time.Time, zone string) (string, bool) {
	loc, err := time.LoadLocation(zone)
	known := err == nil && zone != ""
	if !known {
		loc = time.UTC
	}
	local := now.In(loc)

	text := fmt.Sprintf("Today is %s. The current time is %s %s.",
		local.Format("Monday, January 02, 2006"),
		local.Format("03:04 PM"),
		local.Format("MST"),
	)
	if !known {
		text += fmt.Sprintf(" I didn't recognize the time zone %q, so I'm showing %s instead.", zone, ReferenceZone)
	}
	return text, known
}

// Handle is the get_current_datetime handler.
func (c *Clock) Handle(_ context.Context, a Args) tools.Result {
	zone := strings.TrimSpace(a.Timezone)
	if zone == "" {
		zone = ReferenceZone
	}
	text, known := Format(c.Now(), zone)
	if !known {
		c.Logger.Warn("unknown time zone, using reference zone", "timezone", zone, "reference", ReferenceZone)
	}
	c.Logger.Debug("current datetime", "text", text)
	return tools.OK(text)
}
