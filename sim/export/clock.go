// Package export renders a finished ResultTable for people: wall-clock
// projection of offsets, the delimited-text download and a JSON report.
package export

import (
	"fmt"
	"time"
)

// DefaultStartClock is the time of day the duty roster begins.
const DefaultStartClock = "07:00"

const day = 24 * time.Hour

// ParseClock parses an "HH:MM" time of day into an offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("parsing start time %q (want HH:MM): %w", s, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// ClockTime formats start plus offset simulated seconds as "HH:MM:SS",
// wrapping past midnight.
func ClockTime(start time.Duration, offset int64) string {
	d := (start + time.Duration(offset)*time.Second) % day
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	sec := (d % time.Minute) / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
}
