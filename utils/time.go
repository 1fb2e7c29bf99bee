package utils

import (
	"fmt"
	"time"
)

var clockLayouts = []string{"15:04", "15:04:05", "15:04:05.999999"}

// ParseClock parses a 24-hour "HH:MM" (or "HH:MM:SS") time of day and
// returns the number of minutes since midnight. Seconds are dropped.
func ParseClock(s string) (int, error) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour()*60 + t.Minute(), nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q", s)
}

// FormatClock renders minutes since midnight as zero-padded "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
