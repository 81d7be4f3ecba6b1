package stopwatch

import (
	"fmt"
	"time"
)

// Format renders d as zero-padded HH:MM:SS.
//
// Sub-second precision is truncated and hours are taken modulo 24.
// Negative durations render as 00:00:00.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	s := int64(d / time.Second)
	hours := (s / 3600) % 24
	minutes := (s % 3600) / 60
	seconds := s % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
