package config

import "time"

// TimestampLayout is the human-readable layout used for generated
// timestamps in snapshots and log lines.
const TimestampLayout = "2006-01-02 15:04:05"

// Clock supplies the current time. Production code uses SystemClock;
// tests inject a fixed clock for deterministic output.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Timestamp returns the clock's current time-and-date as a
// human-readable string.
func Timestamp(c Clock) string {
	return c.Now().Format(TimestampLayout)
}
