// Package stopwatch renders elapsed time on a single terminal line.
//
// Runner.Run redraws the elapsed reading once per Interval until its context
// is cancelled and returns the last reading it drew. Runner.Blink plays the
// short "stopped" animation afterwards. Both wait with a select over a clock
// timer and ctx.Done(), so cancellation ends the wait immediately.
//
// Readings are HH:MM:SS of the sub-day remainder: a run of 24 hours or more
// wraps the hour count back to 00.
package stopwatch
