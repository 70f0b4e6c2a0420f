package framework

import "time"

// Instant is a monotonic timestamp in microseconds since boot.
// Arithmetic is unsigned so it stays correct across wraparound.
type Instant uint64

// Sub returns the elapsed time from earlier to i.
func (i Instant) Sub(earlier Instant) Instant {
	return i - earlier
}

// Millis converts the value to milliseconds.
func (i Instant) Millis() uint64 {
	return uint64(i) / 1000
}

// InstantFromMillis creates an Instant from milliseconds.
func InstantFromMillis(ms uint64) Instant {
	return Instant(ms * 1000)
}

// Clock is a monotonic time source.
type Clock interface {
	Now() Instant
}

// MonotonicClock counts from the time it's created.
type MonotonicClock struct {
	boot time.Time
}

// NewMonotonicClock creates a MonotonicClock starting at zero.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{boot: time.Now()}
}

// Now implements Clock.
func (c *MonotonicClock) Now() Instant {
	return Instant(time.Since(c.boot) / time.Microsecond)
}
