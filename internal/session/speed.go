package session

import (
	"math"
	"time"
)

// MinElapsed is the shortest duration used when computing speed. It keeps a
// session finished within the same instant it started from reporting an
// infinite rate.
const MinElapsed = time.Second

// Clock abstracts time so sessions can be driven deterministically in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ComputeSpeed returns words per minute rounded to the nearest integer.
func ComputeSpeed(start, end time.Time, words int) int {
	if words <= 0 {
		return 0
	}
	elapsed := end.Sub(start)
	if elapsed < MinElapsed {
		elapsed = MinElapsed
	}
	return int(math.Round(float64(words) / elapsed.Minutes()))
}
