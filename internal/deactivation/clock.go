package deactivation

import "time"

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns current UTC time.
func (c SystemClock) Now() time.Time {
	return time.Now().UTC()
}
