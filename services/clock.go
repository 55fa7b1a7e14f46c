package services

import "time"

// Clock returns the current time. Each request reads it once so every
// "now" default within that request agrees.
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now().UTC()
}
