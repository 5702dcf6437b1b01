package app

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Timestamp converts t to fractional seconds since the Unix epoch.
// Whole seconds stay exact.
func Timestamp(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

func currentTime(clock clockwork.Clock) float64 {
	return Timestamp(clock.Now())
}
