package capability

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

type TimeSpan = timespan.TimeSpan

// Clock supplies the current time to helpers that would otherwise read it implicitly.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

func Between(from, to time.Time) TimeSpan {
	return timespan.BetweenTimes(from, to)
}

const epsilon = time.Millisecond

// Instant is a span of two milliseconds centred on the clock's current time.
func Instant(c Clock) TimeSpan {
	now := c.Now()
	return timespan.BetweenTimes(now.Add(-1*epsilon), now.Add(epsilon))
}
