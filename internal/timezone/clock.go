package timezone

import "time"

// Clock supplies the current instant in the service timezone.
// Every temporal predicate (conflict checks, schedule cutoffs) goes
// through a Clock so tests can pin "now".
type Clock interface {
	Now() time.Time
}

type serviceClock struct {
	tz string
}

func NewClock(tz string) Clock {
	return serviceClock{tz: tz}
}

func (c serviceClock) Now() time.Time {
	return NowIn(c.tz)
}

// FixedClock always returns the same instant.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Instant
}
