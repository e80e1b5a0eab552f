package schedule

import (
	"errors"
	"fmt"
	"time"
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share at least one instant. Intervals that only touch at
// an endpoint do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// ClockTime is a time of day with minute precision, independent of any
// calendar date. Availability slots compare these directly.
type ClockTime struct {
	Hour   int
	Minute int
}

var ErrInvalidClockTime = errors.New("invalid clock time, expected HH:MM")

func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, ErrInvalidClockTime
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c ClockTime) Before(other ClockTime) bool {
	return c.Minutes() < other.Minutes()
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// OverlapsClock applies the same half-open rule to time-of-day intervals.
func OverlapsClock(aStart, aEnd, bStart, bEnd ClockTime) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
