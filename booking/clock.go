package booking

import (
	"fmt"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Clock converts wall-clock date/time strings into absolute instants under a
// fixed UTC offset. Bookings are entered in the organisation's local time;
// overlap checks and reminder windows run on the derived instants.
type Clock struct {
	loc *time.Location
}

func NewClock(offsetMinutes int) Clock {
	name := fmt.Sprintf("UTC%+03d:%02d", offsetMinutes/60, abs(offsetMinutes%60))
	return Clock{loc: time.FixedZone(name, offsetMinutes*60)}
}

// At converts a (date, local time) pair into an absolute instant.
func (c Clock) At(date, clock string) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, date, c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be formatted as %s", ErrValidation, dateLayout)
	}

	t, err := time.Parse(timeLayout, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: time must be formatted as %s", ErrValidation, timeLayout)
	}

	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, c.loc).UTC(), nil
}

// Interval derives both instants of a booking's slot and enforces start < end.
func (c Clock) Interval(date, start, end string) (time.Time, time.Time, error) {
	startsAt, err := c.At(date, start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	endsAt, err := c.At(date, end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if !startsAt.Before(endsAt) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start must be before end", ErrValidation)
	}

	return startsAt, endsAt, nil
}

// Overlaps reports whether the half-open intervals [aStart,aEnd) and
// [bStart,bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
