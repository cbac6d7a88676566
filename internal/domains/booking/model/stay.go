package model

import (
	"errors"
	"time"
)

var ErrStayOrder = errors.New("stay must end at or after it starts")

// Stay is the continuous interval a booking occupies, from check-in on the
// first day to check-out on the last day. Both endpoints are inclusive.
type Stay struct {
	FromDate time.Time
	ToDate   time.Time
	FromTime time.Time
	ToTime   time.Time
}

func NewStay(fromDate, toDate, fromTime, toTime time.Time) (Stay, error) {
	stay := Stay{
		FromDate: fromDate,
		ToDate:   toDate,
		FromTime: fromTime,
		ToTime:   toTime,
	}

	if stay.End().Before(stay.Start()) {
		return Stay{}, ErrStayOrder
	}

	return stay, nil
}

// Start is the check-in instant on the first day.
func (s Stay) Start() time.Time {
	return combine(s.FromDate, s.FromTime)
}

// End is the check-out instant on the last day.
func (s Stay) End() time.Time {
	return combine(s.ToDate, s.ToTime)
}

// Days is the number of calendar days the stay spans, endpoints inclusive.
// A same-day stay counts as one day.
func (s Stay) Days() int {
	from := s.FromDate.Truncate(24 * time.Hour)
	to := s.ToDate.Truncate(24 * time.Hour)

	return int(to.Sub(from).Hours()/24) + 1
}

// Overlaps reports whether two stays share at least one instant. Endpoints
// touching counts as a conflict.
func (s Stay) Overlaps(other Stay) bool {
	return !s.Start().After(other.End()) && !other.Start().After(s.End())
}

func combine(date, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		date.Location(),
	)
}
