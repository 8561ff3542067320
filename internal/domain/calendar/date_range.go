package calendar

import (
	"time"

	"petstay-backend/internal/pkg/errs"
)

const DateLayout = "2006-01-02"

const day = 24 * time.Hour

var (
	ErrInvalidDate      = errs.Validation("invalid date, expected YYYY-MM-DD")
	ErrInvalidDateRange = errs.Validation("check-out must be after check-in")
	ErrDateInPast       = errs.Validation("check-in must not be in the past")
)

// DateRange is a half-open range of calendar days [CheckIn, CheckOut).
type DateRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	in, out := truncate(checkIn), truncate(checkOut)
	if !out.After(in) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{checkIn: in, checkOut: out}, nil
}

func ParseDateRange(checkIn, checkOut string) (DateRange, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return DateRange{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(in, out)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// Today returns the calendar day of now in loc, as a UTC midnight value.
func Today(now time.Time, loc *time.Location) time.Time {
	return truncate(now.In(loc))
}

func (r DateRange) CheckIn() time.Time  { return r.checkIn }
func (r DateRange) CheckOut() time.Time { return r.checkOut }

// Nights is ceil((checkOut - checkIn) / 1 day), at least 1 for a valid range.
func (r DateRange) Nights() int {
	d := r.checkOut.Sub(r.checkIn)
	n := int(d / day)
	if d%day != 0 {
		n++
	}
	return n
}

func (r DateRange) Dates() []time.Time {
	dates := make([]time.Time, 0, r.Nights())
	for d := r.checkIn; d.Before(r.checkOut); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// EnsureNotPast accepts a check-in of today. Stays are whole days, so a
// check-in date is future until the day ends.
func (r DateRange) EnsureNotPast(today time.Time) error {
	if r.checkIn.Before(truncate(today)) {
		return ErrDateInPast
	}
	return nil
}

func (r DateRange) String() string {
	return r.checkIn.Format(DateLayout) + "/" + r.checkOut.Format(DateLayout)
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
