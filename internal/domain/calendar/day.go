package calendar

import (
	"time"

	"petstay-backend/internal/domain/pricing"
	"petstay-backend/internal/pkg/errs"
	"petstay-backend/internal/pkg/patch"
)

var ErrRangeUnavailable = errs.Conflict("room is not available for the requested dates")

type Day struct {
	Date          time.Time
	IsAvailable   bool
	PriceOverride *int64
}

type Availability struct {
	TotalNights     int
	AvailableNights int
	IsAvailable     bool
}

// CalculateTotalPrice sums the per-day override, or basePrice when a day has none.
func CalculateTotalPrice(days []Day, basePrice pricing.Money) pricing.Money {
	var total pricing.Money
	for _, d := range days {
		total += pricing.Money(patch.Coalesce(d.PriceOverride, int64(basePrice)))
	}
	return total
}

// CheckAvailability is all-or-nothing: a partially free range is unavailable.
func CheckAvailability(r DateRange, days []Day) Availability {
	seen := make(map[time.Time]struct{}, len(days))
	for _, d := range days {
		date := truncate(d.Date)
		if !d.IsAvailable || date.Before(r.checkIn) || !date.Before(r.checkOut) {
			continue
		}
		seen[date] = struct{}{}
	}
	total := r.Nights()
	return Availability{
		TotalNights:     total,
		AvailableNights: len(seen),
		IsAvailable:     len(seen) == total,
	}
}

// EnsureBookable checks the locked rows of a range before they are marked unavailable.
func EnsureBookable(r DateRange, days []Day) error {
	if !CheckAvailability(r, days).IsAvailable || len(days) != r.Nights() {
		return ErrRangeUnavailable
	}
	return nil
}
