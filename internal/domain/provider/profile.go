package provider

import (
	"petstay-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrProviderInactive   = errs.Conflict("provider is not accepting bookings")
	ErrProviderOnVacation = errs.Conflict("provider is on vacation")
)

type Kind string

const (
	KindHotel  Kind = "HOTEL"
	KindSitter Kind = "SITTER"
)

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusInactive  Status = "INACTIVE"
	StatusSuspended Status = "SUSPENDED"
)

// Availability is the provider's own state, independent of calendar data.
type Availability string

const (
	AvailabilityOnVacation Availability = "ON_VACATION"
	AvailabilityOnService  Availability = "ON_SERVICE"
	AvailabilityOffService Availability = "OFF_SERVICE"
)

type Profile struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Kind         Kind
	Status       Status
	Availability Availability
}

func (p Profile) CanAcceptBookings() error {
	if p.Status != StatusActive {
		return ErrProviderInactive
	}
	if p.Availability == AvailabilityOnVacation {
		return ErrProviderOnVacation
	}
	return nil
}

func (p Profile) IsOwnedBy(userID uuid.UUID) bool {
	return p.UserID == userID
}
