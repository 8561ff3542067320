package sitterbooking

import (
	"petstay-backend/internal/domain/pricing"

	"github.com/google/uuid"
)

type OfferingKind string

const (
	OfferingService OfferingKind = "SERVICE"
	OfferingPackage OfferingKind = "PACKAGE"
)

// Offering is the primary service or package a booking is made for.
type Offering struct {
	ID                uuid.UUID
	Kind              OfferingKind
	ProviderProfileID uuid.UUID
	Name              string
	Price             pricing.Money
	DurationMinutes   int
	Active            bool
	// IncludedServiceIDs is only set for packages.
	IncludedServiceIDs []uuid.UUID
}

func (o Offering) Includes(serviceID uuid.UUID) bool {
	if o.Kind == OfferingService {
		return o.ID == serviceID
	}
	for _, id := range o.IncludedServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

// AdditionalService is an extra line item snapshotted onto the booking.
type AdditionalService struct {
	ID                uuid.UUID
	ProviderProfileID uuid.UUID
	Name              string
	Price             pricing.Money
	DurationMinutes   int
	Active            bool
}

// Selection is the client's choice of primary offering. Exactly one id is set.
type Selection struct {
	ServiceID *uuid.UUID
	PackageID *uuid.UUID
}

func (s Selection) Validate() error {
	if (s.ServiceID == nil) == (s.PackageID == nil) {
		return ErrOfferingSelection
	}
	return nil
}

func (s Selection) Kind() OfferingKind {
	if s.PackageID != nil {
		return OfferingPackage
	}
	return OfferingService
}

func (s Selection) ID() uuid.UUID {
	if s.PackageID != nil {
		return *s.PackageID
	}
	if s.ServiceID != nil {
		return *s.ServiceID
	}
	return uuid.Nil
}
