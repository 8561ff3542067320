//go:build unit || e2e

package builder

import (
	"time"

	"petstay-backend/internal/domain/pricing"
	"petstay-backend/internal/domain/sitterbooking"
	reqdto "petstay-backend/internal/handler/dto/request"
	"petstay-backend/internal/pkg/ptr"
	"petstay-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type SitterBookingBuilder struct {
	ClientID     uuid.UUID
	ProfileID    uuid.UUID
	Offering     sitterbooking.Offering
	Additional   []sitterbooking.AdditionalService
	Address      *sitterbooking.Address
	StartingTime time.Time
	MaxExtras    int
	FeeBps       *int64
	FlatFee      *int64
	Note         string
	Now          time.Time
}

func NewSitterBookingBuilder() *SitterBookingBuilder {
	profileID := uuid.New()
	now := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	return &SitterBookingBuilder{
		ClientID:  uuid.New(),
		ProfileID: profileID,
		Offering: sitterbooking.Offering{
			ID:                uuid.New(),
			Kind:              sitterbooking.OfferingService,
			ProviderProfileID: profileID,
			Name:              "Dog walking",
			Price:             2000,
			DurationMinutes:   60,
			Active:            true,
		},
		Address:      &sitterbooking.Address{ID: uuid.New(), Snapshot: "1-2-3 Shibuya, Tokyo"},
		StartingTime: now.Add(24 * time.Hour),
		MaxExtras:    5,
		FeeBps:       ptr.Of[int64](1000),
		Now:          now,
	}
}

func (b *SitterBookingBuilder) With(mutate func(*SitterBookingBuilder)) *SitterBookingBuilder {
	mutate(b)
	return b
}

// AsPackage turns the primary offering into a package including the given services.
func (b *SitterBookingBuilder) AsPackage(included ...uuid.UUID) *SitterBookingBuilder {
	b.Offering.Kind = sitterbooking.OfferingPackage
	b.Offering.Name = "Full day care"
	b.Offering.IncludedServiceIDs = included
	return b
}

func (b *SitterBookingBuilder) WithExtra(name string, price int64, minutes int) *SitterBookingBuilder {
	b.Additional = append(b.Additional, sitterbooking.AdditionalService{
		ID:                uuid.New(),
		ProviderProfileID: b.ProfileID,
		Name:              name,
		Price:             pricing.Money(price),
		DurationMinutes:   minutes,
		Active:            true,
	})
	return b
}

func (b *SitterBookingBuilder) BuildDomain() (*sitterbooking.Booking, error) {
	return sitterbooking.New(sitterbooking.NewParams{
		ClientID:              b.ClientID,
		Offering:              b.Offering,
		Additional:            b.Additional,
		Address:               b.Address,
		StartingTime:          b.StartingTime,
		MaxAdditionalServices: b.MaxExtras,
		Policy:                pricing.FeePolicy{PercentageBps: b.FeeBps, FlatAmount: b.FlatFee},
		Note:                  b.Note,
		Now:                   b.Now,
	})
}

func (b *SitterBookingBuilder) BuildCreateDTO() reqdto.CreateSitterBookingRequest {
	req := reqdto.CreateSitterBookingRequest{
		StartingTime: b.StartingTime,
		Note:         b.Note,
	}
	id := b.Offering.ID
	if b.Offering.Kind == sitterbooking.OfferingPackage {
		req.PackageID = &id
	} else {
		req.ServiceID = &id
	}
	for _, a := range b.Additional {
		req.AdditionalServiceIDs = append(req.AdditionalServiceIDs, a.ID)
	}
	return req
}

// BuildView is a read model consistent with the builder's offering, without a fee.
func (b *SitterBookingBuilder) BuildView(status string) *queries.SitterBookingView {
	price := b.Offering.Price.Int64()
	duration := b.Offering.DurationMinutes
	extras := make([]queries.LineItemView, 0, len(b.Additional))
	for _, a := range b.Additional {
		price += a.Price.Int64()
		duration += a.DurationMinutes
		extras = append(extras, queries.LineItemView{
			ServiceID:       a.ID,
			Name:            a.Name,
			Price:           a.Price.Int64(),
			DurationMinutes: a.DurationMinutes,
		})
	}
	offeringID := b.Offering.ID
	v := &queries.SitterBookingView{
		ID:                 uuid.Must(uuid.NewV7()),
		Code:               "SB-TEST0001",
		ClientID:           b.ClientID,
		ProviderProfileID:  b.ProfileID,
		SitterUserID:       uuid.New(),
		SitterName:         "Test Sitter",
		OfferingName:       b.Offering.Name,
		OfferingPrice:      b.Offering.Price.Int64(),
		OfferingDuration:   b.Offering.DurationMinutes,
		AdditionalServices: extras,
		AddressSnapshot:    "1-2-3 Shibuya, Tokyo",
		StartingTime:       b.StartingTime,
		FinishingTime:      b.StartingTime.Add(time.Duration(duration) * time.Minute),
		DurationMinutes:    duration,
		Price:              price,
		GrandTotal:         price,
		Status:             status,
		CreatedAt:          b.Now,
		UpdatedAt:          b.Now,
	}
	if b.Address != nil {
		v.AddressID = b.Address.ID
	}
	if b.Offering.Kind == sitterbooking.OfferingPackage {
		v.PackageID = &offeringID
	} else {
		v.ServiceID = &offeringID
	}
	return v
}
