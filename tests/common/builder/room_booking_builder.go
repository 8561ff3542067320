//go:build unit || e2e

package builder

import (
	"time"

	"petstay-backend/internal/domain/calendar"
	"petstay-backend/internal/domain/pricing"
	"petstay-backend/internal/domain/roombooking"
	reqdto "petstay-backend/internal/handler/dto/request"
	"petstay-backend/internal/pkg/ptr"
	"petstay-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBookingBuilder struct {
	ClientID      uuid.UUID
	RoomID        uuid.UUID
	HotelID       uuid.UUID
	ProfileID     uuid.UUID
	PricePerNight int64
	PetCapacity   int
	HumanCapacity int
	RoomActive    bool
	CheckIn       string
	CheckOut      string
	Pets          int
	Humans        int
	Note          string
	FlatFee       *int64
	FeeBps        *int64
	Now           time.Time
	// Overrides maps a date (YYYY-MM-DD) to a price override; Unavailable marks dates as locked.
	Overrides   map[string]int64
	Unavailable map[string]bool
	MissingDays map[string]bool
}

func NewRoomBookingBuilder() *RoomBookingBuilder {
	return &RoomBookingBuilder{
		ClientID:      uuid.New(),
		RoomID:        uuid.New(),
		HotelID:       uuid.New(),
		ProfileID:     uuid.New(),
		PricePerNight: 1000,
		PetCapacity:   2,
		HumanCapacity: 2,
		RoomActive:    true,
		CheckIn:       "2026-01-22",
		CheckOut:      "2026-01-26",
		Pets:          1,
		Humans:        1,
		FlatFee:       ptr.Of[int64](5000),
		Now:           time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
		Overrides:     map[string]int64{},
		Unavailable:   map[string]bool{},
		MissingDays:   map[string]bool{},
	}
}

func (b *RoomBookingBuilder) With(mutate func(*RoomBookingBuilder)) *RoomBookingBuilder {
	mutate(b)
	return b
}

func (b *RoomBookingBuilder) Room() roombooking.Room {
	return roombooking.Room{
		ID:                b.RoomID,
		HotelID:           b.HotelID,
		ProviderProfileID: b.ProfileID,
		PricePerNight:     pricing.Money(b.PricePerNight),
		PetCapacity:       b.PetCapacity,
		HumanCapacity:     b.HumanCapacity,
		Active:            b.RoomActive,
	}
}

// Days returns calendar rows for every date of the range, unless listed in MissingDays.
func (b *RoomBookingBuilder) Days() []calendar.Day {
	in, _ := calendar.ParseDate(b.CheckIn)
	out, _ := calendar.ParseDate(b.CheckOut)
	var days []calendar.Day
	for d := in; d.Before(out); d = d.AddDate(0, 0, 1) {
		key := d.Format(calendar.DateLayout)
		if b.MissingDays[key] {
			continue
		}
		day := calendar.Day{Date: d, IsAvailable: !b.Unavailable[key]}
		if o, ok := b.Overrides[key]; ok {
			day.PriceOverride = ptr.Of(o)
		}
		days = append(days, day)
	}
	return days
}

func (b *RoomBookingBuilder) BuildDomain() (*roombooking.Booking, error) {
	dates, err := calendar.ParseDateRange(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	return roombooking.New(roombooking.NewParams{
		ClientID: b.ClientID,
		Room:     b.Room(),
		Dates:    dates,
		Guests:   roombooking.Guests{Pets: b.Pets, Humans: b.Humans},
		Days:     b.Days(),
		Policy:   pricing.FeePolicy{PercentageBps: b.FeeBps, FlatAmount: b.FlatFee},
		Today:    calendar.Today(b.Now, time.UTC),
		Note:     b.Note,
		Now:      b.Now,
	})
}

func (b *RoomBookingBuilder) BuildCreateDTO() reqdto.CreateRoomBookingRequest {
	return reqdto.CreateRoomBookingRequest{
		RoomID:     b.RoomID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		PetCount:   b.Pets,
		HumanCount: b.Humans,
		Note:       b.Note,
	}
}

// BuildView prices the booking with the builder's nightly rate and flat fee only.
func (b *RoomBookingBuilder) BuildView(status string) *queries.RoomBookingView {
	in, _ := calendar.ParseDate(b.CheckIn)
	out, _ := calendar.ParseDate(b.CheckOut)
	nights := int(out.Sub(in).Hours() / 24)
	price := b.PricePerNight * int64(nights)
	var fee int64
	if b.FlatFee != nil {
		fee = *b.FlatFee
	}
	return &queries.RoomBookingView{
		ID:          uuid.Must(uuid.NewV7()),
		Code:        "RB-TEST0001",
		ClientID:    b.ClientID,
		HotelID:     b.HotelID,
		HotelName:   "Paws Inn",
		RoomID:      b.RoomID,
		RoomName:    "Standard",
		OwnerUserID: uuid.New(),
		CheckIn:     in,
		CheckOut:    out,
		Nights:      nights,
		PetCount:    b.Pets,
		HumanCount:  b.Humans,
		Price:       price,
		PlatformFee: fee,
		GrandTotal:  price + fee,
		Status:      status,
		CreatedAt:   b.Now,
		UpdatedAt:   b.Now,
	}
}
