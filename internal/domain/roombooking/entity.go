package roombooking

import (
	"strings"
	"time"

	"petstay-backend/internal/domain/calendar"
	"petstay-backend/internal/domain/pricing"
	"petstay-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxNoteLength = 1000

var (
	ErrRoomInactive       = errs.Conflict("room is not bookable")
	ErrPetCountInvalid    = errs.Validation("pet count must be at least 1")
	ErrHumanCountInvalid  = errs.Validation("human count must not be negative")
	ErrPetCapacity        = errs.Validation("pet count exceeds room capacity")
	ErrHumanCapacity      = errs.Validation("human count exceeds room capacity")
	ErrNoteTooLong        = errs.Validation("note is too long")
	ErrInvalidTransition  = errs.Conflict("room booking cannot make this transition")
	ErrBookingNotFound    = errs.NotFound("room booking not found")
	ErrNotBookingParty    = errs.Forbidden("actor is not a party of this room booking")
	ErrCalendarNotLocked  = errs.Conflict("room calendar changed while booking")
	ErrBookingCodeExhaust = errs.Conflict("could not allocate a unique room booking code")
)

// Room is the bookable inventory as seen at creation time.
type Room struct {
	ID                uuid.UUID
	HotelID           uuid.UUID
	ProviderProfileID uuid.UUID
	PricePerNight     pricing.Money
	PetCapacity       int
	HumanCapacity     int
	Active            bool
}

type Guests struct {
	Pets   int
	Humans int
}

func (g Guests) ValidateFor(room Room) error {
	if g.Pets < 1 {
		return ErrPetCountInvalid
	}
	if g.Humans < 0 {
		return ErrHumanCountInvalid
	}
	if g.Pets > room.PetCapacity {
		return ErrPetCapacity
	}
	if g.Humans > room.HumanCapacity {
		return ErrHumanCapacity
	}
	return nil
}

type Booking struct {
	id          uuid.UUID
	code        string
	clientID    uuid.UUID
	hotelID     uuid.UUID
	roomID      uuid.UUID
	dates       calendar.DateRange
	guests      Guests
	price       pricing.Money
	platformFee pricing.Money
	status      Status
	note        *string
	createdAt   time.Time
}

type NewParams struct {
	ClientID uuid.UUID
	Room     Room
	Dates    calendar.DateRange
	Guests   Guests
	// Days are the calendar rows of Dates, read under lock.
	Days   []calendar.Day
	Policy pricing.FeePolicy
	Today  time.Time
	Note   string
	Now    time.Time
}

// New builds a PENDING booking priced from the locked calendar rows. The
// booking code is assigned separately because it may need to be regenerated.
func New(p NewParams) (*Booking, error) {
	if !p.Room.Active {
		return nil, ErrRoomInactive
	}
	if err := p.Dates.EnsureNotPast(p.Today); err != nil {
		return nil, err
	}
	if err := p.Guests.ValidateFor(p.Room); err != nil {
		return nil, err
	}
	note, err := normalizeNote(p.Note)
	if err != nil {
		return nil, err
	}
	if err := calendar.EnsureBookable(p.Dates, p.Days); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errs.Wrap(err, "generate room booking id")
	}
	price := calendar.CalculateTotalPrice(p.Days, p.Room.PricePerNight)

	return &Booking{
		id:          id,
		clientID:    p.ClientID,
		hotelID:     p.Room.HotelID,
		roomID:      p.Room.ID,
		dates:       p.Dates,
		guests:      p.Guests,
		price:       price,
		platformFee: p.Policy.Fee(price),
		status:      StatusPending,
		note:        note,
		createdAt:   p.Now,
	}, nil
}

func normalizeNote(raw string) (*string, error) {
	note := strings.TrimSpace(raw)
	if note == "" {
		return nil, nil
	}
	if len([]rune(note)) > MaxNoteLength {
		return nil, ErrNoteTooLong
	}
	return &note, nil
}

func (b *Booking) AssignCode(code string) { b.code = code }

func (b *Booking) Breakdown() pricing.Breakdown {
	bd := pricing.NewBreakdown(b.price, b.platformFee)
	bd.Nights = b.dates.Nights()
	return bd
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) Code() string               { return b.code }
func (b *Booking) ClientID() uuid.UUID        { return b.clientID }
func (b *Booking) HotelID() uuid.UUID         { return b.hotelID }
func (b *Booking) RoomID() uuid.UUID          { return b.roomID }
func (b *Booking) Dates() calendar.DateRange  { return b.dates }
func (b *Booking) Guests() Guests             { return b.guests }
func (b *Booking) Price() pricing.Money       { return b.price }
func (b *Booking) PlatformFee() pricing.Money { return b.platformFee }
func (b *Booking) GrandTotal() pricing.Money  { return b.price + b.platformFee }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) Note() *string              { return b.note }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
