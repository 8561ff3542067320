package sitterbooking

import (
	"strings"
	"time"

	"petstay-backend/internal/domain/pricing"
	"petstay-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxNoteLength = 1000

var (
	ErrOfferingSelection      = errs.Validation("exactly one of serviceId or packageId is required")
	ErrOfferingInactive       = errs.Validation("offering is not available")
	ErrStartNotInFuture       = errs.Validation("starting time must be in the future")
	ErrTooManyAdditional      = errs.Validation("too many additional services")
	ErrDuplicateAdditional    = errs.Validation("additional services must be unique")
	ErrAdditionalForeign      = errs.Validation("additional service belongs to another provider")
	ErrAdditionalIncluded     = errs.Validation("additional service is already included in the offering")
	ErrAdditionalInactive     = errs.Validation("additional service is not available")
	ErrAddressRequired        = errs.Validation("client has no active address")
	ErrNoteTooLong            = errs.Validation("sitter booking note is too long")
	ErrProofRequired          = errs.Validation("at least one completion proof url is required")
	ErrTooManyProofURLs       = errs.Validation("too many completion proof urls")
	ErrInvalidProofURL        = errs.Validation("completion proof url must be an absolute http(s) url")
	ErrBookingNotFound        = errs.NotFound("sitter booking not found")
	ErrOfferingNotFound       = errs.NotFound("sitter offering not found")
	ErrNotBookingParty        = errs.Forbidden("actor is not a party of this sitter booking")
	ErrOnlyClientCompletes    = errs.Forbidden("only the client can complete a sitter booking")
	ErrInvalidTransition      = errs.Conflict("sitter booking cannot make this transition")
	ErrSlotTaken              = errs.Conflict("sitter already has a booking in this time window")
	ErrAnotherInProgress      = errs.Conflict("sitter already has a booking in progress")
	ErrTooEarlyToStart        = errs.Conflict("booking cannot be started this early")
	ErrBookingCodeExhausted   = errs.Conflict("could not allocate a unique sitter booking code")
	ErrCancelNotAllowedStatus = errs.Conflict("sitter booking can no longer be cancelled")
)

// Address is the client's location captured at booking time.
type Address struct {
	ID       uuid.UUID
	Snapshot string
}

type Booking struct {
	id                uuid.UUID
	code              string
	clientID          uuid.UUID
	providerProfileID uuid.UUID
	offering          Offering
	additional        []AdditionalService
	address           Address
	startingTime      time.Time
	finishingTime     time.Time
	durationMinutes   int
	price             pricing.Money
	platformFee       pricing.Money
	status            Status
	note              *string
	createdAt         time.Time
}

type NewParams struct {
	ClientID              uuid.UUID
	Offering              Offering
	Additional            []AdditionalService
	Address               *Address
	StartingTime          time.Time
	MaxAdditionalServices int
	Policy                pricing.FeePolicy
	Note                  string
	Now                   time.Time
}

// New builds a PENDING booking. The finishing time is derived from the total
// duration of the offering and its additional services.
func New(p NewParams) (*Booking, error) {
	if !p.Offering.Active {
		return nil, ErrOfferingInactive
	}
	if !p.StartingTime.After(p.Now) {
		return nil, ErrStartNotInFuture
	}
	if err := validateAdditional(p.Offering, p.Additional, p.MaxAdditionalServices); err != nil {
		return nil, err
	}
	if p.Address == nil {
		return nil, ErrAddressRequired
	}
	note := strings.TrimSpace(p.Note)
	if len([]rune(note)) > MaxNoteLength {
		return nil, ErrNoteTooLong
	}

	price := p.Offering.Price
	duration := p.Offering.DurationMinutes
	for _, s := range p.Additional {
		price += s.Price
		duration += s.DurationMinutes
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errs.Wrap(err, "generate sitter booking id")
	}

	b := &Booking{
		id:                id,
		clientID:          p.ClientID,
		providerProfileID: p.Offering.ProviderProfileID,
		offering:          p.Offering,
		additional:        p.Additional,
		address:           *p.Address,
		startingTime:      p.StartingTime,
		finishingTime:     p.StartingTime.Add(time.Duration(duration) * time.Minute),
		durationMinutes:   duration,
		price:             price,
		platformFee:       p.Policy.Fee(price),
		status:            StatusPending,
		createdAt:         p.Now,
	}
	if note != "" {
		b.note = &note
	}
	return b, nil
}

func validateAdditional(primary Offering, extras []AdditionalService, limit int) error {
	if len(extras) > limit {
		return ErrTooManyAdditional
	}
	seen := make(map[uuid.UUID]struct{}, len(extras))
	for _, s := range extras {
		if _, dup := seen[s.ID]; dup {
			return ErrDuplicateAdditional
		}
		seen[s.ID] = struct{}{}
		if s.ProviderProfileID != primary.ProviderProfileID {
			return ErrAdditionalForeign
		}
		if primary.Includes(s.ID) {
			return ErrAdditionalIncluded
		}
		if !s.Active {
			return ErrAdditionalInactive
		}
	}
	return nil
}

func (b *Booking) AssignCode(code string) { b.code = code }

func (b *Booking) Breakdown() pricing.Breakdown {
	bd := pricing.NewBreakdown(b.price, b.platformFee)
	bd.DurationMinutes = b.durationMinutes
	bd.LineItems = append(bd.LineItems, pricing.LineItem{
		Label:           b.offering.Name,
		Amount:          b.offering.Price,
		DurationMinutes: b.offering.DurationMinutes,
	})
	for _, s := range b.additional {
		bd.LineItems = append(bd.LineItems, pricing.LineItem{
			Label:           s.Name,
			Amount:          s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}
	return bd
}

func (b *Booking) ServiceID() *uuid.UUID {
	if b.offering.Kind != OfferingService {
		return nil
	}
	id := b.offering.ID
	return &id
}

func (b *Booking) PackageID() *uuid.UUID {
	if b.offering.Kind != OfferingPackage {
		return nil
	}
	id := b.offering.ID
	return &id
}

func (b *Booking) ID() uuid.UUID                   { return b.id }
func (b *Booking) Code() string                    { return b.code }
func (b *Booking) ClientID() uuid.UUID             { return b.clientID }
func (b *Booking) ProviderProfileID() uuid.UUID    { return b.providerProfileID }
func (b *Booking) Offering() Offering              { return b.offering }
func (b *Booking) Additional() []AdditionalService { return b.additional }
func (b *Booking) Address() Address                { return b.address }
func (b *Booking) StartingTime() time.Time         { return b.startingTime }
func (b *Booking) FinishingTime() time.Time        { return b.finishingTime }
func (b *Booking) DurationMinutes() int            { return b.durationMinutes }
func (b *Booking) Price() pricing.Money            { return b.price }
func (b *Booking) PlatformFee() pricing.Money      { return b.platformFee }
func (b *Booking) GrandTotal() pricing.Money       { return b.price + b.platformFee }
func (b *Booking) Status() Status                  { return b.status }
func (b *Booking) Note() *string                   { return b.note }
func (b *Booking) CreatedAt() time.Time            { return b.createdAt }
