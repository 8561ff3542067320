package queries

import (
	"time"

	"github.com/google/uuid"
)

type LineItemView struct {
	ServiceID       uuid.UUID `json:"service_id"`
	Name            string    `json:"name"`
	Price           int64     `json:"price"`
	DurationMinutes int       `json:"duration_minutes"`
}

type PriceBreakdownView struct {
	Base            int64          `json:"base"`
	PlatformFee     int64          `json:"platform_fee"`
	GrandTotal      int64          `json:"grand_total"`
	Nights          *int           `json:"nights,omitempty"`
	DurationMinutes *int           `json:"duration_minutes,omitempty"`
	LineItems       []LineItemView `json:"line_items,omitempty"`
}

// RoomBookingView is the full read model of a room booking
type RoomBookingView struct {
	ID           uuid.UUID  `json:"id"`
	Code         string     `json:"code"`
	ClientID     uuid.UUID  `json:"client_id"`
	HotelID      uuid.UUID  `json:"hotel_id"`
	HotelName    string     `json:"hotel_name"`
	RoomID       uuid.UUID  `json:"room_id"`
	RoomName     string     `json:"room_name"`
	OwnerUserID  uuid.UUID  `json:"owner_user_id"`
	CheckIn      time.Time  `json:"check_in"`
	CheckOut     time.Time  `json:"check_out"`
	Nights       int        `json:"nights"`
	PetCount     int        `json:"pet_count"`
	HumanCount   int        `json:"human_count"`
	Price        int64      `json:"price"`
	PlatformFee  int64      `json:"platform_fee"`
	GrandTotal   int64      `json:"grand_total"`
	Status       string     `json:"status"`
	Note         *string    `json:"note,omitempty"`
	CancelledBy  *string    `json:"cancelled_by,omitempty"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
	ConfirmedAt  *time.Time `json:"confirmed_at,omitempty"`
	CheckedInAt  *time.Time `json:"checked_in_at,omitempty"`
	CheckedOutAt *time.Time `json:"checked_out_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (v *RoomBookingView) Breakdown() PriceBreakdownView {
	nights := v.Nights
	return PriceBreakdownView{
		Base:        v.Price,
		PlatformFee: v.PlatformFee,
		GrandTotal:  v.GrandTotal,
		Nights:      &nights,
	}
}

type RoomBookingListItem struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	ClientID    uuid.UUID `json:"client_id"`
	HotelID     uuid.UUID `json:"hotel_id"`
	HotelName   string    `json:"hotel_name"`
	RoomID      uuid.UUID `json:"room_id"`
	RoomName    string    `json:"room_name"`
	CheckIn     time.Time `json:"check_in"`
	CheckOut    time.Time `json:"check_out"`
	Nights      int       `json:"nights"`
	Price       int64     `json:"price"`
	PlatformFee int64     `json:"platform_fee"`
	GrandTotal  int64     `json:"grand_total"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// SitterBookingView is the full read model of a sitter booking, line items included
type SitterBookingView struct {
	ID                  uuid.UUID      `json:"id"`
	Code                string         `json:"code"`
	ClientID            uuid.UUID      `json:"client_id"`
	ProviderProfileID   uuid.UUID      `json:"provider_profile_id"`
	SitterUserID        uuid.UUID      `json:"sitter_user_id"`
	SitterName          string         `json:"sitter_name"`
	ServiceID           *uuid.UUID     `json:"service_id,omitempty"`
	PackageID           *uuid.UUID     `json:"package_id,omitempty"`
	OfferingName        string         `json:"offering_name"`
	OfferingPrice       int64          `json:"offering_price"`
	OfferingDuration    int            `json:"offering_duration_minutes"`
	AdditionalServices  []LineItemView `json:"additional_services"`
	AddressID           uuid.UUID      `json:"address_id"`
	AddressSnapshot     string         `json:"address_snapshot"`
	StartingTime        time.Time      `json:"starting_time"`
	FinishingTime       time.Time      `json:"finishing_time"`
	DurationMinutes     int            `json:"duration_minutes"`
	Price               int64          `json:"price"`
	PlatformFee         int64          `json:"platform_fee"`
	GrandTotal          int64          `json:"grand_total"`
	Status              string         `json:"status"`
	Note                *string        `json:"note,omitempty"`
	IsLate              bool           `json:"is_late"`
	MinutesLate         *int32         `json:"minutes_late,omitempty"`
	CancelledBy         *string        `json:"cancelled_by,omitempty"`
	CancelledAt         *time.Time     `json:"cancelled_at,omitempty"`
	ConfirmedAt         *time.Time     `json:"confirmed_at,omitempty"`
	StartedAt           *time.Time     `json:"started_at,omitempty"`
	CompletionNote      *string        `json:"completion_note,omitempty"`
	CompletionProofURLs []string       `json:"completion_proof_urls,omitempty"`
	RequestCompletedAt  *time.Time     `json:"request_completed_at,omitempty"`
	CompletedAt         *time.Time     `json:"completed_at,omitempty"`
	ExpiredAt           *time.Time     `json:"expired_at,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

func (v *SitterBookingView) Breakdown() PriceBreakdownView {
	duration := v.DurationMinutes
	items := make([]LineItemView, 0, len(v.AdditionalServices)+1)
	primary := LineItemView{
		Name:            v.OfferingName,
		Price:           v.OfferingPrice,
		DurationMinutes: v.OfferingDuration,
	}
	switch {
	case v.ServiceID != nil:
		primary.ServiceID = *v.ServiceID
	case v.PackageID != nil:
		primary.ServiceID = *v.PackageID
	}
	items = append(items, primary)
	items = append(items, v.AdditionalServices...)
	return PriceBreakdownView{
		Base:            v.Price,
		PlatformFee:     v.PlatformFee,
		GrandTotal:      v.GrandTotal,
		DurationMinutes: &duration,
		LineItems:       items,
	}
}

type SitterBookingListItem struct {
	ID                uuid.UUID `json:"id"`
	Code              string    `json:"code"`
	ClientID          uuid.UUID `json:"client_id"`
	ProviderProfileID uuid.UUID `json:"provider_profile_id"`
	SitterName        string    `json:"sitter_name"`
	StartingTime      time.Time `json:"starting_time"`
	FinishingTime     time.Time `json:"finishing_time"`
	DurationMinutes   int       `json:"duration_minutes"`
	Price             int64     `json:"price"`
	PlatformFee       int64     `json:"platform_fee"`
	GrandTotal        int64     `json:"grand_total"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

type RoomAvailabilityView struct {
	RoomID          uuid.UUID `json:"room_id"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	TotalNights     int       `json:"total_nights"`
	AvailableNights int       `json:"available_nights"`
	IsAvailable     bool      `json:"is_available"`
	TotalPrice      *int64    `json:"total_price,omitempty"`
}

type AvailableRoomView struct {
	RoomID            uuid.UUID `json:"room_id"`
	RoomName          string    `json:"room_name"`
	HotelID           uuid.UUID `json:"hotel_id"`
	HotelName         string    `json:"hotel_name"`
	ProviderProfileID uuid.UUID `json:"provider_profile_id"`
	PricePerNight     int64     `json:"price_per_night"`
	PetCapacity       int       `json:"pet_capacity"`
	HumanCapacity     int       `json:"human_capacity"`
	Nights            int       `json:"nights"`
	TotalPrice        int64     `json:"total_price"`
}

type SitterAvailabilityView struct {
	ProviderProfileID uuid.UUID `json:"provider_profile_id"`
	StartingTime      time.Time `json:"starting_time"`
	FinishingTime     time.Time `json:"finishing_time"`
	IsAvailable       bool      `json:"is_available"`
	ConflictingCount  int64     `json:"conflicting_count"`
}
