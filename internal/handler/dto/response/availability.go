package response

import (
	"time"

	"petstay-backend/internal/domain/calendar"
	"petstay-backend/internal/usecase/commands"
	"petstay-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomAvailabilityResponse struct {
	RoomID          uuid.UUID `json:"room_id"`
	CheckIn         string    `json:"check_in"`
	CheckOut        string    `json:"check_out"`
	TotalNights     int       `json:"total_nights"`
	AvailableNights int       `json:"available_nights"`
	IsAvailable     bool      `json:"is_available"`
	TotalPrice      *int64    `json:"total_price,omitempty"`
}

func FromRoomAvailability(v *queries.RoomAvailabilityView) *RoomAvailabilityResponse {
	return &RoomAvailabilityResponse{
		RoomID:          v.RoomID,
		CheckIn:         v.CheckIn.Format(calendar.DateLayout),
		CheckOut:        v.CheckOut.Format(calendar.DateLayout),
		TotalNights:     v.TotalNights,
		AvailableNights: v.AvailableNights,
		IsAvailable:     v.IsAvailable,
		TotalPrice:      v.TotalPrice,
	}
}

type AvailableRoomResponse struct {
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

func FromAvailableRooms(rooms []*queries.AvailableRoomView) []*AvailableRoomResponse {
	res := make([]*AvailableRoomResponse, len(rooms))
	for i, r := range rooms {
		res[i] = (*AvailableRoomResponse)(r)
	}
	return res
}

type SitterAvailabilityResponse struct {
	ProviderProfileID uuid.UUID `json:"provider_profile_id"`
	StartingTime      time.Time `json:"starting_time"`
	FinishingTime     time.Time `json:"finishing_time"`
	IsAvailable       bool      `json:"is_available"`
	ConflictingCount  int64     `json:"conflicting_count"`
}

func FromSitterAvailability(v *queries.SitterAvailabilityView) *SitterAvailabilityResponse {
	return (*SitterAvailabilityResponse)(v)
}

type GenerateCalendarResponse struct {
	RoomID  uuid.UUID `json:"room_id"`
	From    string    `json:"from"`
	Days    int       `json:"days"`
	Created int64     `json:"created"`
}

func FromGenerateCalendar(r *commands.GenerateCalendarResult) *GenerateCalendarResponse {
	return &GenerateCalendarResponse{
		RoomID:  r.RoomID,
		From:    r.From.Format(calendar.DateLayout),
		Days:    r.Days,
		Created: r.Created,
	}
}
