package request

import (
	"time"

	"petstay-backend/internal/domain/calendar"
	"petstay-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type DateRangeQuery struct {
	CheckIn  string `form:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut string `form:"check_out" binding:"required,datetime=2006-01-02"`
}

func (q DateRangeQuery) ToDomain() (calendar.DateRange, error) {
	return calendar.ParseDateRange(q.CheckIn, q.CheckOut)
}

type SearchRoomsQuery struct {
	DateRangeQuery
	ProviderProfileID string `form:"provider_profile_id" binding:"omitempty,uuid"`
	HotelID           string `form:"hotel_id" binding:"omitempty,uuid"`
	MinPetCapacity    *int   `form:"min_pet_capacity" binding:"omitempty,min=1"`
	MinHumanCapacity  *int   `form:"min_human_capacity" binding:"omitempty,min=0"`
	Limit             int    `form:"limit" binding:"omitempty,min=1"`
}

// Filter assumes binding already validated the uuid fields.
func (q SearchRoomsQuery) Filter() queries.RoomSearchFilter {
	return queries.RoomSearchFilter{
		ProviderProfileID: optionalUUID(q.ProviderProfileID),
		HotelID:           optionalUUID(q.HotelID),
		MinPetCapacity:    q.MinPetCapacity,
		MinHumanCapacity:  q.MinHumanCapacity,
		Limit:             q.Limit,
	}
}

type SitterWindowQuery struct {
	StartingTime  time.Time `form:"starting_time" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	FinishingTime time.Time `form:"finishing_time" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type GenerateCalendarRequest struct {
	Days int `json:"days" binding:"omitempty,min=1,max=730"`
}

func optionalUUID(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}
