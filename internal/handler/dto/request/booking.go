package request

import (
	"time"

	"petstay-backend/internal/domain/calendar"
	"petstay-backend/internal/domain/sitterbooking"
	"petstay-backend/internal/usecase/commands"
	"petstay-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateRoomBookingRequest struct {
	RoomID     uuid.UUID `json:"room_id" binding:"required"`
	CheckIn    string    `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut   string    `json:"check_out" binding:"required,datetime=2006-01-02"`
	PetCount   int       `json:"pet_count" binding:"required,min=1,max=20"`
	HumanCount int       `json:"human_count" binding:"omitempty,min=0,max=20"`
	Note       string    `json:"note" binding:"omitempty,max=1000"`
}

func (r *CreateRoomBookingRequest) ToCommand() (commands.CreateRoomBookingRequest, error) {
	dates, err := calendar.ParseDateRange(r.CheckIn, r.CheckOut)
	if err != nil {
		return commands.CreateRoomBookingRequest{}, err
	}
	return commands.CreateRoomBookingRequest{
		RoomID:     r.RoomID,
		Dates:      dates,
		PetCount:   r.PetCount,
		HumanCount: r.HumanCount,
		Note:       r.Note,
	}, nil
}

// CreateSitterBookingRequest takes exactly one of service_id or package_id;
// the domain rejects anything else.
type CreateSitterBookingRequest struct {
	ServiceID            *uuid.UUID  `json:"service_id"`
	PackageID            *uuid.UUID  `json:"package_id"`
	AdditionalServiceIDs []uuid.UUID `json:"additional_service_ids" binding:"omitempty,max=20"`
	StartingTime         time.Time   `json:"starting_time" binding:"required"`
	Note                 string      `json:"note" binding:"omitempty,max=1000"`
}

func (r *CreateSitterBookingRequest) ToCommand() commands.CreateSitterBookingRequest {
	return commands.CreateSitterBookingRequest{
		Selection: sitterbooking.Selection{
			ServiceID: r.ServiceID,
			PackageID: r.PackageID,
		},
		AdditionalServiceIDs: r.AdditionalServiceIDs,
		StartingTime:         r.StartingTime,
		Note:                 r.Note,
	}
}

type RequestCompleteRequest struct {
	Note      string   `json:"note" binding:"omitempty,max=2000"`
	ProofURLs []string `json:"proof_urls" binding:"omitempty,max=10"`
}

func (r *RequestCompleteRequest) ToCommand() commands.RequestCompleteRequest {
	return commands.RequestCompleteRequest{
		Note:      r.Note,
		ProofURLs: r.ProofURLs,
	}
}

type ListBookingsQuery struct {
	As     string `form:"as" binding:"omitempty,oneof=client provider"`
	Status string `form:"status" binding:"omitempty,max=32"`
	Limit  int    `form:"limit" binding:"omitempty,min=1"`
	After  string `form:"after"`
}

func (q ListBookingsQuery) Filter() queries.BookingListFilter {
	filter := queries.BookingListFilter{As: queries.ListAsClient}
	if q.As != "" {
		filter.As = queries.ListAs(q.As)
	}
	if q.Status != "" {
		status := q.Status
		filter.Status = &status
	}
	return filter
}

func (q ListBookingsQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}
