package response

import (
	"time"

	"petstay-backend/internal/domain/calendar"
	"petstay-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type LineItemResponse struct {
	ServiceID       uuid.UUID `json:"service_id"`
	Name            string    `json:"name"`
	Price           int64     `json:"price"`
	DurationMinutes int       `json:"duration_minutes"`
}

type PriceBreakdownResponse struct {
	Base            int64              `json:"base"`
	PlatformFee     int64              `json:"platform_fee"`
	GrandTotal      int64              `json:"grand_total"`
	Nights          *int               `json:"nights,omitempty"`
	DurationMinutes *int               `json:"duration_minutes,omitempty"`
	LineItems       []LineItemResponse `json:"line_items,omitempty"`
}

func FromBreakdown(b queries.PriceBreakdownView) PriceBreakdownResponse {
	return PriceBreakdownResponse{
		Base:            b.Base,
		PlatformFee:     b.PlatformFee,
		GrandTotal:      b.GrandTotal,
		Nights:          b.Nights,
		DurationMinutes: b.DurationMinutes,
		LineItems:       fromLineItems(b.LineItems),
	}
}

func fromLineItems(items []queries.LineItemView) []LineItemResponse {
	if len(items) == 0 {
		return nil
	}
	res := make([]LineItemResponse, len(items))
	for i, it := range items {
		res[i] = LineItemResponse(it)
	}
	return res
}

type RoomBookingResponse struct {
	ID           uuid.UUID  `json:"id"`
	Code         string     `json:"code"`
	ClientID     uuid.UUID  `json:"client_id"`
	HotelID      uuid.UUID  `json:"hotel_id"`
	HotelName    string     `json:"hotel_name"`
	RoomID       uuid.UUID  `json:"room_id"`
	RoomName     string     `json:"room_name"`
	CheckIn      string     `json:"check_in"`
	CheckOut     string     `json:"check_out"`
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

func FromRoomBookingView(v *queries.RoomBookingView) *RoomBookingResponse {
	return &RoomBookingResponse{
		ID:           v.ID,
		Code:         v.Code,
		ClientID:     v.ClientID,
		HotelID:      v.HotelID,
		HotelName:    v.HotelName,
		RoomID:       v.RoomID,
		RoomName:     v.RoomName,
		CheckIn:      v.CheckIn.Format(calendar.DateLayout),
		CheckOut:     v.CheckOut.Format(calendar.DateLayout),
		Nights:       v.Nights,
		PetCount:     v.PetCount,
		HumanCount:   v.HumanCount,
		Price:        v.Price,
		PlatformFee:  v.PlatformFee,
		GrandTotal:   v.GrandTotal,
		Status:       v.Status,
		Note:         v.Note,
		CancelledBy:  v.CancelledBy,
		CancelledAt:  v.CancelledAt,
		ConfirmedAt:  v.ConfirmedAt,
		CheckedInAt:  v.CheckedInAt,
		CheckedOutAt: v.CheckedOutAt,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

// RoomBookingResultResponse is returned by create and every transition.
type RoomBookingResultResponse struct {
	Booking        *RoomBookingResponse   `json:"booking"`
	PriceBreakdown PriceBreakdownResponse `json:"price_breakdown"`
}

func FromRoomBookingResult(v *queries.RoomBookingView, bd queries.PriceBreakdownView) *RoomBookingResultResponse {
	return &RoomBookingResultResponse{
		Booking:        FromRoomBookingView(v),
		PriceBreakdown: FromBreakdown(bd),
	}
}

type RoomBookingListItemResponse struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	ClientID   uuid.UUID `json:"client_id"`
	HotelName  string    `json:"hotel_name"`
	RoomID     uuid.UUID `json:"room_id"`
	RoomName   string    `json:"room_name"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	Nights     int       `json:"nights"`
	GrandTotal int64     `json:"grand_total"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type RoomBookingListResponse struct {
	Items      []*RoomBookingListItemResponse `json:"items"`
	NextCursor *string                        `json:"next_cursor"`
}

func FromRoomBookingList(items []*queries.RoomBookingListItem, next *queries.Cursor) *RoomBookingListResponse {
	res := make([]*RoomBookingListItemResponse, len(items))
	for i, it := range items {
		res[i] = &RoomBookingListItemResponse{
			ID:         it.ID,
			Code:       it.Code,
			ClientID:   it.ClientID,
			HotelName:  it.HotelName,
			RoomID:     it.RoomID,
			RoomName:   it.RoomName,
			CheckIn:    it.CheckIn.Format(calendar.DateLayout),
			CheckOut:   it.CheckOut.Format(calendar.DateLayout),
			Nights:     it.Nights,
			GrandTotal: it.GrandTotal,
			Status:     it.Status,
			CreatedAt:  it.CreatedAt,
		}
	}
	return &RoomBookingListResponse{Items: res, NextCursor: nextCursor(next)}
}

type SitterBookingResponse struct {
	ID                  uuid.UUID          `json:"id"`
	Code                string             `json:"code"`
	ClientID            uuid.UUID          `json:"client_id"`
	ProviderProfileID   uuid.UUID          `json:"provider_profile_id"`
	SitterName          string             `json:"sitter_name"`
	ServiceID           *uuid.UUID         `json:"service_id,omitempty"`
	PackageID           *uuid.UUID         `json:"package_id,omitempty"`
	OfferingName        string             `json:"offering_name"`
	AdditionalServices  []LineItemResponse `json:"additional_services"`
	AddressSnapshot     string             `json:"address_snapshot"`
	StartingTime        time.Time          `json:"starting_time"`
	FinishingTime       time.Time          `json:"finishing_time"`
	DurationMinutes     int                `json:"duration_minutes"`
	Price               int64              `json:"price"`
	PlatformFee         int64              `json:"platform_fee"`
	GrandTotal          int64              `json:"grand_total"`
	Status              string             `json:"status"`
	Note                *string            `json:"note,omitempty"`
	IsLate              bool               `json:"is_late"`
	MinutesLate         *int32             `json:"minutes_late,omitempty"`
	CancelledBy         *string            `json:"cancelled_by,omitempty"`
	CancelledAt         *time.Time         `json:"cancelled_at,omitempty"`
	ConfirmedAt         *time.Time         `json:"confirmed_at,omitempty"`
	StartedAt           *time.Time         `json:"started_at,omitempty"`
	CompletionNote      *string            `json:"completion_note,omitempty"`
	CompletionProofURLs []string           `json:"completion_proof_urls,omitempty"`
	RequestCompletedAt  *time.Time         `json:"request_completed_at,omitempty"`
	CompletedAt         *time.Time         `json:"completed_at,omitempty"`
	ExpiredAt           *time.Time         `json:"expired_at,omitempty"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

func FromSitterBookingView(v *queries.SitterBookingView) *SitterBookingResponse {
	additional := fromLineItems(v.AdditionalServices)
	if additional == nil {
		additional = []LineItemResponse{}
	}
	return &SitterBookingResponse{
		ID:                  v.ID,
		Code:                v.Code,
		ClientID:            v.ClientID,
		ProviderProfileID:   v.ProviderProfileID,
		SitterName:          v.SitterName,
		ServiceID:           v.ServiceID,
		PackageID:           v.PackageID,
		OfferingName:        v.OfferingName,
		AdditionalServices:  additional,
		AddressSnapshot:     v.AddressSnapshot,
		StartingTime:        v.StartingTime,
		FinishingTime:       v.FinishingTime,
		DurationMinutes:     v.DurationMinutes,
		Price:               v.Price,
		PlatformFee:         v.PlatformFee,
		GrandTotal:          v.GrandTotal,
		Status:              v.Status,
		Note:                v.Note,
		IsLate:              v.IsLate,
		MinutesLate:         v.MinutesLate,
		CancelledBy:         v.CancelledBy,
		CancelledAt:         v.CancelledAt,
		ConfirmedAt:         v.ConfirmedAt,
		StartedAt:           v.StartedAt,
		CompletionNote:      v.CompletionNote,
		CompletionProofURLs: v.CompletionProofURLs,
		RequestCompletedAt:  v.RequestCompletedAt,
		CompletedAt:         v.CompletedAt,
		ExpiredAt:           v.ExpiredAt,
		CreatedAt:           v.CreatedAt,
		UpdatedAt:           v.UpdatedAt,
	}
}

type SitterBookingResultResponse struct {
	Booking        *SitterBookingResponse `json:"booking"`
	PriceBreakdown PriceBreakdownResponse `json:"price_breakdown"`
}

func FromSitterBookingResult(v *queries.SitterBookingView, bd queries.PriceBreakdownView) *SitterBookingResultResponse {
	return &SitterBookingResultResponse{
		Booking:        FromSitterBookingView(v),
		PriceBreakdown: FromBreakdown(bd),
	}
}

type SitterBookingListItemResponse struct {
	ID                uuid.UUID `json:"id"`
	Code              string    `json:"code"`
	ClientID          uuid.UUID `json:"client_id"`
	ProviderProfileID uuid.UUID `json:"provider_profile_id"`
	SitterName        string    `json:"sitter_name"`
	StartingTime      time.Time `json:"starting_time"`
	FinishingTime     time.Time `json:"finishing_time"`
	DurationMinutes   int       `json:"duration_minutes"`
	GrandTotal        int64     `json:"grand_total"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

type SitterBookingListResponse struct {
	Items      []*SitterBookingListItemResponse `json:"items"`
	NextCursor *string                          `json:"next_cursor"`
}

func FromSitterBookingList(items []*queries.SitterBookingListItem, next *queries.Cursor) *SitterBookingListResponse {
	res := make([]*SitterBookingListItemResponse, len(items))
	for i, it := range items {
		res[i] = &SitterBookingListItemResponse{
			ID:                it.ID,
			Code:              it.Code,
			ClientID:          it.ClientID,
			ProviderProfileID: it.ProviderProfileID,
			SitterName:        it.SitterName,
			StartingTime:      it.StartingTime,
			FinishingTime:     it.FinishingTime,
			DurationMinutes:   it.DurationMinutes,
			GrandTotal:        it.GrandTotal,
			Status:            it.Status,
			CreatedAt:         it.CreatedAt,
		}
	}
	return &SitterBookingListResponse{Items: res, NextCursor: nextCursor(next)}
}

func nextCursor(c *queries.Cursor) *string {
	if c == nil || c.After == "" {
		return nil
	}
	after := c.After
	return &after
}
